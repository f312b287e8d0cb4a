package main

import (
	"context"
	"io"
	"os"

	"schanctl/internal/backends"
	"schanctl/internal/ports"
	"schanctl/internal/pub"
	"schanctl/internal/system"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries the collaborators every command runs against. Tests swap in an
// in-memory store and fake restart/confirm primitives.
type app struct {
	store     ports.KeyStore
	restarter ports.Restarter
	confirmer ports.Confirmer
	publisher ports.Publisher
	auditARN  string
	out       io.Writer
}

func main() {
	// Load environment variables
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Info("The .env file not found.")
	}

	store, err := backends.KeyStoreFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize key store: %v", err)
	}

	a := &app{
		store:     store,
		restarter: system.MachineRestarter{},
		confirmer: &system.TerminalConfirmer{In: os.Stdin, Out: os.Stderr},
		out:       os.Stdout,
	}

	if arn := os.Getenv(pub.AuditTopicEnvKey); arn != "" {
		publisher, err := snsPublisherFromEnv()
		if err != nil {
			log.Fatalf("Failed to initialize audit publisher: %v", err)
		}
		a.publisher = publisher
		a.auditARN = arn
	}

	if err := a.rootCommand().Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "schanctl",
		Short:         "Inspect and toggle server-side SSL/TLS protocol enablement",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(a.newGetCommand())
	root.AddCommand(a.newSetCommand())
	root.AddCommand(a.newApplyCommand())
	return root
}

// snsPublisherFromEnv builds the audit publisher. SNS_ENDPOINT overrides the
// endpoint for local testing.
func snsPublisherFromEnv() (ports.Publisher, error) {
	ctx := context.Background()

	var snsEndpoint *string
	if se := os.Getenv("SNS_ENDPOINT"); se != "" {
		snsEndpoint = aws.String(se)
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	snsClient := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
		if snsEndpoint != nil {
			o.BaseEndpoint = snsEndpoint
			if o.Region == "" {
				o.Region = "us-east-1"
			}
			credProvider := credentials.NewStaticCredentialsProvider("test", "test", "")
			o.Credentials = credProvider
		}
	})
	return pub.NewSNS(snsClient), nil
}
