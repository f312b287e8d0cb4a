package main

import (
	"fmt"
	"text/tabwriter"

	"schanctl/internal/protocols"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func (a *app) newGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [protocol...]",
		Short: "Show server-side protocol enablement status",
		Long: "Shows whether each requested protocol is Enabled, Disabled or Default " +
			"(no explicit entry) for the server role. With no arguments all five " +
			"protocols are reported.",
		RunE: a.runGet,
	}
	cmd.Flags().Bool("json", false, "emit JSON instead of a table")
	return cmd
}

func (a *app) runGet(cmd *cobra.Command, args []string) error {
	ids, err := protocols.ParseAll(args)
	if err != nil {
		return err
	}

	results, err := protocols.GetState(cmd.Context(), a.store, ids)
	if err != nil {
		return err
	}

	if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode {
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, string(b))
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\n", r.Protocol, r.State)
	}
	return tw.Flush()
}
