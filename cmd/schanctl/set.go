package main

import (
	"context"
	"fmt"

	"schanctl/internal/protocols"
	"schanctl/internal/pub"
	"schanctl/internal/types"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const restartNotice = "A restart is required for the changes to take effect."

func (a *app) newSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <protocol>... <status>",
		Short: "Set server-side protocol enablement status",
		Long: "Sets each listed protocol to the given status (Default, Disabled or " +
			"Enabled) for the server role. Default removes the explicit entry. " +
			"Protocols are updated independently; the first store failure halts the " +
			"batch and leaves earlier changes in place. A successful write is " +
			"followed by a restart-required notice and a restart prompt.",
		Args: cobra.MinimumNArgs(2),
		RunE: a.runSet,
	}
	cmd.Flags().Bool("restart-without-confirmation", false, "restart immediately, no prompt")
	cmd.Flags().Bool("no-restart", false, "apply the change but skip the restart step")
	return cmd
}

func (a *app) runSet(cmd *cobra.Command, args []string) error {
	// Both enumerations are validated before any store access.
	target, err := types.ParseState(args[len(args)-1])
	if err != nil {
		return err
	}
	ids, err := protocols.ParseAll(args[:len(args)-1])
	if err != nil {
		return err
	}

	if err := protocols.SetState(cmd.Context(), a.store, ids, target); err != nil {
		return err
	}

	changes := make([]pub.Change, 0, len(ids))
	for _, p := range ids {
		changes = append(changes, pub.Change{Protocol: p, Status: target})
	}
	a.publishAudit(cmd.Context(), changes)

	fmt.Fprintln(a.out, restartNotice)
	return a.restartFlow(cmd)
}

// restartFlow composes the restart step after a successful write: skipped
// entirely with --no-restart, unconditional with --restart-without-confirmation,
// otherwise gated on an interactive yes.
func (a *app) restartFlow(cmd *cobra.Command) error {
	if noRestart, _ := cmd.Flags().GetBool("no-restart"); noRestart {
		return nil
	}
	if unconditional, _ := cmd.Flags().GetBool("restart-without-confirmation"); !unconditional {
		ok, err := a.confirmer.Confirm("Restart the machine now?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return a.restarter.Restart(cmd.Context())
}

// publishAudit ships a change record when auditing is configured. Audit
// failures never fail the command; the change is already applied.
func (a *app) publishAudit(ctx context.Context, changes []pub.Change) {
	if a.publisher == nil || a.auditARN == "" {
		return
	}
	snapshot, err := protocols.GetState(ctx, a.store, nil)
	if err != nil {
		log.WithError(err).Warn("audit snapshot read failed")
		snapshot = nil
	}
	rec := pub.NewChangeRecord(changes, snapshot)
	if err := pub.PublishChange(ctx, a.publisher, a.auditARN, rec); err != nil {
		log.WithError(err).Warn("audit publish failed")
	}
}
