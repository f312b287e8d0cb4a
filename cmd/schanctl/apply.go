package main

import (
	"fmt"

	"schanctl/internal/protocols"
	"schanctl/internal/pub"
	"schanctl/internal/types"

	"github.com/spf13/cobra"
)

func (a *app) newApplyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <policy.yml>",
		Short: "Apply a protocol-status policy file",
		Long: "Applies every rule of a YAML policy document, top to bottom, with the " +
			"same per-protocol semantics as `set`. The whole document is validated " +
			"before the first rule touches the store.",
		Args: cobra.ExactArgs(1),
		RunE: a.runApply,
	}
	cmd.Flags().Bool("restart-without-confirmation", false, "restart immediately, no prompt")
	cmd.Flags().Bool("no-restart", false, "apply the policy but skip the restart step")
	return cmd
}

func (a *app) runApply(cmd *cobra.Command, args []string) error {
	pol, err := protocols.LoadPolicy(args[0])
	if err != nil {
		return err
	}

	if err := pol.Apply(cmd.Context(), a.store); err != nil {
		return err
	}

	changes := make([]pub.Change, 0, len(pol.Rules))
	for _, r := range pol.Rules {
		// Already validated by LoadPolicy.
		proto, _ := types.ParseProtocol(r.Protocol)
		state, _ := types.ParseState(r.Status)
		changes = append(changes, pub.Change{Protocol: proto, Status: state})
	}
	a.publishAudit(cmd.Context(), changes)

	fmt.Fprintln(a.out, restartNotice)
	return a.restartFlow(cmd)
}
