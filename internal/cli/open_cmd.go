package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/togetherforward/forward/internal/nav"
)

// newOpenCmd deep-links into the app: the path is resolved through the
// navigation machine exactly as a changed location would be. On a terminal
// it enters the TUI at the resolved stage; otherwise it prints the
// resolution.
func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open PATH",
		Short: "Open an app path (e.g. /dashboard, /dream/ID/budget)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if err := stagePendingInvite(cmd.Context(), app, path); err != nil {
				return err
			}

			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(app, path)
			}

			history := nav.NewHistory(nav.RootPath)
			machine := nav.NewMachine(history)
			machine.Open(path)

			fmt.Fprintf(cmd.OutOrStdout(), "%s -> stage %s\n", machine.Path(), machine.Stage())
			if machine.DreamID() != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "dream: %s section: %s\n", machine.DreamID(), machine.Section())
			}
			if machine.JoinCode() != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "join code: %s\n", machine.JoinCode())
			}
			return nil
		},
	}
}

// stagePendingInvite stores the invite code from an invite deep link so the
// auth gate can route back to it after the user signs in. A signed-in user
// lands on the invite page directly, so nothing is staged for them.
func stagePendingInvite(ctx context.Context, app *App, path string) error {
	if app.KV == nil {
		return nil
	}
	if app.Auth != nil && app.Auth.CurrentUser() != nil {
		return nil
	}
	res := nav.ResolveStage(path)
	switch res.Stage {
	case nav.StageInvite:
		return app.KV.Set(ctx, nav.KeyPendingInviteCode, res.InviteCode)
	case nav.StagePartnerInvite:
		return app.KV.Set(ctx, nav.KeyPendingPartnerInviteCode, res.InviteCode)
	}
	return nil
}
