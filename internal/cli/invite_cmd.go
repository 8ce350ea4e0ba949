package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/togetherforward/forward/internal/cli/formatter"
	"github.com/togetherforward/forward/internal/domain"
)

func newInviteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Invite your partner",
	}

	cmd.AddCommand(
		newInviteCreateCmd(app),
		newInviteAcceptCmd(app),
	)

	return cmd
}

func newInviteCreateCmd(app *App) *cobra.Command {
	var dream string
	var partner bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invite code",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			kind := domain.InviteDream
			dreamID := ""
			if partner {
				kind = domain.InvitePartner
			} else {
				var err error
				dreamID, err = resolveDreamID(ctx, app, dream)
				if err != nil {
					return err
				}
			}

			inv, err := app.Invites.Create(ctx, kind, dreamID, app.currentOwnerID())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Invite created. Share this code: %s\n", formatter.Bold(inv.Code))
			return nil
		},
	}

	cmd.Flags().StringVar(&dream, "dream", "", "Dream to invite into (required unless --partner)")
	cmd.Flags().BoolVar(&partner, "partner", false, "Invite a partner to the shared account instead of a dream")

	return cmd
}

func newInviteAcceptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "accept CODE",
		Short: "Accept an invite code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Invites.Accept(context.Background(), args[0], app.currentOwnerID())
			if err != nil {
				return err
			}

			switch inv.Kind {
			case domain.InviteDream:
				fmt.Fprintf(cmd.OutOrStdout(), "You joined the dream. See it with `forward dream show %s`.\n", inv.DreamID[:8])
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "You are now partners on this account.")
			}
			return nil
		},
	}
}
