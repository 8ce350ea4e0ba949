package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/togetherforward/forward/internal/cli/formatter"
	"github.com/togetherforward/forward/internal/domain"
)

func newDreamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dream",
		Short: "Manage dreams",
	}

	cmd.AddCommand(
		newDreamAddCmd(app),
		newDreamListCmd(app),
		newDreamShowCmd(app),
		newDreamArchiveCmd(app),
		newDreamRemoveCmd(app),
	)

	return cmd
}

func newDreamAddCmd(app *App) *cobra.Command {
	var title, category, target string
	var amount, monthly int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new dream",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &domain.Dream{
				ID:                  uuid.New().String(),
				OwnerID:             app.currentOwnerID(),
				Title:               title,
				Category:            domain.DreamCategory(category),
				TargetAmountCents:   amount,
				MonthlyContribCents: monthly,
				Status:              domain.DreamActive,
			}
			if target != "" {
				targetDate, err := time.Parse("2006-01-02", target)
				if err != nil {
					return fmt.Errorf("invalid target date %q: %w", target, err)
				}
				d.TargetDate = &targetDate
			}

			if err := app.Dreams.Create(context.Background(), d); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created dream %s [%s]\n", d.Title, d.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Dream title")
	cmd.Flags().StringVar(&category, "category", "custom", "Category (wedding|home|travel|finance|family|custom)")
	cmd.Flags().StringVar(&target, "target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&amount, "amount", 0, "Target amount in cents")
	cmd.Flags().Int64Var(&monthly, "monthly", 0, "Monthly contribution in cents")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newDreamListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dreams",
		RunE: func(cmd *cobra.Command, args []string) error {
			dreams, err := app.Dreams.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(dreams) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No dreams yet. Start one with `forward dream add` or `forward template init`.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatDreamList(dreams))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived dreams")

	return cmd
}

func newDreamShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a dream with milestones, tasks and budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dreamID, err := resolveDreamID(ctx, app, args[0])
			if err != nil {
				return err
			}

			d, err := app.Dreams.GetByID(ctx, dreamID)
			if err != nil {
				return err
			}
			milestones, _ := app.Milestones.ListByDream(ctx, dreamID)
			tasks, _ := app.Tasks.ListByDream(ctx, dreamID)
			budget, _ := app.Budget.ListByDream(ctx, dreamID)

			currency := domain.DefaultCurrency
			if p, err := app.Profile.Get(ctx); err == nil && p != nil && p.Currency != "" {
				currency = p.Currency
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatDreamDetail(formatter.DreamDetailData{
				Dream:      d,
				Milestones: milestones,
				Tasks:      tasks,
				Budget:     budget,
				Currency:   currency,
			}))
			return nil
		},
	}
}

func newDreamArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a dream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dreamID, err := resolveDreamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Dreams.Archive(ctx, dreamID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived dream %s\n", dreamID)
			return nil
		},
	}
}

func newDreamRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a dream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dreamID, err := resolveDreamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Dreams.Delete(ctx, dreamID, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed dream %s\n", dreamID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Remove without archiving first")

	return cmd
}
