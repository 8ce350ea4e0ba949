package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/togetherforward/forward/internal/cli/formatter"
	"github.com/togetherforward/forward/internal/domain"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage a dream's budget",
	}

	cmd.AddCommand(
		newBudgetShowCmd(app),
		newBudgetSuggestCmd(app),
		newBudgetApplyCmd(app),
		newBudgetSpendCmd(app),
	)

	return cmd
}

func (a *App) currency(ctx context.Context) string {
	if p, err := a.Profile.Get(ctx); err == nil && p != nil && p.Currency != "" {
		return p.Currency
	}
	return domain.DefaultCurrency
}

func newBudgetShowCmd(app *App) *cobra.Command {
	var dream string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a dream's budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dreamID, err := resolveDreamID(ctx, app, dream)
			if err != nil {
				return err
			}

			categories, err := app.Budget.ListByDream(ctx, dreamID)
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No budget yet. Try `forward budget suggest`.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatBudget(categories, app.currency(ctx)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dream, "dream", "", "Dream reference (id, prefix or title)")
	_ = cmd.MarkFlagRequired("dream")

	return cmd
}

func newBudgetSuggestCmd(app *App) *cobra.Command {
	var dream string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a budget split from the dream's category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dreamID, err := resolveDreamID(ctx, app, dream)
			if err != nil {
				return err
			}
			d, err := app.Dreams.GetByID(ctx, dreamID)
			if err != nil {
				return err
			}
			if d.TargetAmountCents <= 0 {
				return fmt.Errorf("dream %q has no target amount to split", d.Title)
			}

			suggestions, err := app.Budget.SuggestAllocation(d.Category, d.TargetAmountCents)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatSuggestions(d.Category, suggestions, app.currency(ctx)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dream, "dream", "", "Dream reference (id, prefix or title)")
	_ = cmd.MarkFlagRequired("dream")

	return cmd
}

func newBudgetApplyCmd(app *App) *cobra.Command {
	var dream string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Replace the dream's budget with the suggested split",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dreamID, err := resolveDreamID(ctx, app, dream)
			if err != nil {
				return err
			}
			d, err := app.Dreams.GetByID(ctx, dreamID)
			if err != nil {
				return err
			}
			if d.TargetAmountCents <= 0 {
				return fmt.Errorf("dream %q has no target amount to split", d.Title)
			}

			categories, err := app.Budget.ApplySuggestion(ctx, dreamID, d.Category, d.TargetAmountCents)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d budget categories to %s\n", len(categories), d.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&dream, "dream", "", "Dream reference (id, prefix or title)")
	_ = cmd.MarkFlagRequired("dream")

	return cmd
}

func newBudgetSpendCmd(app *App) *cobra.Command {
	var amount int64

	cmd := &cobra.Command{
		Use:   "spend CATEGORY_ID",
		Short: "Record spend against a budget category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Budget.RecordSpend(context.Background(), args[0], amount); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s against category %s\n", formatter.Money(amount), args[0])
			return nil
		},
	}

	cmd.Flags().Int64Var(&amount, "amount", 0, "Amount in cents (negative to correct)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
