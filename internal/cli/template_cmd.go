package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/togetherforward/forward/internal/cli/formatter"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Goal templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateInitCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available goal templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatTemplateList(templates))
			return nil
		},
	}
}

func newTemplateInitCmd(app *App) *cobra.Command {
	var templateName, title, target string
	var amount int64

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a dream from a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDate, err := time.Parse("2006-01-02", target)
			if err != nil {
				return fmt.Errorf("invalid target date %q: %w", target, err)
			}

			d, err := app.Templates.InitDream(context.Background(),
				templateName, title, app.currentOwnerID(), targetDate, amount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created dream %s [%s] from template %q\n",
				d.Title, d.DisplayID(), templateName)
			return nil
		},
	}

	cmd.Flags().StringVar(&templateName, "template", "", "Template reference (number, id or name from `template list`)")
	cmd.Flags().StringVar(&title, "title", "", "Dream title (defaults to the template name)")
	cmd.Flags().StringVar(&target, "target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&amount, "amount", 0, "Target amount in cents")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
