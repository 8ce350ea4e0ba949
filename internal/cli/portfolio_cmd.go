package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/togetherforward/forward/internal/cli/formatter"
	"github.com/togetherforward/forward/internal/contract"
)

func newPortfolioCmd(app *App) *cobra.Command {
	var optimize bool

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Analyze all active dreams for conflicts and synergies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			analysis, err := app.Portfolio.Analyze(ctx, contract.AnalyzeRequest{})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatAnalysis(analysis, app.currency(ctx)))

			if !optimize {
				return nil
			}
			if app.Optimize == nil {
				return fmt.Errorf("Luna is not enabled; set FORWARD_LLM_ENABLED=true")
			}

			resp, err := app.Optimize.Optimize(ctx, contract.OptimizeRequest{Analysis: *analysis})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatOptimize(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&optimize, "optimize", false, "Ask Luna for optimization suggestions")

	return cmd
}
