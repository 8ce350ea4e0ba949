package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/togetherforward/forward/internal/cli/formatter"
	"github.com/togetherforward/forward/internal/contract"
	"github.com/togetherforward/forward/internal/domain"
)

func newLunaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "luna",
		Short: "Talk to Luna, the planning assistant",
	}

	cmd.AddCommand(
		newLunaDraftCmd(app),
		newLunaChatCmd(app),
	)

	return cmd
}

func newLunaDraftCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "draft DESCRIPTION",
		Short: "Turn a free-text description into a dream draft",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Draft == nil {
				return fmt.Errorf("Luna is not enabled; set FORWARD_LLM_ENABLED=true")
			}
			ctx := context.Background()

			resp, err := app.Draft.Draft(ctx, contract.DreamDraftRequest{
				Prompt: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			draft := resp.Draft
			if draft.ClarifyingQuestion != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Luna asks: %s\n", draft.ClarifyingQuestion)
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", formatter.Header(draft.Title))
			fmt.Fprintf(out, "Category: %s\n", draft.Category)
			fmt.Fprintf(out, "Target: %d months", draft.TargetMonths)
			if draft.TargetAmountCents > 0 {
				fmt.Fprintf(out, ", %s", formatter.Money(draft.TargetAmountCents))
			}
			fmt.Fprintln(out)
			for _, m := range draft.Milestones {
				fmt.Fprintf(out, "  · %s (%d months before)\n", m.Title, m.MonthsBefore)
			}
			if len(draft.BudgetHints) > 0 {
				fmt.Fprintf(out, "Budget hints: %s\n", strings.Join(draft.BudgetHints, ", "))
			}
			for _, w := range resp.Warnings {
				fmt.Fprintf(out, "%s %s\n", formatter.StyleYellow.Render("!"), w)
			}

			if !save {
				fmt.Fprintln(out, formatter.Dim("Re-run with --save to create the dream."))
				return nil
			}

			d := draftToDream(draft, app.currentOwnerID(), time.Now())
			if err := app.Dreams.Create(ctx, d); err != nil {
				return err
			}
			fmt.Fprintf(out, "Created dream %s [%s]\n", d.Title, d.DisplayID())
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Create the dream from the draft")

	return cmd
}

func newLunaChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with Luna about your goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Chat == nil {
				return fmt.Errorf("Luna is not enabled; set FORWARD_LLM_ENABLED=true")
			}
			ctx := context.Background()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Dim("Chatting with Luna. Empty line to quit."))

			scanner := bufio.NewScanner(os.Stdin)
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				return nil
			}
			first := strings.TrimSpace(scanner.Text())
			if first == "" {
				return nil
			}

			conv, resp, err := app.Chat.Start(ctx, contract.ChatRequest{
				Message: first,
				Context: app.portfolioContext(ctx),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", formatter.StylePurple.Render("Luna:"), resp.Reply)

			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					return nil
				}
				msg := strings.TrimSpace(scanner.Text())
				if msg == "" {
					return nil
				}
				resp, err := app.Chat.NextTurn(ctx, conv, msg)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", formatter.StylePurple.Render("Luna:"), resp.Reply)
			}
		},
	}
}

// draftToDream maps a Luna draft onto a new dream owned by ownerID.
func draftToDream(draft contract.DreamDraft, ownerID string, now time.Time) *domain.Dream {
	target := now.AddDate(0, draft.TargetMonths, 0)
	return &domain.Dream{
		ID:                uuid.New().String(),
		OwnerID:           ownerID,
		Title:             draft.Title,
		Category:          domain.DreamCategory(draft.Category),
		TargetDate:        &target,
		TargetAmountCents: draft.TargetAmountCents,
		Status:            domain.DreamActive,
	}
}

// portfolioContext renders the active dreams as the grounding summary Luna
// chats over.
func (a *App) portfolioContext(ctx context.Context) string {
	dreams, err := a.Dreams.List(ctx, false)
	if err != nil || len(dreams) == 0 {
		return ""
	}

	var b strings.Builder
	for _, d := range dreams {
		fmt.Fprintf(&b, "%s (%s): saved %s of %s", d.Title, d.Category,
			formatter.Money(d.SavedAmountCents), formatter.Money(d.TargetAmountCents))
		if d.TargetDate != nil {
			fmt.Fprintf(&b, ", target %s", d.TargetDate.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}
	if p, err := a.Profile.Get(ctx); err == nil && p != nil && p.SavingsCapacityCents > 0 {
		fmt.Fprintf(&b, "Monthly savings capacity: %s\n", formatter.Money(p.SavingsCapacityCents))
	}
	return b.String()
}
