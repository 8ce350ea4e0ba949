package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/togetherforward/forward/internal/cli/formatter"
	"github.com/togetherforward/forward/internal/domain"
)

func newAssessmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assessment",
		Short: "Run the compatibility quiz",
	}

	cmd.AddCommand(
		newAssessmentStartCmd(app),
		newAssessmentJoinCmd(app),
		newAssessmentAnswerCmd(app),
		newAssessmentQuizCmd(app),
		newAssessmentScoreCmd(app),
	)

	return cmd
}

func newAssessmentStartCmd(app *App) *cobra.Command {
	var dream string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a quiz session and print the join code",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dreamID := ""
			if dream != "" {
				var err error
				dreamID, err = resolveDreamID(ctx, app, dream)
				if err != nil {
					return err
				}
			}

			sess, err := app.Assessments.Start(ctx, dreamID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Session %s started.\nShare this join code with your partner: %s\n",
				sess.ID[:8], formatter.Bold(sess.JoinCode))
			return nil
		},
	}

	cmd.Flags().StringVar(&dream, "dream", "", "Dream to attach the session to (optional)")

	return cmd
}

func newAssessmentJoinCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "join CODE",
		Short: "Join a partner's quiz session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Assessments.Join(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Joined session %s. Answer with `forward assessment quiz --session %s --partner b`.\n",
				sess.ID[:8], sess.ID)
			return nil
		},
	}
}

func newAssessmentAnswerCmd(app *App) *cobra.Command {
	var session, partner, question string
	var value int

	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Record a single quiz answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Assessments.RecordAnswer(context.Background(), session, domain.Partner(partner), question, value)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s = %d\n", question, value)
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "Session ID")
	cmd.Flags().StringVar(&partner, "partner", "", "Which partner is answering (a|b)")
	cmd.Flags().StringVar(&question, "question", "", "Question ID (e.g. fin-1)")
	cmd.Flags().IntVar(&value, "value", 0, "Answer on a 1-5 scale")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("partner")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

// newAssessmentQuizCmd walks the full question set with a huh form.
func newAssessmentQuizCmd(app *App) *cobra.Command {
	var session, partner string

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Answer every quiz question interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := runQuizForm()
			if err != nil {
				return err
			}

			ctx := context.Background()
			for questionID, value := range answers {
				if err := app.Assessments.RecordAnswer(ctx, session, domain.Partner(partner), questionID, value); err != nil {
					return fmt.Errorf("recording %s: %w", questionID, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d answers for partner %s.\n", len(answers), partner)
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "Session ID")
	cmd.Flags().StringVar(&partner, "partner", "a", "Which partner is answering (a|b)")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func newAssessmentScoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "score SESSION_ID",
		Short: "Score a completed session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Assessments.Score(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", formatter.FormatCompatibilityResult(result))
			return nil
		},
	}
}

// likertOptions is the shared 1-5 scale used by every quiz question.
func likertValue(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
