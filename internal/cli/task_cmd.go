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

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks on a dream",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskAssignCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var dream, title, assignee, milestone, due string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a dream",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dreamID, err := resolveDreamID(ctx, app, dream)
			if err != nil {
				return err
			}

			t := &domain.Task{
				ID:          uuid.New().String(),
				DreamID:     dreamID,
				MilestoneID: milestone,
				Title:       title,
				Assignee:    domain.TaskAssignee(assignee),
				Status:      domain.TaskTodo,
			}
			if due != "" {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				t.DueDate = &dueDate
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %q to dream %s\n", t.Title, dreamID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&dream, "dream", "", "Dream reference (id, prefix or title)")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&assignee, "assignee", "both", "Assignee (me|partner|both)")
	cmd.Flags().StringVar(&milestone, "milestone", "", "Milestone ID to attach the task to")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("dream")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var dream string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a dream's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dreamID, err := resolveDreamID(ctx, app, dream)
			if err != nil {
				return err
			}

			tasks, err := app.Tasks.ListByDream(ctx, dreamID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks on this dream.")
				return nil
			}

			now := time.Now()
			for _, t := range tasks {
				line := fmt.Sprintf("%s %s  %s  %s",
					formatter.TaskMark(t.Status), t.Title, formatter.AssigneeTag(t.Assignee), formatter.Dim(t.ID[:8]))
				if t.Overdue(now) {
					line += "  " + formatter.StyleRed.Render("overdue")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dream, "dream", "", "Dream reference (id, prefix or title)")
	_ = cmd.MarkFlagRequired("dream")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Complete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed task %s\n", args[0])
			return nil
		},
	}
}

func newTaskAssignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assign ID ASSIGNEE",
		Short: "Reassign a task (me|partner|both)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Assign(context.Background(), args[0], domain.TaskAssignee(args[1])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Assigned task %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s\n", args[0])
			return nil
		},
	}
}
