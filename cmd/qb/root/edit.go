package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/game"
	"questboard/internal/ui"
)

func newEditCmd() *cobra.Command {
	var title string
	var desc string
	var importance string
	var urgency string
	var category string
	var due string
	var clearDue bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's fields",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := resolveTask(s.mgr, args[0])
			if err != nil {
				return err
			}

			var upd game.TaskUpdate
			if cmd.Flags().Changed("title") {
				upd.Title = &title
			}
			if cmd.Flags().Changed("desc") {
				upd.Description = &desc
			}
			if cmd.Flags().Changed("importance") {
				i := game.ParseImportance(importance)
				upd.Importance = &i
			}
			if cmd.Flags().Changed("urgency") {
				u := game.ParseUrgency(urgency)
				upd.Urgency = &u
			}
			if cmd.Flags().Changed("category") {
				upd.Category = &category
			}
			if clearDue {
				upd.ClearDueDate = true
			} else if due != "" {
				d, err := parseDue(due)
				if err != nil {
					return err
				}
				upd.DueDate = d
			}

			updated, err := s.mgr.UpdateTask(ctx, t.ID, upd)
			if err != nil {
				return err
			}
			if updated == nil {
				return fmt.Errorf("no task matches %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(s.p.Sprintf("task.updated", updated.Title)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&desc, "desc", "d", "", "New description (empty clears)")
	cmd.Flags().StringVarP(&importance, "importance", "i", "", "Importance (low|medium|high)")
	cmd.Flags().StringVarP(&urgency, "urgency", "u", "", "Urgency (low|medium|high)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (empty clears)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date")

	return cmd
}
