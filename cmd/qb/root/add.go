package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/game"
	"questboard/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var importance string
	var urgency string
	var category string
	var due string
	var status string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the board",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			in := game.CreateTaskInput{
				Title:       args[0],
				Description: desc,
				Importance:  game.ParseImportance(importance),
				Urgency:     game.ParseUrgency(urgency),
				Category:    category,
			}
			if status != "" {
				st, ok := game.ParseStatus(status)
				if !ok {
					return fmt.Errorf("invalid status %q (todo|in_progress|done)", status)
				}
				in.Status = st
			}
			if due != "" {
				d, err := parseDue(due)
				if err != nil {
					return err
				}
				in.DueDate = d
			}

			t, err := s.mgr.CreateTask(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" "+s.p.Sprintf("task.created", t.Title)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+t.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "d", "", "Task description")
	cmd.Flags().StringVarP(&importance, "importance", "i", "medium", "Importance (low|medium|high)")
	cmd.Flags().StringVarP(&urgency, "urgency", "u", "medium", "Urgency (low|medium|high)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "", "Starting column (todo|in_progress|done)")

	return cmd
}
