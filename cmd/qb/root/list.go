package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"questboard/internal/game"
	"questboard/internal/ui"
)

func newListCmd() *cobra.Command {
	var status string
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks by column",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			columns := []game.Status{game.StatusTodo, game.StatusInProgress, game.StatusDone}
			if status != "" {
				st, ok := game.ParseStatus(status)
				if !ok {
					return fmt.Errorf("invalid status %q (todo|in_progress|done)", status)
				}
				columns = []game.Status{st}
			}

			byStatus := s.mgr.TasksByStatus()
			now := time.Now()
			out := cmd.OutOrStdout()
			total := 0
			for _, st := range columns {
				tasks := byStatus[st]
				if category != "" {
					filtered := tasks[:0:0]
					for _, t := range tasks {
						if t.Category != nil && *t.Category == category {
							filtered = append(filtered, t)
						}
					}
					tasks = filtered
				}
				fmt.Fprintf(out, "%s (%d)\n", ui.StatusText(st), len(tasks))
				for _, t := range tasks {
					printTaskLine(out, t, now)
				}
				total += len(tasks)
			}
			if total == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks. Add one with `qb add`."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Only one column (todo|in_progress|done)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Only tasks in this category")

	return cmd
}
