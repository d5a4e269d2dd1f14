package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"questboard/internal/game"
	"questboard/internal/ui"
)

func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Show the Eisenhower urgency/importance matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			m := s.mgr.EisenhowerMatrix()
			out := cmd.OutOrStdout()
			now := time.Now()

			quadrants := []struct {
				title string
				tasks []game.Task
			}{
				{"🔴 Urgent & Important — do first", m.UrgentImportant},
				{"🟡 Important, Not Urgent — schedule", m.NotUrgentImportant},
				{"🔵 Urgent, Not Important — delegate", m.UrgentNotImportant},
				{"⚪ Neither — maybe drop", m.NotUrgentNotImportant},
			}
			for _, q := range quadrants {
				fmt.Fprintln(out, ui.H2.Render(q.title))
				if len(q.tasks) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("  (empty)"))
					continue
				}
				for _, t := range q.tasks {
					printTaskLine(out, t, now)
				}
			}
			return nil
		},
	}

	return cmd
}
