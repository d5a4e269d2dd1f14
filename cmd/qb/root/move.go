package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/game"
	"questboard/internal/ui"
)

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a task to another column",
		Long: `Move a task between kanban columns (todo, in_progress, done).

Moving into done through this command awards no points; use "qb done"
to complete a task and collect the reward.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("id and status are required")
			}
			if _, ok := game.ParseStatus(args[1]); !ok {
				return fmt.Errorf("invalid status %q (todo|in_progress|done)", args[1])
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
			status, _ := game.ParseStatus(args[1])
			moved, err := s.mgr.MoveTask(ctx, t.ID, status)
			if err != nil {
				return err
			}
			if moved == nil {
				return fmt.Errorf("no task matches %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(s.p.Sprintf("task.moved", moved.Title, string(moved.Status))))
			return nil
		},
	}

	return cmd
}
