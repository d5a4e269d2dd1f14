package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task and collect points",
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
			res, err := s.mgr.CompleteTask(ctx, t.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res == nil {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+t.Title+" is already done."))
				return nil
			}

			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" "+s.p.Sprintf("task.completed", res.Task.Title)))
			fmt.Fprintln(out, s.p.Sprintf("task.points",
				res.Points.FinalPoints, res.Points.BasePoints, formatMultiplier(res.Points.ImportanceMultiplier)))
			fmt.Fprintln(out, ui.IconFire+" "+s.p.Sprintf("streak.days", res.Streak))
			if res.LevelUp {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconUp+" "+s.p.Sprintf("level.up", res.LevelBefore, res.LevelAfter)))
			}
			printUnlocks(out, s.p, res.Unlocked)
			return nil
		},
	}

	return cmd
}
