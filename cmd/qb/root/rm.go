package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
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
			ok, err := s.mgr.DeleteTask(ctx, t.ID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no task matches %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(s.p.Sprintf("task.deleted", t.Title)))
			return nil
		},
	}

	return cmd
}
