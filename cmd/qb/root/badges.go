package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/ui"
)

func newBadgesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show unlocked badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBadge, "Badges"))
			shown := 0
			for _, b := range s.mgr.Badges() {
				if !b.Earned && !all {
					continue
				}
				shown++
				if b.Earned {
					when := ""
					if b.UnlockedAt != nil {
						when = ui.Muted.Render(" (" + b.UnlockedAt.Format("2006-01-02") + ")")
					}
					fmt.Fprintf(out, "%s %s — %s%s\n", b.Icon, ui.Gold.Render(b.Name), b.Description, when)
				} else {
					fmt.Fprintf(out, "🔒 %s — %s\n", ui.Muted.Render(b.Name), ui.Muted.Render(b.Description))
				}
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No badges yet. Complete tasks to earn them."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include locked badges")

	return cmd
}
