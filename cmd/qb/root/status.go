package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player progression and board stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := s.mgr.Player()
			prog := s.mgr.Progress()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, p.Name))
			fmt.Fprintln(out, ui.LabelValue(s.p.Sprintf("player.level"), p.Level))
			fmt.Fprintln(out, ui.LabelValue(s.p.Sprintf("player.points"),
				fmt.Sprintf("%d (lifetime %d)", p.CurrentPoints, p.TotalPoints)))
			bar := ui.ProgressBar(prog.Progress, prog.NextLevelXP-prog.CurrentLevelXP, 24)
			fmt.Fprintln(out, ui.LabelValue(s.p.Sprintf("player.experience"),
				fmt.Sprintf("%d %s %s", p.Experience, bar, ui.Muted.Render(fmt.Sprintf("(next level at %d)", prog.NextLevelXP)))))
			fmt.Fprintln(out, ui.LabelValue(ui.IconFire+" Streak",
				fmt.Sprintf("%d day(s), best %d", p.Stats.CurrentStreak, p.Stats.StreakDays)))
			fmt.Fprintln(out, "")

			ts := s.mgr.TaskStats()
			fmt.Fprintln(out, ui.H2.Render("📊 Tasks"))
			fmt.Fprintf(out, "- total %d: %d todo, %d in progress, %d done (%.0f%%)\n",
				ts.Total, ts.Todo, ts.InProgress, ts.Completed, ts.CompletionRate)

			ds := s.mgr.DiceStats()
			fmt.Fprintln(out, ui.H2.Render(ui.IconDice+" Dice"))
			if ds.TotalRolls == 0 {
				fmt.Fprintln(out, ui.Muted.Render("- no rolls yet"))
			} else {
				fmt.Fprintf(out, "- %d roll(s), highest %d, average %.1f, %d XP earned\n",
					ds.TotalRolls, ds.HighestRoll, ds.AverageRoll, ds.TotalExperience)
			}

			earned := 0
			for _, b := range s.mgr.Badges() {
				if b.Earned {
					earned++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconBadge+" Badges"))
			fmt.Fprintf(out, "- %d of %d unlocked\n", earned, len(s.mgr.Badges()))
			return nil
		},
	}

	return cmd
}
