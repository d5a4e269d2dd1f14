package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"questboard/internal/game"
	"questboard/internal/ui"
)

func newRollCmd() *cobra.Command {
	var urgency string

	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Spend points to roll the dice for XP",
		Long: fmt.Sprintf(`Spend %d points to roll a d6. Higher urgency adds a bonus to the
result, and the final result decides the XP reward.`, game.DiceCost),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := s.mgr.RollDice(ctx, game.ParseUrgency(urgency))
			if err != nil {
				var insufficient game.InsufficientPointsError
				if errors.As(err, &insufficient) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" "+
						s.p.Sprintf("dice.insufficient", insufficient.Cost, insufficient.Current)))
					return nil
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconDice, s.p.Sprintf("dice.rolled",
				res.Roll.FinalResult, res.Roll.BaseRoll, res.Roll.UrgencyBonus)))
			fmt.Fprintln(out, ui.Good.Render(s.p.Sprintf("dice.experience", res.Roll.Experience)))
			if res.LevelUp {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconUp+" "+s.p.Sprintf("level.up", res.LevelBefore, res.LevelAfter)))
			}
			printUnlocks(out, s.p, res.Unlocked)
			return nil
		},
	}

	cmd.Flags().StringVarP(&urgency, "urgency", "u", "medium", "Urgency bonus tier (low|medium|high)")

	return cmd
}
