package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"questboard/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "qb",
	Short:         "Questboard — gamified kanban to-do board",
	Long:          "Questboard is a local-first CLI/TUI kanban board with points, levels, streaks, badges and a dice minigame.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newEditCmd(),
		newRmCmd(),
		newMoveCmd(),
		newDoneCmd(),
		newRollCmd(),
		newStatusCmd(),
		newBadgesCmd(),
		newMatrixCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
