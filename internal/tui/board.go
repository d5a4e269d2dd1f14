package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"questboard/internal/game"
)

func RunBoard(ctx context.Context, mgr *game.Manager, out io.Writer) error {
	m := newBoardModel(ctx, mgr)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
