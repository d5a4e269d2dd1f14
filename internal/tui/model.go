package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"questboard/internal/game"
	"questboard/internal/ui"
)

// columns fixes the kanban column order.
var columns = []game.Status{game.StatusTodo, game.StatusInProgress, game.StatusDone}

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Complete  key.Binding
	Roll      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column right")),
	MoveLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "move task left")),
	MoveRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "move task right")),
	Complete:  key.NewBinding(key.WithKeys("c", " "), key.WithHelp("c/space", "complete")),
	Roll:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "roll dice")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type boardModel struct {
	ctx context.Context
	mgr *game.Manager

	width  int
	height int

	cols      map[game.Status][]game.Task
	activeCol int
	cursor    map[game.Status]int

	lastLog string
}

type actionMsg struct {
	log string
	err error
}

func newBoardModel(ctx context.Context, mgr *game.Manager) boardModel {
	m := boardModel{
		ctx:     ctx,
		mgr:     mgr,
		cursor:  map[game.Status]int{},
		lastLog: "Ready.",
	}
	m.refresh()
	return m
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

// refresh re-reads the columns from the manager and clamps the cursors.
func (m *boardModel) refresh() {
	m.cols = m.mgr.TasksByStatus()
	for _, status := range columns {
		if m.cursor[status] >= len(m.cols[status]) {
			m.cursor[status] = len(m.cols[status]) - 1
		}
		if m.cursor[status] < 0 {
			m.cursor[status] = 0
		}
	}
}

// current returns the task under the cursor, if any.
func (m boardModel) current() (game.Task, bool) {
	status := columns[m.activeCol]
	tasks := m.cols[status]
	row := m.cursor[status]
	if row < 0 || row >= len(tasks) {
		return game.Task{}, false
	}
	return tasks[row], true
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.mgr.CompleteTask(m.ctx, id)
		if err != nil {
			return actionMsg{err: err}
		}
		if res == nil {
			return actionMsg{log: "Already done."}
		}
		log := fmt.Sprintf("%s +%d points", res.Task.Title, res.Points.FinalPoints)
		if res.LevelUp {
			log += fmt.Sprintf(" · %s %d → %d", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
		}
		for _, b := range res.Unlocked {
			log += fmt.Sprintf(" · %s %s", b.Icon, b.Name)
		}
		return actionMsg{log: log}
	}
}

func (m boardModel) moveCmd(id string, status game.Status) tea.Cmd {
	return func() tea.Msg {
		t, err := m.mgr.MoveTask(m.ctx, id, status)
		if err != nil {
			return actionMsg{err: err}
		}
		if t == nil {
			return actionMsg{log: "Task not found."}
		}
		return actionMsg{log: fmt.Sprintf("Moved %s to %s.", t.Title, t.Status)}
	}
}

func (m boardModel) rollCmd() tea.Cmd {
	return func() tea.Msg {
		urgency := game.DefaultUrgency
		if t, ok := m.current(); ok {
			urgency = t.Urgency
		}
		res, err := m.mgr.RollDice(m.ctx, urgency)
		if err != nil {
			return actionMsg{err: err}
		}
		log := fmt.Sprintf("%s rolled %d (d6 %d + bonus %d): +%d XP",
			ui.IconDice, res.Roll.FinalResult, res.Roll.BaseRoll, res.Roll.UrgencyBonus, res.Roll.Experience)
		if res.LevelUp {
			log += fmt.Sprintf(" · %s %d → %d", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
		}
		for _, b := range res.Unlocked {
			log += fmt.Sprintf(" · %s %s", b.Icon, b.Name)
		}
		return actionMsg{log: log}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case actionMsg:
		if msg.err != nil {
			m.lastLog = ui.Bad.Render(msg.err.Error())
		} else {
			m.lastLog = msg.log
		}
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Left):
			if m.activeCol > 0 {
				m.activeCol--
			}
			return m, nil
		case key.Matches(msg, keys.Right):
			if m.activeCol < len(columns)-1 {
				m.activeCol++
			}
			return m, nil
		case key.Matches(msg, keys.Up):
			status := columns[m.activeCol]
			if m.cursor[status] > 0 {
				m.cursor[status]--
			}
			return m, nil
		case key.Matches(msg, keys.Down):
			status := columns[m.activeCol]
			if m.cursor[status] < len(m.cols[status])-1 {
				m.cursor[status]++
			}
			return m, nil
		case key.Matches(msg, keys.MoveLeft):
			t, ok := m.current()
			if !ok || m.activeCol == 0 {
				return m, nil
			}
			return m, m.moveCmd(t.ID, columns[m.activeCol-1])
		case key.Matches(msg, keys.MoveRight):
			t, ok := m.current()
			if !ok || m.activeCol == len(columns)-1 {
				return m, nil
			}
			if columns[m.activeCol+1] == game.StatusDone {
				// Moving into done through the board completes the
				// task so the points are awarded.
				return m, m.completeCmd(t.ID)
			}
			return m, m.moveCmd(t.ID, columns[m.activeCol+1])
		case key.Matches(msg, keys.Complete):
			t, ok := m.current()
			if !ok {
				return m, nil
			}
			if t.Status == game.StatusDone {
				m.lastLog = "Already done."
				return m, nil
			}
			return m, m.completeCmd(t.ID)
		case key.Matches(msg, keys.Roll):
			return m, m.rollCmd()
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	header := m.renderHeader()
	board := m.renderColumns()
	footer := m.renderFooter()
	return header + "\n" + board + "\n" + footer + "\n"
}

func (m boardModel) renderHeader() string {
	p := m.mgr.Player()
	prog := m.mgr.Progress()
	bar := ui.ProgressBar(prog.Progress, prog.NextLevelXP-prog.CurrentLevelXP, 24)
	return fmt.Sprintf("%s  %s · Level %d · %d pts · XP %d %s",
		ui.Heading(ui.IconTask, "Questboard"), p.Name, p.Level, p.CurrentPoints, p.Experience, bar)
}

func (m boardModel) renderColumns() string {
	colWidth := 28
	if m.width > 0 {
		w := m.width/len(columns) - 4
		if w < 18 {
			w = 18
		}
		if w < colWidth {
			colWidth = w
		}
	}

	rendered := make([]string, 0, len(columns))
	for i, status := range columns {
		rendered = append(rendered, m.renderColumn(i, status, colWidth))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m boardModel) renderColumn(idx int, status game.Status, width int) string {
	tasks := m.cols[status]
	title := fmt.Sprintf("%s (%d)", ui.StatusText(status), len(tasks))

	lines := []string{ui.PanelTitle.Render(title), ""}
	if len(tasks) == 0 {
		lines = append(lines, ui.Muted.Render("(empty)"))
	}
	for row, t := range tasks {
		cursor := "  "
		label := truncate(t.Title, width-6)
		if idx == m.activeCol && row == m.cursor[status] {
			cursor = "> "
			label = ui.SelectedRow.Render(label)
		}
		marker := ""
		if t.Importance == game.ImportanceHigh {
			marker = " !"
		}
		lines = append(lines, cursor+label+marker)
	}

	panel := ui.Panel
	if idx == m.activeCol {
		panel = ui.PanelFocus
	}
	return panel.Width(width).Render(strings.Join(lines, "\n"))
}

func (m boardModel) renderFooter() string {
	help := []string{
		keys.Up.Help().Key + "/" + keys.Down.Help().Key + " move",
		keys.Left.Help().Key + "/" + keys.Right.Help().Key + " column",
		keys.MoveLeft.Help().Key + keys.MoveRight.Help().Key + " move task",
		keys.Complete.Help().Key + " complete",
		keys.Roll.Help().Key + " roll",
		keys.Quit.Help().Key + " quit",
	}
	return ui.Muted.Render(strings.Join(help, " · ")) + "\n" + m.lastLog
}

func truncate(s string, width int) string {
	if width <= 1 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
