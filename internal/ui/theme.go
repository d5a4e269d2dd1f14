package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"questboard/internal/game"
)

// Questboard theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconTask    = "🗂️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconDice    = "🎲"
	IconFire    = "🔥"
	IconBadge   = "🏅"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconUp      = "⬆️"
	IconClock   = "⏰"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelFocus  = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cAccent).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status game.Status) string {
	switch status {
	case game.StatusTodo:
		return Warn.Render("todo")
	case game.StatusInProgress:
		return H2.Render("in progress")
	case game.StatusDone:
		return Good.Render("done")
	default:
		return Muted.Render(string(status))
	}
}

func ImportanceText(i game.Importance) string {
	switch i {
	case game.ImportanceHigh:
		return Bad.Render("high")
	case game.ImportanceMedium:
		return Warn.Render("medium")
	default:
		return Muted.Render("low")
	}
}

func UrgencyText(u game.Urgency) string {
	switch u {
	case game.UrgencyHigh:
		return Bad.Render("high")
	case game.UrgencyMedium:
		return Warn.Render("medium")
	default:
		return Muted.Render("low")
	}
}

// ProgressBar renders a plain [###---] bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// ShortID renders the first eight characters of an id for display.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
