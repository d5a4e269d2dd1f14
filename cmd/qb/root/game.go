package root

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/message"

	"questboard/internal/config"
	"questboard/internal/game"
	"questboard/internal/i18n"
	"questboard/internal/storage"
	"questboard/internal/ui"
)

// session bundles everything a command needs: the game manager and the
// locale-aware printer.
type session struct {
	mgr *game.Manager
	p   *message.Printer
}

func openSession(ctx context.Context) (*session, func(), error) {
	cfgPath, err := config.DefaultPath()
	if err != nil {
		// No config dir; defaults + env still apply.
		cfgPath = ""
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	store, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}

	mgr, err := game.NewManager(ctx, store, game.WithPlayerName(cfg.PlayerName))
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = store.Close()
	}
	return &session{mgr: mgr, p: i18n.Printer(cfg.Locale)}, cleanup, nil
}

// resolveTask accepts a full task id or a unique id prefix.
func resolveTask(mgr *game.Manager, arg string) (game.Task, error) {
	if t, ok := mgr.Task(arg); ok {
		return t, nil
	}
	var matches []game.Task
	for _, t := range mgr.Tasks() {
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return game.Task{}, fmt.Errorf("no task matches %q", arg)
	default:
		return game.Task{}, fmt.Errorf("id prefix %q is ambiguous (%d matches)", arg, len(matches))
	}
}

func parseDue(s string) (*time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("parse due date %q (want YYYY-MM-DD): %w", s, err)
	}
	return &d, nil
}

func formatMultiplier(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

func printTaskLine(out io.Writer, t game.Task, now time.Time) {
	extras := []string{string(t.Importance) + "/" + string(t.Urgency)}
	if t.Category != nil {
		extras = append(extras, *t.Category)
	}
	if t.DueDate != nil {
		due := "due " + t.DueDate.Format("2006-01-02")
		if t.IsOverdue(now) {
			due = ui.Bad.Render(due + " " + ui.IconClock)
		}
		extras = append(extras, due)
	}
	if t.PointsEarned != nil {
		extras = append(extras, fmt.Sprintf("+%d pts", *t.PointsEarned))
	}
	fmt.Fprintf(out, "  %s %s %s\n",
		ui.Muted.Render(ui.ShortID(t.ID)), t.Title, ui.Muted.Render("("+strings.Join(extras, ", ")+")"))
}

func printUnlocks(out io.Writer, p *message.Printer, badges []game.Badge) {
	for _, b := range badges {
		fmt.Fprintln(out, ui.Gold.Render(p.Sprintf("badge.unlocked", b.Icon, b.Name, b.Description)))
	}
}
