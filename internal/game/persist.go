package game

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"questboard/internal/storage"
)

// Storage keys. One JSON blob per key; the whole state is rewritten
// after every mutation.
const (
	KeyTasks       = "tasks"
	KeyPlayer      = "player"
	KeyDiceHistory = "dice_history"
	KeySettings    = "settings"
	KeyDataVersion = "data_version"
)

// DataVersion is the schema version written alongside the state blobs.
const DataVersion = 1

// Persisted documents. Dates travel as ISO-8601 (RFC 3339) strings so
// a load can tolerate bad values: a list item with an invalid required
// date is dropped, an invalid optional date becomes unset. Nothing on
// the load path is fatal.

type taskDoc struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Importance   string  `json:"importance"`
	Urgency      string  `json:"urgency"`
	Status       string  `json:"status"`
	Category     *string `json:"category,omitempty"`
	DueDate      *string `json:"dueDate,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	CompletedAt  *string `json:"completedAt,omitempty"`
	PointsEarned *int    `json:"pointsEarned,omitempty"`
}

type badgeDoc struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	UnlockedAt  *string `json:"unlockedAt,omitempty"`
}

type statsDoc struct {
	TasksCompleted     int     `json:"tasksCompleted"`
	DiceRolls          int     `json:"diceRolls"`
	TotalPointsEarned  int     `json:"totalPointsEarned"`
	HighestDiceRoll    int     `json:"highestDiceRoll"`
	StreakDays         int     `json:"streakDays"`
	CurrentStreak      int     `json:"currentStreak"`
	LastCompletionDate *string `json:"lastCompletionDate,omitempty"`
}

type playerDoc struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	CurrentPoints int        `json:"currentPoints"`
	TotalPoints   int        `json:"totalPoints"`
	Level         int        `json:"level"`
	Experience    int        `json:"experience"`
	Badges        []badgeDoc `json:"badges"`
	Stats         statsDoc   `json:"stats"`
}

type rollDoc struct {
	BaseRoll     int    `json:"baseRoll"`
	UrgencyBonus int    `json:"urgencyBonus"`
	FinalResult  int    `json:"finalResult"`
	Urgency      string `json:"urgency"`
	Timestamp    string `json:"timestamp"`
	Experience   int    `json:"experience"`
}

// exportDoc is the interchange bundle for export/import.
type exportDoc struct {
	Tasks       []taskDoc  `json:"tasks"`
	Player      *playerDoc `json:"player"`
	DiceHistory []rollDoc  `json:"diceHistory"`
	Timestamp   string     `json:"timestamp"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func parseTime(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseTimePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := parseTime(*s)
	if !ok {
		return nil
	}
	return &t
}

func encodeTask(t Task) taskDoc {
	return taskDoc{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Importance:   string(t.Importance),
		Urgency:      string(t.Urgency),
		Status:       string(t.Status),
		Category:     t.Category,
		DueDate:      formatTimePtr(t.DueDate),
		CreatedAt:    formatTime(t.CreatedAt),
		CompletedAt:  formatTimePtr(t.CompletedAt),
		PointsEarned: t.PointsEarned,
	}
}

// decodeTask revives one task. The boolean is false when the record
// must be dropped (invalid creation date).
func decodeTask(d taskDoc) (Task, bool) {
	createdAt, ok := parseTime(d.CreatedAt)
	if !ok {
		return Task{}, false
	}
	t := Task{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Importance:   Importance(d.Importance),
		Urgency:      Urgency(d.Urgency),
		Status:       Status(d.Status),
		Category:     d.Category,
		DueDate:      parseTimePtr(d.DueDate),
		CreatedAt:    createdAt,
		CompletedAt:  parseTimePtr(d.CompletedAt),
		PointsEarned: d.PointsEarned,
	}
	if !t.Importance.IsValid() {
		t.Importance = DefaultImportance
	}
	if !t.Urgency.IsValid() {
		t.Urgency = DefaultUrgency
	}
	if !t.Status.IsValid() {
		t.Status = StatusTodo
	}
	return t, true
}

func encodeTasks(tasks []Task) []taskDoc {
	out := make([]taskDoc, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, encodeTask(t))
	}
	return out
}

func decodeTasks(docs []taskDoc) []Task {
	var out []Task
	for _, d := range docs {
		if t, ok := decodeTask(d); ok {
			out = append(out, t)
		}
	}
	return out
}

func encodePlayer(p *Player) playerDoc {
	badges := make([]badgeDoc, 0, len(p.Badges))
	for _, b := range p.Badges {
		badges = append(badges, badgeDoc{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
			UnlockedAt:  formatTimePtr(b.UnlockedAt),
		})
	}
	return playerDoc{
		ID:            p.ID,
		Name:          p.Name,
		CurrentPoints: p.CurrentPoints,
		TotalPoints:   p.TotalPoints,
		Level:         p.Level,
		Experience:    p.Experience,
		Badges:        badges,
		Stats: statsDoc{
			TasksCompleted:     p.Stats.TasksCompleted,
			DiceRolls:          p.Stats.DiceRolls,
			TotalPointsEarned:  p.Stats.TotalPointsEarned,
			HighestDiceRoll:    p.Stats.HighestDiceRoll,
			StreakDays:         p.Stats.StreakDays,
			CurrentStreak:      p.Stats.CurrentStreak,
			LastCompletionDate: formatTimePtr(p.Stats.LastCompletionDate),
		},
	}
}

func decodePlayer(d playerDoc) *Player {
	p := &Player{
		ID:            d.ID,
		Name:          d.Name,
		CurrentPoints: d.CurrentPoints,
		TotalPoints:   d.TotalPoints,
		Level:         d.Level,
		Experience:    d.Experience,
		Stats: PlayerStats{
			TasksCompleted:     d.Stats.TasksCompleted,
			DiceRolls:          d.Stats.DiceRolls,
			TotalPointsEarned:  d.Stats.TotalPointsEarned,
			HighestDiceRoll:    d.Stats.HighestDiceRoll,
			StreakDays:         d.Stats.StreakDays,
			CurrentStreak:      d.Stats.CurrentStreak,
			LastCompletionDate: parseTimePtr(d.Stats.LastCompletionDate),
		},
	}
	if p.Level < 1 {
		p.Level = 1
	}
	for _, b := range d.Badges {
		p.Badges = append(p.Badges, Badge{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
			UnlockedAt:  parseTimePtr(b.UnlockedAt),
		})
	}
	return p
}

func encodeRolls(rolls []DiceRoll) []rollDoc {
	out := make([]rollDoc, 0, len(rolls))
	for _, r := range rolls {
		out = append(out, rollDoc{
			BaseRoll:     r.BaseRoll,
			UrgencyBonus: r.UrgencyBonus,
			FinalResult:  r.FinalResult,
			Urgency:      string(r.Urgency),
			Timestamp:    formatTime(r.Timestamp),
			Experience:   r.Experience,
		})
	}
	return out
}

func decodeRolls(docs []rollDoc) []DiceRoll {
	var out []DiceRoll
	for _, d := range docs {
		ts, ok := parseTime(d.Timestamp)
		if !ok {
			continue
		}
		out = append(out, DiceRoll{
			BaseRoll:     d.BaseRoll,
			UrgencyBonus: d.UrgencyBonus,
			FinalResult:  d.FinalResult,
			Urgency:      Urgency(d.Urgency),
			Timestamp:    ts,
			Experience:   d.Experience,
		})
	}
	return out
}

// loadSection unmarshals one storage key into out. A missing key or an
// unreadable blob both degrade to "no data" so a corrupt entry never
// blocks startup.
func loadSection(ctx context.Context, store storage.Store, key string, out any) (bool, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, nil
	}
	return true, nil
}

func saveSection(ctx context.Context, store storage.Store, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
