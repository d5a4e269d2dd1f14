package game

import (
	"strings"
	"time"
)

type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

func (i Importance) IsValid() bool {
	switch i {
	case ImportanceLow, ImportanceMedium, ImportanceHigh:
		return true
	default:
		return false
	}
}

// DefaultImportance is used when user input is missing/invalid.
const DefaultImportance Importance = ImportanceMedium

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	default:
		return false
	}
}

const DefaultUrgency Urgency = UrgencyMedium

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ParseImportance parses user input to an Importance.
// If input is empty or unrecognized, returns DefaultImportance.
func ParseImportance(input string) Importance {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "low", "l":
		return ImportanceLow
	case "medium", "med", "m":
		return ImportanceMedium
	case "high", "h":
		return ImportanceHigh
	default:
		return DefaultImportance
	}
}

// ParseUrgency parses user input to an Urgency.
// If input is empty or unrecognized, returns DefaultUrgency.
func ParseUrgency(input string) Urgency {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "low", "l":
		return UrgencyLow
	case "medium", "med", "m":
		return UrgencyMedium
	case "high", "h":
		return UrgencyHigh
	default:
		return DefaultUrgency
	}
}

// ParseStatus parses user input to a Status. The boolean reports whether
// the input named a known status.
func ParseStatus(input string) (Status, bool) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "todo":
		return StatusTodo, true
	case "in_progress", "in-progress", "doing", "wip":
		return StatusInProgress, true
	case "done":
		return StatusDone, true
	default:
		return "", false
	}
}

// Task is a single kanban card. PointsEarned and CompletedAt are set if
// and only if Status == StatusDone.
type Task struct {
	ID           string
	Title        string
	Description  *string
	Importance   Importance
	Urgency      Urgency
	Status       Status
	Category     *string
	DueDate      *time.Time
	CreatedAt    time.Time
	CompletedAt  *time.Time
	PointsEarned *int
}

// IsOverdue reports whether the task has a due date in the past and is
// not done yet.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	return t.DueDate.Before(now)
}
