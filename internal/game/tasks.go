package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStore is the in-memory task collection. It is exclusively owned
// by the Manager; all mutations stay in memory and persistence is the
// owner's job.
type TaskStore struct {
	tasks []Task
}

func NewTaskStore(initial []Task) *TaskStore {
	return &TaskStore{tasks: initial}
}

type CreateTaskInput struct {
	Title       string
	Description string
	Importance  Importance
	Urgency     Urgency
	Status      Status
	Category    string
	DueDate     *time.Time
}

// TaskUpdate carries the fields to merge into an existing task. Nil
// fields are left alone. Status changes go through ChangeStatus so the
// completion invariant holds.
type TaskUpdate struct {
	Title        *string
	Description  *string
	Importance   *Importance
	Urgency      *Urgency
	Category     *string
	DueDate      *time.Time
	ClearDueDate bool
}

// Create assigns a fresh id and creation timestamp. Missing tiers fall
// back to the defaults, a missing status to todo.
func (s *TaskStore) Create(in CreateTaskInput, now time.Time) Task {
	t := Task{
		ID:         uuid.NewString(),
		Title:      strings.TrimSpace(in.Title),
		Importance: in.Importance,
		Urgency:    in.Urgency,
		Status:     in.Status,
		CreatedAt:  now,
	}
	if in.Description != "" {
		d := in.Description
		t.Description = &d
	}
	if in.Category != "" {
		c := in.Category
		t.Category = &c
	}
	if in.DueDate != nil {
		d := *in.DueDate
		t.DueDate = &d
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
	s.tasks = append(s.tasks, t)
	return t
}

// Get returns a copy of the task and whether it exists.
func (s *TaskStore) Get(id string) (Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return Task{}, false
}

// All returns a copy of the collection in insertion order.
func (s *TaskStore) All() []Task {
	return append([]Task(nil), s.tasks...)
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Update merges the given fields into the task. The boolean is false
// when the id is absent.
func (s *TaskStore) Update(id string, upd TaskUpdate) (Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if upd.Title != nil && strings.TrimSpace(*upd.Title) != "" {
			t.Title = strings.TrimSpace(*upd.Title)
		}
		if upd.Description != nil {
			if *upd.Description == "" {
				t.Description = nil
			} else {
				d := *upd.Description
				t.Description = &d
			}
		}
		if upd.Importance != nil && upd.Importance.IsValid() {
			t.Importance = *upd.Importance
		}
		if upd.Urgency != nil && upd.Urgency.IsValid() {
			t.Urgency = *upd.Urgency
		}
		if upd.Category != nil {
			if *upd.Category == "" {
				t.Category = nil
			} else {
				c := *upd.Category
				t.Category = &c
			}
		}
		if upd.ClearDueDate {
			t.DueDate = nil
		} else if upd.DueDate != nil {
			d := *upd.DueDate
			t.DueDate = &d
		}
		return *t, true
	}
	return Task{}, false
}

// Delete removes the task. Returns false when the id is absent.
func (s *TaskStore) Delete(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// ChangeStatus moves the task to the given column. Entering done sets
// CompletedAt; leaving done clears CompletedAt and PointsEarned.
// Transitions are allowed in any direction.
func (s *TaskStore) ChangeStatus(id string, status Status, now time.Time) (Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if status == StatusDone && t.Status != StatusDone {
			c := now
			t.CompletedAt = &c
		} else if status != StatusDone {
			t.CompletedAt = nil
			t.PointsEarned = nil
		}
		t.Status = status
		return *t, true
	}
	return Task{}, false
}

// Complete transitions the task directly to done with the awarded
// points. No-op (false) when the task is missing or already done.
func (s *TaskStore) Complete(id string, points int, now time.Time) (Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if t.Status == StatusDone {
			return Task{}, false
		}
		c := now
		p := points
		t.Status = StatusDone
		t.CompletedAt = &c
		t.PointsEarned = &p
		return *t, true
	}
	return Task{}, false
}

// ByStatus groups tasks into their kanban columns.
func (s *TaskStore) ByStatus() map[Status][]Task {
	out := map[Status][]Task{}
	for _, t := range s.tasks {
		out[t.Status] = append(out[t.Status], t)
	}
	return out
}

// Replace swaps the whole collection (import path).
func (s *TaskStore) Replace(tasks []Task) {
	s.tasks = append([]Task(nil), tasks...)
}

// TaskStats summarizes the collection for the status view.
type TaskStats struct {
	Total          int
	Completed      int
	InProgress     int
	Todo           int
	CompletionRate float64
}

func (s *TaskStore) Stats() TaskStats {
	st := TaskStats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		switch t.Status {
		case StatusDone:
			st.Completed++
		case StatusInProgress:
			st.InProgress++
		case StatusTodo:
			st.Todo++
		}
	}
	if st.Total > 0 {
		st.CompletionRate = float64(st.Completed) / float64(st.Total) * 100
	}
	return st
}

// Matrix is the Eisenhower urgency/importance breakdown.
type Matrix struct {
	UrgentImportant       []Task
	NotUrgentImportant    []Task
	UrgentNotImportant    []Task
	NotUrgentNotImportant []Task
}

func (s *TaskStore) EisenhowerMatrix() Matrix {
	var m Matrix
	for _, t := range s.tasks {
		urgent := t.Urgency == UrgencyHigh
		important := t.Importance == ImportanceHigh
		switch {
		case urgent && important:
			m.UrgentImportant = append(m.UrgentImportant, t)
		case important:
			m.NotUrgentImportant = append(m.NotUrgentImportant, t)
		case urgent:
			m.UrgentNotImportant = append(m.UrgentNotImportant, t)
		default:
			m.NotUrgentNotImportant = append(m.NotUrgentNotImportant, t)
		}
	}
	return m
}
