package game

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"questboard/internal/storage"
)

func newTestManager(t *testing.T, store storage.Store) *Manager {
	t.Helper()
	m, err := NewManager(context.Background(), store,
		WithRandSource(rand.NewSource(1)),
		WithClock(func() time.Time { return time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC) }),
	)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestNewManagerBootstrapsDefaultPlayer(t *testing.T) {
	store := storage.NewMemoryStore()
	m := newTestManager(t, store)

	p := m.Player()
	if p.Name != "Player" || p.Level != 1 || p.CurrentPoints != 0 {
		t.Fatalf("default player=%+v", p)
	}

	// The bootstrap is persisted immediately.
	data, err := store.Get(context.Background(), KeyPlayer)
	if err != nil || data == nil {
		t.Fatalf("player blob not persisted: %v %v", data, err)
	}
}

func TestCompleteTaskAwardsPoints(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, storage.NewMemoryStore())

	task, err := m.CreateTask(ctx, CreateTaskInput{Title: "ship it", Importance: ImportanceHigh})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	before := m.Player()
	res, err := m.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result")
	}

	// floor(base × 2) for base in {1,2,3}.
	switch res.Points.FinalPoints {
	case 2, 4, 6:
	default:
		t.Fatalf("high importance points=%d, want one of 2/4/6", res.Points.FinalPoints)
	}

	after := m.Player()
	if after.TotalPoints != before.TotalPoints+res.Points.FinalPoints {
		t.Fatalf("totalPoints=%d, want +%d", after.TotalPoints, res.Points.FinalPoints)
	}
	if after.CurrentPoints != before.CurrentPoints+res.Points.FinalPoints {
		t.Fatalf("currentPoints=%d, want +%d", after.CurrentPoints, res.Points.FinalPoints)
	}
	if after.Stats.TasksCompleted != 1 {
		t.Fatalf("tasksCompleted=%d, want 1", after.Stats.TasksCompleted)
	}
	if after.Stats.CurrentStreak != 1 {
		t.Fatalf("currentStreak=%d, want 1", after.Stats.CurrentStreak)
	}

	got, _ := m.Task(task.ID)
	if got.Status != StatusDone || got.PointsEarned == nil || *got.PointsEarned != res.Points.FinalPoints {
		t.Fatalf("completed task=%+v", got)
	}

	// first_quest badge unlocks on the first completion.
	found := false
	for _, b := range res.Unlocked {
		if b.ID == "first_quest" {
			found = true
		}
	}
	if !found {
		t.Fatalf("unlocked=%v, want first_quest", res.Unlocked)
	}
}

func TestCompleteTaskIdempotent(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, storage.NewMemoryStore())

	task, _ := m.CreateTask(ctx, CreateTaskInput{Title: "once"})
	if res, err := m.CompleteTask(ctx, task.ID); err != nil || res == nil {
		t.Fatalf("first complete: %v %v", res, err)
	}

	res, err := m.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if res != nil {
		t.Fatal("double completion must be a no-op")
	}
	if got := m.Player().Stats.TasksCompleted; got != 1 {
		t.Fatalf("tasksCompleted=%d, want 1", got)
	}

	if res, err := m.CompleteTask(ctx, "missing"); err != nil || res != nil {
		t.Fatalf("missing id: res=%v err=%v, want nil/nil", res, err)
	}
}

func TestRollDiceScenario(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, storage.NewMemoryStore())

	// Earn some points first, then pin the balance to 12.
	task, _ := m.CreateTask(ctx, CreateTaskInput{Title: "earn"})
	if _, err := m.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	m.player.CurrentPoints = 12

	res, err := m.RollDice(ctx, UrgencyMedium)
	if err != nil {
		t.Fatalf("RollDice: %v", err)
	}
	if got := m.Player().CurrentPoints; got != 7 {
		t.Fatalf("currentPoints=%d, want 7 after 5-point spend", got)
	}
	if res.Roll.UrgencyBonus != 1 {
		t.Fatalf("bonus=%d, want 1", res.Roll.UrgencyBonus)
	}
	if res.Roll.FinalResult < 2 || res.Roll.FinalResult > 7 {
		t.Fatalf("final=%d, want [2,7]", res.Roll.FinalResult)
	}
	if res.Roll.Experience != diceExperience[res.Roll.FinalResult] {
		t.Fatalf("experience=%d, want table value", res.Roll.Experience)
	}

	p := m.Player()
	if p.Stats.DiceRolls != 1 {
		t.Fatalf("diceRolls=%d, want 1", p.Stats.DiceRolls)
	}
	if p.Stats.HighestDiceRoll != res.Roll.FinalResult {
		t.Fatalf("highestDiceRoll=%d, want %d", p.Stats.HighestDiceRoll, res.Roll.FinalResult)
	}
	if p.Experience != res.Roll.Experience {
		t.Fatalf("experience=%d, want %d", p.Experience, res.Roll.Experience)
	}
	if len(m.DiceHistory()) != 1 {
		t.Fatalf("history len=%d, want 1", len(m.DiceHistory()))
	}
}

func TestRollDiceInsufficientPoints(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, storage.NewMemoryStore())

	_, err := m.RollDice(ctx, UrgencyLow)
	var insufficient InsufficientPointsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err=%v, want InsufficientPointsError", err)
	}
	if insufficient.Cost != DiceCost {
		t.Fatalf("cost=%d, want %d", insufficient.Cost, DiceCost)
	}
	if got := m.Player().CurrentPoints; got != 0 {
		t.Fatalf("currentPoints=%d, want unchanged 0", got)
	}
	if len(m.DiceHistory()) != 0 {
		t.Fatal("failed roll must not be recorded")
	}
}

func TestStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := newTestManager(t, store)

	due := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	task, _ := m.CreateTask(ctx, CreateTaskInput{
		Title:       "persisted",
		Description: "with all fields",
		Importance:  ImportanceHigh,
		Urgency:     UrgencyHigh,
		Category:    "work",
		DueDate:     &due,
	})
	if _, err := m.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// A second manager over the same store sees identical state.
	reloaded := newTestManager(t, store)
	got, ok := reloaded.Task(task.ID)
	if !ok {
		t.Fatal("task lost in round trip")
	}
	want, _ := m.Task(task.ID)
	if got.Title != want.Title || *got.Description != *want.Description ||
		got.Importance != want.Importance || *got.Category != *want.Category {
		t.Fatalf("reloaded=%+v, want %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.DueDate.Equal(*want.DueDate) ||
		!got.CompletedAt.Equal(*want.CompletedAt) {
		t.Fatalf("date fields drifted: %+v vs %+v", got, want)
	}

	p, q := m.Player(), reloaded.Player()
	if p.ID != q.ID || p.TotalPoints != q.TotalPoints || p.Stats.TasksCompleted != q.Stats.TasksCompleted {
		t.Fatalf("player drifted: %+v vs %+v", p, q)
	}
}

func TestLoadDropsInvalidDates(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	blob, _ := json.Marshal([]taskDoc{
		{ID: "good", Title: "ok", Importance: "low", Urgency: "low", Status: "todo",
			CreatedAt: "2025-04-02T09:00:00Z"},
		{ID: "bad", Title: "broken", Importance: "low", Urgency: "low", Status: "todo",
			CreatedAt: "not-a-date"},
		{ID: "optional", Title: "bad due", Importance: "low", Urgency: "low", Status: "todo",
			CreatedAt: "2025-04-02T09:00:00Z", DueDate: ptr("garbage")},
	})
	if err := store.Set(ctx, KeyTasks, blob); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	m := newTestManager(t, store)
	tasks := m.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("len=%d, want 2 (invalid createdAt dropped)", len(tasks))
	}
	for _, task := range tasks {
		if task.ID == "bad" {
			t.Fatal("task with invalid createdAt survived the load")
		}
		if task.ID == "optional" && task.DueDate != nil {
			t.Fatal("invalid optional date must be unset, not fatal")
		}
	}
}

func TestLoadDegradesCorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Set(ctx, KeyTasks, []byte("{not json")); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	m := newTestManager(t, store)
	if len(m.Tasks()) != 0 {
		t.Fatal("corrupt blob must degrade to empty state")
	}
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, storage.NewMemoryStore())

	task, _ := m.CreateTask(ctx, CreateTaskInput{Title: "travel", Importance: ImportanceMedium})
	if _, err := m.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	data, err := m.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	fresh := newTestManager(t, storage.NewMemoryStore())
	if err := fresh.Import(ctx, data); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(fresh.Tasks()) != 1 {
		t.Fatalf("imported tasks=%d, want 1", len(fresh.Tasks()))
	}
	if fresh.Player().Stats.TasksCompleted != 1 {
		t.Fatalf("imported stats=%+v", fresh.Player().Stats)
	}

	// Sections absent from the bundle leave current state alone.
	if err := fresh.Import(ctx, []byte(`{"tasks":[]}`)); err != nil {
		t.Fatalf("partial import: %v", err)
	}
	if len(fresh.Tasks()) != 0 {
		t.Fatal("present empty section must apply")
	}
	if fresh.Player().Stats.TasksCompleted != 1 {
		t.Fatal("absent player section must not reset the player")
	}

	if err := fresh.Import(ctx, []byte("nope")); err == nil {
		t.Fatal("invalid bundle must fail")
	}
}

func TestResetWipesState(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	m := newTestManager(t, store)

	task, _ := m.CreateTask(ctx, CreateTaskInput{Title: "gone"})
	if _, err := m.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	oldID := m.Player().ID

	if err := m.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(m.Tasks()) != 0 || len(m.DiceHistory()) != 0 {
		t.Fatal("reset must clear tasks and dice history")
	}
	if m.Player().ID == oldID {
		t.Fatal("reset must create a fresh player")
	}
}

func TestMoveTask(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(t, storage.NewMemoryStore())

	task, _ := m.CreateTask(ctx, CreateTaskInput{Title: "drag me"})
	moved, err := m.MoveTask(ctx, task.ID, StatusInProgress)
	if err != nil || moved == nil || moved.Status != StatusInProgress {
		t.Fatalf("moved=%+v err=%v", moved, err)
	}

	// Moving into done without CompleteTask awards nothing.
	done, err := m.MoveTask(ctx, task.ID, StatusDone)
	if err != nil || done.PointsEarned != nil {
		t.Fatalf("done=%+v err=%v, want no points", done, err)
	}
	if m.Player().TotalPoints != 0 {
		t.Fatal("column move must not award points")
	}

	if res, err := m.MoveTask(ctx, "missing", StatusDone); err != nil || res != nil {
		t.Fatalf("missing id: res=%v err=%v, want nil/nil", res, err)
	}
	if _, err := m.MoveTask(ctx, task.ID, Status("bogus")); err == nil {
		t.Fatal("invalid status must error")
	}
}
