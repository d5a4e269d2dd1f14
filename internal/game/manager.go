package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"questboard/internal/storage"
)

// Manager is the single entry point coordinating the task store, point
// calculator, dice subsystem, level curve, streak tracker and the
// storage capability. It exclusively owns the in-memory player, task
// collection and dice history for the session, and persists all of it
// wholesale after every mutation.
type Manager struct {
	store storage.Store
	rng   *rand.Rand
	now   func() time.Time

	player *Player
	tasks  *TaskStore
	rolls  []DiceRoll

	// bootstrapName is only consulted when no player exists in
	// storage yet.
	bootstrapName string
}

type Option func(*Manager)

// WithRandSource injects the random source used for point and dice
// outcomes, so tests can seed it.
func WithRandSource(src rand.Source) Option {
	return func(m *Manager) { m.rng = rand.New(src) }
}

// WithClock injects the clock used for timestamps and streak math.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithPlayerName sets the display name used when bootstrapping a new
// player on first run.
func WithPlayerName(name string) Option {
	return func(m *Manager) { m.bootstrapName = name }
}

// NewManager loads the persisted state from the store, creating a
// default player on first run. Corrupt or missing sections degrade to
// empty state rather than failing.
func NewManager(ctx context.Context, store storage.Store, opts ...Option) (*Manager, error) {
	m := &Manager{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	var taskDocs []taskDoc
	if _, err := loadSection(ctx, store, KeyTasks, &taskDocs); err != nil {
		return nil, err
	}
	m.tasks = NewTaskStore(decodeTasks(taskDocs))

	var pDoc playerDoc
	havePlayer, err := loadSection(ctx, store, KeyPlayer, &pDoc)
	if err != nil {
		return nil, err
	}
	if havePlayer {
		m.player = decodePlayer(pDoc)
	} else {
		m.player = NewPlayer(m.bootstrapName)
		if err := m.save(ctx); err != nil {
			return nil, err
		}
	}

	var rollDocs []rollDoc
	if _, err := loadSection(ctx, store, KeyDiceHistory, &rollDocs); err != nil {
		return nil, err
	}
	m.rolls = decodeRolls(rollDocs)

	return m, nil
}

// save persists the entire state. Not atomic across keys; a crash
// between writes can lose the newest blob, which is an accepted
// limitation of the wholesale policy.
func (m *Manager) save(ctx context.Context) error {
	if err := saveSection(ctx, m.store, KeyTasks, encodeTasks(m.tasks.All())); err != nil {
		return err
	}
	if err := saveSection(ctx, m.store, KeyPlayer, encodePlayer(m.player)); err != nil {
		return err
	}
	if err := saveSection(ctx, m.store, KeyDiceHistory, encodeRolls(m.rolls)); err != nil {
		return err
	}
	return saveSection(ctx, m.store, KeyDataVersion, DataVersion)
}

// CreateTask validates the title, delegates to the task store and
// persists.
func (m *Manager) CreateTask(ctx context.Context, in CreateTaskInput) (Task, error) {
	if in.Title == "" {
		return Task{}, errors.New("title is required")
	}
	t := m.tasks.Create(in, m.now())
	if err := m.save(ctx); err != nil {
		return Task{}, err
	}
	return t, nil
}

// UpdateTask merges fields into the task. Returns (nil, nil) when the
// id is absent.
func (m *Manager) UpdateTask(ctx context.Context, id string, upd TaskUpdate) (*Task, error) {
	t, ok := m.tasks.Update(id, upd)
	if !ok {
		return nil, nil
	}
	if err := m.save(ctx); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes the task; false when the id is absent.
func (m *Manager) DeleteTask(ctx context.Context, id string) (bool, error) {
	if !m.tasks.Delete(id) {
		return false, nil
	}
	if err := m.save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// MoveTask changes the task's kanban column. Moving into done via this
// path awards no points; that is what CompleteTask is for. Returns
// (nil, nil) when the id is absent.
func (m *Manager) MoveTask(ctx context.Context, id string, status Status) (*Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %q", status)
	}
	t, ok := m.tasks.ChangeStatus(id, status, m.now())
	if !ok {
		return nil, nil
	}
	if err := m.save(ctx); err != nil {
		return nil, err
	}
	return &t, nil
}

// CompleteResult reports everything one completion changed.
type CompleteResult struct {
	Task        Task
	Points      PointCalculation
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Streak      int
	Unlocked    []Badge
}

// CompleteTask awards points for the task and updates the player's
// totals, stats, streak, level and badges. Returns (nil, nil) when the
// task is missing or already done, so double completion is a no-op.
func (m *Manager) CompleteTask(ctx context.Context, id string) (*CompleteResult, error) {
	t, ok := m.tasks.Get(id)
	if !ok || t.Status == StatusDone {
		return nil, nil
	}

	now := m.now()
	calc := CalculatePoints(m.rng, t.Importance)
	completed, ok := m.tasks.Complete(id, calc.FinalPoints, now)
	if !ok {
		return nil, nil
	}

	levelBefore := m.player.Level
	m.player.addPoints(calc.FinalPoints)
	m.player.Stats.TasksCompleted++
	m.player.Stats.TotalPointsEarned += calc.FinalPoints
	UpdateStreak(&m.player.Stats, now)
	m.recomputeLevel()
	unlocked := unlockBadges(m.player, now)

	if err := m.save(ctx); err != nil {
		return nil, err
	}
	return &CompleteResult{
		Task:        completed,
		Points:      calc,
		LevelBefore: levelBefore,
		LevelAfter:  m.player.Level,
		LevelUp:     m.player.Level > levelBefore,
		Streak:      m.player.Stats.CurrentStreak,
		Unlocked:    unlocked,
	}, nil
}

// RollResult reports one dice-roll spend.
type RollResult struct {
	Roll        DiceRoll
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Unlocked    []Badge
}

// RollDice charges the fixed cost and rolls. Below the cost it returns
// an InsufficientPointsError and changes nothing.
func (m *Manager) RollDice(ctx context.Context, u Urgency) (*RollResult, error) {
	if !m.player.spendPoints(DiceCost) {
		return nil, InsufficientPointsError{Cost: DiceCost, Current: m.player.CurrentPoints}
	}

	now := m.now()
	roll := RollDice(m.rng, u, now)
	m.rolls = append(m.rolls, roll)

	levelBefore := m.player.Level
	m.player.Stats.DiceRolls++
	if roll.FinalResult > m.player.Stats.HighestDiceRoll {
		m.player.Stats.HighestDiceRoll = roll.FinalResult
	}
	m.player.Experience += roll.Experience
	m.recomputeLevel()
	unlocked := unlockBadges(m.player, now)

	if err := m.save(ctx); err != nil {
		return nil, err
	}
	return &RollResult{
		Roll:        roll,
		LevelBefore: levelBefore,
		LevelAfter:  m.player.Level,
		LevelUp:     m.player.Level > levelBefore,
		Unlocked:    unlocked,
	}, nil
}

// recomputeLevel derives the level from experience, never lowering it.
func (m *Manager) recomputeLevel() {
	if lvl := LevelForExperience(m.player.Experience); lvl > m.player.Level {
		m.player.Level = lvl
	}
}

// Player returns a copy of the player state.
func (m *Manager) Player() Player {
	return m.player.clone()
}

// Task returns a copy of one task and whether it exists.
func (m *Manager) Task(id string) (Task, bool) {
	return m.tasks.Get(id)
}

// Tasks returns all tasks in insertion order.
func (m *Manager) Tasks() []Task {
	return m.tasks.All()
}

// TasksByStatus groups tasks into kanban columns.
func (m *Manager) TasksByStatus() map[Status][]Task {
	return m.tasks.ByStatus()
}

// TaskStats summarizes the collection.
func (m *Manager) TaskStats() TaskStats {
	return m.tasks.Stats()
}

// EisenhowerMatrix buckets tasks by urgency and importance.
func (m *Manager) EisenhowerMatrix() Matrix {
	return m.tasks.EisenhowerMatrix()
}

// DiceHistory returns the roll history, oldest first.
func (m *Manager) DiceHistory() []DiceRoll {
	return append([]DiceRoll(nil), m.rolls...)
}

// DiceStats summarizes the roll history.
func (m *Manager) DiceStats() DiceStats {
	return SummarizeRolls(m.rolls)
}

// Progress reports the player's position within the current level.
func (m *Manager) Progress() LevelProgress {
	return ProgressToNextLevel(m.player)
}

// Badges returns every known badge with the player's earned state.
func (m *Manager) Badges() []BadgeProgress {
	return BadgeOverview(m.player)
}

// Export bundles the whole state into one JSON document.
func (m *Manager) Export() ([]byte, error) {
	doc := exportDoc{
		Tasks:       encodeTasks(m.tasks.All()),
		Player:      ptr(encodePlayer(m.player)),
		DiceHistory: encodeRolls(m.rolls),
		Timestamp:   formatTime(m.now()),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// Import applies each present section of the bundle independently and
// persists. Absent sections leave the current state alone.
func (m *Manager) Import(ctx context.Context, data []byte) error {
	var doc exportDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse import: %w", err)
	}
	if doc.Tasks != nil {
		m.tasks.Replace(decodeTasks(doc.Tasks))
	}
	if doc.Player != nil {
		m.player = decodePlayer(*doc.Player)
	}
	if doc.DiceHistory != nil {
		m.rolls = decodeRolls(doc.DiceHistory)
	}
	return m.save(ctx)
}

// Reset wipes the persisted state and reinitializes the session with a
// fresh default player.
func (m *Manager) Reset(ctx context.Context) error {
	for _, key := range []string{KeyTasks, KeyPlayer, KeyDiceHistory, KeySettings, KeyDataVersion} {
		if err := m.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	m.tasks = NewTaskStore(nil)
	m.player = NewPlayer(m.bootstrapName)
	m.rolls = nil
	return m.save(ctx)
}

func ptr[T any](v T) *T {
	return &v
}
