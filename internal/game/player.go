package game

import (
	"time"

	"github.com/google/uuid"
)

// Player holds the session-wide progression state. TotalPoints,
// Level and Experience never decrease; CurrentPoints goes down on
// dice-roll spends and up on task completions.
type Player struct {
	ID            string
	Name          string
	CurrentPoints int
	TotalPoints   int
	Level         int
	Experience    int
	Badges        []Badge
	Stats         PlayerStats
}

type PlayerStats struct {
	TasksCompleted     int
	DiceRolls          int
	TotalPointsEarned  int
	HighestDiceRoll    int
	StreakDays         int
	CurrentStreak      int
	LastCompletionDate *time.Time
}

// Badge is an unlocked achievement. Immutable once unlocked.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	UnlockedAt  *time.Time
}

// NewPlayer returns a fresh level-1 player with zeroed points and stats.
func NewPlayer(name string) *Player {
	if name == "" {
		name = "Player"
	}
	return &Player{
		ID:    uuid.NewString(),
		Name:  name,
		Level: 1,
	}
}

// addPoints credits earned points to both the spendable and lifetime
// totals.
func (p *Player) addPoints(points int) {
	p.CurrentPoints += points
	p.TotalPoints += points
}

// spendPoints deducts from the spendable balance only. Returns false
// when the balance is too low; TotalPoints is never touched.
func (p *Player) spendPoints(points int) bool {
	if p.CurrentPoints < points {
		return false
	}
	p.CurrentPoints -= points
	return true
}

// CanAfford reports whether the player can spend the given points.
func (p *Player) CanAfford(points int) bool {
	return p.CurrentPoints >= points
}

// hasBadge reports whether the badge id is already unlocked.
func (p *Player) hasBadge(id string) bool {
	for _, b := range p.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// clone returns a value copy safe to hand out to callers.
func (p *Player) clone() Player {
	out := *p
	out.Badges = append([]Badge(nil), p.Badges...)
	if p.Stats.LastCompletionDate != nil {
		t := *p.Stats.LastCompletionDate
		out.Stats.LastCompletionDate = &t
	}
	return out
}
