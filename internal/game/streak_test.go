package game

import (
	"testing"
	"time"
)

func day(d int, hour int) time.Time {
	return time.Date(2025, 3, d, hour, 0, 0, 0, time.UTC)
}

func TestUpdateStreakFirstCompletion(t *testing.T) {
	stats := PlayerStats{}
	UpdateStreak(&stats, day(10, 9))
	if stats.CurrentStreak != 1 || stats.StreakDays != 1 {
		t.Fatalf("current=%d streakDays=%d, want 1/1", stats.CurrentStreak, stats.StreakDays)
	}
	if stats.LastCompletionDate == nil || !stats.LastCompletionDate.Equal(day(10, 9)) {
		t.Fatalf("lastCompletionDate=%v, want %v", stats.LastCompletionDate, day(10, 9))
	}
}

func TestUpdateStreakSameDay(t *testing.T) {
	stats := PlayerStats{CurrentStreak: 4, StreakDays: 6}
	last := day(10, 8)
	stats.LastCompletionDate = &last

	UpdateStreak(&stats, day(10, 22))
	if stats.CurrentStreak != 4 || stats.StreakDays != 6 {
		t.Fatalf("same day changed counters: current=%d streakDays=%d", stats.CurrentStreak, stats.StreakDays)
	}
}

func TestUpdateStreakNextDay(t *testing.T) {
	stats := PlayerStats{CurrentStreak: 6, StreakDays: 6}
	last := day(10, 23)
	stats.LastCompletionDate = &last

	// 23:00 -> next day 01:00 is under 24h but a new calendar day.
	UpdateStreak(&stats, day(11, 1))
	if stats.CurrentStreak != 7 {
		t.Fatalf("current=%d, want 7", stats.CurrentStreak)
	}
	if stats.StreakDays != 7 {
		t.Fatalf("streakDays=%d, want 7", stats.StreakDays)
	}
}

func TestUpdateStreakGapResets(t *testing.T) {
	stats := PlayerStats{CurrentStreak: 9, StreakDays: 9}
	last := day(10, 12)
	stats.LastCompletionDate = &last

	UpdateStreak(&stats, day(13, 12))
	if stats.CurrentStreak != 1 {
		t.Fatalf("current=%d, want 1 after 3-day gap", stats.CurrentStreak)
	}
	if stats.StreakDays != 9 {
		t.Fatalf("streakDays=%d, want 9 (historical max preserved)", stats.StreakDays)
	}
}

func TestUpdateStreakClockSkew(t *testing.T) {
	stats := PlayerStats{CurrentStreak: 5, StreakDays: 5}
	last := day(10, 12)
	stats.LastCompletionDate = &last

	// now before lastCompletionDate: treated like a same-day completion.
	UpdateStreak(&stats, day(8, 12))
	if stats.CurrentStreak != 5 || stats.StreakDays != 5 {
		t.Fatalf("clock skew changed counters: current=%d streakDays=%d", stats.CurrentStreak, stats.StreakDays)
	}
	if !stats.LastCompletionDate.Equal(day(8, 12)) {
		t.Fatalf("lastCompletionDate=%v, want now", stats.LastCompletionDate)
	}
}
