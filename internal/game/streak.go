package game

import "time"

// UpdateStreak advances the daily completion streak for a completion
// happening at now.
//
// Day deltas are calendar days (UTC), not 24h windows: completing at
// 23:59 and again at 00:01 counts as consecutive days. A negative
// delta (clock skew) is treated like a same-day completion.
func UpdateStreak(stats *PlayerStats, now time.Time) {
	last := stats.LastCompletionDate
	switch {
	case last == nil:
		stats.CurrentStreak = 1
		if stats.StreakDays < 1 {
			stats.StreakDays = 1
		}
	default:
		switch days := daysBetween(*last, now); {
		case days <= 0:
			// Same day (or clock skew): streak unchanged.
		case days == 1:
			stats.CurrentStreak++
			if stats.CurrentStreak > stats.StreakDays {
				stats.StreakDays = stats.CurrentStreak
			}
		default:
			stats.CurrentStreak = 1
		}
	}

	t := now
	stats.LastCompletionDate = &t
}

// daysBetween returns the number of calendar days from a to b in UTC.
func daysBetween(a, b time.Time) int {
	a = a.UTC()
	b = b.UTC()
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da) / (24 * time.Hour))
}
