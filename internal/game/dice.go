package game

import (
	"math/rand"
	"time"
)

const (
	// DiceCost is the point cost of one roll, deducted by the manager
	// before the roll happens.
	DiceCost = 5

	diceSides = 6
)

// diceExperience maps a final result to its experience reward. The
// final result is baseRoll (1–6) plus the urgency bonus (0–2), so the
// table covers the full [1,8] range and no cap is needed.
var diceExperience = map[int]int{
	1: 10,
	2: 15,
	3: 20,
	4: 25,
	5: 30,
	6: 35,
	7: 45,
	8: 60,
}

// DiceRoll is a historical record of one roll. Records are immutable
// once created and appended to the manager's history.
type DiceRoll struct {
	BaseRoll     int
	UrgencyBonus int
	FinalResult  int
	Urgency      Urgency
	Timestamp    time.Time
	Experience   int
}

func urgencyBonus(u Urgency) int {
	switch u {
	case UrgencyLow:
		return 0
	case UrgencyHigh:
		return 2
	case UrgencyMedium:
		fallthrough
	default:
		return 1
	}
}

// UrgencyBonus returns the dice bonus for the given tier.
func UrgencyBonus(u Urgency) int {
	return urgencyBonus(u)
}

// RollDice rolls a d6, adds the urgency bonus and looks up the
// experience reward. Affordability is the caller's concern.
func RollDice(rng *rand.Rand, u Urgency, now time.Time) DiceRoll {
	base := rng.Intn(diceSides) + 1
	bonus := urgencyBonus(u)
	final := base + bonus
	return DiceRoll{
		BaseRoll:     base,
		UrgencyBonus: bonus,
		FinalResult:  final,
		Urgency:      u,
		Timestamp:    now,
		Experience:   diceExperience[final],
	}
}

// DiceStats summarizes a roll history.
type DiceStats struct {
	TotalRolls      int
	HighestRoll     int
	AverageRoll     float64
	TotalExperience int
}

// SummarizeRolls computes aggregate statistics over a roll history.
func SummarizeRolls(rolls []DiceRoll) DiceStats {
	stats := DiceStats{TotalRolls: len(rolls)}
	if len(rolls) == 0 {
		return stats
	}
	sum := 0
	for _, r := range rolls {
		sum += r.FinalResult
		stats.TotalExperience += r.Experience
		if r.FinalResult > stats.HighestRoll {
			stats.HighestRoll = r.FinalResult
		}
	}
	stats.AverageRoll = float64(sum) / float64(len(rolls))
	return stats
}
