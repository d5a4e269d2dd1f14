package game

import (
	"math"
	"math/rand"
)

const (
	basePointMin = 1
	basePointMax = 3
)

// PointCalculation is the reward breakdown for one task completion.
type PointCalculation struct {
	BasePoints           int
	ImportanceMultiplier float64
	FinalPoints          int
	Importance           Importance
}

func importanceMultiplier(i Importance) float64 {
	switch i {
	case ImportanceLow:
		return 1
	case ImportanceHigh:
		return 2
	case ImportanceMedium:
		fallthrough
	default:
		return 1.5
	}
}

// ImportanceMultiplier returns the point multiplier for the given tier.
func ImportanceMultiplier(i Importance) float64 {
	return importanceMultiplier(i)
}

// CalculatePoints derives reward points for a completed task: a uniform
// base roll in [1,3] scaled by the importance multiplier, floored.
// The random source is injected so outcomes are testable.
func CalculatePoints(rng *rand.Rand, i Importance) PointCalculation {
	base := rng.Intn(basePointMax-basePointMin+1) + basePointMin
	mult := importanceMultiplier(i)
	return PointCalculation{
		BasePoints:           base,
		ImportanceMultiplier: mult,
		FinalPoints:          int(math.Floor(float64(base) * mult)),
		Importance:           i,
	}
}
