package game

import (
	"math/rand"
	"testing"
)

func TestImportanceMultiplier(t *testing.T) {
	cases := []struct {
		importance Importance
		want       float64
	}{
		{ImportanceLow, 1},
		{ImportanceMedium, 1.5},
		{ImportanceHigh, 2},
	}
	for _, tc := range cases {
		if got := ImportanceMultiplier(tc.importance); got != tc.want {
			t.Errorf("ImportanceMultiplier(%s)=%v, want %v", tc.importance, got, tc.want)
		}
	}
}

func TestCalculatePointsRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// finalPoints = floor(base × multiplier) with base in {1,2,3}.
	wantFinals := map[Importance]map[int]bool{
		ImportanceLow:    {1: true, 2: true, 3: true},
		ImportanceMedium: {1: true, 3: true, 4: true},
		ImportanceHigh:   {2: true, 4: true, 6: true},
	}

	for imp, finals := range wantFinals {
		for i := 0; i < 200; i++ {
			calc := CalculatePoints(rng, imp)
			if calc.BasePoints < 1 || calc.BasePoints > 3 {
				t.Fatalf("%s: base=%d out of [1,3]", imp, calc.BasePoints)
			}
			if !finals[calc.FinalPoints] {
				t.Fatalf("%s: final=%d not a valid outcome", imp, calc.FinalPoints)
			}
			if imp != ImportanceLow && calc.FinalPoints < calc.BasePoints {
				t.Fatalf("%s: final=%d < base=%d", imp, calc.FinalPoints, calc.BasePoints)
			}
			if imp == ImportanceLow && calc.FinalPoints != calc.BasePoints {
				t.Fatalf("low: final=%d != base=%d", calc.FinalPoints, calc.BasePoints)
			}
		}
	}
}

func TestCalculatePointsCoversBaseRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		seen[CalculatePoints(rng, ImportanceLow).BasePoints] = true
	}
	for base := 1; base <= 3; base++ {
		if !seen[base] {
			t.Errorf("base point %d never rolled in 500 tries", base)
		}
	}
}
