package game

import "testing"

func TestLevelForExperienceBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{399, 2},
		{400, 3},
		{899, 3},
		{900, 4},
	}
	for _, tc := range cases {
		if got := LevelForExperience(tc.xp); got != tc.want {
			t.Errorf("LevelForExperience(%d)=%d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestLevelCurveMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 20_000; xp += 13 {
		lvl := LevelForExperience(xp)
		if lvl < 1 {
			t.Fatalf("LevelForExperience(%d)=%d < 1", xp, lvl)
		}
		if lvl < prev {
			t.Fatalf("curve decreased at xp=%d: %d -> %d", xp, prev, lvl)
		}
		prev = lvl
	}
}

// The threshold formula must be the exact inverse of the level curve:
// reaching XPForLevel(L) puts the player at level L, and one XP short
// leaves them below it.
func TestXPForLevelInvertsCurve(t *testing.T) {
	for level := 1; level <= 30; level++ {
		threshold := XPForLevel(level)
		if got := LevelForExperience(threshold); got != level {
			t.Errorf("LevelForExperience(XPForLevel(%d)=%d)=%d", level, threshold, got)
		}
		if level > 1 {
			if got := LevelForExperience(threshold - 1); got != level-1 {
				t.Errorf("LevelForExperience(%d)=%d, want %d", threshold-1, got, level-1)
			}
		}
		if XPForNextLevel(level) != XPForLevel(level+1) {
			t.Errorf("XPForNextLevel(%d)=%d != XPForLevel(%d)=%d",
				level, XPForNextLevel(level), level+1, XPForLevel(level+1))
		}
	}
}

func TestProgressToNextLevel(t *testing.T) {
	p := &Player{Level: 2, Experience: 250}
	got := ProgressToNextLevel(p)
	want := LevelProgress{CurrentLevelXP: 100, NextLevelXP: 400, Progress: 150, Remaining: 150}
	if got != want {
		t.Fatalf("ProgressToNextLevel=%+v, want %+v", got, want)
	}
}
