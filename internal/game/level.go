package game

import "math"

// LevelForExperience maps accumulated experience to a level. The curve
// is monotonic: below 100 XP the player is level 1, after that
// floor(sqrt(xp/100)) + 1.
func LevelForExperience(xp int) int {
	if xp < 100 {
		return 1
	}
	return int(math.Floor(math.Sqrt(float64(xp)/100))) + 1
}

// XPForLevel returns the experience threshold at which the given level
// is reached. It is the inverse of LevelForExperience: for every level
// L >= 1, LevelForExperience(XPForLevel(L)) == L.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}

// XPForNextLevel returns the experience threshold of the level after
// the given one.
func XPForNextLevel(level int) int {
	return level * level * 100
}

// LevelProgress describes how far a player is into their current level.
type LevelProgress struct {
	CurrentLevelXP int
	NextLevelXP    int
	Progress       int
	Remaining      int
}

// ProgressToNextLevel is a pure function of the player's level and
// experience.
func ProgressToNextLevel(p *Player) LevelProgress {
	cur := XPForLevel(p.Level)
	next := XPForNextLevel(p.Level)
	return LevelProgress{
		CurrentLevelXP: cur,
		NextLevelXP:    next,
		Progress:       p.Experience - cur,
		Remaining:      next - p.Experience,
	}
}
