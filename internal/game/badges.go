package game

import "time"

// badgeRule describes one unlockable badge and its earn condition.
// Conditions only look at player state, so re-evaluating after every
// mutation is cheap.
type badgeRule struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      func(p *Player) bool
}

func badgeRules() []badgeRule {
	return []badgeRule{
		// Task completion milestones
		taskCountBadge("first_quest", "First Quest", "Complete 1 task", "✓", 1),
		taskCountBadge("productive", "Productive", "Complete 10 tasks", "📋", 10),
		taskCountBadge("achiever", "Achiever", "Complete 50 tasks", "🏅", 50),
		taskCountBadge("powerhouse", "Powerhouse", "Complete 100 tasks", "🏆", 100),

		// Level milestones
		levelBadge("seasoned", "Seasoned", "Reach level 5", "⭐", 5),
		levelBadge("veteran", "Veteran", "Reach level 10", "🌟", 10),

		// Streaks
		streakBadge("warming_up", "Warming Up", "3-day completion streak", "🔥", 3),
		streakBadge("week_strong", "Week Strong", "7-day completion streak", "📅", 7),
		streakBadge("unstoppable", "Unstoppable", "30-day completion streak", "🚀", 30),

		// Dice
		{
			ID: "gambler", Name: "Gambler", Description: "Roll the dice once", Icon: "🎲",
			Earned: func(p *Player) bool { return p.Stats.DiceRolls >= 1 },
		},
		{
			ID: "high_roller", Name: "High Roller", Description: "Roll a final result of 8", Icon: "💎",
			Earned: func(p *Player) bool { return p.Stats.HighestDiceRoll >= 8 },
		},

		// Lifetime points
		{
			ID: "point_hoarder", Name: "Point Hoarder", Description: "Earn 500 lifetime points", Icon: "💰",
			Earned: func(p *Player) bool { return p.TotalPoints >= 500 },
		},
	}
}

func taskCountBadge(id, name, desc, icon string, count int) badgeRule {
	return badgeRule{
		ID: id, Name: name, Description: desc, Icon: icon,
		Earned: func(p *Player) bool { return p.Stats.TasksCompleted >= count },
	}
}

func levelBadge(id, name, desc, icon string, level int) badgeRule {
	return badgeRule{
		ID: id, Name: name, Description: desc, Icon: icon,
		Earned: func(p *Player) bool { return p.Level >= level },
	}
}

func streakBadge(id, name, desc, icon string, days int) badgeRule {
	return badgeRule{
		ID: id, Name: name, Description: desc, Icon: icon,
		Earned: func(p *Player) bool { return p.Stats.StreakDays >= days },
	}
}

// unlockBadges appends newly earned badges to the player and returns
// them. Already-unlocked badges are never touched.
func unlockBadges(p *Player, now time.Time) []Badge {
	var unlocked []Badge
	for _, rule := range badgeRules() {
		if p.hasBadge(rule.ID) || !rule.Earned(p) {
			continue
		}
		t := now
		b := Badge{
			ID:          rule.ID,
			Name:        rule.Name,
			Description: rule.Description,
			Icon:        rule.Icon,
			UnlockedAt:  &t,
		}
		p.Badges = append(p.Badges, b)
		unlocked = append(unlocked, b)
	}
	return unlocked
}

// BadgeProgress pairs a badge definition with its earned state, for
// listing locked badges alongside unlocked ones.
type BadgeProgress struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
	UnlockedAt  *time.Time
}

// BadgeOverview returns every known badge with the player's earned
// state.
func BadgeOverview(p *Player) []BadgeProgress {
	out := make([]BadgeProgress, 0, len(badgeRules()))
	for _, rule := range badgeRules() {
		bp := BadgeProgress{
			ID:          rule.ID,
			Name:        rule.Name,
			Description: rule.Description,
			Icon:        rule.Icon,
		}
		for _, b := range p.Badges {
			if b.ID == rule.ID {
				bp.Earned = true
				bp.UnlockedAt = b.UnlockedAt
				break
			}
		}
		out = append(out, bp)
	}
	return out
}
