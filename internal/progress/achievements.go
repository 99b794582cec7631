package progress

// defaultAchievements returns the built-in achievement set, all locked.
func defaultAchievements() []Achievement {
	return []Achievement{
		{
			ID:          "first-quiz",
			Title:       "Getting Started",
			Description: "Complete your first quiz",
			Type:        AchievementAttempts,
			Requirement: 1,
		},
		{
			ID:          "perfect-score",
			Title:       "Perfect Score",
			Description: "Score 100% on any quiz",
			Type:        AchievementScore,
			Requirement: 100,
		},
		{
			ID:          "week-streak",
			Title:       "Week Warrior",
			Description: "Study for 7 consecutive days",
			Type:        AchievementStreak,
			Requirement: 7,
		},
		{
			ID:          "speed-demon",
			Title:       "Speed Demon",
			Description: "Complete a quiz in under 5 minutes",
			Type:        AchievementTime,
			Requirement: 300,
		},
		{
			ID:          "category-master",
			Title:       "Category Master",
			Description: "Complete 10 quizzes in the same category",
			Type:        AchievementCategory,
			Requirement: 10,
		},
		{
			ID:          "century-club",
			Title:       "Century Club",
			Description: "Complete 100 quizzes",
			Type:        AchievementAttempts,
			Requirement: 100,
		},
	}
}

// checkAchievements unlocks any achievement whose requirement the new
// attempt or the current aggregates satisfy. An unlocked achievement
// never re-locks and its UnlockedAt never changes.
func (t *Tracker) checkAchievements(a Attempt) {
	for i := range t.Achievements {
		ach := &t.Achievements[i]
		if ach.IsUnlocked {
			continue
		}

		met := false
		switch ach.Type {
		case AchievementAttempts:
			met = t.Stats.TotalAttempts >= ach.Requirement
		case AchievementScore:
			met = a.Score >= float64(ach.Requirement)
		case AchievementStreak:
			met = t.Stats.StudyStreak.CurrentStreak >= ach.Requirement
		case AchievementTime:
			met = a.TimeSpent <= ach.Requirement
		case AchievementCategory:
			count := 0
			for _, prev := range t.Attempts {
				if prev.Category == a.Category {
					count++
				}
			}
			met = count >= ach.Requirement
		}

		if met {
			ach.IsUnlocked = true
			when := t.now()
			ach.UnlockedAt = &when
		}
	}
}

// UnlockedAchievements returns the achievements unlocked so far.
func (t *Tracker) UnlockedAchievements() []Achievement {
	var out []Achievement
	for _, a := range t.Achievements {
		if a.IsUnlocked {
			out = append(out, a)
		}
	}
	return out
}
