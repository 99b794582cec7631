package progress

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// weakAreaThreshold is the mean score below which a category counts as
// a weak area.
const weakAreaThreshold = 70

// Tracker aggregates attempts. Callers hold a *Tracker explicitly and
// pass it where needed; there is no package-level instance.
type Tracker struct {
	Attempts         []Attempt
	CategoryProgress []CategoryProgress
	LearningGoals    []LearningGoal
	Achievements     []Achievement
	Stats            UserStats

	now func() time.Time
}

// NewTracker returns an empty tracker with the default achievement set.
func NewTracker() *Tracker {
	return &Tracker{
		Achievements: defaultAchievements(),
		now:          time.Now,
	}
}

// RecordAttempt appends the attempt and recomputes every aggregate:
// overall stats from scratch, the calendar-day streak, the touched
// category's progress, achievements, and learning-goal progress.
// A missing ID or CompletedAt is filled in.
func (t *Tracker) RecordAttempt(a Attempt) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CompletedAt.IsZero() {
		a.CompletedAt = t.now()
	}
	t.Attempts = append(t.Attempts, a)

	t.recomputeStats()
	t.updateStreak(a.CompletedAt)
	t.recomputeCategory(a.Category)
	t.checkAchievements(a)
	t.updateGoals()
}

// recomputeStats rebuilds UserStats from the full attempt list. The
// running average is always the mean over all attempts, never an
// incremental approximation.
func (t *Tracker) recomputeStats() {
	s := UserStats{StudyStreak: t.Stats.StudyStreak}
	counts := map[string]int{}
	var sum float64
	for _, a := range t.Attempts {
		s.TotalAttempts++
		s.TotalQuestionsAnswered += a.TotalQuestions
		s.TotalTimeSpent += a.TimeSpent
		sum += a.Score
		if a.Score > s.BestScore {
			s.BestScore = a.Score
		}
		counts[a.Category]++
		if counts[a.Category] > counts[s.FavoriteCategory] {
			s.FavoriteCategory = a.Category
		}
	}
	if s.TotalAttempts > 0 {
		s.AverageScore = sum / float64(s.TotalAttempts)
	}
	t.Stats = s
}

// updateStreak applies the calendar-day rules: same day leaves the
// streak unchanged, a gap of exactly one day increments it, any larger
// gap resets it to 1.
func (t *Tracker) updateStreak(when time.Time) {
	st := &t.Stats.StudyStreak
	last := st.LastStudyDate
	if last != nil && sameDay(*last, when) {
		d := when
		st.LastStudyDate = &d
		return
	}

	st.TotalStudyDays++
	switch {
	case last == nil:
		st.CurrentStreak = 1
	case daysBetween(*last, when) == 1:
		st.CurrentStreak++
	default:
		st.CurrentStreak = 1
	}
	if st.CurrentStreak > st.LongestStreak {
		st.LongestStreak = st.CurrentStreak
	}
	d := when
	st.LastStudyDate = &d
}

// recomputeCategory rebuilds the named category's progress from all of
// its attempts.
func (t *Tracker) recomputeCategory(category string) {
	var attempts []Attempt
	for _, a := range t.Attempts {
		if a.Category == category {
			attempts = append(attempts, a)
		}
	}
	if len(attempts) == 0 {
		return
	}

	cp := CategoryProgress{
		CategoryID:    category,
		CategoryName:  category,
		TotalAttempts: len(attempts),
	}
	var sum float64
	for _, a := range attempts {
		sum += a.Score
		if a.Score > cp.BestScore {
			cp.BestScore = a.Score
		}
		cp.TimeSpent += a.TimeSpent
		if cp.LastAttempt == nil || a.CompletedAt.After(*cp.LastAttempt) {
			d := a.CompletedAt
			cp.LastAttempt = &d
		}
	}
	cp.AverageScore = sum / float64(len(attempts))
	cp.Easy = difficultyStats(attempts, "easy")
	cp.Medium = difficultyStats(attempts, "medium")
	cp.Hard = difficultyStats(attempts, "hard")

	for i := range t.CategoryProgress {
		if t.CategoryProgress[i].CategoryID == category {
			t.CategoryProgress[i] = cp
			return
		}
	}
	t.CategoryProgress = append(t.CategoryProgress, cp)
}

func difficultyStats(attempts []Attempt, difficulty string) DifficultyStats {
	var ds DifficultyStats
	var sum float64
	for _, a := range attempts {
		if a.Difficulty == difficulty {
			ds.Attempts++
			sum += a.Score
		}
	}
	if ds.Attempts > 0 {
		ds.AverageScore = sum / float64(ds.Attempts)
	}
	return ds
}

// AddLearningGoal registers a goal and returns its assigned ID.
func (t *Tracker) AddLearningGoal(g LearningGoal) string {
	g.ID = uuid.NewString()
	g.CreatedAt = t.now()
	g.IsCompleted = false
	g.Progress = GoalProgress{}
	t.LearningGoals = append(t.LearningGoals, g)
	t.updateGoals()
	return g.ID
}

// updateGoals recomputes every goal's progress from the attempts in its
// target category. The percentage is the mean of score progress and
// attempt progress, capped at 100.
func (t *Tracker) updateGoals() {
	for i := range t.LearningGoals {
		g := &t.LearningGoals[i]

		var sum float64
		count := 0
		for _, a := range t.Attempts {
			if a.Category == g.TargetCategory {
				sum += a.Score
				count++
			}
		}
		score := 0.0
		if count > 0 {
			score = sum / float64(count)
		}

		pct := 0.0
		if g.TargetScore > 0 && g.TargetAttempts > 0 {
			scorePct := score / g.TargetScore * 100
			attemptPct := float64(count) / float64(g.TargetAttempts) * 100
			pct = (scorePct + attemptPct) / 2
			if pct > 100 {
				pct = 100
			}
		}
		g.Progress = GoalProgress{
			CurrentScore:       score,
			CurrentAttempts:    count,
			ProgressPercentage: pct,
		}
		g.IsCompleted = score >= g.TargetScore && count >= g.TargetAttempts
	}
}

// WeakAreas returns the categories with mean score below 70, weakest
// first.
func (t *Tracker) WeakAreas() []string {
	type entry struct {
		name  string
		score float64
	}
	var weak []entry
	for _, cp := range t.CategoryProgress {
		if cp.AverageScore < weakAreaThreshold {
			weak = append(weak, entry{cp.CategoryName, cp.AverageScore})
		}
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].score < weak[j].score })

	out := make([]string, len(weak))
	for i, e := range weak {
		out[i] = e.name
	}
	return out
}

// Recommendations derives advisory strings from weak areas, the streak
// state, and the recent score trend.
func (t *Tracker) Recommendations() []string {
	var recs []string

	if weak := t.WeakAreas(); len(weak) > 0 {
		recs = append(recs, "Focus on "+weak[0]+" - your average score is below 70%")
	}

	if t.Stats.StudyStreak.CurrentStreak == 0 {
		recs = append(recs, "Start a study streak! Daily practice improves retention.")
	}

	recent := t.Attempts
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	if len(recent) >= 3 {
		var sum float64
		for _, a := range recent {
			sum += a.Score
		}
		if sum/float64(len(recent)) > 80 {
			recs = append(recs, "Great progress! Try increasing difficulty level for more challenge.")
		}
	}

	return recs
}

// Reset discards all recorded state, restoring the default achievement
// set.
func (t *Tracker) Reset() {
	t.Attempts = nil
	t.CategoryProgress = nil
	t.LearningGoals = nil
	t.Achievements = defaultAchievements()
	t.Stats = UserStats{}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// daysBetween counts whole calendar days from a to b, ignoring the time
// of day.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
