package progress

import (
	"math"
	"testing"
	"time"
)

func newTestTracker(start time.Time) *Tracker {
	tr := NewTracker()
	now := start
	tr.now = func() time.Time { return now }
	return tr
}

func attemptAt(tr *Tracker, when time.Time, category string, score float64) {
	tr.now = func() time.Time { return when }
	tr.RecordAttempt(Attempt{
		ExamTitle:      "Test Run",
		Category:       category,
		Difficulty:     "medium",
		TotalQuestions: 10,
		CorrectAnswers: int(score / 10),
		Score:          score,
		TimeSpent:      600,
		CompletedAt:    when,
	})
}

func TestRecordAttemptRecomputesStats(t *testing.T) {
	day := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tr := newTestTracker(day)

	scores := []float64{40, 90, 65}
	for _, s := range scores {
		attemptAt(tr, day, "dsa", s)
	}

	if tr.Stats.TotalAttempts != 3 {
		t.Errorf("TotalAttempts = %d, want 3", tr.Stats.TotalAttempts)
	}
	if want := (40.0 + 90 + 65) / 3; math.Abs(tr.Stats.AverageScore-want) > 1e-9 {
		t.Errorf("AverageScore = %v, want %v", tr.Stats.AverageScore, want)
	}
	if tr.Stats.BestScore != 90 {
		t.Errorf("BestScore = %v, want 90", tr.Stats.BestScore)
	}
	if tr.Stats.TotalQuestionsAnswered != 30 {
		t.Errorf("TotalQuestionsAnswered = %d, want 30", tr.Stats.TotalQuestionsAnswered)
	}
	if tr.Stats.FavoriteCategory != "dsa" {
		t.Errorf("FavoriteCategory = %q, want dsa", tr.Stats.FavoriteCategory)
	}
}

func TestStreakCalendarDays(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newTestTracker(day1)

	attemptAt(tr, day1, "dsa", 50)
	if got := tr.Stats.StudyStreak.CurrentStreak; got != 1 {
		t.Fatalf("after first attempt: streak %d, want 1", got)
	}

	// Same calendar day, later hour: unchanged.
	attemptAt(tr, day1.Add(8*time.Hour), "dsa", 60)
	if got := tr.Stats.StudyStreak.CurrentStreak; got != 1 {
		t.Errorf("same day: streak %d, want 1", got)
	}

	// Next calendar day: +1.
	attemptAt(tr, day1.AddDate(0, 0, 1), "dsa", 60)
	if got := tr.Stats.StudyStreak.CurrentStreak; got != 2 {
		t.Errorf("consecutive day: streak %d, want 2", got)
	}

	// And another.
	attemptAt(tr, day1.AddDate(0, 0, 2), "dsa", 60)
	if got := tr.Stats.StudyStreak.CurrentStreak; got != 3 {
		t.Errorf("third day: streak %d, want 3", got)
	}

	// Two-day gap resets to 1, longest survives.
	attemptAt(tr, day1.AddDate(0, 0, 5), "dsa", 60)
	if got := tr.Stats.StudyStreak.CurrentStreak; got != 1 {
		t.Errorf("after gap: streak %d, want 1", got)
	}
	if got := tr.Stats.StudyStreak.LongestStreak; got != 3 {
		t.Errorf("LongestStreak = %d, want 3", got)
	}
	if got := tr.Stats.StudyStreak.TotalStudyDays; got != 4 {
		t.Errorf("TotalStudyDays = %d, want 4", got)
	}
}

func TestCategoryProgressRecomputed(t *testing.T) {
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newTestTracker(day)

	attemptAt(tr, day, "cloud", 80)
	attemptAt(tr, day, "cloud", 40)
	attemptAt(tr, day, "dsa", 100)

	var cloud *CategoryProgress
	for i := range tr.CategoryProgress {
		if tr.CategoryProgress[i].CategoryID == "cloud" {
			cloud = &tr.CategoryProgress[i]
		}
	}
	if cloud == nil {
		t.Fatal("no cloud category progress recorded")
	}
	if cloud.TotalAttempts != 2 {
		t.Errorf("TotalAttempts = %d, want 2", cloud.TotalAttempts)
	}
	if cloud.AverageScore != 60 {
		t.Errorf("AverageScore = %v, want 60", cloud.AverageScore)
	}
	if cloud.BestScore != 80 {
		t.Errorf("BestScore = %v, want 80", cloud.BestScore)
	}
	if cloud.Medium.Attempts != 2 || cloud.Medium.AverageScore != 60 {
		t.Errorf("Medium = %+v, want 2 attempts at 60", cloud.Medium)
	}
	if cloud.Easy.Attempts != 0 {
		t.Errorf("Easy.Attempts = %d, want 0", cloud.Easy.Attempts)
	}
}

func TestAchievementsUnlockOnce(t *testing.T) {
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newTestTracker(day)

	attemptAt(tr, day, "dsa", 100)

	byID := func(id string) Achievement {
		for _, a := range tr.Achievements {
			if a.ID == id {
				return a
			}
		}
		t.Fatalf("achievement %s missing", id)
		return Achievement{}
	}

	first := byID("first-quiz")
	if !first.IsUnlocked || first.UnlockedAt == nil {
		t.Error("first-quiz should unlock on the first attempt")
	}
	perfect := byID("perfect-score")
	if !perfect.IsUnlocked {
		t.Error("perfect-score should unlock on a 100% attempt")
	}
	unlockedAt := *first.UnlockedAt

	// A later attempt must not move the unlock time.
	attemptAt(tr, day.AddDate(0, 0, 1), "dsa", 30)
	if got := *byID("first-quiz").UnlockedAt; !got.Equal(unlockedAt) {
		t.Errorf("UnlockedAt moved from %v to %v", unlockedAt, got)
	}

	if byID("speed-demon").IsUnlocked {
		t.Error("speed-demon unlocked by a 10-minute attempt")
	}
}

func TestWeakAreasAscending(t *testing.T) {
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newTestTracker(day)

	attemptAt(tr, day, "cloud", 65)
	attemptAt(tr, day, "dsa", 40)
	attemptAt(tr, day, "algorithms", 90)

	got := tr.WeakAreas()
	want := []string{"dsa", "cloud"}
	if len(got) != len(want) {
		t.Fatalf("WeakAreas() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WeakAreas()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecommendationsRecentTrend(t *testing.T) {
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newTestTracker(day)

	for i := 0; i < 5; i++ {
		attemptAt(tr, day.AddDate(0, 0, i), "dsa", 95)
	}

	recs := tr.Recommendations()
	found := false
	for _, r := range recs {
		if r == "Great progress! Try increasing difficulty level for more challenge." {
			found = true
		}
	}
	if !found {
		t.Errorf("recent mean above 80 should suggest harder difficulty, got %v", recs)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	src := newTestTracker(day)
	attemptAt(src, day, "dsa", 70)
	attemptAt(src, day.AddDate(0, 0, 1), "cloud", 90)

	blob, err := src.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst := NewTracker()
	if err := dst.Import(blob); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if len(dst.Attempts) != len(src.Attempts) {
		t.Fatalf("imported %d attempts, want %d", len(dst.Attempts), len(src.Attempts))
	}
	for i := range src.Attempts {
		if dst.Attempts[i].ID != src.Attempts[i].ID || dst.Attempts[i].Score != src.Attempts[i].Score {
			t.Errorf("attempt %d: got %+v, want %+v", i, dst.Attempts[i], src.Attempts[i])
		}
	}
	if dst.Stats.AverageScore != src.Stats.AverageScore {
		t.Errorf("AverageScore = %v, want %v", dst.Stats.AverageScore, src.Stats.AverageScore)
	}
	if len(dst.CategoryProgress) != len(src.CategoryProgress) {
		t.Errorf("got %d category progress entries, want %d", len(dst.CategoryProgress), len(src.CategoryProgress))
	}
}

func TestExportImportRoundTripFreshTracker(t *testing.T) {
	// A tracker with no attempts, goals, or category progress must still
	// export a document its own Import accepts. Nil slices would marshal
	// as null and fail the array checks in the schema.
	src := NewTracker()

	blob, err := src.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst := NewTracker()
	if err := dst.Import(blob); err != nil {
		t.Fatalf("Import of a fresh export: %v", err)
	}
	if len(dst.Attempts) != 0 {
		t.Errorf("imported %d attempts, want 0", len(dst.Attempts))
	}
}

func TestExportImportRoundTripWithoutGoals(t *testing.T) {
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	src := newTestTracker(day)
	attemptAt(src, day, "dsa", 70)
	attemptAt(src, day, "cloud", 40)
	attemptAt(src, day.AddDate(0, 0, 1), "dsa", 90)
	if src.LearningGoals != nil {
		t.Fatalf("fixture should have no learning goals, got %d", len(src.LearningGoals))
	}

	blob, err := src.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	dst := NewTracker()
	if err := dst.Import(blob); err != nil {
		t.Fatalf("Import of a goalless export: %v", err)
	}
	if len(dst.Attempts) != 3 {
		t.Errorf("imported %d attempts, want 3", len(dst.Attempts))
	}
	if dst.Stats.TotalAttempts != src.Stats.TotalAttempts {
		t.Errorf("TotalAttempts = %d, want %d", dst.Stats.TotalAttempts, src.Stats.TotalAttempts)
	}
}

func TestImportRejectsBadDocument(t *testing.T) {
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tr := newTestTracker(day)
	attemptAt(tr, day, "dsa", 70)

	cases := []struct {
		name string
		data string
	}{
		{"not json", "{nope"},
		{"wrong type", `{"attempts": "many"}`},
		{"bad attempt shape", `{"attempts": [{"id": 7}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tr.Import([]byte(tc.data)); err == nil {
				t.Fatal("Import accepted an invalid document")
			}
			if len(tr.Attempts) != 1 {
				t.Errorf("failed import mutated state: %d attempts", len(tr.Attempts))
			}
		})
	}
}

func TestImportSubstitutesDefaults(t *testing.T) {
	tr := NewTracker()
	if err := tr.Import([]byte(`{"version": 1, "attempts": []}`)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(tr.Achievements) != 6 {
		t.Errorf("missing achievements should restore the default set, got %d", len(tr.Achievements))
	}
	if tr.Stats.TotalAttempts != 0 {
		t.Errorf("missing userStats should reset, got %+v", tr.Stats)
	}
}
