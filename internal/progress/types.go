// Package progress aggregates completed quiz attempts into user stats,
// calendar-day streaks, per-category progress, achievements, learning
// goals, and study recommendations.
package progress

import "time"

// AnswerRecord captures one answered question inside an attempt.
type AnswerRecord struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
	TimeSpent      int    `json:"timeSpent"`
}

// AttemptSource identifies where an attempt's questions came from.
type AttemptSource string

const (
	SourceUpload AttemptSource = "upload"
	SourceSample AttemptSource = "sample"
)

// Attempt is one completed exam run. Attempts are immutable once
// recorded; all aggregate figures are recomputed from the full list.
type Attempt struct {
	ID             string         `json:"id"`
	ExamTitle      string         `json:"examTitle"`
	Category       string         `json:"category"`
	Subcategory    string         `json:"subcategory,omitempty"`
	Difficulty     string         `json:"difficulty"`
	TotalQuestions int            `json:"totalQuestions"`
	CorrectAnswers int            `json:"correctAnswers"`
	Score          float64        `json:"score"` // percentage 0-100
	TimeSpent      int            `json:"timeSpent"` // seconds
	CompletedAt    time.Time      `json:"completedAt"`
	Answers        []AnswerRecord `json:"answers,omitempty"`
	Source         AttemptSource  `json:"source,omitempty"`
	FileName       string         `json:"fileName,omitempty"`
}

// StudyStreak tracks consecutive calendar days with at least one attempt.
type StudyStreak struct {
	CurrentStreak int        `json:"currentStreak"`
	LongestStreak int        `json:"longestStreak"`
	LastStudyDate *time.Time `json:"lastStudyDate"`
	TotalStudyDays int       `json:"totalStudyDays"`
}

// DifficultyStats holds the attempt count and mean score at one
// difficulty within a category.
type DifficultyStats struct {
	Attempts     int     `json:"attempts"`
	AverageScore float64 `json:"averageScore"`
}

// CategoryProgress is the fully recomputed aggregate for one category.
type CategoryProgress struct {
	CategoryID    string     `json:"categoryId"`
	CategoryName  string     `json:"categoryName"`
	TotalAttempts int        `json:"totalAttempts"`
	AverageScore  float64    `json:"averageScore"`
	BestScore     float64    `json:"bestScore"`
	TimeSpent     int        `json:"timeSpent"`
	LastAttempt   *time.Time `json:"lastAttempt"`

	Easy   DifficultyStats `json:"easy"`
	Medium DifficultyStats `json:"medium"`
	Hard   DifficultyStats `json:"hard"`
}

// GoalProgress is the computed progress of a learning goal.
type GoalProgress struct {
	CurrentScore       float64 `json:"currentScore"`
	CurrentAttempts    int     `json:"currentAttempts"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// LearningGoal is a user-defined target of score and attempt count in
// one category.
type LearningGoal struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	TargetCategory string       `json:"targetCategory"`
	TargetScore    float64      `json:"targetScore"`
	TargetAttempts int          `json:"targetAttempts"`
	Deadline       time.Time    `json:"deadline"`
	IsCompleted    bool         `json:"isCompleted"`
	CreatedAt      time.Time    `json:"createdAt"`
	Progress       GoalProgress `json:"progress"`
}

// AchievementType selects which attempt or aggregate figure an
// achievement's requirement is checked against.
type AchievementType string

const (
	AchievementAttempts AchievementType = "attempts"
	AchievementScore    AchievementType = "score"
	AchievementStreak   AchievementType = "streak"
	AchievementTime     AchievementType = "time"
	AchievementCategory AchievementType = "category"
)

// Achievement unlocks at most once, when its requirement is first met.
type Achievement struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        AchievementType `json:"type"`
	Requirement int             `json:"requirement"`
	UnlockedAt  *time.Time      `json:"unlockedAt"`
	IsUnlocked  bool            `json:"isUnlocked"`
}

// UserStats is the overall aggregate, recomputed from scratch on each
// recorded attempt.
type UserStats struct {
	TotalAttempts          int         `json:"totalAttempts"`
	TotalQuestionsAnswered int         `json:"totalQuestionsAnswered"`
	TotalTimeSpent         int         `json:"totalTimeSpent"`
	AverageScore           float64     `json:"averageScore"`
	BestScore              float64     `json:"bestScore"`
	FavoriteCategory       string      `json:"favoriteCategory"`
	StudyStreak            StudyStreak `json:"studyStreak"`
}
