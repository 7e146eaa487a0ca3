package store

import (
	"time"

	"github.com/shailiguru/ssat-practice/internal/exam"
)

// Student is a learner profile.
type Student struct {
	ID        int
	Name      string
	Grade     int
	Level     exam.Level
	CreatedAt time.Time
}

// Question is one multiple-choice item. Immutable once persisted.
type Question struct {
	ID            int
	Level         exam.Level
	QuestionType  exam.QuestionType
	Topic         string
	Difficulty    int
	Stem          string
	Passage       string // empty when the question has no passage
	Choices       map[string]string
	CorrectAnswer string
	Explanation   string
	BatchID       string
	GeneratedAt   time.Time
}

// Answer records one presented question. A nil Selected means skipped.
type Answer struct {
	ID               int
	SessionID        int
	QuestionID       int
	StudentID        int
	Selected         *string
	IsCorrect        bool
	TimeSpentSeconds float64
	AnsweredAt       time.Time
}

// Skipped reports whether the question was presented but not answered.
func (a *Answer) Skipped() bool {
	return a.Selected == nil
}

// TestSession is one practice run. Score pointers stay nil until the
// session completes.
type TestSession struct {
	ID          int
	StudentID   int
	Level       exam.Level
	Grade       int
	Mode        exam.SessionMode
	StartedAt   time.Time
	CompletedAt *time.Time

	VerbalRaw              *float64
	VerbalScaled           *int
	VerbalPercentile       *int
	QuantitativeRaw        *float64
	QuantitativeScaled     *int
	QuantitativePercentile *int
	ReadingRaw             *float64
	ReadingScaled          *int
	ReadingPercentile      *int
	TotalScaled            *int
}

// CategoryScores returns the raw/scaled/percentile pointers for a
// score-report category, so callers can read or fold scores without
// switching on field names.
func (s *TestSession) CategoryScores(c exam.Category) (raw **float64, scaled **int, percentile **int) {
	switch c {
	case exam.CategoryQuantitative:
		return &s.QuantitativeRaw, &s.QuantitativeScaled, &s.QuantitativePercentile
	case exam.CategoryReading:
		return &s.ReadingRaw, &s.ReadingScaled, &s.ReadingPercentile
	default:
		return &s.VerbalRaw, &s.VerbalScaled, &s.VerbalPercentile
	}
}

// TopicMastery tracks adaptive difficulty and accuracy for one
// (student, topic) pair.
type TopicMastery struct {
	StudentID       int
	TopicTag        exam.QuestionType
	DifficultyLevel float64
	TotalAttempted  int
	TotalCorrect    int
	Last50Attempted int
	Last50Correct   int
	UpdatedAt       time.Time
}

// OverallAccuracy returns the all-time accuracy, 0 when unattempted.
func (m *TopicMastery) OverallAccuracy() float64 {
	if m.TotalAttempted <= 0 {
		return 0
	}
	return float64(m.TotalCorrect) / float64(m.TotalAttempted)
}

// WritingSample stores a writing prompt, the student's response, and
// optional tutor feedback.
type WritingSample struct {
	ID        int
	StudentID int
	SessionID *int
	Prompt    string
	Response  string
	Feedback  *string
	CreatedAt time.Time
}

// MissedQuestion pairs a question with how often it was answered wrong.
type MissedQuestion struct {
	Question   *Question
	WrongCount int
}
