package store

import (
	"context"

	"github.com/shailiguru/ssat-practice/internal/exam"
)

// StudentRepo manages learner profiles.
type StudentRepo interface {
	Create(ctx context.Context, name string, grade int, level exam.Level) (*Student, error)
	Get(ctx context.Context, id int) (*Student, error)
	List(ctx context.Context) ([]*Student, error)
	Update(ctx context.Context, s *Student) error
}

// QuestionRepo manages the question pool.
type QuestionRepo interface {
	// SaveQuestions persists a batch, assigning IDs in place.
	SaveQuestions(ctx context.Context, qs []*Question) error

	Get(ctx context.Context, id int) (*Question, error)
	ByIDs(ctx context.Context, ids []int) ([]*Question, error)

	// Unseen returns up to limit questions of the exact type, level, and
	// difficulty that the student has never answered, in random order.
	Unseen(ctx context.Context, studentID int, qtype exam.QuestionType, level exam.Level, difficulty, limit int) ([]*Question, error)

	// UnseenAnyDifficulty relaxes the difficulty constraint.
	UnseenAnyDifficulty(ctx context.Context, studentID int, qtype exam.QuestionType, level exam.Level, limit int) ([]*Question, error)

	CountUnseen(ctx context.Context, studentID int, qtype exam.QuestionType, level exam.Level) (int, error)
}

// AnswerRepo manages answer records.
type AnswerRepo interface {
	Save(ctx context.Context, a *Answer) error
	ForSession(ctx context.Context, sessionID int) ([]*Answer, error)

	// ForStudentTopic returns the most recent answers for a topic,
	// newest first, up to limit.
	ForStudentTopic(ctx context.Context, studentID int, topic exam.QuestionType, limit int) ([]*Answer, error)

	// WrongForStudent returns recent incorrect (non-skipped) answers with
	// their questions, newest first.
	WrongForStudent(ctx context.Context, studentID, limit int) ([]*Answer, []*Question, error)

	// FrequentlyMissed returns questions the student has answered wrong
	// at least minWrong times, most-missed first.
	FrequentlyMissed(ctx context.Context, studentID, minWrong int) ([]MissedQuestion, error)
}

// SessionRepo manages test sessions.
type SessionRepo interface {
	Create(ctx context.Context, s *TestSession) error
	Update(ctx context.Context, s *TestSession) error

	// ForStudentByMode returns the student's sessions of a mode,
	// newest first, up to limit.
	ForStudentByMode(ctx context.Context, studentID int, mode exam.SessionMode, limit int) ([]*TestSession, error)
}

// MasteryRepo manages per-topic mastery records.
type MasteryRepo interface {
	Upsert(ctx context.Context, m *TopicMastery) error

	// ForTopic returns the record for one topic, or nil if none exists.
	ForTopic(ctx context.Context, studentID int, topic exam.QuestionType) (*TopicMastery, error)

	All(ctx context.Context, studentID int) ([]*TopicMastery, error)
}

// WritingRepo manages writing samples.
type WritingRepo interface {
	Save(ctx context.Context, w *WritingSample) error
	ForStudent(ctx context.Context, studentID, limit int) ([]*WritingSample, error)
}

// LLMRequestEventData captures one LLM API call for auditing.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ModelUsage aggregates recorded LLM calls per model.
type ModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to the LLM request audit trail.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// UsageByModel sums token consumption per model over all recorded
	// requests.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}
