// Package review replays missed questions: browsing recent mistakes,
// topic summaries, retry drills, and spaced repetition of questions
// missed more than once.
package review

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
)

// TopicErrors is one row of the mistakes-by-topic summary.
type TopicErrors struct {
	Topic exam.QuestionType
	Count int
}

// UI is the console surface the review flows drive.
type UI interface {
	Info(msg string)
	Success(msg string)
	Blank()
	Confirm(prompt string) bool
	PressEnter()
	Menu(title string, options []string) int

	Question(num, total int, q *store.Question, remainingSeconds int)
	AnswerInput() *string
	AnswerFeedback(correct bool, selected *string, correctAnswer, explanation string, choices map[string]string)
	ReviewQuestion(num, total int, q *store.Question, selected *string)
	MistakesByTopic(rows []TopicErrors)
	DrillSummary(correct, total int, topicName string, elapsed time.Duration)
}

// Manager runs the review flows against the answer history.
type Manager struct {
	sessions  store.SessionRepo
	answers   store.AnswerRepo
	questions store.QuestionRepo
	ui        UI
	now       func() time.Time
}

func New(sessions store.SessionRepo, answers store.AnswerRepo, questions store.QuestionRepo, ui UI) *Manager {
	return &Manager{
		sessions:  sessions,
		answers:   answers,
		questions: questions,
		ui:        ui,
		now:       time.Now,
	}
}

// Run is the review menu loop.
func (m *Manager) Run(ctx context.Context, student *store.Student) error {
	for {
		choice := m.ui.Menu("Review Mode", []string{
			"Review recent mistakes",
			"Review by topic (worst areas first)",
			"Retry missed questions as drill",
			"Spaced repetition review",
			"Back to main menu",
		})
		var err error
		switch choice {
		case 1:
			err = m.RecentMistakes(ctx, student, 0)
		case 2:
			err = m.ByTopic(ctx, student)
		case 3:
			err = m.RetryMissedAsDrill(ctx, student)
		case 4:
			err = m.SpacedRepetition(ctx, student)
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// RecentMistakes pages through missed questions read-only. A nonzero
// sessionID restricts the review to that session.
func (m *Manager) RecentMistakes(ctx context.Context, student *store.Student, sessionID int) error {
	var (
		wrong     []*store.Answer
		questions []*store.Question
		err       error
	)
	if sessionID != 0 {
		wrong, questions, err = m.wrongFromSession(ctx, sessionID)
	} else {
		wrong, questions, err = m.answers.WrongForStudent(ctx, student.ID, 20)
	}
	if err != nil {
		return fmt.Errorf("missed questions: %w", err)
	}
	if len(wrong) == 0 {
		m.ui.Info("No missed questions to review. Great job!")
		m.ui.PressEnter()
		return nil
	}

	m.ui.Blank()
	m.ui.Info(fmt.Sprintf("Reviewing %d missed questions", len(wrong)))
	m.ui.Blank()

	qMap := questionMap(questions)
	shown := 0
	for _, a := range wrong {
		q, ok := qMap[a.QuestionID]
		if !ok {
			continue
		}
		shown++
		m.ui.ReviewQuestion(shown, len(wrong), q, a.Selected)
		m.ui.PressEnter()
	}

	m.ui.Success("Review complete!")
	m.ui.PressEnter()
	return nil
}

// ByTopic shows a worst-first summary of mistakes per topic and offers
// a drill on the weakest one.
func (m *Manager) ByTopic(ctx context.Context, student *store.Student) error {
	wrong, questions, err := m.answers.WrongForStudent(ctx, student.ID, 200)
	if err != nil {
		return fmt.Errorf("missed questions: %w", err)
	}
	if len(wrong) == 0 {
		m.ui.Info("No missed questions to review!")
		m.ui.PressEnter()
		return nil
	}

	qMap := questionMap(questions)
	counts := make(map[exam.QuestionType]int)
	byTopic := make(map[exam.QuestionType][]*store.Question)
	for _, a := range wrong {
		q, ok := qMap[a.QuestionID]
		if !ok {
			continue
		}
		counts[q.QuestionType]++
		byTopic[q.QuestionType] = append(byTopic[q.QuestionType], q)
	}

	rows := make([]TopicErrors, 0, len(counts))
	for topic, count := range counts {
		rows = append(rows, TopicErrors{Topic: topic, Count: count})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Topic < rows[j].Topic
	})

	m.ui.MistakesByTopic(rows)
	m.ui.Blank()

	if len(rows) > 0 && m.ui.Confirm("Drill your weakest topic?") {
		worst := byTopic[rows[0].Topic]
		if len(worst) > 10 {
			worst = worst[:10]
		}
		return m.runDrill(ctx, student, worst)
	}
	return nil
}

// RetryMissedAsDrill re-attempts up to 15 recently missed questions
// with instant feedback.
func (m *Manager) RetryMissedAsDrill(ctx context.Context, student *store.Student) error {
	wrong, questions, err := m.answers.WrongForStudent(ctx, student.ID, 20)
	if err != nil {
		return fmt.Errorf("missed questions: %w", err)
	}
	if len(wrong) == 0 {
		m.ui.Info("No missed questions to retry!")
		m.ui.PressEnter()
		return nil
	}

	qMap := questionMap(questions)
	var drill []*store.Question
	for _, a := range wrong {
		if q, ok := qMap[a.QuestionID]; ok {
			drill = append(drill, q)
		}
		if len(drill) == 15 {
			break
		}
	}

	m.ui.Info(fmt.Sprintf("Retrying %d missed questions with instant feedback", len(drill)))
	m.ui.PressEnter()
	return m.runDrill(ctx, student, drill)
}

// SpacedRepetition surfaces questions missed at least twice.
func (m *Manager) SpacedRepetition(ctx context.Context, student *store.Student) error {
	missed, err := m.answers.FrequentlyMissed(ctx, student.ID, 2)
	if err != nil {
		return fmt.Errorf("frequently missed: %w", err)
	}
	if len(missed) == 0 {
		m.ui.Info("No frequently missed questions! Keep practicing to build your skills.")
		m.ui.PressEnter()
		return nil
	}

	m.ui.Info(fmt.Sprintf("Found %d questions you've missed multiple times. Let's work through them!", len(missed)))
	m.ui.Blank()

	var drill []*store.Question
	for _, mq := range missed {
		drill = append(drill, mq.Question)
		if len(drill) == 15 {
			break
		}
	}
	return m.runDrill(ctx, student, drill)
}

// runDrill re-asks questions with instant feedback under a review
// session, persisting each new attempt.
func (m *Manager) runDrill(ctx context.Context, student *store.Student, questions []*store.Question) error {
	if len(questions) == 0 {
		return nil
	}

	session := &store.TestSession{
		StudentID: student.ID,
		Level:     student.Level,
		Grade:     student.Grade,
		Mode:      exam.ModeReview,
		StartedAt: m.now(),
	}
	if err := m.sessions.Create(ctx, session); err != nil {
		return fmt.Errorf("create review session: %w", err)
	}

	correct := 0
	start := m.now()
	for i, q := range questions {
		m.ui.Question(i+1, len(questions), q, -1)

		qStart := m.now()
		selected := m.ui.AnswerInput()
		elapsed := m.now().Sub(qStart).Seconds()

		isCorrect := selected != nil && strings.EqualFold(*selected, q.CorrectAnswer)
		if isCorrect {
			correct++
		}

		m.ui.AnswerFeedback(isCorrect, selected, q.CorrectAnswer, q.Explanation, q.Choices)

		answer := &store.Answer{
			SessionID:        session.ID,
			QuestionID:       q.ID,
			StudentID:        student.ID,
			Selected:         selected,
			IsCorrect:        isCorrect,
			TimeSpentSeconds: elapsed,
			AnsweredAt:       m.now(),
		}
		if err := m.answers.Save(ctx, answer); err != nil {
			return fmt.Errorf("save answer: %w", err)
		}
	}
	elapsed := m.now().Sub(start)

	completed := m.now()
	session.CompletedAt = &completed
	if err := m.sessions.Update(ctx, session); err != nil {
		return fmt.Errorf("update review session: %w", err)
	}

	m.ui.DrillSummary(correct, len(questions), "Review Drill", elapsed)
	return nil
}

// wrongFromSession collects a session's incorrect (non-skipped)
// answers with their questions.
func (m *Manager) wrongFromSession(ctx context.Context, sessionID int) ([]*store.Answer, []*store.Question, error) {
	answers, err := m.answers.ForSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	var wrong []*store.Answer
	var ids []int
	for _, a := range answers {
		if a.Selected != nil && !a.IsCorrect {
			wrong = append(wrong, a)
			ids = append(ids, a.QuestionID)
		}
	}
	if len(wrong) == 0 {
		return nil, nil, nil
	}

	questions, err := m.questions.ByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	return wrong, questions, nil
}

func questionMap(questions []*store.Question) map[int]*store.Question {
	qm := make(map[int]*store.Question, len(questions))
	for _, q := range questions {
		qm[q.ID] = q
	}
	return qm
}
