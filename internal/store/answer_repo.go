package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/shailiguru/ssat-practice/ent"
	"github.com/shailiguru/ssat-practice/ent/answer"
	"github.com/shailiguru/ssat-practice/ent/question"
	"github.com/shailiguru/ssat-practice/internal/exam"
)

// answerRepo implements AnswerRepo using the ent client.
type answerRepo struct {
	client *ent.Client
}

func (r *answerRepo) Save(ctx context.Context, a *Answer) error {
	builder := r.client.Answer.Create().
		SetSessionID(a.SessionID).
		SetQuestionID(a.QuestionID).
		SetStudentID(a.StudentID).
		SetIsCorrect(a.IsCorrect).
		SetTimeSpentSeconds(a.TimeSpentSeconds).
		SetNillableSelectedAnswer(a.Selected)
	if !a.AnsweredAt.IsZero() {
		builder = builder.SetAnsweredAt(a.AnsweredAt)
	}

	saved, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	a.ID = saved.ID
	a.AnsweredAt = saved.AnsweredAt
	return nil
}

func (r *answerRepo) ForSession(ctx context.Context, sessionID int) ([]*Answer, error) {
	rows, err := r.client.Answer.Query().
		Where(answer.SessionIDEQ(sessionID)).
		Order(ent.Asc(answer.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("answers for session: %w", err)
	}
	return entAnswersToAnswers(rows), nil
}

func (r *answerRepo) ForStudentTopic(ctx context.Context, studentID int, topic exam.QuestionType, limit int) ([]*Answer, error) {
	qids, err := r.client.Question.Query().
		Where(question.Or(
			question.QuestionTypeEQ(string(topic)),
			question.TopicEQ(string(topic)),
		)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("topic question ids: %w", err)
	}
	if len(qids) == 0 {
		return nil, nil
	}

	rows, err := r.client.Answer.Query().
		Where(
			answer.StudentIDEQ(studentID),
			answer.QuestionIDIn(qids...),
		).
		Order(ent.Desc(answer.FieldAnsweredAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("answers for topic: %w", err)
	}
	return entAnswersToAnswers(rows), nil
}

func (r *answerRepo) WrongForStudent(ctx context.Context, studentID, limit int) ([]*Answer, []*Question, error) {
	rows, err := r.client.Answer.Query().
		Where(
			answer.StudentIDEQ(studentID),
			answer.IsCorrectEQ(false),
			answer.SelectedAnswerNotNil(),
		).
		Order(ent.Desc(answer.FieldAnsweredAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("wrong answers: %w", err)
	}

	answers := entAnswersToAnswers(rows)
	questions := make([]*Question, 0, len(answers))
	kept := answers[:0]
	for _, a := range answers {
		q, err := r.client.Question.Get(ctx, a.QuestionID)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, nil, fmt.Errorf("question for wrong answer: %w", err)
		}
		kept = append(kept, a)
		questions = append(questions, entQuestionToQuestion(q))
	}
	return kept, questions, nil
}

func (r *answerRepo) FrequentlyMissed(ctx context.Context, studentID, minWrong int) ([]MissedQuestion, error) {
	rows, err := r.client.Answer.Query().
		Where(
			answer.StudentIDEQ(studentID),
			answer.IsCorrectEQ(false),
			answer.SelectedAnswerNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("missed answers: %w", err)
	}

	counts := make(map[int]int)
	for _, a := range rows {
		counts[a.QuestionID]++
	}

	var ids []int
	for id, n := range counts {
		if n >= minWrong {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	qs, err := r.client.Question.Query().
		Where(question.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("missed questions: %w", err)
	}

	out := make([]MissedQuestion, 0, len(qs))
	for _, q := range qs {
		out = append(out, MissedQuestion{
			Question:   entQuestionToQuestion(q),
			WrongCount: counts[q.ID],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].WrongCount > out[j].WrongCount
	})
	return out, nil
}

func entAnswersToAnswers(rows []*ent.Answer) []*Answer {
	out := make([]*Answer, len(rows))
	for i, a := range rows {
		out[i] = &Answer{
			ID:               a.ID,
			SessionID:        a.SessionID,
			QuestionID:       a.QuestionID,
			StudentID:        a.StudentID,
			Selected:         a.SelectedAnswer,
			IsCorrect:        a.IsCorrect,
			TimeSpentSeconds: a.TimeSpentSeconds,
			AnsweredAt:       a.AnsweredAt,
		}
	}
	return out
}
