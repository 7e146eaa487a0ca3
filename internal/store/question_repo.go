package store

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/shailiguru/ssat-practice/ent"
	"github.com/shailiguru/ssat-practice/ent/answer"
	"github.com/shailiguru/ssat-practice/ent/predicate"
	"github.com/shailiguru/ssat-practice/ent/question"
	"github.com/shailiguru/ssat-practice/internal/exam"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) SaveQuestions(ctx context.Context, qs []*Question) error {
	for _, q := range qs {
		builder := r.client.Question.Create().
			SetLevel(string(q.Level)).
			SetQuestionType(string(q.QuestionType)).
			SetTopic(q.Topic).
			SetDifficulty(q.Difficulty).
			SetStem(q.Stem).
			SetChoices(q.Choices).
			SetCorrectAnswer(q.CorrectAnswer).
			SetExplanation(q.Explanation).
			SetBatchID(q.BatchID)
		if q.Passage != "" {
			builder = builder.SetPassage(q.Passage)
		}

		saved, err := builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("save question: %w", err)
		}
		q.ID = saved.ID
		q.GeneratedAt = saved.GeneratedAt
	}
	return nil
}

func (r *questionRepo) Get(ctx context.Context, id int) (*Question, error) {
	q, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return entQuestionToQuestion(q), nil
}

func (r *questionRepo) ByIDs(ctx context.Context, ids []int) ([]*Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.client.Question.Query().
		Where(question.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("questions by ids: %w", err)
	}
	out := make([]*Question, len(rows))
	for i, q := range rows {
		out[i] = entQuestionToQuestion(q)
	}
	return out, nil
}

func (r *questionRepo) Unseen(ctx context.Context, studentID int, qtype exam.QuestionType, level exam.Level, difficulty, limit int) ([]*Question, error) {
	return r.unseen(ctx, studentID, limit, []predicate.Question{
		question.QuestionTypeEQ(string(qtype)),
		question.LevelEQ(string(level)),
		question.DifficultyEQ(difficulty),
	})
}

func (r *questionRepo) UnseenAnyDifficulty(ctx context.Context, studentID int, qtype exam.QuestionType, level exam.Level, limit int) ([]*Question, error) {
	return r.unseen(ctx, studentID, limit, []predicate.Question{
		question.QuestionTypeEQ(string(qtype)),
		question.LevelEQ(string(level)),
	})
}

func (r *questionRepo) CountUnseen(ctx context.Context, studentID int, qtype exam.QuestionType, level exam.Level) (int, error) {
	seen, err := r.seenQuestionIDs(ctx, studentID)
	if err != nil {
		return 0, err
	}

	q := r.client.Question.Query().
		Where(
			question.QuestionTypeEQ(string(qtype)),
			question.LevelEQ(string(level)),
		)
	if len(seen) > 0 {
		q = q.Where(question.IDNotIn(seen...))
	}

	n, err := q.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unseen: %w", err)
	}
	return n, nil
}

// unseen runs an unseen-question query and returns the rows in random
// order. SQLite has no portable RANDOM() ordering through ent, so the
// shuffle happens here.
func (r *questionRepo) unseen(ctx context.Context, studentID, limit int, preds []predicate.Question) ([]*Question, error) {
	if limit <= 0 {
		return nil, nil
	}

	seen, err := r.seenQuestionIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}

	q := r.client.Question.Query().Where(preds...)
	if len(seen) > 0 {
		q = q.Where(question.IDNotIn(seen...))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unseen: %w", err)
	}

	rand.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	out := make([]*Question, len(rows))
	for i, row := range rows {
		out[i] = entQuestionToQuestion(row)
	}
	return out, nil
}

// seenQuestionIDs returns every question id the student has an answer for.
func (r *questionRepo) seenQuestionIDs(ctx context.Context, studentID int) ([]int, error) {
	ids, err := r.client.Answer.Query().
		Where(answer.StudentIDEQ(studentID)).
		Select(answer.FieldQuestionID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("query seen question ids: %w", err)
	}
	return ids, nil
}

func entQuestionToQuestion(q *ent.Question) *Question {
	out := &Question{
		ID:            q.ID,
		Level:         exam.Level(q.Level),
		QuestionType:  exam.QuestionType(q.QuestionType),
		Topic:         q.Topic,
		Difficulty:    q.Difficulty,
		Stem:          q.Stem,
		Choices:       q.Choices,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		BatchID:       q.BatchID,
		GeneratedAt:   q.GeneratedAt,
	}
	if q.Passage != nil {
		out.Passage = *q.Passage
	}
	return out
}
