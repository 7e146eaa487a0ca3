package store

import (
	"context"
	"fmt"

	"github.com/shailiguru/ssat-practice/ent"
	"github.com/shailiguru/ssat-practice/ent/topicmastery"
	"github.com/shailiguru/ssat-practice/internal/exam"
)

// masteryRepo implements MasteryRepo using the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Upsert(ctx context.Context, m *TopicMastery) error {
	existing, err := r.client.TopicMastery.Query().
		Where(
			topicmastery.StudentIDEQ(m.StudentID),
			topicmastery.TopicTagEQ(string(m.TopicTag)),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query mastery: %w", err)
	}

	if existing == nil {
		_, err = r.client.TopicMastery.Create().
			SetStudentID(m.StudentID).
			SetTopicTag(string(m.TopicTag)).
			SetDifficultyLevel(m.DifficultyLevel).
			SetTotalAttempted(m.TotalAttempted).
			SetTotalCorrect(m.TotalCorrect).
			SetLast50Attempted(m.Last50Attempted).
			SetLast50Correct(m.Last50Correct).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mastery: %w", err)
		}
		return nil
	}

	_, err = r.client.TopicMastery.UpdateOne(existing).
		SetDifficultyLevel(m.DifficultyLevel).
		SetTotalAttempted(m.TotalAttempted).
		SetTotalCorrect(m.TotalCorrect).
		SetLast50Attempted(m.Last50Attempted).
		SetLast50Correct(m.Last50Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery: %w", err)
	}
	return nil
}

func (r *masteryRepo) ForTopic(ctx context.Context, studentID int, topic exam.QuestionType) (*TopicMastery, error) {
	row, err := r.client.TopicMastery.Query().
		Where(
			topicmastery.StudentIDEQ(studentID),
			topicmastery.TopicTagEQ(string(topic)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("mastery for topic: %w", err)
	}
	return entMasteryToMastery(row), nil
}

func (r *masteryRepo) All(ctx context.Context, studentID int) ([]*TopicMastery, error) {
	rows, err := r.client.TopicMastery.Query().
		Where(topicmastery.StudentIDEQ(studentID)).
		Order(ent.Asc(topicmastery.FieldTopicTag)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("all mastery: %w", err)
	}
	out := make([]*TopicMastery, len(rows))
	for i, m := range rows {
		out[i] = entMasteryToMastery(m)
	}
	return out, nil
}

func entMasteryToMastery(m *ent.TopicMastery) *TopicMastery {
	return &TopicMastery{
		StudentID:       m.StudentID,
		TopicTag:        exam.QuestionType(m.TopicTag),
		DifficultyLevel: m.DifficultyLevel,
		TotalAttempted:  m.TotalAttempted,
		TotalCorrect:    m.TotalCorrect,
		Last50Attempted: m.Last50Attempted,
		Last50Correct:   m.Last50Correct,
		UpdatedAt:       m.UpdatedAt,
	}
}
