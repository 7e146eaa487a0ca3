package store

import (
	"context"
	"fmt"

	"github.com/shailiguru/ssat-practice/ent"
	"github.com/shailiguru/ssat-practice/ent/writingsample"
)

// writingRepo implements WritingRepo using the ent client.
type writingRepo struct {
	client *ent.Client
}

func (r *writingRepo) Save(ctx context.Context, w *WritingSample) error {
	row, err := r.client.WritingSample.Create().
		SetStudentID(w.StudentID).
		SetNillableSessionID(w.SessionID).
		SetPrompt(w.Prompt).
		SetResponse(w.Response).
		SetNillableFeedback(w.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save writing sample: %w", err)
	}
	w.ID = row.ID
	w.CreatedAt = row.CreatedAt
	return nil
}

func (r *writingRepo) ForStudent(ctx context.Context, studentID, limit int) ([]*WritingSample, error) {
	rows, err := r.client.WritingSample.Query().
		Where(writingsample.StudentIDEQ(studentID)).
		Order(ent.Desc(writingsample.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("writing samples: %w", err)
	}
	out := make([]*WritingSample, len(rows))
	for i, w := range rows {
		out[i] = &WritingSample{
			ID:        w.ID,
			StudentID: w.StudentID,
			SessionID: w.SessionID,
			Prompt:    w.Prompt,
			Response:  w.Response,
			Feedback:  w.Feedback,
			CreatedAt: w.CreatedAt,
		}
	}
	return out, nil
}
