package store

import (
	"context"
	"fmt"

	"github.com/shailiguru/ssat-practice/ent"
	"github.com/shailiguru/ssat-practice/ent/testsession"
	"github.com/shailiguru/ssat-practice/internal/exam"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, s *TestSession) error {
	builder := r.client.TestSession.Create().
		SetStudentID(s.StudentID).
		SetLevel(string(s.Level)).
		SetGrade(s.Grade).
		SetMode(string(s.Mode))
	if !s.StartedAt.IsZero() {
		builder = builder.SetStartedAt(s.StartedAt)
	}

	saved, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	s.ID = saved.ID
	s.StartedAt = saved.StartedAt
	return nil
}

func (r *sessionRepo) Update(ctx context.Context, s *TestSession) error {
	_, err := r.client.TestSession.UpdateOneID(s.ID).
		SetLevel(string(s.Level)).
		SetGrade(s.Grade).
		SetNillableCompletedAt(s.CompletedAt).
		SetNillableVerbalRaw(s.VerbalRaw).
		SetNillableVerbalScaled(s.VerbalScaled).
		SetNillableVerbalPercentile(s.VerbalPercentile).
		SetNillableQuantitativeRaw(s.QuantitativeRaw).
		SetNillableQuantitativeScaled(s.QuantitativeScaled).
		SetNillableQuantitativePercentile(s.QuantitativePercentile).
		SetNillableReadingRaw(s.ReadingRaw).
		SetNillableReadingScaled(s.ReadingScaled).
		SetNillableReadingPercentile(s.ReadingPercentile).
		SetNillableTotalScaled(s.TotalScaled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

func (r *sessionRepo) ForStudentByMode(ctx context.Context, studentID int, mode exam.SessionMode, limit int) ([]*TestSession, error) {
	rows, err := r.client.TestSession.Query().
		Where(
			testsession.StudentIDEQ(studentID),
			testsession.ModeEQ(string(mode)),
			testsession.CompletedAtNotNil(),
		).
		Order(ent.Desc(testsession.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("sessions for student: %w", err)
	}

	out := make([]*TestSession, len(rows))
	for i, s := range rows {
		out[i] = entSessionToSession(s)
	}
	return out, nil
}

func entSessionToSession(s *ent.TestSession) *TestSession {
	return &TestSession{
		ID:                     s.ID,
		StudentID:              s.StudentID,
		Level:                  exam.Level(s.Level),
		Grade:                  s.Grade,
		Mode:                   exam.SessionMode(s.Mode),
		StartedAt:              s.StartedAt,
		CompletedAt:            s.CompletedAt,
		VerbalRaw:              s.VerbalRaw,
		VerbalScaled:           s.VerbalScaled,
		VerbalPercentile:       s.VerbalPercentile,
		QuantitativeRaw:        s.QuantitativeRaw,
		QuantitativeScaled:     s.QuantitativeScaled,
		QuantitativePercentile: s.QuantitativePercentile,
		ReadingRaw:             s.ReadingRaw,
		ReadingScaled:          s.ReadingScaled,
		ReadingPercentile:      s.ReadingPercentile,
		TotalScaled:            s.TotalScaled,
	}
}
