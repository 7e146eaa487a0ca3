package store

import (
	"context"
	"fmt"

	"github.com/shailiguru/ssat-practice/ent"
	"github.com/shailiguru/ssat-practice/ent/student"
	"github.com/shailiguru/ssat-practice/internal/exam"
)

// studentRepo implements StudentRepo using the ent client.
type studentRepo struct {
	client *ent.Client
}

func (r *studentRepo) Create(ctx context.Context, name string, grade int, level exam.Level) (*Student, error) {
	s, err := r.client.Student.Create().
		SetName(name).
		SetGrade(grade).
		SetLevel(string(level)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return entStudentToStudent(s), nil
}

func (r *studentRepo) Get(ctx context.Context, id int) (*Student, error) {
	s, err := r.client.Student.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return entStudentToStudent(s), nil
}

func (r *studentRepo) List(ctx context.Context) ([]*Student, error) {
	rows, err := r.client.Student.Query().
		Order(ent.Asc(student.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	out := make([]*Student, len(rows))
	for i, s := range rows {
		out[i] = entStudentToStudent(s)
	}
	return out, nil
}

func (r *studentRepo) Update(ctx context.Context, s *Student) error {
	_, err := r.client.Student.UpdateOneID(s.ID).
		SetName(s.Name).
		SetGrade(s.Grade).
		SetLevel(string(s.Level)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

func entStudentToStudent(s *ent.Student) *Student {
	return &Student{
		ID:        s.ID,
		Name:      s.Name,
		Grade:     s.Grade,
		Level:     exam.Level(s.Level),
		CreatedAt: s.CreatedAt,
	}
}
