// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shailiguru/ssat-practice/ent/answer"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerCreate) SetSessionID(v int) *AnswerCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerCreate) SetQuestionID(v int) *AnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AnswerCreate) SetStudentID(v int) *AnswerCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSelectedAnswer sets the "selected_answer" field.
func (_c *AnswerCreate) SetSelectedAnswer(v string) *AnswerCreate {
	_c.mutation.SetSelectedAnswer(v)
	return _c
}

// SetNillableSelectedAnswer sets the "selected_answer" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableSelectedAnswer(v *string) *AnswerCreate {
	if v != nil {
		_c.SetSelectedAnswer(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *AnswerCreate) SetIsCorrect(v bool) *AnswerCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableIsCorrect(v *bool) *AnswerCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_c *AnswerCreate) SetTimeSpentSeconds(v float64) *AnswerCreate {
	_c.mutation.SetTimeSpentSeconds(v)
	return _c
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableTimeSpentSeconds(v *float64) *AnswerCreate {
	if v != nil {
		_c.SetTimeSpentSeconds(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *AnswerCreate) SetAnsweredAt(v time.Time) *AnswerCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableAnsweredAt(v *time.Time) *AnswerCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// Mutation returns the AnswerMutation object of the builder.
func (_c *AnswerCreate) Mutation() *AnswerMutation {
	return _c.mutation
}

// Save creates the Answer in the database.
func (_c *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerCreate) defaults() {
	if _, ok := _c.mutation.IsCorrect(); !ok {
		v := answer.DefaultIsCorrect
		_c.mutation.SetIsCorrect(v)
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		v := answer.DefaultTimeSpentSeconds
		_c.mutation.SetTimeSpentSeconds(v)
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		v := answer.DefaultAnsweredAt()
		_c.mutation.SetAnsweredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Answer.session_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Answer.question_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "Answer.student_id"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "Answer.is_correct"`)}
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		return &ValidationError{Name: "time_spent_seconds", err: errors.New(`ent: missing required field "Answer.time_spent_seconds"`)}
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		return &ValidationError{Name: "answered_at", err: errors.New(`ent: missing required field "Answer.answered_at"`)}
	}
	return nil
}

func (_c *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answer.FieldSessionID, field.TypeInt, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeInt, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(answer.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SelectedAnswer(); ok {
		_spec.SetField(answer.FieldSelectedAnswer, field.TypeString, value)
		_node.SelectedAnswer = &value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(answer.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(answer.FieldTimeSpentSeconds, field.TypeFloat64, value)
		_node.TimeSpentSeconds = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(answer.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = value
	}
	return _node, _spec
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
}

// Save creates the Answer entities in the database.
func (_c *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Answer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
