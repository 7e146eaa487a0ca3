// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shailiguru/ssat-practice/ent/answer"
	"github.com/shailiguru/ssat-practice/ent/predicate"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerUpdate) SetSessionID(v int) *AnswerUpdate {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableSessionID(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *AnswerUpdate) AddSessionID(v int) *AnswerUpdate {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdate) SetQuestionID(v int) *AnswerUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableQuestionID(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *AnswerUpdate) AddQuestionID(v int) *AnswerUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AnswerUpdate) SetStudentID(v int) *AnswerUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableStudentID(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *AnswerUpdate) AddStudentID(v int) *AnswerUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetSelectedAnswer sets the "selected_answer" field.
func (_u *AnswerUpdate) SetSelectedAnswer(v string) *AnswerUpdate {
	_u.mutation.SetSelectedAnswer(v)
	return _u
}

// SetNillableSelectedAnswer sets the "selected_answer" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableSelectedAnswer(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetSelectedAnswer(*v)
	}
	return _u
}

// ClearSelectedAnswer clears the value of the "selected_answer" field.
func (_u *AnswerUpdate) ClearSelectedAnswer() *AnswerUpdate {
	_u.mutation.ClearSelectedAnswer()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AnswerUpdate) SetIsCorrect(v bool) *AnswerUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableIsCorrect(v *bool) *AnswerUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *AnswerUpdate) SetTimeSpentSeconds(v float64) *AnswerUpdate {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableTimeSpentSeconds(v *float64) *AnswerUpdate {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *AnswerUpdate) AddTimeSpentSeconds(v float64) *AnswerUpdate {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *AnswerUpdate) SetAnsweredAt(v time.Time) *AnswerUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableAnsweredAt(v *time.Time) *AnswerUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answer.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(answer.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(answer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(answer.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(answer.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SelectedAnswer(); ok {
		_spec.SetField(answer.FieldSelectedAnswer, field.TypeString, value)
	}
	if _u.mutation.SelectedAnswerCleared() {
		_spec.ClearField(answer.FieldSelectedAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(answer.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(answer.FieldTimeSpentSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(answer.FieldTimeSpentSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(answer.FieldAnsweredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerUpdateOne) SetSessionID(v int) *AnswerUpdateOne {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableSessionID(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *AnswerUpdateOne) AddSessionID(v int) *AnswerUpdateOne {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerUpdateOne) SetQuestionID(v int) *AnswerUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableQuestionID(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *AnswerUpdateOne) AddQuestionID(v int) *AnswerUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AnswerUpdateOne) SetStudentID(v int) *AnswerUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableStudentID(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *AnswerUpdateOne) AddStudentID(v int) *AnswerUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetSelectedAnswer sets the "selected_answer" field.
func (_u *AnswerUpdateOne) SetSelectedAnswer(v string) *AnswerUpdateOne {
	_u.mutation.SetSelectedAnswer(v)
	return _u
}

// SetNillableSelectedAnswer sets the "selected_answer" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableSelectedAnswer(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetSelectedAnswer(*v)
	}
	return _u
}

// ClearSelectedAnswer clears the value of the "selected_answer" field.
func (_u *AnswerUpdateOne) ClearSelectedAnswer() *AnswerUpdateOne {
	_u.mutation.ClearSelectedAnswer()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AnswerUpdateOne) SetIsCorrect(v bool) *AnswerUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableIsCorrect(v *bool) *AnswerUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *AnswerUpdateOne) SetTimeSpentSeconds(v float64) *AnswerUpdateOne {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableTimeSpentSeconds(v *float64) *AnswerUpdateOne {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *AnswerUpdateOne) AddTimeSpentSeconds(v float64) *AnswerUpdateOne {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *AnswerUpdateOne) SetAnsweredAt(v time.Time) *AnswerUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableAnsweredAt(v *time.Time) *AnswerUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answer.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(answer.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(answer.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(answer.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(answer.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SelectedAnswer(); ok {
		_spec.SetField(answer.FieldSelectedAnswer, field.TypeString, value)
	}
	if _u.mutation.SelectedAnswerCleared() {
		_spec.ClearField(answer.FieldSelectedAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(answer.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(answer.FieldTimeSpentSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(answer.FieldTimeSpentSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(answer.FieldAnsweredAt, field.TypeTime, value)
	}
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
