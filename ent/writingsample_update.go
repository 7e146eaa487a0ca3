// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shailiguru/ssat-practice/ent/predicate"
	"github.com/shailiguru/ssat-practice/ent/writingsample"
)

// WritingSampleUpdate is the builder for updating WritingSample entities.
type WritingSampleUpdate struct {
	config
	hooks    []Hook
	mutation *WritingSampleMutation
}

// Where appends a list predicates to the WritingSampleUpdate builder.
func (_u *WritingSampleUpdate) Where(ps ...predicate.WritingSample) *WritingSampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *WritingSampleUpdate) SetStudentID(v int) *WritingSampleUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *WritingSampleUpdate) SetNillableStudentID(v *int) *WritingSampleUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *WritingSampleUpdate) AddStudentID(v int) *WritingSampleUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *WritingSampleUpdate) SetSessionID(v int) *WritingSampleUpdate {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *WritingSampleUpdate) SetNillableSessionID(v *int) *WritingSampleUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *WritingSampleUpdate) AddSessionID(v int) *WritingSampleUpdate {
	_u.mutation.AddSessionID(v)
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *WritingSampleUpdate) ClearSessionID() *WritingSampleUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *WritingSampleUpdate) SetPrompt(v string) *WritingSampleUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *WritingSampleUpdate) SetNillablePrompt(v *string) *WritingSampleUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *WritingSampleUpdate) SetResponse(v string) *WritingSampleUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *WritingSampleUpdate) SetNillableResponse(v *string) *WritingSampleUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *WritingSampleUpdate) SetFeedback(v string) *WritingSampleUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *WritingSampleUpdate) SetNillableFeedback(v *string) *WritingSampleUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *WritingSampleUpdate) ClearFeedback() *WritingSampleUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// Mutation returns the WritingSampleMutation object of the builder.
func (_u *WritingSampleUpdate) Mutation() *WritingSampleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WritingSampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WritingSampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WritingSampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WritingSampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WritingSampleUpdate) check() error {
	if v, ok := _u.mutation.Prompt(); ok {
		if err := writingsample.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "WritingSample.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *WritingSampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(writingsample.Table, writingsample.Columns, sqlgraph.NewFieldSpec(writingsample.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(writingsample.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(writingsample.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(writingsample.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(writingsample.FieldSessionID, field.TypeInt, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(writingsample.FieldSessionID, field.TypeInt)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(writingsample.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(writingsample.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(writingsample.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(writingsample.FieldFeedback, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{writingsample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WritingSampleUpdateOne is the builder for updating a single WritingSample entity.
type WritingSampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WritingSampleMutation
}

// SetStudentID sets the "student_id" field.
func (_u *WritingSampleUpdateOne) SetStudentID(v int) *WritingSampleUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *WritingSampleUpdateOne) SetNillableStudentID(v *int) *WritingSampleUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *WritingSampleUpdateOne) AddStudentID(v int) *WritingSampleUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *WritingSampleUpdateOne) SetSessionID(v int) *WritingSampleUpdateOne {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *WritingSampleUpdateOne) SetNillableSessionID(v *int) *WritingSampleUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *WritingSampleUpdateOne) AddSessionID(v int) *WritingSampleUpdateOne {
	_u.mutation.AddSessionID(v)
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *WritingSampleUpdateOne) ClearSessionID() *WritingSampleUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *WritingSampleUpdateOne) SetPrompt(v string) *WritingSampleUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *WritingSampleUpdateOne) SetNillablePrompt(v *string) *WritingSampleUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *WritingSampleUpdateOne) SetResponse(v string) *WritingSampleUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *WritingSampleUpdateOne) SetNillableResponse(v *string) *WritingSampleUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *WritingSampleUpdateOne) SetFeedback(v string) *WritingSampleUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *WritingSampleUpdateOne) SetNillableFeedback(v *string) *WritingSampleUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// ClearFeedback clears the value of the "feedback" field.
func (_u *WritingSampleUpdateOne) ClearFeedback() *WritingSampleUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// Mutation returns the WritingSampleMutation object of the builder.
func (_u *WritingSampleUpdateOne) Mutation() *WritingSampleMutation {
	return _u.mutation
}

// Where appends a list predicates to the WritingSampleUpdate builder.
func (_u *WritingSampleUpdateOne) Where(ps ...predicate.WritingSample) *WritingSampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WritingSampleUpdateOne) Select(field string, fields ...string) *WritingSampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WritingSample entity.
func (_u *WritingSampleUpdateOne) Save(ctx context.Context) (*WritingSample, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WritingSampleUpdateOne) SaveX(ctx context.Context) *WritingSample {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WritingSampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WritingSampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WritingSampleUpdateOne) check() error {
	if v, ok := _u.mutation.Prompt(); ok {
		if err := writingsample.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "WritingSample.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *WritingSampleUpdateOne) sqlSave(ctx context.Context) (_node *WritingSample, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(writingsample.Table, writingsample.Columns, sqlgraph.NewFieldSpec(writingsample.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WritingSample.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, writingsample.FieldID)
		for _, f := range fields {
			if !writingsample.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != writingsample.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(writingsample.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(writingsample.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(writingsample.FieldSessionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(writingsample.FieldSessionID, field.TypeInt, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(writingsample.FieldSessionID, field.TypeInt)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(writingsample.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(writingsample.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(writingsample.FieldFeedback, field.TypeString, value)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(writingsample.FieldFeedback, field.TypeString)
	}
	_node = &WritingSample{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{writingsample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
