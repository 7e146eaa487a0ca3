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
	"github.com/shailiguru/ssat-practice/ent/predicate"
	"github.com/shailiguru/ssat-practice/ent/topicmastery"
)

// TopicMasteryUpdate is the builder for updating TopicMastery entities.
type TopicMasteryUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMasteryMutation
}

// Where appends a list predicates to the TopicMasteryUpdate builder.
func (_u *TopicMasteryUpdate) Where(ps ...predicate.TopicMastery) *TopicMasteryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *TopicMasteryUpdate) SetStudentID(v int) *TopicMasteryUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableStudentID(v *int) *TopicMasteryUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *TopicMasteryUpdate) AddStudentID(v int) *TopicMasteryUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetTopicTag sets the "topic_tag" field.
func (_u *TopicMasteryUpdate) SetTopicTag(v string) *TopicMasteryUpdate {
	_u.mutation.SetTopicTag(v)
	return _u
}

// SetNillableTopicTag sets the "topic_tag" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableTopicTag(v *string) *TopicMasteryUpdate {
	if v != nil {
		_u.SetTopicTag(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *TopicMasteryUpdate) SetDifficultyLevel(v float64) *TopicMasteryUpdate {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableDifficultyLevel(v *float64) *TopicMasteryUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *TopicMasteryUpdate) AddDifficultyLevel(v float64) *TopicMasteryUpdate {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetTotalAttempted sets the "total_attempted" field.
func (_u *TopicMasteryUpdate) SetTotalAttempted(v int) *TopicMasteryUpdate {
	_u.mutation.ResetTotalAttempted()
	_u.mutation.SetTotalAttempted(v)
	return _u
}

// SetNillableTotalAttempted sets the "total_attempted" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableTotalAttempted(v *int) *TopicMasteryUpdate {
	if v != nil {
		_u.SetTotalAttempted(*v)
	}
	return _u
}

// AddTotalAttempted adds value to the "total_attempted" field.
func (_u *TopicMasteryUpdate) AddTotalAttempted(v int) *TopicMasteryUpdate {
	_u.mutation.AddTotalAttempted(v)
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *TopicMasteryUpdate) SetTotalCorrect(v int) *TopicMasteryUpdate {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableTotalCorrect(v *int) *TopicMasteryUpdate {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *TopicMasteryUpdate) AddTotalCorrect(v int) *TopicMasteryUpdate {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetLast50Attempted sets the "last_50_attempted" field.
func (_u *TopicMasteryUpdate) SetLast50Attempted(v int) *TopicMasteryUpdate {
	_u.mutation.ResetLast50Attempted()
	_u.mutation.SetLast50Attempted(v)
	return _u
}

// SetNillableLast50Attempted sets the "last_50_attempted" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableLast50Attempted(v *int) *TopicMasteryUpdate {
	if v != nil {
		_u.SetLast50Attempted(*v)
	}
	return _u
}

// AddLast50Attempted adds value to the "last_50_attempted" field.
func (_u *TopicMasteryUpdate) AddLast50Attempted(v int) *TopicMasteryUpdate {
	_u.mutation.AddLast50Attempted(v)
	return _u
}

// SetLast50Correct sets the "last_50_correct" field.
func (_u *TopicMasteryUpdate) SetLast50Correct(v int) *TopicMasteryUpdate {
	_u.mutation.ResetLast50Correct()
	_u.mutation.SetLast50Correct(v)
	return _u
}

// SetNillableLast50Correct sets the "last_50_correct" field if the given value is not nil.
func (_u *TopicMasteryUpdate) SetNillableLast50Correct(v *int) *TopicMasteryUpdate {
	if v != nil {
		_u.SetLast50Correct(*v)
	}
	return _u
}

// AddLast50Correct adds value to the "last_50_correct" field.
func (_u *TopicMasteryUpdate) AddLast50Correct(v int) *TopicMasteryUpdate {
	_u.mutation.AddLast50Correct(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicMasteryUpdate) SetUpdatedAt(v time.Time) *TopicMasteryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TopicMasteryMutation object of the builder.
func (_u *TopicMasteryUpdate) Mutation() *TopicMasteryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicMasteryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicMasteryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicMasteryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicMasteryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicMasteryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topicmastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicMasteryUpdate) check() error {
	if v, ok := _u.mutation.TopicTag(); ok {
		if err := topicmastery.TopicTagValidator(v); err != nil {
			return &ValidationError{Name: "topic_tag", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.topic_tag": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicMasteryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicmastery.Table, topicmastery.Columns, sqlgraph.NewFieldSpec(topicmastery.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(topicmastery.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(topicmastery.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicTag(); ok {
		_spec.SetField(topicmastery.FieldTopicTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(topicmastery.FieldDifficultyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(topicmastery.FieldDifficultyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAttempted(); ok {
		_spec.SetField(topicmastery.FieldTotalAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempted(); ok {
		_spec.AddField(topicmastery.FieldTotalAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(topicmastery.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(topicmastery.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Last50Attempted(); ok {
		_spec.SetField(topicmastery.FieldLast50Attempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLast50Attempted(); ok {
		_spec.AddField(topicmastery.FieldLast50Attempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Last50Correct(); ok {
		_spec.SetField(topicmastery.FieldLast50Correct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLast50Correct(); ok {
		_spec.AddField(topicmastery.FieldLast50Correct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicmastery.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicMasteryUpdateOne is the builder for updating a single TopicMastery entity.
type TopicMasteryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMasteryMutation
}

// SetStudentID sets the "student_id" field.
func (_u *TopicMasteryUpdateOne) SetStudentID(v int) *TopicMasteryUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableStudentID(v *int) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *TopicMasteryUpdateOne) AddStudentID(v int) *TopicMasteryUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetTopicTag sets the "topic_tag" field.
func (_u *TopicMasteryUpdateOne) SetTopicTag(v string) *TopicMasteryUpdateOne {
	_u.mutation.SetTopicTag(v)
	return _u
}

// SetNillableTopicTag sets the "topic_tag" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableTopicTag(v *string) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetTopicTag(*v)
	}
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *TopicMasteryUpdateOne) SetDifficultyLevel(v float64) *TopicMasteryUpdateOne {
	_u.mutation.ResetDifficultyLevel()
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableDifficultyLevel(v *float64) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// AddDifficultyLevel adds value to the "difficulty_level" field.
func (_u *TopicMasteryUpdateOne) AddDifficultyLevel(v float64) *TopicMasteryUpdateOne {
	_u.mutation.AddDifficultyLevel(v)
	return _u
}

// SetTotalAttempted sets the "total_attempted" field.
func (_u *TopicMasteryUpdateOne) SetTotalAttempted(v int) *TopicMasteryUpdateOne {
	_u.mutation.ResetTotalAttempted()
	_u.mutation.SetTotalAttempted(v)
	return _u
}

// SetNillableTotalAttempted sets the "total_attempted" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableTotalAttempted(v *int) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetTotalAttempted(*v)
	}
	return _u
}

// AddTotalAttempted adds value to the "total_attempted" field.
func (_u *TopicMasteryUpdateOne) AddTotalAttempted(v int) *TopicMasteryUpdateOne {
	_u.mutation.AddTotalAttempted(v)
	return _u
}

// SetTotalCorrect sets the "total_correct" field.
func (_u *TopicMasteryUpdateOne) SetTotalCorrect(v int) *TopicMasteryUpdateOne {
	_u.mutation.ResetTotalCorrect()
	_u.mutation.SetTotalCorrect(v)
	return _u
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableTotalCorrect(v *int) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetTotalCorrect(*v)
	}
	return _u
}

// AddTotalCorrect adds value to the "total_correct" field.
func (_u *TopicMasteryUpdateOne) AddTotalCorrect(v int) *TopicMasteryUpdateOne {
	_u.mutation.AddTotalCorrect(v)
	return _u
}

// SetLast50Attempted sets the "last_50_attempted" field.
func (_u *TopicMasteryUpdateOne) SetLast50Attempted(v int) *TopicMasteryUpdateOne {
	_u.mutation.ResetLast50Attempted()
	_u.mutation.SetLast50Attempted(v)
	return _u
}

// SetNillableLast50Attempted sets the "last_50_attempted" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableLast50Attempted(v *int) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetLast50Attempted(*v)
	}
	return _u
}

// AddLast50Attempted adds value to the "last_50_attempted" field.
func (_u *TopicMasteryUpdateOne) AddLast50Attempted(v int) *TopicMasteryUpdateOne {
	_u.mutation.AddLast50Attempted(v)
	return _u
}

// SetLast50Correct sets the "last_50_correct" field.
func (_u *TopicMasteryUpdateOne) SetLast50Correct(v int) *TopicMasteryUpdateOne {
	_u.mutation.ResetLast50Correct()
	_u.mutation.SetLast50Correct(v)
	return _u
}

// SetNillableLast50Correct sets the "last_50_correct" field if the given value is not nil.
func (_u *TopicMasteryUpdateOne) SetNillableLast50Correct(v *int) *TopicMasteryUpdateOne {
	if v != nil {
		_u.SetLast50Correct(*v)
	}
	return _u
}

// AddLast50Correct adds value to the "last_50_correct" field.
func (_u *TopicMasteryUpdateOne) AddLast50Correct(v int) *TopicMasteryUpdateOne {
	_u.mutation.AddLast50Correct(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicMasteryUpdateOne) SetUpdatedAt(v time.Time) *TopicMasteryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TopicMasteryMutation object of the builder.
func (_u *TopicMasteryUpdateOne) Mutation() *TopicMasteryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicMasteryUpdate builder.
func (_u *TopicMasteryUpdateOne) Where(ps ...predicate.TopicMastery) *TopicMasteryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicMasteryUpdateOne) Select(field string, fields ...string) *TopicMasteryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicMastery entity.
func (_u *TopicMasteryUpdateOne) Save(ctx context.Context) (*TopicMastery, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicMasteryUpdateOne) SaveX(ctx context.Context) *TopicMastery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicMasteryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicMasteryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicMasteryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := topicmastery.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicMasteryUpdateOne) check() error {
	if v, ok := _u.mutation.TopicTag(); ok {
		if err := topicmastery.TopicTagValidator(v); err != nil {
			return &ValidationError{Name: "topic_tag", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.topic_tag": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicMasteryUpdateOne) sqlSave(ctx context.Context) (_node *TopicMastery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicmastery.Table, topicmastery.Columns, sqlgraph.NewFieldSpec(topicmastery.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicMastery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicmastery.FieldID)
		for _, f := range fields {
			if !topicmastery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicmastery.FieldID {
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
		_spec.SetField(topicmastery.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(topicmastery.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TopicTag(); ok {
		_spec.SetField(topicmastery.FieldTopicTag, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(topicmastery.FieldDifficultyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficultyLevel(); ok {
		_spec.AddField(topicmastery.FieldDifficultyLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalAttempted(); ok {
		_spec.SetField(topicmastery.FieldTotalAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAttempted(); ok {
		_spec.AddField(topicmastery.FieldTotalAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalCorrect(); ok {
		_spec.SetField(topicmastery.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCorrect(); ok {
		_spec.AddField(topicmastery.FieldTotalCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Last50Attempted(); ok {
		_spec.SetField(topicmastery.FieldLast50Attempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLast50Attempted(); ok {
		_spec.AddField(topicmastery.FieldLast50Attempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Last50Correct(); ok {
		_spec.SetField(topicmastery.FieldLast50Correct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLast50Correct(); ok {
		_spec.AddField(topicmastery.FieldLast50Correct, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicmastery.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TopicMastery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicmastery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
