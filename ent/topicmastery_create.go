// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shailiguru/ssat-practice/ent/topicmastery"
)

// TopicMasteryCreate is the builder for creating a TopicMastery entity.
type TopicMasteryCreate struct {
	config
	mutation *TopicMasteryMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *TopicMasteryCreate) SetStudentID(v int) *TopicMasteryCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetTopicTag sets the "topic_tag" field.
func (_c *TopicMasteryCreate) SetTopicTag(v string) *TopicMasteryCreate {
	_c.mutation.SetTopicTag(v)
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *TopicMasteryCreate) SetDifficultyLevel(v float64) *TopicMasteryCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableDifficultyLevel(v *float64) *TopicMasteryCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetTotalAttempted sets the "total_attempted" field.
func (_c *TopicMasteryCreate) SetTotalAttempted(v int) *TopicMasteryCreate {
	_c.mutation.SetTotalAttempted(v)
	return _c
}

// SetNillableTotalAttempted sets the "total_attempted" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableTotalAttempted(v *int) *TopicMasteryCreate {
	if v != nil {
		_c.SetTotalAttempted(*v)
	}
	return _c
}

// SetTotalCorrect sets the "total_correct" field.
func (_c *TopicMasteryCreate) SetTotalCorrect(v int) *TopicMasteryCreate {
	_c.mutation.SetTotalCorrect(v)
	return _c
}

// SetNillableTotalCorrect sets the "total_correct" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableTotalCorrect(v *int) *TopicMasteryCreate {
	if v != nil {
		_c.SetTotalCorrect(*v)
	}
	return _c
}

// SetLast50Attempted sets the "last_50_attempted" field.
func (_c *TopicMasteryCreate) SetLast50Attempted(v int) *TopicMasteryCreate {
	_c.mutation.SetLast50Attempted(v)
	return _c
}

// SetNillableLast50Attempted sets the "last_50_attempted" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableLast50Attempted(v *int) *TopicMasteryCreate {
	if v != nil {
		_c.SetLast50Attempted(*v)
	}
	return _c
}

// SetLast50Correct sets the "last_50_correct" field.
func (_c *TopicMasteryCreate) SetLast50Correct(v int) *TopicMasteryCreate {
	_c.mutation.SetLast50Correct(v)
	return _c
}

// SetNillableLast50Correct sets the "last_50_correct" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableLast50Correct(v *int) *TopicMasteryCreate {
	if v != nil {
		_c.SetLast50Correct(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TopicMasteryCreate) SetUpdatedAt(v time.Time) *TopicMasteryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TopicMasteryCreate) SetNillableUpdatedAt(v *time.Time) *TopicMasteryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the TopicMasteryMutation object of the builder.
func (_c *TopicMasteryCreate) Mutation() *TopicMasteryMutation {
	return _c.mutation
}

// Save creates the TopicMastery in the database.
func (_c *TopicMasteryCreate) Save(ctx context.Context) (*TopicMastery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicMasteryCreate) SaveX(ctx context.Context) *TopicMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicMasteryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicMasteryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicMasteryCreate) defaults() {
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		v := topicmastery.DefaultDifficultyLevel
		_c.mutation.SetDifficultyLevel(v)
	}
	if _, ok := _c.mutation.TotalAttempted(); !ok {
		v := topicmastery.DefaultTotalAttempted
		_c.mutation.SetTotalAttempted(v)
	}
	if _, ok := _c.mutation.TotalCorrect(); !ok {
		v := topicmastery.DefaultTotalCorrect
		_c.mutation.SetTotalCorrect(v)
	}
	if _, ok := _c.mutation.Last50Attempted(); !ok {
		v := topicmastery.DefaultLast50Attempted
		_c.mutation.SetLast50Attempted(v)
	}
	if _, ok := _c.mutation.Last50Correct(); !ok {
		v := topicmastery.DefaultLast50Correct
		_c.mutation.SetLast50Correct(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := topicmastery.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicMasteryCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "TopicMastery.student_id"`)}
	}
	if _, ok := _c.mutation.TopicTag(); !ok {
		return &ValidationError{Name: "topic_tag", err: errors.New(`ent: missing required field "TopicMastery.topic_tag"`)}
	}
	if v, ok := _c.mutation.TopicTag(); ok {
		if err := topicmastery.TopicTagValidator(v); err != nil {
			return &ValidationError{Name: "topic_tag", err: fmt.Errorf(`ent: validator failed for field "TopicMastery.topic_tag": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "TopicMastery.difficulty_level"`)}
	}
	if _, ok := _c.mutation.TotalAttempted(); !ok {
		return &ValidationError{Name: "total_attempted", err: errors.New(`ent: missing required field "TopicMastery.total_attempted"`)}
	}
	if _, ok := _c.mutation.TotalCorrect(); !ok {
		return &ValidationError{Name: "total_correct", err: errors.New(`ent: missing required field "TopicMastery.total_correct"`)}
	}
	if _, ok := _c.mutation.Last50Attempted(); !ok {
		return &ValidationError{Name: "last_50_attempted", err: errors.New(`ent: missing required field "TopicMastery.last_50_attempted"`)}
	}
	if _, ok := _c.mutation.Last50Correct(); !ok {
		return &ValidationError{Name: "last_50_correct", err: errors.New(`ent: missing required field "TopicMastery.last_50_correct"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TopicMastery.updated_at"`)}
	}
	return nil
}

func (_c *TopicMasteryCreate) sqlSave(ctx context.Context) (*TopicMastery, error) {
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

func (_c *TopicMasteryCreate) createSpec() (*TopicMastery, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicMastery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicmastery.Table, sqlgraph.NewFieldSpec(topicmastery.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(topicmastery.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.TopicTag(); ok {
		_spec.SetField(topicmastery.FieldTopicTag, field.TypeString, value)
		_node.TopicTag = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(topicmastery.FieldDifficultyLevel, field.TypeFloat64, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.TotalAttempted(); ok {
		_spec.SetField(topicmastery.FieldTotalAttempted, field.TypeInt, value)
		_node.TotalAttempted = value
	}
	if value, ok := _c.mutation.TotalCorrect(); ok {
		_spec.SetField(topicmastery.FieldTotalCorrect, field.TypeInt, value)
		_node.TotalCorrect = value
	}
	if value, ok := _c.mutation.Last50Attempted(); ok {
		_spec.SetField(topicmastery.FieldLast50Attempted, field.TypeInt, value)
		_node.Last50Attempted = value
	}
	if value, ok := _c.mutation.Last50Correct(); ok {
		_spec.SetField(topicmastery.FieldLast50Correct, field.TypeInt, value)
		_node.Last50Correct = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(topicmastery.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TopicMasteryCreateBulk is the builder for creating many TopicMastery entities in bulk.
type TopicMasteryCreateBulk struct {
	config
	err      error
	builders []*TopicMasteryCreate
}

// Save creates the TopicMastery entities in the database.
func (_c *TopicMasteryCreateBulk) Save(ctx context.Context) ([]*TopicMastery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicMastery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicMasteryMutation)
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
func (_c *TopicMasteryCreateBulk) SaveX(ctx context.Context) []*TopicMastery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicMasteryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicMasteryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
