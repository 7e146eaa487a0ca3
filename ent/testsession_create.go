// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shailiguru/ssat-practice/ent/testsession"
)

// TestSessionCreate is the builder for creating a TestSession entity.
type TestSessionCreate struct {
	config
	mutation *TestSessionMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *TestSessionCreate) SetStudentID(v int) *TestSessionCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *TestSessionCreate) SetLevel(v string) *TestSessionCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *TestSessionCreate) SetGrade(v int) *TestSessionCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableGrade(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *TestSessionCreate) SetMode(v string) *TestSessionCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableMode(v *string) *TestSessionCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TestSessionCreate) SetStartedAt(v time.Time) *TestSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableStartedAt(v *time.Time) *TestSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TestSessionCreate) SetCompletedAt(v time.Time) *TestSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableCompletedAt(v *time.Time) *TestSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetVerbalRaw sets the "verbal_raw" field.
func (_c *TestSessionCreate) SetVerbalRaw(v float64) *TestSessionCreate {
	_c.mutation.SetVerbalRaw(v)
	return _c
}

// SetNillableVerbalRaw sets the "verbal_raw" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableVerbalRaw(v *float64) *TestSessionCreate {
	if v != nil {
		_c.SetVerbalRaw(*v)
	}
	return _c
}

// SetVerbalScaled sets the "verbal_scaled" field.
func (_c *TestSessionCreate) SetVerbalScaled(v int) *TestSessionCreate {
	_c.mutation.SetVerbalScaled(v)
	return _c
}

// SetNillableVerbalScaled sets the "verbal_scaled" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableVerbalScaled(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetVerbalScaled(*v)
	}
	return _c
}

// SetVerbalPercentile sets the "verbal_percentile" field.
func (_c *TestSessionCreate) SetVerbalPercentile(v int) *TestSessionCreate {
	_c.mutation.SetVerbalPercentile(v)
	return _c
}

// SetNillableVerbalPercentile sets the "verbal_percentile" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableVerbalPercentile(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetVerbalPercentile(*v)
	}
	return _c
}

// SetQuantitativeRaw sets the "quantitative_raw" field.
func (_c *TestSessionCreate) SetQuantitativeRaw(v float64) *TestSessionCreate {
	_c.mutation.SetQuantitativeRaw(v)
	return _c
}

// SetNillableQuantitativeRaw sets the "quantitative_raw" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableQuantitativeRaw(v *float64) *TestSessionCreate {
	if v != nil {
		_c.SetQuantitativeRaw(*v)
	}
	return _c
}

// SetQuantitativeScaled sets the "quantitative_scaled" field.
func (_c *TestSessionCreate) SetQuantitativeScaled(v int) *TestSessionCreate {
	_c.mutation.SetQuantitativeScaled(v)
	return _c
}

// SetNillableQuantitativeScaled sets the "quantitative_scaled" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableQuantitativeScaled(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetQuantitativeScaled(*v)
	}
	return _c
}

// SetQuantitativePercentile sets the "quantitative_percentile" field.
func (_c *TestSessionCreate) SetQuantitativePercentile(v int) *TestSessionCreate {
	_c.mutation.SetQuantitativePercentile(v)
	return _c
}

// SetNillableQuantitativePercentile sets the "quantitative_percentile" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableQuantitativePercentile(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetQuantitativePercentile(*v)
	}
	return _c
}

// SetReadingRaw sets the "reading_raw" field.
func (_c *TestSessionCreate) SetReadingRaw(v float64) *TestSessionCreate {
	_c.mutation.SetReadingRaw(v)
	return _c
}

// SetNillableReadingRaw sets the "reading_raw" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableReadingRaw(v *float64) *TestSessionCreate {
	if v != nil {
		_c.SetReadingRaw(*v)
	}
	return _c
}

// SetReadingScaled sets the "reading_scaled" field.
func (_c *TestSessionCreate) SetReadingScaled(v int) *TestSessionCreate {
	_c.mutation.SetReadingScaled(v)
	return _c
}

// SetNillableReadingScaled sets the "reading_scaled" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableReadingScaled(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetReadingScaled(*v)
	}
	return _c
}

// SetReadingPercentile sets the "reading_percentile" field.
func (_c *TestSessionCreate) SetReadingPercentile(v int) *TestSessionCreate {
	_c.mutation.SetReadingPercentile(v)
	return _c
}

// SetNillableReadingPercentile sets the "reading_percentile" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableReadingPercentile(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetReadingPercentile(*v)
	}
	return _c
}

// SetTotalScaled sets the "total_scaled" field.
func (_c *TestSessionCreate) SetTotalScaled(v int) *TestSessionCreate {
	_c.mutation.SetTotalScaled(v)
	return _c
}

// SetNillableTotalScaled sets the "total_scaled" field if the given value is not nil.
func (_c *TestSessionCreate) SetNillableTotalScaled(v *int) *TestSessionCreate {
	if v != nil {
		_c.SetTotalScaled(*v)
	}
	return _c
}

// Mutation returns the TestSessionMutation object of the builder.
func (_c *TestSessionCreate) Mutation() *TestSessionMutation {
	return _c.mutation
}

// Save creates the TestSession in the database.
func (_c *TestSessionCreate) Save(ctx context.Context) (*TestSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestSessionCreate) SaveX(ctx context.Context) *TestSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestSessionCreate) defaults() {
	if _, ok := _c.mutation.Grade(); !ok {
		v := testsession.DefaultGrade
		_c.mutation.SetGrade(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := testsession.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := testsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestSessionCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "TestSession.student_id"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "TestSession.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := testsession.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "TestSession.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "TestSession.grade"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "TestSession.mode"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "TestSession.started_at"`)}
	}
	return nil
}

func (_c *TestSessionCreate) sqlSave(ctx context.Context) (*TestSession, error) {
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

func (_c *TestSessionCreate) createSpec() (*TestSession, *sqlgraph.CreateSpec) {
	var (
		_node = &TestSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testsession.Table, sqlgraph.NewFieldSpec(testsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(testsession.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(testsession.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(testsession.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(testsession.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(testsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(testsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.VerbalRaw(); ok {
		_spec.SetField(testsession.FieldVerbalRaw, field.TypeFloat64, value)
		_node.VerbalRaw = &value
	}
	if value, ok := _c.mutation.VerbalScaled(); ok {
		_spec.SetField(testsession.FieldVerbalScaled, field.TypeInt, value)
		_node.VerbalScaled = &value
	}
	if value, ok := _c.mutation.VerbalPercentile(); ok {
		_spec.SetField(testsession.FieldVerbalPercentile, field.TypeInt, value)
		_node.VerbalPercentile = &value
	}
	if value, ok := _c.mutation.QuantitativeRaw(); ok {
		_spec.SetField(testsession.FieldQuantitativeRaw, field.TypeFloat64, value)
		_node.QuantitativeRaw = &value
	}
	if value, ok := _c.mutation.QuantitativeScaled(); ok {
		_spec.SetField(testsession.FieldQuantitativeScaled, field.TypeInt, value)
		_node.QuantitativeScaled = &value
	}
	if value, ok := _c.mutation.QuantitativePercentile(); ok {
		_spec.SetField(testsession.FieldQuantitativePercentile, field.TypeInt, value)
		_node.QuantitativePercentile = &value
	}
	if value, ok := _c.mutation.ReadingRaw(); ok {
		_spec.SetField(testsession.FieldReadingRaw, field.TypeFloat64, value)
		_node.ReadingRaw = &value
	}
	if value, ok := _c.mutation.ReadingScaled(); ok {
		_spec.SetField(testsession.FieldReadingScaled, field.TypeInt, value)
		_node.ReadingScaled = &value
	}
	if value, ok := _c.mutation.ReadingPercentile(); ok {
		_spec.SetField(testsession.FieldReadingPercentile, field.TypeInt, value)
		_node.ReadingPercentile = &value
	}
	if value, ok := _c.mutation.TotalScaled(); ok {
		_spec.SetField(testsession.FieldTotalScaled, field.TypeInt, value)
		_node.TotalScaled = &value
	}
	return _node, _spec
}

// TestSessionCreateBulk is the builder for creating many TestSession entities in bulk.
type TestSessionCreateBulk struct {
	config
	err      error
	builders []*TestSessionCreate
}

// Save creates the TestSession entities in the database.
func (_c *TestSessionCreateBulk) Save(ctx context.Context) ([]*TestSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestSessionMutation)
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
func (_c *TestSessionCreateBulk) SaveX(ctx context.Context) []*TestSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
