// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shailiguru/ssat-practice/ent/writingsample"
)

// WritingSampleCreate is the builder for creating a WritingSample entity.
type WritingSampleCreate struct {
	config
	mutation *WritingSampleMutation
	hooks    []Hook
}

// SetStudentID sets the "student_id" field.
func (_c *WritingSampleCreate) SetStudentID(v int) *WritingSampleCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *WritingSampleCreate) SetSessionID(v int) *WritingSampleCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *WritingSampleCreate) SetNillableSessionID(v *int) *WritingSampleCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *WritingSampleCreate) SetPrompt(v string) *WritingSampleCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *WritingSampleCreate) SetResponse(v string) *WritingSampleCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_c *WritingSampleCreate) SetNillableResponse(v *string) *WritingSampleCreate {
	if v != nil {
		_c.SetResponse(*v)
	}
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *WritingSampleCreate) SetFeedback(v string) *WritingSampleCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *WritingSampleCreate) SetNillableFeedback(v *string) *WritingSampleCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WritingSampleCreate) SetCreatedAt(v time.Time) *WritingSampleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WritingSampleCreate) SetNillableCreatedAt(v *time.Time) *WritingSampleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the WritingSampleMutation object of the builder.
func (_c *WritingSampleCreate) Mutation() *WritingSampleMutation {
	return _c.mutation
}

// Save creates the WritingSample in the database.
func (_c *WritingSampleCreate) Save(ctx context.Context) (*WritingSample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WritingSampleCreate) SaveX(ctx context.Context) *WritingSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WritingSampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WritingSampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WritingSampleCreate) defaults() {
	if _, ok := _c.mutation.Response(); !ok {
		v := writingsample.DefaultResponse
		_c.mutation.SetResponse(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := writingsample.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WritingSampleCreate) check() error {
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "WritingSample.student_id"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "WritingSample.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := writingsample.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "WritingSample.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Response(); !ok {
		return &ValidationError{Name: "response", err: errors.New(`ent: missing required field "WritingSample.response"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WritingSample.created_at"`)}
	}
	return nil
}

func (_c *WritingSampleCreate) sqlSave(ctx context.Context) (*WritingSample, error) {
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

func (_c *WritingSampleCreate) createSpec() (*WritingSample, *sqlgraph.CreateSpec) {
	var (
		_node = &WritingSample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(writingsample.Table, sqlgraph.NewFieldSpec(writingsample.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(writingsample.FieldStudentID, field.TypeInt, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(writingsample.FieldSessionID, field.TypeInt, value)
		_node.SessionID = &value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(writingsample.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(writingsample.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(writingsample.FieldFeedback, field.TypeString, value)
		_node.Feedback = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(writingsample.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WritingSampleCreateBulk is the builder for creating many WritingSample entities in bulk.
type WritingSampleCreateBulk struct {
	config
	err      error
	builders []*WritingSampleCreate
}

// Save creates the WritingSample entities in the database.
func (_c *WritingSampleCreateBulk) Save(ctx context.Context) ([]*WritingSample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WritingSample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WritingSampleMutation)
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
func (_c *WritingSampleCreateBulk) SaveX(ctx context.Context) []*WritingSample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WritingSampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WritingSampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
