// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shailiguru/ssat-practice/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetLevel sets the "level" field.
func (_c *QuestionCreate) SetLevel(v string) *QuestionCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionCreate) SetQuestionType(v string) *QuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuestionCreate) SetTopic(v string) *QuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableTopic(v *string) *QuestionCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v int) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDifficulty(v *int) *QuestionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetStem sets the "stem" field.
func (_c *QuestionCreate) SetStem(v string) *QuestionCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetPassage sets the "passage" field.
func (_c *QuestionCreate) SetPassage(v string) *QuestionCreate {
	_c.mutation.SetPassage(v)
	return _c
}

// SetNillablePassage sets the "passage" field if the given value is not nil.
func (_c *QuestionCreate) SetNillablePassage(v *string) *QuestionCreate {
	if v != nil {
		_c.SetPassage(*v)
	}
	return _c
}

// SetChoices sets the "choices" field.
func (_c *QuestionCreate) SetChoices(v map[string]string) *QuestionCreate {
	_c.mutation.SetChoices(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuestionCreate) SetCorrectAnswer(v string) *QuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuestionCreate) SetExplanation(v string) *QuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExplanation(v *string) *QuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *QuestionCreate) SetBatchID(v string) *QuestionCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableBatchID(v *string) *QuestionCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *QuestionCreate) SetGeneratedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableGeneratedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Topic(); !ok {
		v := question.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := question.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		v := question.DefaultExplanation
		_c.mutation.SetExplanation(v)
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		v := question.DefaultBatchID
		_c.mutation.SetBatchID(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := question.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Question.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := question.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Question.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Question.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Question.topic"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "Question.stem"`)}
	}
	if v, ok := _c.mutation.Stem(); ok {
		if err := question.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "Question.stem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Choices(); !ok {
		return &ValidationError{Name: "choices", err: errors.New(`ent: missing required field "Question.choices"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "Question.correct_answer"`)}
	}
	if v, ok := _c.mutation.CorrectAnswer(); ok {
		if err := question.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "Question.correct_answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "Question.explanation"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "Question.batch_id"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "Question.generated_at"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(question.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(question.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.Passage(); ok {
		_spec.SetField(question.FieldPassage, field.TypeString, value)
		_node.Passage = &value
	}
	if value, ok := _c.mutation.Choices(); ok {
		_spec.SetField(question.FieldChoices, field.TypeJSON, value)
		_node.Choices = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(question.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(question.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(question.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
