package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a generated SSAT multiple-choice question. Immutable once
// persisted; the pool cache selects from these and the generator appends
// new batches.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("level").
			NotEmpty().
			Comment("elementary or middle"),
		field.String("question_type").
			NotEmpty().
			Comment("Topic tag: synonym, analogy, arithmetic, algebra, geometry, word_problem, reading_comprehension"),
		field.String("topic").
			Default("").
			Comment("Sub-topic, e.g. main_idea for reading questions"),
		field.Int("difficulty").
			Default(3).
			Comment("Stored difficulty 1-5"),
		field.String("stem").
			NotEmpty(),
		field.String("passage").
			Optional().
			Nillable().
			Comment("Reading passage, shared across a passage's questions"),
		field.JSON("choices", map[string]string{}).
			Comment("Choice letter to text, keys A through E"),
		field.String("correct_answer").
			NotEmpty().
			Comment("One of A-E"),
		field.String("explanation").
			Default(""),
		field.String("batch_id").
			Default("").
			Comment("Generation batch this question arrived in"),
		field.Time("generated_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level", "question_type", "difficulty"),
		index.Fields("batch_id"),
	}
}
