package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer records one presented question within a session: the selection
// (absent when skipped), derived correctness, and elapsed time. Created
// exactly once per question presented and never mutated afterward.
type Answer struct {
	ent.Schema
}

func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_id").
			Comment("TestSession this answer belongs to"),
		field.Int("question_id"),
		field.Int("student_id"),
		field.String("selected_answer").
			Optional().
			Nillable().
			Comment("Chosen letter A-E; nil means skipped"),
		field.Bool("is_correct").
			Default(false),
		field.Float("time_spent_seconds").
			Default(0),
		field.Time("answered_at").
			Default(time.Now),
	}
}

func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("session_id"),
		index.Fields("question_id"),
		index.Fields("student_id", "is_correct"),
	}
}
