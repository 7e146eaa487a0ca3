package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WritingSample stores the unscored writing sub-step of a full test:
// the prompt shown, what the student wrote, and any tutor feedback.
type WritingSample struct {
	ent.Schema
}

func (WritingSample) Fields() []ent.Field {
	return []ent.Field{
		field.Int("student_id"),
		field.Int("session_id").
			Optional().
			Nillable(),
		field.String("prompt").
			NotEmpty(),
		field.String("response").
			Default(""),
		field.String("feedback").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (WritingSample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
	}
}
