package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicMastery tracks adaptive difficulty and accuracy per (student, topic).
// The last-50 window is recomputed from the answer history on every update,
// never incremented, so rounding drift cannot accumulate.
type TopicMastery struct {
	ent.Schema
}

func (TopicMastery) Fields() []ent.Field {
	return []ent.Field{
		field.Int("student_id"),
		field.String("topic_tag").
			NotEmpty(),
		field.Float("difficulty_level").
			Default(3.0).
			Comment("Continuous difficulty in [1.0, 5.0]"),
		field.Int("total_attempted").
			Default(0),
		field.Int("total_correct").
			Default(0),
		field.Int("last_50_attempted").
			Default(0),
		field.Int("last_50_correct").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (TopicMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "topic_tag").
			Unique(),
	}
}
