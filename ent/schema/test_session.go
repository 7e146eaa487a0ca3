package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestSession is one practice run: a full test, a section practice, a
// quick drill, or a review. Score fields stay nil until completion.
type TestSession struct {
	ent.Schema
}

func (TestSession) Fields() []ent.Field {
	return []ent.Field{
		field.Int("student_id"),
		field.String("level").
			NotEmpty(),
		field.Int("grade").
			Default(4),
		field.String("mode").
			Default("full_test").
			Comment("full_test, section_practice, quick_drill, or review"),
		field.Time("started_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Float("verbal_raw").Optional().Nillable(),
		field.Int("verbal_scaled").Optional().Nillable(),
		field.Int("verbal_percentile").Optional().Nillable(),
		field.Float("quantitative_raw").Optional().Nillable(),
		field.Int("quantitative_scaled").Optional().Nillable(),
		field.Int("quantitative_percentile").Optional().Nillable(),
		field.Float("reading_raw").Optional().Nillable(),
		field.Int("reading_scaled").Optional().Nillable(),
		field.Int("reading_percentile").Optional().Nillable(),
		field.Int("total_scaled").Optional().Nillable(),
	}
}

func (TestSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "mode"),
		index.Fields("started_at"),
	}
}
