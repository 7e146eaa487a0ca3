package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Student is a learner profile. Grade and level move as the leveling
// engine promotes or demotes the student.
type Student struct {
	ent.Schema
}

func (Student) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Int("grade").
			Comment("Current grade: 3-4 elementary, 5-7 middle"),
		field.String("level").
			Default("elementary").
			Comment("elementary or middle"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
