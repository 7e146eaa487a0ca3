// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shailiguru/ssat-practice/ent/topicmastery"
)

// TopicMastery is the model entity for the TopicMastery schema.
type TopicMastery struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID int `json:"student_id,omitempty"`
	// TopicTag holds the value of the "topic_tag" field.
	TopicTag string `json:"topic_tag,omitempty"`
	// Continuous difficulty in [1.0, 5.0]
	DifficultyLevel float64 `json:"difficulty_level,omitempty"`
	// TotalAttempted holds the value of the "total_attempted" field.
	TotalAttempted int `json:"total_attempted,omitempty"`
	// TotalCorrect holds the value of the "total_correct" field.
	TotalCorrect int `json:"total_correct,omitempty"`
	// Last50Attempted holds the value of the "last_50_attempted" field.
	Last50Attempted int `json:"last_50_attempted,omitempty"`
	// Last50Correct holds the value of the "last_50_correct" field.
	Last50Correct int `json:"last_50_correct,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicMastery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicmastery.FieldDifficultyLevel:
			values[i] = new(sql.NullFloat64)
		case topicmastery.FieldID, topicmastery.FieldStudentID, topicmastery.FieldTotalAttempted, topicmastery.FieldTotalCorrect, topicmastery.FieldLast50Attempted, topicmastery.FieldLast50Correct:
			values[i] = new(sql.NullInt64)
		case topicmastery.FieldTopicTag:
			values[i] = new(sql.NullString)
		case topicmastery.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicMastery fields.
func (_m *TopicMastery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicmastery.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topicmastery.FieldStudentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = int(value.Int64)
			}
		case topicmastery.FieldTopicTag:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_tag", values[i])
			} else if value.Valid {
				_m.TopicTag = value.String
			}
		case topicmastery.FieldDifficultyLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_level", values[i])
			} else if value.Valid {
				_m.DifficultyLevel = value.Float64
			}
		case topicmastery.FieldTotalAttempted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_attempted", values[i])
			} else if value.Valid {
				_m.TotalAttempted = int(value.Int64)
			}
		case topicmastery.FieldTotalCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_correct", values[i])
			} else if value.Valid {
				_m.TotalCorrect = int(value.Int64)
			}
		case topicmastery.FieldLast50Attempted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_50_attempted", values[i])
			} else if value.Valid {
				_m.Last50Attempted = int(value.Int64)
			}
		case topicmastery.FieldLast50Correct:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_50_correct", values[i])
			} else if value.Valid {
				_m.Last50Correct = int(value.Int64)
			}
		case topicmastery.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicMastery.
// This includes values selected through modifiers, order, etc.
func (_m *TopicMastery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TopicMastery.
// Note that you need to call TopicMastery.Unwrap() before calling this method if this TopicMastery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicMastery) Update() *TopicMasteryUpdateOne {
	return NewTopicMasteryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicMastery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicMastery) Unwrap() *TopicMastery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicMastery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicMastery) String() string {
	var builder strings.Builder
	builder.WriteString("TopicMastery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("topic_tag=")
	builder.WriteString(_m.TopicTag)
	builder.WriteString(", ")
	builder.WriteString("difficulty_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.DifficultyLevel))
	builder.WriteString(", ")
	builder.WriteString("total_attempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAttempted))
	builder.WriteString(", ")
	builder.WriteString("total_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCorrect))
	builder.WriteString(", ")
	builder.WriteString("last_50_attempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Last50Attempted))
	builder.WriteString(", ")
	builder.WriteString("last_50_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Last50Correct))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicMasteries is a parsable slice of TopicMastery.
type TopicMasteries []*TopicMastery
