// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shailiguru/ssat-practice/ent/testsession"
)

// TestSession is the model entity for the TestSession schema.
type TestSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID int `json:"student_id,omitempty"`
	// Level holds the value of the "level" field.
	Level string `json:"level,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade int `json:"grade,omitempty"`
	// full_test, section_practice, quick_drill, or review
	Mode string `json:"mode,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// VerbalRaw holds the value of the "verbal_raw" field.
	VerbalRaw *float64 `json:"verbal_raw,omitempty"`
	// VerbalScaled holds the value of the "verbal_scaled" field.
	VerbalScaled *int `json:"verbal_scaled,omitempty"`
	// VerbalPercentile holds the value of the "verbal_percentile" field.
	VerbalPercentile *int `json:"verbal_percentile,omitempty"`
	// QuantitativeRaw holds the value of the "quantitative_raw" field.
	QuantitativeRaw *float64 `json:"quantitative_raw,omitempty"`
	// QuantitativeScaled holds the value of the "quantitative_scaled" field.
	QuantitativeScaled *int `json:"quantitative_scaled,omitempty"`
	// QuantitativePercentile holds the value of the "quantitative_percentile" field.
	QuantitativePercentile *int `json:"quantitative_percentile,omitempty"`
	// ReadingRaw holds the value of the "reading_raw" field.
	ReadingRaw *float64 `json:"reading_raw,omitempty"`
	// ReadingScaled holds the value of the "reading_scaled" field.
	ReadingScaled *int `json:"reading_scaled,omitempty"`
	// ReadingPercentile holds the value of the "reading_percentile" field.
	ReadingPercentile *int `json:"reading_percentile,omitempty"`
	// TotalScaled holds the value of the "total_scaled" field.
	TotalScaled  *int `json:"total_scaled,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testsession.FieldVerbalRaw, testsession.FieldQuantitativeRaw, testsession.FieldReadingRaw:
			values[i] = new(sql.NullFloat64)
		case testsession.FieldID, testsession.FieldStudentID, testsession.FieldGrade, testsession.FieldVerbalScaled, testsession.FieldVerbalPercentile, testsession.FieldQuantitativeScaled, testsession.FieldQuantitativePercentile, testsession.FieldReadingScaled, testsession.FieldReadingPercentile, testsession.FieldTotalScaled:
			values[i] = new(sql.NullInt64)
		case testsession.FieldLevel, testsession.FieldMode:
			values[i] = new(sql.NullString)
		case testsession.FieldStartedAt, testsession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestSession fields.
func (_m *TestSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case testsession.FieldStudentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = int(value.Int64)
			}
		case testsession.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case testsession.FieldGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = int(value.Int64)
			}
		case testsession.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = value.String
			}
		case testsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case testsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case testsession.FieldVerbalRaw:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field verbal_raw", values[i])
			} else if value.Valid {
				_m.VerbalRaw = new(float64)
				*_m.VerbalRaw = value.Float64
			}
		case testsession.FieldVerbalScaled:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field verbal_scaled", values[i])
			} else if value.Valid {
				_m.VerbalScaled = new(int)
				*_m.VerbalScaled = int(value.Int64)
			}
		case testsession.FieldVerbalPercentile:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field verbal_percentile", values[i])
			} else if value.Valid {
				_m.VerbalPercentile = new(int)
				*_m.VerbalPercentile = int(value.Int64)
			}
		case testsession.FieldQuantitativeRaw:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantitative_raw", values[i])
			} else if value.Valid {
				_m.QuantitativeRaw = new(float64)
				*_m.QuantitativeRaw = value.Float64
			}
		case testsession.FieldQuantitativeScaled:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantitative_scaled", values[i])
			} else if value.Valid {
				_m.QuantitativeScaled = new(int)
				*_m.QuantitativeScaled = int(value.Int64)
			}
		case testsession.FieldQuantitativePercentile:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantitative_percentile", values[i])
			} else if value.Valid {
				_m.QuantitativePercentile = new(int)
				*_m.QuantitativePercentile = int(value.Int64)
			}
		case testsession.FieldReadingRaw:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field reading_raw", values[i])
			} else if value.Valid {
				_m.ReadingRaw = new(float64)
				*_m.ReadingRaw = value.Float64
			}
		case testsession.FieldReadingScaled:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reading_scaled", values[i])
			} else if value.Valid {
				_m.ReadingScaled = new(int)
				*_m.ReadingScaled = int(value.Int64)
			}
		case testsession.FieldReadingPercentile:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reading_percentile", values[i])
			} else if value.Valid {
				_m.ReadingPercentile = new(int)
				*_m.ReadingPercentile = int(value.Int64)
			}
		case testsession.FieldTotalScaled:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_scaled", values[i])
			} else if value.Valid {
				_m.TotalScaled = new(int)
				*_m.TotalScaled = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestSession.
// This includes values selected through modifiers, order, etc.
func (_m *TestSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TestSession.
// Note that you need to call TestSession.Unwrap() before calling this method if this TestSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestSession) Update() *TestSessionUpdateOne {
	return NewTestSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestSession) Unwrap() *TestSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestSession) String() string {
	var builder strings.Builder
	builder.WriteString("TestSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudentID))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grade))
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(_m.Mode)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.VerbalRaw; v != nil {
		builder.WriteString("verbal_raw=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VerbalScaled; v != nil {
		builder.WriteString("verbal_scaled=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VerbalPercentile; v != nil {
		builder.WriteString("verbal_percentile=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.QuantitativeRaw; v != nil {
		builder.WriteString("quantitative_raw=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.QuantitativeScaled; v != nil {
		builder.WriteString("quantitative_scaled=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.QuantitativePercentile; v != nil {
		builder.WriteString("quantitative_percentile=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReadingRaw; v != nil {
		builder.WriteString("reading_raw=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReadingScaled; v != nil {
		builder.WriteString("reading_scaled=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ReadingPercentile; v != nil {
		builder.WriteString("reading_percentile=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalScaled; v != nil {
		builder.WriteString("total_scaled=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TestSessions is a parsable slice of TestSession.
type TestSessions []*TestSession
