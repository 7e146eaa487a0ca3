// Code generated by ent, DO NOT EDIT.

package testsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the testsession type in the database.
	Label = "test_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldVerbalRaw holds the string denoting the verbal_raw field in the database.
	FieldVerbalRaw = "verbal_raw"
	// FieldVerbalScaled holds the string denoting the verbal_scaled field in the database.
	FieldVerbalScaled = "verbal_scaled"
	// FieldVerbalPercentile holds the string denoting the verbal_percentile field in the database.
	FieldVerbalPercentile = "verbal_percentile"
	// FieldQuantitativeRaw holds the string denoting the quantitative_raw field in the database.
	FieldQuantitativeRaw = "quantitative_raw"
	// FieldQuantitativeScaled holds the string denoting the quantitative_scaled field in the database.
	FieldQuantitativeScaled = "quantitative_scaled"
	// FieldQuantitativePercentile holds the string denoting the quantitative_percentile field in the database.
	FieldQuantitativePercentile = "quantitative_percentile"
	// FieldReadingRaw holds the string denoting the reading_raw field in the database.
	FieldReadingRaw = "reading_raw"
	// FieldReadingScaled holds the string denoting the reading_scaled field in the database.
	FieldReadingScaled = "reading_scaled"
	// FieldReadingPercentile holds the string denoting the reading_percentile field in the database.
	FieldReadingPercentile = "reading_percentile"
	// FieldTotalScaled holds the string denoting the total_scaled field in the database.
	FieldTotalScaled = "total_scaled"
	// Table holds the table name of the testsession in the database.
	Table = "test_sessions"
)

// Columns holds all SQL columns for testsession fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldLevel,
	FieldGrade,
	FieldMode,
	FieldStartedAt,
	FieldCompletedAt,
	FieldVerbalRaw,
	FieldVerbalScaled,
	FieldVerbalPercentile,
	FieldQuantitativeRaw,
	FieldQuantitativeScaled,
	FieldQuantitativePercentile,
	FieldReadingRaw,
	FieldReadingScaled,
	FieldReadingPercentile,
	FieldTotalScaled,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
	// DefaultGrade holds the default value on creation for the "grade" field.
	DefaultGrade int
	// DefaultMode holds the default value on creation for the "mode" field.
	DefaultMode string
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// OrderOption defines the ordering options for the TestSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByVerbalRaw orders the results by the verbal_raw field.
func ByVerbalRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerbalRaw, opts...).ToFunc()
}

// ByVerbalScaled orders the results by the verbal_scaled field.
func ByVerbalScaled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerbalScaled, opts...).ToFunc()
}

// ByVerbalPercentile orders the results by the verbal_percentile field.
func ByVerbalPercentile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerbalPercentile, opts...).ToFunc()
}

// ByQuantitativeRaw orders the results by the quantitative_raw field.
func ByQuantitativeRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantitativeRaw, opts...).ToFunc()
}

// ByQuantitativeScaled orders the results by the quantitative_scaled field.
func ByQuantitativeScaled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantitativeScaled, opts...).ToFunc()
}

// ByQuantitativePercentile orders the results by the quantitative_percentile field.
func ByQuantitativePercentile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantitativePercentile, opts...).ToFunc()
}

// ByReadingRaw orders the results by the reading_raw field.
func ByReadingRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingRaw, opts...).ToFunc()
}

// ByReadingScaled orders the results by the reading_scaled field.
func ByReadingScaled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingScaled, opts...).ToFunc()
}

// ByReadingPercentile orders the results by the reading_percentile field.
func ByReadingPercentile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingPercentile, opts...).ToFunc()
}

// ByTotalScaled orders the results by the total_scaled field.
func ByTotalScaled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalScaled, opts...).ToFunc()
}
