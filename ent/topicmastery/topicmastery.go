// Code generated by ent, DO NOT EDIT.

package topicmastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicmastery type in the database.
	Label = "topic_mastery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldTopicTag holds the string denoting the topic_tag field in the database.
	FieldTopicTag = "topic_tag"
	// FieldDifficultyLevel holds the string denoting the difficulty_level field in the database.
	FieldDifficultyLevel = "difficulty_level"
	// FieldTotalAttempted holds the string denoting the total_attempted field in the database.
	FieldTotalAttempted = "total_attempted"
	// FieldTotalCorrect holds the string denoting the total_correct field in the database.
	FieldTotalCorrect = "total_correct"
	// FieldLast50Attempted holds the string denoting the last_50_attempted field in the database.
	FieldLast50Attempted = "last_50_attempted"
	// FieldLast50Correct holds the string denoting the last_50_correct field in the database.
	FieldLast50Correct = "last_50_correct"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the topicmastery in the database.
	Table = "topic_masteries"
)

// Columns holds all SQL columns for topicmastery fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldTopicTag,
	FieldDifficultyLevel,
	FieldTotalAttempted,
	FieldTotalCorrect,
	FieldLast50Attempted,
	FieldLast50Correct,
	FieldUpdatedAt,
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
	// TopicTagValidator is a validator for the "topic_tag" field. It is called by the builders before save.
	TopicTagValidator func(string) error
	// DefaultDifficultyLevel holds the default value on creation for the "difficulty_level" field.
	DefaultDifficultyLevel float64
	// DefaultTotalAttempted holds the default value on creation for the "total_attempted" field.
	DefaultTotalAttempted int
	// DefaultTotalCorrect holds the default value on creation for the "total_correct" field.
	DefaultTotalCorrect int
	// DefaultLast50Attempted holds the default value on creation for the "last_50_attempted" field.
	DefaultLast50Attempted int
	// DefaultLast50Correct holds the default value on creation for the "last_50_correct" field.
	DefaultLast50Correct int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TopicMastery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByTopicTag orders the results by the topic_tag field.
func ByTopicTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicTag, opts...).ToFunc()
}

// ByDifficultyLevel orders the results by the difficulty_level field.
func ByDifficultyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyLevel, opts...).ToFunc()
}

// ByTotalAttempted orders the results by the total_attempted field.
func ByTotalAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAttempted, opts...).ToFunc()
}

// ByTotalCorrect orders the results by the total_correct field.
func ByTotalCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCorrect, opts...).ToFunc()
}

// ByLast50Attempted orders the results by the last_50_attempted field.
func ByLast50Attempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLast50Attempted, opts...).ToFunc()
}

// ByLast50Correct orders the results by the last_50_correct field.
func ByLast50Correct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLast50Correct, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
