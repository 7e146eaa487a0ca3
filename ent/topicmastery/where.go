// Code generated by ent, DO NOT EDIT.

package topicmastery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shailiguru/ssat-practice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldStudentID, v))
}

// TopicTag applies equality check predicate on the "topic_tag" field. It's identical to TopicTagEQ.
func TopicTag(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTopicTag, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldDifficultyLevel, v))
}

// TotalAttempted applies equality check predicate on the "total_attempted" field. It's identical to TotalAttemptedEQ.
func TotalAttempted(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTotalAttempted, v))
}

// TotalCorrect applies equality check predicate on the "total_correct" field. It's identical to TotalCorrectEQ.
func TotalCorrect(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTotalCorrect, v))
}

// Last50Attempted applies equality check predicate on the "last_50_attempted" field. It's identical to Last50AttemptedEQ.
func Last50Attempted(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldLast50Attempted, v))
}

// Last50Correct applies equality check predicate on the "last_50_correct" field. It's identical to Last50CorrectEQ.
func Last50Correct(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldLast50Correct, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldStudentID, v))
}

// TopicTagEQ applies the EQ predicate on the "topic_tag" field.
func TopicTagEQ(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTopicTag, v))
}

// TopicTagNEQ applies the NEQ predicate on the "topic_tag" field.
func TopicTagNEQ(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldTopicTag, v))
}

// TopicTagIn applies the In predicate on the "topic_tag" field.
func TopicTagIn(vs ...string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldTopicTag, vs...))
}

// TopicTagNotIn applies the NotIn predicate on the "topic_tag" field.
func TopicTagNotIn(vs ...string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldTopicTag, vs...))
}

// TopicTagGT applies the GT predicate on the "topic_tag" field.
func TopicTagGT(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldTopicTag, v))
}

// TopicTagGTE applies the GTE predicate on the "topic_tag" field.
func TopicTagGTE(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldTopicTag, v))
}

// TopicTagLT applies the LT predicate on the "topic_tag" field.
func TopicTagLT(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldTopicTag, v))
}

// TopicTagLTE applies the LTE predicate on the "topic_tag" field.
func TopicTagLTE(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldTopicTag, v))
}

// TopicTagContains applies the Contains predicate on the "topic_tag" field.
func TopicTagContains(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldContains(FieldTopicTag, v))
}

// TopicTagHasPrefix applies the HasPrefix predicate on the "topic_tag" field.
func TopicTagHasPrefix(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldHasPrefix(FieldTopicTag, v))
}

// TopicTagHasSuffix applies the HasSuffix predicate on the "topic_tag" field.
func TopicTagHasSuffix(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldHasSuffix(FieldTopicTag, v))
}

// TopicTagEqualFold applies the EqualFold predicate on the "topic_tag" field.
func TopicTagEqualFold(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEqualFold(FieldTopicTag, v))
}

// TopicTagContainsFold applies the ContainsFold predicate on the "topic_tag" field.
func TopicTagContainsFold(v string) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldContainsFold(FieldTopicTag, v))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v float64) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldDifficultyLevel, v))
}

// TotalAttemptedEQ applies the EQ predicate on the "total_attempted" field.
func TotalAttemptedEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTotalAttempted, v))
}

// TotalAttemptedNEQ applies the NEQ predicate on the "total_attempted" field.
func TotalAttemptedNEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldTotalAttempted, v))
}

// TotalAttemptedIn applies the In predicate on the "total_attempted" field.
func TotalAttemptedIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldTotalAttempted, vs...))
}

// TotalAttemptedNotIn applies the NotIn predicate on the "total_attempted" field.
func TotalAttemptedNotIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldTotalAttempted, vs...))
}

// TotalAttemptedGT applies the GT predicate on the "total_attempted" field.
func TotalAttemptedGT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldTotalAttempted, v))
}

// TotalAttemptedGTE applies the GTE predicate on the "total_attempted" field.
func TotalAttemptedGTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldTotalAttempted, v))
}

// TotalAttemptedLT applies the LT predicate on the "total_attempted" field.
func TotalAttemptedLT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldTotalAttempted, v))
}

// TotalAttemptedLTE applies the LTE predicate on the "total_attempted" field.
func TotalAttemptedLTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldTotalAttempted, v))
}

// TotalCorrectEQ applies the EQ predicate on the "total_correct" field.
func TotalCorrectEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldTotalCorrect, v))
}

// TotalCorrectNEQ applies the NEQ predicate on the "total_correct" field.
func TotalCorrectNEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldTotalCorrect, v))
}

// TotalCorrectIn applies the In predicate on the "total_correct" field.
func TotalCorrectIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldTotalCorrect, vs...))
}

// TotalCorrectNotIn applies the NotIn predicate on the "total_correct" field.
func TotalCorrectNotIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldTotalCorrect, vs...))
}

// TotalCorrectGT applies the GT predicate on the "total_correct" field.
func TotalCorrectGT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldTotalCorrect, v))
}

// TotalCorrectGTE applies the GTE predicate on the "total_correct" field.
func TotalCorrectGTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldTotalCorrect, v))
}

// TotalCorrectLT applies the LT predicate on the "total_correct" field.
func TotalCorrectLT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldTotalCorrect, v))
}

// TotalCorrectLTE applies the LTE predicate on the "total_correct" field.
func TotalCorrectLTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldTotalCorrect, v))
}

// Last50AttemptedEQ applies the EQ predicate on the "last_50_attempted" field.
func Last50AttemptedEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldLast50Attempted, v))
}

// Last50AttemptedNEQ applies the NEQ predicate on the "last_50_attempted" field.
func Last50AttemptedNEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldLast50Attempted, v))
}

// Last50AttemptedIn applies the In predicate on the "last_50_attempted" field.
func Last50AttemptedIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldLast50Attempted, vs...))
}

// Last50AttemptedNotIn applies the NotIn predicate on the "last_50_attempted" field.
func Last50AttemptedNotIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldLast50Attempted, vs...))
}

// Last50AttemptedGT applies the GT predicate on the "last_50_attempted" field.
func Last50AttemptedGT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldLast50Attempted, v))
}

// Last50AttemptedGTE applies the GTE predicate on the "last_50_attempted" field.
func Last50AttemptedGTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldLast50Attempted, v))
}

// Last50AttemptedLT applies the LT predicate on the "last_50_attempted" field.
func Last50AttemptedLT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldLast50Attempted, v))
}

// Last50AttemptedLTE applies the LTE predicate on the "last_50_attempted" field.
func Last50AttemptedLTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldLast50Attempted, v))
}

// Last50CorrectEQ applies the EQ predicate on the "last_50_correct" field.
func Last50CorrectEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldLast50Correct, v))
}

// Last50CorrectNEQ applies the NEQ predicate on the "last_50_correct" field.
func Last50CorrectNEQ(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldLast50Correct, v))
}

// Last50CorrectIn applies the In predicate on the "last_50_correct" field.
func Last50CorrectIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldLast50Correct, vs...))
}

// Last50CorrectNotIn applies the NotIn predicate on the "last_50_correct" field.
func Last50CorrectNotIn(vs ...int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldLast50Correct, vs...))
}

// Last50CorrectGT applies the GT predicate on the "last_50_correct" field.
func Last50CorrectGT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldLast50Correct, v))
}

// Last50CorrectGTE applies the GTE predicate on the "last_50_correct" field.
func Last50CorrectGTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldLast50Correct, v))
}

// Last50CorrectLT applies the LT predicate on the "last_50_correct" field.
func Last50CorrectLT(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldLast50Correct, v))
}

// Last50CorrectLTE applies the LTE predicate on the "last_50_correct" field.
func Last50CorrectLTE(v int) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldLast50Correct, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TopicMastery {
	return predicate.TopicMastery(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicMastery) predicate.TopicMastery {
	return predicate.TopicMastery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicMastery) predicate.TopicMastery {
	return predicate.TopicMastery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicMastery) predicate.TopicMastery {
	return predicate.TopicMastery(sql.NotPredicates(p))
}
