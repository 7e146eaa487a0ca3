// Code generated by ent, DO NOT EDIT.

package answer

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shailiguru/ssat-practice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldStudentID, v))
}

// SelectedAnswer applies equality check predicate on the "selected_answer" field. It's identical to SelectedAnswerEQ.
func SelectedAnswer(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSelectedAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldIsCorrect, v))
}

// TimeSpentSeconds applies equality check predicate on the "time_spent_seconds" field. It's identical to TimeSpentSecondsEQ.
func TimeSpentSeconds(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAnsweredAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldQuestionID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldStudentID, v))
}

// SelectedAnswerEQ applies the EQ predicate on the "selected_answer" field.
func SelectedAnswerEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldSelectedAnswer, v))
}

// SelectedAnswerNEQ applies the NEQ predicate on the "selected_answer" field.
func SelectedAnswerNEQ(v string) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldSelectedAnswer, v))
}

// SelectedAnswerIn applies the In predicate on the "selected_answer" field.
func SelectedAnswerIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldSelectedAnswer, vs...))
}

// SelectedAnswerNotIn applies the NotIn predicate on the "selected_answer" field.
func SelectedAnswerNotIn(vs ...string) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldSelectedAnswer, vs...))
}

// SelectedAnswerGT applies the GT predicate on the "selected_answer" field.
func SelectedAnswerGT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldSelectedAnswer, v))
}

// SelectedAnswerGTE applies the GTE predicate on the "selected_answer" field.
func SelectedAnswerGTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldSelectedAnswer, v))
}

// SelectedAnswerLT applies the LT predicate on the "selected_answer" field.
func SelectedAnswerLT(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldSelectedAnswer, v))
}

// SelectedAnswerLTE applies the LTE predicate on the "selected_answer" field.
func SelectedAnswerLTE(v string) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldSelectedAnswer, v))
}

// SelectedAnswerContains applies the Contains predicate on the "selected_answer" field.
func SelectedAnswerContains(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContains(FieldSelectedAnswer, v))
}

// SelectedAnswerHasPrefix applies the HasPrefix predicate on the "selected_answer" field.
func SelectedAnswerHasPrefix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasPrefix(FieldSelectedAnswer, v))
}

// SelectedAnswerHasSuffix applies the HasSuffix predicate on the "selected_answer" field.
func SelectedAnswerHasSuffix(v string) predicate.Answer {
	return predicate.Answer(sql.FieldHasSuffix(FieldSelectedAnswer, v))
}

// SelectedAnswerIsNil applies the IsNil predicate on the "selected_answer" field.
func SelectedAnswerIsNil() predicate.Answer {
	return predicate.Answer(sql.FieldIsNull(FieldSelectedAnswer))
}

// SelectedAnswerNotNil applies the NotNil predicate on the "selected_answer" field.
func SelectedAnswerNotNil() predicate.Answer {
	return predicate.Answer(sql.FieldNotNull(FieldSelectedAnswer))
}

// SelectedAnswerEqualFold applies the EqualFold predicate on the "selected_answer" field.
func SelectedAnswerEqualFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldEqualFold(FieldSelectedAnswer, v))
}

// SelectedAnswerContainsFold applies the ContainsFold predicate on the "selected_answer" field.
func SelectedAnswerContainsFold(v string) predicate.Answer {
	return predicate.Answer(sql.FieldContainsFold(FieldSelectedAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldIsCorrect, v))
}

// TimeSpentSecondsEQ applies the EQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsNEQ applies the NEQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNEQ(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsIn applies the In predicate on the "time_spent_seconds" field.
func TimeSpentSecondsIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsNotIn applies the NotIn predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNotIn(vs ...float64) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsGT applies the GT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsGTE applies the GTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLT applies the LT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLT(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLTE applies the LTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLTE(v float64) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldTimeSpentSeconds, v))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.Answer {
	return predicate.Answer(sql.FieldLTE(FieldAnsweredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Answer) predicate.Answer {
	return predicate.Answer(sql.NotPredicates(p))
}
