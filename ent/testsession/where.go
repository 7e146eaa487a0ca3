// Code generated by ent, DO NOT EDIT.

package testsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shailiguru/ssat-practice/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldStudentID, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldLevel, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldGrade, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldMode, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCompletedAt, v))
}

// VerbalRaw applies equality check predicate on the "verbal_raw" field. It's identical to VerbalRawEQ.
func VerbalRaw(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldVerbalRaw, v))
}

// VerbalScaled applies equality check predicate on the "verbal_scaled" field. It's identical to VerbalScaledEQ.
func VerbalScaled(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldVerbalScaled, v))
}

// VerbalPercentile applies equality check predicate on the "verbal_percentile" field. It's identical to VerbalPercentileEQ.
func VerbalPercentile(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldVerbalPercentile, v))
}

// QuantitativeRaw applies equality check predicate on the "quantitative_raw" field. It's identical to QuantitativeRawEQ.
func QuantitativeRaw(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldQuantitativeRaw, v))
}

// QuantitativeScaled applies equality check predicate on the "quantitative_scaled" field. It's identical to QuantitativeScaledEQ.
func QuantitativeScaled(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldQuantitativeScaled, v))
}

// QuantitativePercentile applies equality check predicate on the "quantitative_percentile" field. It's identical to QuantitativePercentileEQ.
func QuantitativePercentile(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldQuantitativePercentile, v))
}

// ReadingRaw applies equality check predicate on the "reading_raw" field. It's identical to ReadingRawEQ.
func ReadingRaw(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldReadingRaw, v))
}

// ReadingScaled applies equality check predicate on the "reading_scaled" field. It's identical to ReadingScaledEQ.
func ReadingScaled(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldReadingScaled, v))
}

// ReadingPercentile applies equality check predicate on the "reading_percentile" field. It's identical to ReadingPercentileEQ.
func ReadingPercentile(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldReadingPercentile, v))
}

// TotalScaled applies equality check predicate on the "total_scaled" field. It's identical to TotalScaledEQ.
func TotalScaled(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldTotalScaled, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldStudentID, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContainsFold(FieldLevel, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldGrade, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.TestSession {
	return predicate.TestSession(sql.FieldContainsFold(FieldMode, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldCompletedAt))
}

// VerbalRawEQ applies the EQ predicate on the "verbal_raw" field.
func VerbalRawEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldVerbalRaw, v))
}

// VerbalRawNEQ applies the NEQ predicate on the "verbal_raw" field.
func VerbalRawNEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldVerbalRaw, v))
}

// VerbalRawIn applies the In predicate on the "verbal_raw" field.
func VerbalRawIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldVerbalRaw, vs...))
}

// VerbalRawNotIn applies the NotIn predicate on the "verbal_raw" field.
func VerbalRawNotIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldVerbalRaw, vs...))
}

// VerbalRawGT applies the GT predicate on the "verbal_raw" field.
func VerbalRawGT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldVerbalRaw, v))
}

// VerbalRawGTE applies the GTE predicate on the "verbal_raw" field.
func VerbalRawGTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldVerbalRaw, v))
}

// VerbalRawLT applies the LT predicate on the "verbal_raw" field.
func VerbalRawLT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldVerbalRaw, v))
}

// VerbalRawLTE applies the LTE predicate on the "verbal_raw" field.
func VerbalRawLTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldVerbalRaw, v))
}

// VerbalRawIsNil applies the IsNil predicate on the "verbal_raw" field.
func VerbalRawIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldVerbalRaw))
}

// VerbalRawNotNil applies the NotNil predicate on the "verbal_raw" field.
func VerbalRawNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldVerbalRaw))
}

// VerbalScaledEQ applies the EQ predicate on the "verbal_scaled" field.
func VerbalScaledEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldVerbalScaled, v))
}

// VerbalScaledNEQ applies the NEQ predicate on the "verbal_scaled" field.
func VerbalScaledNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldVerbalScaled, v))
}

// VerbalScaledIn applies the In predicate on the "verbal_scaled" field.
func VerbalScaledIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldVerbalScaled, vs...))
}

// VerbalScaledNotIn applies the NotIn predicate on the "verbal_scaled" field.
func VerbalScaledNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldVerbalScaled, vs...))
}

// VerbalScaledGT applies the GT predicate on the "verbal_scaled" field.
func VerbalScaledGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldVerbalScaled, v))
}

// VerbalScaledGTE applies the GTE predicate on the "verbal_scaled" field.
func VerbalScaledGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldVerbalScaled, v))
}

// VerbalScaledLT applies the LT predicate on the "verbal_scaled" field.
func VerbalScaledLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldVerbalScaled, v))
}

// VerbalScaledLTE applies the LTE predicate on the "verbal_scaled" field.
func VerbalScaledLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldVerbalScaled, v))
}

// VerbalScaledIsNil applies the IsNil predicate on the "verbal_scaled" field.
func VerbalScaledIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldVerbalScaled))
}

// VerbalScaledNotNil applies the NotNil predicate on the "verbal_scaled" field.
func VerbalScaledNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldVerbalScaled))
}

// VerbalPercentileEQ applies the EQ predicate on the "verbal_percentile" field.
func VerbalPercentileEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldVerbalPercentile, v))
}

// VerbalPercentileNEQ applies the NEQ predicate on the "verbal_percentile" field.
func VerbalPercentileNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldVerbalPercentile, v))
}

// VerbalPercentileIn applies the In predicate on the "verbal_percentile" field.
func VerbalPercentileIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldVerbalPercentile, vs...))
}

// VerbalPercentileNotIn applies the NotIn predicate on the "verbal_percentile" field.
func VerbalPercentileNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldVerbalPercentile, vs...))
}

// VerbalPercentileGT applies the GT predicate on the "verbal_percentile" field.
func VerbalPercentileGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldVerbalPercentile, v))
}

// VerbalPercentileGTE applies the GTE predicate on the "verbal_percentile" field.
func VerbalPercentileGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldVerbalPercentile, v))
}

// VerbalPercentileLT applies the LT predicate on the "verbal_percentile" field.
func VerbalPercentileLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldVerbalPercentile, v))
}

// VerbalPercentileLTE applies the LTE predicate on the "verbal_percentile" field.
func VerbalPercentileLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldVerbalPercentile, v))
}

// VerbalPercentileIsNil applies the IsNil predicate on the "verbal_percentile" field.
func VerbalPercentileIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldVerbalPercentile))
}

// VerbalPercentileNotNil applies the NotNil predicate on the "verbal_percentile" field.
func VerbalPercentileNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldVerbalPercentile))
}

// QuantitativeRawEQ applies the EQ predicate on the "quantitative_raw" field.
func QuantitativeRawEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldQuantitativeRaw, v))
}

// QuantitativeRawNEQ applies the NEQ predicate on the "quantitative_raw" field.
func QuantitativeRawNEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldQuantitativeRaw, v))
}

// QuantitativeRawIn applies the In predicate on the "quantitative_raw" field.
func QuantitativeRawIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldQuantitativeRaw, vs...))
}

// QuantitativeRawNotIn applies the NotIn predicate on the "quantitative_raw" field.
func QuantitativeRawNotIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldQuantitativeRaw, vs...))
}

// QuantitativeRawGT applies the GT predicate on the "quantitative_raw" field.
func QuantitativeRawGT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldQuantitativeRaw, v))
}

// QuantitativeRawGTE applies the GTE predicate on the "quantitative_raw" field.
func QuantitativeRawGTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldQuantitativeRaw, v))
}

// QuantitativeRawLT applies the LT predicate on the "quantitative_raw" field.
func QuantitativeRawLT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldQuantitativeRaw, v))
}

// QuantitativeRawLTE applies the LTE predicate on the "quantitative_raw" field.
func QuantitativeRawLTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldQuantitativeRaw, v))
}

// QuantitativeRawIsNil applies the IsNil predicate on the "quantitative_raw" field.
func QuantitativeRawIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldQuantitativeRaw))
}

// QuantitativeRawNotNil applies the NotNil predicate on the "quantitative_raw" field.
func QuantitativeRawNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldQuantitativeRaw))
}

// QuantitativeScaledEQ applies the EQ predicate on the "quantitative_scaled" field.
func QuantitativeScaledEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldQuantitativeScaled, v))
}

// QuantitativeScaledNEQ applies the NEQ predicate on the "quantitative_scaled" field.
func QuantitativeScaledNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldQuantitativeScaled, v))
}

// QuantitativeScaledIn applies the In predicate on the "quantitative_scaled" field.
func QuantitativeScaledIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldQuantitativeScaled, vs...))
}

// QuantitativeScaledNotIn applies the NotIn predicate on the "quantitative_scaled" field.
func QuantitativeScaledNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldQuantitativeScaled, vs...))
}

// QuantitativeScaledGT applies the GT predicate on the "quantitative_scaled" field.
func QuantitativeScaledGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldQuantitativeScaled, v))
}

// QuantitativeScaledGTE applies the GTE predicate on the "quantitative_scaled" field.
func QuantitativeScaledGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldQuantitativeScaled, v))
}

// QuantitativeScaledLT applies the LT predicate on the "quantitative_scaled" field.
func QuantitativeScaledLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldQuantitativeScaled, v))
}

// QuantitativeScaledLTE applies the LTE predicate on the "quantitative_scaled" field.
func QuantitativeScaledLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldQuantitativeScaled, v))
}

// QuantitativeScaledIsNil applies the IsNil predicate on the "quantitative_scaled" field.
func QuantitativeScaledIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldQuantitativeScaled))
}

// QuantitativeScaledNotNil applies the NotNil predicate on the "quantitative_scaled" field.
func QuantitativeScaledNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldQuantitativeScaled))
}

// QuantitativePercentileEQ applies the EQ predicate on the "quantitative_percentile" field.
func QuantitativePercentileEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldQuantitativePercentile, v))
}

// QuantitativePercentileNEQ applies the NEQ predicate on the "quantitative_percentile" field.
func QuantitativePercentileNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldQuantitativePercentile, v))
}

// QuantitativePercentileIn applies the In predicate on the "quantitative_percentile" field.
func QuantitativePercentileIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldQuantitativePercentile, vs...))
}

// QuantitativePercentileNotIn applies the NotIn predicate on the "quantitative_percentile" field.
func QuantitativePercentileNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldQuantitativePercentile, vs...))
}

// QuantitativePercentileGT applies the GT predicate on the "quantitative_percentile" field.
func QuantitativePercentileGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldQuantitativePercentile, v))
}

// QuantitativePercentileGTE applies the GTE predicate on the "quantitative_percentile" field.
func QuantitativePercentileGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldQuantitativePercentile, v))
}

// QuantitativePercentileLT applies the LT predicate on the "quantitative_percentile" field.
func QuantitativePercentileLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldQuantitativePercentile, v))
}

// QuantitativePercentileLTE applies the LTE predicate on the "quantitative_percentile" field.
func QuantitativePercentileLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldQuantitativePercentile, v))
}

// QuantitativePercentileIsNil applies the IsNil predicate on the "quantitative_percentile" field.
func QuantitativePercentileIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldQuantitativePercentile))
}

// QuantitativePercentileNotNil applies the NotNil predicate on the "quantitative_percentile" field.
func QuantitativePercentileNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldQuantitativePercentile))
}

// ReadingRawEQ applies the EQ predicate on the "reading_raw" field.
func ReadingRawEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldReadingRaw, v))
}

// ReadingRawNEQ applies the NEQ predicate on the "reading_raw" field.
func ReadingRawNEQ(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldReadingRaw, v))
}

// ReadingRawIn applies the In predicate on the "reading_raw" field.
func ReadingRawIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldReadingRaw, vs...))
}

// ReadingRawNotIn applies the NotIn predicate on the "reading_raw" field.
func ReadingRawNotIn(vs ...float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldReadingRaw, vs...))
}

// ReadingRawGT applies the GT predicate on the "reading_raw" field.
func ReadingRawGT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldReadingRaw, v))
}

// ReadingRawGTE applies the GTE predicate on the "reading_raw" field.
func ReadingRawGTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldReadingRaw, v))
}

// ReadingRawLT applies the LT predicate on the "reading_raw" field.
func ReadingRawLT(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldReadingRaw, v))
}

// ReadingRawLTE applies the LTE predicate on the "reading_raw" field.
func ReadingRawLTE(v float64) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldReadingRaw, v))
}

// ReadingRawIsNil applies the IsNil predicate on the "reading_raw" field.
func ReadingRawIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldReadingRaw))
}

// ReadingRawNotNil applies the NotNil predicate on the "reading_raw" field.
func ReadingRawNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldReadingRaw))
}

// ReadingScaledEQ applies the EQ predicate on the "reading_scaled" field.
func ReadingScaledEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldReadingScaled, v))
}

// ReadingScaledNEQ applies the NEQ predicate on the "reading_scaled" field.
func ReadingScaledNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldReadingScaled, v))
}

// ReadingScaledIn applies the In predicate on the "reading_scaled" field.
func ReadingScaledIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldReadingScaled, vs...))
}

// ReadingScaledNotIn applies the NotIn predicate on the "reading_scaled" field.
func ReadingScaledNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldReadingScaled, vs...))
}

// ReadingScaledGT applies the GT predicate on the "reading_scaled" field.
func ReadingScaledGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldReadingScaled, v))
}

// ReadingScaledGTE applies the GTE predicate on the "reading_scaled" field.
func ReadingScaledGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldReadingScaled, v))
}

// ReadingScaledLT applies the LT predicate on the "reading_scaled" field.
func ReadingScaledLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldReadingScaled, v))
}

// ReadingScaledLTE applies the LTE predicate on the "reading_scaled" field.
func ReadingScaledLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldReadingScaled, v))
}

// ReadingScaledIsNil applies the IsNil predicate on the "reading_scaled" field.
func ReadingScaledIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldReadingScaled))
}

// ReadingScaledNotNil applies the NotNil predicate on the "reading_scaled" field.
func ReadingScaledNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldReadingScaled))
}

// ReadingPercentileEQ applies the EQ predicate on the "reading_percentile" field.
func ReadingPercentileEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldReadingPercentile, v))
}

// ReadingPercentileNEQ applies the NEQ predicate on the "reading_percentile" field.
func ReadingPercentileNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldReadingPercentile, v))
}

// ReadingPercentileIn applies the In predicate on the "reading_percentile" field.
func ReadingPercentileIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldReadingPercentile, vs...))
}

// ReadingPercentileNotIn applies the NotIn predicate on the "reading_percentile" field.
func ReadingPercentileNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldReadingPercentile, vs...))
}

// ReadingPercentileGT applies the GT predicate on the "reading_percentile" field.
func ReadingPercentileGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldReadingPercentile, v))
}

// ReadingPercentileGTE applies the GTE predicate on the "reading_percentile" field.
func ReadingPercentileGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldReadingPercentile, v))
}

// ReadingPercentileLT applies the LT predicate on the "reading_percentile" field.
func ReadingPercentileLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldReadingPercentile, v))
}

// ReadingPercentileLTE applies the LTE predicate on the "reading_percentile" field.
func ReadingPercentileLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldReadingPercentile, v))
}

// ReadingPercentileIsNil applies the IsNil predicate on the "reading_percentile" field.
func ReadingPercentileIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldReadingPercentile))
}

// ReadingPercentileNotNil applies the NotNil predicate on the "reading_percentile" field.
func ReadingPercentileNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldReadingPercentile))
}

// TotalScaledEQ applies the EQ predicate on the "total_scaled" field.
func TotalScaledEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldEQ(FieldTotalScaled, v))
}

// TotalScaledNEQ applies the NEQ predicate on the "total_scaled" field.
func TotalScaledNEQ(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNEQ(FieldTotalScaled, v))
}

// TotalScaledIn applies the In predicate on the "total_scaled" field.
func TotalScaledIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldIn(FieldTotalScaled, vs...))
}

// TotalScaledNotIn applies the NotIn predicate on the "total_scaled" field.
func TotalScaledNotIn(vs ...int) predicate.TestSession {
	return predicate.TestSession(sql.FieldNotIn(FieldTotalScaled, vs...))
}

// TotalScaledGT applies the GT predicate on the "total_scaled" field.
func TotalScaledGT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGT(FieldTotalScaled, v))
}

// TotalScaledGTE applies the GTE predicate on the "total_scaled" field.
func TotalScaledGTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldGTE(FieldTotalScaled, v))
}

// TotalScaledLT applies the LT predicate on the "total_scaled" field.
func TotalScaledLT(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLT(FieldTotalScaled, v))
}

// TotalScaledLTE applies the LTE predicate on the "total_scaled" field.
func TotalScaledLTE(v int) predicate.TestSession {
	return predicate.TestSession(sql.FieldLTE(FieldTotalScaled, v))
}

// TotalScaledIsNil applies the IsNil predicate on the "total_scaled" field.
func TotalScaledIsNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldIsNull(FieldTotalScaled))
}

// TotalScaledNotNil applies the NotNil predicate on the "total_scaled" field.
func TotalScaledNotNil() predicate.TestSession {
	return predicate.TestSession(sql.FieldNotNull(FieldTotalScaled))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestSession) predicate.TestSession {
	return predicate.TestSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestSession) predicate.TestSession {
	return predicate.TestSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestSession) predicate.TestSession {
	return predicate.TestSession(sql.NotPredicates(p))
}
