// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shailiguru/ssat-practice/ent/predicate"
	"github.com/shailiguru/ssat-practice/ent/testsession"
)

// TestSessionUpdate is the builder for updating TestSession entities.
type TestSessionUpdate struct {
	config
	hooks    []Hook
	mutation *TestSessionMutation
}

// Where appends a list predicates to the TestSessionUpdate builder.
func (_u *TestSessionUpdate) Where(ps ...predicate.TestSession) *TestSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *TestSessionUpdate) SetStudentID(v int) *TestSessionUpdate {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableStudentID(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *TestSessionUpdate) AddStudentID(v int) *TestSessionUpdate {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *TestSessionUpdate) SetLevel(v string) *TestSessionUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableLevel(v *string) *TestSessionUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *TestSessionUpdate) SetGrade(v int) *TestSessionUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableGrade(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *TestSessionUpdate) AddGrade(v int) *TestSessionUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *TestSessionUpdate) SetMode(v string) *TestSessionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableMode(v *string) *TestSessionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TestSessionUpdate) SetStartedAt(v time.Time) *TestSessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableStartedAt(v *time.Time) *TestSessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TestSessionUpdate) SetCompletedAt(v time.Time) *TestSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableCompletedAt(v *time.Time) *TestSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TestSessionUpdate) ClearCompletedAt() *TestSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVerbalRaw sets the "verbal_raw" field.
func (_u *TestSessionUpdate) SetVerbalRaw(v float64) *TestSessionUpdate {
	_u.mutation.ResetVerbalRaw()
	_u.mutation.SetVerbalRaw(v)
	return _u
}

// SetNillableVerbalRaw sets the "verbal_raw" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableVerbalRaw(v *float64) *TestSessionUpdate {
	if v != nil {
		_u.SetVerbalRaw(*v)
	}
	return _u
}

// AddVerbalRaw adds value to the "verbal_raw" field.
func (_u *TestSessionUpdate) AddVerbalRaw(v float64) *TestSessionUpdate {
	_u.mutation.AddVerbalRaw(v)
	return _u
}

// ClearVerbalRaw clears the value of the "verbal_raw" field.
func (_u *TestSessionUpdate) ClearVerbalRaw() *TestSessionUpdate {
	_u.mutation.ClearVerbalRaw()
	return _u
}

// SetVerbalScaled sets the "verbal_scaled" field.
func (_u *TestSessionUpdate) SetVerbalScaled(v int) *TestSessionUpdate {
	_u.mutation.ResetVerbalScaled()
	_u.mutation.SetVerbalScaled(v)
	return _u
}

// SetNillableVerbalScaled sets the "verbal_scaled" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableVerbalScaled(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetVerbalScaled(*v)
	}
	return _u
}

// AddVerbalScaled adds value to the "verbal_scaled" field.
func (_u *TestSessionUpdate) AddVerbalScaled(v int) *TestSessionUpdate {
	_u.mutation.AddVerbalScaled(v)
	return _u
}

// ClearVerbalScaled clears the value of the "verbal_scaled" field.
func (_u *TestSessionUpdate) ClearVerbalScaled() *TestSessionUpdate {
	_u.mutation.ClearVerbalScaled()
	return _u
}

// SetVerbalPercentile sets the "verbal_percentile" field.
func (_u *TestSessionUpdate) SetVerbalPercentile(v int) *TestSessionUpdate {
	_u.mutation.ResetVerbalPercentile()
	_u.mutation.SetVerbalPercentile(v)
	return _u
}

// SetNillableVerbalPercentile sets the "verbal_percentile" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableVerbalPercentile(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetVerbalPercentile(*v)
	}
	return _u
}

// AddVerbalPercentile adds value to the "verbal_percentile" field.
func (_u *TestSessionUpdate) AddVerbalPercentile(v int) *TestSessionUpdate {
	_u.mutation.AddVerbalPercentile(v)
	return _u
}

// ClearVerbalPercentile clears the value of the "verbal_percentile" field.
func (_u *TestSessionUpdate) ClearVerbalPercentile() *TestSessionUpdate {
	_u.mutation.ClearVerbalPercentile()
	return _u
}

// SetQuantitativeRaw sets the "quantitative_raw" field.
func (_u *TestSessionUpdate) SetQuantitativeRaw(v float64) *TestSessionUpdate {
	_u.mutation.ResetQuantitativeRaw()
	_u.mutation.SetQuantitativeRaw(v)
	return _u
}

// SetNillableQuantitativeRaw sets the "quantitative_raw" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableQuantitativeRaw(v *float64) *TestSessionUpdate {
	if v != nil {
		_u.SetQuantitativeRaw(*v)
	}
	return _u
}

// AddQuantitativeRaw adds value to the "quantitative_raw" field.
func (_u *TestSessionUpdate) AddQuantitativeRaw(v float64) *TestSessionUpdate {
	_u.mutation.AddQuantitativeRaw(v)
	return _u
}

// ClearQuantitativeRaw clears the value of the "quantitative_raw" field.
func (_u *TestSessionUpdate) ClearQuantitativeRaw() *TestSessionUpdate {
	_u.mutation.ClearQuantitativeRaw()
	return _u
}

// SetQuantitativeScaled sets the "quantitative_scaled" field.
func (_u *TestSessionUpdate) SetQuantitativeScaled(v int) *TestSessionUpdate {
	_u.mutation.ResetQuantitativeScaled()
	_u.mutation.SetQuantitativeScaled(v)
	return _u
}

// SetNillableQuantitativeScaled sets the "quantitative_scaled" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableQuantitativeScaled(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetQuantitativeScaled(*v)
	}
	return _u
}

// AddQuantitativeScaled adds value to the "quantitative_scaled" field.
func (_u *TestSessionUpdate) AddQuantitativeScaled(v int) *TestSessionUpdate {
	_u.mutation.AddQuantitativeScaled(v)
	return _u
}

// ClearQuantitativeScaled clears the value of the "quantitative_scaled" field.
func (_u *TestSessionUpdate) ClearQuantitativeScaled() *TestSessionUpdate {
	_u.mutation.ClearQuantitativeScaled()
	return _u
}

// SetQuantitativePercentile sets the "quantitative_percentile" field.
func (_u *TestSessionUpdate) SetQuantitativePercentile(v int) *TestSessionUpdate {
	_u.mutation.ResetQuantitativePercentile()
	_u.mutation.SetQuantitativePercentile(v)
	return _u
}

// SetNillableQuantitativePercentile sets the "quantitative_percentile" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableQuantitativePercentile(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetQuantitativePercentile(*v)
	}
	return _u
}

// AddQuantitativePercentile adds value to the "quantitative_percentile" field.
func (_u *TestSessionUpdate) AddQuantitativePercentile(v int) *TestSessionUpdate {
	_u.mutation.AddQuantitativePercentile(v)
	return _u
}

// ClearQuantitativePercentile clears the value of the "quantitative_percentile" field.
func (_u *TestSessionUpdate) ClearQuantitativePercentile() *TestSessionUpdate {
	_u.mutation.ClearQuantitativePercentile()
	return _u
}

// SetReadingRaw sets the "reading_raw" field.
func (_u *TestSessionUpdate) SetReadingRaw(v float64) *TestSessionUpdate {
	_u.mutation.ResetReadingRaw()
	_u.mutation.SetReadingRaw(v)
	return _u
}

// SetNillableReadingRaw sets the "reading_raw" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableReadingRaw(v *float64) *TestSessionUpdate {
	if v != nil {
		_u.SetReadingRaw(*v)
	}
	return _u
}

// AddReadingRaw adds value to the "reading_raw" field.
func (_u *TestSessionUpdate) AddReadingRaw(v float64) *TestSessionUpdate {
	_u.mutation.AddReadingRaw(v)
	return _u
}

// ClearReadingRaw clears the value of the "reading_raw" field.
func (_u *TestSessionUpdate) ClearReadingRaw() *TestSessionUpdate {
	_u.mutation.ClearReadingRaw()
	return _u
}

// SetReadingScaled sets the "reading_scaled" field.
func (_u *TestSessionUpdate) SetReadingScaled(v int) *TestSessionUpdate {
	_u.mutation.ResetReadingScaled()
	_u.mutation.SetReadingScaled(v)
	return _u
}

// SetNillableReadingScaled sets the "reading_scaled" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableReadingScaled(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetReadingScaled(*v)
	}
	return _u
}

// AddReadingScaled adds value to the "reading_scaled" field.
func (_u *TestSessionUpdate) AddReadingScaled(v int) *TestSessionUpdate {
	_u.mutation.AddReadingScaled(v)
	return _u
}

// ClearReadingScaled clears the value of the "reading_scaled" field.
func (_u *TestSessionUpdate) ClearReadingScaled() *TestSessionUpdate {
	_u.mutation.ClearReadingScaled()
	return _u
}

// SetReadingPercentile sets the "reading_percentile" field.
func (_u *TestSessionUpdate) SetReadingPercentile(v int) *TestSessionUpdate {
	_u.mutation.ResetReadingPercentile()
	_u.mutation.SetReadingPercentile(v)
	return _u
}

// SetNillableReadingPercentile sets the "reading_percentile" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableReadingPercentile(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetReadingPercentile(*v)
	}
	return _u
}

// AddReadingPercentile adds value to the "reading_percentile" field.
func (_u *TestSessionUpdate) AddReadingPercentile(v int) *TestSessionUpdate {
	_u.mutation.AddReadingPercentile(v)
	return _u
}

// ClearReadingPercentile clears the value of the "reading_percentile" field.
func (_u *TestSessionUpdate) ClearReadingPercentile() *TestSessionUpdate {
	_u.mutation.ClearReadingPercentile()
	return _u
}

// SetTotalScaled sets the "total_scaled" field.
func (_u *TestSessionUpdate) SetTotalScaled(v int) *TestSessionUpdate {
	_u.mutation.ResetTotalScaled()
	_u.mutation.SetTotalScaled(v)
	return _u
}

// SetNillableTotalScaled sets the "total_scaled" field if the given value is not nil.
func (_u *TestSessionUpdate) SetNillableTotalScaled(v *int) *TestSessionUpdate {
	if v != nil {
		_u.SetTotalScaled(*v)
	}
	return _u
}

// AddTotalScaled adds value to the "total_scaled" field.
func (_u *TestSessionUpdate) AddTotalScaled(v int) *TestSessionUpdate {
	_u.mutation.AddTotalScaled(v)
	return _u
}

// ClearTotalScaled clears the value of the "total_scaled" field.
func (_u *TestSessionUpdate) ClearTotalScaled() *TestSessionUpdate {
	_u.mutation.ClearTotalScaled()
	return _u
}

// Mutation returns the TestSessionMutation object of the builder.
func (_u *TestSessionUpdate) Mutation() *TestSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestSessionUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := testsession.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "TestSession.level": %w`, err)}
		}
	}
	return nil
}

func (_u *TestSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testsession.Table, testsession.Columns, sqlgraph.NewFieldSpec(testsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(testsession.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(testsession.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(testsession.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(testsession.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(testsession.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(testsession.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(testsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(testsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(testsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerbalRaw(); ok {
		_spec.SetField(testsession.FieldVerbalRaw, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVerbalRaw(); ok {
		_spec.AddField(testsession.FieldVerbalRaw, field.TypeFloat64, value)
	}
	if _u.mutation.VerbalRawCleared() {
		_spec.ClearField(testsession.FieldVerbalRaw, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VerbalScaled(); ok {
		_spec.SetField(testsession.FieldVerbalScaled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVerbalScaled(); ok {
		_spec.AddField(testsession.FieldVerbalScaled, field.TypeInt, value)
	}
	if _u.mutation.VerbalScaledCleared() {
		_spec.ClearField(testsession.FieldVerbalScaled, field.TypeInt)
	}
	if value, ok := _u.mutation.VerbalPercentile(); ok {
		_spec.SetField(testsession.FieldVerbalPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVerbalPercentile(); ok {
		_spec.AddField(testsession.FieldVerbalPercentile, field.TypeInt, value)
	}
	if _u.mutation.VerbalPercentileCleared() {
		_spec.ClearField(testsession.FieldVerbalPercentile, field.TypeInt)
	}
	if value, ok := _u.mutation.QuantitativeRaw(); ok {
		_spec.SetField(testsession.FieldQuantitativeRaw, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantitativeRaw(); ok {
		_spec.AddField(testsession.FieldQuantitativeRaw, field.TypeFloat64, value)
	}
	if _u.mutation.QuantitativeRawCleared() {
		_spec.ClearField(testsession.FieldQuantitativeRaw, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QuantitativeScaled(); ok {
		_spec.SetField(testsession.FieldQuantitativeScaled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantitativeScaled(); ok {
		_spec.AddField(testsession.FieldQuantitativeScaled, field.TypeInt, value)
	}
	if _u.mutation.QuantitativeScaledCleared() {
		_spec.ClearField(testsession.FieldQuantitativeScaled, field.TypeInt)
	}
	if value, ok := _u.mutation.QuantitativePercentile(); ok {
		_spec.SetField(testsession.FieldQuantitativePercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantitativePercentile(); ok {
		_spec.AddField(testsession.FieldQuantitativePercentile, field.TypeInt, value)
	}
	if _u.mutation.QuantitativePercentileCleared() {
		_spec.ClearField(testsession.FieldQuantitativePercentile, field.TypeInt)
	}
	if value, ok := _u.mutation.ReadingRaw(); ok {
		_spec.SetField(testsession.FieldReadingRaw, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadingRaw(); ok {
		_spec.AddField(testsession.FieldReadingRaw, field.TypeFloat64, value)
	}
	if _u.mutation.ReadingRawCleared() {
		_spec.ClearField(testsession.FieldReadingRaw, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReadingScaled(); ok {
		_spec.SetField(testsession.FieldReadingScaled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingScaled(); ok {
		_spec.AddField(testsession.FieldReadingScaled, field.TypeInt, value)
	}
	if _u.mutation.ReadingScaledCleared() {
		_spec.ClearField(testsession.FieldReadingScaled, field.TypeInt)
	}
	if value, ok := _u.mutation.ReadingPercentile(); ok {
		_spec.SetField(testsession.FieldReadingPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingPercentile(); ok {
		_spec.AddField(testsession.FieldReadingPercentile, field.TypeInt, value)
	}
	if _u.mutation.ReadingPercentileCleared() {
		_spec.ClearField(testsession.FieldReadingPercentile, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalScaled(); ok {
		_spec.SetField(testsession.FieldTotalScaled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScaled(); ok {
		_spec.AddField(testsession.FieldTotalScaled, field.TypeInt, value)
	}
	if _u.mutation.TotalScaledCleared() {
		_spec.ClearField(testsession.FieldTotalScaled, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestSessionUpdateOne is the builder for updating a single TestSession entity.
type TestSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestSessionMutation
}

// SetStudentID sets the "student_id" field.
func (_u *TestSessionUpdateOne) SetStudentID(v int) *TestSessionUpdateOne {
	_u.mutation.ResetStudentID()
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableStudentID(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// AddStudentID adds value to the "student_id" field.
func (_u *TestSessionUpdateOne) AddStudentID(v int) *TestSessionUpdateOne {
	_u.mutation.AddStudentID(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *TestSessionUpdateOne) SetLevel(v string) *TestSessionUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableLevel(v *string) *TestSessionUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *TestSessionUpdateOne) SetGrade(v int) *TestSessionUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableGrade(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *TestSessionUpdateOne) AddGrade(v int) *TestSessionUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *TestSessionUpdateOne) SetMode(v string) *TestSessionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableMode(v *string) *TestSessionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TestSessionUpdateOne) SetStartedAt(v time.Time) *TestSessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableStartedAt(v *time.Time) *TestSessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TestSessionUpdateOne) SetCompletedAt(v time.Time) *TestSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *TestSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TestSessionUpdateOne) ClearCompletedAt() *TestSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVerbalRaw sets the "verbal_raw" field.
func (_u *TestSessionUpdateOne) SetVerbalRaw(v float64) *TestSessionUpdateOne {
	_u.mutation.ResetVerbalRaw()
	_u.mutation.SetVerbalRaw(v)
	return _u
}

// SetNillableVerbalRaw sets the "verbal_raw" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableVerbalRaw(v *float64) *TestSessionUpdateOne {
	if v != nil {
		_u.SetVerbalRaw(*v)
	}
	return _u
}

// AddVerbalRaw adds value to the "verbal_raw" field.
func (_u *TestSessionUpdateOne) AddVerbalRaw(v float64) *TestSessionUpdateOne {
	_u.mutation.AddVerbalRaw(v)
	return _u
}

// ClearVerbalRaw clears the value of the "verbal_raw" field.
func (_u *TestSessionUpdateOne) ClearVerbalRaw() *TestSessionUpdateOne {
	_u.mutation.ClearVerbalRaw()
	return _u
}

// SetVerbalScaled sets the "verbal_scaled" field.
func (_u *TestSessionUpdateOne) SetVerbalScaled(v int) *TestSessionUpdateOne {
	_u.mutation.ResetVerbalScaled()
	_u.mutation.SetVerbalScaled(v)
	return _u
}

// SetNillableVerbalScaled sets the "verbal_scaled" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableVerbalScaled(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetVerbalScaled(*v)
	}
	return _u
}

// AddVerbalScaled adds value to the "verbal_scaled" field.
func (_u *TestSessionUpdateOne) AddVerbalScaled(v int) *TestSessionUpdateOne {
	_u.mutation.AddVerbalScaled(v)
	return _u
}

// ClearVerbalScaled clears the value of the "verbal_scaled" field.
func (_u *TestSessionUpdateOne) ClearVerbalScaled() *TestSessionUpdateOne {
	_u.mutation.ClearVerbalScaled()
	return _u
}

// SetVerbalPercentile sets the "verbal_percentile" field.
func (_u *TestSessionUpdateOne) SetVerbalPercentile(v int) *TestSessionUpdateOne {
	_u.mutation.ResetVerbalPercentile()
	_u.mutation.SetVerbalPercentile(v)
	return _u
}

// SetNillableVerbalPercentile sets the "verbal_percentile" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableVerbalPercentile(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetVerbalPercentile(*v)
	}
	return _u
}

// AddVerbalPercentile adds value to the "verbal_percentile" field.
func (_u *TestSessionUpdateOne) AddVerbalPercentile(v int) *TestSessionUpdateOne {
	_u.mutation.AddVerbalPercentile(v)
	return _u
}

// ClearVerbalPercentile clears the value of the "verbal_percentile" field.
func (_u *TestSessionUpdateOne) ClearVerbalPercentile() *TestSessionUpdateOne {
	_u.mutation.ClearVerbalPercentile()
	return _u
}

// SetQuantitativeRaw sets the "quantitative_raw" field.
func (_u *TestSessionUpdateOne) SetQuantitativeRaw(v float64) *TestSessionUpdateOne {
	_u.mutation.ResetQuantitativeRaw()
	_u.mutation.SetQuantitativeRaw(v)
	return _u
}

// SetNillableQuantitativeRaw sets the "quantitative_raw" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableQuantitativeRaw(v *float64) *TestSessionUpdateOne {
	if v != nil {
		_u.SetQuantitativeRaw(*v)
	}
	return _u
}

// AddQuantitativeRaw adds value to the "quantitative_raw" field.
func (_u *TestSessionUpdateOne) AddQuantitativeRaw(v float64) *TestSessionUpdateOne {
	_u.mutation.AddQuantitativeRaw(v)
	return _u
}

// ClearQuantitativeRaw clears the value of the "quantitative_raw" field.
func (_u *TestSessionUpdateOne) ClearQuantitativeRaw() *TestSessionUpdateOne {
	_u.mutation.ClearQuantitativeRaw()
	return _u
}

// SetQuantitativeScaled sets the "quantitative_scaled" field.
func (_u *TestSessionUpdateOne) SetQuantitativeScaled(v int) *TestSessionUpdateOne {
	_u.mutation.ResetQuantitativeScaled()
	_u.mutation.SetQuantitativeScaled(v)
	return _u
}

// SetNillableQuantitativeScaled sets the "quantitative_scaled" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableQuantitativeScaled(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetQuantitativeScaled(*v)
	}
	return _u
}

// AddQuantitativeScaled adds value to the "quantitative_scaled" field.
func (_u *TestSessionUpdateOne) AddQuantitativeScaled(v int) *TestSessionUpdateOne {
	_u.mutation.AddQuantitativeScaled(v)
	return _u
}

// ClearQuantitativeScaled clears the value of the "quantitative_scaled" field.
func (_u *TestSessionUpdateOne) ClearQuantitativeScaled() *TestSessionUpdateOne {
	_u.mutation.ClearQuantitativeScaled()
	return _u
}

// SetQuantitativePercentile sets the "quantitative_percentile" field.
func (_u *TestSessionUpdateOne) SetQuantitativePercentile(v int) *TestSessionUpdateOne {
	_u.mutation.ResetQuantitativePercentile()
	_u.mutation.SetQuantitativePercentile(v)
	return _u
}

// SetNillableQuantitativePercentile sets the "quantitative_percentile" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableQuantitativePercentile(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetQuantitativePercentile(*v)
	}
	return _u
}

// AddQuantitativePercentile adds value to the "quantitative_percentile" field.
func (_u *TestSessionUpdateOne) AddQuantitativePercentile(v int) *TestSessionUpdateOne {
	_u.mutation.AddQuantitativePercentile(v)
	return _u
}

// ClearQuantitativePercentile clears the value of the "quantitative_percentile" field.
func (_u *TestSessionUpdateOne) ClearQuantitativePercentile() *TestSessionUpdateOne {
	_u.mutation.ClearQuantitativePercentile()
	return _u
}

// SetReadingRaw sets the "reading_raw" field.
func (_u *TestSessionUpdateOne) SetReadingRaw(v float64) *TestSessionUpdateOne {
	_u.mutation.ResetReadingRaw()
	_u.mutation.SetReadingRaw(v)
	return _u
}

// SetNillableReadingRaw sets the "reading_raw" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableReadingRaw(v *float64) *TestSessionUpdateOne {
	if v != nil {
		_u.SetReadingRaw(*v)
	}
	return _u
}

// AddReadingRaw adds value to the "reading_raw" field.
func (_u *TestSessionUpdateOne) AddReadingRaw(v float64) *TestSessionUpdateOne {
	_u.mutation.AddReadingRaw(v)
	return _u
}

// ClearReadingRaw clears the value of the "reading_raw" field.
func (_u *TestSessionUpdateOne) ClearReadingRaw() *TestSessionUpdateOne {
	_u.mutation.ClearReadingRaw()
	return _u
}

// SetReadingScaled sets the "reading_scaled" field.
func (_u *TestSessionUpdateOne) SetReadingScaled(v int) *TestSessionUpdateOne {
	_u.mutation.ResetReadingScaled()
	_u.mutation.SetReadingScaled(v)
	return _u
}

// SetNillableReadingScaled sets the "reading_scaled" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableReadingScaled(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetReadingScaled(*v)
	}
	return _u
}

// AddReadingScaled adds value to the "reading_scaled" field.
func (_u *TestSessionUpdateOne) AddReadingScaled(v int) *TestSessionUpdateOne {
	_u.mutation.AddReadingScaled(v)
	return _u
}

// ClearReadingScaled clears the value of the "reading_scaled" field.
func (_u *TestSessionUpdateOne) ClearReadingScaled() *TestSessionUpdateOne {
	_u.mutation.ClearReadingScaled()
	return _u
}

// SetReadingPercentile sets the "reading_percentile" field.
func (_u *TestSessionUpdateOne) SetReadingPercentile(v int) *TestSessionUpdateOne {
	_u.mutation.ResetReadingPercentile()
	_u.mutation.SetReadingPercentile(v)
	return _u
}

// SetNillableReadingPercentile sets the "reading_percentile" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableReadingPercentile(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetReadingPercentile(*v)
	}
	return _u
}

// AddReadingPercentile adds value to the "reading_percentile" field.
func (_u *TestSessionUpdateOne) AddReadingPercentile(v int) *TestSessionUpdateOne {
	_u.mutation.AddReadingPercentile(v)
	return _u
}

// ClearReadingPercentile clears the value of the "reading_percentile" field.
func (_u *TestSessionUpdateOne) ClearReadingPercentile() *TestSessionUpdateOne {
	_u.mutation.ClearReadingPercentile()
	return _u
}

// SetTotalScaled sets the "total_scaled" field.
func (_u *TestSessionUpdateOne) SetTotalScaled(v int) *TestSessionUpdateOne {
	_u.mutation.ResetTotalScaled()
	_u.mutation.SetTotalScaled(v)
	return _u
}

// SetNillableTotalScaled sets the "total_scaled" field if the given value is not nil.
func (_u *TestSessionUpdateOne) SetNillableTotalScaled(v *int) *TestSessionUpdateOne {
	if v != nil {
		_u.SetTotalScaled(*v)
	}
	return _u
}

// AddTotalScaled adds value to the "total_scaled" field.
func (_u *TestSessionUpdateOne) AddTotalScaled(v int) *TestSessionUpdateOne {
	_u.mutation.AddTotalScaled(v)
	return _u
}

// ClearTotalScaled clears the value of the "total_scaled" field.
func (_u *TestSessionUpdateOne) ClearTotalScaled() *TestSessionUpdateOne {
	_u.mutation.ClearTotalScaled()
	return _u
}

// Mutation returns the TestSessionMutation object of the builder.
func (_u *TestSessionUpdateOne) Mutation() *TestSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the TestSessionUpdate builder.
func (_u *TestSessionUpdateOne) Where(ps ...predicate.TestSession) *TestSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestSessionUpdateOne) Select(field string, fields ...string) *TestSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestSession entity.
func (_u *TestSessionUpdateOne) Save(ctx context.Context) (*TestSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestSessionUpdateOne) SaveX(ctx context.Context) *TestSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := testsession.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "TestSession.level": %w`, err)}
		}
	}
	return nil
}

func (_u *TestSessionUpdateOne) sqlSave(ctx context.Context) (_node *TestSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testsession.Table, testsession.Columns, sqlgraph.NewFieldSpec(testsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testsession.FieldID)
		for _, f := range fields {
			if !testsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(testsession.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentID(); ok {
		_spec.AddField(testsession.FieldStudentID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(testsession.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(testsession.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(testsession.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(testsession.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(testsession.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(testsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(testsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.VerbalRaw(); ok {
		_spec.SetField(testsession.FieldVerbalRaw, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVerbalRaw(); ok {
		_spec.AddField(testsession.FieldVerbalRaw, field.TypeFloat64, value)
	}
	if _u.mutation.VerbalRawCleared() {
		_spec.ClearField(testsession.FieldVerbalRaw, field.TypeFloat64)
	}
	if value, ok := _u.mutation.VerbalScaled(); ok {
		_spec.SetField(testsession.FieldVerbalScaled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVerbalScaled(); ok {
		_spec.AddField(testsession.FieldVerbalScaled, field.TypeInt, value)
	}
	if _u.mutation.VerbalScaledCleared() {
		_spec.ClearField(testsession.FieldVerbalScaled, field.TypeInt)
	}
	if value, ok := _u.mutation.VerbalPercentile(); ok {
		_spec.SetField(testsession.FieldVerbalPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVerbalPercentile(); ok {
		_spec.AddField(testsession.FieldVerbalPercentile, field.TypeInt, value)
	}
	if _u.mutation.VerbalPercentileCleared() {
		_spec.ClearField(testsession.FieldVerbalPercentile, field.TypeInt)
	}
	if value, ok := _u.mutation.QuantitativeRaw(); ok {
		_spec.SetField(testsession.FieldQuantitativeRaw, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantitativeRaw(); ok {
		_spec.AddField(testsession.FieldQuantitativeRaw, field.TypeFloat64, value)
	}
	if _u.mutation.QuantitativeRawCleared() {
		_spec.ClearField(testsession.FieldQuantitativeRaw, field.TypeFloat64)
	}
	if value, ok := _u.mutation.QuantitativeScaled(); ok {
		_spec.SetField(testsession.FieldQuantitativeScaled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantitativeScaled(); ok {
		_spec.AddField(testsession.FieldQuantitativeScaled, field.TypeInt, value)
	}
	if _u.mutation.QuantitativeScaledCleared() {
		_spec.ClearField(testsession.FieldQuantitativeScaled, field.TypeInt)
	}
	if value, ok := _u.mutation.QuantitativePercentile(); ok {
		_spec.SetField(testsession.FieldQuantitativePercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantitativePercentile(); ok {
		_spec.AddField(testsession.FieldQuantitativePercentile, field.TypeInt, value)
	}
	if _u.mutation.QuantitativePercentileCleared() {
		_spec.ClearField(testsession.FieldQuantitativePercentile, field.TypeInt)
	}
	if value, ok := _u.mutation.ReadingRaw(); ok {
		_spec.SetField(testsession.FieldReadingRaw, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadingRaw(); ok {
		_spec.AddField(testsession.FieldReadingRaw, field.TypeFloat64, value)
	}
	if _u.mutation.ReadingRawCleared() {
		_spec.ClearField(testsession.FieldReadingRaw, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ReadingScaled(); ok {
		_spec.SetField(testsession.FieldReadingScaled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingScaled(); ok {
		_spec.AddField(testsession.FieldReadingScaled, field.TypeInt, value)
	}
	if _u.mutation.ReadingScaledCleared() {
		_spec.ClearField(testsession.FieldReadingScaled, field.TypeInt)
	}
	if value, ok := _u.mutation.ReadingPercentile(); ok {
		_spec.SetField(testsession.FieldReadingPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadingPercentile(); ok {
		_spec.AddField(testsession.FieldReadingPercentile, field.TypeInt, value)
	}
	if _u.mutation.ReadingPercentileCleared() {
		_spec.ClearField(testsession.FieldReadingPercentile, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalScaled(); ok {
		_spec.SetField(testsession.FieldTotalScaled, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScaled(); ok {
		_spec.AddField(testsession.FieldTotalScaled, field.TypeInt, value)
	}
	if _u.mutation.TotalScaledCleared() {
		_spec.ClearField(testsession.FieldTotalScaled, field.TypeInt)
	}
	_node = &TestSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
