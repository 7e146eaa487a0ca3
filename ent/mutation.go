// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shailiguru/ssat-practice/ent/answer"
	"github.com/shailiguru/ssat-practice/ent/llmrequestevent"
	"github.com/shailiguru/ssat-practice/ent/predicate"
	"github.com/shailiguru/ssat-practice/ent/question"
	"github.com/shailiguru/ssat-practice/ent/student"
	"github.com/shailiguru/ssat-practice/ent/testsession"
	"github.com/shailiguru/ssat-practice/ent/topicmastery"
	"github.com/shailiguru/ssat-practice/ent/writingsample"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswer          = "Answer"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeQuestion        = "Question"
	TypeStudent         = "Student"
	TypeTestSession     = "TestSession"
	TypeTopicMastery    = "TopicMastery"
	TypeWritingSample   = "WritingSample"
)

// AnswerMutation represents an operation that mutates the Answer nodes in the graph.
type AnswerMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	session_id            *int
	addsession_id         *int
	question_id           *int
	addquestion_id        *int
	student_id            *int
	addstudent_id         *int
	selected_answer       *string
	is_correct            *bool
	time_spent_seconds    *float64
	addtime_spent_seconds *float64
	answered_at           *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Answer, error)
	predicates            []predicate.Answer
}

var _ ent.Mutation = (*AnswerMutation)(nil)

// answerOption allows management of the mutation configuration using functional options.
type answerOption func(*AnswerMutation)

// newAnswerMutation creates new mutation for the Answer entity.
func newAnswerMutation(c config, op Op, opts ...answerOption) *AnswerMutation {
	m := &AnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerID sets the ID field of the mutation.
func withAnswerID(id int) answerOption {
	return func(m *AnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *Answer
		)
		m.oldValue = func(ctx context.Context) (*Answer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Answer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswer sets the old Answer of the mutation.
func withAnswer(node *Answer) answerOption {
	return func(m *AnswerMutation) {
		m.oldValue = func(context.Context) (*Answer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Answer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AnswerMutation) SetSessionID(i int) {
	m.session_id = &i
	m.addsession_id = nil
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnswerMutation) SessionID() (r int, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSessionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// AddSessionID adds i to the "session_id" field.
func (m *AnswerMutation) AddSessionID(i int) {
	if m.addsession_id != nil {
		*m.addsession_id += i
	} else {
		m.addsession_id = &i
	}
}

// AddedSessionID returns the value that was added to the "session_id" field in this mutation.
func (m *AnswerMutation) AddedSessionID() (r int, exists bool) {
	v := m.addsession_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnswerMutation) ResetSessionID() {
	m.session_id = nil
	m.addsession_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerMutation) SetQuestionID(i int) {
	m.question_id = &i
	m.addquestion_id = nil
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerMutation) QuestionID() (r int, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// AddQuestionID adds i to the "question_id" field.
func (m *AnswerMutation) AddQuestionID(i int) {
	if m.addquestion_id != nil {
		*m.addquestion_id += i
	} else {
		m.addquestion_id = &i
	}
}

// AddedQuestionID returns the value that was added to the "question_id" field in this mutation.
func (m *AnswerMutation) AddedQuestionID() (r int, exists bool) {
	v := m.addquestion_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerMutation) ResetQuestionID() {
	m.question_id = nil
	m.addquestion_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *AnswerMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *AnswerMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *AnswerMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *AnswerMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *AnswerMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetSelectedAnswer sets the "selected_answer" field.
func (m *AnswerMutation) SetSelectedAnswer(s string) {
	m.selected_answer = &s
}

// SelectedAnswer returns the value of the "selected_answer" field in the mutation.
func (m *AnswerMutation) SelectedAnswer() (r string, exists bool) {
	v := m.selected_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedAnswer returns the old "selected_answer" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSelectedAnswer(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedAnswer: %w", err)
	}
	return oldValue.SelectedAnswer, nil
}

// ClearSelectedAnswer clears the value of the "selected_answer" field.
func (m *AnswerMutation) ClearSelectedAnswer() {
	m.selected_answer = nil
	m.clearedFields[answer.FieldSelectedAnswer] = struct{}{}
}

// SelectedAnswerCleared returns if the "selected_answer" field was cleared in this mutation.
func (m *AnswerMutation) SelectedAnswerCleared() bool {
	_, ok := m.clearedFields[answer.FieldSelectedAnswer]
	return ok
}

// ResetSelectedAnswer resets all changes to the "selected_answer" field.
func (m *AnswerMutation) ResetSelectedAnswer() {
	m.selected_answer = nil
	delete(m.clearedFields, answer.FieldSelectedAnswer)
}

// SetIsCorrect sets the "is_correct" field.
func (m *AnswerMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *AnswerMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *AnswerMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (m *AnswerMutation) SetTimeSpentSeconds(f float64) {
	m.time_spent_seconds = &f
	m.addtime_spent_seconds = nil
}

// TimeSpentSeconds returns the value of the "time_spent_seconds" field in the mutation.
func (m *AnswerMutation) TimeSpentSeconds() (r float64, exists bool) {
	v := m.time_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSeconds returns the old "time_spent_seconds" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldTimeSpentSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSeconds: %w", err)
	}
	return oldValue.TimeSpentSeconds, nil
}

// AddTimeSpentSeconds adds f to the "time_spent_seconds" field.
func (m *AnswerMutation) AddTimeSpentSeconds(f float64) {
	if m.addtime_spent_seconds != nil {
		*m.addtime_spent_seconds += f
	} else {
		m.addtime_spent_seconds = &f
	}
}

// AddedTimeSpentSeconds returns the value that was added to the "time_spent_seconds" field in this mutation.
func (m *AnswerMutation) AddedTimeSpentSeconds() (r float64, exists bool) {
	v := m.addtime_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSeconds resets all changes to the "time_spent_seconds" field.
func (m *AnswerMutation) ResetTimeSpentSeconds() {
	m.time_spent_seconds = nil
	m.addtime_spent_seconds = nil
}

// SetAnsweredAt sets the "answered_at" field.
func (m *AnswerMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *AnswerMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldAnsweredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *AnswerMutation) ResetAnsweredAt() {
	m.answered_at = nil
}

// Where appends a list predicates to the AnswerMutation builder.
func (m *AnswerMutation) Where(ps ...predicate.Answer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Answer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Answer).
func (m *AnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, answer.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, answer.FieldQuestionID)
	}
	if m.student_id != nil {
		fields = append(fields, answer.FieldStudentID)
	}
	if m.selected_answer != nil {
		fields = append(fields, answer.FieldSelectedAnswer)
	}
	if m.is_correct != nil {
		fields = append(fields, answer.FieldIsCorrect)
	}
	if m.time_spent_seconds != nil {
		fields = append(fields, answer.FieldTimeSpentSeconds)
	}
	if m.answered_at != nil {
		fields = append(fields, answer.FieldAnsweredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldSessionID:
		return m.SessionID()
	case answer.FieldQuestionID:
		return m.QuestionID()
	case answer.FieldStudentID:
		return m.StudentID()
	case answer.FieldSelectedAnswer:
		return m.SelectedAnswer()
	case answer.FieldIsCorrect:
		return m.IsCorrect()
	case answer.FieldTimeSpentSeconds:
		return m.TimeSpentSeconds()
	case answer.FieldAnsweredAt:
		return m.AnsweredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answer.FieldSessionID:
		return m.OldSessionID(ctx)
	case answer.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case answer.FieldStudentID:
		return m.OldStudentID(ctx)
	case answer.FieldSelectedAnswer:
		return m.OldSelectedAnswer(ctx)
	case answer.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case answer.FieldTimeSpentSeconds:
		return m.OldTimeSpentSeconds(ctx)
	case answer.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Answer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answer.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case answer.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case answer.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case answer.FieldSelectedAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedAnswer(v)
		return nil
	case answer.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case answer.FieldTimeSpentSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSeconds(v)
		return nil
	case answer.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerMutation) AddedFields() []string {
	var fields []string
	if m.addsession_id != nil {
		fields = append(fields, answer.FieldSessionID)
	}
	if m.addquestion_id != nil {
		fields = append(fields, answer.FieldQuestionID)
	}
	if m.addstudent_id != nil {
		fields = append(fields, answer.FieldStudentID)
	}
	if m.addtime_spent_seconds != nil {
		fields = append(fields, answer.FieldTimeSpentSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldSessionID:
		return m.AddedSessionID()
	case answer.FieldQuestionID:
		return m.AddedQuestionID()
	case answer.FieldStudentID:
		return m.AddedStudentID()
	case answer.FieldTimeSpentSeconds:
		return m.AddedTimeSpentSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answer.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionID(v)
		return nil
	case answer.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionID(v)
		return nil
	case answer.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	case answer.FieldTimeSpentSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Answer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answer.FieldSelectedAnswer) {
		fields = append(fields, answer.FieldSelectedAnswer)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerMutation) ClearField(name string) error {
	switch name {
	case answer.FieldSelectedAnswer:
		m.ClearSelectedAnswer()
		return nil
	}
	return fmt.Errorf("unknown Answer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerMutation) ResetField(name string) error {
	switch name {
	case answer.FieldSessionID:
		m.ResetSessionID()
		return nil
	case answer.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case answer.FieldStudentID:
		m.ResetStudentID()
		return nil
	case answer.FieldSelectedAnswer:
		m.ResetSelectedAnswer()
		return nil
	case answer.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case answer.FieldTimeSpentSeconds:
		m.ResetTimeSpentSeconds()
		return nil
	case answer.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Answer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Answer edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMRequestEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMRequestEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMRequestEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, llmrequestevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	level          *string
	question_type  *string
	topic          *string
	difficulty     *int
	adddifficulty  *int
	stem           *string
	passage        *string
	choices        *map[string]string
	correct_answer *string
	explanation    *string
	batch_id       *string
	generated_at   *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Question, error)
	predicates     []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLevel sets the "level" field.
func (m *QuestionMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *QuestionMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *QuestionMutation) ResetLevel() {
	m.level = nil
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetTopic sets the "topic" field.
func (m *QuestionMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *QuestionMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *QuestionMutation) ResetTopic() {
	m.topic = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(i int) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r int, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *QuestionMutation) AddDifficulty(i int) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *QuestionMutation) AddedDifficulty() (r int, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetStem sets the "stem" field.
func (m *QuestionMutation) SetStem(s string) {
	m.stem = &s
}

// Stem returns the value of the "stem" field in the mutation.
func (m *QuestionMutation) Stem() (r string, exists bool) {
	v := m.stem
	if v == nil {
		return
	}
	return *v, true
}

// OldStem returns the old "stem" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldStem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStem: %w", err)
	}
	return oldValue.Stem, nil
}

// ResetStem resets all changes to the "stem" field.
func (m *QuestionMutation) ResetStem() {
	m.stem = nil
}

// SetPassage sets the "passage" field.
func (m *QuestionMutation) SetPassage(s string) {
	m.passage = &s
}

// Passage returns the value of the "passage" field in the mutation.
func (m *QuestionMutation) Passage() (r string, exists bool) {
	v := m.passage
	if v == nil {
		return
	}
	return *v, true
}

// OldPassage returns the old "passage" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPassage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassage: %w", err)
	}
	return oldValue.Passage, nil
}

// ClearPassage clears the value of the "passage" field.
func (m *QuestionMutation) ClearPassage() {
	m.passage = nil
	m.clearedFields[question.FieldPassage] = struct{}{}
}

// PassageCleared returns if the "passage" field was cleared in this mutation.
func (m *QuestionMutation) PassageCleared() bool {
	_, ok := m.clearedFields[question.FieldPassage]
	return ok
}

// ResetPassage resets all changes to the "passage" field.
func (m *QuestionMutation) ResetPassage() {
	m.passage = nil
	delete(m.clearedFields, question.FieldPassage)
}

// SetChoices sets the "choices" field.
func (m *QuestionMutation) SetChoices(value map[string]string) {
	m.choices = &value
}

// Choices returns the value of the "choices" field in the mutation.
func (m *QuestionMutation) Choices() (r map[string]string, exists bool) {
	v := m.choices
	if v == nil {
		return
	}
	return *v, true
}

// OldChoices returns the old "choices" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldChoices(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoices: %w", err)
	}
	return oldValue.Choices, nil
}

// ResetChoices resets all changes to the "choices" field.
func (m *QuestionMutation) ResetChoices() {
	m.choices = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *QuestionMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *QuestionMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *QuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetExplanation sets the "explanation" field.
func (m *QuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *QuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *QuestionMutation) ResetExplanation() {
	m.explanation = nil
}

// SetBatchID sets the "batch_id" field.
func (m *QuestionMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *QuestionMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *QuestionMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *QuestionMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *QuestionMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *QuestionMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.level != nil {
		fields = append(fields, question.FieldLevel)
	}
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.topic != nil {
		fields = append(fields, question.FieldTopic)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.stem != nil {
		fields = append(fields, question.FieldStem)
	}
	if m.passage != nil {
		fields = append(fields, question.FieldPassage)
	}
	if m.choices != nil {
		fields = append(fields, question.FieldChoices)
	}
	if m.correct_answer != nil {
		fields = append(fields, question.FieldCorrectAnswer)
	}
	if m.explanation != nil {
		fields = append(fields, question.FieldExplanation)
	}
	if m.batch_id != nil {
		fields = append(fields, question.FieldBatchID)
	}
	if m.generated_at != nil {
		fields = append(fields, question.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldLevel:
		return m.Level()
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldTopic:
		return m.Topic()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldStem:
		return m.Stem()
	case question.FieldPassage:
		return m.Passage()
	case question.FieldChoices:
		return m.Choices()
	case question.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case question.FieldExplanation:
		return m.Explanation()
	case question.FieldBatchID:
		return m.BatchID()
	case question.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldLevel:
		return m.OldLevel(ctx)
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldTopic:
		return m.OldTopic(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldStem:
		return m.OldStem(ctx)
	case question.FieldPassage:
		return m.OldPassage(ctx)
	case question.FieldChoices:
		return m.OldChoices(ctx)
	case question.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case question.FieldExplanation:
		return m.OldExplanation(ctx)
	case question.FieldBatchID:
		return m.OldBatchID(ctx)
	case question.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case question.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldStem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStem(v)
		return nil
	case question.FieldPassage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassage(v)
		return nil
	case question.FieldChoices:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoices(v)
		return nil
	case question.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case question.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case question.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case question.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldDifficulty:
		return m.AddedDifficulty()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldDifficulty:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldPassage) {
		fields = append(fields, question.FieldPassage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldPassage:
		m.ClearPassage()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldLevel:
		m.ResetLevel()
		return nil
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldTopic:
		m.ResetTopic()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldStem:
		m.ResetStem()
		return nil
	case question.FieldPassage:
		m.ResetPassage()
		return nil
	case question.FieldChoices:
		m.ResetChoices()
		return nil
	case question.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case question.FieldExplanation:
		m.ResetExplanation()
		return nil
	case question.FieldBatchID:
		m.ResetBatchID()
		return nil
	case question.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// StudentMutation represents an operation that mutates the Student nodes in the graph.
type StudentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	grade         *int
	addgrade      *int
	level         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Student, error)
	predicates    []predicate.Student
}

var _ ent.Mutation = (*StudentMutation)(nil)

// studentOption allows management of the mutation configuration using functional options.
type studentOption func(*StudentMutation)

// newStudentMutation creates new mutation for the Student entity.
func newStudentMutation(c config, op Op, opts ...studentOption) *StudentMutation {
	m := &StudentMutation{
		config:        c,
		op:            op,
		typ:           TypeStudent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentID sets the ID field of the mutation.
func withStudentID(id int) studentOption {
	return func(m *StudentMutation) {
		var (
			err   error
			once  sync.Once
			value *Student
		)
		m.oldValue = func(ctx context.Context) (*Student, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Student.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudent sets the old Student of the mutation.
func withStudent(node *Student) studentOption {
	return func(m *StudentMutation) {
		m.oldValue = func(context.Context) (*Student, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Student.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *StudentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StudentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StudentMutation) ResetName() {
	m.name = nil
}

// SetGrade sets the "grade" field.
func (m *StudentMutation) SetGrade(i int) {
	m.grade = &i
	m.addgrade = nil
}

// Grade returns the value of the "grade" field in the mutation.
func (m *StudentMutation) Grade() (r int, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldGrade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// AddGrade adds i to the "grade" field.
func (m *StudentMutation) AddGrade(i int) {
	if m.addgrade != nil {
		*m.addgrade += i
	} else {
		m.addgrade = &i
	}
}

// AddedGrade returns the value that was added to the "grade" field in this mutation.
func (m *StudentMutation) AddedGrade() (r int, exists bool) {
	v := m.addgrade
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrade resets all changes to the "grade" field.
func (m *StudentMutation) ResetGrade() {
	m.grade = nil
	m.addgrade = nil
}

// SetLevel sets the "level" field.
func (m *StudentMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *StudentMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *StudentMutation) ResetLevel() {
	m.level = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StudentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StudentMutation builder.
func (m *StudentMutation) Where(ps ...predicate.Student) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Student, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Student).
func (m *StudentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, student.FieldName)
	}
	if m.grade != nil {
		fields = append(fields, student.FieldGrade)
	}
	if m.level != nil {
		fields = append(fields, student.FieldLevel)
	}
	if m.created_at != nil {
		fields = append(fields, student.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case student.FieldName:
		return m.Name()
	case student.FieldGrade:
		return m.Grade()
	case student.FieldLevel:
		return m.Level()
	case student.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case student.FieldName:
		return m.OldName(ctx)
	case student.FieldGrade:
		return m.OldGrade(ctx)
	case student.FieldLevel:
		return m.OldLevel(ctx)
	case student.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Student field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case student.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case student.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case student.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case student.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Student field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentMutation) AddedFields() []string {
	var fields []string
	if m.addgrade != nil {
		fields = append(fields, student.FieldGrade)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case student.FieldGrade:
		return m.AddedGrade()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case student.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrade(v)
		return nil
	}
	return fmt.Errorf("unknown Student numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Student nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentMutation) ResetField(name string) error {
	switch name {
	case student.FieldName:
		m.ResetName()
		return nil
	case student.FieldGrade:
		m.ResetGrade()
		return nil
	case student.FieldLevel:
		m.ResetLevel()
		return nil
	case student.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Student field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Student unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Student edge %s", name)
}

// TestSessionMutation represents an operation that mutates the TestSession nodes in the graph.
type TestSessionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	student_id                 *int
	addstudent_id              *int
	level                      *string
	grade                      *int
	addgrade                   *int
	mode                       *string
	started_at                 *time.Time
	completed_at               *time.Time
	verbal_raw                 *float64
	addverbal_raw              *float64
	verbal_scaled              *int
	addverbal_scaled           *int
	verbal_percentile          *int
	addverbal_percentile       *int
	quantitative_raw           *float64
	addquantitative_raw        *float64
	quantitative_scaled        *int
	addquantitative_scaled     *int
	quantitative_percentile    *int
	addquantitative_percentile *int
	reading_raw                *float64
	addreading_raw             *float64
	reading_scaled             *int
	addreading_scaled          *int
	reading_percentile         *int
	addreading_percentile      *int
	total_scaled               *int
	addtotal_scaled            *int
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*TestSession, error)
	predicates                 []predicate.TestSession
}

var _ ent.Mutation = (*TestSessionMutation)(nil)

// testsessionOption allows management of the mutation configuration using functional options.
type testsessionOption func(*TestSessionMutation)

// newTestSessionMutation creates new mutation for the TestSession entity.
func newTestSessionMutation(c config, op Op, opts ...testsessionOption) *TestSessionMutation {
	m := &TestSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeTestSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestSessionID sets the ID field of the mutation.
func withTestSessionID(id int) testsessionOption {
	return func(m *TestSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *TestSession
		)
		m.oldValue = func(ctx context.Context) (*TestSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestSession sets the old TestSession of the mutation.
func withTestSession(node *TestSession) testsessionOption {
	return func(m *TestSessionMutation) {
		m.oldValue = func(context.Context) (*TestSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *TestSessionMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *TestSessionMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *TestSessionMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *TestSessionMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *TestSessionMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetLevel sets the "level" field.
func (m *TestSessionMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *TestSessionMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *TestSessionMutation) ResetLevel() {
	m.level = nil
}

// SetGrade sets the "grade" field.
func (m *TestSessionMutation) SetGrade(i int) {
	m.grade = &i
	m.addgrade = nil
}

// Grade returns the value of the "grade" field in the mutation.
func (m *TestSessionMutation) Grade() (r int, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldGrade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// AddGrade adds i to the "grade" field.
func (m *TestSessionMutation) AddGrade(i int) {
	if m.addgrade != nil {
		*m.addgrade += i
	} else {
		m.addgrade = &i
	}
}

// AddedGrade returns the value that was added to the "grade" field in this mutation.
func (m *TestSessionMutation) AddedGrade() (r int, exists bool) {
	v := m.addgrade
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrade resets all changes to the "grade" field.
func (m *TestSessionMutation) ResetGrade() {
	m.grade = nil
	m.addgrade = nil
}

// SetMode sets the "mode" field.
func (m *TestSessionMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *TestSessionMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *TestSessionMutation) ResetMode() {
	m.mode = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TestSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TestSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TestSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TestSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TestSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TestSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[testsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TestSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[testsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TestSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, testsession.FieldCompletedAt)
}

// SetVerbalRaw sets the "verbal_raw" field.
func (m *TestSessionMutation) SetVerbalRaw(f float64) {
	m.verbal_raw = &f
	m.addverbal_raw = nil
}

// VerbalRaw returns the value of the "verbal_raw" field in the mutation.
func (m *TestSessionMutation) VerbalRaw() (r float64, exists bool) {
	v := m.verbal_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldVerbalRaw returns the old "verbal_raw" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldVerbalRaw(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerbalRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerbalRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerbalRaw: %w", err)
	}
	return oldValue.VerbalRaw, nil
}

// AddVerbalRaw adds f to the "verbal_raw" field.
func (m *TestSessionMutation) AddVerbalRaw(f float64) {
	if m.addverbal_raw != nil {
		*m.addverbal_raw += f
	} else {
		m.addverbal_raw = &f
	}
}

// AddedVerbalRaw returns the value that was added to the "verbal_raw" field in this mutation.
func (m *TestSessionMutation) AddedVerbalRaw() (r float64, exists bool) {
	v := m.addverbal_raw
	if v == nil {
		return
	}
	return *v, true
}

// ClearVerbalRaw clears the value of the "verbal_raw" field.
func (m *TestSessionMutation) ClearVerbalRaw() {
	m.verbal_raw = nil
	m.addverbal_raw = nil
	m.clearedFields[testsession.FieldVerbalRaw] = struct{}{}
}

// VerbalRawCleared returns if the "verbal_raw" field was cleared in this mutation.
func (m *TestSessionMutation) VerbalRawCleared() bool {
	_, ok := m.clearedFields[testsession.FieldVerbalRaw]
	return ok
}

// ResetVerbalRaw resets all changes to the "verbal_raw" field.
func (m *TestSessionMutation) ResetVerbalRaw() {
	m.verbal_raw = nil
	m.addverbal_raw = nil
	delete(m.clearedFields, testsession.FieldVerbalRaw)
}

// SetVerbalScaled sets the "verbal_scaled" field.
func (m *TestSessionMutation) SetVerbalScaled(i int) {
	m.verbal_scaled = &i
	m.addverbal_scaled = nil
}

// VerbalScaled returns the value of the "verbal_scaled" field in the mutation.
func (m *TestSessionMutation) VerbalScaled() (r int, exists bool) {
	v := m.verbal_scaled
	if v == nil {
		return
	}
	return *v, true
}

// OldVerbalScaled returns the old "verbal_scaled" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldVerbalScaled(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerbalScaled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerbalScaled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerbalScaled: %w", err)
	}
	return oldValue.VerbalScaled, nil
}

// AddVerbalScaled adds i to the "verbal_scaled" field.
func (m *TestSessionMutation) AddVerbalScaled(i int) {
	if m.addverbal_scaled != nil {
		*m.addverbal_scaled += i
	} else {
		m.addverbal_scaled = &i
	}
}

// AddedVerbalScaled returns the value that was added to the "verbal_scaled" field in this mutation.
func (m *TestSessionMutation) AddedVerbalScaled() (r int, exists bool) {
	v := m.addverbal_scaled
	if v == nil {
		return
	}
	return *v, true
}

// ClearVerbalScaled clears the value of the "verbal_scaled" field.
func (m *TestSessionMutation) ClearVerbalScaled() {
	m.verbal_scaled = nil
	m.addverbal_scaled = nil
	m.clearedFields[testsession.FieldVerbalScaled] = struct{}{}
}

// VerbalScaledCleared returns if the "verbal_scaled" field was cleared in this mutation.
func (m *TestSessionMutation) VerbalScaledCleared() bool {
	_, ok := m.clearedFields[testsession.FieldVerbalScaled]
	return ok
}

// ResetVerbalScaled resets all changes to the "verbal_scaled" field.
func (m *TestSessionMutation) ResetVerbalScaled() {
	m.verbal_scaled = nil
	m.addverbal_scaled = nil
	delete(m.clearedFields, testsession.FieldVerbalScaled)
}

// SetVerbalPercentile sets the "verbal_percentile" field.
func (m *TestSessionMutation) SetVerbalPercentile(i int) {
	m.verbal_percentile = &i
	m.addverbal_percentile = nil
}

// VerbalPercentile returns the value of the "verbal_percentile" field in the mutation.
func (m *TestSessionMutation) VerbalPercentile() (r int, exists bool) {
	v := m.verbal_percentile
	if v == nil {
		return
	}
	return *v, true
}

// OldVerbalPercentile returns the old "verbal_percentile" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldVerbalPercentile(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerbalPercentile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerbalPercentile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerbalPercentile: %w", err)
	}
	return oldValue.VerbalPercentile, nil
}

// AddVerbalPercentile adds i to the "verbal_percentile" field.
func (m *TestSessionMutation) AddVerbalPercentile(i int) {
	if m.addverbal_percentile != nil {
		*m.addverbal_percentile += i
	} else {
		m.addverbal_percentile = &i
	}
}

// AddedVerbalPercentile returns the value that was added to the "verbal_percentile" field in this mutation.
func (m *TestSessionMutation) AddedVerbalPercentile() (r int, exists bool) {
	v := m.addverbal_percentile
	if v == nil {
		return
	}
	return *v, true
}

// ClearVerbalPercentile clears the value of the "verbal_percentile" field.
func (m *TestSessionMutation) ClearVerbalPercentile() {
	m.verbal_percentile = nil
	m.addverbal_percentile = nil
	m.clearedFields[testsession.FieldVerbalPercentile] = struct{}{}
}

// VerbalPercentileCleared returns if the "verbal_percentile" field was cleared in this mutation.
func (m *TestSessionMutation) VerbalPercentileCleared() bool {
	_, ok := m.clearedFields[testsession.FieldVerbalPercentile]
	return ok
}

// ResetVerbalPercentile resets all changes to the "verbal_percentile" field.
func (m *TestSessionMutation) ResetVerbalPercentile() {
	m.verbal_percentile = nil
	m.addverbal_percentile = nil
	delete(m.clearedFields, testsession.FieldVerbalPercentile)
}

// SetQuantitativeRaw sets the "quantitative_raw" field.
func (m *TestSessionMutation) SetQuantitativeRaw(f float64) {
	m.quantitative_raw = &f
	m.addquantitative_raw = nil
}

// QuantitativeRaw returns the value of the "quantitative_raw" field in the mutation.
func (m *TestSessionMutation) QuantitativeRaw() (r float64, exists bool) {
	v := m.quantitative_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantitativeRaw returns the old "quantitative_raw" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldQuantitativeRaw(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantitativeRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantitativeRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantitativeRaw: %w", err)
	}
	return oldValue.QuantitativeRaw, nil
}

// AddQuantitativeRaw adds f to the "quantitative_raw" field.
func (m *TestSessionMutation) AddQuantitativeRaw(f float64) {
	if m.addquantitative_raw != nil {
		*m.addquantitative_raw += f
	} else {
		m.addquantitative_raw = &f
	}
}

// AddedQuantitativeRaw returns the value that was added to the "quantitative_raw" field in this mutation.
func (m *TestSessionMutation) AddedQuantitativeRaw() (r float64, exists bool) {
	v := m.addquantitative_raw
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantitativeRaw clears the value of the "quantitative_raw" field.
func (m *TestSessionMutation) ClearQuantitativeRaw() {
	m.quantitative_raw = nil
	m.addquantitative_raw = nil
	m.clearedFields[testsession.FieldQuantitativeRaw] = struct{}{}
}

// QuantitativeRawCleared returns if the "quantitative_raw" field was cleared in this mutation.
func (m *TestSessionMutation) QuantitativeRawCleared() bool {
	_, ok := m.clearedFields[testsession.FieldQuantitativeRaw]
	return ok
}

// ResetQuantitativeRaw resets all changes to the "quantitative_raw" field.
func (m *TestSessionMutation) ResetQuantitativeRaw() {
	m.quantitative_raw = nil
	m.addquantitative_raw = nil
	delete(m.clearedFields, testsession.FieldQuantitativeRaw)
}

// SetQuantitativeScaled sets the "quantitative_scaled" field.
func (m *TestSessionMutation) SetQuantitativeScaled(i int) {
	m.quantitative_scaled = &i
	m.addquantitative_scaled = nil
}

// QuantitativeScaled returns the value of the "quantitative_scaled" field in the mutation.
func (m *TestSessionMutation) QuantitativeScaled() (r int, exists bool) {
	v := m.quantitative_scaled
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantitativeScaled returns the old "quantitative_scaled" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldQuantitativeScaled(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantitativeScaled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantitativeScaled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantitativeScaled: %w", err)
	}
	return oldValue.QuantitativeScaled, nil
}

// AddQuantitativeScaled adds i to the "quantitative_scaled" field.
func (m *TestSessionMutation) AddQuantitativeScaled(i int) {
	if m.addquantitative_scaled != nil {
		*m.addquantitative_scaled += i
	} else {
		m.addquantitative_scaled = &i
	}
}

// AddedQuantitativeScaled returns the value that was added to the "quantitative_scaled" field in this mutation.
func (m *TestSessionMutation) AddedQuantitativeScaled() (r int, exists bool) {
	v := m.addquantitative_scaled
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantitativeScaled clears the value of the "quantitative_scaled" field.
func (m *TestSessionMutation) ClearQuantitativeScaled() {
	m.quantitative_scaled = nil
	m.addquantitative_scaled = nil
	m.clearedFields[testsession.FieldQuantitativeScaled] = struct{}{}
}

// QuantitativeScaledCleared returns if the "quantitative_scaled" field was cleared in this mutation.
func (m *TestSessionMutation) QuantitativeScaledCleared() bool {
	_, ok := m.clearedFields[testsession.FieldQuantitativeScaled]
	return ok
}

// ResetQuantitativeScaled resets all changes to the "quantitative_scaled" field.
func (m *TestSessionMutation) ResetQuantitativeScaled() {
	m.quantitative_scaled = nil
	m.addquantitative_scaled = nil
	delete(m.clearedFields, testsession.FieldQuantitativeScaled)
}

// SetQuantitativePercentile sets the "quantitative_percentile" field.
func (m *TestSessionMutation) SetQuantitativePercentile(i int) {
	m.quantitative_percentile = &i
	m.addquantitative_percentile = nil
}

// QuantitativePercentile returns the value of the "quantitative_percentile" field in the mutation.
func (m *TestSessionMutation) QuantitativePercentile() (r int, exists bool) {
	v := m.quantitative_percentile
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantitativePercentile returns the old "quantitative_percentile" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldQuantitativePercentile(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantitativePercentile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantitativePercentile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantitativePercentile: %w", err)
	}
	return oldValue.QuantitativePercentile, nil
}

// AddQuantitativePercentile adds i to the "quantitative_percentile" field.
func (m *TestSessionMutation) AddQuantitativePercentile(i int) {
	if m.addquantitative_percentile != nil {
		*m.addquantitative_percentile += i
	} else {
		m.addquantitative_percentile = &i
	}
}

// AddedQuantitativePercentile returns the value that was added to the "quantitative_percentile" field in this mutation.
func (m *TestSessionMutation) AddedQuantitativePercentile() (r int, exists bool) {
	v := m.addquantitative_percentile
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuantitativePercentile clears the value of the "quantitative_percentile" field.
func (m *TestSessionMutation) ClearQuantitativePercentile() {
	m.quantitative_percentile = nil
	m.addquantitative_percentile = nil
	m.clearedFields[testsession.FieldQuantitativePercentile] = struct{}{}
}

// QuantitativePercentileCleared returns if the "quantitative_percentile" field was cleared in this mutation.
func (m *TestSessionMutation) QuantitativePercentileCleared() bool {
	_, ok := m.clearedFields[testsession.FieldQuantitativePercentile]
	return ok
}

// ResetQuantitativePercentile resets all changes to the "quantitative_percentile" field.
func (m *TestSessionMutation) ResetQuantitativePercentile() {
	m.quantitative_percentile = nil
	m.addquantitative_percentile = nil
	delete(m.clearedFields, testsession.FieldQuantitativePercentile)
}

// SetReadingRaw sets the "reading_raw" field.
func (m *TestSessionMutation) SetReadingRaw(f float64) {
	m.reading_raw = &f
	m.addreading_raw = nil
}

// ReadingRaw returns the value of the "reading_raw" field in the mutation.
func (m *TestSessionMutation) ReadingRaw() (r float64, exists bool) {
	v := m.reading_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldReadingRaw returns the old "reading_raw" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldReadingRaw(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadingRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadingRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadingRaw: %w", err)
	}
	return oldValue.ReadingRaw, nil
}

// AddReadingRaw adds f to the "reading_raw" field.
func (m *TestSessionMutation) AddReadingRaw(f float64) {
	if m.addreading_raw != nil {
		*m.addreading_raw += f
	} else {
		m.addreading_raw = &f
	}
}

// AddedReadingRaw returns the value that was added to the "reading_raw" field in this mutation.
func (m *TestSessionMutation) AddedReadingRaw() (r float64, exists bool) {
	v := m.addreading_raw
	if v == nil {
		return
	}
	return *v, true
}

// ClearReadingRaw clears the value of the "reading_raw" field.
func (m *TestSessionMutation) ClearReadingRaw() {
	m.reading_raw = nil
	m.addreading_raw = nil
	m.clearedFields[testsession.FieldReadingRaw] = struct{}{}
}

// ReadingRawCleared returns if the "reading_raw" field was cleared in this mutation.
func (m *TestSessionMutation) ReadingRawCleared() bool {
	_, ok := m.clearedFields[testsession.FieldReadingRaw]
	return ok
}

// ResetReadingRaw resets all changes to the "reading_raw" field.
func (m *TestSessionMutation) ResetReadingRaw() {
	m.reading_raw = nil
	m.addreading_raw = nil
	delete(m.clearedFields, testsession.FieldReadingRaw)
}

// SetReadingScaled sets the "reading_scaled" field.
func (m *TestSessionMutation) SetReadingScaled(i int) {
	m.reading_scaled = &i
	m.addreading_scaled = nil
}

// ReadingScaled returns the value of the "reading_scaled" field in the mutation.
func (m *TestSessionMutation) ReadingScaled() (r int, exists bool) {
	v := m.reading_scaled
	if v == nil {
		return
	}
	return *v, true
}

// OldReadingScaled returns the old "reading_scaled" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldReadingScaled(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadingScaled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadingScaled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadingScaled: %w", err)
	}
	return oldValue.ReadingScaled, nil
}

// AddReadingScaled adds i to the "reading_scaled" field.
func (m *TestSessionMutation) AddReadingScaled(i int) {
	if m.addreading_scaled != nil {
		*m.addreading_scaled += i
	} else {
		m.addreading_scaled = &i
	}
}

// AddedReadingScaled returns the value that was added to the "reading_scaled" field in this mutation.
func (m *TestSessionMutation) AddedReadingScaled() (r int, exists bool) {
	v := m.addreading_scaled
	if v == nil {
		return
	}
	return *v, true
}

// ClearReadingScaled clears the value of the "reading_scaled" field.
func (m *TestSessionMutation) ClearReadingScaled() {
	m.reading_scaled = nil
	m.addreading_scaled = nil
	m.clearedFields[testsession.FieldReadingScaled] = struct{}{}
}

// ReadingScaledCleared returns if the "reading_scaled" field was cleared in this mutation.
func (m *TestSessionMutation) ReadingScaledCleared() bool {
	_, ok := m.clearedFields[testsession.FieldReadingScaled]
	return ok
}

// ResetReadingScaled resets all changes to the "reading_scaled" field.
func (m *TestSessionMutation) ResetReadingScaled() {
	m.reading_scaled = nil
	m.addreading_scaled = nil
	delete(m.clearedFields, testsession.FieldReadingScaled)
}

// SetReadingPercentile sets the "reading_percentile" field.
func (m *TestSessionMutation) SetReadingPercentile(i int) {
	m.reading_percentile = &i
	m.addreading_percentile = nil
}

// ReadingPercentile returns the value of the "reading_percentile" field in the mutation.
func (m *TestSessionMutation) ReadingPercentile() (r int, exists bool) {
	v := m.reading_percentile
	if v == nil {
		return
	}
	return *v, true
}

// OldReadingPercentile returns the old "reading_percentile" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldReadingPercentile(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReadingPercentile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReadingPercentile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReadingPercentile: %w", err)
	}
	return oldValue.ReadingPercentile, nil
}

// AddReadingPercentile adds i to the "reading_percentile" field.
func (m *TestSessionMutation) AddReadingPercentile(i int) {
	if m.addreading_percentile != nil {
		*m.addreading_percentile += i
	} else {
		m.addreading_percentile = &i
	}
}

// AddedReadingPercentile returns the value that was added to the "reading_percentile" field in this mutation.
func (m *TestSessionMutation) AddedReadingPercentile() (r int, exists bool) {
	v := m.addreading_percentile
	if v == nil {
		return
	}
	return *v, true
}

// ClearReadingPercentile clears the value of the "reading_percentile" field.
func (m *TestSessionMutation) ClearReadingPercentile() {
	m.reading_percentile = nil
	m.addreading_percentile = nil
	m.clearedFields[testsession.FieldReadingPercentile] = struct{}{}
}

// ReadingPercentileCleared returns if the "reading_percentile" field was cleared in this mutation.
func (m *TestSessionMutation) ReadingPercentileCleared() bool {
	_, ok := m.clearedFields[testsession.FieldReadingPercentile]
	return ok
}

// ResetReadingPercentile resets all changes to the "reading_percentile" field.
func (m *TestSessionMutation) ResetReadingPercentile() {
	m.reading_percentile = nil
	m.addreading_percentile = nil
	delete(m.clearedFields, testsession.FieldReadingPercentile)
}

// SetTotalScaled sets the "total_scaled" field.
func (m *TestSessionMutation) SetTotalScaled(i int) {
	m.total_scaled = &i
	m.addtotal_scaled = nil
}

// TotalScaled returns the value of the "total_scaled" field in the mutation.
func (m *TestSessionMutation) TotalScaled() (r int, exists bool) {
	v := m.total_scaled
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalScaled returns the old "total_scaled" field's value of the TestSession entity.
// If the TestSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSessionMutation) OldTotalScaled(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalScaled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalScaled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalScaled: %w", err)
	}
	return oldValue.TotalScaled, nil
}

// AddTotalScaled adds i to the "total_scaled" field.
func (m *TestSessionMutation) AddTotalScaled(i int) {
	if m.addtotal_scaled != nil {
		*m.addtotal_scaled += i
	} else {
		m.addtotal_scaled = &i
	}
}

// AddedTotalScaled returns the value that was added to the "total_scaled" field in this mutation.
func (m *TestSessionMutation) AddedTotalScaled() (r int, exists bool) {
	v := m.addtotal_scaled
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalScaled clears the value of the "total_scaled" field.
func (m *TestSessionMutation) ClearTotalScaled() {
	m.total_scaled = nil
	m.addtotal_scaled = nil
	m.clearedFields[testsession.FieldTotalScaled] = struct{}{}
}

// TotalScaledCleared returns if the "total_scaled" field was cleared in this mutation.
func (m *TestSessionMutation) TotalScaledCleared() bool {
	_, ok := m.clearedFields[testsession.FieldTotalScaled]
	return ok
}

// ResetTotalScaled resets all changes to the "total_scaled" field.
func (m *TestSessionMutation) ResetTotalScaled() {
	m.total_scaled = nil
	m.addtotal_scaled = nil
	delete(m.clearedFields, testsession.FieldTotalScaled)
}

// Where appends a list predicates to the TestSessionMutation builder.
func (m *TestSessionMutation) Where(ps ...predicate.TestSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestSession).
func (m *TestSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestSessionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.student_id != nil {
		fields = append(fields, testsession.FieldStudentID)
	}
	if m.level != nil {
		fields = append(fields, testsession.FieldLevel)
	}
	if m.grade != nil {
		fields = append(fields, testsession.FieldGrade)
	}
	if m.mode != nil {
		fields = append(fields, testsession.FieldMode)
	}
	if m.started_at != nil {
		fields = append(fields, testsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, testsession.FieldCompletedAt)
	}
	if m.verbal_raw != nil {
		fields = append(fields, testsession.FieldVerbalRaw)
	}
	if m.verbal_scaled != nil {
		fields = append(fields, testsession.FieldVerbalScaled)
	}
	if m.verbal_percentile != nil {
		fields = append(fields, testsession.FieldVerbalPercentile)
	}
	if m.quantitative_raw != nil {
		fields = append(fields, testsession.FieldQuantitativeRaw)
	}
	if m.quantitative_scaled != nil {
		fields = append(fields, testsession.FieldQuantitativeScaled)
	}
	if m.quantitative_percentile != nil {
		fields = append(fields, testsession.FieldQuantitativePercentile)
	}
	if m.reading_raw != nil {
		fields = append(fields, testsession.FieldReadingRaw)
	}
	if m.reading_scaled != nil {
		fields = append(fields, testsession.FieldReadingScaled)
	}
	if m.reading_percentile != nil {
		fields = append(fields, testsession.FieldReadingPercentile)
	}
	if m.total_scaled != nil {
		fields = append(fields, testsession.FieldTotalScaled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testsession.FieldStudentID:
		return m.StudentID()
	case testsession.FieldLevel:
		return m.Level()
	case testsession.FieldGrade:
		return m.Grade()
	case testsession.FieldMode:
		return m.Mode()
	case testsession.FieldStartedAt:
		return m.StartedAt()
	case testsession.FieldCompletedAt:
		return m.CompletedAt()
	case testsession.FieldVerbalRaw:
		return m.VerbalRaw()
	case testsession.FieldVerbalScaled:
		return m.VerbalScaled()
	case testsession.FieldVerbalPercentile:
		return m.VerbalPercentile()
	case testsession.FieldQuantitativeRaw:
		return m.QuantitativeRaw()
	case testsession.FieldQuantitativeScaled:
		return m.QuantitativeScaled()
	case testsession.FieldQuantitativePercentile:
		return m.QuantitativePercentile()
	case testsession.FieldReadingRaw:
		return m.ReadingRaw()
	case testsession.FieldReadingScaled:
		return m.ReadingScaled()
	case testsession.FieldReadingPercentile:
		return m.ReadingPercentile()
	case testsession.FieldTotalScaled:
		return m.TotalScaled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testsession.FieldStudentID:
		return m.OldStudentID(ctx)
	case testsession.FieldLevel:
		return m.OldLevel(ctx)
	case testsession.FieldGrade:
		return m.OldGrade(ctx)
	case testsession.FieldMode:
		return m.OldMode(ctx)
	case testsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case testsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case testsession.FieldVerbalRaw:
		return m.OldVerbalRaw(ctx)
	case testsession.FieldVerbalScaled:
		return m.OldVerbalScaled(ctx)
	case testsession.FieldVerbalPercentile:
		return m.OldVerbalPercentile(ctx)
	case testsession.FieldQuantitativeRaw:
		return m.OldQuantitativeRaw(ctx)
	case testsession.FieldQuantitativeScaled:
		return m.OldQuantitativeScaled(ctx)
	case testsession.FieldQuantitativePercentile:
		return m.OldQuantitativePercentile(ctx)
	case testsession.FieldReadingRaw:
		return m.OldReadingRaw(ctx)
	case testsession.FieldReadingScaled:
		return m.OldReadingScaled(ctx)
	case testsession.FieldReadingPercentile:
		return m.OldReadingPercentile(ctx)
	case testsession.FieldTotalScaled:
		return m.OldTotalScaled(ctx)
	}
	return nil, fmt.Errorf("unknown TestSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testsession.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case testsession.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case testsession.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case testsession.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case testsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case testsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case testsession.FieldVerbalRaw:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerbalRaw(v)
		return nil
	case testsession.FieldVerbalScaled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerbalScaled(v)
		return nil
	case testsession.FieldVerbalPercentile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerbalPercentile(v)
		return nil
	case testsession.FieldQuantitativeRaw:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantitativeRaw(v)
		return nil
	case testsession.FieldQuantitativeScaled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantitativeScaled(v)
		return nil
	case testsession.FieldQuantitativePercentile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantitativePercentile(v)
		return nil
	case testsession.FieldReadingRaw:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadingRaw(v)
		return nil
	case testsession.FieldReadingScaled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadingScaled(v)
		return nil
	case testsession.FieldReadingPercentile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReadingPercentile(v)
		return nil
	case testsession.FieldTotalScaled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalScaled(v)
		return nil
	}
	return fmt.Errorf("unknown TestSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestSessionMutation) AddedFields() []string {
	var fields []string
	if m.addstudent_id != nil {
		fields = append(fields, testsession.FieldStudentID)
	}
	if m.addgrade != nil {
		fields = append(fields, testsession.FieldGrade)
	}
	if m.addverbal_raw != nil {
		fields = append(fields, testsession.FieldVerbalRaw)
	}
	if m.addverbal_scaled != nil {
		fields = append(fields, testsession.FieldVerbalScaled)
	}
	if m.addverbal_percentile != nil {
		fields = append(fields, testsession.FieldVerbalPercentile)
	}
	if m.addquantitative_raw != nil {
		fields = append(fields, testsession.FieldQuantitativeRaw)
	}
	if m.addquantitative_scaled != nil {
		fields = append(fields, testsession.FieldQuantitativeScaled)
	}
	if m.addquantitative_percentile != nil {
		fields = append(fields, testsession.FieldQuantitativePercentile)
	}
	if m.addreading_raw != nil {
		fields = append(fields, testsession.FieldReadingRaw)
	}
	if m.addreading_scaled != nil {
		fields = append(fields, testsession.FieldReadingScaled)
	}
	if m.addreading_percentile != nil {
		fields = append(fields, testsession.FieldReadingPercentile)
	}
	if m.addtotal_scaled != nil {
		fields = append(fields, testsession.FieldTotalScaled)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testsession.FieldStudentID:
		return m.AddedStudentID()
	case testsession.FieldGrade:
		return m.AddedGrade()
	case testsession.FieldVerbalRaw:
		return m.AddedVerbalRaw()
	case testsession.FieldVerbalScaled:
		return m.AddedVerbalScaled()
	case testsession.FieldVerbalPercentile:
		return m.AddedVerbalPercentile()
	case testsession.FieldQuantitativeRaw:
		return m.AddedQuantitativeRaw()
	case testsession.FieldQuantitativeScaled:
		return m.AddedQuantitativeScaled()
	case testsession.FieldQuantitativePercentile:
		return m.AddedQuantitativePercentile()
	case testsession.FieldReadingRaw:
		return m.AddedReadingRaw()
	case testsession.FieldReadingScaled:
		return m.AddedReadingScaled()
	case testsession.FieldReadingPercentile:
		return m.AddedReadingPercentile()
	case testsession.FieldTotalScaled:
		return m.AddedTotalScaled()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testsession.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	case testsession.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrade(v)
		return nil
	case testsession.FieldVerbalRaw:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVerbalRaw(v)
		return nil
	case testsession.FieldVerbalScaled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVerbalScaled(v)
		return nil
	case testsession.FieldVerbalPercentile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVerbalPercentile(v)
		return nil
	case testsession.FieldQuantitativeRaw:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantitativeRaw(v)
		return nil
	case testsession.FieldQuantitativeScaled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantitativeScaled(v)
		return nil
	case testsession.FieldQuantitativePercentile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantitativePercentile(v)
		return nil
	case testsession.FieldReadingRaw:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadingRaw(v)
		return nil
	case testsession.FieldReadingScaled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadingScaled(v)
		return nil
	case testsession.FieldReadingPercentile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReadingPercentile(v)
		return nil
	case testsession.FieldTotalScaled:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalScaled(v)
		return nil
	}
	return fmt.Errorf("unknown TestSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testsession.FieldCompletedAt) {
		fields = append(fields, testsession.FieldCompletedAt)
	}
	if m.FieldCleared(testsession.FieldVerbalRaw) {
		fields = append(fields, testsession.FieldVerbalRaw)
	}
	if m.FieldCleared(testsession.FieldVerbalScaled) {
		fields = append(fields, testsession.FieldVerbalScaled)
	}
	if m.FieldCleared(testsession.FieldVerbalPercentile) {
		fields = append(fields, testsession.FieldVerbalPercentile)
	}
	if m.FieldCleared(testsession.FieldQuantitativeRaw) {
		fields = append(fields, testsession.FieldQuantitativeRaw)
	}
	if m.FieldCleared(testsession.FieldQuantitativeScaled) {
		fields = append(fields, testsession.FieldQuantitativeScaled)
	}
	if m.FieldCleared(testsession.FieldQuantitativePercentile) {
		fields = append(fields, testsession.FieldQuantitativePercentile)
	}
	if m.FieldCleared(testsession.FieldReadingRaw) {
		fields = append(fields, testsession.FieldReadingRaw)
	}
	if m.FieldCleared(testsession.FieldReadingScaled) {
		fields = append(fields, testsession.FieldReadingScaled)
	}
	if m.FieldCleared(testsession.FieldReadingPercentile) {
		fields = append(fields, testsession.FieldReadingPercentile)
	}
	if m.FieldCleared(testsession.FieldTotalScaled) {
		fields = append(fields, testsession.FieldTotalScaled)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestSessionMutation) ClearField(name string) error {
	switch name {
	case testsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case testsession.FieldVerbalRaw:
		m.ClearVerbalRaw()
		return nil
	case testsession.FieldVerbalScaled:
		m.ClearVerbalScaled()
		return nil
	case testsession.FieldVerbalPercentile:
		m.ClearVerbalPercentile()
		return nil
	case testsession.FieldQuantitativeRaw:
		m.ClearQuantitativeRaw()
		return nil
	case testsession.FieldQuantitativeScaled:
		m.ClearQuantitativeScaled()
		return nil
	case testsession.FieldQuantitativePercentile:
		m.ClearQuantitativePercentile()
		return nil
	case testsession.FieldReadingRaw:
		m.ClearReadingRaw()
		return nil
	case testsession.FieldReadingScaled:
		m.ClearReadingScaled()
		return nil
	case testsession.FieldReadingPercentile:
		m.ClearReadingPercentile()
		return nil
	case testsession.FieldTotalScaled:
		m.ClearTotalScaled()
		return nil
	}
	return fmt.Errorf("unknown TestSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestSessionMutation) ResetField(name string) error {
	switch name {
	case testsession.FieldStudentID:
		m.ResetStudentID()
		return nil
	case testsession.FieldLevel:
		m.ResetLevel()
		return nil
	case testsession.FieldGrade:
		m.ResetGrade()
		return nil
	case testsession.FieldMode:
		m.ResetMode()
		return nil
	case testsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case testsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case testsession.FieldVerbalRaw:
		m.ResetVerbalRaw()
		return nil
	case testsession.FieldVerbalScaled:
		m.ResetVerbalScaled()
		return nil
	case testsession.FieldVerbalPercentile:
		m.ResetVerbalPercentile()
		return nil
	case testsession.FieldQuantitativeRaw:
		m.ResetQuantitativeRaw()
		return nil
	case testsession.FieldQuantitativeScaled:
		m.ResetQuantitativeScaled()
		return nil
	case testsession.FieldQuantitativePercentile:
		m.ResetQuantitativePercentile()
		return nil
	case testsession.FieldReadingRaw:
		m.ResetReadingRaw()
		return nil
	case testsession.FieldReadingScaled:
		m.ResetReadingScaled()
		return nil
	case testsession.FieldReadingPercentile:
		m.ResetReadingPercentile()
		return nil
	case testsession.FieldTotalScaled:
		m.ResetTotalScaled()
		return nil
	}
	return fmt.Errorf("unknown TestSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TestSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TestSession edge %s", name)
}

// TopicMasteryMutation represents an operation that mutates the TopicMastery nodes in the graph.
type TopicMasteryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	student_id           *int
	addstudent_id        *int
	topic_tag            *string
	difficulty_level     *float64
	adddifficulty_level  *float64
	total_attempted      *int
	addtotal_attempted   *int
	total_correct        *int
	addtotal_correct     *int
	last_50_attempted    *int
	addlast_50_attempted *int
	last_50_correct      *int
	addlast_50_correct   *int
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*TopicMastery, error)
	predicates           []predicate.TopicMastery
}

var _ ent.Mutation = (*TopicMasteryMutation)(nil)

// topicmasteryOption allows management of the mutation configuration using functional options.
type topicmasteryOption func(*TopicMasteryMutation)

// newTopicMasteryMutation creates new mutation for the TopicMastery entity.
func newTopicMasteryMutation(c config, op Op, opts ...topicmasteryOption) *TopicMasteryMutation {
	m := &TopicMasteryMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicMastery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicMasteryID sets the ID field of the mutation.
func withTopicMasteryID(id int) topicmasteryOption {
	return func(m *TopicMasteryMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicMastery
		)
		m.oldValue = func(ctx context.Context) (*TopicMastery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicMastery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicMastery sets the old TopicMastery of the mutation.
func withTopicMastery(node *TopicMastery) topicmasteryOption {
	return func(m *TopicMasteryMutation) {
		m.oldValue = func(context.Context) (*TopicMastery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMasteryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMasteryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMasteryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMasteryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicMastery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *TopicMasteryMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *TopicMasteryMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *TopicMasteryMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *TopicMasteryMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *TopicMasteryMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetTopicTag sets the "topic_tag" field.
func (m *TopicMasteryMutation) SetTopicTag(s string) {
	m.topic_tag = &s
}

// TopicTag returns the value of the "topic_tag" field in the mutation.
func (m *TopicMasteryMutation) TopicTag() (r string, exists bool) {
	v := m.topic_tag
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicTag returns the old "topic_tag" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldTopicTag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicTag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicTag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicTag: %w", err)
	}
	return oldValue.TopicTag, nil
}

// ResetTopicTag resets all changes to the "topic_tag" field.
func (m *TopicMasteryMutation) ResetTopicTag() {
	m.topic_tag = nil
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (m *TopicMasteryMutation) SetDifficultyLevel(f float64) {
	m.difficulty_level = &f
	m.adddifficulty_level = nil
}

// DifficultyLevel returns the value of the "difficulty_level" field in the mutation.
func (m *TopicMasteryMutation) DifficultyLevel() (r float64, exists bool) {
	v := m.difficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLevel returns the old "difficulty_level" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldDifficultyLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLevel: %w", err)
	}
	return oldValue.DifficultyLevel, nil
}

// AddDifficultyLevel adds f to the "difficulty_level" field.
func (m *TopicMasteryMutation) AddDifficultyLevel(f float64) {
	if m.adddifficulty_level != nil {
		*m.adddifficulty_level += f
	} else {
		m.adddifficulty_level = &f
	}
}

// AddedDifficultyLevel returns the value that was added to the "difficulty_level" field in this mutation.
func (m *TopicMasteryMutation) AddedDifficultyLevel() (r float64, exists bool) {
	v := m.adddifficulty_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyLevel resets all changes to the "difficulty_level" field.
func (m *TopicMasteryMutation) ResetDifficultyLevel() {
	m.difficulty_level = nil
	m.adddifficulty_level = nil
}

// SetTotalAttempted sets the "total_attempted" field.
func (m *TopicMasteryMutation) SetTotalAttempted(i int) {
	m.total_attempted = &i
	m.addtotal_attempted = nil
}

// TotalAttempted returns the value of the "total_attempted" field in the mutation.
func (m *TopicMasteryMutation) TotalAttempted() (r int, exists bool) {
	v := m.total_attempted
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAttempted returns the old "total_attempted" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldTotalAttempted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAttempted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAttempted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAttempted: %w", err)
	}
	return oldValue.TotalAttempted, nil
}

// AddTotalAttempted adds i to the "total_attempted" field.
func (m *TopicMasteryMutation) AddTotalAttempted(i int) {
	if m.addtotal_attempted != nil {
		*m.addtotal_attempted += i
	} else {
		m.addtotal_attempted = &i
	}
}

// AddedTotalAttempted returns the value that was added to the "total_attempted" field in this mutation.
func (m *TopicMasteryMutation) AddedTotalAttempted() (r int, exists bool) {
	v := m.addtotal_attempted
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAttempted resets all changes to the "total_attempted" field.
func (m *TopicMasteryMutation) ResetTotalAttempted() {
	m.total_attempted = nil
	m.addtotal_attempted = nil
}

// SetTotalCorrect sets the "total_correct" field.
func (m *TopicMasteryMutation) SetTotalCorrect(i int) {
	m.total_correct = &i
	m.addtotal_correct = nil
}

// TotalCorrect returns the value of the "total_correct" field in the mutation.
func (m *TopicMasteryMutation) TotalCorrect() (r int, exists bool) {
	v := m.total_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCorrect returns the old "total_correct" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldTotalCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCorrect: %w", err)
	}
	return oldValue.TotalCorrect, nil
}

// AddTotalCorrect adds i to the "total_correct" field.
func (m *TopicMasteryMutation) AddTotalCorrect(i int) {
	if m.addtotal_correct != nil {
		*m.addtotal_correct += i
	} else {
		m.addtotal_correct = &i
	}
}

// AddedTotalCorrect returns the value that was added to the "total_correct" field in this mutation.
func (m *TopicMasteryMutation) AddedTotalCorrect() (r int, exists bool) {
	v := m.addtotal_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalCorrect resets all changes to the "total_correct" field.
func (m *TopicMasteryMutation) ResetTotalCorrect() {
	m.total_correct = nil
	m.addtotal_correct = nil
}

// SetLast50Attempted sets the "last_50_attempted" field.
func (m *TopicMasteryMutation) SetLast50Attempted(i int) {
	m.last_50_attempted = &i
	m.addlast_50_attempted = nil
}

// Last50Attempted returns the value of the "last_50_attempted" field in the mutation.
func (m *TopicMasteryMutation) Last50Attempted() (r int, exists bool) {
	v := m.last_50_attempted
	if v == nil {
		return
	}
	return *v, true
}

// OldLast50Attempted returns the old "last_50_attempted" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldLast50Attempted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLast50Attempted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLast50Attempted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLast50Attempted: %w", err)
	}
	return oldValue.Last50Attempted, nil
}

// AddLast50Attempted adds i to the "last_50_attempted" field.
func (m *TopicMasteryMutation) AddLast50Attempted(i int) {
	if m.addlast_50_attempted != nil {
		*m.addlast_50_attempted += i
	} else {
		m.addlast_50_attempted = &i
	}
}

// AddedLast50Attempted returns the value that was added to the "last_50_attempted" field in this mutation.
func (m *TopicMasteryMutation) AddedLast50Attempted() (r int, exists bool) {
	v := m.addlast_50_attempted
	if v == nil {
		return
	}
	return *v, true
}

// ResetLast50Attempted resets all changes to the "last_50_attempted" field.
func (m *TopicMasteryMutation) ResetLast50Attempted() {
	m.last_50_attempted = nil
	m.addlast_50_attempted = nil
}

// SetLast50Correct sets the "last_50_correct" field.
func (m *TopicMasteryMutation) SetLast50Correct(i int) {
	m.last_50_correct = &i
	m.addlast_50_correct = nil
}

// Last50Correct returns the value of the "last_50_correct" field in the mutation.
func (m *TopicMasteryMutation) Last50Correct() (r int, exists bool) {
	v := m.last_50_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldLast50Correct returns the old "last_50_correct" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldLast50Correct(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLast50Correct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLast50Correct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLast50Correct: %w", err)
	}
	return oldValue.Last50Correct, nil
}

// AddLast50Correct adds i to the "last_50_correct" field.
func (m *TopicMasteryMutation) AddLast50Correct(i int) {
	if m.addlast_50_correct != nil {
		*m.addlast_50_correct += i
	} else {
		m.addlast_50_correct = &i
	}
}

// AddedLast50Correct returns the value that was added to the "last_50_correct" field in this mutation.
func (m *TopicMasteryMutation) AddedLast50Correct() (r int, exists bool) {
	v := m.addlast_50_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetLast50Correct resets all changes to the "last_50_correct" field.
func (m *TopicMasteryMutation) ResetLast50Correct() {
	m.last_50_correct = nil
	m.addlast_50_correct = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TopicMasteryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TopicMasteryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TopicMastery entity.
// If the TopicMastery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMasteryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TopicMasteryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TopicMasteryMutation builder.
func (m *TopicMasteryMutation) Where(ps ...predicate.TopicMastery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMasteryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMasteryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicMastery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMasteryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMasteryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicMastery).
func (m *TopicMasteryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMasteryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.student_id != nil {
		fields = append(fields, topicmastery.FieldStudentID)
	}
	if m.topic_tag != nil {
		fields = append(fields, topicmastery.FieldTopicTag)
	}
	if m.difficulty_level != nil {
		fields = append(fields, topicmastery.FieldDifficultyLevel)
	}
	if m.total_attempted != nil {
		fields = append(fields, topicmastery.FieldTotalAttempted)
	}
	if m.total_correct != nil {
		fields = append(fields, topicmastery.FieldTotalCorrect)
	}
	if m.last_50_attempted != nil {
		fields = append(fields, topicmastery.FieldLast50Attempted)
	}
	if m.last_50_correct != nil {
		fields = append(fields, topicmastery.FieldLast50Correct)
	}
	if m.updated_at != nil {
		fields = append(fields, topicmastery.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMasteryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicmastery.FieldStudentID:
		return m.StudentID()
	case topicmastery.FieldTopicTag:
		return m.TopicTag()
	case topicmastery.FieldDifficultyLevel:
		return m.DifficultyLevel()
	case topicmastery.FieldTotalAttempted:
		return m.TotalAttempted()
	case topicmastery.FieldTotalCorrect:
		return m.TotalCorrect()
	case topicmastery.FieldLast50Attempted:
		return m.Last50Attempted()
	case topicmastery.FieldLast50Correct:
		return m.Last50Correct()
	case topicmastery.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMasteryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicmastery.FieldStudentID:
		return m.OldStudentID(ctx)
	case topicmastery.FieldTopicTag:
		return m.OldTopicTag(ctx)
	case topicmastery.FieldDifficultyLevel:
		return m.OldDifficultyLevel(ctx)
	case topicmastery.FieldTotalAttempted:
		return m.OldTotalAttempted(ctx)
	case topicmastery.FieldTotalCorrect:
		return m.OldTotalCorrect(ctx)
	case topicmastery.FieldLast50Attempted:
		return m.OldLast50Attempted(ctx)
	case topicmastery.FieldLast50Correct:
		return m.OldLast50Correct(ctx)
	case topicmastery.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicMastery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMasteryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicmastery.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case topicmastery.FieldTopicTag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicTag(v)
		return nil
	case topicmastery.FieldDifficultyLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLevel(v)
		return nil
	case topicmastery.FieldTotalAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAttempted(v)
		return nil
	case topicmastery.FieldTotalCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCorrect(v)
		return nil
	case topicmastery.FieldLast50Attempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLast50Attempted(v)
		return nil
	case topicmastery.FieldLast50Correct:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLast50Correct(v)
		return nil
	case topicmastery.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicMastery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMasteryMutation) AddedFields() []string {
	var fields []string
	if m.addstudent_id != nil {
		fields = append(fields, topicmastery.FieldStudentID)
	}
	if m.adddifficulty_level != nil {
		fields = append(fields, topicmastery.FieldDifficultyLevel)
	}
	if m.addtotal_attempted != nil {
		fields = append(fields, topicmastery.FieldTotalAttempted)
	}
	if m.addtotal_correct != nil {
		fields = append(fields, topicmastery.FieldTotalCorrect)
	}
	if m.addlast_50_attempted != nil {
		fields = append(fields, topicmastery.FieldLast50Attempted)
	}
	if m.addlast_50_correct != nil {
		fields = append(fields, topicmastery.FieldLast50Correct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMasteryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicmastery.FieldStudentID:
		return m.AddedStudentID()
	case topicmastery.FieldDifficultyLevel:
		return m.AddedDifficultyLevel()
	case topicmastery.FieldTotalAttempted:
		return m.AddedTotalAttempted()
	case topicmastery.FieldTotalCorrect:
		return m.AddedTotalCorrect()
	case topicmastery.FieldLast50Attempted:
		return m.AddedLast50Attempted()
	case topicmastery.FieldLast50Correct:
		return m.AddedLast50Correct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMasteryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicmastery.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	case topicmastery.FieldDifficultyLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyLevel(v)
		return nil
	case topicmastery.FieldTotalAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAttempted(v)
		return nil
	case topicmastery.FieldTotalCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCorrect(v)
		return nil
	case topicmastery.FieldLast50Attempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLast50Attempted(v)
		return nil
	case topicmastery.FieldLast50Correct:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLast50Correct(v)
		return nil
	}
	return fmt.Errorf("unknown TopicMastery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMasteryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMasteryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMasteryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TopicMastery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMasteryMutation) ResetField(name string) error {
	switch name {
	case topicmastery.FieldStudentID:
		m.ResetStudentID()
		return nil
	case topicmastery.FieldTopicTag:
		m.ResetTopicTag()
		return nil
	case topicmastery.FieldDifficultyLevel:
		m.ResetDifficultyLevel()
		return nil
	case topicmastery.FieldTotalAttempted:
		m.ResetTotalAttempted()
		return nil
	case topicmastery.FieldTotalCorrect:
		m.ResetTotalCorrect()
		return nil
	case topicmastery.FieldLast50Attempted:
		m.ResetLast50Attempted()
		return nil
	case topicmastery.FieldLast50Correct:
		m.ResetLast50Correct()
		return nil
	case topicmastery.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicMastery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMasteryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMasteryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMasteryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMasteryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMasteryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMasteryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMasteryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicMastery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMasteryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicMastery edge %s", name)
}

// WritingSampleMutation represents an operation that mutates the WritingSample nodes in the graph.
type WritingSampleMutation struct {
	config
	op            Op
	typ           string
	id            *int
	student_id    *int
	addstudent_id *int
	session_id    *int
	addsession_id *int
	prompt        *string
	response      *string
	feedback      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WritingSample, error)
	predicates    []predicate.WritingSample
}

var _ ent.Mutation = (*WritingSampleMutation)(nil)

// writingsampleOption allows management of the mutation configuration using functional options.
type writingsampleOption func(*WritingSampleMutation)

// newWritingSampleMutation creates new mutation for the WritingSample entity.
func newWritingSampleMutation(c config, op Op, opts ...writingsampleOption) *WritingSampleMutation {
	m := &WritingSampleMutation{
		config:        c,
		op:            op,
		typ:           TypeWritingSample,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWritingSampleID sets the ID field of the mutation.
func withWritingSampleID(id int) writingsampleOption {
	return func(m *WritingSampleMutation) {
		var (
			err   error
			once  sync.Once
			value *WritingSample
		)
		m.oldValue = func(ctx context.Context) (*WritingSample, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WritingSample.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWritingSample sets the old WritingSample of the mutation.
func withWritingSample(node *WritingSample) writingsampleOption {
	return func(m *WritingSampleMutation) {
		m.oldValue = func(context.Context) (*WritingSample, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WritingSampleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WritingSampleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WritingSampleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WritingSampleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WritingSample.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *WritingSampleMutation) SetStudentID(i int) {
	m.student_id = &i
	m.addstudent_id = nil
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *WritingSampleMutation) StudentID() (r int, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the WritingSample entity.
// If the WritingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingSampleMutation) OldStudentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// AddStudentID adds i to the "student_id" field.
func (m *WritingSampleMutation) AddStudentID(i int) {
	if m.addstudent_id != nil {
		*m.addstudent_id += i
	} else {
		m.addstudent_id = &i
	}
}

// AddedStudentID returns the value that was added to the "student_id" field in this mutation.
func (m *WritingSampleMutation) AddedStudentID() (r int, exists bool) {
	v := m.addstudent_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *WritingSampleMutation) ResetStudentID() {
	m.student_id = nil
	m.addstudent_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *WritingSampleMutation) SetSessionID(i int) {
	m.session_id = &i
	m.addsession_id = nil
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *WritingSampleMutation) SessionID() (r int, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the WritingSample entity.
// If the WritingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingSampleMutation) OldSessionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// AddSessionID adds i to the "session_id" field.
func (m *WritingSampleMutation) AddSessionID(i int) {
	if m.addsession_id != nil {
		*m.addsession_id += i
	} else {
		m.addsession_id = &i
	}
}

// AddedSessionID returns the value that was added to the "session_id" field in this mutation.
func (m *WritingSampleMutation) AddedSessionID() (r int, exists bool) {
	v := m.addsession_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSessionID clears the value of the "session_id" field.
func (m *WritingSampleMutation) ClearSessionID() {
	m.session_id = nil
	m.addsession_id = nil
	m.clearedFields[writingsample.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *WritingSampleMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[writingsample.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *WritingSampleMutation) ResetSessionID() {
	m.session_id = nil
	m.addsession_id = nil
	delete(m.clearedFields, writingsample.FieldSessionID)
}

// SetPrompt sets the "prompt" field.
func (m *WritingSampleMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *WritingSampleMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the WritingSample entity.
// If the WritingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingSampleMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *WritingSampleMutation) ResetPrompt() {
	m.prompt = nil
}

// SetResponse sets the "response" field.
func (m *WritingSampleMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *WritingSampleMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the WritingSample entity.
// If the WritingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingSampleMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ResetResponse resets all changes to the "response" field.
func (m *WritingSampleMutation) ResetResponse() {
	m.response = nil
}

// SetFeedback sets the "feedback" field.
func (m *WritingSampleMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *WritingSampleMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the WritingSample entity.
// If the WritingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingSampleMutation) OldFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *WritingSampleMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[writingsample.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *WritingSampleMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[writingsample.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *WritingSampleMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, writingsample.FieldFeedback)
}

// SetCreatedAt sets the "created_at" field.
func (m *WritingSampleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WritingSampleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WritingSample entity.
// If the WritingSample object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WritingSampleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WritingSampleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WritingSampleMutation builder.
func (m *WritingSampleMutation) Where(ps ...predicate.WritingSample) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WritingSampleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WritingSampleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WritingSample, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WritingSampleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WritingSampleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WritingSample).
func (m *WritingSampleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WritingSampleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.student_id != nil {
		fields = append(fields, writingsample.FieldStudentID)
	}
	if m.session_id != nil {
		fields = append(fields, writingsample.FieldSessionID)
	}
	if m.prompt != nil {
		fields = append(fields, writingsample.FieldPrompt)
	}
	if m.response != nil {
		fields = append(fields, writingsample.FieldResponse)
	}
	if m.feedback != nil {
		fields = append(fields, writingsample.FieldFeedback)
	}
	if m.created_at != nil {
		fields = append(fields, writingsample.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WritingSampleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case writingsample.FieldStudentID:
		return m.StudentID()
	case writingsample.FieldSessionID:
		return m.SessionID()
	case writingsample.FieldPrompt:
		return m.Prompt()
	case writingsample.FieldResponse:
		return m.Response()
	case writingsample.FieldFeedback:
		return m.Feedback()
	case writingsample.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WritingSampleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case writingsample.FieldStudentID:
		return m.OldStudentID(ctx)
	case writingsample.FieldSessionID:
		return m.OldSessionID(ctx)
	case writingsample.FieldPrompt:
		return m.OldPrompt(ctx)
	case writingsample.FieldResponse:
		return m.OldResponse(ctx)
	case writingsample.FieldFeedback:
		return m.OldFeedback(ctx)
	case writingsample.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WritingSample field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WritingSampleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case writingsample.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case writingsample.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case writingsample.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case writingsample.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case writingsample.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case writingsample.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WritingSample field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WritingSampleMutation) AddedFields() []string {
	var fields []string
	if m.addstudent_id != nil {
		fields = append(fields, writingsample.FieldStudentID)
	}
	if m.addsession_id != nil {
		fields = append(fields, writingsample.FieldSessionID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WritingSampleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case writingsample.FieldStudentID:
		return m.AddedStudentID()
	case writingsample.FieldSessionID:
		return m.AddedSessionID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WritingSampleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case writingsample.FieldStudentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentID(v)
		return nil
	case writingsample.FieldSessionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown WritingSample numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WritingSampleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(writingsample.FieldSessionID) {
		fields = append(fields, writingsample.FieldSessionID)
	}
	if m.FieldCleared(writingsample.FieldFeedback) {
		fields = append(fields, writingsample.FieldFeedback)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WritingSampleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WritingSampleMutation) ClearField(name string) error {
	switch name {
	case writingsample.FieldSessionID:
		m.ClearSessionID()
		return nil
	case writingsample.FieldFeedback:
		m.ClearFeedback()
		return nil
	}
	return fmt.Errorf("unknown WritingSample nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WritingSampleMutation) ResetField(name string) error {
	switch name {
	case writingsample.FieldStudentID:
		m.ResetStudentID()
		return nil
	case writingsample.FieldSessionID:
		m.ResetSessionID()
		return nil
	case writingsample.FieldPrompt:
		m.ResetPrompt()
		return nil
	case writingsample.FieldResponse:
		m.ResetResponse()
		return nil
	case writingsample.FieldFeedback:
		m.ResetFeedback()
		return nil
	case writingsample.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WritingSample field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WritingSampleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WritingSampleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WritingSampleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WritingSampleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WritingSampleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WritingSampleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WritingSampleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WritingSample unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WritingSampleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WritingSample edge %s", name)
}
