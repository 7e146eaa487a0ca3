package leveling

import (
	"context"
	"strings"
	"testing"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
)

type fakeMasteryRepo struct {
	records map[exam.QuestionType]*store.TopicMastery
}

func newFakeMastery() *fakeMasteryRepo {
	return &fakeMasteryRepo{records: make(map[exam.QuestionType]*store.TopicMastery)}
}

func (r *fakeMasteryRepo) Upsert(_ context.Context, m *store.TopicMastery) error {
	cp := *m
	r.records[m.TopicTag] = &cp
	return nil
}

func (r *fakeMasteryRepo) ForTopic(_ context.Context, _ int, topic exam.QuestionType) (*store.TopicMastery, error) {
	m, ok := r.records[topic]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMasteryRepo) All(_ context.Context, _ int) ([]*store.TopicMastery, error) {
	var out []*store.TopicMastery
	for _, m := range r.records {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type fakeAnswerRepo struct {
	byTopic map[exam.QuestionType][]*store.Answer
}

func (r *fakeAnswerRepo) Save(context.Context, *store.Answer) error { return nil }
func (r *fakeAnswerRepo) ForSession(context.Context, int) ([]*store.Answer, error) {
	return nil, nil
}
func (r *fakeAnswerRepo) ForStudentTopic(_ context.Context, _ int, topic exam.QuestionType, limit int) ([]*store.Answer, error) {
	as := r.byTopic[topic]
	if len(as) > limit {
		as = as[:limit]
	}
	return as, nil
}
func (r *fakeAnswerRepo) WrongForStudent(context.Context, int, int) ([]*store.Answer, []*store.Question, error) {
	return nil, nil, nil
}
func (r *fakeAnswerRepo) FrequentlyMissed(context.Context, int, int) ([]store.MissedQuestion, error) {
	return nil, nil
}

type fakeSessionRepo struct {
	sessions []*store.TestSession
}

func (r *fakeSessionRepo) Create(context.Context, *store.TestSession) error { return nil }
func (r *fakeSessionRepo) Update(context.Context, *store.TestSession) error { return nil }
func (r *fakeSessionRepo) ForStudentByMode(_ context.Context, _ int, _ exam.SessionMode, limit int) ([]*store.TestSession, error) {
	ss := r.sessions
	if len(ss) > limit {
		ss = ss[:limit]
	}
	return ss, nil
}

type fakeStudentRepo struct {
	updated *store.Student
}

func (r *fakeStudentRepo) Create(context.Context, string, int, exam.Level) (*store.Student, error) {
	return nil, nil
}
func (r *fakeStudentRepo) Get(context.Context, int) (*store.Student, error)  { return nil, nil }
func (r *fakeStudentRepo) List(context.Context) ([]*store.Student, error)    { return nil, nil }
func (r *fakeStudentRepo) Update(_ context.Context, s *store.Student) error {
	cp := *s
	r.updated = &cp
	return nil
}

type fixture struct {
	engine   *Engine
	mastery  *fakeMasteryRepo
	answers  *fakeAnswerRepo
	sessions *fakeSessionRepo
	students *fakeStudentRepo
}

func newFixture() *fixture {
	f := &fixture{
		mastery:  newFakeMastery(),
		answers:  &fakeAnswerRepo{byTopic: make(map[exam.QuestionType][]*store.Answer)},
		sessions: &fakeSessionRepo{},
		students: &fakeStudentRepo{},
	}
	f.engine = New(f.mastery, f.answers, f.sessions, f.students, exam.DefaultSettings())
	return f
}

func elemStudent(grade int) *store.Student {
	return &store.Student{ID: 1, Name: "Maya", Grade: grade, Level: exam.LevelElementary}
}

func pct(n int) *int { return &n }

func scoredSession(verbal, quant, reading int) *store.TestSession {
	return &store.TestSession{
		VerbalPercentile:       pct(verbal),
		QuantitativePercentile: pct(quant),
		ReadingPercentile:      pct(reading),
	}
}

func answerBatch(qtype exam.QuestionType, correct, total int) ([]*store.Answer, []*store.Question) {
	var answers []*store.Answer
	var questions []*store.Question
	for i := 0; i < total; i++ {
		qid := i + 1
		questions = append(questions, &store.Question{ID: qid, QuestionType: qtype})
		answers = append(answers, &store.Answer{QuestionID: qid, IsCorrect: i < correct})
	}
	return answers, questions
}

func TestDifficultyForTopicDefaults(t *testing.T) {
	f := newFixture()
	d, err := f.engine.DifficultyForTopic(context.Background(), 1, exam.TypeSynonym)
	if err != nil {
		t.Fatal(err)
	}
	if d != 3 {
		t.Errorf("default difficulty = %d, want 3", d)
	}
}

func TestDifficultyForTopicRoundsAndClamps(t *testing.T) {
	tests := []struct {
		stored float64
		want   int
	}{
		{3.5, 4},
		{3.4, 3},
		{5.0, 5},
		{0.4, 1},
	}
	for _, tt := range tests {
		f := newFixture()
		f.mastery.records[exam.TypeAlgebra] = &store.TopicMastery{
			TopicTag:        exam.TypeAlgebra,
			DifficultyLevel: tt.stored,
		}
		d, err := f.engine.DifficultyForTopic(context.Background(), 1, exam.TypeAlgebra)
		if err != nil {
			t.Fatal(err)
		}
		if d != tt.want {
			t.Errorf("stored %.1f: difficulty = %d, want %d", tt.stored, d, tt.want)
		}
	}
}

func TestDifficultyMapCoversLevelTopics(t *testing.T) {
	f := newFixture()
	m, err := f.engine.DifficultyMap(context.Background(), elemStudent(3))
	if err != nil {
		t.Fatal(err)
	}
	want := exam.TypesForLevel(exam.LevelElementary)
	if len(m) != len(want) {
		t.Fatalf("map has %d topics, want %d", len(m), len(want))
	}
	for _, qt := range want {
		if m[qt] != 3 {
			t.Errorf("%s difficulty = %d, want 3", qt, m[qt])
		}
	}
}

func TestUpdateStepsDifficultyUp(t *testing.T) {
	f := newFixture()
	f.mastery.records[exam.TypeSynonym] = &store.TopicMastery{
		StudentID:       1,
		TopicTag:        exam.TypeSynonym,
		DifficultyLevel: 3.0,
		TotalAttempted:  10,
		TotalCorrect:    9,
	}
	answers, questions := answerBatch(exam.TypeSynonym, 6, 6)

	events, err := f.engine.UpdateAfterAnswers(context.Background(), elemStudent(3), answers, questions)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1: %v", len(events), events)
	}
	if !strings.Contains(events[0], "Difficulty up!") || !strings.Contains(events[0], "3.0 -> 3.5") {
		t.Errorf("unexpected event %q", events[0])
	}
	if got := f.mastery.records[exam.TypeSynonym].DifficultyLevel; got != 3.5 {
		t.Errorf("difficulty = %.1f, want 3.5", got)
	}
	if got := f.mastery.records[exam.TypeSynonym].TotalAttempted; got != 16 {
		t.Errorf("total attempted = %d, want 16", got)
	}
}

func TestUpdateStepsDifficultyDown(t *testing.T) {
	f := newFixture()
	f.mastery.records[exam.TypeGeometry] = &store.TopicMastery{
		StudentID:       1,
		TopicTag:        exam.TypeGeometry,
		DifficultyLevel: 3.0,
		TotalAttempted:  10,
		TotalCorrect:    3,
	}
	answers, questions := answerBatch(exam.TypeGeometry, 1, 6)

	events, err := f.engine.UpdateAfterAnswers(context.Background(), elemStudent(3), answers, questions)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || !strings.Contains(events[0], "Difficulty adjusted") {
		t.Fatalf("events = %v, want one downward adjustment", events)
	}
	if got := f.mastery.records[exam.TypeGeometry].DifficultyLevel; got != 2.5 {
		t.Errorf("difficulty = %.1f, want 2.5", got)
	}
}

func TestUpdateBelowMinimumSampleHoldsSteady(t *testing.T) {
	f := newFixture()
	answers, questions := answerBatch(exam.TypeSynonym, 4, 4)

	events, err := f.engine.UpdateAfterAnswers(context.Background(), elemStudent(3), answers, questions)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("events = %v, want none", events)
	}
	m := f.mastery.records[exam.TypeSynonym]
	if m == nil {
		t.Fatal("mastery record not created")
	}
	if m.DifficultyLevel != 3.0 {
		t.Errorf("difficulty = %.1f, want 3.0", m.DifficultyLevel)
	}
	if m.TotalAttempted != 4 || m.TotalCorrect != 4 {
		t.Errorf("totals = %d/%d, want 4/4", m.TotalCorrect, m.TotalAttempted)
	}
}

func TestUpdateCapsAtMaxDifficulty(t *testing.T) {
	f := newFixture()
	f.mastery.records[exam.TypeSynonym] = &store.TopicMastery{
		StudentID:       1,
		TopicTag:        exam.TypeSynonym,
		DifficultyLevel: 5.0,
		TotalAttempted:  20,
		TotalCorrect:    19,
	}
	answers, questions := answerBatch(exam.TypeSynonym, 6, 6)

	events, err := f.engine.UpdateAfterAnswers(context.Background(), elemStudent(3), answers, questions)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("events = %v, want none at the cap", events)
	}
}

func TestUpdateLastFiftyWindowCapped(t *testing.T) {
	f := newFixture()

	// 80 persisted answers, newest first: the first 50 hold 30 correct.
	var history []*store.Answer
	for i := 0; i < 80; i++ {
		history = append(history, &store.Answer{QuestionID: i + 1, IsCorrect: i%5 < 3})
	}
	f.answers.byTopic[exam.TypeGeometry] = history

	answers, questions := answerBatch(exam.TypeGeometry, 3, 5)
	if _, err := f.engine.UpdateAfterAnswers(context.Background(), elemStudent(3), answers, questions); err != nil {
		t.Fatal(err)
	}

	m := f.mastery.records[exam.TypeGeometry]
	if m == nil {
		t.Fatal("mastery record not created")
	}
	if m.Last50Attempted != 50 {
		t.Errorf("last-50 attempted = %d, want 50", m.Last50Attempted)
	}
	if m.Last50Correct != 30 {
		t.Errorf("last-50 correct = %d, want 30", m.Last50Correct)
	}
}

func TestUpdateLastFiftyWindowIdempotent(t *testing.T) {
	f := newFixture()

	var history []*store.Answer
	for i := 0; i < 60; i++ {
		history = append(history, &store.Answer{QuestionID: i + 1, IsCorrect: i%2 == 0})
	}
	f.answers.byTopic[exam.TypeGeometry] = history

	answers, questions := answerBatch(exam.TypeGeometry, 3, 5)
	if _, err := f.engine.UpdateAfterAnswers(context.Background(), elemStudent(3), answers, questions); err != nil {
		t.Fatal(err)
	}
	first := *f.mastery.records[exam.TypeGeometry]

	// Identical persisted history: the recomputed window must not drift.
	if _, err := f.engine.UpdateAfterAnswers(context.Background(), elemStudent(3), answers, questions); err != nil {
		t.Fatal(err)
	}
	second := *f.mastery.records[exam.TypeGeometry]

	if first.Last50Attempted != second.Last50Attempted || first.Last50Correct != second.Last50Correct {
		t.Errorf("window drifted: first %d/%d, second %d/%d",
			first.Last50Correct, first.Last50Attempted,
			second.Last50Correct, second.Last50Attempted)
	}
	if second.Last50Attempted != 50 {
		t.Errorf("last-50 attempted = %d, want 50", second.Last50Attempted)
	}
}

func TestLevelMasteryPromotesWithinElementary(t *testing.T) {
	f := newFixture()
	for i := 0; i < 3; i++ {
		f.sessions.sessions = append(f.sessions.sessions, scoredSession(90, 88, 92))
	}
	f.mastery.records[exam.TypeSynonym] = &store.TopicMastery{
		TopicTag: exam.TypeSynonym, DifficultyLevel: 4, TotalAttempted: 30, TotalCorrect: 28,
	}
	answers, questions := answerBatch(exam.TypeSynonym, 3, 4)

	student := elemStudent(3)
	events, err := f.engine.UpdateAfterAnswers(context.Background(), student, answers, questions)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, ev := range events {
		if strings.Contains(ev, "Grade 4 Elementary") {
			found = true
		}
	}
	if !found {
		t.Fatalf("events = %v, want grade promotion", events)
	}
	if student.Grade != 4 {
		t.Errorf("grade = %d, want 4", student.Grade)
	}
	if f.students.updated == nil || f.students.updated.Grade != 4 {
		t.Error("promotion not persisted")
	}
}

func TestLevelMasteryCrossesToMiddle(t *testing.T) {
	f := newFixture()
	for i := 0; i < 3; i++ {
		f.sessions.sessions = append(f.sessions.sessions, scoredSession(95, 90, 89))
	}
	student := elemStudent(4)
	answers, questions := answerBatch(exam.TypeSynonym, 3, 4)

	events, err := f.engine.UpdateAfterAnswers(context.Background(), student, answers, questions)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, ev := range events {
		if strings.Contains(ev, "Middle Level SSAT") {
			found = true
		}
	}
	if !found {
		t.Fatalf("events = %v, want middle-level transition", events)
	}
	if student.Level != exam.LevelMiddle || student.Grade != 5 {
		t.Errorf("student at %s grade %d, want middle grade 5", student.Level, student.Grade)
	}
}

func TestLevelMasteryBlockedByWeakTopic(t *testing.T) {
	f := newFixture()
	for i := 0; i < 3; i++ {
		f.sessions.sessions = append(f.sessions.sessions, scoredSession(90, 90, 90))
	}
	// Well-sampled but inaccurate topic blocks promotion.
	f.mastery.records[exam.TypeGeometry] = &store.TopicMastery{
		TopicTag: exam.TypeGeometry, DifficultyLevel: 3, TotalAttempted: 25, TotalCorrect: 15,
	}
	student := elemStudent(3)
	answers, questions := answerBatch(exam.TypeSynonym, 3, 4)

	events, err := f.engine.UpdateAfterAnswers(context.Background(), student, answers, questions)
	if err != nil {
		t.Fatal(err)
	}
	for _, ev := range events {
		if strings.Contains(ev, "Level Up") {
			t.Fatalf("unexpected promotion: %v", events)
		}
	}
	if student.Grade != 3 {
		t.Errorf("grade = %d, want 3", student.Grade)
	}
}

func TestLevelMasteryBlockedByMissingPercentile(t *testing.T) {
	f := newFixture()
	incomplete := scoredSession(90, 90, 90)
	incomplete.ReadingPercentile = nil
	f.sessions.sessions = []*store.TestSession{
		scoredSession(90, 90, 90), scoredSession(90, 90, 90), incomplete,
	}
	student := elemStudent(3)
	answers, questions := answerBatch(exam.TypeSynonym, 3, 4)

	events, err := f.engine.UpdateAfterAnswers(context.Background(), student, answers, questions)
	if err != nil {
		t.Fatal(err)
	}
	for _, ev := range events {
		if strings.Contains(ev, "Level Up") {
			t.Fatalf("unexpected promotion: %v", events)
		}
	}
}

func TestCheckLevelDownAdvisory(t *testing.T) {
	f := newFixture()
	f.sessions.sessions = []*store.TestSession{
		scoredSession(30, 25, 35),
		scoredSession(20, 38, 31),
	}
	msg, err := f.engine.CheckLevelDown(context.Background(), elemStudent(4))
	if err != nil {
		t.Fatal(err)
	}
	if msg == "" {
		t.Fatal("want advisory message")
	}
	if f.students.updated != nil {
		t.Error("advisory must not change the student")
	}
}

func TestCheckLevelDownNotTriggeredByOneGoodSection(t *testing.T) {
	f := newFixture()
	f.sessions.sessions = []*store.TestSession{
		scoredSession(30, 55, 35), // quantitative above threshold
		scoredSession(20, 30, 31),
	}
	msg, err := f.engine.CheckLevelDown(context.Background(), elemStudent(4))
	if err != nil {
		t.Fatal(err)
	}
	if msg != "" {
		t.Fatalf("got advisory %q, want none", msg)
	}
}

func TestLevelDownTransitions(t *testing.T) {
	tests := []struct {
		name      string
		level     exam.Level
		grade     int
		wantLevel exam.Level
		wantGrade int
	}{
		{"middle grade down", exam.LevelMiddle, 7, exam.LevelMiddle, 6},
		{"middle to elementary", exam.LevelMiddle, 5, exam.LevelElementary, 4},
		{"elementary grade down", exam.LevelElementary, 4, exam.LevelElementary, 3},
		{"elementary floor", exam.LevelElementary, 3, exam.LevelElementary, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			student := &store.Student{ID: 1, Name: "Maya", Grade: tt.grade, Level: tt.level}
			msg, err := f.engine.LevelDown(context.Background(), student)
			if err != nil {
				t.Fatal(err)
			}
			if student.Level != tt.wantLevel || student.Grade != tt.wantGrade {
				t.Errorf("student at %s grade %d, want %s grade %d",
					student.Level, student.Grade, tt.wantLevel, tt.wantGrade)
			}
			if msg == "" {
				t.Error("want a message")
			}
		})
	}
}
