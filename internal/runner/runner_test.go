package runner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/scoring"
	"github.com/shailiguru/ssat-practice/internal/store"
)

type fakeSessionRepo struct {
	created []*store.TestSession
	updated []*store.TestSession
	nextID  int
}

func (r *fakeSessionRepo) Create(_ context.Context, s *store.TestSession) error {
	r.nextID++
	s.ID = r.nextID
	r.created = append(r.created, s)
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *store.TestSession) error {
	r.updated = append(r.updated, s)
	return nil
}

func (r *fakeSessionRepo) ForStudentByMode(context.Context, int, exam.SessionMode, int) ([]*store.TestSession, error) {
	return nil, nil
}

type fakeAnswerRepo struct {
	saved []*store.Answer
}

func (r *fakeAnswerRepo) Save(_ context.Context, a *store.Answer) error {
	r.saved = append(r.saved, a)
	return nil
}

func (r *fakeAnswerRepo) ForSession(context.Context, int) ([]*store.Answer, error) {
	return nil, nil
}
func (r *fakeAnswerRepo) ForStudentTopic(context.Context, int, exam.QuestionType, int) ([]*store.Answer, error) {
	return nil, nil
}
func (r *fakeAnswerRepo) WrongForStudent(context.Context, int, int) ([]*store.Answer, []*store.Question, error) {
	return nil, nil, nil
}
func (r *fakeAnswerRepo) FrequentlyMissed(context.Context, int, int) ([]store.MissedQuestion, error) {
	return nil, nil
}

type fakeSource struct {
	perSection  int
	replenished bool
	nextID      int
}

func (s *fakeSource) makeQuestions(qtype exam.QuestionType, n int) []*store.Question {
	out := make([]*store.Question, n)
	for i := range out {
		s.nextID++
		out[i] = &store.Question{
			ID:            s.nextID,
			QuestionType:  qtype,
			Stem:          fmt.Sprintf("stem %d", s.nextID),
			CorrectAnswer: "A",
			Choices:       map[string]string{"A": "right", "B": "wrong"},
		}
	}
	return out
}

func (s *fakeSource) GetQuestions(_ context.Context, _ int, qtype exam.QuestionType, _ exam.Level, _, count, _ int) ([]*store.Question, error) {
	return s.makeQuestions(qtype, count), nil
}

func (s *fakeSource) GetMixedQuestions(_ context.Context, _ int, section exam.SectionConfig, _ exam.Level, _ map[exam.QuestionType]int, _ int) ([]*store.Question, error) {
	return s.makeQuestions(section.Topics[0], s.perSection), nil
}

func (s *fakeSource) CheckAndReplenish(context.Context, int, exam.Level, int) error {
	s.replenished = true
	return nil
}

type fakeLeveler struct {
	events      []string
	updated     int
	advisory    string
	leveledDown int
}

func (l *fakeLeveler) DifficultyMap(context.Context, *store.Student) (map[exam.QuestionType]int, error) {
	return map[exam.QuestionType]int{}, nil
}

func (l *fakeLeveler) UpdateAfterAnswers(context.Context, *store.Student, []*store.Answer, []*store.Question) ([]string, error) {
	l.updated++
	return l.events, nil
}

func (l *fakeLeveler) CheckLevelDown(context.Context, *store.Student) (string, error) {
	return l.advisory, nil
}

func (l *fakeLeveler) LevelDown(_ context.Context, student *store.Student) (string, error) {
	l.leveledDown++
	student.Grade--
	return "Moved back a grade.", nil
}

type fakeWriting struct {
	calls      int
	sessionIDs []int
}

func (w *fakeWriting) RunTimed(_ context.Context, _ *store.Student, sessionID int) error {
	w.calls++
	w.sessionIDs = append(w.sessionIDs, sessionID)
	return nil
}

// fakeUI pops scripted responses, with permissive defaults.
type fakeUI struct {
	confirms      []bool
	menuChoices   []int
	promptInts    []int
	answerDefault *string
	onAnswer      func()
	infos         []string
	warnings      []string
	questionCount int
	feedbackCount int
	reportCount   int
}

func (u *fakeUI) Info(msg string)    { u.infos = append(u.infos, msg) }
func (u *fakeUI) Warning(msg string) { u.warnings = append(u.warnings, msg) }
func (u *fakeUI) Error(msg string)   {}
func (u *fakeUI) Blank()             {}
func (u *fakeUI) ClearScreen()       {}

func (u *fakeUI) Confirm(string) bool {
	if len(u.confirms) == 0 {
		return true
	}
	v := u.confirms[0]
	u.confirms = u.confirms[1:]
	return v
}

func (u *fakeUI) PressEnter() {}

func (u *fakeUI) Menu(string, []string) int {
	if len(u.menuChoices) == 0 {
		return 1
	}
	v := u.menuChoices[0]
	u.menuChoices = u.menuChoices[1:]
	return v
}

func (u *fakeUI) PromptInt(_ string, min, _ int) int {
	if len(u.promptInts) == 0 {
		return min
	}
	v := u.promptInts[0]
	u.promptInts = u.promptInts[1:]
	return v
}

func (u *fakeUI) SectionIntro(string, int, int)                     {}
func (u *fakeUI) SectionComplete(string)                            {}
func (u *fakeUI) SectionResult(*scoring.SectionResult, exam.Level)  {}
func (u *fakeUI) ReviewQuestion(int, int, *store.Question, *string) {}
func (u *fakeUI) DrillSummary(int, int, string, time.Duration)      {}

func (u *fakeUI) Question(int, int, *store.Question, int) {
	u.questionCount++
}

func (u *fakeUI) AnswerInput() *string {
	if u.onAnswer != nil {
		u.onAnswer()
	}
	return u.answerDefault
}

func (u *fakeUI) AnswerFeedback(bool, *string, string, string, map[string]string) {
	u.feedbackCount++
}

func (u *fakeUI) FullScoreReport(*store.Student, *store.TestSession, []*scoring.SectionResult, map[exam.QuestionType]scoring.TopicStats) {
	u.reportCount++
}

type fakeCountdown struct {
	timeUpAfter int
	polls       int
	stopped     bool
}

func (c *fakeCountdown) TimeUp() bool {
	c.polls++
	return c.polls > c.timeUpAfter
}
func (c *fakeCountdown) Remaining() int { return 120 }
func (c *fakeCountdown) Stop()          { c.stopped = true }

type fixture struct {
	runner   *Runner
	sessions *fakeSessionRepo
	answers  *fakeAnswerRepo
	source   *fakeSource
	leveler  *fakeLeveler
	writing  *fakeWriting
	ui       *fakeUI
}

func letter(s string) *string { return &s }

func newFixture() *fixture {
	f := &fixture{
		sessions: &fakeSessionRepo{},
		answers:  &fakeAnswerRepo{},
		source:   &fakeSource{perSection: 2},
		leveler:  &fakeLeveler{},
		writing:  &fakeWriting{},
		ui:       &fakeUI{answerDefault: letter("A")},
	}
	settings := exam.DefaultSettings()
	settings.TimerEnabled = false
	f.runner = New(f.sessions, f.answers, f.source, f.leveler, f.writing, nil, settings, f.ui)
	return f
}

func elemStudent() *store.Student {
	return &store.Student{ID: 1, Name: "Maya", Grade: 3, Level: exam.LevelElementary}
}

func middleStudent() *store.Student {
	return &store.Student{ID: 1, Name: "Maya", Grade: 6, Level: exam.LevelMiddle}
}

func TestFullTestDeclinedCreatesNoSession(t *testing.T) {
	f := newFixture()
	f.ui.confirms = []bool{false}

	if err := f.runner.RunFullTest(context.Background(), elemStudent()); err != nil {
		t.Fatal(err)
	}
	if len(f.sessions.created) != 0 {
		t.Errorf("created %d sessions, want 0", len(f.sessions.created))
	}
}

func TestFullTestElementaryCompletes(t *testing.T) {
	f := newFixture()
	f.leveler.events = []string{"Difficulty up! Synonyms: 3.0 -> 3.5"}

	if err := f.runner.RunFullTest(context.Background(), elemStudent()); err != nil {
		t.Fatal(err)
	}

	if len(f.sessions.created) != 1 {
		t.Fatalf("created %d sessions, want 1", len(f.sessions.created))
	}
	session := f.sessions.created[0]
	if session.CompletedAt == nil {
		t.Error("session not completed")
	}
	if session.VerbalScaled == nil || session.QuantitativeScaled == nil || session.ReadingScaled == nil {
		t.Fatal("category scores not set")
	}
	if session.TotalScaled == nil {
		t.Fatal("total not set")
	}
	want := *session.VerbalScaled + *session.QuantitativeScaled + *session.ReadingScaled
	if *session.TotalScaled != want {
		t.Errorf("total = %d, want %d", *session.TotalScaled, want)
	}

	// 3 sections of 2 questions each, all answered A (correct).
	if len(f.answers.saved) != 6 {
		t.Errorf("saved %d answers, want 6", len(f.answers.saved))
	}
	for _, a := range f.answers.saved {
		if !a.IsCorrect {
			t.Error("answer not marked correct")
		}
		if a.SessionID != session.ID {
			t.Error("answer not linked to session")
		}
	}

	// Writing runs once, after the sections for elementary.
	if f.writing.calls != 1 {
		t.Errorf("writing ran %d times, want 1", f.writing.calls)
	}
	if f.leveler.updated != 1 {
		t.Errorf("mastery updated %d times, want 1", f.leveler.updated)
	}
	if !f.source.replenished {
		t.Error("pool not replenished")
	}
	if f.ui.reportCount != 1 {
		t.Errorf("score report shown %d times, want 1", f.ui.reportCount)
	}

	found := false
	for _, msg := range f.ui.infos {
		if msg == "Difficulty up! Synonyms: 3.0 -> 3.5" {
			found = true
		}
	}
	if !found {
		t.Error("mastery event not shown")
	}
	if f.leveler.leveledDown != 0 {
		t.Error("level down applied without an advisory")
	}
}

func TestFullTestOffersLevelDownWhenStruggling(t *testing.T) {
	f := newFixture()
	f.leveler.advisory = "It looks like the current level might be a stretch."

	student := elemStudent()
	student.Grade = 4
	if err := f.runner.RunFullTest(context.Background(), student); err != nil {
		t.Fatal(err)
	}

	// Confirms default to yes, so the offer is accepted.
	if f.leveler.leveledDown != 1 {
		t.Fatalf("level down applied %d times, want 1", f.leveler.leveledDown)
	}
	if student.Grade != 3 {
		t.Errorf("grade = %d, want 3", student.Grade)
	}
	found := false
	for _, w := range f.ui.warnings {
		if w == f.leveler.advisory {
			found = true
		}
	}
	if !found {
		t.Error("advisory not shown")
	}
}

func TestFullTestLevelDownDeclined(t *testing.T) {
	f := newFixture()
	f.leveler.advisory = "It looks like the current level might be a stretch."
	// Ready? yes; continue x2: yes; level-down offer: no.
	f.ui.confirms = []bool{true, true, true, false}

	if err := f.runner.RunFullTest(context.Background(), elemStudent()); err != nil {
		t.Fatal(err)
	}
	if f.leveler.leveledDown != 0 {
		t.Errorf("level down applied %d times, want 0", f.leveler.leveledDown)
	}
}

func TestFullTestMiddleRunsWritingFirst(t *testing.T) {
	f := newFixture()

	if err := f.runner.RunFullTest(context.Background(), middleStudent()); err != nil {
		t.Fatal(err)
	}
	if f.writing.calls != 1 {
		t.Fatalf("writing ran %d times, want 1", f.writing.calls)
	}
	// Middle level has four sections and writing runs before all of
	// them; the first question can only render after that.
	if f.ui.questionCount != 8 {
		t.Errorf("rendered %d questions, want 8", f.ui.questionCount)
	}
}

func TestSectionTimerExpirySkipsRemainder(t *testing.T) {
	f := newFixture()
	f.runner.settings.TimerEnabled = true
	countdown := &fakeCountdown{timeUpAfter: 3}
	f.runner.newTimer = func(int, func(int)) Countdown { return countdown }

	questions := f.source.makeQuestions(exam.TypeSynonym, 10)
	section := exam.SectionConfig{Name: "Verbal", QuestionCount: 10, TimeMinutes: 20, Topics: []exam.QuestionType{exam.TypeSynonym}}
	session := &store.TestSession{ID: 7, StudentID: 1}

	answers, err := f.runner.runSection(context.Background(), section, questions, session, false, true)
	if err != nil {
		t.Fatal(err)
	}

	if len(answers) != 10 {
		t.Fatalf("got %d answers, want 10", len(answers))
	}
	if len(f.answers.saved) != 10 {
		t.Fatalf("persisted %d answers, want 10 (skips included)", len(f.answers.saved))
	}
	answered, skipped := 0, 0
	for _, a := range answers {
		if a.Skipped() {
			skipped++
			if a.TimeSpentSeconds != 0 {
				t.Error("skipped answer has nonzero elapsed time")
			}
			if a.IsCorrect {
				t.Error("skipped answer marked correct")
			}
		} else {
			answered++
		}
	}
	if answered != 3 || skipped != 7 {
		t.Errorf("answered %d skipped %d, want 3 and 7", answered, skipped)
	}
	if !countdown.stopped {
		t.Error("timer not stopped")
	}
}

func TestAnswersPersistedAsGiven(t *testing.T) {
	f := newFixture()
	f.source.perSection = 3
	f.ui.menuChoices = []int{1} // Math
	f.ui.confirms = []bool{false}

	// Record how many answers are already saved each time input is read.
	var persisted []int
	f.ui.onAnswer = func() {
		persisted = append(persisted, len(f.answers.saved))
	}

	if err := f.runner.RunSectionPractice(context.Background(), elemStudent()); err != nil {
		t.Fatal(err)
	}

	want := []int{0, 1, 2}
	if len(persisted) != len(want) {
		t.Fatalf("input read %d times, want %d", len(persisted), len(want))
	}
	for i := range want {
		if persisted[i] != want[i] {
			t.Fatalf("persisted counts = %v, want %v: answers must be saved one by one, not after the section", persisted, want)
		}
	}
	if len(f.answers.saved) != 3 {
		t.Errorf("saved %d answers, want 3", len(f.answers.saved))
	}
	for _, a := range f.answers.saved {
		if a.SessionID != f.sessions.created[0].ID {
			t.Error("answer not linked to session at save time")
		}
	}
}

func TestSectionPracticeSetsCategoryScores(t *testing.T) {
	f := newFixture()
	f.ui.menuChoices = []int{1} // Math
	f.ui.confirms = []bool{false}

	if err := f.runner.RunSectionPractice(context.Background(), elemStudent()); err != nil {
		t.Fatal(err)
	}
	if len(f.sessions.created) != 1 {
		t.Fatalf("created %d sessions, want 1", len(f.sessions.created))
	}
	session := f.sessions.created[0]
	if session.Mode != exam.ModeSectionPractice {
		t.Errorf("mode = %s", session.Mode)
	}
	if session.QuantitativeScaled == nil {
		t.Fatal("quantitative scaled not set")
	}
	if session.VerbalScaled != nil || session.ReadingScaled != nil {
		t.Error("unrelated categories set")
	}
	if session.TotalScaled == nil || *session.TotalScaled != *session.QuantitativeScaled {
		t.Error("total should equal the single section's scaled score")
	}
	if session.CompletedAt == nil {
		t.Error("session not completed")
	}
}

func TestSectionPracticeBackOption(t *testing.T) {
	f := newFixture()
	f.ui.menuChoices = []int{4} // past the three elementary sections
	if err := f.runner.RunSectionPractice(context.Background(), elemStudent()); err != nil {
		t.Fatal(err)
	}
	if len(f.sessions.created) != 0 {
		t.Error("back option must not create a session")
	}
}

func TestQuickDrillInstantFeedback(t *testing.T) {
	f := newFixture()
	f.ui.menuChoices = []int{2, 1} // Verbal, Synonyms
	f.ui.promptInts = []int{10}
	f.ui.confirms = nil // no timer prompt with timers disabled

	if err := f.runner.RunQuickDrill(context.Background(), elemStudent()); err != nil {
		t.Fatal(err)
	}
	if f.ui.feedbackCount != 10 {
		t.Errorf("feedback shown %d times, want 10", f.ui.feedbackCount)
	}
	if len(f.answers.saved) != 10 {
		t.Errorf("saved %d answers, want 10", len(f.answers.saved))
	}
	session := f.sessions.created[0]
	if session.Mode != exam.ModeQuickDrill {
		t.Errorf("mode = %s", session.Mode)
	}
	if session.CompletedAt == nil {
		t.Error("session not completed")
	}
	if f.leveler.updated != 1 {
		t.Errorf("mastery updated %d times, want 1", f.leveler.updated)
	}
}

func TestQuickDrillClampsCount(t *testing.T) {
	f := newFixture()
	f.ui.menuChoices = []int{2, 1}
	f.ui.promptInts = []int{50}

	if err := f.runner.RunQuickDrill(context.Background(), elemStudent()); err != nil {
		t.Fatal(err)
	}
	if got := len(f.answers.saved); got != exam.DefaultSettings().DrillMaxQuestions {
		t.Errorf("saved %d answers, want %d", got, exam.DefaultSettings().DrillMaxQuestions)
	}
}

func TestFinalizeCombinesQuantitativeSections(t *testing.T) {
	f := newFixture()
	session := &store.TestSession{ID: 1, StudentID: 1}
	results := []*scoring.SectionResult{
		{SectionName: "Quantitative 1", RawScore: 20, ScaledScore: 600, Percentile: 60},
		{SectionName: "Reading", RawScore: 30, ScaledScore: 550, Percentile: 55},
		{SectionName: "Verbal", RawScore: 40, ScaledScore: 580, Percentile: 58},
		{SectionName: "Quantitative 2", RawScore: 15, ScaledScore: 571, Percentile: 51},
	}

	if err := f.runner.finalizeFullTest(context.Background(), session, results, nil, nil, middleStudent()); err != nil {
		t.Fatal(err)
	}

	if got := *session.QuantitativeRaw; got != 35 {
		t.Errorf("quantitative raw = %.2f, want 35", got)
	}
	if got := *session.QuantitativeScaled; got != 585 {
		t.Errorf("quantitative scaled = %d, want 585", got)
	}
	if got := *session.QuantitativePercentile; got != 55 {
		t.Errorf("quantitative percentile = %d, want 55", got)
	}
	if got := *session.TotalScaled; got != 580+585+550 {
		t.Errorf("total = %d, want %d", got, 580+585+550)
	}
	if session.CompletedAt == nil {
		t.Error("session not completed")
	}
}
