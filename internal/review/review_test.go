package review

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
)

type fakeAnswerRepo struct {
	wrong      []*store.Answer
	wrongQs    []*store.Question
	missed     []store.MissedQuestion
	forSession []*store.Answer
	saved      []*store.Answer
}

func (r *fakeAnswerRepo) Save(_ context.Context, a *store.Answer) error {
	r.saved = append(r.saved, a)
	return nil
}

func (r *fakeAnswerRepo) ForSession(context.Context, int) ([]*store.Answer, error) {
	return r.forSession, nil
}

func (r *fakeAnswerRepo) ForStudentTopic(context.Context, int, exam.QuestionType, int) ([]*store.Answer, error) {
	return nil, nil
}

func (r *fakeAnswerRepo) WrongForStudent(_ context.Context, _ int, limit int) ([]*store.Answer, []*store.Question, error) {
	wrong := r.wrong
	if len(wrong) > limit {
		wrong = wrong[:limit]
	}
	return wrong, r.wrongQs, nil
}

func (r *fakeAnswerRepo) FrequentlyMissed(context.Context, int, int) ([]store.MissedQuestion, error) {
	return r.missed, nil
}

type fakeSessionRepo struct {
	created []*store.TestSession
	updated []*store.TestSession
}

func (r *fakeSessionRepo) Create(_ context.Context, s *store.TestSession) error {
	s.ID = len(r.created) + 100
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

type fakeQuestionRepo struct {
	byID map[int]*store.Question
}

func (r *fakeQuestionRepo) SaveQuestions(context.Context, []*store.Question) error { return nil }
func (r *fakeQuestionRepo) Get(_ context.Context, id int) (*store.Question, error) {
	return r.byID[id], nil
}
func (r *fakeQuestionRepo) ByIDs(_ context.Context, ids []int) ([]*store.Question, error) {
	var out []*store.Question
	for _, id := range ids {
		if q, ok := r.byID[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}
func (r *fakeQuestionRepo) Unseen(context.Context, int, exam.QuestionType, exam.Level, int, int) ([]*store.Question, error) {
	return nil, nil
}
func (r *fakeQuestionRepo) UnseenAnyDifficulty(context.Context, int, exam.QuestionType, exam.Level, int) ([]*store.Question, error) {
	return nil, nil
}
func (r *fakeQuestionRepo) CountUnseen(context.Context, int, exam.QuestionType, exam.Level) (int, error) {
	return 0, nil
}

type fakeUI struct {
	confirms      []bool
	menuChoices   []int
	answerDefault *string
	infos         []string
	reviewShown   int
	feedbackShown int
	topicRows     []TopicErrors
	summaryTotal  int
}

func (u *fakeUI) Info(msg string) { u.infos = append(u.infos, msg) }
func (u *fakeUI) Success(string)  {}
func (u *fakeUI) Blank()          {}

func (u *fakeUI) Confirm(string) bool {
	if len(u.confirms) == 0 {
		return false
	}
	v := u.confirms[0]
	u.confirms = u.confirms[1:]
	return v
}

func (u *fakeUI) PressEnter() {}

func (u *fakeUI) Menu(string, []string) int {
	if len(u.menuChoices) == 0 {
		return 5
	}
	v := u.menuChoices[0]
	u.menuChoices = u.menuChoices[1:]
	return v
}

func (u *fakeUI) Question(int, int, *store.Question, int) {}

func (u *fakeUI) AnswerInput() *string { return u.answerDefault }

func (u *fakeUI) AnswerFeedback(bool, *string, string, string, map[string]string) {
	u.feedbackShown++
}

func (u *fakeUI) ReviewQuestion(int, int, *store.Question, *string) {
	u.reviewShown++
}

func (u *fakeUI) MistakesByTopic(rows []TopicErrors) { u.topicRows = rows }

func (u *fakeUI) DrillSummary(_, total int, _ string, _ time.Duration) {
	u.summaryTotal = total
}

func letter(s string) *string { return &s }

func question(id int, qtype exam.QuestionType) *store.Question {
	return &store.Question{
		ID:            id,
		QuestionType:  qtype,
		Stem:          fmt.Sprintf("stem %d", id),
		CorrectAnswer: "A",
		Choices:       map[string]string{"A": "right", "B": "wrong"},
	}
}

func wrongAnswer(questionID int) *store.Answer {
	return &store.Answer{QuestionID: questionID, Selected: letter("B"), IsCorrect: false}
}

func student() *store.Student {
	return &store.Student{ID: 1, Name: "Maya", Grade: 3, Level: exam.LevelElementary}
}

func fixture(answers *fakeAnswerRepo, ui *fakeUI) *Manager {
	return New(&fakeSessionRepo{}, answers, &fakeQuestionRepo{byID: map[int]*store.Question{}}, ui)
}

func TestRecentMistakesEmpty(t *testing.T) {
	ui := &fakeUI{}
	m := fixture(&fakeAnswerRepo{}, ui)

	if err := m.RecentMistakes(context.Background(), student(), 0); err != nil {
		t.Fatal(err)
	}
	if ui.reviewShown != 0 {
		t.Errorf("shown %d reviews, want 0", ui.reviewShown)
	}
	if len(ui.infos) == 0 {
		t.Error("want the great-job notice")
	}
}

func TestRecentMistakesShowsEach(t *testing.T) {
	repo := &fakeAnswerRepo{
		wrong:   []*store.Answer{wrongAnswer(1), wrongAnswer(2), wrongAnswer(3)},
		wrongQs: []*store.Question{question(1, exam.TypeSynonym), question(2, exam.TypeSynonym), question(3, exam.TypeAnalogy)},
	}
	ui := &fakeUI{}
	m := fixture(repo, ui)

	if err := m.RecentMistakes(context.Background(), student(), 0); err != nil {
		t.Fatal(err)
	}
	if ui.reviewShown != 3 {
		t.Errorf("shown %d reviews, want 3", ui.reviewShown)
	}
}

func TestRecentMistakesFromSession(t *testing.T) {
	qRepo := &fakeQuestionRepo{byID: map[int]*store.Question{
		1: question(1, exam.TypeSynonym),
		2: question(2, exam.TypeAnalogy),
	}}
	repo := &fakeAnswerRepo{forSession: []*store.Answer{
		wrongAnswer(1),
		{QuestionID: 2, Selected: letter("A"), IsCorrect: true}, // correct, excluded
		{QuestionID: 3, Selected: nil, IsCorrect: false},        // skipped, excluded
	}}
	ui := &fakeUI{}
	m := New(&fakeSessionRepo{}, repo, qRepo, ui)

	if err := m.RecentMistakes(context.Background(), student(), 9); err != nil {
		t.Fatal(err)
	}
	if ui.reviewShown != 1 {
		t.Errorf("shown %d reviews, want 1", ui.reviewShown)
	}
}

func TestByTopicSortsWorstFirst(t *testing.T) {
	repo := &fakeAnswerRepo{
		wrong: []*store.Answer{
			wrongAnswer(1), wrongAnswer(2), wrongAnswer(3), wrongAnswer(4),
		},
		wrongQs: []*store.Question{
			question(1, exam.TypeSynonym),
			question(2, exam.TypeGeometry),
			question(3, exam.TypeGeometry),
			question(4, exam.TypeGeometry),
		},
	}
	ui := &fakeUI{}
	m := fixture(repo, ui)

	if err := m.ByTopic(context.Background(), student()); err != nil {
		t.Fatal(err)
	}
	if len(ui.topicRows) != 2 {
		t.Fatalf("got %d rows, want 2", len(ui.topicRows))
	}
	if ui.topicRows[0].Topic != exam.TypeGeometry || ui.topicRows[0].Count != 3 {
		t.Errorf("worst row = %+v, want geometry with 3", ui.topicRows[0])
	}
}

func TestByTopicDrillsWeakest(t *testing.T) {
	repo := &fakeAnswerRepo{
		wrong: []*store.Answer{
			wrongAnswer(1), wrongAnswer(2), wrongAnswer(3),
		},
		wrongQs: []*store.Question{
			question(1, exam.TypeGeometry),
			question(2, exam.TypeGeometry),
			question(3, exam.TypeSynonym),
		},
	}
	sessions := &fakeSessionRepo{}
	ui := &fakeUI{confirms: []bool{true}, answerDefault: letter("A")}
	m := New(sessions, repo, &fakeQuestionRepo{byID: map[int]*store.Question{}}, ui)

	if err := m.ByTopic(context.Background(), student()); err != nil {
		t.Fatal(err)
	}
	if len(sessions.created) != 1 {
		t.Fatalf("created %d sessions, want 1", len(sessions.created))
	}
	s := sessions.created[0]
	if s.Mode != exam.ModeReview {
		t.Errorf("mode = %s, want review", s.Mode)
	}
	if s.CompletedAt == nil {
		t.Error("drill session not completed")
	}
	// The two geometry questions are drilled; live answers persisted.
	if len(repo.saved) != 2 {
		t.Errorf("saved %d answers, want 2", len(repo.saved))
	}
	if ui.summaryTotal != 2 {
		t.Errorf("summary total = %d, want 2", ui.summaryTotal)
	}
}

func TestRetryMissedCapsAtFifteen(t *testing.T) {
	repo := &fakeAnswerRepo{}
	for i := 1; i <= 20; i++ {
		repo.wrong = append(repo.wrong, wrongAnswer(i))
		repo.wrongQs = append(repo.wrongQs, question(i, exam.TypeSynonym))
	}
	ui := &fakeUI{answerDefault: letter("B")}
	m := fixture(repo, ui)

	if err := m.RetryMissedAsDrill(context.Background(), student()); err != nil {
		t.Fatal(err)
	}
	if ui.feedbackShown != 15 {
		t.Errorf("drilled %d questions, want 15", ui.feedbackShown)
	}
}

func TestSpacedRepetitionNeedsRepeatMisses(t *testing.T) {
	ui := &fakeUI{}
	m := fixture(&fakeAnswerRepo{}, ui)

	if err := m.SpacedRepetition(context.Background(), student()); err != nil {
		t.Fatal(err)
	}
	if ui.feedbackShown != 0 {
		t.Error("drill ran with no frequently missed questions")
	}
}

func TestSpacedRepetitionDrillsMissed(t *testing.T) {
	repo := &fakeAnswerRepo{missed: []store.MissedQuestion{
		{Question: question(1, exam.TypeAnalogy), WrongCount: 3},
		{Question: question(2, exam.TypeAnalogy), WrongCount: 2},
	}}
	ui := &fakeUI{answerDefault: letter("A")}
	m := fixture(repo, ui)

	if err := m.SpacedRepetition(context.Background(), student()); err != nil {
		t.Fatal(err)
	}
	if ui.feedbackShown != 2 {
		t.Errorf("drilled %d questions, want 2", ui.feedbackShown)
	}
	if len(repo.saved) != 2 {
		t.Errorf("saved %d answers, want 2", len(repo.saved))
	}
	for _, a := range repo.saved {
		if !a.IsCorrect {
			t.Error("answer A should be correct")
		}
	}
}
