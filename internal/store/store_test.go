package store

import (
	"context"
	"testing"
	"time"

	"github.com/shailiguru/ssat-practice/internal/exam"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestStudent(t *testing.T, s *Store) *Student {
	t.Helper()
	st, err := s.Students().Create(context.Background(), "Asha", 4, exam.LevelElementary)
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	return st
}

func saveTestQuestion(t *testing.T, s *Store, qtype exam.QuestionType, difficulty int) *Question {
	t.Helper()
	q := &Question{
		Level:        exam.LevelElementary,
		QuestionType: qtype,
		Topic:        string(qtype),
		Difficulty:   difficulty,
		Stem:         "Which word means the same as rapid?",
		Choices: map[string]string{
			"A": "slow", "B": "fast", "C": "loud", "D": "bright",
		},
		CorrectAnswer: "B",
		Explanation:   "Rapid means fast.",
		BatchID:       "batch-1",
	}
	if err := s.Questions().SaveQuestions(context.Background(), []*Question{q}); err != nil {
		t.Fatalf("save question: %v", err)
	}
	return q
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestStudentCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := createTestStudent(t, s)
	if st.ID == 0 {
		t.Fatal("expected assigned student ID")
	}

	got, err := s.Students().Get(ctx, st.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Asha" || got.Grade != 4 || got.Level != exam.LevelElementary {
		t.Errorf("got %+v, want name Asha grade 4 elementary", got)
	}
}

func TestStudentUpdateLevel(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := createTestStudent(t, s)
	st.Grade = 5
	st.Level = exam.LevelMiddle
	if err := s.Students().Update(ctx, st); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.Students().Get(ctx, st.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Level != exam.LevelMiddle || got.Grade != 5 {
		t.Errorf("after update: level=%s grade=%d, want middle/5", got.Level, got.Grade)
	}
}

func TestSaveQuestionsAssignsIDs(t *testing.T) {
	s := openTestStore(t)

	q := saveTestQuestion(t, s, exam.TypeSynonym, 3)
	if q.ID == 0 {
		t.Fatal("expected assigned question ID")
	}
	if q.GeneratedAt.IsZero() {
		t.Error("expected generated_at to be set")
	}

	got, err := s.Questions().Get(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CorrectAnswer != "B" {
		t.Errorf("correct answer = %q, want B", got.CorrectAnswer)
	}
	if got.Choices["D"] != "bright" {
		t.Errorf("choice D = %q, want bright", got.Choices["D"])
	}
}

func TestUnseenExcludesAnswered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := createTestStudent(t, s)
	q1 := saveTestQuestion(t, s, exam.TypeSynonym, 3)
	q2 := saveTestQuestion(t, s, exam.TypeSynonym, 3)

	sel := "B"
	err := s.Answers().Save(ctx, &Answer{
		SessionID:  1,
		QuestionID: q1.ID,
		StudentID:  st.ID,
		Selected:   &sel,
		IsCorrect:  true,
	})
	if err != nil {
		t.Fatalf("save answer: %v", err)
	}

	unseen, err := s.Questions().Unseen(ctx, st.ID, exam.TypeSynonym, exam.LevelElementary, 3, 10)
	if err != nil {
		t.Fatalf("unseen: %v", err)
	}
	if len(unseen) != 1 {
		t.Fatalf("unseen count = %d, want 1", len(unseen))
	}
	if unseen[0].ID != q2.ID {
		t.Errorf("unseen ID = %d, want %d", unseen[0].ID, q2.ID)
	}
}

func TestUnseenFiltersDifficulty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := createTestStudent(t, s)
	saveTestQuestion(t, s, exam.TypeSynonym, 2)
	saveTestQuestion(t, s, exam.TypeSynonym, 4)

	unseen, err := s.Questions().Unseen(ctx, st.ID, exam.TypeSynonym, exam.LevelElementary, 4, 10)
	if err != nil {
		t.Fatalf("unseen: %v", err)
	}
	if len(unseen) != 1 || unseen[0].Difficulty != 4 {
		t.Fatalf("unseen = %d items, want one difficulty-4 question", len(unseen))
	}

	any, err := s.Questions().UnseenAnyDifficulty(ctx, st.ID, exam.TypeSynonym, exam.LevelElementary, 10)
	if err != nil {
		t.Fatalf("unseen any: %v", err)
	}
	if len(any) != 2 {
		t.Errorf("unseen any = %d items, want 2", len(any))
	}
}

func TestAnswerSkippedRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := createTestStudent(t, s)
	q := saveTestQuestion(t, s, exam.TypeAnalogy, 3)

	err := s.Answers().Save(ctx, &Answer{
		SessionID:  7,
		QuestionID: q.ID,
		StudentID:  st.ID,
		Selected:   nil,
		IsCorrect:  false,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	answers, err := s.Answers().ForSession(ctx, 7)
	if err != nil {
		t.Fatalf("for session: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	if !answers[0].Skipped() {
		t.Error("expected answer to report skipped")
	}
}

func TestWrongForStudentIgnoresSkipped(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := createTestStudent(t, s)
	q1 := saveTestQuestion(t, s, exam.TypeSynonym, 3)
	q2 := saveTestQuestion(t, s, exam.TypeSynonym, 3)

	wrong := "A"
	if err := s.Answers().Save(ctx, &Answer{SessionID: 1, QuestionID: q1.ID, StudentID: st.ID, Selected: &wrong, IsCorrect: false}); err != nil {
		t.Fatalf("save wrong: %v", err)
	}
	if err := s.Answers().Save(ctx, &Answer{SessionID: 1, QuestionID: q2.ID, StudentID: st.ID, Selected: nil, IsCorrect: false}); err != nil {
		t.Fatalf("save skipped: %v", err)
	}

	answers, questions, err := s.Answers().WrongForStudent(ctx, st.ID, 10)
	if err != nil {
		t.Fatalf("wrong for student: %v", err)
	}
	if len(answers) != 1 || len(questions) != 1 {
		t.Fatalf("got %d answers / %d questions, want 1/1", len(answers), len(questions))
	}
	if questions[0].ID != q1.ID {
		t.Errorf("question ID = %d, want %d", questions[0].ID, q1.ID)
	}
}

func TestMasteryUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := createTestStudent(t, s)

	// Missing record reads as nil.
	m, err := s.Mastery().ForTopic(ctx, st.ID, exam.TypeSynonym)
	if err != nil {
		t.Fatalf("for topic (empty): %v", err)
	}
	if m != nil {
		t.Fatal("expected nil mastery when none exists")
	}

	err = s.Mastery().Upsert(ctx, &TopicMastery{
		StudentID:       st.ID,
		TopicTag:        exam.TypeSynonym,
		DifficultyLevel: 3.0,
		TotalAttempted:  10,
		TotalCorrect:    8,
		Last50Attempted: 10,
		Last50Correct:   8,
	})
	if err != nil {
		t.Fatalf("upsert (create): %v", err)
	}

	err = s.Mastery().Upsert(ctx, &TopicMastery{
		StudentID:       st.ID,
		TopicTag:        exam.TypeSynonym,
		DifficultyLevel: 3.5,
		TotalAttempted:  20,
		TotalCorrect:    17,
		Last50Attempted: 20,
		Last50Correct:   17,
	})
	if err != nil {
		t.Fatalf("upsert (update): %v", err)
	}

	m, err = s.Mastery().ForTopic(ctx, st.ID, exam.TypeSynonym)
	if err != nil {
		t.Fatalf("for topic: %v", err)
	}
	if m.DifficultyLevel != 3.5 {
		t.Errorf("difficulty = %v, want 3.5", m.DifficultyLevel)
	}
	if m.TotalAttempted != 20 {
		t.Errorf("total attempted = %d, want 20", m.TotalAttempted)
	}

	all, err := s.Mastery().All(ctx, st.ID)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("all = %d records, want 1", len(all))
	}
}

func TestSessionCreateUpdateAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := createTestStudent(t, s)
	sess := &TestSession{
		StudentID: st.ID,
		Level:     exam.LevelElementary,
		Grade:     4,
		Mode:      exam.ModeFullTest,
	}
	if err := s.Sessions().Create(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.ID == 0 {
		t.Fatal("expected assigned session ID")
	}

	// Incomplete sessions are excluded from history.
	got, err := s.Sessions().ForStudentByMode(ctx, st.ID, exam.ModeFullTest, 5)
	if err != nil {
		t.Fatalf("for student (incomplete): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("history = %d sessions, want 0 before completion", len(got))
	}

	now := time.Now()
	raw := 25.0
	scaled := 540
	pct := 75
	total := 1560
	sess.CompletedAt = &now
	sess.VerbalRaw = &raw
	sess.VerbalScaled = &scaled
	sess.VerbalPercentile = &pct
	sess.TotalScaled = &total
	if err := s.Sessions().Update(ctx, sess); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = s.Sessions().ForStudentByMode(ctx, st.ID, exam.ModeFullTest, 5)
	if err != nil {
		t.Fatalf("for student: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("history = %d sessions, want 1", len(got))
	}
	if got[0].VerbalScaled == nil || *got[0].VerbalScaled != 540 {
		t.Errorf("verbal scaled = %v, want 540", got[0].VerbalScaled)
	}
	if got[0].TotalScaled == nil || *got[0].TotalScaled != 1560 {
		t.Errorf("total scaled = %v, want 1560", got[0].TotalScaled)
	}
}

func TestWritingSaveAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := createTestStudent(t, s)
	w := &WritingSample{
		StudentID: st.ID,
		Prompt:    "Describe a place you would like to visit.",
		Response:  "I would visit the mountains because...",
	}
	if err := s.Writing().Save(ctx, w); err != nil {
		t.Fatalf("save: %v", err)
	}
	if w.ID == 0 {
		t.Fatal("expected assigned writing sample ID")
	}

	samples, err := s.Writing().ForStudent(ctx, st.ID, 5)
	if err != nil {
		t.Fatalf("for student: %v", err)
	}
	if len(samples) != 1 {
		t.Fatalf("samples = %d, want 1", len(samples))
	}
	if samples[0].Feedback != nil {
		t.Error("expected nil feedback when none saved")
	}
}

func TestAppendLLMRequestEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "question-gen",
		InputTokens:  120,
		OutputTokens: 800,
		LatencyMs:    950,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("events = %d, want 1", count)
	}
}
