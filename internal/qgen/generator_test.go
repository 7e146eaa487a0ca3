package qgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/llm"
)

func testSettings() exam.Settings {
	s := exam.DefaultSettings()
	s.RateLimit = 0
	return s
}

const validBatch = `{
	"questions": [
		{
			"stem": "RAPID most nearly means",
			"choices": {"A": "slow", "B": "fast", "C": "loud", "D": "bright", "E": "calm"},
			"correct_answer": "B",
			"explanation": "Rapid means fast.",
			"topic": "synonym"
		},
		{
			"stem": "SCARCE most nearly means",
			"choices": {"A": "plentiful", "B": "rare", "C": "noisy", "D": "heavy", "E": "bright"},
			"correct_answer": "B",
			"explanation": "Scarce means rare.",
			"topic": "synonym"
		}
	]
}`

func TestGenerateQuestions(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validBatch)},
	)
	g := New(mock, testSettings())

	questions, err := g.GenerateQuestions(context.Background(), exam.TypeSynonym, exam.LevelElementary, 4, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}

	q := questions[0]
	if q.QuestionType != exam.TypeSynonym || q.Level != exam.LevelElementary {
		t.Errorf("question tagged %s/%s, want synonym/elementary", q.QuestionType, q.Level)
	}
	if q.Difficulty != 3 {
		t.Errorf("difficulty = %d, want 3", q.Difficulty)
	}
	if q.BatchID == "" || q.BatchID != questions[1].BatchID {
		t.Error("batch ID must be shared across the batch")
	}
	if q.CorrectAnswer != "B" {
		t.Errorf("correct = %q, want B", q.CorrectAnswer)
	}

	// The request must carry the structured-output schema.
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "question-batch" {
		t.Error("expected question-batch schema on the request")
	}
}

func TestGenerateQuestionsDropsMalformed(t *testing.T) {
	batch := `{
		"questions": [
			{"stem": "", "choices": {"A": "1", "B": "2", "C": "3", "D": "4"}, "correct_answer": "A", "explanation": "x"},
			{"stem": "Too few choices?", "choices": {"A": "1", "B": "2"}, "correct_answer": "A", "explanation": "x"},
			{"stem": "Bad letter?", "choices": {"A": "1", "B": "2", "C": "3", "D": "4"}, "correct_answer": "F", "explanation": "x"},
			{"stem": "Letter not present?", "choices": {"A": "1", "B": "2", "C": "3", "D": "4"}, "correct_answer": "E", "explanation": "x"},
			{"stem": "GOOD most nearly means", "choices": {"A": "fine", "B": "bad", "C": "odd", "D": "new", "E": "old"}, "correct_answer": "a", "explanation": "x"}
		]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	g := New(mock, testSettings())

	questions, err := g.GenerateQuestions(context.Background(), exam.TypeSynonym, exam.LevelElementary, 4, 3, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want only the valid one", len(questions))
	}
	// Lowercase letters are normalized.
	if questions[0].CorrectAnswer != "A" {
		t.Errorf("correct = %q, want A", questions[0].CorrectAnswer)
	}
	// Missing fifth choice backfilled as empty.
	if _, ok := questions[0].Choices["E"]; !ok {
		t.Error("expected all five choice letters present")
	}
}

func TestGenerateQuestionsAllInvalid(t *testing.T) {
	batch := `{"questions": [{"stem": "", "choices": {}, "correct_answer": "", "explanation": ""}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	g := New(mock, testSettings())

	_, err := g.GenerateQuestions(context.Background(), exam.TypeSynonym, exam.LevelElementary, 4, 3, 5)
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got: %v", err)
	}
}

func TestGenerateQuestionsProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := New(mock, testSettings())

	_, err := g.GenerateQuestions(context.Background(), exam.TypeSynonym, exam.LevelElementary, 4, 3, 5)
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("expected ErrGeneration, got: %v", err)
	}
}

func TestMathAnswerRepair(t *testing.T) {
	batch := `{
		"questions": [
			{
				"stem": "What is 7 x 8?",
				"choices": {"A": "54", "B": "56", "C": "58", "D": "64", "E": "48"},
				"correct_answer": "A",
				"explanation": "7 x 8 = 56",
				"topic": "arithmetic"
			}
		]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	g := New(mock, testSettings())

	questions, err := g.GenerateQuestions(context.Background(), exam.TypeArithmetic, exam.LevelElementary, 4, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The explanation resolves to 56, which is choice B, not the tagged A.
	if questions[0].CorrectAnswer != "B" {
		t.Errorf("correct = %q, want repaired B", questions[0].CorrectAnswer)
	}
}

func TestMathAnswerRepairKeepsConsistentTag(t *testing.T) {
	batch := `{
		"questions": [
			{
				"stem": "What is 12 / 4?",
				"choices": {"A": "3", "B": "4", "C": "6", "D": "2", "E": "8"},
				"correct_answer": "A",
				"explanation": "12 / 4 = 3",
				"topic": "arithmetic"
			}
		]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	g := New(mock, testSettings())

	questions, err := g.GenerateQuestions(context.Background(), exam.TypeArithmetic, exam.LevelElementary, 4, 3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].CorrectAnswer != "A" {
		t.Errorf("correct = %q, want A", questions[0].CorrectAnswer)
	}
}

func TestGenerateReadingComprehension(t *testing.T) {
	batch := `{
		"passages": [
			{
				"passage_text": "The river wound through the valley...",
				"questions": [
					{"stem": "What is the main idea?", "choices": {"A": "a", "B": "b", "C": "c", "D": "d", "E": "e"}, "correct_answer": "A", "explanation": "x", "topic": "main_idea"},
					{"stem": "What does wound mean here?", "choices": {"A": "a", "B": "b", "C": "c", "D": "d", "E": "e"}, "correct_answer": "C", "explanation": "x", "topic": "vocabulary_in_context"}
				]
			},
			{
				"passage_text": "",
				"questions": [
					{"stem": "Orphaned question", "choices": {"A": "a", "B": "b", "C": "c", "D": "d", "E": "e"}, "correct_answer": "A", "explanation": "x"}
				]
			}
		]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	g := New(mock, testSettings())

	questions, err := g.GenerateReadingComprehension(context.Background(), exam.LevelElementary, 4, 3, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The empty passage and its question are skipped.
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	for _, q := range questions {
		if q.Passage == "" {
			t.Error("reading question missing passage text")
		}
		if q.QuestionType != exam.TypeReadingComprehension {
			t.Errorf("type = %s, want reading_comprehension", q.QuestionType)
		}
	}
	if questions[0].Topic != "main_idea" {
		t.Errorf("topic = %q, want main_idea", questions[0].Topic)
	}
}

func TestReadingRequestRoutedFromGenerateQuestions(t *testing.T) {
	batch := `{
		"passages": [
			{
				"passage_text": "A short passage.",
				"questions": [
					{"stem": "Q?", "choices": {"A": "a", "B": "b", "C": "c", "D": "d", "E": "e"}, "correct_answer": "A", "explanation": "x"}
				]
			}
		]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	g := New(mock, testSettings())

	// Asking for reading questions through the generic entry point must
	// reshape the request into passages.
	questions, err := g.GenerateQuestions(context.Background(), exam.TypeReadingComprehension, exam.LevelElementary, 4, 3, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "reading-batch" {
		t.Error("expected reading-batch schema on the request")
	}
}

func TestCodeFenceStripping(t *testing.T) {
	fenced := "```json\n" + validBatch + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	g := New(mock, testSettings())

	questions, err := g.GenerateQuestions(context.Background(), exam.TypeSynonym, exam.LevelElementary, 4, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
}

func TestWritingFeedback(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Nice work on your opening paragraph!")},
	)
	g := New(mock, testSettings())

	got := g.WritingFeedback(context.Background(), "Describe a place.", "The beach is...", exam.LevelElementary, 4)
	if got != "Nice work on your opening paragraph!" {
		t.Errorf("feedback = %q", got)
	}
}

func TestWritingFeedbackDegradesOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	g := New(mock, testSettings())

	got := g.WritingFeedback(context.Background(), "Describe a place.", "The beach is...", exam.LevelElementary, 4)
	if got != degradedFeedback {
		t.Errorf("feedback = %q, want the degraded message", got)
	}
}
