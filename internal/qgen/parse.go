package qgen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
)

type questionPayload struct {
	Stem          string            `json:"stem"`
	Choices       map[string]string `json:"choices"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
	Topic         string            `json:"topic"`
}

type batchPayload struct {
	Questions []questionPayload `json:"questions"`
}

type passagePayload struct {
	PassageText string            `json:"passage_text"`
	Questions   []questionPayload `json:"questions"`
}

type readingPayload struct {
	Passages []passagePayload `json:"passages"`
}

// parseQuestionBatch converts raw provider JSON into validated
// questions. Malformed items are dropped silently; an empty result is
// ErrGeneration.
func parseQuestionBatch(raw json.RawMessage, qtype exam.QuestionType, level exam.Level, difficulty int, batchID string) ([]*store.Question, error) {
	var payload batchPayload
	if err := json.Unmarshal(stripCodeFences(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON response: %v", ErrGeneration, err)
	}
	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions in response", ErrGeneration)
	}

	var questions []*store.Question
	for _, item := range payload.Questions {
		if q := buildQuestion(item, qtype, level, difficulty, batchID, ""); q != nil {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no valid questions after parsing", ErrGeneration)
	}
	return questions, nil
}

// parseReadingBatch flattens passages into questions, each carrying
// its passage text. Passages without text are skipped entirely.
func parseReadingBatch(raw json.RawMessage, level exam.Level, difficulty int, batchID string) ([]*store.Question, error) {
	var payload readingPayload
	if err := json.Unmarshal(stripCodeFences(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON response: %v", ErrGeneration, err)
	}

	var questions []*store.Question
	for _, p := range payload.Passages {
		if p.PassageText == "" {
			continue
		}
		for _, item := range p.Questions {
			if q := buildQuestion(item, exam.TypeReadingComprehension, level, difficulty, batchID, p.PassageText); q != nil {
				questions = append(questions, q)
			}
		}
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no valid questions after parsing", ErrGeneration)
	}
	return questions, nil
}

// buildQuestion validates one generated item. Returns nil when the
// item is unusable: empty stem, fewer than 4 choices, or a correct
// answer that is not a present A-E letter.
func buildQuestion(item questionPayload, qtype exam.QuestionType, level exam.Level, difficulty int, batchID, passage string) *store.Question {
	stem := strings.TrimSpace(item.Stem)
	correct := strings.ToUpper(strings.TrimSpace(item.CorrectAnswer))

	if stem == "" {
		return nil
	}
	if len(item.Choices) < 4 {
		return nil
	}
	if len(correct) != 1 || !strings.Contains("ABCDE", correct) {
		return nil
	}
	if _, ok := item.Choices[correct]; !ok {
		return nil
	}

	choices := make(map[string]string, 5)
	for _, letter := range []string{"A", "B", "C", "D", "E"} {
		choices[letter] = item.Choices[letter]
	}

	correct = repairCorrectAnswer(choices, correct, item.Explanation, qtype)

	topic := item.Topic
	if topic == "" {
		topic = string(qtype)
	}

	return &store.Question{
		Level:         level,
		QuestionType:  qtype,
		Topic:         topic,
		Difficulty:    difficulty,
		Stem:          stem,
		Passage:       passage,
		Choices:       choices,
		CorrectAnswer: correct,
		Explanation:   item.Explanation,
		BatchID:       batchID,
	}
}

// numberPattern matches integers, decimals, and simple fractions.
var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?(?:/\d+)?`)

// repairCorrectAnswer cross-checks math questions: the explanation's
// final number should appear in the tagged correct choice. When it
// does not but does appear in another choice, the tag is moved there.
// Unresolvable mismatches keep the original tag rather than dropping
// the question.
func repairCorrectAnswer(choices map[string]string, correct, explanation string, qtype exam.QuestionType) string {
	if !isMathType(qtype) || explanation == "" {
		return correct
	}

	numbers := numberPattern.FindAllString(explanation, -1)
	if len(numbers) == 0 {
		return correct
	}
	final := numbers[len(numbers)-1]

	if strings.Contains(choices[correct], final) {
		return correct
	}
	for _, letter := range []string{"A", "B", "C", "D", "E"} {
		if strings.Contains(choices[letter], final) {
			return letter
		}
	}
	return correct
}

// stripCodeFences removes markdown code fences that some models wrap
// around JSON despite instructions.
func stripCodeFences(raw json.RawMessage) json.RawMessage {
	text := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(text, "```") {
		return raw
	}
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return json.RawMessage(strings.Join(kept, "\n"))
}
