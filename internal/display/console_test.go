package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shailiguru/ssat-practice/internal/store"
)

func console(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return NewWith(&out, strings.NewReader(input)), &out
}

func TestConfirmEnterMeansYes(t *testing.T) {
	c, _ := console("\n")
	if !c.Confirm("Ready?") {
		t.Error("empty input should confirm")
	}
}

func TestConfirmNo(t *testing.T) {
	c, _ := console("n\n")
	if c.Confirm("Ready?") {
		t.Error("n should decline")
	}
}

func TestConfirmEOFDeclines(t *testing.T) {
	c, _ := console("")
	if c.Confirm("Ready?") {
		t.Error("EOF should decline")
	}
}

func TestPromptIntReasksUntilValid(t *testing.T) {
	c, out := console("99\nabc\n15\n")
	if got := c.PromptInt("Number of questions", 10, 20); got != 15 {
		t.Errorf("got %d, want 15", got)
	}
	if !strings.Contains(out.String(), "between 10 and 20") {
		t.Error("missing range hint")
	}
}

func TestPromptIntEOFReturnsMin(t *testing.T) {
	c, _ := console("")
	if got := c.PromptInt("Count", 10, 20); got != 10 {
		t.Errorf("got %d, want 10", got)
	}
}

func TestMenuReturnsChoice(t *testing.T) {
	c, out := console("2\n")
	got := c.Menu("Select Section", []string{"Math", "Verbal", "Reading"})
	if got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	for _, opt := range []string{"Math", "Verbal", "Reading"} {
		if !strings.Contains(out.String(), opt) {
			t.Errorf("menu missing option %s", opt)
		}
	}
}

func TestAnswerInputUppercases(t *testing.T) {
	c, _ := console("b\n")
	got := c.AnswerInput()
	if got == nil || *got != "B" {
		t.Errorf("got %v, want B", got)
	}
}

func TestAnswerInputEmptyIsSkip(t *testing.T) {
	c, _ := console("\n")
	if got := c.AnswerInput(); got != nil {
		t.Errorf("got %v, want nil", *got)
	}
}

func TestAnswerInputReasksOnInvalid(t *testing.T) {
	c, out := console("z\na\n")
	got := c.AnswerInput()
	if got == nil || *got != "A" {
		t.Errorf("got %v, want A", got)
	}
	if !strings.Contains(out.String(), "letter A through E") {
		t.Error("missing retry hint")
	}
}

func TestQuestionRendersChoicesInLetterOrder(t *testing.T) {
	c, out := console("")
	q := &store.Question{
		Stem: "What is 7 x 8?",
		Choices: map[string]string{
			"C": "54", "A": "48", "B": "56", "D": "64",
		},
	}
	c.Question(3, 10, q, 90)

	s := out.String()
	if !strings.Contains(s, "Question 3 of 10") {
		t.Error("missing header")
	}
	if !strings.Contains(s, "01:30") {
		t.Error("missing remaining time")
	}
	if !strings.Contains(s, "What is 7 x 8?") {
		t.Error("missing stem")
	}
	iA, iB := strings.Index(s, "48"), strings.Index(s, "56")
	if iA == -1 || iB == -1 || iA > iB {
		t.Error("choices not rendered in letter order")
	}
}

func TestQuestionOmitsTimerWhenUntimed(t *testing.T) {
	c, out := console("")
	c.Question(1, 5, &store.Question{Stem: "stem", Choices: map[string]string{"A": "x"}}, -1)
	if strings.Contains(out.String(), "remaining") {
		t.Error("untimed question should not show a clock")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1799, "29:59"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := formatSeconds(tt.in); got != tt.want {
			t.Errorf("formatSeconds(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
