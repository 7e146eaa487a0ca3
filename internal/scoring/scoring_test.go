package scoring

import (
	"testing"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
)

func answerSet(correct, wrong, skipped int) []*store.Answer {
	sel := "A"
	var answers []*store.Answer
	for i := 0; i < correct; i++ {
		answers = append(answers, &store.Answer{QuestionID: len(answers) + 1, Selected: &sel, IsCorrect: true})
	}
	for i := 0; i < wrong; i++ {
		answers = append(answers, &store.Answer{QuestionID: len(answers) + 1, Selected: &sel, IsCorrect: false})
	}
	for i := 0; i < skipped; i++ {
		answers = append(answers, &store.Answer{QuestionID: len(answers) + 1, Selected: nil, IsCorrect: false})
	}
	return answers
}

func TestRawScoreCounts(t *testing.T) {
	tests := []struct {
		name                     string
		level                    exam.Level
		correct, wrong, skipped  int
		wantRaw                  float64
	}{
		{"elementary no penalty", exam.LevelElementary, 20, 5, 5, 20},
		{"elementary skips free", exam.LevelElementary, 0, 0, 30, 0},
		{"middle penalty", exam.LevelMiddle, 20, 5, 0, 18.75},
		{"middle skips free", exam.LevelMiddle, 20, 0, 5, 20},
		{"middle floors at zero", exam.LevelMiddle, 1, 25, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := answerSet(tt.correct, tt.wrong, tt.skipped)
			raw, correct, wrong, skipped := RawScore(answers, tt.level)
			if raw != tt.wantRaw {
				t.Errorf("raw = %v, want %v", raw, tt.wantRaw)
			}
			if correct != tt.correct || wrong != tt.wrong || skipped != tt.skipped {
				t.Errorf("counts = %d/%d/%d, want %d/%d/%d",
					correct, wrong, skipped, tt.correct, tt.wrong, tt.skipped)
			}
			if correct+wrong+skipped != len(answers) {
				t.Error("counts do not partition the answer set")
			}
			if raw < 0 || raw > float64(correct) {
				t.Errorf("raw %v outside [0, correct]", raw)
			}
		})
	}
}

func TestScaledScoreEndpoints(t *testing.T) {
	tests := []struct {
		name  string
		raw   float64
		total int
		level exam.Level
		want  int
	}{
		{"elementary zero", 0, 30, exam.LevelElementary, 300},
		{"elementary perfect", 30, 30, exam.LevelElementary, 600},
		{"elementary half", 15, 30, exam.LevelElementary, 450},
		{"middle zero", 0, 25, exam.LevelMiddle, 440},
		{"middle perfect", 25, 25, exam.LevelMiddle, 710},
		{"empty section", 0, 0, exam.LevelElementary, 300},
		{"unknown level", 10, 20, exam.Level("upper"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaledScore(tt.raw, tt.total, tt.level); got != tt.want {
				t.Errorf("ScaledScore(%v, %d, %s) = %d, want %d",
					tt.raw, tt.total, tt.level, got, tt.want)
			}
		})
	}
}

func TestScaledScoreWithinRange(t *testing.T) {
	for raw := 0.0; raw <= 40; raw += 0.25 {
		got := ScaledScore(raw, 30, exam.LevelElementary)
		if got < 300 || got > 600 {
			t.Fatalf("ScaledScore(%v) = %d outside [300, 600]", raw, got)
		}
	}
}

func TestPercentileBreakpoints(t *testing.T) {
	tables := LoadTables("")
	if tables == nil {
		t.Fatal("embedded tables failed to load")
	}

	// At or below the first breakpoint.
	if got := tables.Percentile(250, exam.LevelElementary, "Verbal", 3); got != 1 {
		t.Errorf("below first breakpoint = %d, want 1", got)
	}
	// At or above the last.
	if got := tables.Percentile(600, exam.LevelElementary, "Verbal", 3); got != 99 {
		t.Errorf("at last breakpoint = %d, want 99", got)
	}
	// Between breakpoints, interpolated.
	got := tables.Percentile(475, exam.LevelElementary, "Verbal", 3)
	if got <= 48 || got >= 70 {
		t.Errorf("interpolated percentile = %d, want strictly between 48 and 70", got)
	}
}

func TestPercentileMonotonic(t *testing.T) {
	tables := LoadTables("")
	prev := 0
	for scaled := 280; scaled <= 620; scaled += 5 {
		got := tables.Percentile(scaled, exam.LevelElementary, "Reading", 4)
		if got < prev {
			t.Fatalf("percentile decreased at scaled=%d: %d < %d", scaled, got, prev)
		}
		if got < 1 || got > 99 {
			t.Fatalf("percentile %d outside [1, 99]", got)
		}
		prev = got
	}
}

func TestPercentileAdjacentGradeSearch(t *testing.T) {
	tables := LoadTables("")

	// Middle tables cover grades 5..7; grade 8 should borrow grade 7.
	borrowed := tables.Percentile(600, exam.LevelMiddle, "Verbal", 8)
	exact := tables.Percentile(600, exam.LevelMiddle, "Verbal", 7)
	if borrowed != exact {
		t.Errorf("grade 8 lookup = %d, want grade 7 value %d", borrowed, exact)
	}
}

func TestPercentileFallback(t *testing.T) {
	var tables Tables // nil, as after a malformed load

	// Linear fallback over 300..600.
	if got := tables.Percentile(300, exam.LevelElementary, "Verbal", 3); got != 1 {
		t.Errorf("fallback at min = %d, want 1", got)
	}
	if got := tables.Percentile(600, exam.LevelElementary, "Verbal", 3); got != 99 {
		t.Errorf("fallback at max = %d, want 99", got)
	}
	if got := tables.Percentile(450, exam.LevelElementary, "Verbal", 3); got != 50 {
		t.Errorf("fallback at midpoint = %d, want 50", got)
	}
	// Clamped outside range.
	if got := tables.Percentile(1000, exam.LevelElementary, "Verbal", 3); got != 99 {
		t.Errorf("fallback above max = %d, want 99", got)
	}
	if got := tables.Percentile(0, exam.LevelElementary, "Verbal", 3); got != 1 {
		t.Errorf("fallback below min = %d, want 1", got)
	}
}

func TestLoadTablesMissingFile(t *testing.T) {
	if got := LoadTables("/nonexistent/tables.json"); got != nil {
		t.Error("expected nil tables for missing file")
	}
}

func TestPercentileUnknownSectionUsesFallback(t *testing.T) {
	tables := LoadTables("")
	// Section absent from the tables for every nearby grade.
	got := tables.Percentile(450, exam.LevelElementary, "Essay", 3)
	if got != 50 {
		t.Errorf("unknown section = %d, want fallback 50", got)
	}
}

func TestTopicBreakdown(t *testing.T) {
	sel := "B"
	questions := []*store.Question{
		{ID: 1, QuestionType: exam.TypeSynonym},
		{ID: 2, QuestionType: exam.TypeSynonym},
		{ID: 3, QuestionType: exam.TypeArithmetic},
	}
	answers := []*store.Answer{
		{QuestionID: 1, Selected: &sel, IsCorrect: true},
		{QuestionID: 2, Selected: &sel, IsCorrect: false},
		{QuestionID: 3, Selected: &sel, IsCorrect: true},
		{QuestionID: 99, Selected: &sel, IsCorrect: true}, // orphan, ignored
	}

	breakdown := TopicBreakdown(answers, questions)
	if len(breakdown) != 2 {
		t.Fatalf("topics = %d, want 2", len(breakdown))
	}
	syn := breakdown[exam.TypeSynonym]
	if syn.Correct != 1 || syn.Total != 2 || syn.Accuracy != 0.5 {
		t.Errorf("synonym = %+v, want 1/2 at 0.5", syn)
	}
	arith := breakdown[exam.TypeArithmetic]
	if arith.Correct != 1 || arith.Total != 1 || arith.Accuracy != 1.0 {
		t.Errorf("arithmetic = %+v, want 1/1 at 1.0", arith)
	}
}
