// Package scoring turns a section's answers into raw, scaled, and
// percentile scores. All functions are pure; persistence stays with
// the caller.
package scoring

import (
	"math"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
)

// SectionResult holds the computed scores for one completed section.
// It is derived per section and folded into the session record; it is
// never persisted on its own.
type SectionResult struct {
	SectionName     string
	RawScore        float64
	ScaledScore     int
	Percentile      int
	TotalQuestions  int
	CorrectCount    int
	WrongCount      int
	SkippedCount    int
	TimeUsedSeconds float64
	Answers         []*store.Answer
}

// TopicStats is the per-topic slice of a section breakdown.
type TopicStats struct {
	Correct  int
	Total    int
	Accuracy float64
}

// RawScore computes the raw score for a set of answers. Wrong answers
// carry the level's penalty when it has one; skipped questions never
// do. The result is floored at zero.
func RawScore(answers []*store.Answer, level exam.Level) (raw float64, correct, wrong, skipped int) {
	cfg, ok := exam.ConfigForLevel(level)
	hasPenalty := ok && cfg.HasPenalty
	penalty := 0.0
	if ok {
		penalty = cfg.PenaltyAmount
	}

	for _, a := range answers {
		switch {
		case a.IsCorrect:
			correct++
		case a.Skipped():
			skipped++
		default:
			wrong++
		}
	}

	raw = float64(correct)
	if hasPenalty {
		raw -= float64(wrong) * penalty
	}
	if raw < 0 {
		raw = 0
	}
	return raw, correct, wrong, skipped
}

// ScaledScore maps a raw score onto the level's scaled range by linear
// interpolation. An unknown level scores 0; an empty section scores
// the range floor.
func ScaledScore(raw float64, totalQuestions int, level exam.Level) int {
	cfg, ok := exam.ConfigForLevel(level)
	if !ok {
		return 0
	}
	if totalQuestions <= 0 {
		return cfg.ScoreMin
	}

	fraction := raw / float64(totalQuestions)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	scaled := float64(cfg.ScoreMin) + fraction*float64(cfg.ScoreMax-cfg.ScoreMin)
	return int(math.Round(scaled))
}

// TopicBreakdown aggregates per-topic accuracy over a set of answers.
// Answers whose question is missing from the lookup are ignored.
func TopicBreakdown(answers []*store.Answer, questions []*store.Question) map[exam.QuestionType]TopicStats {
	byID := make(map[int]*store.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	breakdown := make(map[exam.QuestionType]TopicStats)
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			continue
		}
		stats := breakdown[q.QuestionType]
		stats.Total++
		if a.IsCorrect {
			stats.Correct++
		}
		breakdown[q.QuestionType] = stats
	}

	for topic, stats := range breakdown {
		if stats.Total > 0 {
			stats.Accuracy = float64(stats.Correct) / float64(stats.Total)
			breakdown[topic] = stats
		}
	}
	return breakdown
}
