// Package pool manages the question pool: selection of unseen
// questions, generation fallback when the pool runs dry, and
// replenishment between sessions.
package pool

import (
	"context"
	"fmt"
	"strings"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/store"
)

// Generator produces new questions when the pool cannot satisfy a
// request. Implemented by qgen.Generator.
type Generator interface {
	GenerateQuestions(ctx context.Context, qtype exam.QuestionType, level exam.Level, grade, difficulty, count int) ([]*store.Question, error)
	GenerateReadingComprehension(ctx context.Context, level exam.Level, grade, difficulty, passages, perPassage int) ([]*store.Question, error)
}

// StatusFunc receives progress and warning messages during pool
// operations. Levels: "info", "success", "warning", "error".
type StatusFunc func(msg, level string)

// Cache serves questions from the persisted pool, falling back to
// generation. Generation failure is reported through the status
// callback and results in a partial batch, never an error.
type Cache struct {
	questions store.QuestionRepo
	gen       Generator
	settings  exam.Settings
	onStatus  StatusFunc
}

// New creates a Cache. onStatus may be nil.
func New(questions store.QuestionRepo, gen Generator, settings exam.Settings, onStatus StatusFunc) *Cache {
	if onStatus == nil {
		onStatus = func(string, string) {}
	}
	return &Cache{questions: questions, gen: gen, settings: settings, onStatus: onStatus}
}

// GetQuestions returns up to count unseen questions of one type.
// Selection order: exact difficulty first, then any difficulty, then
// freshly generated questions (persisted before returning). The result
// may be shorter than count when generation fails or underfills.
func (c *Cache) GetQuestions(ctx context.Context, studentID int, qtype exam.QuestionType, level exam.Level, difficulty, count, grade int) ([]*store.Question, error) {
	if count <= 0 {
		return nil, nil
	}

	questions, err := c.questions.Unseen(ctx, studentID, qtype, level, difficulty, count)
	if err != nil {
		return nil, fmt.Errorf("unseen questions: %w", err)
	}
	if len(questions) >= count {
		return questions[:count], nil
	}

	more, err := c.questions.UnseenAnyDifficulty(ctx, studentID, qtype, level, count-len(questions))
	if err != nil {
		return nil, fmt.Errorf("unseen questions any difficulty: %w", err)
	}
	seen := make(map[int]bool, len(questions))
	for _, q := range questions {
		seen[q.ID] = true
	}
	for _, q := range more {
		if !seen[q.ID] {
			questions = append(questions, q)
			seen[q.ID] = true
		}
	}
	if len(questions) >= count {
		return questions[:count], nil
	}

	generated, err := c.generate(ctx, qtype, level, grade, difficulty, count-len(questions))
	if err != nil {
		c.onStatus(fmt.Sprintf("Could not generate new questions: %v", err), "warning")
	} else if len(generated) > 0 {
		generated = dedupeStems(generated)
		if err := c.questions.SaveQuestions(ctx, generated); err != nil {
			return nil, fmt.Errorf("save generated questions: %w", err)
		}
		questions = append(questions, generated...)
	}

	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// generate requests a batch sized to at least shortfall, reshaping
// reading comprehension into whole passages.
func (c *Cache) generate(ctx context.Context, qtype exam.QuestionType, level exam.Level, grade, difficulty, shortfall int) ([]*store.Question, error) {
	if qtype == exam.TypeReadingComprehension {
		perPassage := c.settings.QuestionsPerPassage
		needed := shortfall
		if needed < perPassage {
			needed = perPassage
		}
		passages := needed / perPassage
		if passages < 1 {
			passages = 1
		}
		return c.gen.GenerateReadingComprehension(ctx, level, grade, difficulty, passages, perPassage)
	}

	needed := shortfall
	if needed < c.settings.QuestionsPerBatch {
		needed = c.settings.QuestionsPerBatch
	}
	return c.gen.GenerateQuestions(ctx, qtype, level, grade, difficulty, needed)
}

// GetMixedQuestions assembles a whole section, distributing the count
// across the section's topics per its split strategy.
func (c *Cache) GetMixedQuestions(ctx context.Context, studentID int, section exam.SectionConfig, level exam.Level, difficultyMap map[exam.QuestionType]int, grade int) ([]*store.Question, error) {
	var questions []*store.Question
	for _, tc := range splitCounts(section) {
		if tc.count <= 0 {
			continue
		}
		difficulty, ok := difficultyMap[tc.qtype]
		if !ok {
			difficulty = int(c.settings.DifficultyDefault)
		}
		qs, err := c.GetQuestions(ctx, studentID, tc.qtype, level, difficulty, tc.count, grade)
		if err != nil {
			return nil, err
		}
		questions = append(questions, qs...)
	}
	return questions, nil
}

type topicCount struct {
	qtype exam.QuestionType
	count int
}

// splitCounts distributes a section's question count across its topics.
func splitCounts(section exam.SectionConfig) []topicCount {
	topics := section.Topics
	total := section.QuestionCount
	if len(topics) == 0 {
		return nil
	}

	switch section.Split {
	case exam.SplitHalf:
		// Two topics, remainder to the second.
		half := total / 2
		return []topicCount{
			{topics[0], half},
			{topics[1], total - half},
		}
	case exam.SplitSingle:
		return []topicCount{{topics[0], total}}
	default:
		// Even split, remainder to the first topic.
		per := total / len(topics)
		rem := total - per*len(topics)
		out := make([]topicCount, len(topics))
		for i, qt := range topics {
			out[i] = topicCount{qt, per}
		}
		out[0].count += rem
		return out
	}
}

// CheckAndReplenish tops up every relevant topic whose unseen pool has
// fallen below the low-water mark. Failures are reported and skipped.
func (c *Cache) CheckAndReplenish(ctx context.Context, studentID int, level exam.Level, grade int) error {
	for _, qtype := range exam.TypesForLevel(level) {
		unseen, err := c.questions.CountUnseen(ctx, studentID, qtype, level)
		if err != nil {
			return fmt.Errorf("count unseen %s: %w", qtype, err)
		}
		if unseen >= c.settings.MinPoolSize {
			continue
		}

		c.onStatus(fmt.Sprintf("Generating more %s questions...", qtype), "info")
		if err := c.generateAndSave(ctx, qtype, level, grade); err != nil {
			c.onStatus(fmt.Sprintf("Failed to replenish %s: %v", qtype, err), "warning")
		}
	}
	return nil
}

// GenerateBatch pre-generates one default-difficulty batch per topic,
// for operator use. Returns the per-topic count of saved questions.
func (c *Cache) GenerateBatch(ctx context.Context, level exam.Level, grade int) map[exam.QuestionType]int {
	results := make(map[exam.QuestionType]int)
	for _, qtype := range exam.TypesForLevel(level) {
		c.onStatus(fmt.Sprintf("Generating %s questions...", qtype), "info")
		saved, err := c.generateAndCount(ctx, qtype, level, grade)
		if err != nil {
			results[qtype] = 0
			c.onStatus(fmt.Sprintf("%s: failed (%v)", qtype, err), "error")
			continue
		}
		results[qtype] = saved
		c.onStatus(fmt.Sprintf("%s: %d generated", qtype, saved), "success")
	}
	return results
}

func (c *Cache) generateAndSave(ctx context.Context, qtype exam.QuestionType, level exam.Level, grade int) error {
	_, err := c.generateAndCount(ctx, qtype, level, grade)
	return err
}

func (c *Cache) generateAndCount(ctx context.Context, qtype exam.QuestionType, level exam.Level, grade int) (int, error) {
	defaultDifficulty := int(c.settings.DifficultyDefault)

	var (
		generated []*store.Question
		err       error
	)
	if qtype == exam.TypeReadingComprehension {
		generated, err = c.gen.GenerateReadingComprehension(ctx, level, grade, defaultDifficulty, 3, c.settings.QuestionsPerPassage)
	} else {
		generated, err = c.gen.GenerateQuestions(ctx, qtype, level, grade, defaultDifficulty, c.settings.QuestionsPerBatch)
	}
	if err != nil {
		return 0, err
	}

	generated = dedupeStems(generated)
	if len(generated) == 0 {
		return 0, nil
	}
	if err := c.questions.SaveQuestions(ctx, generated); err != nil {
		return 0, fmt.Errorf("save questions: %w", err)
	}
	return len(generated), nil
}

// PoolStats returns the unseen-question count per relevant topic.
func (c *Cache) PoolStats(ctx context.Context, studentID int, level exam.Level) (map[exam.QuestionType]int, error) {
	stats := make(map[exam.QuestionType]int)
	for _, qtype := range exam.TypesForLevel(level) {
		n, err := c.questions.CountUnseen(ctx, studentID, qtype, level)
		if err != nil {
			return nil, fmt.Errorf("count unseen %s: %w", qtype, err)
		}
		stats[qtype] = n
	}
	return stats, nil
}

// dedupeStems drops questions whose normalized stem repeats within the
// batch. Deduplication is batch-local only; the historical corpus is
// not consulted.
func dedupeStems(questions []*store.Question) []*store.Question {
	seen := make(map[string]bool, len(questions))
	unique := questions[:0:0]
	for _, q := range questions {
		normalized := strings.ToLower(strings.TrimSpace(q.Stem))
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		unique = append(unique, q)
	}
	return unique
}
