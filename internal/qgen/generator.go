// Package qgen generates SSAT questions and writing feedback through
// an llm.Provider.
package qgen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shailiguru/ssat-practice/internal/exam"
	"github.com/shailiguru/ssat-practice/internal/llm"
	"github.com/shailiguru/ssat-practice/internal/store"
)

// ErrGeneration indicates generation produced no usable questions.
// Callers treat it as "fewer questions than requested", never fatal.
var ErrGeneration = errors.New("question generation failed")

const generationMaxTokens = 8192

// Generator produces question batches via an LLM provider. It spaces
// consecutive provider calls by the configured rate limit; transient
// provider failures are retried inside the provider stack.
type Generator struct {
	provider llm.Provider
	settings exam.Settings

	mu          sync.Mutex
	lastRequest time.Time
}

// New creates a Generator.
func New(provider llm.Provider, settings exam.Settings) *Generator {
	return &Generator{provider: provider, settings: settings}
}

// GenerateQuestions produces up to count questions of one type. Items
// that fail validation are dropped; an empty result is ErrGeneration.
func (g *Generator) GenerateQuestions(ctx context.Context, qtype exam.QuestionType, level exam.Level, grade, difficulty, count int) ([]*store.Question, error) {
	if qtype == exam.TypeReadingComprehension {
		passages := count / g.settings.QuestionsPerPassage
		if passages < 1 {
			passages = 1
		}
		return g.GenerateReadingComprehension(ctx, level, grade, difficulty, passages, g.settings.QuestionsPerPassage)
	}

	ctx = llm.WithPurpose(ctx, "question-gen")
	if err := g.pace(ctx); err != nil {
		return nil, err
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    questionSystemPrompt(qtype, level, grade, difficulty),
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: questionUserPrompt(qtype, count, difficulty, grade)}},
		Schema:    questionBatchSchema(),
		MaxTokens: generationMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	questions, err := parseQuestionBatch(resp.Content, qtype, level, difficulty, newBatchID())
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GenerateReadingComprehension produces passages with attached
// questions. Every question of a passage shares the passage text.
func (g *Generator) GenerateReadingComprehension(ctx context.Context, level exam.Level, grade, difficulty, passages, perPassage int) ([]*store.Question, error) {
	ctx = llm.WithPurpose(ctx, "reading-gen")
	if err := g.pace(ctx); err != nil {
		return nil, err
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    readingSystemPrompt(level, grade, difficulty),
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: readingUserPrompt(level, passages, perPassage)}},
		Schema:    readingBatchSchema(),
		MaxTokens: generationMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	questions, err := parseReadingBatch(resp.Content, level, difficulty, newBatchID())
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// WritingFeedback asks the tutor persona for feedback on a writing
// sample. Provider failure degrades to a canned encouragement rather
// than an error; the sample itself is already persisted by the caller.
func (g *Generator) WritingFeedback(ctx context.Context, promptText, response string, level exam.Level, grade int) string {
	ctx = llm.WithPurpose(ctx, "writing-feedback")
	if err := g.pace(ctx); err != nil {
		return degradedFeedback
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    writingSystemPrompt(level, grade),
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: writingUserPrompt(promptText, response)}},
		MaxTokens: 1024,
	})
	if err != nil {
		return degradedFeedback
	}
	return string(resp.Content)
}

const degradedFeedback = "Great effort! Your writing has been saved. " +
	"AI feedback is temporarily unavailable — check back later!"

// pace enforces the minimum spacing between provider calls.
func (g *Generator) pace(ctx context.Context) error {
	g.mu.Lock()
	wait := g.settings.RateLimit - time.Since(g.lastRequest)
	if wait < 0 {
		wait = 0
	}
	g.lastRequest = time.Now().Add(wait)
	g.mu.Unlock()

	if wait == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

// newBatchID returns a short identifier shared by one generated batch.
func newBatchID() string {
	return uuid.New().String()[:8]
}
