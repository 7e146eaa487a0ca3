package store

import (
	"context"
	"fmt"

	"github.com/shailiguru/ssat-practice/ent"
	"github.com/shailiguru/ssat-practice/ent/llmrequestevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Requests     int    `json:"count"`
		InputTokens  int    `json:"sum_input_tokens"`
		OutputTokens int    `json:"sum_output_tokens"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.Count(),
			ent.Sum(llmrequestevent.FieldInputTokens),
			ent.Sum(llmrequestevent.FieldOutputTokens),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("usage by model: %w", err)
	}

	out := make([]ModelUsage, len(rows))
	for i, row := range rows {
		out[i] = ModelUsage(row)
	}
	return out, nil
}
