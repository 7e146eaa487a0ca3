package qgen

import "github.com/shailiguru/ssat-practice/internal/llm"

func questionItemSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"stem": map[string]any{"type": "string"},
			"choices": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"A": map[string]any{"type": "string"},
					"B": map[string]any{"type": "string"},
					"C": map[string]any{"type": "string"},
					"D": map[string]any{"type": "string"},
					"E": map[string]any{"type": "string"},
				},
			},
			"correct_answer": map[string]any{
				"type": "string",
				"enum": []any{"A", "B", "C", "D", "E"},
			},
			"explanation": map[string]any{"type": "string"},
			"topic":       map[string]any{"type": "string"},
		},
		"required": []any{"stem", "choices", "correct_answer", "explanation"},
	}
}

func questionBatchSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "question-batch",
		Description: "A batch of SSAT multiple-choice questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":  "array",
					"items": questionItemSchema(),
				},
			},
			"required": []any{"questions"},
		},
	}
}

func readingBatchSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "reading-batch",
		Description: "Reading comprehension passages with attached questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"passages": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"passage_text": map[string]any{"type": "string"},
							"questions": map[string]any{
								"type":  "array",
								"items": questionItemSchema(),
							},
						},
						"required": []any{"passage_text", "questions"},
					},
				},
			},
			"required": []any{"passages"},
		},
	}
}
