package questiongen

import "github.com/jmsone/JeopardyTrainer-sub000/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "trivia-question",
	Description: "A single multiple-choice trivia question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The question text shown to the player, in plain ASCII text",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. Must exactly match one of the choices.",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options, one of which is the correct answer",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Self-assessed difficulty bucket",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "One or two sentences of context shown after the player answers",
			},
		},
		"required":             []any{"prompt", "answer", "choices", "difficulty", "explanation"},
		"additionalProperties": false,
	},
}
