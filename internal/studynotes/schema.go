package studynotes

import "github.com/jmsone/JeopardyTrainer-sub000/internal/llm"

// NoteSchema defines the JSON schema for study note generation.
var NoteSchema = &llm.Schema{
	Name:        "study-note",
	Description: "A study note with overview, key facts, and a practice question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the note (3-8 words)",
			},
			"overview": map[string]any{
				"type":        "string",
				"description": "3-5 sentence orientation to the category's most testable ground",
			},
			"key_facts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "4-6 high-yield facts, one sentence each",
			},
			"practice_question": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{
						"type":        "string",
						"description": "One practice question drawing on the key facts",
					},
					"answer": map[string]any{
						"type":        "string",
						"description": "The correct answer",
					},
					"explanation": map[string]any{
						"type":        "string",
						"description": "Brief explanation of the practice answer",
					},
				},
				"required":             []any{"prompt", "answer", "explanation"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"title", "overview", "key_facts", "practice_question"},
		"additionalProperties": false,
	},
}
