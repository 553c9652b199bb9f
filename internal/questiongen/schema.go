package questiongen

import "github.com/abhisek/pathwise/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "assessment-question",
	Description: "A single adaptive career assessment question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question shown to the user",
			},
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"multiple-choice", "scale", "text", "scenario"},
				"description": "How the user answers. scale is a 1-5 self rating; scenario is answered in free text.",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Options ordered from least to most experienced for multiple-choice. Empty array otherwise.",
			},
			"skill": map[string]any{
				"type":        "string",
				"description": "The career skill this question assesses, spelled exactly as listed",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Why this question is relevant given the previous responses",
			},
		},
		"required":             []any{"question", "type", "options", "skill", "difficulty", "reasoning"},
		"additionalProperties": false,
	},
}
