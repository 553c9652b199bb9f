package analysis

import "github.com/abhisek/pathwise/internal/llm"

var stringList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

// AnalysisSchema defines the JSON schema for LLM assessment analysis responses.
var AnalysisSchema = &llm.Schema{
	Name:        "assessment-analysis",
	Description: "Holistic analysis of a career readiness assessment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallScore": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "Overall readiness score from 0 to 100",
			},
			"overallAssessment": map[string]any{
				"type":        "string",
				"description": "Two or three sentence summary of the candidate's readiness",
			},
			"skillGaps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"skill":           map[string]any{"type": "string"},
						"currentLevel":    map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
						"targetLevel":     map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
						"recommendations": stringList,
					},
					"required":             []any{"skill", "currentLevel", "targetLevel", "recommendations"},
					"additionalProperties": false,
				},
			},
			"recommendations":  stringList,
			"strengths":        stringList,
			"improvementAreas": stringList,
			"nextSteps":        stringList,
			"learningPath": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"phase":     map[string]any{"type": "string"},
						"duration":  map[string]any{"type": "string"},
						"skills":    stringList,
						"resources": stringList,
					},
					"required":             []any{"phase", "duration", "skills", "resources"},
					"additionalProperties": false,
				},
			},
			"confidenceScore": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 100,
			},
		},
		"required": []any{
			"overallScore", "overallAssessment", "skillGaps", "recommendations",
			"strengths", "improvementAreas", "nextSteps", "learningPath", "confidenceScore",
		},
		"additionalProperties": false,
	},
}
