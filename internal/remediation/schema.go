package remediation

import "github.com/abhisek/lectio/internal/llm"

// DetectionSchema defines the JSON schema for misconception detection
// responses.
var DetectionSchema = &llm.Schema{
	Name:        "misconception-detection",
	Description: "Diagnosis of a wrong answer with a lecture segment to rewatch",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"misconception": map[string]any{
				"type":        "string",
				"description": "The specific misconception the answer reveals, one sentence",
			},
			"missing_concept": map[string]any{
				"type":        "string",
				"description": "The concept the learner is missing",
			},
			"root_cause": map[string]any{
				"type":        "string",
				"description": "Why the learner likely holds this misconception, one sentence",
			},
			"recommended_timestamp": map[string]any{
				"type":        "number",
				"minimum":     0,
				"description": "Lecture timestamp in seconds where the missing concept is explained",
			},
			"end_timestamp": map[string]any{
				"type":        "number",
				"minimum":     0,
				"description": "Timestamp in seconds where the relevant segment ends",
			},
		},
		"required": []any{
			"misconception", "missing_concept", "root_cause",
			"recommended_timestamp", "end_timestamp",
		},
		"additionalProperties": false,
	},
}

// GenerationSchema defines the JSON schema for remediation generation
// responses. The follow-up question is optional.
var GenerationSchema = &llm.Schema{
	Name:        "remediation-content",
	Description: "Targeted explanation and optional retest question for a misconception",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "A short explanation addressing the misconception directly, 2-4 sentences",
			},
			"follow_up": map[string]any{
				"type": []any{"object", "null"},
				"properties": map[string]any{
					"question": map[string]any{
						"type":        "string",
						"description": "A new question testing the same concept, answerable in a few words",
					},
					"answer": map[string]any{
						"type":        "string",
						"description": "The exact expected answer",
					},
				},
				"required":             []any{"question", "answer"},
				"additionalProperties": false,
				"description":          "Retest question, or null when the concept does not lend itself to a short-answer retest",
			},
		},
		"required":             []any{"explanation", "follow_up"},
		"additionalProperties": false,
	},
}
