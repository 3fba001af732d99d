package grading

import "github.com/abhisek/lectio/internal/llm"

// GradeSchema defines the JSON schema for short-answer grading responses.
var GradeSchema = &llm.Schema{
	Name:        "answer-grade",
	Description: "Grade for a free-text answer against the expected answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grade": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "How well the student answer matches the expected answer, 0-100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences telling the learner what was right and what was missing",
			},
		},
		"required":             []any{"grade", "feedback"},
		"additionalProperties": false,
	},
}

// CodeGradeSchema defines the JSON schema for coding-answer grading
// responses. The four components sum to the total grade.
var CodeGradeSchema = &llm.Schema{
	Name:        "code-grade",
	Description: "Component-weighted grade for a coding answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"algorithmic_understanding": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     50,
				"description": "Does the answer show understanding of the underlying algorithm",
			},
			"logic_correctness": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     30,
				"description": "Is the logic correct as written",
			},
			"code_quality": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     10,
				"description": "Naming, structure, readability",
			},
			"edge_case_awareness": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     10,
				"description": "Does the answer handle or mention edge cases",
			},
			"understands_concept": map[string]any{
				"type":        "boolean",
				"description": "True when the answer demonstrates conceptual understanding even with minor mistakes",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences of feedback for the learner",
			},
		},
		"required": []any{
			"algorithmic_understanding", "logic_correctness", "code_quality",
			"edge_case_awareness", "understands_concept", "feedback",
		},
		"additionalProperties": false,
	},
}
