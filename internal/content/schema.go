package content

// lectureSchemaDef is the JSON Schema every lecture file must satisfy
// before decoding. Structural invariants that a schema cannot express
// (ascending offsets, correct index bounds) are checked in validate().
var lectureSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":               map[string]any{"type": "string", "minLength": 1},
		"title":            map[string]any{"type": "string", "minLength": 1},
		"duration_seconds": map[string]any{"type": "number", "exclusiveMinimum": 0},
		"transcript": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"at_seconds": map[string]any{"type": "number", "minimum": 0},
					"text":       map[string]any{"type": "string"},
				},
				"required":             []any{"at_seconds", "text"},
				"additionalProperties": false,
			},
		},
		"pause_points": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":             map[string]any{"type": "string", "minLength": 1},
					"offset_seconds": map[string]any{"type": "number", "minimum": 0},
					"cognitive_load": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					"order_index":    map[string]any{"type": "integer", "minimum": 0},
					"question":       questionSchemaDef,
				},
				"required":             []any{"id", "offset_seconds", "order_index", "question"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "title", "duration_seconds", "pause_points"},
	"additionalProperties": false,
}

// questionSchemaDef is the loosely-shaped question payload. Which optional
// fields must be present depends on "type"; that is resolved into the
// discriminated PracticeItem variant at ingestion.
var questionSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":         map[string]any{"type": "string", "minLength": 1},
		"topics":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"difficulty": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
		"body":       map[string]any{"type": "string", "minLength": 1},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"multiple_choice", "short_answer"},
		},
		"options":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"correct_index":   map[string]any{"type": "integer", "minimum": 0},
		"expected_answer": map[string]any{"type": "string"},
		"explanation":     map[string]any{"type": "string"},
		"base_reward":     map[string]any{"type": "integer", "minimum": 1},
	},
	"required":             []any{"id", "body", "type", "base_reward"},
	"additionalProperties": false,
}
