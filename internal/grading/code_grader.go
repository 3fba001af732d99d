package grading

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/lectio/internal/llm"
)

// conceptFloor is the minimum total grade awarded when the grader judges
// that the learner understands the concept despite surface mistakes.
const conceptFloor = 90

// CodeGrader grades coding answers with a component-weighted rubric.
type CodeGrader struct {
	provider llm.Provider
	cfg      Config
}

// NewCodeGrader creates an LLM-backed coding-answer grader.
func NewCodeGrader(provider llm.Provider, cfg Config) *CodeGrader {
	return &CodeGrader{provider: provider, cfg: cfg}
}

type codeGradeOutput struct {
	AlgorithmicUnderstanding int    `json:"algorithmic_understanding"`
	LogicCorrectness         int    `json:"logic_correctness"`
	CodeQuality              int    `json:"code_quality"`
	EdgeCaseAwareness        int    `json:"edge_case_awareness"`
	UnderstandsConcept       bool   `json:"understands_concept"`
	Feedback                 string `json:"feedback"`
}

// Grade evaluates a coding answer. The total grade is the sum of the four
// components, floored at 90 when the grader reports conceptual
// understanding.
func (g *CodeGrader) Grade(ctx context.Context, in Input) (*Result, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "grading")

	userMsg, err := buildCodeGradeMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build code grading prompt: %w", err)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: codeGradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      CodeGradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM code grading failed: %w", err)
	}

	var raw codeGradeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if err := validateComponents(raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	total := raw.AlgorithmicUnderstanding + raw.LogicCorrectness + raw.CodeQuality + raw.EdgeCaseAwareness
	if raw.UnderstandsConcept && total < conceptFloor {
		total = conceptFloor
	}

	return &Result{Grade: total, Feedback: raw.Feedback}, nil
}

func validateComponents(raw codeGradeOutput) error {
	checks := []struct {
		name string
		val  int
		max  int
	}{
		{"algorithmic_understanding", raw.AlgorithmicUnderstanding, 50},
		{"logic_correctness", raw.LogicCorrectness, 30},
		{"code_quality", raw.CodeQuality, 10},
		{"edge_case_awareness", raw.EdgeCaseAwareness, 10},
	}
	for _, c := range checks {
		if c.val < 0 || c.val > c.max {
			return fmt.Errorf("%s %d outside [0,%d]", c.name, c.val, c.max)
		}
	}
	return nil
}

const codeGradeSystemPrompt = `You are grading a learner's code answer to a programming question asked during a video lecture.

Score four components independently:
- algorithmic_understanding (0-50): does the answer show the right algorithmic idea?
- logic_correctness (0-30): is the logic correct as written?
- code_quality (0-10): naming, structure, readability.
- edge_case_awareness (0-10): does the answer handle or mention edge cases?

Also report understands_concept: true when the learner clearly grasps the concept even if the code has surface mistakes. Keep feedback to one or two sentences.`

var codeGradeUserTemplate = template.Must(template.New("codegrade").Parse(`Question: {{.Question}}

Reference solution: {{.ExpectedAnswer}}

Learner's code: {{.StudentAnswer}}`))

func buildCodeGradeMessage(in Input) (string, error) {
	var buf bytes.Buffer
	if err := codeGradeUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
