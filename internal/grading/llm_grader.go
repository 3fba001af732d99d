package grading

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/lectio/internal/llm"
)

// Config holds configuration for the LLM graders.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.2,
	}
}

// LLMGrader grades short free-text answers with an LLM.
type LLMGrader struct {
	provider llm.Provider
	cfg      Config
}

// NewLLMGrader creates an LLM-backed short-answer grader.
func NewLLMGrader(provider llm.Provider, cfg Config) *LLMGrader {
	return &LLMGrader{provider: provider, cfg: cfg}
}

type gradeOutput struct {
	Grade    int    `json:"grade"`
	Feedback string `json:"feedback"`
}

// Grade evaluates a short answer. Input validation happens before any
// network call.
func (g *LLMGrader) Grade(ctx context.Context, in Input) (*Result, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "grading")

	userMsg, err := buildGradeMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build grading prompt: %w", err)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: gradeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GradeSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM grading failed: %w", err)
	}

	var raw gradeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if raw.Grade < 0 || raw.Grade > 100 {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("grade %d outside [0,100]", raw.Grade),
		}
	}

	return &Result{Grade: raw.Grade, Feedback: raw.Feedback}, nil
}

const gradeSystemPrompt = `You are grading a learner's free-text answer to a comprehension question asked during a video lecture.

Instructions:
- Compare the learner's answer to the expected answer for conceptual equivalence, not word-for-word match.
- Grade 0-100: 100 means fully equivalent, 70+ means the core concept is correct, below 40 means the answer misses the concept.
- Ignore spelling and grammar unless they change the meaning.
- Keep feedback to one or two sentences addressed to the learner.`

var gradeUserTemplate = template.Must(template.New("grade").Parse(`Question: {{.Question}}

Expected answer: {{.ExpectedAnswer}}

Learner's answer: {{.StudentAnswer}}`))

func buildGradeMessage(in Input) (string, error) {
	var buf bytes.Buffer
	if err := gradeUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
