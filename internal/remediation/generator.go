package remediation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/lectio/internal/llm"
)

// GeneratorConfig holds configuration for the remediation generator.
type GeneratorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGeneratorConfig returns sensible defaults.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MaxTokens:   500,
		Temperature: 0.5,
	}
}

// Generator produces a targeted explanation and optional follow-up
// question from a detection.
type Generator struct {
	provider llm.Provider
	cfg      GeneratorConfig
}

// NewGenerator creates an LLM-based remediation generator.
func NewGenerator(provider llm.Provider, cfg GeneratorConfig) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

type generationOutput struct {
	Explanation string `json:"explanation"`
	FollowUp    *struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"follow_up"`
}

type generateInput struct {
	Detection
	QuestionText  string
	CorrectAnswer string
	StudentAnswer string
}

// Generate produces remediation content for a detected misconception.
func (g *Generator) Generate(ctx context.Context, det Detection, req Request) (string, *FollowUp, error) {
	ctx = llm.WithPurpose(ctx, "remediation-generation")

	userMsg, err := buildGenerateMessage(generateInput{
		Detection:     det,
		QuestionText:  req.QuestionText,
		CorrectAnswer: req.CorrectAnswer,
		StudentAnswer: req.StudentAnswer,
	})
	if err != nil {
		return "", nil, fmt.Errorf("build generation prompt: %w", err)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      GenerationSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return "", nil, fmt.Errorf("LLM remediation generation failed: %w", err)
	}

	var raw generationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if raw.Explanation == "" {
		return "", nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty explanation")}
	}

	var followUp *FollowUp
	if raw.FollowUp != nil && raw.FollowUp.Question != "" && raw.FollowUp.Answer != "" {
		followUp = &FollowUp{Question: raw.FollowUp.Question, Answer: raw.FollowUp.Answer}
	}
	return raw.Explanation, followUp, nil
}

const generateSystemPrompt = `You are a tutor writing a short remediation for a learner who just answered a lecture question incorrectly.

Instructions:
- Address the identified misconception directly. Do not repeat the question or lecture verbatim.
- 2-4 sentences, encouraging tone, no filler.
- If the concept can be retested with a question answerable in a few words, include a follow-up question with its exact expected answer. Otherwise return null for follow_up.
- The follow-up must test the same concept but must not be the original question.`

var generateUserTemplate = template.Must(template.New("generate").Parse(`Misconception: {{.Misconception}}
Missing concept: {{.MissingConcept}}
Root cause: {{.RootCause}}

Original question: {{.QuestionText}}
Correct answer: {{.CorrectAnswer}}
Learner's answer: {{.StudentAnswer}}`))

func buildGenerateMessage(in generateInput) (string, error) {
	var buf bytes.Buffer
	if err := generateUserTemplate.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
