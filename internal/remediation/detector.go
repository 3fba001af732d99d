package remediation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/abhisek/lectio/internal/llm"
)

// DetectorConfig holds configuration for the misconception detector.
type DetectorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultDetectorConfig returns sensible defaults.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		MaxTokens:   400,
		Temperature: 0.3,
	}
}

// Detector identifies the misconception behind a wrong answer and picks
// the lecture segment that covers the missing concept.
type Detector struct {
	provider llm.Provider
	cfg      DetectorConfig
}

// NewDetector creates an LLM-based misconception detector.
func NewDetector(provider llm.Provider, cfg DetectorConfig) *Detector {
	return &Detector{provider: provider, cfg: cfg}
}

type detectionOutput struct {
	Misconception        string  `json:"misconception"`
	MissingConcept       string  `json:"missing_concept"`
	RootCause            string  `json:"root_cause"`
	RecommendedTimestamp float64 `json:"recommended_timestamp"`
	EndTimestamp         float64 `json:"end_timestamp"`
}

// Detect analyzes a wrong answer against the lecture transcript.
func (d *Detector) Detect(ctx context.Context, req Request) (*Detection, error) {
	ctx = llm.WithPurpose(ctx, "misconception-detection")

	userMsg, err := buildDetectMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build detection prompt: %w", err)
	}

	resp, err := d.provider.Generate(ctx, llm.Request{
		System: detectSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      DetectionSchema,
		MaxTokens:   d.cfg.MaxTokens,
		Temperature: d.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM misconception detection failed: %w", err)
	}

	var raw detectionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if err := validateSegment(raw, req.DurationSeconds); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	return &Detection{
		Misconception:  raw.Misconception,
		MissingConcept: raw.MissingConcept,
		RootCause:      raw.RootCause,
		JumpToSeconds:  raw.RecommendedTimestamp,
		EndSeconds:     raw.EndTimestamp,
	}, nil
}

func validateSegment(raw detectionOutput, duration float64) error {
	if raw.RecommendedTimestamp < 0 {
		return fmt.Errorf("recommended timestamp %.1f is negative", raw.RecommendedTimestamp)
	}
	if raw.EndTimestamp <= raw.RecommendedTimestamp {
		return fmt.Errorf("segment end %.1f not after start %.1f", raw.EndTimestamp, raw.RecommendedTimestamp)
	}
	if duration > 0 && raw.EndTimestamp > duration {
		return fmt.Errorf("segment end %.1f beyond lecture duration %.1f", raw.EndTimestamp, duration)
	}
	return nil
}

const detectSystemPrompt = `You are an expert tutor analyzing why a learner answered a lecture comprehension question incorrectly.

Instructions:
- Identify the specific misconception the wrong answer reveals, the concept the learner is missing, and the likely root cause.
- Pick the transcript segment where the missing concept is explained: recommended_timestamp is where the learner should start rewatching, end_timestamp is where the segment ends.
- Timestamps must come from the transcript. Keep the segment short, typically under 90 seconds.
- Keep each text field to one sentence.`

var detectUserTemplate = template.Must(template.New("detect").Parse(`Question: {{.QuestionText}}
Question type: {{.QuestionType}}
Correct answer: {{.CorrectAnswer}}
Learner's answer: {{.StudentAnswer}}

Lecture transcript (seconds: text):
{{.Transcript}}`))

func buildDetectMessage(req Request) (string, error) {
	var buf bytes.Buffer
	if err := detectUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
