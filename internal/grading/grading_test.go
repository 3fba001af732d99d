package grading

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/lectio/internal/llm"
)

func validInput() Input {
	return Input{
		Question:       "What does gradient descent minimize?",
		ExpectedAnswer: "The loss function",
		StudentAnswer:  "It minimizes the loss",
	}
}

func TestValidateInput_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Input)
		field string
	}{
		{"empty student answer", func(in *Input) { in.StudentAnswer = "" }, "student answer"},
		{"student answer too long", func(in *Input) { in.StudentAnswer = strings.Repeat("a", 5001) }, "student answer"},
		{"expected answer too long", func(in *Input) { in.ExpectedAnswer = strings.Repeat("a", 5001) }, "expected answer"},
		{"question too long", func(in *Input) { in.Question = strings.Repeat("a", 1001) }, "question"},
		{"control char in answer", func(in *Input) { in.StudentAnswer = "loss\x00function" }, "student answer"},
		{"escape char in question", func(in *Input) { in.Question = "what\x1b[31m" }, "question"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.edit(&in)
			err := ValidateInput(in)
			var invalid *ErrInvalidInput
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if invalid.Field != tt.field {
				t.Errorf("field = %q, want %q", invalid.Field, tt.field)
			}
		})
	}
}

func TestValidateInput_AllowsMultiline(t *testing.T) {
	in := validInput()
	in.StudentAnswer = "line one\nline two\twith a tab\r\n"
	if err := ValidateInput(in); err != nil {
		t.Fatalf("multiline answer rejected: %v", err)
	}
}

func TestValidateInput_BoundaryLengths(t *testing.T) {
	in := validInput()
	in.StudentAnswer = strings.Repeat("a", 5000)
	in.ExpectedAnswer = strings.Repeat("b", 5000)
	in.Question = strings.Repeat("c", 1000)
	if err := ValidateInput(in); err != nil {
		t.Fatalf("at-limit input rejected: %v", err)
	}
}

func TestLLMGrader_Grade(t *testing.T) {
	resp := json.RawMessage(`{"grade":85,"feedback":"Core idea is right, but name the loss function explicitly."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	g := NewLLMGrader(mock, DefaultConfig())

	result, err := g.Grade(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if result.Grade != 85 {
		t.Errorf("grade = %d, want 85", result.Grade)
	}
	if result.Feedback == "" {
		t.Error("feedback is empty")
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "gradient descent") || !strings.Contains(msg, "minimizes the loss") {
		t.Errorf("prompt missing question or answer: %q", msg)
	}
}

func TestLLMGrader_InvalidInputSkipsNetwork(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewLLMGrader(mock, DefaultConfig())

	in := validInput()
	in.StudentAnswer = ""
	_, err := g.Grade(context.Background(), in)
	var invalid *ErrInvalidInput
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(mock.Calls) != 0 {
		t.Errorf("expected no provider calls, got %d", len(mock.Calls))
	}
}

func TestLLMGrader_OutOfRangeGrade(t *testing.T) {
	resp := json.RawMessage(`{"grade":150,"feedback":"great"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	g := NewLLMGrader(mock, DefaultConfig())

	_, err := g.Grade(context.Background(), validInput())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestLLMGrader_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	g := NewLLMGrader(mock, DefaultConfig())

	_, err := g.Grade(context.Background(), validInput())
	var rate *llm.ErrRateLimit
	if !errors.As(err, &rate) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
}

func TestCodeGrader_SumsComponents(t *testing.T) {
	resp := json.RawMessage(`{"algorithmic_understanding":40,"logic_correctness":25,"code_quality":8,"edge_case_awareness":5,"understands_concept":false,"feedback":"Solid, watch the off-by-one."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	g := NewCodeGrader(mock, DefaultConfig())

	result, err := g.Grade(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if result.Grade != 78 {
		t.Errorf("grade = %d, want 78", result.Grade)
	}
}

func TestCodeGrader_ConceptFloor(t *testing.T) {
	resp := json.RawMessage(`{"algorithmic_understanding":35,"logic_correctness":20,"code_quality":5,"edge_case_awareness":5,"understands_concept":true,"feedback":"Concept is right, syntax is off."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	g := NewCodeGrader(mock, DefaultConfig())

	result, err := g.Grade(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	// Components sum to 65 but understands_concept floors the total.
	if result.Grade != 90 {
		t.Errorf("grade = %d, want 90", result.Grade)
	}
}

func TestCodeGrader_FloorDoesNotLower(t *testing.T) {
	resp := json.RawMessage(`{"algorithmic_understanding":50,"logic_correctness":30,"code_quality":9,"edge_case_awareness":9,"understands_concept":true,"feedback":"Excellent."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	g := NewCodeGrader(mock, DefaultConfig())

	result, err := g.Grade(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}
	if result.Grade != 98 {
		t.Errorf("grade = %d, want 98", result.Grade)
	}
}

func TestCodeGrader_ComponentOutOfRange(t *testing.T) {
	resp := json.RawMessage(`{"algorithmic_understanding":60,"logic_correctness":25,"code_quality":8,"edge_case_awareness":5,"understands_concept":false,"feedback":"x"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	g := NewCodeGrader(mock, DefaultConfig())

	_, err := g.Grade(context.Background(), validInput())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
