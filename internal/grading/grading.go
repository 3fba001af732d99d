// Package grading evaluates free-text answers against the expected answer
// using an LLM collaborator. Multiple choice answers never reach this
// package; they are checked by exact match in content.
package grading

import (
	"context"
	"fmt"
	"unicode"
)

const (
	maxAnswerLen   = 5000
	maxQuestionLen = 1000
)

// Input is one answer to grade.
type Input struct {
	Question       string
	ExpectedAnswer string
	StudentAnswer  string
}

// Result is the collaborator's verdict. Grade is in [0,100].
type Result struct {
	Grade    int
	Feedback string
}

// Grader evaluates a student answer. Implementations must return only
// grades in [0,100].
type Grader interface {
	Grade(ctx context.Context, in Input) (*Result, error)
}

// ErrInvalidInput reports an input that fails validation before any
// network call is made.
type ErrInvalidInput struct {
	Field  string
	Reason string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid grading input: %s %s", e.Field, e.Reason)
}

// ValidateInput enforces length bounds and rejects control characters.
// Newlines and tabs are allowed; answers are frequently multi-line.
func ValidateInput(in Input) error {
	if in.StudentAnswer == "" {
		return &ErrInvalidInput{Field: "student answer", Reason: "is empty"}
	}
	if len(in.StudentAnswer) > maxAnswerLen {
		return &ErrInvalidInput{Field: "student answer", Reason: fmt.Sprintf("exceeds %d chars", maxAnswerLen)}
	}
	if len(in.ExpectedAnswer) > maxAnswerLen {
		return &ErrInvalidInput{Field: "expected answer", Reason: fmt.Sprintf("exceeds %d chars", maxAnswerLen)}
	}
	if len(in.Question) > maxQuestionLen {
		return &ErrInvalidInput{Field: "question", Reason: fmt.Sprintf("exceeds %d chars", maxQuestionLen)}
	}
	for field, s := range map[string]string{
		"student answer":  in.StudentAnswer,
		"expected answer": in.ExpectedAnswer,
		"question":        in.Question,
	} {
		if hasControlChars(s) {
			return &ErrInvalidInput{Field: field, Reason: "contains control characters"}
		}
	}
	return nil
}

func hasControlChars(s string) bool {
	for _, r := range s {
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
