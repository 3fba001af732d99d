package content

import (
	"strconv"
	"strings"
)

// ItemType discriminates how a practice item is answered.
type ItemType string

const (
	TypeMultipleChoice ItemType = "multiple_choice"
	TypeShortAnswer    ItemType = "short_answer"
)

// MultipleChoice holds the answer variant for exact-match items.
type MultipleChoice struct {
	// Options contains the displayed choices, at least 2.
	Options []string

	// CorrectIndex is the index into Options of the correct choice.
	CorrectIndex int
}

// Correct returns the text of the correct option.
func (mc *MultipleChoice) Correct() string {
	return mc.Options[mc.CorrectIndex]
}

// ShortAnswer holds the answer variant for collaborator-graded items.
type ShortAnswer struct {
	// ExpectedAnswer is the reference answer sent to the grading collaborator.
	ExpectedAnswer string
}

// PracticeItem is a single question with its answer variant resolved at
// ingestion. Exactly one of MultipleChoice / ShortAnswer is non-nil,
// matching Type.
type PracticeItem struct {
	ID          string
	Topics      []string
	Difficulty  int // 1-5
	Body        string
	Type        ItemType
	Explanation string
	BaseReward  int

	MultipleChoice *MultipleChoice
	ShortAnswer    *ShortAnswer
}

// CheckExact compares a learner's input against the correct option of a
// multiple-choice item. Returns false for short-answer items, which are
// graded by the collaborator instead.
//
// Normalization rules:
// - Whitespace is trimmed
// - Comparison is case-insensitive
// - A numeric answer (1-N) selects the option at that position
func CheckExact(learnerAnswer string, item *PracticeItem) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}
	if item.Type != TypeMultipleChoice || item.MultipleChoice == nil {
		return false
	}

	mc := item.MultipleChoice

	// Try matching by option position (1-N).
	if idx, err := strconv.Atoi(learnerAnswer); err == nil && idx >= 1 && idx <= len(mc.Options) {
		return idx-1 == mc.CorrectIndex
	}

	// Match by text (case-insensitive).
	return strings.EqualFold(
		learnerAnswer,
		strings.TrimSpace(mc.Correct()),
	)
}
