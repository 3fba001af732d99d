package content

import (
	"strings"
	"testing"
)

const validLectureJSON = `{
	"id": "ml-101",
	"title": "Intro to Classification Metrics",
	"duration_seconds": 600,
	"transcript": [
		{"at_seconds": 0, "text": "Welcome back."},
		{"at_seconds": 30, "text": "Precision is about predicted positives."}
	],
	"pause_points": [
		{
			"id": "pp-1",
			"offset_seconds": 60,
			"cognitive_load": 0.4,
			"order_index": 0,
			"question": {
				"id": "q-1",
				"topics": ["metrics"],
				"difficulty": 2,
				"body": "Which metric is computed over predicted positives?",
				"type": "multiple_choice",
				"options": ["Recall", "Precision", "Accuracy", "F1"],
				"correct_index": 1,
				"explanation": "Precision = TP / (TP + FP).",
				"base_reward": 100
			}
		},
		{
			"id": "pp-2",
			"offset_seconds": 300,
			"cognitive_load": 0.7,
			"order_index": 1,
			"question": {
				"id": "q-2",
				"body": "Explain the precision/recall trade-off.",
				"type": "short_answer",
				"expected_answer": "Raising the decision threshold increases precision but lowers recall.",
				"base_reward": 100
			}
		}
	]
}`

func TestParseLecture_Valid(t *testing.T) {
	lec, err := ParseLecture([]byte(validLectureJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lec.ID != "ml-101" {
		t.Errorf("id = %q, want ml-101", lec.ID)
	}
	if len(lec.PausePoints) != 2 {
		t.Fatalf("expected 2 pause points, got %d", len(lec.PausePoints))
	}

	mc := lec.PausePoints[0].Item
	if mc.Type != TypeMultipleChoice || mc.MultipleChoice == nil {
		t.Fatal("expected resolved multiple_choice variant")
	}
	if mc.ShortAnswer != nil {
		t.Error("multiple_choice item must not carry a short_answer variant")
	}
	if mc.MultipleChoice.Correct() != "Precision" {
		t.Errorf("correct option = %q, want Precision", mc.MultipleChoice.Correct())
	}

	sa := lec.PausePoints[1].Item
	if sa.Type != TypeShortAnswer || sa.ShortAnswer == nil {
		t.Fatal("expected resolved short_answer variant")
	}
}

func TestParseLecture_RejectsUnknownField(t *testing.T) {
	bad := strings.Replace(validLectureJSON, `"id": "ml-101"`, `"id": "ml-101", "bogus": 1`, 1)
	if _, err := ParseLecture([]byte(bad)); err == nil {
		t.Fatal("expected schema validation error for unknown field")
	}
}

func TestParseLecture_RejectsMissingCorrectIndex(t *testing.T) {
	bad := strings.Replace(validLectureJSON, `"correct_index": 1,`, "", 1)
	if _, err := ParseLecture([]byte(bad)); err == nil {
		t.Fatal("expected error for multiple_choice without correct_index")
	}
}

func TestParseLecture_RejectsUnorderedPausePoints(t *testing.T) {
	bad := strings.Replace(validLectureJSON, `"offset_seconds": 300`, `"offset_seconds": 10`, 1)
	if _, err := ParseLecture([]byte(bad)); err == nil {
		t.Fatal("expected error for descending pause point offsets")
	}
}

func TestParseLecture_RejectsOffsetPastDuration(t *testing.T) {
	bad := strings.Replace(validLectureJSON, `"offset_seconds": 300`, `"offset_seconds": 900`, 1)
	if _, err := ParseLecture([]byte(bad)); err == nil {
		t.Fatal("expected error for pause point past lecture end")
	}
}

func TestLineAt(t *testing.T) {
	lec, err := ParseLecture([]byte(validLectureJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		t    float64
		want string
	}{
		{0, "Welcome back."},
		{29.9, "Welcome back."},
		{30, "Precision is about predicted positives."},
		{599, "Precision is about predicted positives."},
	}
	for _, tt := range tests {
		if got := lec.LineAt(tt.t); got != tt.want {
			t.Errorf("LineAt(%.1f) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestCheckExact(t *testing.T) {
	item := &PracticeItem{
		ID:   "q-1",
		Type: TypeMultipleChoice,
		MultipleChoice: &MultipleChoice{
			Options:      []string{"Recall", "Precision", "Accuracy", "F1"},
			CorrectIndex: 1,
		},
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{"Precision", true},
		{"precision", true},
		{"  PRECISION  ", true},
		{"2", true}, // 1-based option position
		{"1", false},
		{"Recall", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := CheckExact(tt.answer, item); got != tt.want {
			t.Errorf("CheckExact(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestCheckExact_ShortAnswerAlwaysFalse(t *testing.T) {
	item := &PracticeItem{
		ID:          "q-2",
		Type:        TypeShortAnswer,
		ShortAnswer: &ShortAnswer{ExpectedAnswer: "anything"},
	}
	if CheckExact("anything", item) {
		t.Fatal("short-answer items are graded by the collaborator, not exact match")
	}
}
