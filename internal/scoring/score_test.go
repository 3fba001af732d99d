package scoring

import (
	"errors"
	"testing"
)

func TestScore_ExactCorrect(t *testing.T) {
	tests := []struct {
		confidence Confidence
		base       int
		want       int
	}{
		{NotSure, 100, 50},
		{Maybe, 100, 100},
		{PrettySure, 100, 200},
		{AbsolutelySure, 100, 300},
		{AbsolutelySure, 75, 225},
		{NotSure, 75, 38}, // 37.5 rounds up
	}
	for _, tt := range tests {
		got, err := Score(tt.confidence, ExactOutcome(true), tt.base)
		if err != nil {
			t.Fatalf("Score(%s): %v", tt.confidence, err)
		}
		if got != tt.want {
			t.Errorf("Score(%s, correct, %d) = %d, want %d", tt.confidence, tt.base, got, tt.want)
		}
	}
}

func TestScore_ExactIncorrect(t *testing.T) {
	tests := []struct {
		confidence Confidence
		base       int
		want       int
	}{
		{NotSure, 100, -25},
		{Maybe, 100, 0},
		{PrettySure, 100, -100},
		{AbsolutelySure, 100, -150},
	}
	for _, tt := range tests {
		got, err := Score(tt.confidence, ExactOutcome(false), tt.base)
		if err != nil {
			t.Fatalf("Score(%s): %v", tt.confidence, err)
		}
		if got != tt.want {
			t.Errorf("Score(%s, incorrect, %d) = %d, want %d", tt.confidence, tt.base, got, tt.want)
		}
	}
}

func TestScore_GradedAboveThreshold(t *testing.T) {
	// grade=85, maybe, base=100 -> round(100*1*0.85) = 85
	out := GradedOutcome(85)
	if !out.Correct {
		t.Fatal("grade 85 should be correct")
	}
	got, err := Score(Maybe, out, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got != 85 {
		t.Errorf("points = %d, want 85", got)
	}

	// Confidence multiplier applies above the threshold.
	got, err = Score(AbsolutelySure, GradedOutcome(70), 100)
	if err != nil {
		t.Fatal(err)
	}
	if got != 210 {
		t.Errorf("points = %d, want 210", got)
	}
}

func TestScore_GradedPartialCredit(t *testing.T) {
	// grade=50: round(100*0.5*0.5) = 25, no confidence multiplier, no penalty.
	out := GradedOutcome(50)
	if out.Correct {
		t.Fatal("grade 50 should be incorrect")
	}
	for _, c := range Levels() {
		got, err := Score(c, out, 100)
		if err != nil {
			t.Fatal(err)
		}
		if got != 25 {
			t.Errorf("Score(%s, grade=50) = %d, want 25", c, got)
		}
	}
}

func TestScore_GradedLowGradePenalty(t *testing.T) {
	tests := []struct {
		confidence Confidence
		want       int
	}{
		{NotSure, -15},
		{Maybe, -30},
		{PrettySure, -60},
		{AbsolutelySure, -90},
	}
	for _, tt := range tests {
		got, err := Score(tt.confidence, GradedOutcome(39), 100)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Score(%s, grade=39) = %d, want %d", tt.confidence, got, tt.want)
		}
	}
}

func TestScore_GradedBoundaries(t *testing.T) {
	// 40 is partial credit, not penalty.
	got, err := Score(AbsolutelySure, GradedOutcome(40), 100)
	if err != nil {
		t.Fatal(err)
	}
	if got != 20 {
		t.Errorf("grade=40: points = %d, want 20", got)
	}

	// 69 is still partial credit.
	got, err = Score(Maybe, GradedOutcome(69), 100)
	if err != nil {
		t.Fatal(err)
	}
	if got != 35 { // round(100*0.5*0.69) = 34.5 -> 35
		t.Errorf("grade=69: points = %d, want 35", got)
	}
}

func TestScore_InvalidGrade(t *testing.T) {
	for _, grade := range []int{-1, 101, 500} {
		_, err := Score(Maybe, Outcome{Grade: grade}, 100)
		if !errors.Is(err, ErrInvalidGrade) {
			t.Errorf("grade=%d: expected ErrInvalidGrade, got %v", grade, err)
		}
	}
}

func TestScore_UnknownConfidence(t *testing.T) {
	_, err := Score(Confidence("certain"), ExactOutcome(true), 100)
	if err == nil {
		t.Fatal("expected error for unknown confidence level")
	}
}

func TestMultiplierTable(t *testing.T) {
	tests := []struct {
		c    Confidence
		want float64
	}{
		{NotSure, 0.5},
		{Maybe, 1.0},
		{PrettySure, 2.0},
		{AbsolutelySure, 3.0},
	}
	for _, tt := range tests {
		m, err := tt.c.Multiplier()
		if err != nil {
			t.Fatal(err)
		}
		if m != tt.want {
			t.Errorf("%s multiplier = %v, want %v", tt.c, m, tt.want)
		}
	}
}
