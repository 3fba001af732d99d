// Package scoring implements the confidence-wagering point engine.
// Score is a pure function: the caller persists the attempt and updates
// aggregate totals.
package scoring

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrade is returned when a collaborator grade falls outside [0,100].
var ErrInvalidGrade = errors.New("grade outside [0,100]")

// CorrectThreshold is the grade at or above which a graded answer counts
// as correct.
const CorrectThreshold = 70

// partialCreditFloor is the grade above which a wrong answer still earns
// partial credit instead of a penalty.
const partialCreditFloor = 40

// Outcome is the grading result fed into the scoring engine: either a
// boolean exact-match result or a collaborator grade in [0,100].
type Outcome struct {
	// Exact is true for exact-match (multiple choice) outcomes; Correct
	// then carries the result and Grade is ignored.
	Exact   bool
	Correct bool

	// Grade holds the collaborator grade for short answers.
	Grade int
}

// ExactOutcome builds an exact-match outcome.
func ExactOutcome(correct bool) Outcome {
	return Outcome{Exact: true, Correct: correct}
}

// GradedOutcome builds a collaborator-graded outcome. Correctness is
// derived from the threshold.
func GradedOutcome(grade int) Outcome {
	return Outcome{Grade: grade, Correct: grade >= CorrectThreshold}
}

// Score converts (confidence, outcome, base reward) into a signed point
// delta.
//
// Exact outcomes: correct earns round(base*mult); incorrect loses
// round(base*0.25) at not_sure, nothing at maybe, and half the wager
// round(base*mult*0.5) at pretty_sure/absolutely_sure.
//
// Graded outcomes: grade >= 70 earns round(base*mult*grade/100);
// 40 <= grade < 70 earns partial credit round(base*0.5*grade/100) with no
// confidence multiplier and no penalty; grade < 40 loses
// round(base*mult*0.3).
func Score(confidence Confidence, outcome Outcome, baseReward int) (int, error) {
	mult, err := confidence.Multiplier()
	if err != nil {
		return 0, err
	}
	base := float64(baseReward)

	if outcome.Exact {
		if outcome.Correct {
			return round(base * mult), nil
		}
		switch confidence {
		case NotSure:
			return -round(base * 0.25), nil
		case Maybe:
			return 0, nil
		default: // PrettySure, AbsolutelySure
			return -round(base * mult * 0.5), nil
		}
	}

	grade := outcome.Grade
	if grade < 0 || grade > 100 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidGrade, grade)
	}

	switch {
	case grade >= CorrectThreshold:
		return round(base * mult * float64(grade) / 100), nil
	case grade >= partialCreditFloor:
		return round(base * 0.5 * float64(grade) / 100), nil
	default:
		return -round(base * mult * 0.3), nil
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
