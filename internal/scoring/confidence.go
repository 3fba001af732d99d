package scoring

import "fmt"

// Confidence is the wager level a learner commits to before the result
// is revealed. It scales both reward and penalty.
type Confidence string

const (
	NotSure        Confidence = "not_sure"
	Maybe          Confidence = "maybe"
	PrettySure     Confidence = "pretty_sure"
	AbsolutelySure Confidence = "absolutely_sure"
)

// multipliers maps each confidence level to its wager multiplier.
var multipliers = map[Confidence]float64{
	NotSure:        0.5,
	Maybe:          1.0,
	PrettySure:     2.0,
	AbsolutelySure: 3.0,
}

// Levels returns all confidence levels in ascending wager order.
func Levels() []Confidence {
	return []Confidence{NotSure, Maybe, PrettySure, AbsolutelySure}
}

// Multiplier returns the wager multiplier for a confidence level.
func (c Confidence) Multiplier() (float64, error) {
	m, ok := multipliers[c]
	if !ok {
		return 0, fmt.Errorf("unknown confidence level: %q", c)
	}
	return m, nil
}

// Valid reports whether c is a known confidence level.
func (c Confidence) Valid() bool {
	_, ok := multipliers[c]
	return ok
}

// Label returns a display string for the confidence level.
func (c Confidence) Label() string {
	switch c {
	case NotSure:
		return "Not sure"
	case Maybe:
		return "Maybe"
	case PrettySure:
		return "Pretty sure"
	case AbsolutelySure:
		return "Absolutely sure"
	}
	return string(c)
}
