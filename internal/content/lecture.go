package content

import (
	"fmt"
	"sort"
)

// PausePoint is an authored checkpoint in a lecture. Immutable once loaded.
type PausePoint struct {
	ID            string
	OffsetSeconds float64
	CognitiveLoad float64 // 0.0-1.0, authoring-time estimate
	OrderIndex    int
	Item          *PracticeItem
}

// TranscriptLine is one timed line of the lecture transcript.
type TranscriptLine struct {
	AtSeconds float64
	Text      string
}

// Lecture is a recorded lecture with its transcript and pause points.
type Lecture struct {
	ID              string
	Title           string
	DurationSeconds float64
	Transcript      []TranscriptLine
	PausePoints     []*PausePoint // sorted by OffsetSeconds ascending
}

// PausePoint returns the pause point with the given ID, or nil.
func (l *Lecture) PausePoint(id string) *PausePoint {
	for _, pp := range l.PausePoints {
		if pp.ID == id {
			return pp
		}
	}
	return nil
}

// LineAt returns the transcript line active at time t, or an empty string.
func (l *Lecture) LineAt(t float64) string {
	text := ""
	for _, line := range l.Transcript {
		if line.AtSeconds > t {
			break
		}
		text = line.Text
	}
	return text
}

// validate checks structural invariants after decoding.
func (l *Lecture) validate() error {
	if l.DurationSeconds <= 0 {
		return fmt.Errorf("lecture %q: duration must be positive", l.ID)
	}

	if !sort.SliceIsSorted(l.PausePoints, func(i, j int) bool {
		return l.PausePoints[i].OffsetSeconds < l.PausePoints[j].OffsetSeconds
	}) {
		return fmt.Errorf("lecture %q: pause points must be in ascending timestamp order", l.ID)
	}

	seen := make(map[string]bool, len(l.PausePoints))
	for i, pp := range l.PausePoints {
		if seen[pp.ID] {
			return fmt.Errorf("lecture %q: duplicate pause point id %q", l.ID, pp.ID)
		}
		seen[pp.ID] = true

		if pp.OffsetSeconds < 0 || pp.OffsetSeconds >= l.DurationSeconds {
			return fmt.Errorf("pause point %q: offset %.1fs outside lecture duration", pp.ID, pp.OffsetSeconds)
		}
		if pp.OrderIndex != i {
			return fmt.Errorf("pause point %q: order index %d does not match position %d", pp.ID, pp.OrderIndex, i)
		}
		if err := validateItem(pp.Item); err != nil {
			return fmt.Errorf("pause point %q: %w", pp.ID, err)
		}
	}
	return nil
}

func validateItem(item *PracticeItem) error {
	if item == nil {
		return fmt.Errorf("missing question")
	}
	if item.Body == "" {
		return fmt.Errorf("item %q: empty body", item.ID)
	}
	if item.BaseReward <= 0 {
		return fmt.Errorf("item %q: base reward must be positive", item.ID)
	}

	switch item.Type {
	case TypeMultipleChoice:
		mc := item.MultipleChoice
		if mc == nil {
			return fmt.Errorf("item %q: multiple_choice variant missing", item.ID)
		}
		if len(mc.Options) < 2 {
			return fmt.Errorf("item %q: need at least 2 options", item.ID)
		}
		if mc.CorrectIndex < 0 || mc.CorrectIndex >= len(mc.Options) {
			return fmt.Errorf("item %q: correct index %d out of range", item.ID, mc.CorrectIndex)
		}
	case TypeShortAnswer:
		sa := item.ShortAnswer
		if sa == nil {
			return fmt.Errorf("item %q: short_answer variant missing", item.ID)
		}
		if sa.ExpectedAnswer == "" {
			return fmt.Errorf("item %q: empty expected answer", item.ID)
		}
	default:
		return fmt.Errorf("item %q: unknown type %q", item.ID, item.Type)
	}
	return nil
}
