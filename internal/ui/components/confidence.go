package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/scoring"
	"github.com/abhisek/lectio/internal/ui/theme"
)

// ConfidencePicker selects the confidence wager before an answer is
// graded. The multiplier is shown next to each level so the stakes are
// visible up front.
type ConfidencePicker struct {
	Levels    []scoring.Confidence
	Selected  int
	Committed bool
}

// NewConfidencePicker creates a picker over all confidence levels,
// defaulting to the neutral wager.
func NewConfidencePicker() ConfidencePicker {
	levels := scoring.Levels()
	selected := 0
	for i, c := range levels {
		if c == scoring.Maybe {
			selected = i
		}
	}
	return ConfidencePicker{Levels: levels, Selected: selected}
}

// Value returns the selected confidence level.
func (c ConfidencePicker) Value() scoring.Confidence {
	return c.Levels[c.Selected]
}

// Update handles keyboard navigation. Number keys jump straight to a
// level.
func (c ConfidencePicker) Update(msg tea.Msg) (ConfidencePicker, tea.Cmd) {
	if c.Committed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k", "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j", "right", "l":
		if c.Selected < len(c.Levels)-1 {
			c.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(c.Levels) {
			c.Selected = idx
		}
	case "enter":
		c.Committed = true
	}

	return c, nil
}

// View renders the picker.
func (c ConfidencePicker) View() string {
	header := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("How sure are you?")
	s := header + "\n\n"

	for i, level := range c.Levels {
		mult, _ := level.Multiplier()
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %-16s ×%.1f", prefix, i+1, level.Label(), mult)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.Selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}

	return s
}
