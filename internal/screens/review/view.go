package review

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/ui/theme"
)

func (s *ReviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return centered(width, theme.Error, "\n\n"+s.errMsg)
	}

	switch s.phase {
	case phaseEmpty:
		return centered(width, theme.TextDim, "\n\nNothing due for review. Come back later!\n\nEnter to go back")
	case phaseQuestion, phaseConfidence:
		return s.renderQuestion(width)
	case phaseGrading:
		return centered(width, theme.TextDim, "\n\nGrading your answer...")
	case phaseResult:
		return s.renderResult(width)
	case phaseDone:
		return s.renderDone(width)
	}
	return ""
}

func centered(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}

func (s *ReviewScreen) renderQuestion(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Review %d of %d", s.index+1, len(s.queue))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	if s.phase == phaseConfidence {
		answer := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Your answer: " + s.currentAnswer())
		b.WriteString("  " + answer + "\n\n")
		b.WriteString(indent(s.confidence.View()))
		return b.String()
	}

	if s.mcActive {
		b.WriteString(indent(s.mc.View()))
		b.WriteString("\n")
		b.WriteString(centered(width, theme.TextDim, "Pick an option, then Enter"))
	} else {
		item := s.current()
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(item.Body))
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Text, "Answer: "+s.input.View()))
	}

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Error, s.notice))
	}

	return b.String()
}

func (s *ReviewScreen) renderResult(width int) string {
	if s.last == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	if s.last.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite."))
	}
	b.WriteString("\n\n")

	detail := fmt.Sprintf("%+d points", s.last.Points)
	if s.last.Grade != nil {
		detail = fmt.Sprintf("Grade %d/100   %+d points", *s.last.Grade, s.last.Points)
	}
	b.WriteString(centered(width, theme.Accent, detail))

	if s.last.Feedback != "" {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.TextDim, s.last.Feedback))
	}

	if s.last.NeedsReview {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Grading was unavailable; your answer was accepted."))
	}

	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.TextDim, "Enter for the next item"))

	return b.String()
}

func (s *ReviewScreen) renderDone(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("Review session complete!"))
	b.WriteString("\n\n")

	total := s.points
	if total < 0 {
		total = 0
	}
	b.WriteString(centered(width, theme.Accent,
		fmt.Sprintf("%d/%d correct   %d points", s.correct, len(s.queue), total)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.TextDim, "Enter to go back"))

	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}
