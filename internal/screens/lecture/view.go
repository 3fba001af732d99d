package lecture

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/player"
	"github.com/abhisek/lectio/internal/ui/components"
	"github.com/abhisek/lectio/internal/ui/theme"
)

func (s *LectureScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg + "\n\nPress any key to go back")
	}

	if s.quitConfirm {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render("\n\nLeave the lecture? Your progress is saved.\n\n(Y)es / (N)o")
	}

	switch s.state.Phase {
	case player.PhasePlaying, player.PhaseRemediationPlaying:
		return s.renderPlayback(width)
	case player.PhasePausedForQuestion:
		return s.renderQuestion(width)
	case player.PhaseGrading:
		return s.renderCentered(width, theme.TextDim, "Grading your answer...")
	case player.PhaseResultShown:
		return s.renderResult(width)
	case player.PhaseRemediationOffered:
		return s.renderRemediationOffer(width)
	case player.PhaseFollowupQuestion:
		return s.renderFollowup(width)
	case player.PhaseFollowupResult:
		return s.renderFollowupResult(width)
	case player.PhaseLectureComplete:
		return s.renderComplete(width)
	}
	return ""
}

func (s *LectureScreen) renderCentered(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render("\n\n" + text)
}

func (s *LectureScreen) renderPlayback(width int) string {
	var b strings.Builder

	gate := s.state.Gate
	pos := gate.CurrentTime()

	// Time and points line.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s / %s", formatTime(pos), formatTime(gate.Duration())))
	right := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("%d pts  ", s.state.ReportedPoints()))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right)
	b.WriteString("\n")

	bar := components.NewProgressBar("", pos/gate.Duration(), false, width-4)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	if s.state.Phase == player.PhaseRemediationPlaying && s.state.Plan != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Rewatching %s – %s",
				formatTime(s.state.Plan.Detection.JumpToSeconds),
				formatTime(s.state.Plan.Detection.EndSeconds))))
		b.WriteString("\n\n")
	}

	// Current transcript line, the "video".
	line := s.lec.LineAt(pos)
	if line == "" {
		line = "..."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Italic(true).
		Render("“" + line + "”"))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.notice))
	}

	return b.String()
}

func (s *LectureScreen) renderQuestion(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Checkpoint"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	if s.stage == stageConfidence {
		answer := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Your answer: " + s.currentAnswer())
		b.WriteString("  " + answer + "\n\n")
		b.WriteString(indent(s.confidence.View()))
		return b.String()
	}

	if s.mcActive {
		b.WriteString(indent(s.mc.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Pick an option, then Enter"))
	} else {
		item := s.state.ActivePP.Item
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(item.Body))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.notice))
	}

	return b.String()
}

func (s *LectureScreen) renderResult(width int) string {
	result := s.state.LastResult
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")

	if result.Correct {
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

	detail := fmt.Sprintf("%+d points", result.Points)
	if result.Grade != nil {
		detail = fmt.Sprintf("Grade %d/100   %+d points", *result.Grade, result.Points)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(detail))

	if result.Feedback != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(result.Feedback))
	}

	if result.NeedsReview {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Grading was unavailable; your answer was accepted."))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter to continue"))

	return b.String()
}

func (s *LectureScreen) renderRemediationOffer(width int) string {
	plan := s.state.Plan
	if plan == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Let's revisit that idea"))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-8, 70)).Render(plan.Explanation)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Rewatch %s – %s?",
			formatTime(plan.Detection.JumpToSeconds),
			formatTime(plan.Detection.EndSeconds))))
	b.WriteString("\n\n")

	yes := components.NewButton("Rewatch", s.offerYes, nil)
	no := components.NewButton("Keep going", !s.offerYes, nil)
	buttons := yes.View() + "   " + no.View()
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(buttons))

	return b.String()
}

func (s *LectureScreen) renderFollowup(width int) string {
	plan := s.state.Plan
	if plan == nil || plan.FollowUp == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render("Quick check"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(plan.FollowUp.Question))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View()))

	return b.String()
}

func (s *LectureScreen) renderFollowupResult(width int) string {
	outcome := s.state.LastFollowup
	if outcome == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	if outcome.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Got it! +%d bonus points", outcome.Bonus)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("The answer was: "+outcome.Answer))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter to continue"))

	return b.String()
}

func (s *LectureScreen) renderComplete(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("Lecture complete!"))
	b.WriteString("\n\n")

	correct := 0
	for _, r := range s.state.Responses {
		if r.Correct {
			correct++
		}
	}
	summary := fmt.Sprintf("%d/%d checkpoints correct   %d points",
		correct, len(s.lec.PausePoints), s.state.ReportedPoints())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(summary))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter to finish"))

	return b.String()
}

func formatTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
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
