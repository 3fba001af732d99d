// Package stats shows a learner's lifetime totals.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/store"
	"github.com/abhisek/lectio/internal/ui/layout"
	"github.com/abhisek/lectio/internal/ui/theme"
)

// Deps bundles the repos the stats screen reads from.
type Deps struct {
	LearnerID string
	EventRepo store.EventRepo
	Reviews   store.ReviewRepo
}

// StatsScreen displays lifetime points, attempt accuracy, and the review
// schedule summary.
type StatsScreen struct {
	totalPoints   int
	totalAttempts int
	correctCount  int
	tracked       int
	due           int
	errMsg        string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a stats screen with aggregates loaded up front.
func New(deps Deps) *StatsScreen {
	s := &StatsScreen{}
	ctx := context.Background()

	if deps.EventRepo != nil {
		total, err := deps.EventRepo.TotalPoints(ctx, deps.LearnerID)
		if err != nil {
			s.errMsg = err.Error()
			return s
		}
		s.totalPoints = total

		attempts, correct, err := deps.EventRepo.AttemptCounts(ctx, deps.LearnerID)
		if err != nil {
			s.errMsg = err.Error()
			return s
		}
		s.totalAttempts = attempts
		s.correctCount = correct
	}

	if deps.Reviews != nil {
		recs, err := deps.Reviews.ListByLearner(ctx, deps.LearnerID)
		if err != nil {
			s.errMsg = err.Error()
			return s
		}
		s.tracked = len(recs)
		now := time.Now()
		for _, rec := range recs {
			if !now.Before(rec.NextReviewDate) {
				s.due++
			}
		}
	}

	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}

	accuracy := "-"
	if s.totalAttempts > 0 {
		accuracy = fmt.Sprintf("%.0f%%", 100*float64(s.correctCount)/float64(s.totalAttempts))
	}

	rows := []struct {
		label string
		value string
	}{
		{"Total points", fmt.Sprintf("%d", s.totalPoints)},
		{"Questions answered", fmt.Sprintf("%d", s.totalAttempts)},
		{"Accuracy", accuracy},
		{"Items tracked", fmt.Sprintf("%d", s.tracked)},
		{"Reviews due", fmt.Sprintf("%d", s.due)},
	}

	var b strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	for _, row := range rows {
		line := fmt.Sprintf("%s  %s",
			labelStyle.Render(fmt.Sprintf("%-20s", row.label)),
			valueStyle.Render(row.value))
		b.WriteString(line + "\n")
	}

	card := theme.Card.Render(b.String())
	return "\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(card)
}
