// Package home is the main menu: pick a lecture, review due items, or
// check stats.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/content"
	"github.com/abhisek/lectio/internal/grading"
	"github.com/abhisek/lectio/internal/remediation"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/screens/lecture"
	"github.com/abhisek/lectio/internal/screens/review"
	"github.com/abhisek/lectio/internal/screens/stats"
	"github.com/abhisek/lectio/internal/store"
	"github.com/abhisek/lectio/internal/ui/components"
	"github.com/abhisek/lectio/internal/ui/theme"
)

// Deps bundles the services the home screen hands down to the screens it
// opens.
type Deps struct {
	LearnerID   string
	Lectures    []*content.Lecture
	Grader      grading.Grader
	Remediation *remediation.Service
	EventRepo   store.EventRepo
	Progress    store.ProgressRepo
	Reviews     store.ReviewRepo
}

// HomeScreen is the application's main menu.
type HomeScreen struct {
	deps Deps
	menu components.Menu

	totalPoints int
	reviewsDue  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Stats are loaded once at creation and
// refresh each time the screen regains focus via Init.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.loadStats()
	h.menu = components.NewMenu(h.buildMenu())
	return h
}

func (h *HomeScreen) loadStats() {
	ctx := context.Background()
	if h.deps.EventRepo != nil {
		if total, err := h.deps.EventRepo.TotalPoints(ctx, h.deps.LearnerID); err == nil {
			h.totalPoints = total
		}
	}
	h.reviewsDue = 0
	if h.deps.Reviews != nil {
		recs, err := h.deps.Reviews.ListByLearner(ctx, h.deps.LearnerID)
		if err == nil {
			now := time.Now()
			for _, rec := range recs {
				if !now.Before(rec.NextReviewDate) {
					h.reviewsDue++
				}
			}
		}
	}
}

func (h *HomeScreen) buildMenu() []components.MenuItem {
	var items []components.MenuItem

	for _, lec := range h.deps.Lectures {
		lec := lec
		items = append(items, components.MenuItem{
			Label: lec.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lecture.New(lec, lecture.Deps{
						LearnerID:   h.deps.LearnerID,
						Grader:      h.deps.Grader,
						Remediation: h.deps.Remediation,
						EventRepo:   h.deps.EventRepo,
						Progress:    h.deps.Progress,
						Reviews:     h.deps.Reviews,
					})}
				}
			},
		})
	}

	reviewLabel := "Review due items"
	if h.reviewsDue > 0 {
		reviewLabel = fmt.Sprintf("Review due items (%d)", h.reviewsDue)
	}
	items = append(items,
		components.MenuItem{
			Label: reviewLabel,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: review.New(h.deps.Lectures, review.Deps{
						LearnerID: h.deps.LearnerID,
						Grader:    h.deps.Grader,
						EventRepo: h.deps.EventRepo,
						Reviews:   h.deps.Reviews,
					})}
				}
			},
		},
		components.MenuItem{
			Label: "Stats",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(stats.Deps{
						LearnerID: h.deps.LearnerID,
						EventRepo: h.deps.EventRepo,
						Reviews:   h.deps.Reviews,
					})}
				}
			},
		},
		components.MenuItem{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)
	return items
}

func (h *HomeScreen) Init() tea.Cmd {
	// Refresh after returning from a lecture or review session.
	h.loadStats()
	h.menu = components.NewMenu(h.buildMenu())
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("LECTIO"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Adaptive lecture player"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("%d points   %d reviews due", h.totalPoints, h.reviewsDue)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(statsLine))
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu))

	if len(h.deps.Lectures) == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("No lectures loaded. Pass lecture files on the command line."))
	}

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
