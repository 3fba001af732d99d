package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lectio/internal/content"
	"github.com/abhisek/lectio/internal/grading"
	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/remediation"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/screens/home"
	"github.com/abhisek/lectio/internal/screens/lecture"
	"github.com/abhisek/lectio/internal/screens/review"
	"github.com/abhisek/lectio/internal/store"
	"github.com/abhisek/lectio/internal/ui/layout"
)

// Options carries the dependencies built by the CLI layer.
type Options struct {
	LearnerID string
	Store     *store.Store

	// Lectures available for playback, loaded at startup.
	Lectures []*content.Lecture

	// LLMProvider enables grading and remediation. Nil degrades both to
	// their fallback paths.
	LLMProvider llm.Provider

	// StartLecture, when non-nil, opens that lecture directly instead of
	// the home menu.
	StartLecture *content.Lecture

	// StartReview opens the review loop directly.
	StartReview bool
}

// Deps bundles the services screens need, built once from Options.
type Deps struct {
	LearnerID   string
	Lectures    []*content.Lecture
	Grader      grading.Grader
	Remediation *remediation.Service
	EventRepo   store.EventRepo
	Progress    store.ProgressRepo
	Reviews     store.ReviewRepo
}

func buildDeps(opts Options) *Deps {
	deps := &Deps{
		LearnerID: opts.LearnerID,
		Lectures:  opts.Lectures,
	}
	if opts.Store != nil {
		deps.EventRepo = opts.Store.EventRepo()
		deps.Progress = opts.Store.ProgressRepo()
		deps.Reviews = opts.Store.ReviewRepo()
	}
	if opts.LLMProvider != nil {
		deps.Grader = grading.NewLLMGrader(opts.LLMProvider, grading.DefaultConfig())
		var remRepo store.RemediationRepo
		if opts.Store != nil {
			remRepo = opts.Store.RemediationRepo()
		}
		deps.Remediation = remediation.NewService(opts.LLMProvider, remRepo)
	}
	return deps
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	deps := buildDeps(opts)

	var initial screen.Screen
	switch {
	case opts.StartLecture != nil:
		initial = lecture.New(opts.StartLecture, lecture.Deps{
			LearnerID:   deps.LearnerID,
			Grader:      deps.Grader,
			Remediation: deps.Remediation,
			EventRepo:   deps.EventRepo,
			Progress:    deps.Progress,
			Reviews:     deps.Reviews,
		})
	case opts.StartReview:
		initial = review.New(deps.Lectures, review.Deps{
			LearnerID: deps.LearnerID,
			Grader:    deps.Grader,
			EventRepo: deps.EventRepo,
			Reviews:   deps.Reviews,
		})
	default:
		initial = home.New(home.Deps{
			LearnerID:   deps.LearnerID,
			Lectures:    deps.Lectures,
			Grader:      deps.Grader,
			Remediation: deps.Remediation,
			EventRepo:   deps.EventRepo,
			Progress:    deps.Progress,
			Reviews:     deps.Reviews,
		})
	}

	return AppModel{router: router.New(initial)}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	points := 0
	if pp, ok := active.(screen.PointsProvider); ok {
		points = pp.Points()
	}

	header := layout.RenderHeader(title, points, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
