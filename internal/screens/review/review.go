// Package review runs the spaced repetition quiz over due items.
package review

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/lectio/internal/content"
	"github.com/abhisek/lectio/internal/grading"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/scoring"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/spacedrep"
	"github.com/abhisek/lectio/internal/store"
	"github.com/abhisek/lectio/internal/ui/components"
	"github.com/abhisek/lectio/internal/ui/layout"
)

// Deps bundles the services the review screen needs.
type Deps struct {
	LearnerID string
	Grader    grading.Grader
	EventRepo store.EventRepo
	Reviews   store.ReviewRepo
}

type phase int

const (
	phaseEmpty phase = iota
	phaseQuestion
	phaseConfidence
	phaseGrading
	phaseResult
	phaseDone
)

// itemResult is the graded outcome of one review question.
type itemResult struct {
	Correct     bool
	Grade       *int
	Points      int
	Feedback    string
	NeedsReview bool
}

// gradedMsg is sent when grading of a review answer completes.
type gradedMsg struct {
	Result *itemResult
	Err    error
}

// ReviewScreen quizzes the learner through items due for review, most
// overdue first. Answers are wagered and scored exactly like pause point
// answers; attempt events carry no lecture context.
type ReviewScreen struct {
	deps      Deps
	sessionID string
	scheduler *spacedrep.Scheduler

	queue []*content.PracticeItem
	index int

	phase      phase
	mc         components.MultiChoice
	mcActive   bool
	input      components.TextInput
	confidence components.ConfidencePicker

	last    *itemResult
	points  int
	correct int

	notice string
	errMsg string
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a review screen over the due items found across the given
// lectures.
func New(lectures []*content.Lecture, deps Deps) *ReviewScreen {
	s := &ReviewScreen{
		deps:      deps,
		sessionID: uuid.New().String(),
		phase:     phaseEmpty,
	}

	ctx := context.Background()
	scheduler, err := spacedrep.NewScheduler(ctx, deps.LearnerID, deps.Reviews)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.scheduler = scheduler

	items := make(map[string]*content.PracticeItem)
	for _, lec := range lectures {
		for _, pp := range lec.PausePoints {
			items[pp.Item.ID] = pp.Item
		}
	}

	for _, id := range scheduler.DueItems(time.Now()) {
		if item, ok := items[id]; ok {
			s.queue = append(s.queue, item)
		}
	}

	if len(s.queue) > 0 {
		s.phase = phaseQuestion
		s.setupQuestion()
	}
	return s
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) Points() int {
	if s.points < 0 {
		return 0
	}
	return s.points
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuestion, phaseConfidence:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) current() *content.PracticeItem {
	return s.queue[s.index]
}

func (s *ReviewScreen) setupQuestion() {
	item := s.current()
	s.confidence = components.NewConfidencePicker()
	if item.Type == content.TypeMultipleChoice {
		s.mcActive = true
		s.mc = components.NewMultiChoice(item.Body, item.MultipleChoice.Options, item.MultipleChoice.CorrectIndex)
	} else {
		s.mcActive = false
		s.input = components.NewTextInput("Type your answer...", false, 0)
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradedMsg:
		return s.handleGraded(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseQuestion && !s.mcActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ReviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phaseEmpty, phaseDone:
		if key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case phaseQuestion:
		if key == "enter" {
			if s.currentAnswer() == "" {
				return s, nil
			}
			s.phase = phaseConfidence
			return s, nil
		}
		if s.mcActive {
			var cmd tea.Cmd
			s.mc, cmd = s.mc.Update(msg)
			return s, cmd
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseConfidence:
		var cmd tea.Cmd
		s.confidence, cmd = s.confidence.Update(msg)
		if s.confidence.Committed {
			s.phase = phaseGrading
			return s, s.gradeCmd()
		}
		return s, cmd

	case phaseResult:
		if key == "enter" {
			s.advance()
		}
		return s, nil
	}

	return s, nil
}

func (s *ReviewScreen) currentAnswer() string {
	if s.mcActive {
		return s.mc.Options[s.mc.Selected]
	}
	return strings.TrimSpace(s.input.Value())
}

func (s *ReviewScreen) gradeCmd() tea.Cmd {
	item := s.current()
	answer := s.currentAnswer()
	confidence := s.confidence.Value()
	deps := s.deps
	scheduler := s.scheduler
	sessionID := s.sessionID

	return func() tea.Msg {
		ctx := context.Background()
		started := time.Now()

		var outcome scoring.Outcome
		var grade *int
		var feedback string
		needsReview := false

		switch item.Type {
		case content.TypeMultipleChoice:
			outcome = scoring.ExactOutcome(content.CheckExact(answer, item))
		case content.TypeShortAnswer:
			result, err := gradeShortAnswer(ctx, deps.Grader, item, answer)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: grading failed, accepting answer for review: %v\n", err)
				outcome = scoring.ExactOutcome(true)
				needsReview = true
			} else {
				outcome = scoring.GradedOutcome(result.Grade)
				g := result.Grade
				grade = &g
				feedback = result.Feedback
			}
		}

		points, err := scoring.Score(confidence, outcome, item.BaseReward)
		if err != nil {
			return gradedMsg{Err: err}
		}

		if deps.EventRepo != nil {
			data := store.AttemptEventData{
				SessionID:   sessionID,
				LearnerID:   deps.LearnerID,
				ItemID:      item.ID,
				Answer:      answer,
				Confidence:  string(confidence),
				Correct:     outcome.Correct,
				Grade:       grade,
				Points:      points,
				TimeMs:      int(time.Since(started).Milliseconds()),
				NeedsReview: needsReview,
			}
			if err := deps.EventRepo.AppendAttemptEvent(ctx, data); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to record attempt: %v\n", err)
			}
		}

		if _, err := scheduler.RecordAttempt(ctx, item.ID, outcome.Correct, time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to update review schedule: %v\n", err)
		}

		return gradedMsg{Result: &itemResult{
			Correct:     outcome.Correct,
			Grade:       grade,
			Points:      points,
			Feedback:    feedback,
			NeedsReview: needsReview,
		}}
	}
}

func gradeShortAnswer(ctx context.Context, grader grading.Grader, item *content.PracticeItem, answer string) (*grading.Result, error) {
	if grader == nil {
		return nil, fmt.Errorf("no grader configured")
	}
	return grader.Grade(ctx, grading.Input{
		Question:       item.Body,
		ExpectedAnswer: item.ShortAnswer.ExpectedAnswer,
		StudentAnswer:  answer,
	})
}

func (s *ReviewScreen) handleGraded(msg gradedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.notice = msg.Err.Error()
		s.phase = phaseQuestion
		s.confidence = components.NewConfidencePicker()
		return s, nil
	}

	s.last = msg.Result
	s.points += msg.Result.Points
	if msg.Result.Correct {
		s.correct++
	}
	s.notice = ""
	s.phase = phaseResult
	return s, nil
}

func (s *ReviewScreen) advance() {
	s.index++
	if s.index >= len(s.queue) {
		s.phase = phaseDone
		return
	}
	s.phase = phaseQuestion
	s.setupQuestion()
}
