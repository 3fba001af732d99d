package lecture

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/lectio/internal/content"
	"github.com/abhisek/lectio/internal/grading"
	"github.com/abhisek/lectio/internal/player"
	"github.com/abhisek/lectio/internal/playback"
	"github.com/abhisek/lectio/internal/remediation"
	"github.com/abhisek/lectio/internal/router"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/spacedrep"
	"github.com/abhisek/lectio/internal/store"
	"github.com/abhisek/lectio/internal/ui/components"
	"github.com/abhisek/lectio/internal/ui/layout"
)

// tickInterval must stay under the pause-point trigger window so no
// crossing is missed.
const tickInterval = 250 * time.Millisecond

const seekStep = 10.0

// noticeDuration is how long transient notices (blocked skip) stay up.
const noticeDuration = 2 * time.Second

// answerStage tracks the two-step submission: answer first, then wager.
type answerStage int

const (
	stageAnswer answerStage = iota
	stageConfidence
)

// Deps bundles the services the lecture screen needs.
type Deps struct {
	LearnerID   string
	Grader      grading.Grader
	Remediation *remediation.Service
	EventRepo   store.EventRepo
	Progress    store.ProgressRepo
	Reviews     store.ReviewRepo
}

// LectureScreen plays one lecture with its pause points.
type LectureScreen struct {
	lec  *content.Lecture
	deps Deps

	state *player.State

	stage      answerStage
	mc         components.MultiChoice
	mcActive   bool
	input      components.TextInput
	confidence components.ConfidencePicker

	offerYes bool

	notice      string
	noticeUntil time.Time

	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*LectureScreen)(nil)
var _ screen.KeyHintProvider = (*LectureScreen)(nil)

// New creates a lecture screen, resuming saved progress when available.
func New(lec *content.Lecture, deps Deps) *LectureScreen {
	s := &LectureScreen{lec: lec, deps: deps}

	ctx := context.Background()
	var resume *store.ProgressData
	if deps.Progress != nil {
		resume, _ = deps.Progress.Get(ctx, deps.LearnerID, lec.ID)
	}

	scheduler, err := spacedrep.NewScheduler(ctx, deps.LearnerID, deps.Reviews)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}

	s.state = player.NewState(lec, player.Config{
		LearnerID:   deps.LearnerID,
		SessionID:   uuid.New().String(),
		Grader:      deps.Grader,
		Remediation: deps.Remediation,
		Scheduler:   scheduler,
		EventRepo:   deps.EventRepo,
		Progress:    deps.Progress,
	}, resume)
	s.state.Gate.OnBlockedSkip = s.blockedSkipNotice(s.state.Gate.OnBlockedSkip)

	player.Start(ctx, s.state)
	return s
}

func (s *LectureScreen) blockedSkipNotice(inner func(playback.SeekResult)) func(playback.SeekResult) {
	return func(r playback.SeekResult) {
		if inner != nil {
			inner(r)
		}
		s.notice = "Can't skip ahead of what you've watched"
		s.noticeUntil = time.Now().Add(noticeDuration)
	}
}

func (s *LectureScreen) Init() tea.Cmd {
	if s.errMsg != "" {
		return nil
	}
	return tickCmd()
}

func (s *LectureScreen) Title() string {
	return s.lec.Title
}

func (s *LectureScreen) Points() int {
	if s.state == nil {
		return 0
	}
	return s.state.ReportedPoints()
}

func (s *LectureScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave lecture"},
			{Key: "N", Description: "Keep watching"},
		}
	}
	if s.state == nil {
		return nil
	}
	switch s.state.Phase {
	case player.PhasePlaying, player.PhaseRemediationPlaying:
		return []layout.KeyHint{
			{Key: "←", Description: "Back 10s"},
			{Key: "→", Description: "Forward 10s"},
			{Key: "Esc", Description: "Leave"},
		}
	case player.PhasePausedForQuestion, player.PhaseFollowupQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	case player.PhaseRemediationOffered:
		return []layout.KeyHint{
			{Key: "Y", Description: "Rewatch"},
			{Key: "N", Description: "Skip"},
		}
	case player.PhaseLectureComplete:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *LectureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case playbackTickMsg:
		return s.handleTick()

	case gradeResultMsg:
		return s.handleGradeResult(msg)

	case remediationReadyMsg:
		if msg.Plan != nil {
			s.offerYes = true
			player.OfferRemediation(s.state, msg.Plan)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state != nil && s.state.Phase == player.PhasePausedForQuestion && !s.mcActive && s.stage == stageAnswer {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *LectureScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.quitConfirm {
		return s, tickCmd()
	}

	prevPhase := s.state.Phase
	player.HandleTick(context.Background(), s.state, tickInterval.Seconds())

	if time.Now().After(s.noticeUntil) {
		s.notice = ""
	}

	// A pause point just triggered: set up the answer widgets.
	if prevPhase == player.PhasePlaying && s.state.Phase == player.PhasePausedForQuestion {
		s.setupQuestion(s.state.ActivePP.Item)
	}

	// The remediation segment just ended at its boundary.
	if prevPhase == player.PhaseRemediationPlaying && s.state.Phase == player.PhaseFollowupQuestion {
		s.input = components.NewTextInput("Your answer...", false, 0)
	}

	if s.state.Phase == player.PhaseLectureComplete {
		return s, nil
	}
	return s, tickCmd()
}

func (s *LectureScreen) setupQuestion(item *content.PracticeItem) {
	s.stage = stageAnswer
	s.confidence = components.NewConfidencePicker()
	if item.Type == content.TypeMultipleChoice {
		s.mcActive = true
		s.mc = components.NewMultiChoice(item.Body, item.MultipleChoice.Options, item.MultipleChoice.CorrectIndex)
	} else {
		s.mcActive = false
		s.input = components.NewTextInput("Type your answer...", false, 0)
	}
}

func (s *LectureScreen) handleGradeResult(msg gradeResultMsg) (screen.Screen, tea.Cmd) {
	player.ApplySubmission(context.Background(), s.state, msg.Sub, msg.Result, msg.Err)

	if msg.Err != nil {
		// Back to the question with a fresh wager.
		s.notice = msg.Err.Error()
		s.noticeUntil = time.Now().Add(noticeDuration)
		s.stage = stageAnswer
		s.confidence = components.NewConfidencePicker()
		return s, nil
	}

	if player.WantsRemediation(s.state) {
		return s, s.requestRemediationCmd()
	}
	return s, nil
}

func (s *LectureScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, popCmd()
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			player.Finish(context.Background(), s.state)
			return s, popCmd()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		if s.state.Phase == player.PhaseLectureComplete {
			player.Finish(context.Background(), s.state)
			return s, popCmd()
		}
		s.quitConfirm = true
		return s, nil
	}

	switch s.state.Phase {
	case player.PhasePlaying, player.PhaseRemediationPlaying:
		switch key {
		case "left":
			player.Seek(s.state, s.state.Gate.CurrentTime()-seekStep)
		case "right":
			player.Seek(s.state, s.state.Gate.CurrentTime()+seekStep)
		}
		return s, nil

	case player.PhasePausedForQuestion:
		return s.handleQuestionKey(msg)

	case player.PhaseResultShown, player.PhaseFollowupResult:
		if key == "enter" {
			player.Continue(context.Background(), s.state)
		}
		return s, nil

	case player.PhaseRemediationOffered:
		switch key {
		case "left", "h", "right", "l", "tab":
			s.offerYes = !s.offerYes
		case "y", "Y":
			player.AcceptRemediation(s.state)
		case "n", "N":
			player.DeclineRemediation(context.Background(), s.state)
		case "enter":
			if s.offerYes {
				player.AcceptRemediation(s.state)
			} else {
				player.DeclineRemediation(context.Background(), s.state)
			}
		}
		return s, nil

	case player.PhaseFollowupQuestion:
		if key == "enter" {
			answer := s.input.Value()
			if answer == "" {
				return s, nil
			}
			// Exact match, no collaborator: safe on the Update loop.
			_, _ = player.SubmitFollowup(context.Background(), s.state, answer)
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case player.PhaseLectureComplete:
		if key == "enter" {
			player.Finish(context.Background(), s.state)
			return s, popCmd()
		}
		return s, nil
	}

	return s, nil
}

func (s *LectureScreen) handleQuestionKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.stage == stageConfidence {
		var cmd tea.Cmd
		s.confidence, cmd = s.confidence.Update(msg)
		if s.confidence.Committed {
			sub, err := player.BeginSubmit(s.state, s.currentAnswer(), s.confidence.Value())
			if err != nil {
				s.notice = err.Error()
				s.noticeUntil = time.Now().Add(noticeDuration)
				s.stage = stageAnswer
				s.confidence = components.NewConfidencePicker()
				return s, nil
			}
			return s, gradeCmd(sub)
		}
		return s, cmd
	}

	// Answer stage.
	if key == "enter" {
		if s.currentAnswer() == "" {
			return s, nil
		}
		s.stage = stageConfidence
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
}

func (s *LectureScreen) currentAnswer() string {
	if s.mcActive {
		return s.mc.Options[s.mc.Selected]
	}
	return s.input.Value()
}

// gradeCmd runs only the blocking grade. The submission was captured on
// the Update loop and the transition is applied there too, so the
// command never touches shared state.
func gradeCmd(sub *player.Submission) tea.Cmd {
	return func() tea.Msg {
		result, err := player.GradeSubmission(context.Background(), sub)
		return gradeResultMsg{Sub: sub, Result: result, Err: err}
	}
}

func (s *LectureScreen) requestRemediationCmd() tea.Cmd {
	svc := s.state.Remediation
	req := player.RemediationRequest(s.state)
	return func() tea.Msg {
		plan, _ := player.Remediate(context.Background(), svc, req)
		return remediationReadyMsg{Plan: plan}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return playbackTickMsg(t)
	})
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
