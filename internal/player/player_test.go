package player

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lectio/internal/content"
	"github.com/abhisek/lectio/internal/grading"
	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/remediation"
	"github.com/abhisek/lectio/internal/scoring"
	"github.com/abhisek/lectio/internal/store"
)

func testLecture() *content.Lecture {
	mcq := func(id string) *content.PracticeItem {
		return &content.PracticeItem{
			ID:         id,
			Body:       "Which option is right?",
			Type:       content.TypeMultipleChoice,
			BaseReward: 100,
			MultipleChoice: &content.MultipleChoice{
				Options:      []string{"alpha", "beta", "gamma"},
				CorrectIndex: 1,
			},
		}
	}
	return &content.Lecture{
		ID:              "ml-101",
		Title:           "Gradient Descent",
		DurationSeconds: 600,
		Transcript: []content.TranscriptLine{
			{AtSeconds: 0, Text: "welcome"},
			{AtSeconds: 115, Text: "the learning rate decides step size"},
		},
		PausePoints: []*content.PausePoint{
			{ID: "pp-1", OffsetSeconds: 60, OrderIndex: 0, Item: mcq("item-1")},
			{ID: "pp-2", OffsetSeconds: 200, OrderIndex: 1, Item: &content.PracticeItem{
				ID:          "item-2",
				Body:        "What does the learning rate control?",
				Type:        content.TypeShortAnswer,
				BaseReward:  100,
				ShortAnswer: &content.ShortAnswer{ExpectedAnswer: "the step size"},
			}},
			{ID: "pp-3", OffsetSeconds: 400, OrderIndex: 2, Item: mcq("item-3")},
		},
	}
}

type stubGrader struct {
	grade    int
	feedback string
	err      error
	calls    int
}

func (g *stubGrader) Grade(_ context.Context, in grading.Input) (*grading.Result, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return &grading.Result{Grade: g.grade, Feedback: g.feedback}, nil
}

type fakeEventRepo struct {
	attempts []store.AttemptEventData
	playback []store.PlaybackEventData
	sessions []store.SessionEventData
}

func (f *fakeEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (f *fakeEventRepo) AppendAttemptEvent(_ context.Context, d store.AttemptEventData) error {
	f.attempts = append(f.attempts, d)
	return nil
}
func (f *fakeEventRepo) AppendPlaybackEvent(_ context.Context, d store.PlaybackEventData) error {
	f.playback = append(f.playback, d)
	return nil
}
func (f *fakeEventRepo) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.sessions = append(f.sessions, d)
	return nil
}
func (f *fakeEventRepo) ItemAccuracy(context.Context, string, string) (float64, error) {
	return 0, nil
}
func (f *fakeEventRepo) TotalPoints(context.Context, string) (int, error) { return 0, nil }
func (f *fakeEventRepo) AttemptCounts(context.Context, string) (int, int, error) {
	return 0, 0, nil
}
func (f *fakeEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (f *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

type fakeProgressRepo struct {
	last *store.ProgressData
}

func (f *fakeProgressRepo) Upsert(_ context.Context, d store.ProgressData) error {
	f.last = &d
	return nil
}
func (f *fakeProgressRepo) Get(context.Context, string, string) (*store.ProgressData, error) {
	return f.last, nil
}

type fakeRemediationRepo struct {
	saved    []store.RemediationData
	resolved map[int][3]bool // answered, correct, resolved
}

func (f *fakeRemediationRepo) Save(_ context.Context, d store.RemediationData) (int, error) {
	f.saved = append(f.saved, d)
	return len(f.saved), nil
}
func (f *fakeRemediationRepo) Resolve(_ context.Context, id int, answer string, answered, correct bool) error {
	if f.resolved == nil {
		f.resolved = make(map[int][3]bool)
	}
	f.resolved[id] = [3]bool{answered, correct, true}
	return nil
}
func (f *fakeRemediationRepo) ListByLecture(context.Context, string, string) ([]*store.RemediationData, error) {
	return nil, nil
}

func newTestState(t *testing.T, grader grading.Grader, svc *remediation.Service) (*State, *fakeEventRepo, *fakeProgressRepo) {
	t.Helper()
	events := &fakeEventRepo{}
	progress := &fakeProgressRepo{}
	s := NewState(testLecture(), Config{
		LearnerID:   "learner-1",
		SessionID:   "sess-1",
		Grader:      grader,
		Remediation: svc,
		EventRepo:   events,
		Progress:    progress,
	}, nil)
	return s, events, progress
}

func tickTo(ctx context.Context, s *State, target float64) {
	HandleTick(ctx, s, target-s.Gate.CurrentTime())
}

func TestPlayer_FullLectureAllCorrect(t *testing.T) {
	ctx := context.Background()
	s, events, progress := newTestState(t, &stubGrader{grade: 100, feedback: "exact"}, nil)

	// Pause point 1: MCQ.
	tickTo(ctx, s, 60.2)
	require.Equal(t, PhasePausedForQuestion, s.Phase)
	require.Equal(t, "pp-1", s.ActivePP.ID)

	result, err := SubmitAnswer(ctx, s, "beta", scoring.Maybe)
	require.NoError(t, err)
	require.True(t, result.Correct)
	require.Equal(t, 100, result.Points)
	require.Equal(t, PhaseResultShown, s.Phase)

	Continue(ctx, s)
	require.Equal(t, PhasePlaying, s.Phase)

	// Pause point 2: short answer, graded 100 -> round(100*1*1.0) = 100.
	tickTo(ctx, s, 200.2)
	require.Equal(t, PhasePausedForQuestion, s.Phase)
	result, err = SubmitAnswer(ctx, s, "it controls the step size", scoring.Maybe)
	require.NoError(t, err)
	require.True(t, result.Correct)
	require.NotNil(t, result.Grade)
	require.Equal(t, 100, result.Points)
	Continue(ctx, s)

	// Pause point 3.
	tickTo(ctx, s, 400.2)
	_, err = SubmitAnswer(ctx, s, "2", scoring.Maybe) // numeric selection
	require.NoError(t, err)
	Continue(ctx, s)

	// All answered: completion fires on continue.
	require.Equal(t, PhaseLectureComplete, s.Phase)
	require.NotNil(t, s.CompletedAt)
	require.Equal(t, 300, s.ReportedPoints())

	require.Len(t, events.attempts, 3)
	require.NotNil(t, progress.last)
	require.Equal(t, 300, progress.last.TotalPointsEarned)
	require.Len(t, progress.last.CompletedPausePoints, 3)
	require.NotNil(t, progress.last.CompletedAt)
}

func TestPlayer_SubmissionValidation(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestState(t, nil, nil)
	tickTo(ctx, s, 60.2)

	var verr *ValidationError

	_, err := SubmitAnswer(ctx, s, "   ", scoring.Maybe)
	require.ErrorAs(t, err, &verr)

	_, err = SubmitAnswer(ctx, s, "beta", scoring.Confidence("certain"))
	require.ErrorAs(t, err, &verr)

	// Valid submission, then a second one while the result is shown.
	_, err = SubmitAnswer(ctx, s, "beta", scoring.Maybe)
	require.NoError(t, err)
	_, err = SubmitAnswer(ctx, s, "beta", scoring.Maybe)
	require.ErrorAs(t, err, &verr)
}

func TestPlayer_GradingFallbackNonPenalizing(t *testing.T) {
	ctx := context.Background()
	grader := &stubGrader{err: errors.New("service unavailable")}
	s, events, _ := newTestState(t, grader, nil)

	// Answer the first point, then reach the short-answer point.
	tickTo(ctx, s, 60.2)
	_, err := SubmitAnswer(ctx, s, "beta", scoring.Maybe)
	require.NoError(t, err)
	Continue(ctx, s)
	tickTo(ctx, s, 200.2)

	result, err := SubmitAnswer(ctx, s, "no idea really", scoring.AbsolutelySure)
	require.NoError(t, err)
	require.True(t, result.Correct)
	require.Nil(t, result.Grade)
	require.True(t, result.NeedsReview)
	// Treated as an exact correct outcome: round(100 * 3.0).
	require.Equal(t, 300, result.Points)

	last := events.attempts[len(events.attempts)-1]
	require.True(t, last.NeedsReview)
	require.Nil(t, last.Grade)
}

func TestPlayer_ReportedPointsFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	s, _, progress := newTestState(t, nil, nil)

	tickTo(ctx, s, 60.2)
	result, err := SubmitAnswer(ctx, s, "alpha", scoring.AbsolutelySure)
	require.NoError(t, err)
	require.Equal(t, -150, result.Points)
	require.Equal(t, -150, s.TotalPoints)
	require.Equal(t, 0, s.ReportedPoints())
	require.Equal(t, 0, progress.last.TotalPointsEarned)
}

type slowGrader struct {
	grade int
	delay time.Duration
}

func (g *slowGrader) Grade(context.Context, grading.Input) (*grading.Result, error) {
	time.Sleep(g.delay)
	return &grading.Result{Grade: g.grade}, nil
}

// A slow grade runs off the UI loop while ticks keep arriving; nothing
// on the state may change until the result is applied back on the loop.
func TestPlayer_GradingOffLoopMutatesNothingUntilApplied(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestState(t, &slowGrader{grade: 100, delay: 20 * time.Millisecond}, nil)

	tickTo(ctx, s, 60.2)
	_, err := SubmitAnswer(ctx, s, "beta", scoring.Maybe)
	require.NoError(t, err)
	Continue(ctx, s)
	tickTo(ctx, s, 200.2)

	sub, err := BeginSubmit(s, "it controls the step size", scoring.Maybe)
	require.NoError(t, err)
	require.Equal(t, PhaseGrading, s.Phase)

	type graded struct {
		result *AttemptResult
		err    error
	}
	ch := make(chan graded, 1)
	go func() {
		result, err := GradeSubmission(ctx, sub)
		ch <- graded{result, err}
	}()

	pos := s.Gate.CurrentTime()
	for i := 0; i < 100; i++ {
		HandleTick(ctx, s, 0.25)
	}
	g := <-ch
	require.NoError(t, g.err)

	// Grading in flight: the playhead is paused, nothing recorded yet.
	require.Equal(t, PhaseGrading, s.Phase)
	require.Equal(t, pos, s.Gate.CurrentTime())
	require.False(t, s.Answered["pp-2"])
	require.Equal(t, 100, s.TotalPoints)

	ApplySubmission(ctx, s, sub, g.result, g.err)
	require.Equal(t, PhaseResultShown, s.Phase)
	require.True(t, s.Answered["pp-2"])
	require.Equal(t, 200, s.TotalPoints)
}

func TestPlayer_BackwardSeekDoesNotShrinkSavedPosition(t *testing.T) {
	ctx := context.Background()
	s, _, progress := newTestState(t, nil, nil)

	tickTo(ctx, s, 60.2)
	_, err := SubmitAnswer(ctx, s, "beta", scoring.Maybe)
	require.NoError(t, err)
	Continue(ctx, s)
	tickTo(ctx, s, 150)

	// Rewind, then leave: the saved position is the watched frontier,
	// not the transient playhead.
	frontier := s.Gate.MaxAllowedTime()
	require.Greater(t, frontier, 100.0)
	Seek(s, 10)
	require.Equal(t, 10.0, s.Gate.CurrentTime())
	Finish(ctx, s)

	require.NotNil(t, progress.last)
	require.Equal(t, frontier, progress.last.VideoPosition)

	resumed := NewState(testLecture(), Config{
		LearnerID: "learner-1",
		SessionID: "sess-3",
	}, progress.last)
	require.Equal(t, frontier, resumed.Gate.MaxAllowedTime())
}

func TestPlayer_BlockedSkipRecorded(t *testing.T) {
	ctx := context.Background()
	s, events, _ := newTestState(t, nil, nil)

	HandleTick(ctx, s, 30)
	Seek(s, 500)
	require.Equal(t, 30.0, s.Gate.CurrentTime())
	require.Len(t, events.playback, 1)
	require.Equal(t, "blocked_skip", events.playback[0].Kind)
	require.Equal(t, 500.0, events.playback[0].Requested)
}

func remediationService(repo store.RemediationRepo) *remediation.Service {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"misconception": "Confuses options",
			"missing_concept": "Learning rate",
			"root_cause": "Terminology overlap",
			"recommended_timestamp": 120.0,
			"end_timestamp": 180.0
		}`)},
		llm.MockResponse{Content: json.RawMessage(`{
			"explanation": "The learning rate scales each step.",
			"follow_up": {"question": "What scales each step?", "answer": "learning rate"}
		}`)},
	)
	return remediation.NewService(mock, repo)
}

// answerWrongAt drives the state to pp-2 and answers it incorrectly
// (grade 20 via the stub grader).
func answerWrongAt(t *testing.T, ctx context.Context, s *State) {
	t.Helper()
	tickTo(ctx, s, 60.2)
	_, err := SubmitAnswer(ctx, s, "beta", scoring.Maybe)
	require.NoError(t, err)
	Continue(ctx, s)

	tickTo(ctx, s, 200.2)
	result, err := SubmitAnswer(ctx, s, "how fast momentum builds", scoring.Maybe)
	require.NoError(t, err)
	require.False(t, result.Correct)
	require.Equal(t, PhaseResultShown, s.Phase)
}

func TestPlayer_RemediationAcceptAndFollowup(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRemediationRepo{}
	grader := &stubGrader{grade: 20, feedback: "misses the concept"}
	s, events, _ := newTestState(t, grader, remediationService(repo))

	answerWrongAt(t, ctx, s)
	require.True(t, WantsRemediation(s))

	plan, err := RequestRemediation(ctx, s)
	require.NoError(t, err)
	require.Len(t, repo.saved, 1)

	OfferRemediation(s, plan)
	require.Equal(t, PhaseRemediationOffered, s.Phase)

	AcceptRemediation(s)
	require.Equal(t, PhaseRemediationPlaying, s.Phase)
	require.Equal(t, 120.0, s.Gate.CurrentTime())

	var jump *store.PlaybackEventData
	for i := range events.playback {
		if events.playback[i].Kind == "remediation_jump" {
			jump = &events.playback[i]
		}
	}
	require.NotNil(t, jump)
	require.Equal(t, 120.0, jump.To)

	// Watch the segment; the boundary watcher pauses at its end. The
	// answered pp-1 at 60s was jumped over and must not re-trigger.
	HandleTick(ctx, s, 65)
	require.Equal(t, PhaseFollowupQuestion, s.Phase)

	outcome, err := SubmitFollowup(ctx, s, "Learning Rate")
	require.NoError(t, err)
	require.True(t, outcome.Correct)
	require.Equal(t, FollowupBonus, outcome.Bonus)
	require.Equal(t, PhaseFollowupResult, s.Phase)

	res := repo.resolved[1]
	require.True(t, res[0], "follow-up answered")
	require.True(t, res[1], "follow-up correct")

	Continue(ctx, s)
	require.Equal(t, PhasePlaying, s.Phase)
}

func TestPlayer_RemediationDeclineLeavesUnresolved(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRemediationRepo{}
	grader := &stubGrader{grade: 20}
	s, _, _ := newTestState(t, grader, remediationService(repo))

	answerWrongAt(t, ctx, s)
	plan, err := RequestRemediation(ctx, s)
	require.NoError(t, err)
	OfferRemediation(s, plan)

	DeclineRemediation(ctx, s)
	require.Equal(t, PhasePlaying, s.Phase)
	require.Empty(t, repo.resolved, "declined remediation stays unresolved")
	require.Nil(t, s.Plan)
}

func TestPlayer_RemediationFailureFallsBackToContinue(t *testing.T) {
	ctx := context.Background()
	grader := &stubGrader{grade: 20}
	failing := remediation.NewService(llm.NewMockProvider(), &fakeRemediationRepo{})
	s, _, _ := newTestState(t, grader, failing)

	answerWrongAt(t, ctx, s)
	require.True(t, WantsRemediation(s))

	_, err := RequestRemediation(ctx, s)
	require.Error(t, err)

	// Caller proceeds exactly like the correct path.
	Continue(ctx, s)
	require.Equal(t, PhasePlaying, s.Phase)
}

func TestPlayer_ResumeFromProgressSkipsAnswered(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{}
	saved := &store.ProgressData{
		LearnerID:            "learner-1",
		LectureID:            "ml-101",
		VideoPosition:        59.0,
		CompletedPausePoints: []string{"pp-1"},
		Responses: map[string]store.PausePointResponse{
			"pp-1": {Answer: "beta", Correct: true, Points: 100},
		},
		TotalPointsEarned: 100,
	}
	s := NewState(testLecture(), Config{
		LearnerID: "learner-1",
		SessionID: "sess-2",
		EventRepo: events,
	}, saved)

	require.Equal(t, 59.0, s.Gate.CurrentTime())
	require.Equal(t, 100, s.TotalPoints)

	// Crossing the already-answered pp-1 does not pause.
	tickTo(ctx, s, 60.2)
	require.Equal(t, PhasePlaying, s.Phase)
}
