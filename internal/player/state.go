// Package player drives one learner through one lecture: the pause-point
// state machine, scoring, spaced repetition updates, and the remediation
// loop. The video time position itself is owned by the playback gate.
package player

import (
	"context"
	"time"

	"github.com/abhisek/lectio/internal/content"
	"github.com/abhisek/lectio/internal/grading"
	"github.com/abhisek/lectio/internal/playback"
	"github.com/abhisek/lectio/internal/remediation"
	"github.com/abhisek/lectio/internal/scoring"
	"github.com/abhisek/lectio/internal/spacedrep"
	"github.com/abhisek/lectio/internal/store"
)

// Phase is the current state of the pause-point state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePausedForQuestion
	PhaseGrading
	PhaseResultShown
	PhaseRemediationOffered
	PhaseRemediationPlaying
	PhaseFollowupQuestion
	PhaseFollowupResult
	PhaseLectureComplete
)

// String returns the phase name for logs and debugging.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePausedForQuestion:
		return "paused-for-question"
	case PhaseGrading:
		return "grading"
	case PhaseResultShown:
		return "result-shown"
	case PhaseRemediationOffered:
		return "remediation-offered"
	case PhaseRemediationPlaying:
		return "remediation-playing"
	case PhaseFollowupQuestion:
		return "followup-question"
	case PhaseFollowupResult:
		return "followup-result"
	case PhaseLectureComplete:
		return "lecture-complete"
	}
	return "unknown"
}

// FollowupBonus is the fixed point award for a correct follow-up answer.
// Follow-ups carry no confidence wager.
const FollowupBonus = 50

// AttemptResult is what the result overlay shows after grading.
type AttemptResult struct {
	Correct    bool
	Grade      *int // nil for exact-match items and grading fallback
	Points     int
	Feedback   string
	Confidence scoring.Confidence

	// NeedsReview marks answers accepted through the non-penalizing
	// grading fallback, for later manual review.
	NeedsReview bool
}

// FollowupOutcome is the result of a follow-up retest.
type FollowupOutcome struct {
	Correct bool
	Bonus   int
	Answer  string // the expected answer, for display
}

// State tracks one playback session. Mutated only by the functions in
// this package, from a single goroutine.
type State struct {
	Lecture   *content.Lecture
	LearnerID string
	SessionID string

	Phase Phase
	Gate  *playback.Gate

	// Answered is the set of completed pause point IDs. A pause point in
	// this set never re-triggers.
	Answered  map[string]bool
	Responses map[string]store.PausePointResponse

	// TotalPoints is the signed running total. Reported totals are
	// floored at zero; the raw value can go negative mid-lecture.
	TotalPoints int

	// ActivePP is the pause point currently presented, nil while playing.
	ActivePP          *content.PausePoint
	QuestionStartTime time.Time

	LastResult   *AttemptResult
	LastFollowup *FollowupOutcome

	// Plan is the active remediation, set between REMEDIATION_OFFERED and
	// resolution.
	Plan *remediation.Plan

	StartTime   time.Time
	CompletedAt *time.Time

	heartbeat *playback.Heartbeat

	// Collaborators. Any of these may be nil; the corresponding feature
	// degrades to a no-op.
	Grader      grading.Grader
	Remediation *remediation.Service
	Scheduler   *spacedrep.Scheduler
	EventRepo   store.EventRepo
}

// Config bundles the collaborators for NewState.
type Config struct {
	LearnerID   string
	SessionID   string
	Grader      grading.Grader
	Remediation *remediation.Service
	Scheduler   *spacedrep.Scheduler
	EventRepo   store.EventRepo
	Progress    store.ProgressRepo
}

// NewState creates playback state for a lecture, resuming from saved
// progress when resume is non-nil.
func NewState(lecture *content.Lecture, cfg Config, resume *store.ProgressData) *State {
	s := &State{
		Lecture:     lecture,
		LearnerID:   cfg.LearnerID,
		SessionID:   cfg.SessionID,
		Phase:       PhasePlaying,
		Answered:    make(map[string]bool),
		Responses:   make(map[string]store.PausePointResponse),
		StartTime:   time.Now(),
		Grader:      cfg.Grader,
		Remediation: cfg.Remediation,
		Scheduler:   cfg.Scheduler,
		EventRepo:   cfg.EventRepo,
	}

	resumeFrom := 0.0
	if resume != nil {
		resumeFrom = resume.VideoPosition
		for _, id := range resume.CompletedPausePoints {
			s.Answered[id] = true
		}
		for id, r := range resume.Responses {
			s.Responses[id] = r
		}
		s.TotalPoints = resume.TotalPointsEarned
		s.CompletedAt = resume.CompletedAt
	}

	s.Gate = playback.NewGate(lecture.DurationSeconds, resumeFrom)
	s.Gate.OnBlockedSkip = func(r playback.SeekResult) {
		s.recordPlayback("blocked_skip", r.From, r.Applied, r.Requested)
	}
	s.heartbeat = playback.NewHeartbeat(cfg.Progress, s.snapshot)

	if s.CompletedAt != nil {
		s.Phase = PhaseLectureComplete
	}
	return s
}

// ReportedPoints returns the total shown to the learner, floored at zero.
func (s *State) ReportedPoints() int {
	if s.TotalPoints < 0 {
		return 0
	}
	return s.TotalPoints
}

// AllAnswered reports whether every pause point has been answered.
func (s *State) AllAnswered() bool {
	for _, pp := range s.Lecture.PausePoints {
		if !s.Answered[pp.ID] {
			return false
		}
	}
	return true
}

// snapshot captures the progress record for persistence.
func (s *State) snapshot() store.ProgressData {
	completed := make([]string, 0, len(s.Answered))
	for _, pp := range s.Lecture.PausePoints {
		if s.Answered[pp.ID] {
			completed = append(completed, pp.ID)
		}
	}
	responses := make(map[string]store.PausePointResponse, len(s.Responses))
	for id, r := range s.Responses {
		responses[id] = r
	}
	return store.ProgressData{
		LearnerID: s.LearnerID,
		LectureID: s.Lecture.ID,
		// The watched frontier, not the playhead: a backward seek before
		// a save must not shrink the resume position.
		VideoPosition:        s.Gate.MaxAllowedTime(),
		CompletedPausePoints: completed,
		Responses:            responses,
		TotalPointsEarned:    s.ReportedPoints(),
		CompletedAt:          s.CompletedAt,
	}
}

func (s *State) recordPlayback(kind string, from, to, requested float64) {
	if s.EventRepo == nil {
		return
	}
	data := store.PlaybackEventData{
		SessionID: s.SessionID,
		LearnerID: s.LearnerID,
		LectureID: s.Lecture.ID,
		Kind:      kind,
		From:      from,
		To:        to,
		Requested: requested,
	}
	_ = s.EventRepo.AppendPlaybackEvent(context.Background(), data)
}
