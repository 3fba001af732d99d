package player

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/lectio/internal/content"
	"github.com/abhisek/lectio/internal/grading"
	"github.com/abhisek/lectio/internal/remediation"
	"github.com/abhisek/lectio/internal/scoring"
	"github.com/abhisek/lectio/internal/store"
)

// ValidationError blocks an answer submission before any grading happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid submission: " + e.Reason
}

// HandleTick advances playback by dt seconds. During normal playback it
// checks for pause-point triggers; during a remediation rewatch it checks
// the segment boundary. All other phases ignore ticks (the video is
// paused).
func HandleTick(ctx context.Context, s *State, dt float64) {
	switch s.Phase {
	case PhasePlaying:
		s.Gate.Advance(dt)
		s.heartbeat.Beat(ctx, time.Now())

		if pp := s.Gate.TriggeredPausePoint(s.Lecture.PausePoints, func(id string) bool {
			return s.Answered[id]
		}); pp != nil {
			s.ActivePP = pp
			s.QuestionStartTime = time.Now()
			s.Phase = PhasePausedForQuestion
			return
		}

		if s.Gate.AtEnd() && s.AllAnswered() {
			complete(ctx, s)
		}

	case PhaseRemediationPlaying:
		s.Gate.Advance(dt)
		s.heartbeat.Beat(ctx, time.Now())

		if s.Plan != nil && s.Gate.CurrentTime() >= s.Plan.Detection.EndSeconds {
			if s.Plan.FollowUp != nil {
				s.Phase = PhaseFollowupQuestion
			} else {
				resolveRemediation(ctx, s, "", false, false)
				resume(ctx, s)
			}
		}
	}
}

// Seek is a learner-initiated seek, clamped by the gate.
func Seek(s *State, t float64) {
	if s.Phase != PhasePlaying && s.Phase != PhaseRemediationPlaying {
		return
	}
	s.Gate.Seek(t)
}

// Submission is an in-flight answer, captured on the UI loop so the
// blocking grade can run on another goroutine without touching State.
type Submission struct {
	Item         *content.PracticeItem
	PausePointID string
	Answer       string
	Confidence   scoring.Confidence
	StartedAt    time.Time
	Grader       grading.Grader
}

// BeginSubmit validates the submission and enters GRADING. Call it on
// the UI loop; the returned Submission carries everything
// GradeSubmission needs. Submission is rejected while a grade is
// already in flight.
func BeginSubmit(s *State, answer string, confidence scoring.Confidence) (*Submission, error) {
	if s.Phase != PhasePausedForQuestion {
		return nil, &ValidationError{Reason: fmt.Sprintf("no question awaiting an answer (phase %s)", s.Phase)}
	}
	if strings.TrimSpace(answer) == "" {
		return nil, &ValidationError{Reason: "answer is empty"}
	}
	if !confidence.Valid() {
		return nil, &ValidationError{Reason: "confidence level not selected"}
	}

	s.Phase = PhaseGrading
	return &Submission{
		Item:         s.ActivePP.Item,
		PausePointID: s.ActivePP.ID,
		Answer:       answer,
		Confidence:   confidence,
		StartedAt:    s.QuestionStartTime,
		Grader:       s.Grader,
	}, nil
}

// GradeSubmission grades a captured submission and scores it. It reads
// no State, so it is safe to run off the UI loop while playback ticks
// keep arriving.
func GradeSubmission(ctx context.Context, sub *Submission) (*AttemptResult, error) {
	var outcome scoring.Outcome
	var grade *int
	var feedback string
	needsReview := false

	switch sub.Item.Type {
	case content.TypeMultipleChoice:
		outcome = scoring.ExactOutcome(content.CheckExact(sub.Answer, sub.Item))
	case content.TypeShortAnswer:
		result, err := gradeShortAnswer(ctx, sub.Grader, sub.Item, sub.Answer)
		if err != nil {
			// Never penalize the learner for infrastructure failure:
			// accept the answer, skip the grade, flag for review.
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

	points, err := scoring.Score(sub.Confidence, outcome, sub.Item.BaseReward)
	if err != nil {
		return nil, err
	}

	return &AttemptResult{
		Correct:     outcome.Correct,
		Grade:       grade,
		Points:      points,
		Feedback:    feedback,
		Confidence:  sub.Confidence,
		NeedsReview: needsReview,
	}, nil
}

// ApplySubmission applies a graded result: points, completion, result
// display, persistence, review scheduling. Call it on the UI loop. A
// grading error sends the learner back to the question.
func ApplySubmission(ctx context.Context, s *State, sub *Submission, result *AttemptResult, gradeErr error) {
	if s.Phase != PhaseGrading {
		return
	}
	if gradeErr != nil {
		s.Phase = PhasePausedForQuestion
		return
	}

	elapsed := time.Since(sub.StartedAt)
	s.TotalPoints += result.Points
	s.Answered[sub.PausePointID] = true
	s.Responses[sub.PausePointID] = store.PausePointResponse{
		Answer:     sub.Answer,
		Correct:    result.Correct,
		Grade:      result.Grade,
		Confidence: string(result.Confidence),
		Points:     result.Points,
		AnsweredAt: time.Now(),
	}
	s.LastResult = result
	s.Phase = PhaseResultShown

	persistAttempt(ctx, s, sub, result, elapsed)
	s.heartbeat.Flush(ctx)

	if s.Scheduler != nil {
		if _, err := s.Scheduler.RecordAttempt(ctx, sub.Item.ID, result.Correct, time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to update review schedule: %v\n", err)
		}
	}
}

// SubmitAnswer grades the active pause point's question synchronously:
// BeginSubmit, GradeSubmission, ApplySubmission in one call. Blocks on
// the grading collaborator for short answers; interactive callers run
// GradeSubmission off the UI loop instead.
func SubmitAnswer(ctx context.Context, s *State, answer string, confidence scoring.Confidence) (*AttemptResult, error) {
	sub, err := BeginSubmit(s, answer, confidence)
	if err != nil {
		return nil, err
	}
	result, gradeErr := GradeSubmission(ctx, sub)
	ApplySubmission(ctx, s, sub, result, gradeErr)
	if gradeErr != nil {
		return nil, gradeErr
	}
	return result, nil
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

// WantsRemediation reports whether a remediation attempt should follow
// the last result.
func WantsRemediation(s *State) bool {
	return s.Phase == PhaseResultShown &&
		s.LastResult != nil && !s.LastResult.Correct &&
		s.Remediation != nil && s.Remediation.Enabled()
}

// RemediationRequest captures the detect-and-generate inputs for the
// last wrong answer. Build it on the UI loop; hand it to Remediate off
// the loop.
func RemediationRequest(s *State) remediation.Request {
	item := s.ActivePP.Item
	return remediation.Request{
		LearnerID:       s.LearnerID,
		LectureID:       s.Lecture.ID,
		PausePointID:    s.ActivePP.ID,
		QuestionText:    item.Body,
		CorrectAnswer:   correctAnswerText(item),
		StudentAnswer:   s.Responses[s.ActivePP.ID].Answer,
		QuestionType:    string(item.Type),
		Transcript:      renderTranscript(s.Lecture),
		DurationSeconds: s.Lecture.DurationSeconds,
	}
}

// Remediate runs the blocking detect-and-generate cycle for a captured
// request. It touches no State. On any failure the caller falls back to
// Continue, as though remediation were declined.
func Remediate(ctx context.Context, svc *remediation.Service, req remediation.Request) (*remediation.Plan, error) {
	plan, err := svc.Remediate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: remediation unavailable: %v\n", err)
		return nil, err
	}
	return plan, nil
}

// RequestRemediation is the synchronous composition of RemediationRequest
// and Remediate for the last wrong answer.
func RequestRemediation(ctx context.Context, s *State) (*remediation.Plan, error) {
	if !WantsRemediation(s) {
		return nil, fmt.Errorf("no remediation applicable")
	}
	return Remediate(ctx, s.Remediation, RemediationRequest(s))
}

// OfferRemediation presents a prepared plan to the learner.
func OfferRemediation(s *State, plan *remediation.Plan) {
	if s.Phase != PhaseResultShown || plan == nil {
		return
	}
	s.Plan = plan
	s.Phase = PhaseRemediationOffered
}

// AcceptRemediation jumps back to the recommended segment and resumes
// playback. The jump is privileged: it bypasses the no-skip gate.
func AcceptRemediation(s *State) {
	if s.Phase != PhaseRemediationOffered || s.Plan == nil {
		return
	}
	from := s.Gate.CurrentTime()
	s.Gate.PrivilegedSeek(s.Plan.Detection.JumpToSeconds)
	s.recordPlayback("remediation_jump", from, s.Gate.CurrentTime(), s.Plan.Detection.JumpToSeconds)
	s.Phase = PhaseRemediationPlaying
}

// DeclineRemediation skips the rewatch and continues playback. The
// remediation record stays unresolved.
func DeclineRemediation(ctx context.Context, s *State) {
	if s.Phase != PhaseRemediationOffered {
		return
	}
	s.Plan = nil
	resume(ctx, s)
}

// SubmitFollowup grades the remediation retest by exact match and awards
// the fixed bonus on success. No confidence wager applies.
func SubmitFollowup(ctx context.Context, s *State, answer string) (*FollowupOutcome, error) {
	if s.Phase != PhaseFollowupQuestion || s.Plan == nil || s.Plan.FollowUp == nil {
		return nil, &ValidationError{Reason: "no follow-up question active"}
	}
	if strings.TrimSpace(answer) == "" {
		return nil, &ValidationError{Reason: "answer is empty"}
	}

	correct := strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(s.Plan.FollowUp.Answer))
	outcome := &FollowupOutcome{
		Correct: correct,
		Answer:  s.Plan.FollowUp.Answer,
	}
	if correct {
		outcome.Bonus = FollowupBonus
		s.TotalPoints += FollowupBonus
	}

	resolveRemediation(ctx, s, answer, true, correct)
	s.heartbeat.Flush(ctx)

	s.LastFollowup = outcome
	s.Phase = PhaseFollowupResult
	return outcome, nil
}

// Continue resumes playback from a shown result, a declined offer, or a
// follow-up result. Transitions to LECTURE_COMPLETE when every pause
// point is answered.
func Continue(ctx context.Context, s *State) {
	switch s.Phase {
	case PhaseResultShown, PhaseFollowupResult:
		resume(ctx, s)
	}
}

// Finish flushes progress and records the session end event. Call once
// when the learner leaves the lecture.
func Finish(ctx context.Context, s *State) {
	s.heartbeat.Flush(ctx)
	recordSession(ctx, s, "end")
}

// Start records the session start event.
func Start(ctx context.Context, s *State) {
	recordSession(ctx, s, "start")
}

func resume(ctx context.Context, s *State) {
	s.ActivePP = nil
	s.Plan = nil
	if s.AllAnswered() {
		complete(ctx, s)
		return
	}
	s.Phase = PhasePlaying
}

func complete(ctx context.Context, s *State) {
	if s.CompletedAt == nil {
		now := time.Now()
		s.CompletedAt = &now
	}
	s.Phase = PhaseLectureComplete
	s.heartbeat.Flush(ctx)
}

func resolveRemediation(ctx context.Context, s *State, answer string, answered, correct bool) {
	if s.Remediation != nil && s.Plan != nil {
		s.Remediation.Resolve(ctx, s.Plan.ID, answer, answered, correct)
	}
}

func persistAttempt(ctx context.Context, s *State, sub *Submission, result *AttemptResult, elapsed time.Duration) {
	if s.EventRepo == nil {
		return
	}
	data := store.AttemptEventData{
		SessionID:    s.SessionID,
		LearnerID:    s.LearnerID,
		ItemID:       sub.Item.ID,
		LectureID:    s.Lecture.ID,
		PausePointID: sub.PausePointID,
		Answer:       sub.Answer,
		Confidence:   string(result.Confidence),
		Correct:      result.Correct,
		Grade:        result.Grade,
		Points:       result.Points,
		TimeMs:       int(elapsed.Milliseconds()),
		NeedsReview:  result.NeedsReview,
	}
	if err := s.EventRepo.AppendAttemptEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record attempt: %v\n", err)
	}
}

func recordSession(ctx context.Context, s *State, action string) {
	if s.EventRepo == nil {
		return
	}
	total, correct := 0, 0
	for _, r := range s.Responses {
		total++
		if r.Correct {
			correct++
		}
	}
	data := store.SessionEventData{
		SessionID:         s.SessionID,
		LearnerID:         s.LearnerID,
		LectureID:         s.Lecture.ID,
		Action:            action,
		QuestionsAnswered: total,
		CorrectAnswers:    correct,
		PointsEarned:      s.ReportedPoints(),
		DurationSecs:      int(time.Since(s.StartTime).Seconds()),
	}
	if err := s.EventRepo.AppendSessionEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record session event: %v\n", err)
	}
}

func correctAnswerText(item *content.PracticeItem) string {
	switch item.Type {
	case content.TypeMultipleChoice:
		return item.MultipleChoice.Correct()
	case content.TypeShortAnswer:
		return item.ShortAnswer.ExpectedAnswer
	}
	return ""
}

func renderTranscript(lec *content.Lecture) string {
	var b strings.Builder
	for _, line := range lec.Transcript {
		fmt.Fprintf(&b, "%.1f: %s\n", line.AtSeconds, line.Text)
	}
	return b.String()
}
