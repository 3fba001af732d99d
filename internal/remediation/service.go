package remediation

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/store"
)

// DefaultTimeout bounds how long one detect-and-generate cycle may take.
// Remediation is best-effort; the learner is never kept waiting longer.
const DefaultTimeout = 15 * time.Second

// Service coordinates misconception detection, content generation and
// persistence. A nil provider disables remediation entirely.
type Service struct {
	detector  *Detector
	generator *Generator
	repo      store.RemediationRepo
	timeout   time.Duration
}

// NewService creates a remediation service. repo may be nil for in-memory
// use; provider nil yields a disabled service.
func NewService(provider llm.Provider, repo store.RemediationRepo) *Service {
	s := &Service{
		repo:    repo,
		timeout: DefaultTimeout,
	}
	if provider != nil {
		s.detector = NewDetector(provider, DefaultDetectorConfig())
		s.generator = NewGenerator(provider, DefaultGeneratorConfig())
	}
	return s
}

// SetTimeout overrides the per-cycle timeout.
func (s *Service) SetTimeout(d time.Duration) {
	s.timeout = d
}

// Enabled reports whether remediation can run at all.
func (s *Service) Enabled() bool {
	return s.detector != nil
}

// Remediate runs the full cycle: detect the misconception, generate the
// explanation and optional follow-up, persist the record, and return the
// plan. Any failure returns nil and an error; callers treat that as a
// declined remediation. The record is persisted before the plan is
// exposed to the learner.
func (s *Service) Remediate(ctx context.Context, req Request) (*Plan, error) {
	if s.detector == nil {
		return nil, fmt.Errorf("remediation disabled: no LLM provider")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	det, err := s.detector.Detect(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("detect misconception: %w", err)
	}

	explanation, followUp, err := s.generator.Generate(ctx, *det, req)
	if err != nil {
		return nil, fmt.Errorf("generate remediation: %w", err)
	}

	plan := &Plan{
		Detection:   *det,
		Explanation: explanation,
		FollowUp:    followUp,
	}

	if s.repo != nil {
		data := store.RemediationData{
			LearnerID:      req.LearnerID,
			LectureID:      req.LectureID,
			PausePointID:   req.PausePointID,
			Misconception:  det.Misconception,
			MissingConcept: det.MissingConcept,
			RootCause:      det.RootCause,
			JumpToSeconds:  det.JumpToSeconds,
			EndSeconds:     det.EndSeconds,
			Explanation:    explanation,
		}
		if followUp != nil {
			data.FollowUpQuestion = followUp.Question
			data.FollowUpAnswer = followUp.Answer
		}
		id, err := s.repo.Save(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("persist remediation record: %w", err)
		}
		plan.ID = id
	}

	return plan, nil
}

// Resolve records the follow-up outcome on a persisted remediation.
// Answered is false when the learner declined or no follow-up existed.
// Persistence failures are logged, never surfaced.
func (s *Service) Resolve(ctx context.Context, planID int, answer string, answered, correct bool) {
	if s.repo == nil || planID == 0 {
		return
	}
	if err := s.repo.Resolve(ctx, planID, answer, answered, correct); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to resolve remediation record: %v\n", err)
	}
}
