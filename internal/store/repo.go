package store

import (
	"context"
	"time"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AttemptEventData captures one graded answer.
type AttemptEventData struct {
	SessionID    string
	LearnerID    string
	ItemID       string
	LectureID    string // empty for standalone review attempts
	PausePointID string // empty for standalone review attempts
	Answer       string
	Confidence   string
	Correct      bool
	Grade        *int // nil unless a collaborator graded a short answer
	Points       int
	TimeMs       int
	NeedsReview  bool
}

// PlaybackEventData captures a blocked skip or a remediation jump.
type PlaybackEventData struct {
	SessionID string
	LearnerID string
	LectureID string
	Kind      string // "blocked_skip" or "remediation_jump"
	From      float64
	To        float64
	Requested float64
}

// SessionEventData captures session lifecycle events.
type SessionEventData struct {
	SessionID         string
	LearnerID         string
	LectureID         string
	Action            string // "start" or "end"
	QuestionsAnswered int
	CorrectAnswers    int
	PointsEarned      int
	DurationSecs      int
}

// LLMUsageStat aggregates LLM calls by purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls by model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendAttemptEvent records a graded answer.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendPlaybackEvent records a playback incident.
	AppendPlaybackEvent(ctx context.Context, data PlaybackEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// ItemAccuracy returns the historical accuracy (0.0-1.0) for an item.
	// Returns 0 when the learner has never attempted it.
	ItemAccuracy(ctx context.Context, learnerID, itemID string) (float64, error)

	// TotalPoints returns the learner's lifetime signed point total.
	TotalPoints(ctx context.Context, learnerID string) (int, error)

	// AttemptCounts returns total and correct attempt counts for a learner.
	AttemptCounts(ctx context.Context, learnerID string) (total, correct int, err error)

	// LLMUsageByPurpose returns token usage aggregated by request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel returns token usage aggregated by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// PausePointResponse is the recorded outcome of one pause point.
type PausePointResponse struct {
	Answer     string
	Correct    bool
	Grade      *int
	Confidence string
	Points     int
	AnsweredAt time.Time
}

// ProgressData is the per-(learner, lecture) playback record.
// VideoPosition is the watched frontier in seconds, never the transient
// playhead; resuming rebuilds the no-skip gate from it.
type ProgressData struct {
	LearnerID            string
	LectureID            string
	VideoPosition        float64
	CompletedPausePoints []string
	Responses            map[string]PausePointResponse
	TotalPointsEarned    int
	CompletedAt          *time.Time
}

// ProgressRepo manages lecture progress with last-write-wins upserts.
// Key is (learner, lecture).
type ProgressRepo interface {
	// Upsert creates or overwrites the progress record.
	Upsert(ctx context.Context, data ProgressData) error

	// Get returns the progress record, or nil if none exists.
	Get(ctx context.Context, learnerID, lectureID string) (*ProgressData, error)
}

// ReviewRecordData is the per-(learner, item) spaced repetition state.
type ReviewRecordData struct {
	LearnerID        string
	ItemID           string
	IntervalDays     int
	EaseFactor       float64
	NextReviewDate   time.Time
	LastReviewedDate time.Time
	RepetitionNumber int
}

// ReviewRepo manages spaced repetition records. Key is (learner, item).
// Records are created on first attempt and never deleted.
type ReviewRepo interface {
	// Upsert creates or overwrites the review record.
	Upsert(ctx context.Context, data ReviewRecordData) error

	// Get returns the review record, or nil if none exists.
	Get(ctx context.Context, learnerID, itemID string) (*ReviewRecordData, error)

	// ListByLearner returns all review records for a learner.
	ListByLearner(ctx context.Context, learnerID string) ([]*ReviewRecordData, error)
}

// RemediationData is one detect-explain-retest cycle.
type RemediationData struct {
	ID               int // assigned on save
	LearnerID        string
	LectureID        string
	PausePointID     string
	Misconception    string
	MissingConcept   string
	RootCause        string
	JumpToSeconds    float64
	EndSeconds       float64
	Explanation      string
	FollowUpQuestion string
	FollowUpAnswer   string
	FollowUpAnswered bool
	FollowUpCorrect  bool
	Resolved         bool
}

// RemediationRepo manages remediation records.
type RemediationRepo interface {
	// Save persists a new record and returns its ID.
	Save(ctx context.Context, data RemediationData) (int, error)

	// Resolve marks a record resolved, recording the follow-up outcome.
	// Answer is empty when the learner declined or no follow-up existed.
	Resolve(ctx context.Context, id int, answer string, answered, correct bool) error

	// ListByLecture returns records for a (learner, lecture) pair.
	ListByLecture(ctx context.Context, learnerID, lectureID string) ([]*RemediationData, error)
}
