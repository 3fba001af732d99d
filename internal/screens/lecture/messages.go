package lecture

import (
	"time"

	"github.com/abhisek/lectio/internal/player"
	"github.com/abhisek/lectio/internal/remediation"
)

// playbackTickMsg drives the video clock.
type playbackTickMsg time.Time

// gradeResultMsg is sent when answer grading completes. The command
// only grades; the state transition is applied in Update.
type gradeResultMsg struct {
	Sub    *player.Submission
	Result *player.AttemptResult
	Err    error
}

// remediationReadyMsg is sent when the detect-and-generate cycle
// finishes. Plan is nil on failure.
type remediationReadyMsg struct {
	Plan *remediation.Plan
}
