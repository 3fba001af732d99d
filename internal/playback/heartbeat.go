package playback

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/lectio/internal/store"
)

// HeartbeatInterval is how often progress is persisted during playback.
const HeartbeatInterval = 10 * time.Second

// Heartbeat persists lecture progress periodically and on demand.
// Persistence is last-write-wins and fire-and-forget: a failed write is
// logged and retried on the next beat, never surfaced to the learner.
type Heartbeat struct {
	repo     store.ProgressRepo
	snapshot func() store.ProgressData
	lastBeat time.Time
}

// NewHeartbeat creates a heartbeat. snapshot is called at each persist to
// capture the current progress. A nil repo disables persistence.
func NewHeartbeat(repo store.ProgressRepo, snapshot func() store.ProgressData) *Heartbeat {
	return &Heartbeat{repo: repo, snapshot: snapshot}
}

// Beat persists progress if the interval has elapsed since the last
// write. Call it from the playback tick loop.
func (h *Heartbeat) Beat(ctx context.Context, now time.Time) {
	if now.Sub(h.lastBeat) < HeartbeatInterval {
		return
	}
	h.Flush(ctx)
	h.lastBeat = now
}

// Flush persists progress immediately. Used on pause-point resolution and
// session end.
func (h *Heartbeat) Flush(ctx context.Context) {
	if h.repo == nil {
		return
	}
	if err := h.repo.Upsert(ctx, h.snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist lecture progress: %v\n", err)
	}
}
