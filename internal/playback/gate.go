// Package playback owns the video time position: the no-skip forward
// gate, pause-point trigger detection, and periodic progress persistence.
package playback

import (
	"github.com/abhisek/lectio/internal/content"
)

// triggerWindow is how far past a pause point's offset the trigger still
// fires. Playback ticks land within this window at any realistic tick
// rate.
const triggerWindow = 0.5

// SeekResult reports what happened to a requested seek.
type SeekResult struct {
	// From is the position before the seek.
	From float64

	// Applied is the position playback actually moved to.
	Applied float64

	// Blocked is true when the seek was clamped back to the watched
	// frontier.
	Blocked bool

	// Requested echoes the originally requested position.
	Requested float64
}

// Gate enforces the forward no-skip constraint. Only the gate mutates the
// time position; the state machine reads it.
type Gate struct {
	currentTime    float64
	maxAllowedTime float64
	duration       float64

	// OnBlockedSkip fires when a learner seek is clamped. Optional.
	OnBlockedSkip func(result SeekResult)
}

// NewGate creates a gate for a lecture of the given duration, resuming
// from a previously watched position.
func NewGate(duration, resumeFrom float64) *Gate {
	if resumeFrom < 0 {
		resumeFrom = 0
	}
	if duration > 0 && resumeFrom > duration {
		resumeFrom = duration
	}
	return &Gate{
		currentTime:    resumeFrom,
		maxAllowedTime: resumeFrom,
		duration:       duration,
	}
}

// CurrentTime returns the playback position in seconds.
func (g *Gate) CurrentTime() float64 { return g.currentTime }

// MaxAllowedTime returns the watched frontier in seconds.
func (g *Gate) MaxAllowedTime() float64 { return g.maxAllowedTime }

// Duration returns the lecture duration in seconds.
func (g *Gate) Duration() float64 { return g.duration }

// AtEnd reports whether playback has reached the end of the lecture.
func (g *Gate) AtEnd() bool {
	return g.duration > 0 && g.currentTime >= g.duration
}

// Advance moves playback forward by dt seconds and raises the watched
// frontier. Clamps at the lecture duration.
func (g *Gate) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	g.currentTime += dt
	if g.duration > 0 && g.currentTime > g.duration {
		g.currentTime = g.duration
	}
	if g.currentTime > g.maxAllowedTime {
		g.maxAllowedTime = g.currentTime
	}
}

// Seek is a learner-initiated jump. Backward seeks within watched
// territory are free; a seek past the watched frontier is clamped back to
// it and reported as blocked.
func (g *Gate) Seek(t float64) SeekResult {
	if t < 0 {
		t = 0
	}
	result := SeekResult{From: g.currentTime, Requested: t, Applied: t}
	if t > g.maxAllowedTime {
		result.Applied = g.maxAllowedTime
		result.Blocked = true
	}
	g.currentTime = result.Applied
	if g.OnBlockedSkip != nil && result.Blocked {
		g.OnBlockedSkip(result)
	}
	return result
}

// PrivilegedSeek bypasses the forward limit for remediation jumps. It
// does not raise the watched frontier; the learner re-earns any ground
// past it by watching.
func (g *Gate) PrivilegedSeek(t float64) {
	if t < 0 {
		t = 0
	}
	if g.duration > 0 && t > g.duration {
		t = g.duration
	}
	g.currentTime = t
}

// TriggeredPausePoint returns the first unanswered pause point whose
// trigger window contains the current position, or nil. Pause points are
// checked in order, so they fire in ascending offset order as playback
// advances. Answered points never re-trigger, even when a remediation
// jump crosses them again.
func (g *Gate) TriggeredPausePoint(points []*content.PausePoint, answered func(id string) bool) *content.PausePoint {
	for _, pp := range points {
		if answered(pp.ID) {
			continue
		}
		if g.currentTime >= pp.OffsetSeconds && g.currentTime < pp.OffsetSeconds+triggerWindow {
			return pp
		}
	}
	return nil
}
