package playback

import (
	"testing"

	"github.com/abhisek/lectio/internal/content"
)

func TestGate_AdvanceRaisesFrontier(t *testing.T) {
	g := NewGate(600, 0)
	g.Advance(5)
	g.Advance(5)
	if g.CurrentTime() != 10 {
		t.Errorf("current = %v, want 10", g.CurrentTime())
	}
	if g.MaxAllowedTime() != 10 {
		t.Errorf("frontier = %v, want 10", g.MaxAllowedTime())
	}
}

func TestGate_AdvanceClampsAtDuration(t *testing.T) {
	g := NewGate(30, 0)
	g.Advance(100)
	if g.CurrentTime() != 30 {
		t.Errorf("current = %v, want 30", g.CurrentTime())
	}
	if !g.AtEnd() {
		t.Error("expected AtEnd")
	}
}

func TestGate_ForwardSeekClamped(t *testing.T) {
	g := NewGate(600, 0)
	g.Advance(50)

	var blocked []SeekResult
	g.OnBlockedSkip = func(r SeekResult) { blocked = append(blocked, r) }

	result := g.Seek(g.MaxAllowedTime() + 10)
	if !result.Blocked {
		t.Fatal("seek past frontier should be blocked")
	}
	if result.Applied != 50 {
		t.Errorf("applied = %v, want clamp to 50", result.Applied)
	}
	if g.CurrentTime() != 50 {
		t.Errorf("current = %v, want 50", g.CurrentTime())
	}
	if len(blocked) != 1 || blocked[0].Requested != 60 {
		t.Errorf("blocked notices = %+v, want one with requested 60", blocked)
	}
}

func TestGate_BackwardSeekFree(t *testing.T) {
	g := NewGate(600, 0)
	g.Advance(100)

	result := g.Seek(40)
	if result.Blocked {
		t.Error("backward seek should not be blocked")
	}
	if g.CurrentTime() != 40 {
		t.Errorf("current = %v, want 40", g.CurrentTime())
	}
	if g.MaxAllowedTime() != 100 {
		t.Errorf("frontier = %v, want unchanged 100", g.MaxAllowedTime())
	}
}

func TestGate_PrivilegedSeekBypassesLimit(t *testing.T) {
	g := NewGate(600, 0)
	g.Advance(100)

	g.PrivilegedSeek(30)
	if g.CurrentTime() != 30 {
		t.Errorf("current = %v, want 30", g.CurrentTime())
	}
	if g.MaxAllowedTime() != 100 {
		t.Errorf("frontier = %v, want unchanged 100", g.MaxAllowedTime())
	}

	// Re-watching from the jump does not raise the frontier until the
	// learner passes it naturally.
	g.Advance(50)
	if g.MaxAllowedTime() != 100 {
		t.Errorf("frontier = %v, want still 100", g.MaxAllowedTime())
	}
	g.Advance(30)
	if g.MaxAllowedTime() != 110 {
		t.Errorf("frontier = %v, want 110 after watching past it", g.MaxAllowedTime())
	}
}

func TestGate_ResumePosition(t *testing.T) {
	g := NewGate(600, 250)
	if g.CurrentTime() != 250 || g.MaxAllowedTime() != 250 {
		t.Errorf("resume: current=%v frontier=%v, want 250/250", g.CurrentTime(), g.MaxAllowedTime())
	}
}

func pausePoints(offsets ...float64) []*content.PausePoint {
	pps := make([]*content.PausePoint, len(offsets))
	for i, off := range offsets {
		pps[i] = &content.PausePoint{
			ID:            string(rune('a' + i)),
			OffsetSeconds: off,
			OrderIndex:    i,
		}
	}
	return pps
}

func TestGate_TriggerWindow(t *testing.T) {
	pps := pausePoints(60)
	none := func(string) bool { return false }

	g := NewGate(600, 0)
	g.Advance(59.9)
	if got := g.TriggeredPausePoint(pps, none); got != nil {
		t.Errorf("triggered at %.1f, want none before offset", g.CurrentTime())
	}

	g.Advance(0.3) // 60.2, inside [60, 60.5)
	if got := g.TriggeredPausePoint(pps, none); got == nil {
		t.Errorf("no trigger at %.1f, want pause point", g.CurrentTime())
	}

	g.Advance(0.4) // 60.6, past the window
	if got := g.TriggeredPausePoint(pps, none); got != nil {
		t.Errorf("triggered at %.1f, want none past window", g.CurrentTime())
	}
}

func TestGate_AnsweredPointNeverRetriggers(t *testing.T) {
	pps := pausePoints(60, 120)
	answered := map[string]bool{"a": true}
	isAnswered := func(id string) bool { return answered[id] }

	g := NewGate(600, 0)
	g.Advance(60.2)
	if got := g.TriggeredPausePoint(pps, isAnswered); got != nil {
		t.Error("answered pause point re-triggered")
	}

	// Remediation jump back across the answered point.
	g.Advance(100) // frontier past both
	g.PrivilegedSeek(59)
	g.Advance(1.2) // 60.2 again
	if got := g.TriggeredPausePoint(pps, isAnswered); got != nil {
		t.Error("answered pause point re-triggered after remediation jump")
	}
}

func TestGate_TriggersInAscendingOrder(t *testing.T) {
	pps := pausePoints(60, 60.3)
	none := func(string) bool { return false }

	g := NewGate(600, 0)
	g.Advance(60.4) // both windows contain this instant
	got := g.TriggeredPausePoint(pps, none)
	if got == nil || got.ID != "a" {
		t.Errorf("triggered %+v, want earliest pause point first", got)
	}
}
