package spacedrep

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestNextState_FirstCorrect(t *testing.T) {
	rec := NewRecord("learner-1", "item-1", day(0))
	next := NextState(rec, true, day(0))

	if next.IntervalDays != 6 {
		t.Errorf("interval = %d, want 6", next.IntervalDays)
	}
	if next.EaseFactor != 2.6 {
		t.Errorf("ease = %v, want 2.6", next.EaseFactor)
	}
	if !next.NextReviewDate.Equal(day(6)) {
		t.Errorf("next review = %v, want %v", next.NextReviewDate, day(6))
	}
	if next.RepetitionNumber != 1 {
		t.Errorf("repetition = %d, want 1", next.RepetitionNumber)
	}
}

func TestNextState_CorrectThenIncorrect(t *testing.T) {
	rec := NewRecord("learner-1", "item-1", day(0))
	rec = NextState(rec, true, day(0)) // interval=6, ease=2.6

	next := NextState(rec, false, day(6))
	if next.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", next.IntervalDays)
	}
	if next.EaseFactor != 2.4 {
		t.Errorf("ease = %v, want 2.4", next.EaseFactor)
	}
	if !next.NextReviewDate.Equal(day(7)) {
		t.Errorf("next review = %v, want %v", next.NextReviewDate, day(7))
	}
	if next.RepetitionNumber != 2 {
		t.Errorf("repetition = %d, want 2", next.RepetitionNumber)
	}
}

func TestNextState_IntervalGrowsWithEase(t *testing.T) {
	rec := NewRecord("learner-1", "item-1", day(0))
	rec = NextState(rec, true, day(0)) // 6 days, ease 2.6

	next := NextState(rec, true, day(6))
	// round(6 * 2.6) = 16
	if next.IntervalDays != 16 {
		t.Errorf("interval = %d, want 16", next.IntervalDays)
	}
	if next.EaseFactor != 2.7 {
		t.Errorf("ease = %v, want 2.7", next.EaseFactor)
	}
}

func TestNextState_EaseNeverBelowFloor(t *testing.T) {
	rec := NewRecord("learner-1", "item-1", day(0))
	for i := range 20 {
		rec = NextState(rec, false, day(i))
		if rec.EaseFactor < MinEaseFactor {
			t.Fatalf("after %d incorrect reviews ease = %v, below floor %v", i+1, rec.EaseFactor, MinEaseFactor)
		}
	}
	if rec.EaseFactor != MinEaseFactor {
		t.Errorf("ease = %v, want exactly %v after many failures", rec.EaseFactor, MinEaseFactor)
	}
	if rec.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", rec.IntervalDays)
	}
}

func TestNextState_RecoveryFromFloor(t *testing.T) {
	rec := NewRecord("learner-1", "item-1", day(0))
	for i := range 10 {
		rec = NextState(rec, false, day(i))
	}
	rec = NextState(rec, true, day(10))
	if rec.IntervalDays != 6 {
		t.Errorf("interval = %d, want 6 after recovery from interval 1", rec.IntervalDays)
	}
	if rec.EaseFactor != 1.4 {
		t.Errorf("ease = %v, want 1.4", rec.EaseFactor)
	}
}

func TestIsDue(t *testing.T) {
	rec := &ReviewRecord{NextReviewDate: day(5)}
	if rec.IsDue(day(4)) {
		t.Error("expected not due before review date")
	}
	if !rec.IsDue(day(5)) {
		t.Error("expected due on review date")
	}
	if !rec.IsDue(day(9)) {
		t.Error("expected due after review date")
	}
}

func TestOverdueDays(t *testing.T) {
	rec := &ReviewRecord{NextReviewDate: day(5)}
	if got := rec.OverdueDays(day(4)); got != 0 {
		t.Errorf("OverdueDays before due = %v, want 0", got)
	}
	got := rec.OverdueDays(day(8))
	if got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays = %v, want ~3.0", got)
	}
}

func TestDaysUntilReview(t *testing.T) {
	rec := &ReviewRecord{NextReviewDate: day(5)}
	if got := rec.DaysUntilReview(day(5)); got != 0 {
		t.Errorf("DaysUntilReview when due = %d, want 0", got)
	}
	// 4.5 days out -> int(4.5) + 1 = 5
	rec = &ReviewRecord{NextReviewDate: day(0).Add(108 * time.Hour)}
	if got := rec.DaysUntilReview(day(0)); got != 5 {
		t.Errorf("DaysUntilReview = %d, want 5", got)
	}
}
