package spacedrep

import "time"

// MinEaseFactor is the floor below which the ease factor never drops,
// no matter how many consecutive incorrect reviews occur.
const MinEaseFactor = 1.3

// DefaultEaseFactor is the starting ease for a brand-new item.
const DefaultEaseFactor = 2.5

// ReviewRecord holds the spaced repetition state for one (learner, item)
// pair. Created on the first attempt, mutated on every subsequent one,
// never deleted.
type ReviewRecord struct {
	LearnerID        string    `json:"learner_id"`
	ItemID           string    `json:"item_id"`
	IntervalDays     int       `json:"interval_days"`
	EaseFactor       float64   `json:"ease_factor"`
	NextReviewDate   time.Time `json:"next_review_date"`
	LastReviewedDate time.Time `json:"last_reviewed_date"`
	RepetitionNumber int       `json:"repetition_number"`
}

// IsDue returns true if the item is due for review (at or past the date).
func (r *ReviewRecord) IsDue(now time.Time) bool {
	return !now.Before(r.NextReviewDate)
}

// OverdueDays returns how many days past due the item is. Returns 0 if
// not yet due.
func (r *ReviewRecord) OverdueDays(now time.Time) float64 {
	if now.Before(r.NextReviewDate) {
		return 0
	}
	return now.Sub(r.NextReviewDate).Hours() / 24.0
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (r *ReviewRecord) DaysUntilReview(now time.Time) int {
	if r.IsDue(now) {
		return 0
	}
	return int(r.NextReviewDate.Sub(now).Hours()/24.0) + 1
}

// NextState applies the SM-2 recurrence to a record after a graded attempt
// and returns the updated state. The input record is not modified.
//
// Correct: interval 1 -> 6, otherwise round(interval*ease); ease rises by
// 0.1. Incorrect: interval resets to 1 and ease drops by 0.2. Ease is
// floored at MinEaseFactor either way.
func NextState(rec ReviewRecord, correct bool, now time.Time) ReviewRecord {
	next := rec

	if correct {
		if rec.IntervalDays <= 1 {
			next.IntervalDays = 6
		} else {
			next.IntervalDays = roundInterval(float64(rec.IntervalDays) * rec.EaseFactor)
		}
		next.EaseFactor = rec.EaseFactor + 0.1
	} else {
		next.IntervalDays = 1
		next.EaseFactor = rec.EaseFactor - 0.2
	}

	if next.EaseFactor < MinEaseFactor {
		next.EaseFactor = MinEaseFactor
	}

	next.LastReviewedDate = now
	next.NextReviewDate = now.AddDate(0, 0, next.IntervalDays)
	next.RepetitionNumber = rec.RepetitionNumber + 1
	return next
}

// NewRecord returns the default state for an item never reviewed before.
// RepetitionNumber starts at 0 so the first NextState lands on 1.
func NewRecord(learnerID, itemID string, now time.Time) ReviewRecord {
	return ReviewRecord{
		LearnerID:        learnerID,
		ItemID:           itemID,
		IntervalDays:     1,
		EaseFactor:       DefaultEaseFactor,
		NextReviewDate:   now,
		LastReviewedDate: now,
	}
}

func roundInterval(v float64) int {
	n := int(v + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}
