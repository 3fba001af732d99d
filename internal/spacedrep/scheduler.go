package spacedrep

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/lectio/internal/store"
)

// Scheduler manages spaced repetition scheduling for one learner.
// Records are cached in memory and written through to the ReviewRepo on
// every update.
type Scheduler struct {
	learnerID string
	records   map[string]*ReviewRecord // keyed by item ID
	repo      store.ReviewRepo
}

// NewScheduler creates a scheduler for a learner, loading existing review
// records from the repo. A nil repo gives an in-memory-only scheduler.
func NewScheduler(ctx context.Context, learnerID string, repo store.ReviewRepo) (*Scheduler, error) {
	s := &Scheduler{
		learnerID: learnerID,
		records:   make(map[string]*ReviewRecord),
		repo:      repo,
	}

	if repo == nil {
		return s, nil
	}

	recs, err := repo.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load review records: %w", err)
	}
	for _, rec := range recs {
		s.records[rec.ItemID] = &ReviewRecord{
			LearnerID:        rec.LearnerID,
			ItemID:           rec.ItemID,
			IntervalDays:     rec.IntervalDays,
			EaseFactor:       rec.EaseFactor,
			NextReviewDate:   rec.NextReviewDate,
			LastReviewedDate: rec.LastReviewedDate,
			RepetitionNumber: rec.RepetitionNumber,
		}
	}
	return s, nil
}

// RecordAttempt updates the review schedule after a graded attempt and
// writes the record through. Must be called exactly once per attempt: the
// recurrence is not idempotent against duplicate calls.
func (s *Scheduler) RecordAttempt(ctx context.Context, itemID string, correct bool, now time.Time) (*ReviewRecord, error) {
	rec := s.records[itemID]
	if rec == nil {
		fresh := NewRecord(s.learnerID, itemID, now)
		rec = &fresh
	}

	next := NextState(*rec, correct, now)
	s.records[itemID] = &next

	if s.repo != nil {
		err := s.repo.Upsert(ctx, store.ReviewRecordData{
			LearnerID:        next.LearnerID,
			ItemID:           next.ItemID,
			IntervalDays:     next.IntervalDays,
			EaseFactor:       next.EaseFactor,
			NextReviewDate:   next.NextReviewDate,
			LastReviewedDate: next.LastReviewedDate,
			RepetitionNumber: next.RepetitionNumber,
		})
		if err != nil {
			return &next, fmt.Errorf("persist review record: %w", err)
		}
	}
	return &next, nil
}

// DueItems returns item IDs due for review, sorted by most overdue first.
// Ties break by item ID for deterministic ordering.
func (s *Scheduler) DueItems(now time.Time) []string {
	type dueItem struct {
		id      string
		overdue float64
	}
	var due []dueItem

	for itemID, rec := range s.records {
		if rec.IsDue(now) {
			due = append(due, dueItem{id: itemID, overdue: rec.OverdueDays(now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})

	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids
}

// GetRecord returns the review record for an item, or nil if not tracked.
func (s *Scheduler) GetRecord(itemID string) *ReviewRecord {
	return s.records[itemID]
}

// AllRecords returns all review records (for stats/UI).
func (s *Scheduler) AllRecords() map[string]*ReviewRecord {
	result := make(map[string]*ReviewRecord, len(s.records))
	for id, rec := range s.records {
		result[id] = rec
	}
	return result
}
