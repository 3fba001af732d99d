package spacedrep

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/lectio/internal/store"
)

type fakeReviewRepo struct {
	records map[string]store.ReviewRecordData // keyed by learner|item
	upserts int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{records: make(map[string]store.ReviewRecordData)}
}

func (f *fakeReviewRepo) Upsert(_ context.Context, data store.ReviewRecordData) error {
	f.records[data.LearnerID+"|"+data.ItemID] = data
	f.upserts++
	return nil
}

func (f *fakeReviewRepo) Get(_ context.Context, learnerID, itemID string) (*store.ReviewRecordData, error) {
	rec, ok := f.records[learnerID+"|"+itemID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeReviewRepo) ListByLearner(_ context.Context, learnerID string) ([]*store.ReviewRecordData, error) {
	var out []*store.ReviewRecordData
	for _, rec := range f.records {
		if rec.LearnerID == learnerID {
			r := rec
			out = append(out, &r)
		}
	}
	return out, nil
}

func TestScheduler_RecordAttemptWritesThrough(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReviewRepo()

	sched, err := NewScheduler(ctx, "learner-1", repo)
	require.NoError(t, err)

	rec, err := sched.RecordAttempt(ctx, "item-1", true, day(0))
	require.NoError(t, err)
	require.Equal(t, 6, rec.IntervalDays)
	require.Equal(t, 2.6, rec.EaseFactor)
	require.Equal(t, 1, repo.upserts)

	saved, err := repo.Get(ctx, "learner-1", "item-1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, 6, saved.IntervalDays)
}

func TestScheduler_LoadsExistingRecords(t *testing.T) {
	ctx := context.Background()
	repo := newFakeReviewRepo()
	require.NoError(t, repo.Upsert(ctx, store.ReviewRecordData{
		LearnerID:        "learner-1",
		ItemID:           "item-1",
		IntervalDays:     6,
		EaseFactor:       2.6,
		NextReviewDate:   day(6),
		LastReviewedDate: day(0),
		RepetitionNumber: 1,
	}))

	sched, err := NewScheduler(ctx, "learner-1", repo)
	require.NoError(t, err)

	rec := sched.GetRecord("item-1")
	require.NotNil(t, rec)
	require.Equal(t, 6, rec.IntervalDays)

	// Next correct attempt builds on the loaded state.
	next, err := sched.RecordAttempt(ctx, "item-1", true, day(6))
	require.NoError(t, err)
	require.Equal(t, 16, next.IntervalDays) // round(6 * 2.6)
	require.Equal(t, 2, next.RepetitionNumber)
}

func TestScheduler_DueItemsOrdering(t *testing.T) {
	ctx := context.Background()
	sched, err := NewScheduler(ctx, "learner-1", nil)
	require.NoError(t, err)

	now := day(10)
	sched.records["a"] = &ReviewRecord{ItemID: "a", NextReviewDate: day(8)}  // 2 days overdue
	sched.records["b"] = &ReviewRecord{ItemID: "b", NextReviewDate: day(4)}  // 6 days overdue
	sched.records["c"] = &ReviewRecord{ItemID: "c", NextReviewDate: day(12)} // not due
	sched.records["d"] = &ReviewRecord{ItemID: "d", NextReviewDate: day(8)}  // ties with a

	due := sched.DueItems(now)
	require.Equal(t, []string{"b", "a", "d"}, due)
}

func TestScheduler_DueItemsEmptyWhenNothingTracked(t *testing.T) {
	sched, err := NewScheduler(context.Background(), "learner-1", nil)
	require.NoError(t, err)
	require.Empty(t, sched.DueItems(time.Now()))
}
