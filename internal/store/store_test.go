package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		require.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestProgressUpsertAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	got, err := repo.Get(ctx, "learner-1", "lecture-1")
	require.NoError(t, err)
	require.Nil(t, got, "expected nil progress before first upsert")

	grade := 85
	err = repo.Upsert(ctx, ProgressData{
		LearnerID:            "learner-1",
		LectureID:            "lecture-1",
		VideoPosition:        42.5,
		CompletedPausePoints: []string{"pp-1"},
		Responses: map[string]PausePointResponse{
			"pp-1": {
				Answer:     "B",
				Correct:    true,
				Grade:      &grade,
				Confidence: "maybe",
				Points:     100,
				AnsweredAt: time.Now().UTC(),
			},
		},
		TotalPointsEarned: 100,
	})
	require.NoError(t, err)

	got, err = repo.Get(ctx, "learner-1", "lecture-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 42.5, got.VideoPosition)
	require.Equal(t, []string{"pp-1"}, got.CompletedPausePoints)
	require.Equal(t, 100, got.TotalPointsEarned)
	require.Nil(t, got.CompletedAt)
	require.NotNil(t, got.Responses["pp-1"].Grade)
	require.Equal(t, 85, *got.Responses["pp-1"].Grade)

	// Second upsert overwrites (last-write-wins).
	completedAt := time.Now().UTC().Truncate(time.Second)
	err = repo.Upsert(ctx, ProgressData{
		LearnerID:            "learner-1",
		LectureID:            "lecture-1",
		VideoPosition:        300,
		CompletedPausePoints: []string{"pp-1", "pp-2"},
		TotalPointsEarned:    150,
		CompletedAt:          &completedAt,
	})
	require.NoError(t, err)

	got, err = repo.Get(ctx, "learner-1", "lecture-1")
	require.NoError(t, err)
	require.Equal(t, 300.0, got.VideoPosition)
	require.Len(t, got.CompletedPausePoints, 2)
	require.NotNil(t, got.CompletedAt)
}

func TestReviewUpsertAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReviewRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	err := repo.Upsert(ctx, ReviewRecordData{
		LearnerID:        "learner-1",
		ItemID:           "item-1",
		IntervalDays:     6,
		EaseFactor:       2.6,
		NextReviewDate:   now.AddDate(0, 0, 6),
		LastReviewedDate: now,
		RepetitionNumber: 1,
	})
	require.NoError(t, err)

	rec, err := repo.Get(ctx, "learner-1", "item-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, 6, rec.IntervalDays)
	require.Equal(t, 2.6, rec.EaseFactor)

	// Upsert mutates in place.
	err = repo.Upsert(ctx, ReviewRecordData{
		LearnerID:        "learner-1",
		ItemID:           "item-1",
		IntervalDays:     1,
		EaseFactor:       2.4,
		NextReviewDate:   now.AddDate(0, 0, 1),
		LastReviewedDate: now,
		RepetitionNumber: 2,
	})
	require.NoError(t, err)

	recs, err := repo.ListByLearner(ctx, "learner-1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, 2, recs[0].RepetitionNumber)
	require.Equal(t, 2.4, recs[0].EaseFactor)
}

func TestRemediationSaveAndResolve(t *testing.T) {
	s := openTestStore(t)
	repo := s.RemediationRepo()
	ctx := context.Background()

	id, err := repo.Save(ctx, RemediationData{
		LearnerID:        "learner-1",
		LectureID:        "lecture-1",
		PausePointID:     "pp-2",
		Misconception:    "confuses precision with recall",
		MissingConcept:   "confusion matrix rows vs columns",
		JumpToSeconds:    120,
		EndSeconds:       180,
		Explanation:      "Precision is computed over predicted positives...",
		FollowUpQuestion: "Which metric penalizes false positives?",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	recs, err := repo.ListByLecture(ctx, "learner-1", "lecture-1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.False(t, recs[0].Resolved)
	require.False(t, recs[0].FollowUpAnswered)

	err = repo.Resolve(ctx, id, "precision", true, true)
	require.NoError(t, err)

	recs, err = repo.ListByLecture(ctx, "learner-1", "lecture-1")
	require.NoError(t, err)
	require.True(t, recs[0].Resolved)
	require.True(t, recs[0].FollowUpAnswered)
	require.True(t, recs[0].FollowUpCorrect)
}

func TestEventAppendAndAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := AttemptEventData{
		SessionID:  "sess-1",
		LearnerID:  "learner-1",
		ItemID:     "item-1",
		LectureID:  "lecture-1",
		Answer:     "42",
		Confidence: "maybe",
		TimeMs:     1500,
	}

	a := base
	a.Correct = true
	a.Points = 100
	require.NoError(t, repo.AppendAttemptEvent(ctx, a))

	b := base
	b.Correct = false
	b.Points = -25
	require.NoError(t, repo.AppendAttemptEvent(ctx, b))

	acc, err := repo.ItemAccuracy(ctx, "learner-1", "item-1")
	require.NoError(t, err)
	require.InDelta(t, 0.5, acc, 1e-9)

	points, err := repo.TotalPoints(ctx, "learner-1")
	require.NoError(t, err)
	require.Equal(t, 75, points)

	total, correct, err := repo.AttemptCounts(ctx, "learner-1")
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Equal(t, 1, correct)

	require.NoError(t, repo.AppendPlaybackEvent(ctx, PlaybackEventData{
		SessionID: "sess-1",
		LearnerID: "learner-1",
		LectureID: "lecture-1",
		Kind:      "blocked_skip",
		From:      30,
		To:        30,
		Requested: 90,
	}))

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		LearnerID: "learner-1",
		LectureID: "lecture-1",
		Action:    "start",
	}))
}
