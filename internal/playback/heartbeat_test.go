package playback

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/lectio/internal/store"
)

type fakeProgressRepo struct {
	upserts []store.ProgressData
	err     error
}

func (f *fakeProgressRepo) Upsert(_ context.Context, data store.ProgressData) error {
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, data)
	return nil
}

func (f *fakeProgressRepo) Get(_ context.Context, learnerID, lectureID string) (*store.ProgressData, error) {
	return nil, nil
}

func TestHeartbeat_BeatRespectsInterval(t *testing.T) {
	repo := &fakeProgressRepo{}
	position := 0.0
	h := NewHeartbeat(repo, func() store.ProgressData {
		return store.ProgressData{LearnerID: "l", LectureID: "x", VideoPosition: position}
	})

	start := time.Now()
	h.Beat(context.Background(), start) // first beat fires (lastBeat is zero)
	position = 5
	h.Beat(context.Background(), start.Add(5*time.Second)) // too soon
	position = 12
	h.Beat(context.Background(), start.Add(12*time.Second)) // fires

	if len(repo.upserts) != 2 {
		t.Fatalf("upserts = %d, want 2", len(repo.upserts))
	}
	if repo.upserts[1].VideoPosition != 12 {
		t.Errorf("second upsert position = %v, want 12", repo.upserts[1].VideoPosition)
	}
}

func TestHeartbeat_FlushImmediate(t *testing.T) {
	repo := &fakeProgressRepo{}
	h := NewHeartbeat(repo, func() store.ProgressData {
		return store.ProgressData{LearnerID: "l", LectureID: "x"}
	})

	h.Flush(context.Background())
	h.Flush(context.Background())
	if len(repo.upserts) != 2 {
		t.Fatalf("upserts = %d, want 2", len(repo.upserts))
	}
}

func TestHeartbeat_NilRepoNoop(t *testing.T) {
	h := NewHeartbeat(nil, func() store.ProgressData { return store.ProgressData{} })
	h.Flush(context.Background()) // must not panic
	h.Beat(context.Background(), time.Now())
}
