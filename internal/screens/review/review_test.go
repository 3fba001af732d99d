package review

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lectio/internal/content"
	"github.com/abhisek/lectio/internal/screen"
	"github.com/abhisek/lectio/internal/store"
)

type fakeReviewRepo struct {
	records []*store.ReviewRecordData
	upserts int
}

func (f *fakeReviewRepo) Upsert(_ context.Context, data store.ReviewRecordData) error {
	f.upserts++
	for i, rec := range f.records {
		if rec.LearnerID == data.LearnerID && rec.ItemID == data.ItemID {
			f.records[i] = &data
			return nil
		}
	}
	f.records = append(f.records, &data)
	return nil
}

func (f *fakeReviewRepo) Get(_ context.Context, learnerID, itemID string) (*store.ReviewRecordData, error) {
	for _, rec := range f.records {
		if rec.LearnerID == learnerID && rec.ItemID == itemID {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) ListByLearner(_ context.Context, learnerID string) ([]*store.ReviewRecordData, error) {
	var out []*store.ReviewRecordData
	for _, rec := range f.records {
		if rec.LearnerID == learnerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func testLectures() []*content.Lecture {
	return []*content.Lecture{
		{
			ID:              "ml-101",
			Title:           "Intro",
			DurationSeconds: 600,
			PausePoints: []*content.PausePoint{
				{
					ID:            "pp-1",
					OffsetSeconds: 60,
					Item: &content.PracticeItem{
						ID:         "item-1",
						Body:       "Pick beta",
						Type:       content.TypeMultipleChoice,
						BaseReward: 100,
						MultipleChoice: &content.MultipleChoice{
							Options:      []string{"alpha", "beta"},
							CorrectIndex: 1,
						},
					},
				},
			},
		},
	}
}

func dueRepo() *fakeReviewRepo {
	yesterday := time.Now().Add(-24 * time.Hour)
	return &fakeReviewRepo{records: []*store.ReviewRecordData{
		{
			LearnerID:        "learner-1",
			ItemID:           "item-1",
			IntervalDays:     1,
			EaseFactor:       2.5,
			NextReviewDate:   yesterday,
			LastReviewedDate: yesterday.Add(-24 * time.Hour),
			RepetitionNumber: 1,
		},
	}}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestReviewScreen_EmptyQueue(t *testing.T) {
	s := New(testLectures(), Deps{LearnerID: "learner-1"})
	if s.phase != phaseEmpty {
		t.Errorf("phase = %d, want empty", s.phase)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty empty-queue view")
	}
}

func TestReviewScreen_QueuesDueItems(t *testing.T) {
	s := New(testLectures(), Deps{LearnerID: "learner-1", Reviews: dueRepo()})
	if len(s.queue) != 1 {
		t.Fatalf("queue = %d items, want 1", len(s.queue))
	}
	if s.phase != phaseQuestion {
		t.Errorf("phase = %d, want question", s.phase)
	}
	if !s.mcActive {
		t.Error("expected multiple choice widget")
	}
}

func TestReviewScreen_AnswerFlow(t *testing.T) {
	repo := dueRepo()
	s := New(testLectures(), Deps{LearnerID: "learner-1", Reviews: repo})

	// Select the correct option and commit.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*ReviewScreen)
	if ss.phase != phaseConfidence {
		t.Fatal("expected confidence stage after answer commit")
	}

	scr, cmd := ss.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected grade command after wager commit")
	}
	msg := cmd()
	scr, _ = scr.Update(msg)
	ss = scr.(*ReviewScreen)

	if ss.phase != phaseResult {
		t.Fatalf("phase = %d, want result", ss.phase)
	}
	if !ss.last.Correct {
		t.Error("expected correct result")
	}
	if ss.Points() != 100 {
		t.Errorf("Points = %d, want 100", ss.Points())
	}
	if repo.upserts != 1 {
		t.Errorf("review upserts = %d, want 1", repo.upserts)
	}

	// Advancing past the last item finishes the session.
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*ReviewScreen)
	if ss.phase != phaseDone {
		t.Errorf("phase = %d, want done", ss.phase)
	}
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestReviewScreen_SkipsItemsNotDue(t *testing.T) {
	repo := dueRepo()
	repo.records[0].NextReviewDate = time.Now().Add(48 * time.Hour)
	s := New(testLectures(), Deps{LearnerID: "learner-1", Reviews: repo})
	if s.phase != phaseEmpty {
		t.Errorf("phase = %d, want empty for future review date", s.phase)
	}
}
