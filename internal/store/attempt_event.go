package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lectio/ent"
	"github.com/abhisek/lectio/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetItemID(data.ItemID).
		SetLectureID(data.LectureID).
		SetPausePointID(data.PausePointID).
		SetAnswer(data.Answer).
		SetConfidence(data.Confidence).
		SetCorrect(data.Correct).
		SetPoints(data.Points).
		SetTimeMs(data.TimeMs).
		SetNeedsReview(data.NeedsReview)

	if data.Grade != nil {
		builder = builder.SetGrade(*data.Grade)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) ItemAccuracy(ctx context.Context, learnerID, itemID string) (float64, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.LearnerID(learnerID),
			attemptevent.ItemID(itemID),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query item accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) TotalPoints(ctx context.Context, learnerID string) (int, error) {
	var v []struct {
		Sum int `json:"sum"`
	}
	err := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID)).
		Aggregate(ent.Sum(attemptevent.FieldPoints)).
		Scan(ctx, &v)
	if err != nil {
		return 0, fmt.Errorf("sum points: %w", err)
	}
	if len(v) == 0 {
		return 0, nil
	}
	return v[0].Sum, nil
}

func (r *eventRepo) AttemptCounts(ctx context.Context, learnerID string) (int, int, error) {
	total, err := r.client.AttemptEvent.Query().
		Where(attemptevent.LearnerID(learnerID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count attempts: %w", err)
	}

	correct, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.LearnerID(learnerID),
			attemptevent.Correct(true),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct attempts: %w", err)
	}
	return total, correct, nil
}
