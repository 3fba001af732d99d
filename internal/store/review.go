package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lectio/ent"
	"github.com/abhisek/lectio/ent/reviewrecord"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Upsert(ctx context.Context, data ReviewRecordData) error {
	existing, err := r.client.ReviewRecord.Query().
		Where(
			reviewrecord.LearnerID(data.LearnerID),
			reviewrecord.ItemID(data.ItemID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query review record: %w", err)
	}

	if existing == nil {
		_, err = r.client.ReviewRecord.Create().
			SetLearnerID(data.LearnerID).
			SetItemID(data.ItemID).
			SetIntervalDays(data.IntervalDays).
			SetEaseFactor(data.EaseFactor).
			SetNextReviewDate(data.NextReviewDate).
			SetLastReviewedDate(data.LastReviewedDate).
			SetRepetitionNumber(data.RepetitionNumber).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create review record: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetIntervalDays(data.IntervalDays).
		SetEaseFactor(data.EaseFactor).
		SetNextReviewDate(data.NextReviewDate).
		SetLastReviewedDate(data.LastReviewedDate).
		SetRepetitionNumber(data.RepetitionNumber).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update review record: %w", err)
	}
	return nil
}

func (r *reviewRepo) Get(ctx context.Context, learnerID, itemID string) (*ReviewRecordData, error) {
	rec, err := r.client.ReviewRecord.Query().
		Where(
			reviewrecord.LearnerID(learnerID),
			reviewrecord.ItemID(itemID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query review record: %w", err)
	}
	return entReviewToData(rec), nil
}

func (r *reviewRepo) ListByLearner(ctx context.Context, learnerID string) ([]*ReviewRecordData, error) {
	recs, err := r.client.ReviewRecord.Query().
		Where(reviewrecord.LearnerID(learnerID)).
		Order(ent.Asc(reviewrecord.FieldNextReviewDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list review records: %w", err)
	}

	out := make([]*ReviewRecordData, len(recs))
	for i, rec := range recs {
		out[i] = entReviewToData(rec)
	}
	return out, nil
}

func entReviewToData(rec *ent.ReviewRecord) *ReviewRecordData {
	return &ReviewRecordData{
		LearnerID:        rec.LearnerID,
		ItemID:           rec.ItemID,
		IntervalDays:     rec.IntervalDays,
		EaseFactor:       rec.EaseFactor,
		NextReviewDate:   rec.NextReviewDate,
		LastReviewedDate: rec.LastReviewedDate,
		RepetitionNumber: rec.RepetitionNumber,
	}
}
