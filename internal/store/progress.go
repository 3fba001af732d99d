package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lectio/ent"
	"github.com/abhisek/lectio/ent/lectureprogress"
	entschema "github.com/abhisek/lectio/ent/schema"
)

// progressRepo implements ProgressRepo using the ent client.
// Upserts are last-write-wins: the caller's snapshot replaces the row.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Upsert(ctx context.Context, data ProgressData) error {
	responses := make(map[string]entschema.PausePointResponse, len(data.Responses))
	for id, resp := range data.Responses {
		responses[id] = entschema.PausePointResponse{
			Answer:     resp.Answer,
			Correct:    resp.Correct,
			Grade:      resp.Grade,
			Confidence: resp.Confidence,
			Points:     resp.Points,
			AnsweredAt: resp.AnsweredAt,
		}
	}

	existing, err := r.client.LectureProgress.Query().
		Where(
			lectureprogress.LearnerID(data.LearnerID),
			lectureprogress.LectureID(data.LectureID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query lecture progress: %w", err)
	}

	if existing == nil {
		builder := r.client.LectureProgress.Create().
			SetLearnerID(data.LearnerID).
			SetLectureID(data.LectureID).
			SetVideoPosition(data.VideoPosition).
			SetCompletedPausePoints(data.CompletedPausePoints).
			SetResponses(responses).
			SetTotalPointsEarned(data.TotalPointsEarned)
		if data.CompletedAt != nil {
			builder = builder.SetCompletedAt(*data.CompletedAt)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create lecture progress: %w", err)
		}
		return nil
	}

	builder := existing.Update().
		SetVideoPosition(data.VideoPosition).
		SetCompletedPausePoints(data.CompletedPausePoints).
		SetResponses(responses).
		SetTotalPointsEarned(data.TotalPointsEarned)
	if data.CompletedAt != nil {
		builder = builder.SetCompletedAt(*data.CompletedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update lecture progress: %w", err)
	}
	return nil
}

func (r *progressRepo) Get(ctx context.Context, learnerID, lectureID string) (*ProgressData, error) {
	lp, err := r.client.LectureProgress.Query().
		Where(
			lectureprogress.LearnerID(learnerID),
			lectureprogress.LectureID(lectureID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query lecture progress: %w", err)
	}

	responses := make(map[string]PausePointResponse, len(lp.Responses))
	for id, resp := range lp.Responses {
		responses[id] = PausePointResponse{
			Answer:     resp.Answer,
			Correct:    resp.Correct,
			Grade:      resp.Grade,
			Confidence: resp.Confidence,
			Points:     resp.Points,
			AnsweredAt: resp.AnsweredAt,
		}
	}

	return &ProgressData{
		LearnerID:            lp.LearnerID,
		LectureID:            lp.LectureID,
		VideoPosition:        lp.VideoPosition,
		CompletedPausePoints: lp.CompletedPausePoints,
		Responses:            responses,
		TotalPointsEarned:    lp.TotalPointsEarned,
		CompletedAt:          lp.CompletedAt,
	}, nil
}
