package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPlaybackEvent(ctx context.Context, data PlaybackEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlaybackEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetLectureID(data.LectureID).
		SetKind(data.Kind).
		SetFromSeconds(data.From).
		SetToSeconds(data.To).
		SetRequestedSeconds(data.Requested).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save playback event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLearnerID(data.LearnerID).
		SetLectureID(data.LectureID).
		SetAction(data.Action).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetPointsEarned(data.PointsEarned).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}
