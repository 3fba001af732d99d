package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lectio/ent"
	"github.com/abhisek/lectio/ent/remediationrecord"
)

// remediationRepo implements RemediationRepo using the ent client.
type remediationRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *remediationRepo) Save(ctx context.Context, data RemediationData) (int, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	rec, err := r.client.RemediationRecord.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetLectureID(data.LectureID).
		SetPausePointID(data.PausePointID).
		SetMisconception(data.Misconception).
		SetMissingConcept(data.MissingConcept).
		SetRootCause(data.RootCause).
		SetJumpToSeconds(data.JumpToSeconds).
		SetEndSeconds(data.EndSeconds).
		SetExplanation(data.Explanation).
		SetFollowUpQuestion(data.FollowUpQuestion).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save remediation record: %w", err)
	}
	return rec.ID, nil
}

func (r *remediationRepo) Resolve(ctx context.Context, id int, answer string, answered, correct bool) error {
	_, err := r.client.RemediationRecord.UpdateOneID(id).
		SetFollowUpAnswer(answer).
		SetFollowUpAnswered(answered).
		SetFollowUpCorrect(correct).
		SetResolved(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("resolve remediation record: %w", err)
	}
	return nil
}

func (r *remediationRepo) ListByLecture(ctx context.Context, learnerID, lectureID string) ([]*RemediationData, error) {
	recs, err := r.client.RemediationRecord.Query().
		Where(
			remediationrecord.LearnerID(learnerID),
			remediationrecord.LectureID(lectureID),
		).
		Order(ent.Asc(remediationrecord.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list remediation records: %w", err)
	}

	out := make([]*RemediationData, len(recs))
	for i, rec := range recs {
		out[i] = &RemediationData{
			ID:               rec.ID,
			LearnerID:        rec.LearnerID,
			LectureID:        rec.LectureID,
			PausePointID:     rec.PausePointID,
			Misconception:    rec.Misconception,
			MissingConcept:   rec.MissingConcept,
			RootCause:        rec.RootCause,
			JumpToSeconds:    rec.JumpToSeconds,
			EndSeconds:       rec.EndSeconds,
			Explanation:      rec.Explanation,
			FollowUpQuestion: rec.FollowUpQuestion,
			FollowUpAnswer:   rec.FollowUpAnswer,
			FollowUpAnswered: rec.FollowUpAnswered,
			FollowUpCorrect:  rec.FollowUpCorrect,
			Resolved:         rec.Resolved,
		}
	}
	return out, nil
}
