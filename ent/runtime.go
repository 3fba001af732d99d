// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lectio/ent/attemptevent"
	"github.com/abhisek/lectio/ent/lectureprogress"
	"github.com/abhisek/lectio/ent/llmrequestevent"
	"github.com/abhisek/lectio/ent/playbackevent"
	"github.com/abhisek/lectio/ent/remediationrecord"
	"github.com/abhisek/lectio/ent/reviewrecord"
	"github.com/abhisek/lectio/ent/schema"
	"github.com/abhisek/lectio/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[1].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[2].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescLectureID is the schema descriptor for lecture_id field.
	attempteventDescLectureID := attempteventFields[3].Descriptor()
	// attemptevent.DefaultLectureID holds the default value on creation for the lecture_id field.
	attemptevent.DefaultLectureID = attempteventDescLectureID.Default.(string)
	// attempteventDescPausePointID is the schema descriptor for pause_point_id field.
	attempteventDescPausePointID := attempteventFields[4].Descriptor()
	// attemptevent.DefaultPausePointID holds the default value on creation for the pause_point_id field.
	attemptevent.DefaultPausePointID = attempteventDescPausePointID.Default.(string)
	// attempteventDescAnswer is the schema descriptor for answer field.
	attempteventDescAnswer := attempteventFields[5].Descriptor()
	// attemptevent.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	attemptevent.AnswerValidator = attempteventDescAnswer.Validators[0].(func(string) error)
	// attempteventDescConfidence is the schema descriptor for confidence field.
	attempteventDescConfidence := attempteventFields[6].Descriptor()
	// attemptevent.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	attemptevent.ConfidenceValidator = attempteventDescConfidence.Validators[0].(func(string) error)
	// attempteventDescNeedsReview is the schema descriptor for needs_review field.
	attempteventDescNeedsReview := attempteventFields[11].Descriptor()
	// attemptevent.DefaultNeedsReview holds the default value on creation for the needs_review field.
	attemptevent.DefaultNeedsReview = attempteventDescNeedsReview.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	lectureprogressFields := schema.LectureProgress{}.Fields()
	_ = lectureprogressFields
	// lectureprogressDescLearnerID is the schema descriptor for learner_id field.
	lectureprogressDescLearnerID := lectureprogressFields[0].Descriptor()
	// lectureprogress.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	lectureprogress.LearnerIDValidator = lectureprogressDescLearnerID.Validators[0].(func(string) error)
	// lectureprogressDescLectureID is the schema descriptor for lecture_id field.
	lectureprogressDescLectureID := lectureprogressFields[1].Descriptor()
	// lectureprogress.LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	lectureprogress.LectureIDValidator = lectureprogressDescLectureID.Validators[0].(func(string) error)
	// lectureprogressDescVideoPosition is the schema descriptor for video_position field.
	lectureprogressDescVideoPosition := lectureprogressFields[2].Descriptor()
	// lectureprogress.DefaultVideoPosition holds the default value on creation for the video_position field.
	lectureprogress.DefaultVideoPosition = lectureprogressDescVideoPosition.Default.(float64)
	// lectureprogressDescTotalPointsEarned is the schema descriptor for total_points_earned field.
	lectureprogressDescTotalPointsEarned := lectureprogressFields[5].Descriptor()
	// lectureprogress.DefaultTotalPointsEarned holds the default value on creation for the total_points_earned field.
	lectureprogress.DefaultTotalPointsEarned = lectureprogressDescTotalPointsEarned.Default.(int)
	// lectureprogressDescUpdatedAt is the schema descriptor for updated_at field.
	lectureprogressDescUpdatedAt := lectureprogressFields[7].Descriptor()
	// lectureprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lectureprogress.DefaultUpdatedAt = lectureprogressDescUpdatedAt.Default.(func() time.Time)
	// lectureprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lectureprogress.UpdateDefaultUpdatedAt = lectureprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	playbackeventMixin := schema.PlaybackEvent{}.Mixin()
	playbackeventMixinFields0 := playbackeventMixin[0].Fields()
	_ = playbackeventMixinFields0
	playbackeventFields := schema.PlaybackEvent{}.Fields()
	_ = playbackeventFields
	// playbackeventDescTimestamp is the schema descriptor for timestamp field.
	playbackeventDescTimestamp := playbackeventMixinFields0[1].Descriptor()
	// playbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	playbackevent.DefaultTimestamp = playbackeventDescTimestamp.Default.(func() time.Time)
	// playbackeventDescSessionID is the schema descriptor for session_id field.
	playbackeventDescSessionID := playbackeventFields[0].Descriptor()
	// playbackevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	playbackevent.SessionIDValidator = playbackeventDescSessionID.Validators[0].(func(string) error)
	// playbackeventDescLearnerID is the schema descriptor for learner_id field.
	playbackeventDescLearnerID := playbackeventFields[1].Descriptor()
	// playbackevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	playbackevent.LearnerIDValidator = playbackeventDescLearnerID.Validators[0].(func(string) error)
	// playbackeventDescLectureID is the schema descriptor for lecture_id field.
	playbackeventDescLectureID := playbackeventFields[2].Descriptor()
	// playbackevent.LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	playbackevent.LectureIDValidator = playbackeventDescLectureID.Validators[0].(func(string) error)
	// playbackeventDescKind is the schema descriptor for kind field.
	playbackeventDescKind := playbackeventFields[3].Descriptor()
	// playbackevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	playbackevent.KindValidator = playbackeventDescKind.Validators[0].(func(string) error)
	remediationrecordMixin := schema.RemediationRecord{}.Mixin()
	remediationrecordMixinFields0 := remediationrecordMixin[0].Fields()
	_ = remediationrecordMixinFields0
	remediationrecordFields := schema.RemediationRecord{}.Fields()
	_ = remediationrecordFields
	// remediationrecordDescTimestamp is the schema descriptor for timestamp field.
	remediationrecordDescTimestamp := remediationrecordMixinFields0[1].Descriptor()
	// remediationrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	remediationrecord.DefaultTimestamp = remediationrecordDescTimestamp.Default.(func() time.Time)
	// remediationrecordDescLearnerID is the schema descriptor for learner_id field.
	remediationrecordDescLearnerID := remediationrecordFields[0].Descriptor()
	// remediationrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	remediationrecord.LearnerIDValidator = remediationrecordDescLearnerID.Validators[0].(func(string) error)
	// remediationrecordDescLectureID is the schema descriptor for lecture_id field.
	remediationrecordDescLectureID := remediationrecordFields[1].Descriptor()
	// remediationrecord.LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	remediationrecord.LectureIDValidator = remediationrecordDescLectureID.Validators[0].(func(string) error)
	// remediationrecordDescPausePointID is the schema descriptor for pause_point_id field.
	remediationrecordDescPausePointID := remediationrecordFields[2].Descriptor()
	// remediationrecord.PausePointIDValidator is a validator for the "pause_point_id" field. It is called by the builders before save.
	remediationrecord.PausePointIDValidator = remediationrecordDescPausePointID.Validators[0].(func(string) error)
	// remediationrecordDescRootCause is the schema descriptor for root_cause field.
	remediationrecordDescRootCause := remediationrecordFields[5].Descriptor()
	// remediationrecord.DefaultRootCause holds the default value on creation for the root_cause field.
	remediationrecord.DefaultRootCause = remediationrecordDescRootCause.Default.(string)
	// remediationrecordDescFollowUpQuestion is the schema descriptor for follow_up_question field.
	remediationrecordDescFollowUpQuestion := remediationrecordFields[9].Descriptor()
	// remediationrecord.DefaultFollowUpQuestion holds the default value on creation for the follow_up_question field.
	remediationrecord.DefaultFollowUpQuestion = remediationrecordDescFollowUpQuestion.Default.(string)
	// remediationrecordDescFollowUpAnswer is the schema descriptor for follow_up_answer field.
	remediationrecordDescFollowUpAnswer := remediationrecordFields[10].Descriptor()
	// remediationrecord.DefaultFollowUpAnswer holds the default value on creation for the follow_up_answer field.
	remediationrecord.DefaultFollowUpAnswer = remediationrecordDescFollowUpAnswer.Default.(string)
	// remediationrecordDescFollowUpAnswered is the schema descriptor for follow_up_answered field.
	remediationrecordDescFollowUpAnswered := remediationrecordFields[11].Descriptor()
	// remediationrecord.DefaultFollowUpAnswered holds the default value on creation for the follow_up_answered field.
	remediationrecord.DefaultFollowUpAnswered = remediationrecordDescFollowUpAnswered.Default.(bool)
	// remediationrecordDescFollowUpCorrect is the schema descriptor for follow_up_correct field.
	remediationrecordDescFollowUpCorrect := remediationrecordFields[12].Descriptor()
	// remediationrecord.DefaultFollowUpCorrect holds the default value on creation for the follow_up_correct field.
	remediationrecord.DefaultFollowUpCorrect = remediationrecordDescFollowUpCorrect.Default.(bool)
	// remediationrecordDescResolved is the schema descriptor for resolved field.
	remediationrecordDescResolved := remediationrecordFields[13].Descriptor()
	// remediationrecord.DefaultResolved holds the default value on creation for the resolved field.
	remediationrecord.DefaultResolved = remediationrecordDescResolved.Default.(bool)
	reviewrecordFields := schema.ReviewRecord{}.Fields()
	_ = reviewrecordFields
	// reviewrecordDescLearnerID is the schema descriptor for learner_id field.
	reviewrecordDescLearnerID := reviewrecordFields[0].Descriptor()
	// reviewrecord.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	reviewrecord.LearnerIDValidator = reviewrecordDescLearnerID.Validators[0].(func(string) error)
	// reviewrecordDescItemID is the schema descriptor for item_id field.
	reviewrecordDescItemID := reviewrecordFields[1].Descriptor()
	// reviewrecord.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	reviewrecord.ItemIDValidator = reviewrecordDescItemID.Validators[0].(func(string) error)
	// reviewrecordDescIntervalDays is the schema descriptor for interval_days field.
	reviewrecordDescIntervalDays := reviewrecordFields[2].Descriptor()
	// reviewrecord.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewrecord.DefaultIntervalDays = reviewrecordDescIntervalDays.Default.(int)
	// reviewrecord.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewrecord.IntervalDaysValidator = reviewrecordDescIntervalDays.Validators[0].(func(int) error)
	// reviewrecordDescEaseFactor is the schema descriptor for ease_factor field.
	reviewrecordDescEaseFactor := reviewrecordFields[3].Descriptor()
	// reviewrecord.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewrecord.DefaultEaseFactor = reviewrecordDescEaseFactor.Default.(float64)
	// reviewrecordDescRepetitionNumber is the schema descriptor for repetition_number field.
	reviewrecordDescRepetitionNumber := reviewrecordFields[6].Descriptor()
	// reviewrecord.DefaultRepetitionNumber holds the default value on creation for the repetition_number field.
	reviewrecord.DefaultRepetitionNumber = reviewrecordDescRepetitionNumber.Default.(int)
	// reviewrecord.RepetitionNumberValidator is a validator for the "repetition_number" field. It is called by the builders before save.
	reviewrecord.RepetitionNumberValidator = reviewrecordDescRepetitionNumber.Validators[0].(func(int) error)
	// reviewrecordDescUpdatedAt is the schema descriptor for updated_at field.
	reviewrecordDescUpdatedAt := reviewrecordFields[7].Descriptor()
	// reviewrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewrecord.DefaultUpdatedAt = reviewrecordDescUpdatedAt.Default.(func() time.Time)
	// reviewrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewrecord.UpdateDefaultUpdatedAt = reviewrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLearnerID is the schema descriptor for learner_id field.
	sessioneventDescLearnerID := sessioneventFields[1].Descriptor()
	// sessionevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	sessionevent.LearnerIDValidator = sessioneventDescLearnerID.Validators[0].(func(string) error)
	// sessioneventDescLectureID is the schema descriptor for lecture_id field.
	sessioneventDescLectureID := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultLectureID holds the default value on creation for the lecture_id field.
	sessionevent.DefaultLectureID = sessioneventDescLectureID.Default.(string)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescPointsEarned is the schema descriptor for points_earned field.
	sessioneventDescPointsEarned := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultPointsEarned holds the default value on creation for the points_earned field.
	sessionevent.DefaultPointsEarned = sessioneventDescPointsEarned.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
