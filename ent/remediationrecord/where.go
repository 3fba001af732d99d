// Code generated by ent, DO NOT EDIT.

package remediationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldLearnerID, v))
}

// LectureID applies equality check predicate on the "lecture_id" field. It's identical to LectureIDEQ.
func LectureID(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldLectureID, v))
}

// PausePointID applies equality check predicate on the "pause_point_id" field. It's identical to PausePointIDEQ.
func PausePointID(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldPausePointID, v))
}

// Misconception applies equality check predicate on the "misconception" field. It's identical to MisconceptionEQ.
func Misconception(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldMisconception, v))
}

// MissingConcept applies equality check predicate on the "missing_concept" field. It's identical to MissingConceptEQ.
func MissingConcept(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldMissingConcept, v))
}

// RootCause applies equality check predicate on the "root_cause" field. It's identical to RootCauseEQ.
func RootCause(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldRootCause, v))
}

// JumpToSeconds applies equality check predicate on the "jump_to_seconds" field. It's identical to JumpToSecondsEQ.
func JumpToSeconds(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldJumpToSeconds, v))
}

// EndSeconds applies equality check predicate on the "end_seconds" field. It's identical to EndSecondsEQ.
func EndSeconds(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldEndSeconds, v))
}

// Explanation applies equality check predicate on the "explanation" field. It's identical to ExplanationEQ.
func Explanation(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldExplanation, v))
}

// FollowUpQuestion applies equality check predicate on the "follow_up_question" field. It's identical to FollowUpQuestionEQ.
func FollowUpQuestion(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldFollowUpQuestion, v))
}

// FollowUpAnswer applies equality check predicate on the "follow_up_answer" field. It's identical to FollowUpAnswerEQ.
func FollowUpAnswer(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldFollowUpAnswer, v))
}

// FollowUpAnswered applies equality check predicate on the "follow_up_answered" field. It's identical to FollowUpAnsweredEQ.
func FollowUpAnswered(v bool) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldFollowUpAnswered, v))
}

// FollowUpCorrect applies equality check predicate on the "follow_up_correct" field. It's identical to FollowUpCorrectEQ.
func FollowUpCorrect(v bool) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldFollowUpCorrect, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldResolved, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContainsFold(FieldLearnerID, v))
}

// LectureIDEQ applies the EQ predicate on the "lecture_id" field.
func LectureIDEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldLectureID, v))
}

// LectureIDNEQ applies the NEQ predicate on the "lecture_id" field.
func LectureIDNEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldLectureID, v))
}

// LectureIDIn applies the In predicate on the "lecture_id" field.
func LectureIDIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldLectureID, vs...))
}

// LectureIDNotIn applies the NotIn predicate on the "lecture_id" field.
func LectureIDNotIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldLectureID, vs...))
}

// LectureIDGT applies the GT predicate on the "lecture_id" field.
func LectureIDGT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldLectureID, v))
}

// LectureIDGTE applies the GTE predicate on the "lecture_id" field.
func LectureIDGTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldLectureID, v))
}

// LectureIDLT applies the LT predicate on the "lecture_id" field.
func LectureIDLT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldLectureID, v))
}

// LectureIDLTE applies the LTE predicate on the "lecture_id" field.
func LectureIDLTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldLectureID, v))
}

// LectureIDContains applies the Contains predicate on the "lecture_id" field.
func LectureIDContains(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContains(FieldLectureID, v))
}

// LectureIDHasPrefix applies the HasPrefix predicate on the "lecture_id" field.
func LectureIDHasPrefix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasPrefix(FieldLectureID, v))
}

// LectureIDHasSuffix applies the HasSuffix predicate on the "lecture_id" field.
func LectureIDHasSuffix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasSuffix(FieldLectureID, v))
}

// LectureIDEqualFold applies the EqualFold predicate on the "lecture_id" field.
func LectureIDEqualFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEqualFold(FieldLectureID, v))
}

// LectureIDContainsFold applies the ContainsFold predicate on the "lecture_id" field.
func LectureIDContainsFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContainsFold(FieldLectureID, v))
}

// PausePointIDEQ applies the EQ predicate on the "pause_point_id" field.
func PausePointIDEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldPausePointID, v))
}

// PausePointIDNEQ applies the NEQ predicate on the "pause_point_id" field.
func PausePointIDNEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldPausePointID, v))
}

// PausePointIDIn applies the In predicate on the "pause_point_id" field.
func PausePointIDIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldPausePointID, vs...))
}

// PausePointIDNotIn applies the NotIn predicate on the "pause_point_id" field.
func PausePointIDNotIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldPausePointID, vs...))
}

// PausePointIDGT applies the GT predicate on the "pause_point_id" field.
func PausePointIDGT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldPausePointID, v))
}

// PausePointIDGTE applies the GTE predicate on the "pause_point_id" field.
func PausePointIDGTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldPausePointID, v))
}

// PausePointIDLT applies the LT predicate on the "pause_point_id" field.
func PausePointIDLT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldPausePointID, v))
}

// PausePointIDLTE applies the LTE predicate on the "pause_point_id" field.
func PausePointIDLTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldPausePointID, v))
}

// PausePointIDContains applies the Contains predicate on the "pause_point_id" field.
func PausePointIDContains(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContains(FieldPausePointID, v))
}

// PausePointIDHasPrefix applies the HasPrefix predicate on the "pause_point_id" field.
func PausePointIDHasPrefix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasPrefix(FieldPausePointID, v))
}

// PausePointIDHasSuffix applies the HasSuffix predicate on the "pause_point_id" field.
func PausePointIDHasSuffix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasSuffix(FieldPausePointID, v))
}

// PausePointIDEqualFold applies the EqualFold predicate on the "pause_point_id" field.
func PausePointIDEqualFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEqualFold(FieldPausePointID, v))
}

// PausePointIDContainsFold applies the ContainsFold predicate on the "pause_point_id" field.
func PausePointIDContainsFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContainsFold(FieldPausePointID, v))
}

// MisconceptionEQ applies the EQ predicate on the "misconception" field.
func MisconceptionEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldMisconception, v))
}

// MisconceptionNEQ applies the NEQ predicate on the "misconception" field.
func MisconceptionNEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldMisconception, v))
}

// MisconceptionIn applies the In predicate on the "misconception" field.
func MisconceptionIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldMisconception, vs...))
}

// MisconceptionNotIn applies the NotIn predicate on the "misconception" field.
func MisconceptionNotIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldMisconception, vs...))
}

// MisconceptionGT applies the GT predicate on the "misconception" field.
func MisconceptionGT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldMisconception, v))
}

// MisconceptionGTE applies the GTE predicate on the "misconception" field.
func MisconceptionGTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldMisconception, v))
}

// MisconceptionLT applies the LT predicate on the "misconception" field.
func MisconceptionLT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldMisconception, v))
}

// MisconceptionLTE applies the LTE predicate on the "misconception" field.
func MisconceptionLTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldMisconception, v))
}

// MisconceptionContains applies the Contains predicate on the "misconception" field.
func MisconceptionContains(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContains(FieldMisconception, v))
}

// MisconceptionHasPrefix applies the HasPrefix predicate on the "misconception" field.
func MisconceptionHasPrefix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasPrefix(FieldMisconception, v))
}

// MisconceptionHasSuffix applies the HasSuffix predicate on the "misconception" field.
func MisconceptionHasSuffix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasSuffix(FieldMisconception, v))
}

// MisconceptionEqualFold applies the EqualFold predicate on the "misconception" field.
func MisconceptionEqualFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEqualFold(FieldMisconception, v))
}

// MisconceptionContainsFold applies the ContainsFold predicate on the "misconception" field.
func MisconceptionContainsFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContainsFold(FieldMisconception, v))
}

// MissingConceptEQ applies the EQ predicate on the "missing_concept" field.
func MissingConceptEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldMissingConcept, v))
}

// MissingConceptNEQ applies the NEQ predicate on the "missing_concept" field.
func MissingConceptNEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldMissingConcept, v))
}

// MissingConceptIn applies the In predicate on the "missing_concept" field.
func MissingConceptIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldMissingConcept, vs...))
}

// MissingConceptNotIn applies the NotIn predicate on the "missing_concept" field.
func MissingConceptNotIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldMissingConcept, vs...))
}

// MissingConceptGT applies the GT predicate on the "missing_concept" field.
func MissingConceptGT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldMissingConcept, v))
}

// MissingConceptGTE applies the GTE predicate on the "missing_concept" field.
func MissingConceptGTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldMissingConcept, v))
}

// MissingConceptLT applies the LT predicate on the "missing_concept" field.
func MissingConceptLT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldMissingConcept, v))
}

// MissingConceptLTE applies the LTE predicate on the "missing_concept" field.
func MissingConceptLTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldMissingConcept, v))
}

// MissingConceptContains applies the Contains predicate on the "missing_concept" field.
func MissingConceptContains(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContains(FieldMissingConcept, v))
}

// MissingConceptHasPrefix applies the HasPrefix predicate on the "missing_concept" field.
func MissingConceptHasPrefix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasPrefix(FieldMissingConcept, v))
}

// MissingConceptHasSuffix applies the HasSuffix predicate on the "missing_concept" field.
func MissingConceptHasSuffix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasSuffix(FieldMissingConcept, v))
}

// MissingConceptEqualFold applies the EqualFold predicate on the "missing_concept" field.
func MissingConceptEqualFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEqualFold(FieldMissingConcept, v))
}

// MissingConceptContainsFold applies the ContainsFold predicate on the "missing_concept" field.
func MissingConceptContainsFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContainsFold(FieldMissingConcept, v))
}

// RootCauseEQ applies the EQ predicate on the "root_cause" field.
func RootCauseEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldRootCause, v))
}

// RootCauseNEQ applies the NEQ predicate on the "root_cause" field.
func RootCauseNEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldRootCause, v))
}

// RootCauseIn applies the In predicate on the "root_cause" field.
func RootCauseIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldRootCause, vs...))
}

// RootCauseNotIn applies the NotIn predicate on the "root_cause" field.
func RootCauseNotIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldRootCause, vs...))
}

// RootCauseGT applies the GT predicate on the "root_cause" field.
func RootCauseGT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldRootCause, v))
}

// RootCauseGTE applies the GTE predicate on the "root_cause" field.
func RootCauseGTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldRootCause, v))
}

// RootCauseLT applies the LT predicate on the "root_cause" field.
func RootCauseLT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldRootCause, v))
}

// RootCauseLTE applies the LTE predicate on the "root_cause" field.
func RootCauseLTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldRootCause, v))
}

// RootCauseContains applies the Contains predicate on the "root_cause" field.
func RootCauseContains(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContains(FieldRootCause, v))
}

// RootCauseHasPrefix applies the HasPrefix predicate on the "root_cause" field.
func RootCauseHasPrefix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasPrefix(FieldRootCause, v))
}

// RootCauseHasSuffix applies the HasSuffix predicate on the "root_cause" field.
func RootCauseHasSuffix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasSuffix(FieldRootCause, v))
}

// RootCauseEqualFold applies the EqualFold predicate on the "root_cause" field.
func RootCauseEqualFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEqualFold(FieldRootCause, v))
}

// RootCauseContainsFold applies the ContainsFold predicate on the "root_cause" field.
func RootCauseContainsFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContainsFold(FieldRootCause, v))
}

// JumpToSecondsEQ applies the EQ predicate on the "jump_to_seconds" field.
func JumpToSecondsEQ(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldJumpToSeconds, v))
}

// JumpToSecondsNEQ applies the NEQ predicate on the "jump_to_seconds" field.
func JumpToSecondsNEQ(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldJumpToSeconds, v))
}

// JumpToSecondsIn applies the In predicate on the "jump_to_seconds" field.
func JumpToSecondsIn(vs ...float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldJumpToSeconds, vs...))
}

// JumpToSecondsNotIn applies the NotIn predicate on the "jump_to_seconds" field.
func JumpToSecondsNotIn(vs ...float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldJumpToSeconds, vs...))
}

// JumpToSecondsGT applies the GT predicate on the "jump_to_seconds" field.
func JumpToSecondsGT(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldJumpToSeconds, v))
}

// JumpToSecondsGTE applies the GTE predicate on the "jump_to_seconds" field.
func JumpToSecondsGTE(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldJumpToSeconds, v))
}

// JumpToSecondsLT applies the LT predicate on the "jump_to_seconds" field.
func JumpToSecondsLT(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldJumpToSeconds, v))
}

// JumpToSecondsLTE applies the LTE predicate on the "jump_to_seconds" field.
func JumpToSecondsLTE(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldJumpToSeconds, v))
}

// EndSecondsEQ applies the EQ predicate on the "end_seconds" field.
func EndSecondsEQ(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldEndSeconds, v))
}

// EndSecondsNEQ applies the NEQ predicate on the "end_seconds" field.
func EndSecondsNEQ(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldEndSeconds, v))
}

// EndSecondsIn applies the In predicate on the "end_seconds" field.
func EndSecondsIn(vs ...float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldEndSeconds, vs...))
}

// EndSecondsNotIn applies the NotIn predicate on the "end_seconds" field.
func EndSecondsNotIn(vs ...float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldEndSeconds, vs...))
}

// EndSecondsGT applies the GT predicate on the "end_seconds" field.
func EndSecondsGT(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldEndSeconds, v))
}

// EndSecondsGTE applies the GTE predicate on the "end_seconds" field.
func EndSecondsGTE(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldEndSeconds, v))
}

// EndSecondsLT applies the LT predicate on the "end_seconds" field.
func EndSecondsLT(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldEndSeconds, v))
}

// EndSecondsLTE applies the LTE predicate on the "end_seconds" field.
func EndSecondsLTE(v float64) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldEndSeconds, v))
}

// ExplanationEQ applies the EQ predicate on the "explanation" field.
func ExplanationEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldExplanation, v))
}

// ExplanationNEQ applies the NEQ predicate on the "explanation" field.
func ExplanationNEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldExplanation, v))
}

// ExplanationIn applies the In predicate on the "explanation" field.
func ExplanationIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldExplanation, vs...))
}

// ExplanationNotIn applies the NotIn predicate on the "explanation" field.
func ExplanationNotIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldExplanation, vs...))
}

// ExplanationGT applies the GT predicate on the "explanation" field.
func ExplanationGT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldExplanation, v))
}

// ExplanationGTE applies the GTE predicate on the "explanation" field.
func ExplanationGTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldExplanation, v))
}

// ExplanationLT applies the LT predicate on the "explanation" field.
func ExplanationLT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldExplanation, v))
}

// ExplanationLTE applies the LTE predicate on the "explanation" field.
func ExplanationLTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldExplanation, v))
}

// ExplanationContains applies the Contains predicate on the "explanation" field.
func ExplanationContains(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContains(FieldExplanation, v))
}

// ExplanationHasPrefix applies the HasPrefix predicate on the "explanation" field.
func ExplanationHasPrefix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasPrefix(FieldExplanation, v))
}

// ExplanationHasSuffix applies the HasSuffix predicate on the "explanation" field.
func ExplanationHasSuffix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasSuffix(FieldExplanation, v))
}

// ExplanationEqualFold applies the EqualFold predicate on the "explanation" field.
func ExplanationEqualFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEqualFold(FieldExplanation, v))
}

// ExplanationContainsFold applies the ContainsFold predicate on the "explanation" field.
func ExplanationContainsFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContainsFold(FieldExplanation, v))
}

// FollowUpQuestionEQ applies the EQ predicate on the "follow_up_question" field.
func FollowUpQuestionEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldFollowUpQuestion, v))
}

// FollowUpQuestionNEQ applies the NEQ predicate on the "follow_up_question" field.
func FollowUpQuestionNEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldFollowUpQuestion, v))
}

// FollowUpQuestionIn applies the In predicate on the "follow_up_question" field.
func FollowUpQuestionIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldFollowUpQuestion, vs...))
}

// FollowUpQuestionNotIn applies the NotIn predicate on the "follow_up_question" field.
func FollowUpQuestionNotIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldFollowUpQuestion, vs...))
}

// FollowUpQuestionGT applies the GT predicate on the "follow_up_question" field.
func FollowUpQuestionGT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldFollowUpQuestion, v))
}

// FollowUpQuestionGTE applies the GTE predicate on the "follow_up_question" field.
func FollowUpQuestionGTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldFollowUpQuestion, v))
}

// FollowUpQuestionLT applies the LT predicate on the "follow_up_question" field.
func FollowUpQuestionLT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldFollowUpQuestion, v))
}

// FollowUpQuestionLTE applies the LTE predicate on the "follow_up_question" field.
func FollowUpQuestionLTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldFollowUpQuestion, v))
}

// FollowUpQuestionContains applies the Contains predicate on the "follow_up_question" field.
func FollowUpQuestionContains(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContains(FieldFollowUpQuestion, v))
}

// FollowUpQuestionHasPrefix applies the HasPrefix predicate on the "follow_up_question" field.
func FollowUpQuestionHasPrefix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasPrefix(FieldFollowUpQuestion, v))
}

// FollowUpQuestionHasSuffix applies the HasSuffix predicate on the "follow_up_question" field.
func FollowUpQuestionHasSuffix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasSuffix(FieldFollowUpQuestion, v))
}

// FollowUpQuestionEqualFold applies the EqualFold predicate on the "follow_up_question" field.
func FollowUpQuestionEqualFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEqualFold(FieldFollowUpQuestion, v))
}

// FollowUpQuestionContainsFold applies the ContainsFold predicate on the "follow_up_question" field.
func FollowUpQuestionContainsFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContainsFold(FieldFollowUpQuestion, v))
}

// FollowUpAnswerEQ applies the EQ predicate on the "follow_up_answer" field.
func FollowUpAnswerEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldFollowUpAnswer, v))
}

// FollowUpAnswerNEQ applies the NEQ predicate on the "follow_up_answer" field.
func FollowUpAnswerNEQ(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldFollowUpAnswer, v))
}

// FollowUpAnswerIn applies the In predicate on the "follow_up_answer" field.
func FollowUpAnswerIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldIn(FieldFollowUpAnswer, vs...))
}

// FollowUpAnswerNotIn applies the NotIn predicate on the "follow_up_answer" field.
func FollowUpAnswerNotIn(vs ...string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNotIn(FieldFollowUpAnswer, vs...))
}

// FollowUpAnswerGT applies the GT predicate on the "follow_up_answer" field.
func FollowUpAnswerGT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGT(FieldFollowUpAnswer, v))
}

// FollowUpAnswerGTE applies the GTE predicate on the "follow_up_answer" field.
func FollowUpAnswerGTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldGTE(FieldFollowUpAnswer, v))
}

// FollowUpAnswerLT applies the LT predicate on the "follow_up_answer" field.
func FollowUpAnswerLT(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLT(FieldFollowUpAnswer, v))
}

// FollowUpAnswerLTE applies the LTE predicate on the "follow_up_answer" field.
func FollowUpAnswerLTE(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldLTE(FieldFollowUpAnswer, v))
}

// FollowUpAnswerContains applies the Contains predicate on the "follow_up_answer" field.
func FollowUpAnswerContains(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContains(FieldFollowUpAnswer, v))
}

// FollowUpAnswerHasPrefix applies the HasPrefix predicate on the "follow_up_answer" field.
func FollowUpAnswerHasPrefix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasPrefix(FieldFollowUpAnswer, v))
}

// FollowUpAnswerHasSuffix applies the HasSuffix predicate on the "follow_up_answer" field.
func FollowUpAnswerHasSuffix(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldHasSuffix(FieldFollowUpAnswer, v))
}

// FollowUpAnswerEqualFold applies the EqualFold predicate on the "follow_up_answer" field.
func FollowUpAnswerEqualFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEqualFold(FieldFollowUpAnswer, v))
}

// FollowUpAnswerContainsFold applies the ContainsFold predicate on the "follow_up_answer" field.
func FollowUpAnswerContainsFold(v string) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldContainsFold(FieldFollowUpAnswer, v))
}

// FollowUpAnsweredEQ applies the EQ predicate on the "follow_up_answered" field.
func FollowUpAnsweredEQ(v bool) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldFollowUpAnswered, v))
}

// FollowUpAnsweredNEQ applies the NEQ predicate on the "follow_up_answered" field.
func FollowUpAnsweredNEQ(v bool) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldFollowUpAnswered, v))
}

// FollowUpCorrectEQ applies the EQ predicate on the "follow_up_correct" field.
func FollowUpCorrectEQ(v bool) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldFollowUpCorrect, v))
}

// FollowUpCorrectNEQ applies the NEQ predicate on the "follow_up_correct" field.
func FollowUpCorrectNEQ(v bool) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldFollowUpCorrect, v))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.FieldNEQ(FieldResolved, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RemediationRecord) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RemediationRecord) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RemediationRecord) predicate.RemediationRecord {
	return predicate.RemediationRecord(sql.NotPredicates(p))
}
