// Code generated by ent, DO NOT EDIT.

package playbackevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LectureID applies equality check predicate on the "lecture_id" field. It's identical to LectureIDEQ.
func LectureID(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldLectureID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldKind, v))
}

// FromSeconds applies equality check predicate on the "from_seconds" field. It's identical to FromSecondsEQ.
func FromSeconds(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldFromSeconds, v))
}

// ToSeconds applies equality check predicate on the "to_seconds" field. It's identical to ToSecondsEQ.
func ToSeconds(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldToSeconds, v))
}

// RequestedSeconds applies equality check predicate on the "requested_seconds" field. It's identical to RequestedSecondsEQ.
func RequestedSeconds(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldRequestedSeconds, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// LectureIDEQ applies the EQ predicate on the "lecture_id" field.
func LectureIDEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldLectureID, v))
}

// LectureIDNEQ applies the NEQ predicate on the "lecture_id" field.
func LectureIDNEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldLectureID, v))
}

// LectureIDIn applies the In predicate on the "lecture_id" field.
func LectureIDIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldLectureID, vs...))
}

// LectureIDNotIn applies the NotIn predicate on the "lecture_id" field.
func LectureIDNotIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldLectureID, vs...))
}

// LectureIDGT applies the GT predicate on the "lecture_id" field.
func LectureIDGT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldLectureID, v))
}

// LectureIDGTE applies the GTE predicate on the "lecture_id" field.
func LectureIDGTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldLectureID, v))
}

// LectureIDLT applies the LT predicate on the "lecture_id" field.
func LectureIDLT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldLectureID, v))
}

// LectureIDLTE applies the LTE predicate on the "lecture_id" field.
func LectureIDLTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldLectureID, v))
}

// LectureIDContains applies the Contains predicate on the "lecture_id" field.
func LectureIDContains(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContains(FieldLectureID, v))
}

// LectureIDHasPrefix applies the HasPrefix predicate on the "lecture_id" field.
func LectureIDHasPrefix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasPrefix(FieldLectureID, v))
}

// LectureIDHasSuffix applies the HasSuffix predicate on the "lecture_id" field.
func LectureIDHasSuffix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasSuffix(FieldLectureID, v))
}

// LectureIDEqualFold applies the EqualFold predicate on the "lecture_id" field.
func LectureIDEqualFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEqualFold(FieldLectureID, v))
}

// LectureIDContainsFold applies the ContainsFold predicate on the "lecture_id" field.
func LectureIDContainsFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContainsFold(FieldLectureID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldContainsFold(FieldKind, v))
}

// FromSecondsEQ applies the EQ predicate on the "from_seconds" field.
func FromSecondsEQ(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldFromSeconds, v))
}

// FromSecondsNEQ applies the NEQ predicate on the "from_seconds" field.
func FromSecondsNEQ(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldFromSeconds, v))
}

// FromSecondsIn applies the In predicate on the "from_seconds" field.
func FromSecondsIn(vs ...float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldFromSeconds, vs...))
}

// FromSecondsNotIn applies the NotIn predicate on the "from_seconds" field.
func FromSecondsNotIn(vs ...float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldFromSeconds, vs...))
}

// FromSecondsGT applies the GT predicate on the "from_seconds" field.
func FromSecondsGT(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldFromSeconds, v))
}

// FromSecondsGTE applies the GTE predicate on the "from_seconds" field.
func FromSecondsGTE(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldFromSeconds, v))
}

// FromSecondsLT applies the LT predicate on the "from_seconds" field.
func FromSecondsLT(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldFromSeconds, v))
}

// FromSecondsLTE applies the LTE predicate on the "from_seconds" field.
func FromSecondsLTE(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldFromSeconds, v))
}

// ToSecondsEQ applies the EQ predicate on the "to_seconds" field.
func ToSecondsEQ(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldToSeconds, v))
}

// ToSecondsNEQ applies the NEQ predicate on the "to_seconds" field.
func ToSecondsNEQ(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldToSeconds, v))
}

// ToSecondsIn applies the In predicate on the "to_seconds" field.
func ToSecondsIn(vs ...float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldToSeconds, vs...))
}

// ToSecondsNotIn applies the NotIn predicate on the "to_seconds" field.
func ToSecondsNotIn(vs ...float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldToSeconds, vs...))
}

// ToSecondsGT applies the GT predicate on the "to_seconds" field.
func ToSecondsGT(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldToSeconds, v))
}

// ToSecondsGTE applies the GTE predicate on the "to_seconds" field.
func ToSecondsGTE(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldToSeconds, v))
}

// ToSecondsLT applies the LT predicate on the "to_seconds" field.
func ToSecondsLT(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldToSeconds, v))
}

// ToSecondsLTE applies the LTE predicate on the "to_seconds" field.
func ToSecondsLTE(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldToSeconds, v))
}

// RequestedSecondsEQ applies the EQ predicate on the "requested_seconds" field.
func RequestedSecondsEQ(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldEQ(FieldRequestedSeconds, v))
}

// RequestedSecondsNEQ applies the NEQ predicate on the "requested_seconds" field.
func RequestedSecondsNEQ(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNEQ(FieldRequestedSeconds, v))
}

// RequestedSecondsIn applies the In predicate on the "requested_seconds" field.
func RequestedSecondsIn(vs ...float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldIn(FieldRequestedSeconds, vs...))
}

// RequestedSecondsNotIn applies the NotIn predicate on the "requested_seconds" field.
func RequestedSecondsNotIn(vs ...float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldNotIn(FieldRequestedSeconds, vs...))
}

// RequestedSecondsGT applies the GT predicate on the "requested_seconds" field.
func RequestedSecondsGT(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGT(FieldRequestedSeconds, v))
}

// RequestedSecondsGTE applies the GTE predicate on the "requested_seconds" field.
func RequestedSecondsGTE(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldGTE(FieldRequestedSeconds, v))
}

// RequestedSecondsLT applies the LT predicate on the "requested_seconds" field.
func RequestedSecondsLT(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLT(FieldRequestedSeconds, v))
}

// RequestedSecondsLTE applies the LTE predicate on the "requested_seconds" field.
func RequestedSecondsLTE(v float64) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.FieldLTE(FieldRequestedSeconds, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlaybackEvent) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlaybackEvent) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlaybackEvent) predicate.PlaybackEvent {
	return predicate.PlaybackEvent(sql.NotPredicates(p))
}
