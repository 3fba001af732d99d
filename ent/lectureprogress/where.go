// Code generated by ent, DO NOT EDIT.

package lectureprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LectureID applies equality check predicate on the "lecture_id" field. It's identical to LectureIDEQ.
func LectureID(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldLectureID, v))
}

// VideoPosition applies equality check predicate on the "video_position" field. It's identical to VideoPositionEQ.
func VideoPosition(v float64) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldVideoPosition, v))
}

// TotalPointsEarned applies equality check predicate on the "total_points_earned" field. It's identical to TotalPointsEarnedEQ.
func TotalPointsEarned(v int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldTotalPointsEarned, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldContainsFold(FieldLearnerID, v))
}

// LectureIDEQ applies the EQ predicate on the "lecture_id" field.
func LectureIDEQ(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldLectureID, v))
}

// LectureIDNEQ applies the NEQ predicate on the "lecture_id" field.
func LectureIDNEQ(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNEQ(FieldLectureID, v))
}

// LectureIDIn applies the In predicate on the "lecture_id" field.
func LectureIDIn(vs ...string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldIn(FieldLectureID, vs...))
}

// LectureIDNotIn applies the NotIn predicate on the "lecture_id" field.
func LectureIDNotIn(vs ...string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNotIn(FieldLectureID, vs...))
}

// LectureIDGT applies the GT predicate on the "lecture_id" field.
func LectureIDGT(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGT(FieldLectureID, v))
}

// LectureIDGTE applies the GTE predicate on the "lecture_id" field.
func LectureIDGTE(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGTE(FieldLectureID, v))
}

// LectureIDLT applies the LT predicate on the "lecture_id" field.
func LectureIDLT(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLT(FieldLectureID, v))
}

// LectureIDLTE applies the LTE predicate on the "lecture_id" field.
func LectureIDLTE(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLTE(FieldLectureID, v))
}

// LectureIDContains applies the Contains predicate on the "lecture_id" field.
func LectureIDContains(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldContains(FieldLectureID, v))
}

// LectureIDHasPrefix applies the HasPrefix predicate on the "lecture_id" field.
func LectureIDHasPrefix(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldHasPrefix(FieldLectureID, v))
}

// LectureIDHasSuffix applies the HasSuffix predicate on the "lecture_id" field.
func LectureIDHasSuffix(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldHasSuffix(FieldLectureID, v))
}

// LectureIDEqualFold applies the EqualFold predicate on the "lecture_id" field.
func LectureIDEqualFold(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEqualFold(FieldLectureID, v))
}

// LectureIDContainsFold applies the ContainsFold predicate on the "lecture_id" field.
func LectureIDContainsFold(v string) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldContainsFold(FieldLectureID, v))
}

// VideoPositionEQ applies the EQ predicate on the "video_position" field.
func VideoPositionEQ(v float64) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldVideoPosition, v))
}

// VideoPositionNEQ applies the NEQ predicate on the "video_position" field.
func VideoPositionNEQ(v float64) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNEQ(FieldVideoPosition, v))
}

// VideoPositionIn applies the In predicate on the "video_position" field.
func VideoPositionIn(vs ...float64) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldIn(FieldVideoPosition, vs...))
}

// VideoPositionNotIn applies the NotIn predicate on the "video_position" field.
func VideoPositionNotIn(vs ...float64) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNotIn(FieldVideoPosition, vs...))
}

// VideoPositionGT applies the GT predicate on the "video_position" field.
func VideoPositionGT(v float64) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGT(FieldVideoPosition, v))
}

// VideoPositionGTE applies the GTE predicate on the "video_position" field.
func VideoPositionGTE(v float64) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGTE(FieldVideoPosition, v))
}

// VideoPositionLT applies the LT predicate on the "video_position" field.
func VideoPositionLT(v float64) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLT(FieldVideoPosition, v))
}

// VideoPositionLTE applies the LTE predicate on the "video_position" field.
func VideoPositionLTE(v float64) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLTE(FieldVideoPosition, v))
}

// CompletedPausePointsIsNil applies the IsNil predicate on the "completed_pause_points" field.
func CompletedPausePointsIsNil() predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldIsNull(FieldCompletedPausePoints))
}

// CompletedPausePointsNotNil applies the NotNil predicate on the "completed_pause_points" field.
func CompletedPausePointsNotNil() predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNotNull(FieldCompletedPausePoints))
}

// ResponsesIsNil applies the IsNil predicate on the "responses" field.
func ResponsesIsNil() predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldIsNull(FieldResponses))
}

// ResponsesNotNil applies the NotNil predicate on the "responses" field.
func ResponsesNotNil() predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNotNull(FieldResponses))
}

// TotalPointsEarnedEQ applies the EQ predicate on the "total_points_earned" field.
func TotalPointsEarnedEQ(v int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldTotalPointsEarned, v))
}

// TotalPointsEarnedNEQ applies the NEQ predicate on the "total_points_earned" field.
func TotalPointsEarnedNEQ(v int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNEQ(FieldTotalPointsEarned, v))
}

// TotalPointsEarnedIn applies the In predicate on the "total_points_earned" field.
func TotalPointsEarnedIn(vs ...int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldIn(FieldTotalPointsEarned, vs...))
}

// TotalPointsEarnedNotIn applies the NotIn predicate on the "total_points_earned" field.
func TotalPointsEarnedNotIn(vs ...int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNotIn(FieldTotalPointsEarned, vs...))
}

// TotalPointsEarnedGT applies the GT predicate on the "total_points_earned" field.
func TotalPointsEarnedGT(v int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGT(FieldTotalPointsEarned, v))
}

// TotalPointsEarnedGTE applies the GTE predicate on the "total_points_earned" field.
func TotalPointsEarnedGTE(v int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGTE(FieldTotalPointsEarned, v))
}

// TotalPointsEarnedLT applies the LT predicate on the "total_points_earned" field.
func TotalPointsEarnedLT(v int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLT(FieldTotalPointsEarned, v))
}

// TotalPointsEarnedLTE applies the LTE predicate on the "total_points_earned" field.
func TotalPointsEarnedLTE(v int) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLTE(FieldTotalPointsEarned, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNotNull(FieldCompletedAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LectureProgress {
	return predicate.LectureProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LectureProgress) predicate.LectureProgress {
	return predicate.LectureProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LectureProgress) predicate.LectureProgress {
	return predicate.LectureProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LectureProgress) predicate.LectureProgress {
	return predicate.LectureProgress(sql.NotPredicates(p))
}
