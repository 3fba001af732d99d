// Code generated by ent, DO NOT EDIT.

package reviewrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldLearnerID, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldItemID, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldIntervalDays, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldEaseFactor, v))
}

// NextReviewDate applies equality check predicate on the "next_review_date" field. It's identical to NextReviewDateEQ.
func NextReviewDate(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldNextReviewDate, v))
}

// LastReviewedDate applies equality check predicate on the "last_reviewed_date" field. It's identical to LastReviewedDateEQ.
func LastReviewedDate(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldLastReviewedDate, v))
}

// RepetitionNumber applies equality check predicate on the "repetition_number" field. It's identical to RepetitionNumberEQ.
func RepetitionNumber(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldRepetitionNumber, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldLearnerID, v))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldItemID, v))
}

// ItemIDContains applies the Contains predicate on the "item_id" field.
func ItemIDContains(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContains(FieldItemID, v))
}

// ItemIDHasPrefix applies the HasPrefix predicate on the "item_id" field.
func ItemIDHasPrefix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasPrefix(FieldItemID, v))
}

// ItemIDHasSuffix applies the HasSuffix predicate on the "item_id" field.
func ItemIDHasSuffix(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldHasSuffix(FieldItemID, v))
}

// ItemIDEqualFold applies the EqualFold predicate on the "item_id" field.
func ItemIDEqualFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEqualFold(FieldItemID, v))
}

// ItemIDContainsFold applies the ContainsFold predicate on the "item_id" field.
func ItemIDContainsFold(v string) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldContainsFold(FieldItemID, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldIntervalDays, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldEaseFactor, v))
}

// NextReviewDateEQ applies the EQ predicate on the "next_review_date" field.
func NextReviewDateEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldNextReviewDate, v))
}

// NextReviewDateNEQ applies the NEQ predicate on the "next_review_date" field.
func NextReviewDateNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldNextReviewDate, v))
}

// NextReviewDateIn applies the In predicate on the "next_review_date" field.
func NextReviewDateIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldNextReviewDate, vs...))
}

// NextReviewDateNotIn applies the NotIn predicate on the "next_review_date" field.
func NextReviewDateNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldNextReviewDate, vs...))
}

// NextReviewDateGT applies the GT predicate on the "next_review_date" field.
func NextReviewDateGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldNextReviewDate, v))
}

// NextReviewDateGTE applies the GTE predicate on the "next_review_date" field.
func NextReviewDateGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldNextReviewDate, v))
}

// NextReviewDateLT applies the LT predicate on the "next_review_date" field.
func NextReviewDateLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldNextReviewDate, v))
}

// NextReviewDateLTE applies the LTE predicate on the "next_review_date" field.
func NextReviewDateLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldNextReviewDate, v))
}

// LastReviewedDateEQ applies the EQ predicate on the "last_reviewed_date" field.
func LastReviewedDateEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldLastReviewedDate, v))
}

// LastReviewedDateNEQ applies the NEQ predicate on the "last_reviewed_date" field.
func LastReviewedDateNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldLastReviewedDate, v))
}

// LastReviewedDateIn applies the In predicate on the "last_reviewed_date" field.
func LastReviewedDateIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldLastReviewedDate, vs...))
}

// LastReviewedDateNotIn applies the NotIn predicate on the "last_reviewed_date" field.
func LastReviewedDateNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldLastReviewedDate, vs...))
}

// LastReviewedDateGT applies the GT predicate on the "last_reviewed_date" field.
func LastReviewedDateGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldLastReviewedDate, v))
}

// LastReviewedDateGTE applies the GTE predicate on the "last_reviewed_date" field.
func LastReviewedDateGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldLastReviewedDate, v))
}

// LastReviewedDateLT applies the LT predicate on the "last_reviewed_date" field.
func LastReviewedDateLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldLastReviewedDate, v))
}

// LastReviewedDateLTE applies the LTE predicate on the "last_reviewed_date" field.
func LastReviewedDateLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldLastReviewedDate, v))
}

// RepetitionNumberEQ applies the EQ predicate on the "repetition_number" field.
func RepetitionNumberEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldRepetitionNumber, v))
}

// RepetitionNumberNEQ applies the NEQ predicate on the "repetition_number" field.
func RepetitionNumberNEQ(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldRepetitionNumber, v))
}

// RepetitionNumberIn applies the In predicate on the "repetition_number" field.
func RepetitionNumberIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldRepetitionNumber, vs...))
}

// RepetitionNumberNotIn applies the NotIn predicate on the "repetition_number" field.
func RepetitionNumberNotIn(vs ...int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldRepetitionNumber, vs...))
}

// RepetitionNumberGT applies the GT predicate on the "repetition_number" field.
func RepetitionNumberGT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldRepetitionNumber, v))
}

// RepetitionNumberGTE applies the GTE predicate on the "repetition_number" field.
func RepetitionNumberGTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldRepetitionNumber, v))
}

// RepetitionNumberLT applies the LT predicate on the "repetition_number" field.
func RepetitionNumberLT(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldRepetitionNumber, v))
}

// RepetitionNumberLTE applies the LTE predicate on the "repetition_number" field.
func RepetitionNumberLTE(v int) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldRepetitionNumber, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewRecord) predicate.ReviewRecord {
	return predicate.ReviewRecord(sql.NotPredicates(p))
}
