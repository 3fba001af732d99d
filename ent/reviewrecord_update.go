// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/predicate"
	"github.com/abhisek/lectio/ent/reviewrecord"
)

// ReviewRecordUpdate is the builder for updating ReviewRecord entities.
type ReviewRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewRecordMutation
}

// Where appends a list predicates to the ReviewRecordUpdate builder.
func (_u *ReviewRecordUpdate) Where(ps ...predicate.ReviewRecord) *ReviewRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewRecordUpdate) SetLearnerID(v string) *ReviewRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableLearnerID(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewRecordUpdate) SetItemID(v string) *ReviewRecordUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableItemID(v *string) *ReviewRecordUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewRecordUpdate) SetIntervalDays(v int) *ReviewRecordUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableIntervalDays(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewRecordUpdate) AddIntervalDays(v int) *ReviewRecordUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewRecordUpdate) SetEaseFactor(v float64) *ReviewRecordUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableEaseFactor(v *float64) *ReviewRecordUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewRecordUpdate) AddEaseFactor(v float64) *ReviewRecordUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *ReviewRecordUpdate) SetNextReviewDate(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableNextReviewDate(v *time.Time) *ReviewRecordUpdate {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetLastReviewedDate sets the "last_reviewed_date" field.
func (_u *ReviewRecordUpdate) SetLastReviewedDate(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetLastReviewedDate(v)
	return _u
}

// SetNillableLastReviewedDate sets the "last_reviewed_date" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableLastReviewedDate(v *time.Time) *ReviewRecordUpdate {
	if v != nil {
		_u.SetLastReviewedDate(*v)
	}
	return _u
}

// SetRepetitionNumber sets the "repetition_number" field.
func (_u *ReviewRecordUpdate) SetRepetitionNumber(v int) *ReviewRecordUpdate {
	_u.mutation.ResetRepetitionNumber()
	_u.mutation.SetRepetitionNumber(v)
	return _u
}

// SetNillableRepetitionNumber sets the "repetition_number" field if the given value is not nil.
func (_u *ReviewRecordUpdate) SetNillableRepetitionNumber(v *int) *ReviewRecordUpdate {
	if v != nil {
		_u.SetRepetitionNumber(*v)
	}
	return _u
}

// AddRepetitionNumber adds value to the "repetition_number" field.
func (_u *ReviewRecordUpdate) AddRepetitionNumber(v int) *ReviewRecordUpdate {
	_u.mutation.AddRepetitionNumber(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewRecordUpdate) SetUpdatedAt(v time.Time) *ReviewRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_u *ReviewRecordUpdate) Mutation() *ReviewRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewrecord.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewrecord.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RepetitionNumber(); ok {
		if err := reviewrecord.RepetitionNumberValidator(v); err != nil {
			return &ValidationError{Name: "repetition_number", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.repetition_number": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewrecord.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewrecord.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewedDate(); ok {
		_spec.SetField(reviewrecord.FieldLastReviewedDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RepetitionNumber(); ok {
		_spec.SetField(reviewrecord.FieldRepetitionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitionNumber(); ok {
		_spec.AddField(reviewrecord.FieldRepetitionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewRecordUpdateOne is the builder for updating a single ReviewRecord entity.
type ReviewRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ReviewRecordUpdateOne) SetLearnerID(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableLearnerID(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *ReviewRecordUpdateOne) SetItemID(v string) *ReviewRecordUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableItemID(v *string) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewRecordUpdateOne) SetIntervalDays(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableIntervalDays(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewRecordUpdateOne) AddIntervalDays(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewRecordUpdateOne) SetEaseFactor(v float64) *ReviewRecordUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableEaseFactor(v *float64) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewRecordUpdateOne) AddEaseFactor(v float64) *ReviewRecordUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetNextReviewDate sets the "next_review_date" field.
func (_u *ReviewRecordUpdateOne) SetNextReviewDate(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetNextReviewDate(v)
	return _u
}

// SetNillableNextReviewDate sets the "next_review_date" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableNextReviewDate(v *time.Time) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetNextReviewDate(*v)
	}
	return _u
}

// SetLastReviewedDate sets the "last_reviewed_date" field.
func (_u *ReviewRecordUpdateOne) SetLastReviewedDate(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetLastReviewedDate(v)
	return _u
}

// SetNillableLastReviewedDate sets the "last_reviewed_date" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableLastReviewedDate(v *time.Time) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetLastReviewedDate(*v)
	}
	return _u
}

// SetRepetitionNumber sets the "repetition_number" field.
func (_u *ReviewRecordUpdateOne) SetRepetitionNumber(v int) *ReviewRecordUpdateOne {
	_u.mutation.ResetRepetitionNumber()
	_u.mutation.SetRepetitionNumber(v)
	return _u
}

// SetNillableRepetitionNumber sets the "repetition_number" field if the given value is not nil.
func (_u *ReviewRecordUpdateOne) SetNillableRepetitionNumber(v *int) *ReviewRecordUpdateOne {
	if v != nil {
		_u.SetRepetitionNumber(*v)
	}
	return _u
}

// AddRepetitionNumber adds value to the "repetition_number" field.
func (_u *ReviewRecordUpdateOne) AddRepetitionNumber(v int) *ReviewRecordUpdateOne {
	_u.mutation.AddRepetitionNumber(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewRecordUpdateOne) SetUpdatedAt(v time.Time) *ReviewRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_u *ReviewRecordUpdateOne) Mutation() *ReviewRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewRecordUpdate builder.
func (_u *ReviewRecordUpdateOne) Where(ps ...predicate.ReviewRecord) *ReviewRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewRecordUpdateOne) Select(field string, fields ...string) *ReviewRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewRecord entity.
func (_u *ReviewRecordUpdateOne) Save(ctx context.Context) (*ReviewRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewRecordUpdateOne) SaveX(ctx context.Context) *ReviewRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := reviewrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := reviewrecord.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewrecord.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RepetitionNumber(); ok {
		if err := reviewrecord.RepetitionNumberValidator(v); err != nil {
			return &ValidationError{Name: "repetition_number", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.repetition_number": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewRecordUpdateOne) sqlSave(ctx context.Context) (_node *ReviewRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewrecord.FieldID)
		for _, f := range fields {
			if !reviewrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(reviewrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(reviewrecord.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewrecord.FieldNextReviewDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewedDate(); ok {
		_spec.SetField(reviewrecord.FieldLastReviewedDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RepetitionNumber(); ok {
		_spec.SetField(reviewrecord.FieldRepetitionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitionNumber(); ok {
		_spec.AddField(reviewrecord.FieldRepetitionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ReviewRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
