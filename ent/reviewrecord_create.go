// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/reviewrecord"
)

// ReviewRecordCreate is the builder for creating a ReviewRecord entity.
type ReviewRecordCreate struct {
	config
	mutation *ReviewRecordMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ReviewRecordCreate) SetLearnerID(v string) *ReviewRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ReviewRecordCreate) SetItemID(v string) *ReviewRecordCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewRecordCreate) SetIntervalDays(v int) *ReviewRecordCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableIntervalDays(v *int) *ReviewRecordCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewRecordCreate) SetEaseFactor(v float64) *ReviewRecordCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableEaseFactor(v *float64) *ReviewRecordCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetNextReviewDate sets the "next_review_date" field.
func (_c *ReviewRecordCreate) SetNextReviewDate(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetNextReviewDate(v)
	return _c
}

// SetLastReviewedDate sets the "last_reviewed_date" field.
func (_c *ReviewRecordCreate) SetLastReviewedDate(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetLastReviewedDate(v)
	return _c
}

// SetRepetitionNumber sets the "repetition_number" field.
func (_c *ReviewRecordCreate) SetRepetitionNumber(v int) *ReviewRecordCreate {
	_c.mutation.SetRepetitionNumber(v)
	return _c
}

// SetNillableRepetitionNumber sets the "repetition_number" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableRepetitionNumber(v *int) *ReviewRecordCreate {
	if v != nil {
		_c.SetRepetitionNumber(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReviewRecordCreate) SetUpdatedAt(v time.Time) *ReviewRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReviewRecordCreate) SetNillableUpdatedAt(v *time.Time) *ReviewRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (_c *ReviewRecordCreate) Mutation() *ReviewRecordMutation {
	return _c.mutation
}

// Save creates the ReviewRecord in the database.
func (_c *ReviewRecordCreate) Save(ctx context.Context) (*ReviewRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewRecordCreate) SaveX(ctx context.Context) *ReviewRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewRecordCreate) defaults() {
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewrecord.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := reviewrecord.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.RepetitionNumber(); !ok {
		v := reviewrecord.DefaultRepetitionNumber
		_c.mutation.SetRepetitionNumber(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reviewrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ReviewRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := reviewrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ReviewRecord.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := reviewrecord.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewRecord.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := reviewrecord.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewRecord.ease_factor"`)}
	}
	if _, ok := _c.mutation.NextReviewDate(); !ok {
		return &ValidationError{Name: "next_review_date", err: errors.New(`ent: missing required field "ReviewRecord.next_review_date"`)}
	}
	if _, ok := _c.mutation.LastReviewedDate(); !ok {
		return &ValidationError{Name: "last_reviewed_date", err: errors.New(`ent: missing required field "ReviewRecord.last_reviewed_date"`)}
	}
	if _, ok := _c.mutation.RepetitionNumber(); !ok {
		return &ValidationError{Name: "repetition_number", err: errors.New(`ent: missing required field "ReviewRecord.repetition_number"`)}
	}
	if v, ok := _c.mutation.RepetitionNumber(); ok {
		if err := reviewrecord.RepetitionNumberValidator(v); err != nil {
			return &ValidationError{Name: "repetition_number", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.repetition_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReviewRecord.updated_at"`)}
	}
	return nil
}

func (_c *ReviewRecordCreate) sqlSave(ctx context.Context) (*ReviewRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReviewRecordCreate) createSpec() (*ReviewRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewrecord.Table, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(reviewrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(reviewrecord.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewrecord.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewrecord.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.NextReviewDate(); ok {
		_spec.SetField(reviewrecord.FieldNextReviewDate, field.TypeTime, value)
		_node.NextReviewDate = value
	}
	if value, ok := _c.mutation.LastReviewedDate(); ok {
		_spec.SetField(reviewrecord.FieldLastReviewedDate, field.TypeTime, value)
		_node.LastReviewedDate = value
	}
	if value, ok := _c.mutation.RepetitionNumber(); ok {
		_spec.SetField(reviewrecord.FieldRepetitionNumber, field.TypeInt, value)
		_node.RepetitionNumber = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ReviewRecordCreateBulk is the builder for creating many ReviewRecord entities in bulk.
type ReviewRecordCreateBulk struct {
	config
	err      error
	builders []*ReviewRecordCreate
}

// Save creates the ReviewRecord entities in the database.
func (_c *ReviewRecordCreateBulk) Save(ctx context.Context) ([]*ReviewRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReviewRecordCreateBulk) SaveX(ctx context.Context) []*ReviewRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
