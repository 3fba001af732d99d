// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *AttemptEventCreate) SetLearnerID(v string) *AttemptEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *AttemptEventCreate) SetItemID(v string) *AttemptEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetLectureID sets the "lecture_id" field.
func (_c *AttemptEventCreate) SetLectureID(v string) *AttemptEventCreate {
	_c.mutation.SetLectureID(v)
	return _c
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableLectureID(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetLectureID(*v)
	}
	return _c
}

// SetPausePointID sets the "pause_point_id" field.
func (_c *AttemptEventCreate) SetPausePointID(v string) *AttemptEventCreate {
	_c.mutation.SetPausePointID(v)
	return _c
}

// SetNillablePausePointID sets the "pause_point_id" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillablePausePointID(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetPausePointID(*v)
	}
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *AttemptEventCreate) SetAnswer(v string) *AttemptEventCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AttemptEventCreate) SetConfidence(v string) *AttemptEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *AttemptEventCreate) SetGrade(v int) *AttemptEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableGrade(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *AttemptEventCreate) SetPoints(v int) *AttemptEventCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *AttemptEventCreate) SetTimeMs(v int) *AttemptEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *AttemptEventCreate) SetNeedsReview(v bool) *AttemptEventCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableNeedsReview(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.LectureID(); !ok {
		v := attemptevent.DefaultLectureID
		_c.mutation.SetLectureID(v)
	}
	if _, ok := _c.mutation.PausePointID(); !ok {
		v := attemptevent.DefaultPausePointID
		_c.mutation.SetPausePointID(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := attemptevent.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "AttemptEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "AttemptEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LectureID(); !ok {
		return &ValidationError{Name: "lecture_id", err: errors.New(`ent: missing required field "AttemptEvent.lecture_id"`)}
	}
	if _, ok := _c.mutation.PausePointID(); !ok {
		return &ValidationError{Name: "pause_point_id", err: errors.New(`ent: missing required field "AttemptEvent.pause_point_id"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "AttemptEvent.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := attemptevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AttemptEvent.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := attemptevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "AttemptEvent.points"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AttemptEvent.time_ms"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "AttemptEvent.needs_review"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.LectureID(); ok {
		_spec.SetField(attemptevent.FieldLectureID, field.TypeString, value)
		_node.LectureID = value
	}
	if value, ok := _c.mutation.PausePointID(); ok {
		_spec.SetField(attemptevent.FieldPausePointID, field.TypeString, value)
		_node.PausePointID = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(attemptevent.FieldConfidence, field.TypeString, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(attemptevent.FieldGrade, field.TypeInt, value)
		_node.Grade = &value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(attemptevent.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(attemptevent.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
