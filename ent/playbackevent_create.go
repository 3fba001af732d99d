// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/playbackevent"
)

// PlaybackEventCreate is the builder for creating a PlaybackEvent entity.
type PlaybackEventCreate struct {
	config
	mutation *PlaybackEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PlaybackEventCreate) SetSequence(v int64) *PlaybackEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlaybackEventCreate) SetTimestamp(v time.Time) *PlaybackEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlaybackEventCreate) SetNillableTimestamp(v *time.Time) *PlaybackEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PlaybackEventCreate) SetSessionID(v string) *PlaybackEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *PlaybackEventCreate) SetLearnerID(v string) *PlaybackEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLectureID sets the "lecture_id" field.
func (_c *PlaybackEventCreate) SetLectureID(v string) *PlaybackEventCreate {
	_c.mutation.SetLectureID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *PlaybackEventCreate) SetKind(v string) *PlaybackEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetFromSeconds sets the "from_seconds" field.
func (_c *PlaybackEventCreate) SetFromSeconds(v float64) *PlaybackEventCreate {
	_c.mutation.SetFromSeconds(v)
	return _c
}

// SetToSeconds sets the "to_seconds" field.
func (_c *PlaybackEventCreate) SetToSeconds(v float64) *PlaybackEventCreate {
	_c.mutation.SetToSeconds(v)
	return _c
}

// SetRequestedSeconds sets the "requested_seconds" field.
func (_c *PlaybackEventCreate) SetRequestedSeconds(v float64) *PlaybackEventCreate {
	_c.mutation.SetRequestedSeconds(v)
	return _c
}

// Mutation returns the PlaybackEventMutation object of the builder.
func (_c *PlaybackEventCreate) Mutation() *PlaybackEventMutation {
	return _c.mutation
}

// Save creates the PlaybackEvent in the database.
func (_c *PlaybackEventCreate) Save(ctx context.Context) (*PlaybackEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlaybackEventCreate) SaveX(ctx context.Context) *PlaybackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybackEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybackEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlaybackEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := playbackevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlaybackEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlaybackEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlaybackEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PlaybackEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := playbackevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "PlaybackEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := playbackevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LectureID(); !ok {
		return &ValidationError{Name: "lecture_id", err: errors.New(`ent: missing required field "PlaybackEvent.lecture_id"`)}
	}
	if v, ok := _c.mutation.LectureID(); ok {
		if err := playbackevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.lecture_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PlaybackEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := playbackevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromSeconds(); !ok {
		return &ValidationError{Name: "from_seconds", err: errors.New(`ent: missing required field "PlaybackEvent.from_seconds"`)}
	}
	if _, ok := _c.mutation.ToSeconds(); !ok {
		return &ValidationError{Name: "to_seconds", err: errors.New(`ent: missing required field "PlaybackEvent.to_seconds"`)}
	}
	if _, ok := _c.mutation.RequestedSeconds(); !ok {
		return &ValidationError{Name: "requested_seconds", err: errors.New(`ent: missing required field "PlaybackEvent.requested_seconds"`)}
	}
	return nil
}

func (_c *PlaybackEventCreate) sqlSave(ctx context.Context) (*PlaybackEvent, error) {
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

func (_c *PlaybackEventCreate) createSpec() (*PlaybackEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlaybackEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playbackevent.Table, sqlgraph.NewFieldSpec(playbackevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(playbackevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(playbackevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(playbackevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(playbackevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.LectureID(); ok {
		_spec.SetField(playbackevent.FieldLectureID, field.TypeString, value)
		_node.LectureID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(playbackevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.FromSeconds(); ok {
		_spec.SetField(playbackevent.FieldFromSeconds, field.TypeFloat64, value)
		_node.FromSeconds = value
	}
	if value, ok := _c.mutation.ToSeconds(); ok {
		_spec.SetField(playbackevent.FieldToSeconds, field.TypeFloat64, value)
		_node.ToSeconds = value
	}
	if value, ok := _c.mutation.RequestedSeconds(); ok {
		_spec.SetField(playbackevent.FieldRequestedSeconds, field.TypeFloat64, value)
		_node.RequestedSeconds = value
	}
	return _node, _spec
}

// PlaybackEventCreateBulk is the builder for creating many PlaybackEvent entities in bulk.
type PlaybackEventCreateBulk struct {
	config
	err      error
	builders []*PlaybackEventCreate
}

// Save creates the PlaybackEvent entities in the database.
func (_c *PlaybackEventCreateBulk) Save(ctx context.Context) ([]*PlaybackEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlaybackEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlaybackEventMutation)
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
func (_c *PlaybackEventCreateBulk) SaveX(ctx context.Context) []*PlaybackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybackEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybackEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
