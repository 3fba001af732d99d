// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/playbackevent"
	"github.com/abhisek/lectio/ent/predicate"
)

// PlaybackEventUpdate is the builder for updating PlaybackEvent entities.
type PlaybackEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlaybackEventMutation
}

// Where appends a list predicates to the PlaybackEventUpdate builder.
func (_u *PlaybackEventUpdate) Where(ps ...predicate.PlaybackEvent) *PlaybackEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PlaybackEventUpdate) SetSessionID(v string) *PlaybackEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableSessionID(v *string) *PlaybackEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PlaybackEventUpdate) SetLearnerID(v string) *PlaybackEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableLearnerID(v *string) *PlaybackEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *PlaybackEventUpdate) SetLectureID(v string) *PlaybackEventUpdate {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableLectureID(v *string) *PlaybackEventUpdate {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PlaybackEventUpdate) SetKind(v string) *PlaybackEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableKind(v *string) *PlaybackEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFromSeconds sets the "from_seconds" field.
func (_u *PlaybackEventUpdate) SetFromSeconds(v float64) *PlaybackEventUpdate {
	_u.mutation.ResetFromSeconds()
	_u.mutation.SetFromSeconds(v)
	return _u
}

// SetNillableFromSeconds sets the "from_seconds" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableFromSeconds(v *float64) *PlaybackEventUpdate {
	if v != nil {
		_u.SetFromSeconds(*v)
	}
	return _u
}

// AddFromSeconds adds value to the "from_seconds" field.
func (_u *PlaybackEventUpdate) AddFromSeconds(v float64) *PlaybackEventUpdate {
	_u.mutation.AddFromSeconds(v)
	return _u
}

// SetToSeconds sets the "to_seconds" field.
func (_u *PlaybackEventUpdate) SetToSeconds(v float64) *PlaybackEventUpdate {
	_u.mutation.ResetToSeconds()
	_u.mutation.SetToSeconds(v)
	return _u
}

// SetNillableToSeconds sets the "to_seconds" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableToSeconds(v *float64) *PlaybackEventUpdate {
	if v != nil {
		_u.SetToSeconds(*v)
	}
	return _u
}

// AddToSeconds adds value to the "to_seconds" field.
func (_u *PlaybackEventUpdate) AddToSeconds(v float64) *PlaybackEventUpdate {
	_u.mutation.AddToSeconds(v)
	return _u
}

// SetRequestedSeconds sets the "requested_seconds" field.
func (_u *PlaybackEventUpdate) SetRequestedSeconds(v float64) *PlaybackEventUpdate {
	_u.mutation.ResetRequestedSeconds()
	_u.mutation.SetRequestedSeconds(v)
	return _u
}

// SetNillableRequestedSeconds sets the "requested_seconds" field if the given value is not nil.
func (_u *PlaybackEventUpdate) SetNillableRequestedSeconds(v *float64) *PlaybackEventUpdate {
	if v != nil {
		_u.SetRequestedSeconds(*v)
	}
	return _u
}

// AddRequestedSeconds adds value to the "requested_seconds" field.
func (_u *PlaybackEventUpdate) AddRequestedSeconds(v float64) *PlaybackEventUpdate {
	_u.mutation.AddRequestedSeconds(v)
	return _u
}

// Mutation returns the PlaybackEventMutation object of the builder.
func (_u *PlaybackEventUpdate) Mutation() *PlaybackEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlaybackEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybackEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlaybackEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybackEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlaybackEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := playbackevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := playbackevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := playbackevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.lecture_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := playbackevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *PlaybackEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playbackevent.Table, playbackevent.Columns, sqlgraph.NewFieldSpec(playbackevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(playbackevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(playbackevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(playbackevent.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(playbackevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromSeconds(); ok {
		_spec.SetField(playbackevent.FieldFromSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFromSeconds(); ok {
		_spec.AddField(playbackevent.FieldFromSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ToSeconds(); ok {
		_spec.SetField(playbackevent.FieldToSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedToSeconds(); ok {
		_spec.AddField(playbackevent.FieldToSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RequestedSeconds(); ok {
		_spec.SetField(playbackevent.FieldRequestedSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRequestedSeconds(); ok {
		_spec.AddField(playbackevent.FieldRequestedSeconds, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlaybackEventUpdateOne is the builder for updating a single PlaybackEvent entity.
type PlaybackEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlaybackEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *PlaybackEventUpdateOne) SetSessionID(v string) *PlaybackEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableSessionID(v *string) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *PlaybackEventUpdateOne) SetLearnerID(v string) *PlaybackEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableLearnerID(v *string) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *PlaybackEventUpdateOne) SetLectureID(v string) *PlaybackEventUpdateOne {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableLectureID(v *string) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PlaybackEventUpdateOne) SetKind(v string) *PlaybackEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableKind(v *string) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFromSeconds sets the "from_seconds" field.
func (_u *PlaybackEventUpdateOne) SetFromSeconds(v float64) *PlaybackEventUpdateOne {
	_u.mutation.ResetFromSeconds()
	_u.mutation.SetFromSeconds(v)
	return _u
}

// SetNillableFromSeconds sets the "from_seconds" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableFromSeconds(v *float64) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetFromSeconds(*v)
	}
	return _u
}

// AddFromSeconds adds value to the "from_seconds" field.
func (_u *PlaybackEventUpdateOne) AddFromSeconds(v float64) *PlaybackEventUpdateOne {
	_u.mutation.AddFromSeconds(v)
	return _u
}

// SetToSeconds sets the "to_seconds" field.
func (_u *PlaybackEventUpdateOne) SetToSeconds(v float64) *PlaybackEventUpdateOne {
	_u.mutation.ResetToSeconds()
	_u.mutation.SetToSeconds(v)
	return _u
}

// SetNillableToSeconds sets the "to_seconds" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableToSeconds(v *float64) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetToSeconds(*v)
	}
	return _u
}

// AddToSeconds adds value to the "to_seconds" field.
func (_u *PlaybackEventUpdateOne) AddToSeconds(v float64) *PlaybackEventUpdateOne {
	_u.mutation.AddToSeconds(v)
	return _u
}

// SetRequestedSeconds sets the "requested_seconds" field.
func (_u *PlaybackEventUpdateOne) SetRequestedSeconds(v float64) *PlaybackEventUpdateOne {
	_u.mutation.ResetRequestedSeconds()
	_u.mutation.SetRequestedSeconds(v)
	return _u
}

// SetNillableRequestedSeconds sets the "requested_seconds" field if the given value is not nil.
func (_u *PlaybackEventUpdateOne) SetNillableRequestedSeconds(v *float64) *PlaybackEventUpdateOne {
	if v != nil {
		_u.SetRequestedSeconds(*v)
	}
	return _u
}

// AddRequestedSeconds adds value to the "requested_seconds" field.
func (_u *PlaybackEventUpdateOne) AddRequestedSeconds(v float64) *PlaybackEventUpdateOne {
	_u.mutation.AddRequestedSeconds(v)
	return _u
}

// Mutation returns the PlaybackEventMutation object of the builder.
func (_u *PlaybackEventUpdateOne) Mutation() *PlaybackEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlaybackEventUpdate builder.
func (_u *PlaybackEventUpdateOne) Where(ps ...predicate.PlaybackEvent) *PlaybackEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlaybackEventUpdateOne) Select(field string, fields ...string) *PlaybackEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlaybackEvent entity.
func (_u *PlaybackEventUpdateOne) Save(ctx context.Context) (*PlaybackEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybackEventUpdateOne) SaveX(ctx context.Context) *PlaybackEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlaybackEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybackEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlaybackEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := playbackevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := playbackevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := playbackevent.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.lecture_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := playbackevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PlaybackEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *PlaybackEventUpdateOne) sqlSave(ctx context.Context) (_node *PlaybackEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playbackevent.Table, playbackevent.Columns, sqlgraph.NewFieldSpec(playbackevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlaybackEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playbackevent.FieldID)
		for _, f := range fields {
			if !playbackevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playbackevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(playbackevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(playbackevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(playbackevent.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(playbackevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromSeconds(); ok {
		_spec.SetField(playbackevent.FieldFromSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFromSeconds(); ok {
		_spec.AddField(playbackevent.FieldFromSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ToSeconds(); ok {
		_spec.SetField(playbackevent.FieldToSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedToSeconds(); ok {
		_spec.AddField(playbackevent.FieldToSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RequestedSeconds(); ok {
		_spec.SetField(playbackevent.FieldRequestedSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRequestedSeconds(); ok {
		_spec.AddField(playbackevent.FieldRequestedSeconds, field.TypeFloat64, value)
	}
	_node = &PlaybackEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
