// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/playbackevent"
	"github.com/abhisek/lectio/ent/predicate"
)

// PlaybackEventDelete is the builder for deleting a PlaybackEvent entity.
type PlaybackEventDelete struct {
	config
	hooks    []Hook
	mutation *PlaybackEventMutation
}

// Where appends a list predicates to the PlaybackEventDelete builder.
func (_d *PlaybackEventDelete) Where(ps ...predicate.PlaybackEvent) *PlaybackEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PlaybackEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PlaybackEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PlaybackEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(playbackevent.Table, sqlgraph.NewFieldSpec(playbackevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PlaybackEventDeleteOne is the builder for deleting a single PlaybackEvent entity.
type PlaybackEventDeleteOne struct {
	_d *PlaybackEventDelete
}

// Where appends a list predicates to the PlaybackEventDelete builder.
func (_d *PlaybackEventDeleteOne) Where(ps ...predicate.PlaybackEvent) *PlaybackEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PlaybackEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{playbackevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PlaybackEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
