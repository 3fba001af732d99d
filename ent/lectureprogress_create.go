// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/lectureprogress"
	"github.com/abhisek/lectio/ent/schema"
)

// LectureProgressCreate is the builder for creating a LectureProgress entity.
type LectureProgressCreate struct {
	config
	mutation *LectureProgressMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *LectureProgressCreate) SetLearnerID(v string) *LectureProgressCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLectureID sets the "lecture_id" field.
func (_c *LectureProgressCreate) SetLectureID(v string) *LectureProgressCreate {
	_c.mutation.SetLectureID(v)
	return _c
}

// SetVideoPosition sets the "video_position" field.
func (_c *LectureProgressCreate) SetVideoPosition(v float64) *LectureProgressCreate {
	_c.mutation.SetVideoPosition(v)
	return _c
}

// SetNillableVideoPosition sets the "video_position" field if the given value is not nil.
func (_c *LectureProgressCreate) SetNillableVideoPosition(v *float64) *LectureProgressCreate {
	if v != nil {
		_c.SetVideoPosition(*v)
	}
	return _c
}

// SetCompletedPausePoints sets the "completed_pause_points" field.
func (_c *LectureProgressCreate) SetCompletedPausePoints(v []string) *LectureProgressCreate {
	_c.mutation.SetCompletedPausePoints(v)
	return _c
}

// SetResponses sets the "responses" field.
func (_c *LectureProgressCreate) SetResponses(v map[string]schema.PausePointResponse) *LectureProgressCreate {
	_c.mutation.SetResponses(v)
	return _c
}

// SetTotalPointsEarned sets the "total_points_earned" field.
func (_c *LectureProgressCreate) SetTotalPointsEarned(v int) *LectureProgressCreate {
	_c.mutation.SetTotalPointsEarned(v)
	return _c
}

// SetNillableTotalPointsEarned sets the "total_points_earned" field if the given value is not nil.
func (_c *LectureProgressCreate) SetNillableTotalPointsEarned(v *int) *LectureProgressCreate {
	if v != nil {
		_c.SetTotalPointsEarned(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *LectureProgressCreate) SetCompletedAt(v time.Time) *LectureProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *LectureProgressCreate) SetNillableCompletedAt(v *time.Time) *LectureProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LectureProgressCreate) SetUpdatedAt(v time.Time) *LectureProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LectureProgressCreate) SetNillableUpdatedAt(v *time.Time) *LectureProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LectureProgressMutation object of the builder.
func (_c *LectureProgressCreate) Mutation() *LectureProgressMutation {
	return _c.mutation
}

// Save creates the LectureProgress in the database.
func (_c *LectureProgressCreate) Save(ctx context.Context) (*LectureProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LectureProgressCreate) SaveX(ctx context.Context) *LectureProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LectureProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LectureProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LectureProgressCreate) defaults() {
	if _, ok := _c.mutation.VideoPosition(); !ok {
		v := lectureprogress.DefaultVideoPosition
		_c.mutation.SetVideoPosition(v)
	}
	if _, ok := _c.mutation.TotalPointsEarned(); !ok {
		v := lectureprogress.DefaultTotalPointsEarned
		_c.mutation.SetTotalPointsEarned(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lectureprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LectureProgressCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LectureProgress.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := lectureprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LectureProgress.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LectureID(); !ok {
		return &ValidationError{Name: "lecture_id", err: errors.New(`ent: missing required field "LectureProgress.lecture_id"`)}
	}
	if v, ok := _c.mutation.LectureID(); ok {
		if err := lectureprogress.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "LectureProgress.lecture_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VideoPosition(); !ok {
		return &ValidationError{Name: "video_position", err: errors.New(`ent: missing required field "LectureProgress.video_position"`)}
	}
	if _, ok := _c.mutation.TotalPointsEarned(); !ok {
		return &ValidationError{Name: "total_points_earned", err: errors.New(`ent: missing required field "LectureProgress.total_points_earned"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LectureProgress.updated_at"`)}
	}
	return nil
}

func (_c *LectureProgressCreate) sqlSave(ctx context.Context) (*LectureProgress, error) {
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

func (_c *LectureProgressCreate) createSpec() (*LectureProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &LectureProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lectureprogress.Table, sqlgraph.NewFieldSpec(lectureprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(lectureprogress.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.LectureID(); ok {
		_spec.SetField(lectureprogress.FieldLectureID, field.TypeString, value)
		_node.LectureID = value
	}
	if value, ok := _c.mutation.VideoPosition(); ok {
		_spec.SetField(lectureprogress.FieldVideoPosition, field.TypeFloat64, value)
		_node.VideoPosition = value
	}
	if value, ok := _c.mutation.CompletedPausePoints(); ok {
		_spec.SetField(lectureprogress.FieldCompletedPausePoints, field.TypeJSON, value)
		_node.CompletedPausePoints = value
	}
	if value, ok := _c.mutation.Responses(); ok {
		_spec.SetField(lectureprogress.FieldResponses, field.TypeJSON, value)
		_node.Responses = value
	}
	if value, ok := _c.mutation.TotalPointsEarned(); ok {
		_spec.SetField(lectureprogress.FieldTotalPointsEarned, field.TypeInt, value)
		_node.TotalPointsEarned = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(lectureprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lectureprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LectureProgressCreateBulk is the builder for creating many LectureProgress entities in bulk.
type LectureProgressCreateBulk struct {
	config
	err      error
	builders []*LectureProgressCreate
}

// Save creates the LectureProgress entities in the database.
func (_c *LectureProgressCreateBulk) Save(ctx context.Context) ([]*LectureProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LectureProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LectureProgressMutation)
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
func (_c *LectureProgressCreateBulk) SaveX(ctx context.Context) []*LectureProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LectureProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LectureProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
