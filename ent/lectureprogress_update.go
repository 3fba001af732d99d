// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/lectureprogress"
	"github.com/abhisek/lectio/ent/predicate"
	"github.com/abhisek/lectio/ent/schema"
)

// LectureProgressUpdate is the builder for updating LectureProgress entities.
type LectureProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LectureProgressMutation
}

// Where appends a list predicates to the LectureProgressUpdate builder.
func (_u *LectureProgressUpdate) Where(ps ...predicate.LectureProgress) *LectureProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *LectureProgressUpdate) SetLearnerID(v string) *LectureProgressUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LectureProgressUpdate) SetNillableLearnerID(v *string) *LectureProgressUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *LectureProgressUpdate) SetLectureID(v string) *LectureProgressUpdate {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *LectureProgressUpdate) SetNillableLectureID(v *string) *LectureProgressUpdate {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetVideoPosition sets the "video_position" field.
func (_u *LectureProgressUpdate) SetVideoPosition(v float64) *LectureProgressUpdate {
	_u.mutation.ResetVideoPosition()
	_u.mutation.SetVideoPosition(v)
	return _u
}

// SetNillableVideoPosition sets the "video_position" field if the given value is not nil.
func (_u *LectureProgressUpdate) SetNillableVideoPosition(v *float64) *LectureProgressUpdate {
	if v != nil {
		_u.SetVideoPosition(*v)
	}
	return _u
}

// AddVideoPosition adds value to the "video_position" field.
func (_u *LectureProgressUpdate) AddVideoPosition(v float64) *LectureProgressUpdate {
	_u.mutation.AddVideoPosition(v)
	return _u
}

// SetCompletedPausePoints sets the "completed_pause_points" field.
func (_u *LectureProgressUpdate) SetCompletedPausePoints(v []string) *LectureProgressUpdate {
	_u.mutation.SetCompletedPausePoints(v)
	return _u
}

// AppendCompletedPausePoints appends value to the "completed_pause_points" field.
func (_u *LectureProgressUpdate) AppendCompletedPausePoints(v []string) *LectureProgressUpdate {
	_u.mutation.AppendCompletedPausePoints(v)
	return _u
}

// ClearCompletedPausePoints clears the value of the "completed_pause_points" field.
func (_u *LectureProgressUpdate) ClearCompletedPausePoints() *LectureProgressUpdate {
	_u.mutation.ClearCompletedPausePoints()
	return _u
}

// SetResponses sets the "responses" field.
func (_u *LectureProgressUpdate) SetResponses(v map[string]schema.PausePointResponse) *LectureProgressUpdate {
	_u.mutation.SetResponses(v)
	return _u
}

// ClearResponses clears the value of the "responses" field.
func (_u *LectureProgressUpdate) ClearResponses() *LectureProgressUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// SetTotalPointsEarned sets the "total_points_earned" field.
func (_u *LectureProgressUpdate) SetTotalPointsEarned(v int) *LectureProgressUpdate {
	_u.mutation.ResetTotalPointsEarned()
	_u.mutation.SetTotalPointsEarned(v)
	return _u
}

// SetNillableTotalPointsEarned sets the "total_points_earned" field if the given value is not nil.
func (_u *LectureProgressUpdate) SetNillableTotalPointsEarned(v *int) *LectureProgressUpdate {
	if v != nil {
		_u.SetTotalPointsEarned(*v)
	}
	return _u
}

// AddTotalPointsEarned adds value to the "total_points_earned" field.
func (_u *LectureProgressUpdate) AddTotalPointsEarned(v int) *LectureProgressUpdate {
	_u.mutation.AddTotalPointsEarned(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LectureProgressUpdate) SetCompletedAt(v time.Time) *LectureProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LectureProgressUpdate) SetNillableCompletedAt(v *time.Time) *LectureProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LectureProgressUpdate) ClearCompletedAt() *LectureProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LectureProgressUpdate) SetUpdatedAt(v time.Time) *LectureProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LectureProgressMutation object of the builder.
func (_u *LectureProgressUpdate) Mutation() *LectureProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LectureProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LectureProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LectureProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LectureProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LectureProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lectureprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LectureProgressUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := lectureprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LectureProgress.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := lectureprogress.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "LectureProgress.lecture_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LectureProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lectureprogress.Table, lectureprogress.Columns, sqlgraph.NewFieldSpec(lectureprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(lectureprogress.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(lectureprogress.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoPosition(); ok {
		_spec.SetField(lectureprogress.FieldVideoPosition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVideoPosition(); ok {
		_spec.AddField(lectureprogress.FieldVideoPosition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedPausePoints(); ok {
		_spec.SetField(lectureprogress.FieldCompletedPausePoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedPausePoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lectureprogress.FieldCompletedPausePoints, value)
		})
	}
	if _u.mutation.CompletedPausePointsCleared() {
		_spec.ClearField(lectureprogress.FieldCompletedPausePoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(lectureprogress.FieldResponses, field.TypeJSON, value)
	}
	if _u.mutation.ResponsesCleared() {
		_spec.ClearField(lectureprogress.FieldResponses, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalPointsEarned(); ok {
		_spec.SetField(lectureprogress.FieldTotalPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPointsEarned(); ok {
		_spec.AddField(lectureprogress.FieldTotalPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lectureprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lectureprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lectureprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lectureprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LectureProgressUpdateOne is the builder for updating a single LectureProgress entity.
type LectureProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LectureProgressMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *LectureProgressUpdateOne) SetLearnerID(v string) *LectureProgressUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LectureProgressUpdateOne) SetNillableLearnerID(v *string) *LectureProgressUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *LectureProgressUpdateOne) SetLectureID(v string) *LectureProgressUpdateOne {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *LectureProgressUpdateOne) SetNillableLectureID(v *string) *LectureProgressUpdateOne {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetVideoPosition sets the "video_position" field.
func (_u *LectureProgressUpdateOne) SetVideoPosition(v float64) *LectureProgressUpdateOne {
	_u.mutation.ResetVideoPosition()
	_u.mutation.SetVideoPosition(v)
	return _u
}

// SetNillableVideoPosition sets the "video_position" field if the given value is not nil.
func (_u *LectureProgressUpdateOne) SetNillableVideoPosition(v *float64) *LectureProgressUpdateOne {
	if v != nil {
		_u.SetVideoPosition(*v)
	}
	return _u
}

// AddVideoPosition adds value to the "video_position" field.
func (_u *LectureProgressUpdateOne) AddVideoPosition(v float64) *LectureProgressUpdateOne {
	_u.mutation.AddVideoPosition(v)
	return _u
}

// SetCompletedPausePoints sets the "completed_pause_points" field.
func (_u *LectureProgressUpdateOne) SetCompletedPausePoints(v []string) *LectureProgressUpdateOne {
	_u.mutation.SetCompletedPausePoints(v)
	return _u
}

// AppendCompletedPausePoints appends value to the "completed_pause_points" field.
func (_u *LectureProgressUpdateOne) AppendCompletedPausePoints(v []string) *LectureProgressUpdateOne {
	_u.mutation.AppendCompletedPausePoints(v)
	return _u
}

// ClearCompletedPausePoints clears the value of the "completed_pause_points" field.
func (_u *LectureProgressUpdateOne) ClearCompletedPausePoints() *LectureProgressUpdateOne {
	_u.mutation.ClearCompletedPausePoints()
	return _u
}

// SetResponses sets the "responses" field.
func (_u *LectureProgressUpdateOne) SetResponses(v map[string]schema.PausePointResponse) *LectureProgressUpdateOne {
	_u.mutation.SetResponses(v)
	return _u
}

// ClearResponses clears the value of the "responses" field.
func (_u *LectureProgressUpdateOne) ClearResponses() *LectureProgressUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// SetTotalPointsEarned sets the "total_points_earned" field.
func (_u *LectureProgressUpdateOne) SetTotalPointsEarned(v int) *LectureProgressUpdateOne {
	_u.mutation.ResetTotalPointsEarned()
	_u.mutation.SetTotalPointsEarned(v)
	return _u
}

// SetNillableTotalPointsEarned sets the "total_points_earned" field if the given value is not nil.
func (_u *LectureProgressUpdateOne) SetNillableTotalPointsEarned(v *int) *LectureProgressUpdateOne {
	if v != nil {
		_u.SetTotalPointsEarned(*v)
	}
	return _u
}

// AddTotalPointsEarned adds value to the "total_points_earned" field.
func (_u *LectureProgressUpdateOne) AddTotalPointsEarned(v int) *LectureProgressUpdateOne {
	_u.mutation.AddTotalPointsEarned(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *LectureProgressUpdateOne) SetCompletedAt(v time.Time) *LectureProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *LectureProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *LectureProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *LectureProgressUpdateOne) ClearCompletedAt() *LectureProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LectureProgressUpdateOne) SetUpdatedAt(v time.Time) *LectureProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LectureProgressMutation object of the builder.
func (_u *LectureProgressUpdateOne) Mutation() *LectureProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the LectureProgressUpdate builder.
func (_u *LectureProgressUpdateOne) Where(ps ...predicate.LectureProgress) *LectureProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LectureProgressUpdateOne) Select(field string, fields ...string) *LectureProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LectureProgress entity.
func (_u *LectureProgressUpdateOne) Save(ctx context.Context) (*LectureProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LectureProgressUpdateOne) SaveX(ctx context.Context) *LectureProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LectureProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LectureProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LectureProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lectureprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LectureProgressUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := lectureprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LectureProgress.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := lectureprogress.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "LectureProgress.lecture_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LectureProgressUpdateOne) sqlSave(ctx context.Context) (_node *LectureProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lectureprogress.Table, lectureprogress.Columns, sqlgraph.NewFieldSpec(lectureprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LectureProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lectureprogress.FieldID)
		for _, f := range fields {
			if !lectureprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lectureprogress.FieldID {
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
		_spec.SetField(lectureprogress.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(lectureprogress.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoPosition(); ok {
		_spec.SetField(lectureprogress.FieldVideoPosition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVideoPosition(); ok {
		_spec.AddField(lectureprogress.FieldVideoPosition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedPausePoints(); ok {
		_spec.SetField(lectureprogress.FieldCompletedPausePoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedPausePoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lectureprogress.FieldCompletedPausePoints, value)
		})
	}
	if _u.mutation.CompletedPausePointsCleared() {
		_spec.ClearField(lectureprogress.FieldCompletedPausePoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(lectureprogress.FieldResponses, field.TypeJSON, value)
	}
	if _u.mutation.ResponsesCleared() {
		_spec.ClearField(lectureprogress.FieldResponses, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalPointsEarned(); ok {
		_spec.SetField(lectureprogress.FieldTotalPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPointsEarned(); ok {
		_spec.AddField(lectureprogress.FieldTotalPointsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(lectureprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(lectureprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lectureprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LectureProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lectureprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
