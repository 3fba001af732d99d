// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/attemptevent"
	"github.com/abhisek/lectio/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AttemptEventUpdate) SetLearnerID(v string) *AttemptEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLearnerID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptEventUpdate) SetItemID(v string) *AttemptEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableItemID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *AttemptEventUpdate) SetLectureID(v string) *AttemptEventUpdate {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLectureID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetPausePointID sets the "pause_point_id" field.
func (_u *AttemptEventUpdate) SetPausePointID(v string) *AttemptEventUpdate {
	_u.mutation.SetPausePointID(v)
	return _u
}

// SetNillablePausePointID sets the "pause_point_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePausePointID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetPausePointID(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptEventUpdate) SetAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AttemptEventUpdate) SetConfidence(v string) *AttemptEventUpdate {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableConfidence(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *AttemptEventUpdate) SetGrade(v int) *AttemptEventUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableGrade(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *AttemptEventUpdate) AddGrade(v int) *AttemptEventUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *AttemptEventUpdate) ClearGrade() *AttemptEventUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetPoints sets the "points" field.
func (_u *AttemptEventUpdate) SetPoints(v int) *AttemptEventUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePoints(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *AttemptEventUpdate) AddPoints(v int) *AttemptEventUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AttemptEventUpdate) SetTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTimeMs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AttemptEventUpdate) AddTimeMs(v int) *AttemptEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *AttemptEventUpdate) SetNeedsReview(v bool) *AttemptEventUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableNeedsReview(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := attemptevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := attemptevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(attemptevent.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PausePointID(); ok {
		_spec.SetField(attemptevent.FieldPausePointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(attemptevent.FieldConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(attemptevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(attemptevent.FieldGrade, field.TypeInt, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(attemptevent.FieldGrade, field.TypeInt)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(attemptevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(attemptevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(attemptevent.FieldNeedsReview, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AttemptEventUpdateOne) SetLearnerID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLearnerID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AttemptEventUpdateOne) SetItemID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableItemID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *AttemptEventUpdateOne) SetLectureID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLectureID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetPausePointID sets the "pause_point_id" field.
func (_u *AttemptEventUpdateOne) SetPausePointID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetPausePointID(v)
	return _u
}

// SetNillablePausePointID sets the "pause_point_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePausePointID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPausePointID(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AttemptEventUpdateOne) SetAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AttemptEventUpdateOne) SetConfidence(v string) *AttemptEventUpdateOne {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableConfidence(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *AttemptEventUpdateOne) SetGrade(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableGrade(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *AttemptEventUpdateOne) AddGrade(v int) *AttemptEventUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *AttemptEventUpdateOne) ClearGrade() *AttemptEventUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetPoints sets the "points" field.
func (_u *AttemptEventUpdateOne) SetPoints(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePoints(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *AttemptEventUpdateOne) AddPoints(v int) *AttemptEventUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AttemptEventUpdateOne) SetTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTimeMs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AttemptEventUpdateOne) AddTimeMs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *AttemptEventUpdateOne) SetNeedsReview(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableNeedsReview(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := attemptevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Answer(); ok {
		if err := attemptevent.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.answer": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := attemptevent.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(attemptevent.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PausePointID(); ok {
		_spec.SetField(attemptevent.FieldPausePointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(attemptevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(attemptevent.FieldConfidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(attemptevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(attemptevent.FieldGrade, field.TypeInt, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(attemptevent.FieldGrade, field.TypeInt)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(attemptevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(attemptevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(attemptevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(attemptevent.FieldNeedsReview, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
