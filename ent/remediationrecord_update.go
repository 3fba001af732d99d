// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/predicate"
	"github.com/abhisek/lectio/ent/remediationrecord"
)

// RemediationRecordUpdate is the builder for updating RemediationRecord entities.
type RemediationRecordUpdate struct {
	config
	hooks    []Hook
	mutation *RemediationRecordMutation
}

// Where appends a list predicates to the RemediationRecordUpdate builder.
func (_u *RemediationRecordUpdate) Where(ps ...predicate.RemediationRecord) *RemediationRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *RemediationRecordUpdate) SetLearnerID(v string) *RemediationRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableLearnerID(v *string) *RemediationRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *RemediationRecordUpdate) SetLectureID(v string) *RemediationRecordUpdate {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableLectureID(v *string) *RemediationRecordUpdate {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetPausePointID sets the "pause_point_id" field.
func (_u *RemediationRecordUpdate) SetPausePointID(v string) *RemediationRecordUpdate {
	_u.mutation.SetPausePointID(v)
	return _u
}

// SetNillablePausePointID sets the "pause_point_id" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillablePausePointID(v *string) *RemediationRecordUpdate {
	if v != nil {
		_u.SetPausePointID(*v)
	}
	return _u
}

// SetMisconception sets the "misconception" field.
func (_u *RemediationRecordUpdate) SetMisconception(v string) *RemediationRecordUpdate {
	_u.mutation.SetMisconception(v)
	return _u
}

// SetNillableMisconception sets the "misconception" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableMisconception(v *string) *RemediationRecordUpdate {
	if v != nil {
		_u.SetMisconception(*v)
	}
	return _u
}

// SetMissingConcept sets the "missing_concept" field.
func (_u *RemediationRecordUpdate) SetMissingConcept(v string) *RemediationRecordUpdate {
	_u.mutation.SetMissingConcept(v)
	return _u
}

// SetNillableMissingConcept sets the "missing_concept" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableMissingConcept(v *string) *RemediationRecordUpdate {
	if v != nil {
		_u.SetMissingConcept(*v)
	}
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *RemediationRecordUpdate) SetRootCause(v string) *RemediationRecordUpdate {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableRootCause(v *string) *RemediationRecordUpdate {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// SetJumpToSeconds sets the "jump_to_seconds" field.
func (_u *RemediationRecordUpdate) SetJumpToSeconds(v float64) *RemediationRecordUpdate {
	_u.mutation.ResetJumpToSeconds()
	_u.mutation.SetJumpToSeconds(v)
	return _u
}

// SetNillableJumpToSeconds sets the "jump_to_seconds" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableJumpToSeconds(v *float64) *RemediationRecordUpdate {
	if v != nil {
		_u.SetJumpToSeconds(*v)
	}
	return _u
}

// AddJumpToSeconds adds value to the "jump_to_seconds" field.
func (_u *RemediationRecordUpdate) AddJumpToSeconds(v float64) *RemediationRecordUpdate {
	_u.mutation.AddJumpToSeconds(v)
	return _u
}

// SetEndSeconds sets the "end_seconds" field.
func (_u *RemediationRecordUpdate) SetEndSeconds(v float64) *RemediationRecordUpdate {
	_u.mutation.ResetEndSeconds()
	_u.mutation.SetEndSeconds(v)
	return _u
}

// SetNillableEndSeconds sets the "end_seconds" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableEndSeconds(v *float64) *RemediationRecordUpdate {
	if v != nil {
		_u.SetEndSeconds(*v)
	}
	return _u
}

// AddEndSeconds adds value to the "end_seconds" field.
func (_u *RemediationRecordUpdate) AddEndSeconds(v float64) *RemediationRecordUpdate {
	_u.mutation.AddEndSeconds(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *RemediationRecordUpdate) SetExplanation(v string) *RemediationRecordUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableExplanation(v *string) *RemediationRecordUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetFollowUpQuestion sets the "follow_up_question" field.
func (_u *RemediationRecordUpdate) SetFollowUpQuestion(v string) *RemediationRecordUpdate {
	_u.mutation.SetFollowUpQuestion(v)
	return _u
}

// SetNillableFollowUpQuestion sets the "follow_up_question" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableFollowUpQuestion(v *string) *RemediationRecordUpdate {
	if v != nil {
		_u.SetFollowUpQuestion(*v)
	}
	return _u
}

// SetFollowUpAnswer sets the "follow_up_answer" field.
func (_u *RemediationRecordUpdate) SetFollowUpAnswer(v string) *RemediationRecordUpdate {
	_u.mutation.SetFollowUpAnswer(v)
	return _u
}

// SetNillableFollowUpAnswer sets the "follow_up_answer" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableFollowUpAnswer(v *string) *RemediationRecordUpdate {
	if v != nil {
		_u.SetFollowUpAnswer(*v)
	}
	return _u
}

// SetFollowUpAnswered sets the "follow_up_answered" field.
func (_u *RemediationRecordUpdate) SetFollowUpAnswered(v bool) *RemediationRecordUpdate {
	_u.mutation.SetFollowUpAnswered(v)
	return _u
}

// SetNillableFollowUpAnswered sets the "follow_up_answered" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableFollowUpAnswered(v *bool) *RemediationRecordUpdate {
	if v != nil {
		_u.SetFollowUpAnswered(*v)
	}
	return _u
}

// SetFollowUpCorrect sets the "follow_up_correct" field.
func (_u *RemediationRecordUpdate) SetFollowUpCorrect(v bool) *RemediationRecordUpdate {
	_u.mutation.SetFollowUpCorrect(v)
	return _u
}

// SetNillableFollowUpCorrect sets the "follow_up_correct" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableFollowUpCorrect(v *bool) *RemediationRecordUpdate {
	if v != nil {
		_u.SetFollowUpCorrect(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *RemediationRecordUpdate) SetResolved(v bool) *RemediationRecordUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *RemediationRecordUpdate) SetNillableResolved(v *bool) *RemediationRecordUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// Mutation returns the RemediationRecordMutation object of the builder.
func (_u *RemediationRecordUpdate) Mutation() *RemediationRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RemediationRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RemediationRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RemediationRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RemediationRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RemediationRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := remediationrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RemediationRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := remediationrecord.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "RemediationRecord.lecture_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PausePointID(); ok {
		if err := remediationrecord.PausePointIDValidator(v); err != nil {
			return &ValidationError{Name: "pause_point_id", err: fmt.Errorf(`ent: validator failed for field "RemediationRecord.pause_point_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RemediationRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(remediationrecord.Table, remediationrecord.Columns, sqlgraph.NewFieldSpec(remediationrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(remediationrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(remediationrecord.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PausePointID(); ok {
		_spec.SetField(remediationrecord.FieldPausePointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Misconception(); ok {
		_spec.SetField(remediationrecord.FieldMisconception, field.TypeString, value)
	}
	if value, ok := _u.mutation.MissingConcept(); ok {
		_spec.SetField(remediationrecord.FieldMissingConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(remediationrecord.FieldRootCause, field.TypeString, value)
	}
	if value, ok := _u.mutation.JumpToSeconds(); ok {
		_spec.SetField(remediationrecord.FieldJumpToSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedJumpToSeconds(); ok {
		_spec.AddField(remediationrecord.FieldJumpToSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndSeconds(); ok {
		_spec.SetField(remediationrecord.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndSeconds(); ok {
		_spec.AddField(remediationrecord.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(remediationrecord.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowUpQuestion(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowUpAnswer(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowUpAnswered(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpAnswered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FollowUpCorrect(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(remediationrecord.FieldResolved, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remediationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RemediationRecordUpdateOne is the builder for updating a single RemediationRecord entity.
type RemediationRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RemediationRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *RemediationRecordUpdateOne) SetLearnerID(v string) *RemediationRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableLearnerID(v *string) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLectureID sets the "lecture_id" field.
func (_u *RemediationRecordUpdateOne) SetLectureID(v string) *RemediationRecordUpdateOne {
	_u.mutation.SetLectureID(v)
	return _u
}

// SetNillableLectureID sets the "lecture_id" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableLectureID(v *string) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetLectureID(*v)
	}
	return _u
}

// SetPausePointID sets the "pause_point_id" field.
func (_u *RemediationRecordUpdateOne) SetPausePointID(v string) *RemediationRecordUpdateOne {
	_u.mutation.SetPausePointID(v)
	return _u
}

// SetNillablePausePointID sets the "pause_point_id" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillablePausePointID(v *string) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetPausePointID(*v)
	}
	return _u
}

// SetMisconception sets the "misconception" field.
func (_u *RemediationRecordUpdateOne) SetMisconception(v string) *RemediationRecordUpdateOne {
	_u.mutation.SetMisconception(v)
	return _u
}

// SetNillableMisconception sets the "misconception" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableMisconception(v *string) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetMisconception(*v)
	}
	return _u
}

// SetMissingConcept sets the "missing_concept" field.
func (_u *RemediationRecordUpdateOne) SetMissingConcept(v string) *RemediationRecordUpdateOne {
	_u.mutation.SetMissingConcept(v)
	return _u
}

// SetNillableMissingConcept sets the "missing_concept" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableMissingConcept(v *string) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetMissingConcept(*v)
	}
	return _u
}

// SetRootCause sets the "root_cause" field.
func (_u *RemediationRecordUpdateOne) SetRootCause(v string) *RemediationRecordUpdateOne {
	_u.mutation.SetRootCause(v)
	return _u
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableRootCause(v *string) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetRootCause(*v)
	}
	return _u
}

// SetJumpToSeconds sets the "jump_to_seconds" field.
func (_u *RemediationRecordUpdateOne) SetJumpToSeconds(v float64) *RemediationRecordUpdateOne {
	_u.mutation.ResetJumpToSeconds()
	_u.mutation.SetJumpToSeconds(v)
	return _u
}

// SetNillableJumpToSeconds sets the "jump_to_seconds" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableJumpToSeconds(v *float64) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetJumpToSeconds(*v)
	}
	return _u
}

// AddJumpToSeconds adds value to the "jump_to_seconds" field.
func (_u *RemediationRecordUpdateOne) AddJumpToSeconds(v float64) *RemediationRecordUpdateOne {
	_u.mutation.AddJumpToSeconds(v)
	return _u
}

// SetEndSeconds sets the "end_seconds" field.
func (_u *RemediationRecordUpdateOne) SetEndSeconds(v float64) *RemediationRecordUpdateOne {
	_u.mutation.ResetEndSeconds()
	_u.mutation.SetEndSeconds(v)
	return _u
}

// SetNillableEndSeconds sets the "end_seconds" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableEndSeconds(v *float64) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetEndSeconds(*v)
	}
	return _u
}

// AddEndSeconds adds value to the "end_seconds" field.
func (_u *RemediationRecordUpdateOne) AddEndSeconds(v float64) *RemediationRecordUpdateOne {
	_u.mutation.AddEndSeconds(v)
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *RemediationRecordUpdateOne) SetExplanation(v string) *RemediationRecordUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableExplanation(v *string) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetFollowUpQuestion sets the "follow_up_question" field.
func (_u *RemediationRecordUpdateOne) SetFollowUpQuestion(v string) *RemediationRecordUpdateOne {
	_u.mutation.SetFollowUpQuestion(v)
	return _u
}

// SetNillableFollowUpQuestion sets the "follow_up_question" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableFollowUpQuestion(v *string) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetFollowUpQuestion(*v)
	}
	return _u
}

// SetFollowUpAnswer sets the "follow_up_answer" field.
func (_u *RemediationRecordUpdateOne) SetFollowUpAnswer(v string) *RemediationRecordUpdateOne {
	_u.mutation.SetFollowUpAnswer(v)
	return _u
}

// SetNillableFollowUpAnswer sets the "follow_up_answer" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableFollowUpAnswer(v *string) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetFollowUpAnswer(*v)
	}
	return _u
}

// SetFollowUpAnswered sets the "follow_up_answered" field.
func (_u *RemediationRecordUpdateOne) SetFollowUpAnswered(v bool) *RemediationRecordUpdateOne {
	_u.mutation.SetFollowUpAnswered(v)
	return _u
}

// SetNillableFollowUpAnswered sets the "follow_up_answered" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableFollowUpAnswered(v *bool) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetFollowUpAnswered(*v)
	}
	return _u
}

// SetFollowUpCorrect sets the "follow_up_correct" field.
func (_u *RemediationRecordUpdateOne) SetFollowUpCorrect(v bool) *RemediationRecordUpdateOne {
	_u.mutation.SetFollowUpCorrect(v)
	return _u
}

// SetNillableFollowUpCorrect sets the "follow_up_correct" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableFollowUpCorrect(v *bool) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetFollowUpCorrect(*v)
	}
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *RemediationRecordUpdateOne) SetResolved(v bool) *RemediationRecordUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *RemediationRecordUpdateOne) SetNillableResolved(v *bool) *RemediationRecordUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// Mutation returns the RemediationRecordMutation object of the builder.
func (_u *RemediationRecordUpdateOne) Mutation() *RemediationRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the RemediationRecordUpdate builder.
func (_u *RemediationRecordUpdateOne) Where(ps ...predicate.RemediationRecord) *RemediationRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RemediationRecordUpdateOne) Select(field string, fields ...string) *RemediationRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RemediationRecord entity.
func (_u *RemediationRecordUpdateOne) Save(ctx context.Context) (*RemediationRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RemediationRecordUpdateOne) SaveX(ctx context.Context) *RemediationRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RemediationRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RemediationRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RemediationRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := remediationrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RemediationRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LectureID(); ok {
		if err := remediationrecord.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "RemediationRecord.lecture_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PausePointID(); ok {
		if err := remediationrecord.PausePointIDValidator(v); err != nil {
			return &ValidationError{Name: "pause_point_id", err: fmt.Errorf(`ent: validator failed for field "RemediationRecord.pause_point_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RemediationRecordUpdateOne) sqlSave(ctx context.Context) (_node *RemediationRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(remediationrecord.Table, remediationrecord.Columns, sqlgraph.NewFieldSpec(remediationrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RemediationRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, remediationrecord.FieldID)
		for _, f := range fields {
			if !remediationrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != remediationrecord.FieldID {
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
		_spec.SetField(remediationrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LectureID(); ok {
		_spec.SetField(remediationrecord.FieldLectureID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PausePointID(); ok {
		_spec.SetField(remediationrecord.FieldPausePointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Misconception(); ok {
		_spec.SetField(remediationrecord.FieldMisconception, field.TypeString, value)
	}
	if value, ok := _u.mutation.MissingConcept(); ok {
		_spec.SetField(remediationrecord.FieldMissingConcept, field.TypeString, value)
	}
	if value, ok := _u.mutation.RootCause(); ok {
		_spec.SetField(remediationrecord.FieldRootCause, field.TypeString, value)
	}
	if value, ok := _u.mutation.JumpToSeconds(); ok {
		_spec.SetField(remediationrecord.FieldJumpToSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedJumpToSeconds(); ok {
		_spec.AddField(remediationrecord.FieldJumpToSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EndSeconds(); ok {
		_spec.SetField(remediationrecord.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEndSeconds(); ok {
		_spec.AddField(remediationrecord.FieldEndSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(remediationrecord.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowUpQuestion(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowUpAnswer(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.FollowUpAnswered(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpAnswered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FollowUpCorrect(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(remediationrecord.FieldResolved, field.TypeBool, value)
	}
	_node = &RemediationRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remediationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
