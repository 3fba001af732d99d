// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lectio/ent/remediationrecord"
)

// RemediationRecordCreate is the builder for creating a RemediationRecord entity.
type RemediationRecordCreate struct {
	config
	mutation *RemediationRecordMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RemediationRecordCreate) SetSequence(v int64) *RemediationRecordCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RemediationRecordCreate) SetTimestamp(v time.Time) *RemediationRecordCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RemediationRecordCreate) SetNillableTimestamp(v *time.Time) *RemediationRecordCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *RemediationRecordCreate) SetLearnerID(v string) *RemediationRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLectureID sets the "lecture_id" field.
func (_c *RemediationRecordCreate) SetLectureID(v string) *RemediationRecordCreate {
	_c.mutation.SetLectureID(v)
	return _c
}

// SetPausePointID sets the "pause_point_id" field.
func (_c *RemediationRecordCreate) SetPausePointID(v string) *RemediationRecordCreate {
	_c.mutation.SetPausePointID(v)
	return _c
}

// SetMisconception sets the "misconception" field.
func (_c *RemediationRecordCreate) SetMisconception(v string) *RemediationRecordCreate {
	_c.mutation.SetMisconception(v)
	return _c
}

// SetMissingConcept sets the "missing_concept" field.
func (_c *RemediationRecordCreate) SetMissingConcept(v string) *RemediationRecordCreate {
	_c.mutation.SetMissingConcept(v)
	return _c
}

// SetRootCause sets the "root_cause" field.
func (_c *RemediationRecordCreate) SetRootCause(v string) *RemediationRecordCreate {
	_c.mutation.SetRootCause(v)
	return _c
}

// SetNillableRootCause sets the "root_cause" field if the given value is not nil.
func (_c *RemediationRecordCreate) SetNillableRootCause(v *string) *RemediationRecordCreate {
	if v != nil {
		_c.SetRootCause(*v)
	}
	return _c
}

// SetJumpToSeconds sets the "jump_to_seconds" field.
func (_c *RemediationRecordCreate) SetJumpToSeconds(v float64) *RemediationRecordCreate {
	_c.mutation.SetJumpToSeconds(v)
	return _c
}

// SetEndSeconds sets the "end_seconds" field.
func (_c *RemediationRecordCreate) SetEndSeconds(v float64) *RemediationRecordCreate {
	_c.mutation.SetEndSeconds(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *RemediationRecordCreate) SetExplanation(v string) *RemediationRecordCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetFollowUpQuestion sets the "follow_up_question" field.
func (_c *RemediationRecordCreate) SetFollowUpQuestion(v string) *RemediationRecordCreate {
	_c.mutation.SetFollowUpQuestion(v)
	return _c
}

// SetNillableFollowUpQuestion sets the "follow_up_question" field if the given value is not nil.
func (_c *RemediationRecordCreate) SetNillableFollowUpQuestion(v *string) *RemediationRecordCreate {
	if v != nil {
		_c.SetFollowUpQuestion(*v)
	}
	return _c
}

// SetFollowUpAnswer sets the "follow_up_answer" field.
func (_c *RemediationRecordCreate) SetFollowUpAnswer(v string) *RemediationRecordCreate {
	_c.mutation.SetFollowUpAnswer(v)
	return _c
}

// SetNillableFollowUpAnswer sets the "follow_up_answer" field if the given value is not nil.
func (_c *RemediationRecordCreate) SetNillableFollowUpAnswer(v *string) *RemediationRecordCreate {
	if v != nil {
		_c.SetFollowUpAnswer(*v)
	}
	return _c
}

// SetFollowUpAnswered sets the "follow_up_answered" field.
func (_c *RemediationRecordCreate) SetFollowUpAnswered(v bool) *RemediationRecordCreate {
	_c.mutation.SetFollowUpAnswered(v)
	return _c
}

// SetNillableFollowUpAnswered sets the "follow_up_answered" field if the given value is not nil.
func (_c *RemediationRecordCreate) SetNillableFollowUpAnswered(v *bool) *RemediationRecordCreate {
	if v != nil {
		_c.SetFollowUpAnswered(*v)
	}
	return _c
}

// SetFollowUpCorrect sets the "follow_up_correct" field.
func (_c *RemediationRecordCreate) SetFollowUpCorrect(v bool) *RemediationRecordCreate {
	_c.mutation.SetFollowUpCorrect(v)
	return _c
}

// SetNillableFollowUpCorrect sets the "follow_up_correct" field if the given value is not nil.
func (_c *RemediationRecordCreate) SetNillableFollowUpCorrect(v *bool) *RemediationRecordCreate {
	if v != nil {
		_c.SetFollowUpCorrect(*v)
	}
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *RemediationRecordCreate) SetResolved(v bool) *RemediationRecordCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *RemediationRecordCreate) SetNillableResolved(v *bool) *RemediationRecordCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// Mutation returns the RemediationRecordMutation object of the builder.
func (_c *RemediationRecordCreate) Mutation() *RemediationRecordMutation {
	return _c.mutation
}

// Save creates the RemediationRecord in the database.
func (_c *RemediationRecordCreate) Save(ctx context.Context) (*RemediationRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RemediationRecordCreate) SaveX(ctx context.Context) *RemediationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RemediationRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RemediationRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RemediationRecordCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := remediationrecord.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.RootCause(); !ok {
		v := remediationrecord.DefaultRootCause
		_c.mutation.SetRootCause(v)
	}
	if _, ok := _c.mutation.FollowUpQuestion(); !ok {
		v := remediationrecord.DefaultFollowUpQuestion
		_c.mutation.SetFollowUpQuestion(v)
	}
	if _, ok := _c.mutation.FollowUpAnswer(); !ok {
		v := remediationrecord.DefaultFollowUpAnswer
		_c.mutation.SetFollowUpAnswer(v)
	}
	if _, ok := _c.mutation.FollowUpAnswered(); !ok {
		v := remediationrecord.DefaultFollowUpAnswered
		_c.mutation.SetFollowUpAnswered(v)
	}
	if _, ok := _c.mutation.FollowUpCorrect(); !ok {
		v := remediationrecord.DefaultFollowUpCorrect
		_c.mutation.SetFollowUpCorrect(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := remediationrecord.DefaultResolved
		_c.mutation.SetResolved(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RemediationRecordCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RemediationRecord.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RemediationRecord.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "RemediationRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := remediationrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "RemediationRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LectureID(); !ok {
		return &ValidationError{Name: "lecture_id", err: errors.New(`ent: missing required field "RemediationRecord.lecture_id"`)}
	}
	if v, ok := _c.mutation.LectureID(); ok {
		if err := remediationrecord.LectureIDValidator(v); err != nil {
			return &ValidationError{Name: "lecture_id", err: fmt.Errorf(`ent: validator failed for field "RemediationRecord.lecture_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PausePointID(); !ok {
		return &ValidationError{Name: "pause_point_id", err: errors.New(`ent: missing required field "RemediationRecord.pause_point_id"`)}
	}
	if v, ok := _c.mutation.PausePointID(); ok {
		if err := remediationrecord.PausePointIDValidator(v); err != nil {
			return &ValidationError{Name: "pause_point_id", err: fmt.Errorf(`ent: validator failed for field "RemediationRecord.pause_point_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Misconception(); !ok {
		return &ValidationError{Name: "misconception", err: errors.New(`ent: missing required field "RemediationRecord.misconception"`)}
	}
	if _, ok := _c.mutation.MissingConcept(); !ok {
		return &ValidationError{Name: "missing_concept", err: errors.New(`ent: missing required field "RemediationRecord.missing_concept"`)}
	}
	if _, ok := _c.mutation.RootCause(); !ok {
		return &ValidationError{Name: "root_cause", err: errors.New(`ent: missing required field "RemediationRecord.root_cause"`)}
	}
	if _, ok := _c.mutation.JumpToSeconds(); !ok {
		return &ValidationError{Name: "jump_to_seconds", err: errors.New(`ent: missing required field "RemediationRecord.jump_to_seconds"`)}
	}
	if _, ok := _c.mutation.EndSeconds(); !ok {
		return &ValidationError{Name: "end_seconds", err: errors.New(`ent: missing required field "RemediationRecord.end_seconds"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "RemediationRecord.explanation"`)}
	}
	if _, ok := _c.mutation.FollowUpQuestion(); !ok {
		return &ValidationError{Name: "follow_up_question", err: errors.New(`ent: missing required field "RemediationRecord.follow_up_question"`)}
	}
	if _, ok := _c.mutation.FollowUpAnswer(); !ok {
		return &ValidationError{Name: "follow_up_answer", err: errors.New(`ent: missing required field "RemediationRecord.follow_up_answer"`)}
	}
	if _, ok := _c.mutation.FollowUpAnswered(); !ok {
		return &ValidationError{Name: "follow_up_answered", err: errors.New(`ent: missing required field "RemediationRecord.follow_up_answered"`)}
	}
	if _, ok := _c.mutation.FollowUpCorrect(); !ok {
		return &ValidationError{Name: "follow_up_correct", err: errors.New(`ent: missing required field "RemediationRecord.follow_up_correct"`)}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "RemediationRecord.resolved"`)}
	}
	return nil
}

func (_c *RemediationRecordCreate) sqlSave(ctx context.Context) (*RemediationRecord, error) {
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

func (_c *RemediationRecordCreate) createSpec() (*RemediationRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &RemediationRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(remediationrecord.Table, sqlgraph.NewFieldSpec(remediationrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(remediationrecord.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(remediationrecord.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(remediationrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.LectureID(); ok {
		_spec.SetField(remediationrecord.FieldLectureID, field.TypeString, value)
		_node.LectureID = value
	}
	if value, ok := _c.mutation.PausePointID(); ok {
		_spec.SetField(remediationrecord.FieldPausePointID, field.TypeString, value)
		_node.PausePointID = value
	}
	if value, ok := _c.mutation.Misconception(); ok {
		_spec.SetField(remediationrecord.FieldMisconception, field.TypeString, value)
		_node.Misconception = value
	}
	if value, ok := _c.mutation.MissingConcept(); ok {
		_spec.SetField(remediationrecord.FieldMissingConcept, field.TypeString, value)
		_node.MissingConcept = value
	}
	if value, ok := _c.mutation.RootCause(); ok {
		_spec.SetField(remediationrecord.FieldRootCause, field.TypeString, value)
		_node.RootCause = value
	}
	if value, ok := _c.mutation.JumpToSeconds(); ok {
		_spec.SetField(remediationrecord.FieldJumpToSeconds, field.TypeFloat64, value)
		_node.JumpToSeconds = value
	}
	if value, ok := _c.mutation.EndSeconds(); ok {
		_spec.SetField(remediationrecord.FieldEndSeconds, field.TypeFloat64, value)
		_node.EndSeconds = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(remediationrecord.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.FollowUpQuestion(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpQuestion, field.TypeString, value)
		_node.FollowUpQuestion = value
	}
	if value, ok := _c.mutation.FollowUpAnswer(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpAnswer, field.TypeString, value)
		_node.FollowUpAnswer = value
	}
	if value, ok := _c.mutation.FollowUpAnswered(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpAnswered, field.TypeBool, value)
		_node.FollowUpAnswered = value
	}
	if value, ok := _c.mutation.FollowUpCorrect(); ok {
		_spec.SetField(remediationrecord.FieldFollowUpCorrect, field.TypeBool, value)
		_node.FollowUpCorrect = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(remediationrecord.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	return _node, _spec
}

// RemediationRecordCreateBulk is the builder for creating many RemediationRecord entities in bulk.
type RemediationRecordCreateBulk struct {
	config
	err      error
	builders []*RemediationRecordCreate
}

// Save creates the RemediationRecord entities in the database.
func (_c *RemediationRecordCreateBulk) Save(ctx context.Context) ([]*RemediationRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RemediationRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RemediationRecordMutation)
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
func (_c *RemediationRecordCreateBulk) SaveX(ctx context.Context) []*RemediationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RemediationRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RemediationRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
