// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/attemptevent"
	"github.com/abhisek/lectio/ent/lectureprogress"
	"github.com/abhisek/lectio/ent/llmrequestevent"
	"github.com/abhisek/lectio/ent/playbackevent"
	"github.com/abhisek/lectio/ent/predicate"
	"github.com/abhisek/lectio/ent/remediationrecord"
	"github.com/abhisek/lectio/ent/reviewrecord"
	"github.com/abhisek/lectio/ent/schema"
	"github.com/abhisek/lectio/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttemptEvent      = "AttemptEvent"
	TypeLLMRequestEvent   = "LLMRequestEvent"
	TypeLectureProgress   = "LectureProgress"
	TypePlaybackEvent     = "PlaybackEvent"
	TypeRemediationRecord = "RemediationRecord"
	TypeReviewRecord      = "ReviewRecord"
	TypeSessionEvent      = "SessionEvent"
)

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	sequence       *int64
	addsequence    *int64
	timestamp      *time.Time
	session_id     *string
	learner_id     *string
	item_id        *string
	lecture_id     *string
	pause_point_id *string
	answer         *string
	confidence     *string
	correct        *bool
	grade          *int
	addgrade       *int
	points         *int
	addpoints      *int
	time_ms        *int
	addtime_ms     *int
	needs_review   *bool
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AttemptEvent, error)
	predicates     []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AttemptEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AttemptEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AttemptEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *AttemptEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *AttemptEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *AttemptEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetItemID sets the "item_id" field.
func (m *AttemptEventMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *AttemptEventMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *AttemptEventMutation) ResetItemID() {
	m.item_id = nil
}

// SetLectureID sets the "lecture_id" field.
func (m *AttemptEventMutation) SetLectureID(s string) {
	m.lecture_id = &s
}

// LectureID returns the value of the "lecture_id" field in the mutation.
func (m *AttemptEventMutation) LectureID() (r string, exists bool) {
	v := m.lecture_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLectureID returns the old "lecture_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldLectureID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLectureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLectureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLectureID: %w", err)
	}
	return oldValue.LectureID, nil
}

// ResetLectureID resets all changes to the "lecture_id" field.
func (m *AttemptEventMutation) ResetLectureID() {
	m.lecture_id = nil
}

// SetPausePointID sets the "pause_point_id" field.
func (m *AttemptEventMutation) SetPausePointID(s string) {
	m.pause_point_id = &s
}

// PausePointID returns the value of the "pause_point_id" field in the mutation.
func (m *AttemptEventMutation) PausePointID() (r string, exists bool) {
	v := m.pause_point_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPausePointID returns the old "pause_point_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldPausePointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPausePointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPausePointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPausePointID: %w", err)
	}
	return oldValue.PausePointID, nil
}

// ResetPausePointID resets all changes to the "pause_point_id" field.
func (m *AttemptEventMutation) ResetPausePointID() {
	m.pause_point_id = nil
}

// SetAnswer sets the "answer" field.
func (m *AttemptEventMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *AttemptEventMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *AttemptEventMutation) ResetAnswer() {
	m.answer = nil
}

// SetConfidence sets the "confidence" field.
func (m *AttemptEventMutation) SetConfidence(s string) {
	m.confidence = &s
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AttemptEventMutation) Confidence() (r string, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldConfidence(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AttemptEventMutation) ResetConfidence() {
	m.confidence = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetGrade sets the "grade" field.
func (m *AttemptEventMutation) SetGrade(i int) {
	m.grade = &i
	m.addgrade = nil
}

// Grade returns the value of the "grade" field in the mutation.
func (m *AttemptEventMutation) Grade() (r int, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldGrade(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// AddGrade adds i to the "grade" field.
func (m *AttemptEventMutation) AddGrade(i int) {
	if m.addgrade != nil {
		*m.addgrade += i
	} else {
		m.addgrade = &i
	}
}

// AddedGrade returns the value that was added to the "grade" field in this mutation.
func (m *AttemptEventMutation) AddedGrade() (r int, exists bool) {
	v := m.addgrade
	if v == nil {
		return
	}
	return *v, true
}

// ClearGrade clears the value of the "grade" field.
func (m *AttemptEventMutation) ClearGrade() {
	m.grade = nil
	m.addgrade = nil
	m.clearedFields[attemptevent.FieldGrade] = struct{}{}
}

// GradeCleared returns if the "grade" field was cleared in this mutation.
func (m *AttemptEventMutation) GradeCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldGrade]
	return ok
}

// ResetGrade resets all changes to the "grade" field.
func (m *AttemptEventMutation) ResetGrade() {
	m.grade = nil
	m.addgrade = nil
	delete(m.clearedFields, attemptevent.FieldGrade)
}

// SetPoints sets the "points" field.
func (m *AttemptEventMutation) SetPoints(i int) {
	m.points = &i
	m.addpoints = nil
}

// Points returns the value of the "points" field in the mutation.
func (m *AttemptEventMutation) Points() (r int, exists bool) {
	v := m.points
	if v == nil {
		return
	}
	return *v, true
}

// OldPoints returns the old "points" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPoints: %w", err)
	}
	return oldValue.Points, nil
}

// AddPoints adds i to the "points" field.
func (m *AttemptEventMutation) AddPoints(i int) {
	if m.addpoints != nil {
		*m.addpoints += i
	} else {
		m.addpoints = &i
	}
}

// AddedPoints returns the value that was added to the "points" field in this mutation.
func (m *AttemptEventMutation) AddedPoints() (r int, exists bool) {
	v := m.addpoints
	if v == nil {
		return
	}
	return *v, true
}

// ResetPoints resets all changes to the "points" field.
func (m *AttemptEventMutation) ResetPoints() {
	m.points = nil
	m.addpoints = nil
}

// SetTimeMs sets the "time_ms" field.
func (m *AttemptEventMutation) SetTimeMs(i int) {
	m.time_ms = &i
	m.addtime_ms = nil
}

// TimeMs returns the value of the "time_ms" field in the mutation.
func (m *AttemptEventMutation) TimeMs() (r int, exists bool) {
	v := m.time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeMs returns the old "time_ms" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeMs: %w", err)
	}
	return oldValue.TimeMs, nil
}

// AddTimeMs adds i to the "time_ms" field.
func (m *AttemptEventMutation) AddTimeMs(i int) {
	if m.addtime_ms != nil {
		*m.addtime_ms += i
	} else {
		m.addtime_ms = &i
	}
}

// AddedTimeMs returns the value that was added to the "time_ms" field in this mutation.
func (m *AttemptEventMutation) AddedTimeMs() (r int, exists bool) {
	v := m.addtime_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeMs resets all changes to the "time_ms" field.
func (m *AttemptEventMutation) ResetTimeMs() {
	m.time_ms = nil
	m.addtime_ms = nil
}

// SetNeedsReview sets the "needs_review" field.
func (m *AttemptEventMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *AttemptEventMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *AttemptEventMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, attemptevent.FieldSessionID)
	}
	if m.learner_id != nil {
		fields = append(fields, attemptevent.FieldLearnerID)
	}
	if m.item_id != nil {
		fields = append(fields, attemptevent.FieldItemID)
	}
	if m.lecture_id != nil {
		fields = append(fields, attemptevent.FieldLectureID)
	}
	if m.pause_point_id != nil {
		fields = append(fields, attemptevent.FieldPausePointID)
	}
	if m.answer != nil {
		fields = append(fields, attemptevent.FieldAnswer)
	}
	if m.confidence != nil {
		fields = append(fields, attemptevent.FieldConfidence)
	}
	if m.correct != nil {
		fields = append(fields, attemptevent.FieldCorrect)
	}
	if m.grade != nil {
		fields = append(fields, attemptevent.FieldGrade)
	}
	if m.points != nil {
		fields = append(fields, attemptevent.FieldPoints)
	}
	if m.time_ms != nil {
		fields = append(fields, attemptevent.FieldTimeMs)
	}
	if m.needs_review != nil {
		fields = append(fields, attemptevent.FieldNeedsReview)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldSessionID:
		return m.SessionID()
	case attemptevent.FieldLearnerID:
		return m.LearnerID()
	case attemptevent.FieldItemID:
		return m.ItemID()
	case attemptevent.FieldLectureID:
		return m.LectureID()
	case attemptevent.FieldPausePointID:
		return m.PausePointID()
	case attemptevent.FieldAnswer:
		return m.Answer()
	case attemptevent.FieldConfidence:
		return m.Confidence()
	case attemptevent.FieldCorrect:
		return m.Correct()
	case attemptevent.FieldGrade:
		return m.Grade()
	case attemptevent.FieldPoints:
		return m.Points()
	case attemptevent.FieldTimeMs:
		return m.TimeMs()
	case attemptevent.FieldNeedsReview:
		return m.NeedsReview()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case attemptevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case attemptevent.FieldItemID:
		return m.OldItemID(ctx)
	case attemptevent.FieldLectureID:
		return m.OldLectureID(ctx)
	case attemptevent.FieldPausePointID:
		return m.OldPausePointID(ctx)
	case attemptevent.FieldAnswer:
		return m.OldAnswer(ctx)
	case attemptevent.FieldConfidence:
		return m.OldConfidence(ctx)
	case attemptevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case attemptevent.FieldGrade:
		return m.OldGrade(ctx)
	case attemptevent.FieldPoints:
		return m.OldPoints(ctx)
	case attemptevent.FieldTimeMs:
		return m.OldTimeMs(ctx)
	case attemptevent.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case attemptevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case attemptevent.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case attemptevent.FieldLectureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLectureID(v)
		return nil
	case attemptevent.FieldPausePointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPausePointID(v)
		return nil
	case attemptevent.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case attemptevent.FieldConfidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case attemptevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attemptevent.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case attemptevent.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPoints(v)
		return nil
	case attemptevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeMs(v)
		return nil
	case attemptevent.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.addgrade != nil {
		fields = append(fields, attemptevent.FieldGrade)
	}
	if m.addpoints != nil {
		fields = append(fields, attemptevent.FieldPoints)
	}
	if m.addtime_ms != nil {
		fields = append(fields, attemptevent.FieldTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	case attemptevent.FieldGrade:
		return m.AddedGrade()
	case attemptevent.FieldPoints:
		return m.AddedPoints()
	case attemptevent.FieldTimeMs:
		return m.AddedTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attemptevent.FieldGrade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrade(v)
		return nil
	case attemptevent.FieldPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPoints(v)
		return nil
	case attemptevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attemptevent.FieldGrade) {
		fields = append(fields, attemptevent.FieldGrade)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	switch name {
	case attemptevent.FieldGrade:
		m.ClearGrade()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case attemptevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case attemptevent.FieldItemID:
		m.ResetItemID()
		return nil
	case attemptevent.FieldLectureID:
		m.ResetLectureID()
		return nil
	case attemptevent.FieldPausePointID:
		m.ResetPausePointID()
		return nil
	case attemptevent.FieldAnswer:
		m.ResetAnswer()
		return nil
	case attemptevent.FieldConfidence:
		m.ResetConfidence()
		return nil
	case attemptevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attemptevent.FieldGrade:
		m.ResetGrade()
		return nil
	case attemptevent.FieldPoints:
		m.ResetPoints()
		return nil
	case attemptevent.FieldTimeMs:
		m.ResetTimeMs()
		return nil
	case attemptevent.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LectureProgressMutation represents an operation that mutates the LectureProgress nodes in the graph.
type LectureProgressMutation struct {
	config
	op                           Op
	typ                          string
	id                           *int
	learner_id                   *string
	lecture_id                   *string
	video_position               *float64
	addvideo_position            *float64
	completed_pause_points       *[]string
	appendcompleted_pause_points []string
	responses                    *map[string]schema.PausePointResponse
	total_points_earned          *int
	addtotal_points_earned       *int
	completed_at                 *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*LectureProgress, error)
	predicates                   []predicate.LectureProgress
}

var _ ent.Mutation = (*LectureProgressMutation)(nil)

// lectureprogressOption allows management of the mutation configuration using functional options.
type lectureprogressOption func(*LectureProgressMutation)

// newLectureProgressMutation creates new mutation for the LectureProgress entity.
func newLectureProgressMutation(c config, op Op, opts ...lectureprogressOption) *LectureProgressMutation {
	m := &LectureProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeLectureProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLectureProgressID sets the ID field of the mutation.
func withLectureProgressID(id int) lectureprogressOption {
	return func(m *LectureProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *LectureProgress
		)
		m.oldValue = func(ctx context.Context) (*LectureProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LectureProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLectureProgress sets the old LectureProgress of the mutation.
func withLectureProgress(node *LectureProgress) lectureprogressOption {
	return func(m *LectureProgressMutation) {
		m.oldValue = func(context.Context) (*LectureProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LectureProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LectureProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LectureProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LectureProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LectureProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *LectureProgressMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LectureProgressMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the LectureProgress entity.
// If the LectureProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LectureProgressMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LectureProgressMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLectureID sets the "lecture_id" field.
func (m *LectureProgressMutation) SetLectureID(s string) {
	m.lecture_id = &s
}

// LectureID returns the value of the "lecture_id" field in the mutation.
func (m *LectureProgressMutation) LectureID() (r string, exists bool) {
	v := m.lecture_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLectureID returns the old "lecture_id" field's value of the LectureProgress entity.
// If the LectureProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LectureProgressMutation) OldLectureID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLectureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLectureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLectureID: %w", err)
	}
	return oldValue.LectureID, nil
}

// ResetLectureID resets all changes to the "lecture_id" field.
func (m *LectureProgressMutation) ResetLectureID() {
	m.lecture_id = nil
}

// SetVideoPosition sets the "video_position" field.
func (m *LectureProgressMutation) SetVideoPosition(f float64) {
	m.video_position = &f
	m.addvideo_position = nil
}

// VideoPosition returns the value of the "video_position" field in the mutation.
func (m *LectureProgressMutation) VideoPosition() (r float64, exists bool) {
	v := m.video_position
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoPosition returns the old "video_position" field's value of the LectureProgress entity.
// If the LectureProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LectureProgressMutation) OldVideoPosition(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoPosition: %w", err)
	}
	return oldValue.VideoPosition, nil
}

// AddVideoPosition adds f to the "video_position" field.
func (m *LectureProgressMutation) AddVideoPosition(f float64) {
	if m.addvideo_position != nil {
		*m.addvideo_position += f
	} else {
		m.addvideo_position = &f
	}
}

// AddedVideoPosition returns the value that was added to the "video_position" field in this mutation.
func (m *LectureProgressMutation) AddedVideoPosition() (r float64, exists bool) {
	v := m.addvideo_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetVideoPosition resets all changes to the "video_position" field.
func (m *LectureProgressMutation) ResetVideoPosition() {
	m.video_position = nil
	m.addvideo_position = nil
}

// SetCompletedPausePoints sets the "completed_pause_points" field.
func (m *LectureProgressMutation) SetCompletedPausePoints(s []string) {
	m.completed_pause_points = &s
	m.appendcompleted_pause_points = nil
}

// CompletedPausePoints returns the value of the "completed_pause_points" field in the mutation.
func (m *LectureProgressMutation) CompletedPausePoints() (r []string, exists bool) {
	v := m.completed_pause_points
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedPausePoints returns the old "completed_pause_points" field's value of the LectureProgress entity.
// If the LectureProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LectureProgressMutation) OldCompletedPausePoints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedPausePoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedPausePoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedPausePoints: %w", err)
	}
	return oldValue.CompletedPausePoints, nil
}

// AppendCompletedPausePoints adds s to the "completed_pause_points" field.
func (m *LectureProgressMutation) AppendCompletedPausePoints(s []string) {
	m.appendcompleted_pause_points = append(m.appendcompleted_pause_points, s...)
}

// AppendedCompletedPausePoints returns the list of values that were appended to the "completed_pause_points" field in this mutation.
func (m *LectureProgressMutation) AppendedCompletedPausePoints() ([]string, bool) {
	if len(m.appendcompleted_pause_points) == 0 {
		return nil, false
	}
	return m.appendcompleted_pause_points, true
}

// ClearCompletedPausePoints clears the value of the "completed_pause_points" field.
func (m *LectureProgressMutation) ClearCompletedPausePoints() {
	m.completed_pause_points = nil
	m.appendcompleted_pause_points = nil
	m.clearedFields[lectureprogress.FieldCompletedPausePoints] = struct{}{}
}

// CompletedPausePointsCleared returns if the "completed_pause_points" field was cleared in this mutation.
func (m *LectureProgressMutation) CompletedPausePointsCleared() bool {
	_, ok := m.clearedFields[lectureprogress.FieldCompletedPausePoints]
	return ok
}

// ResetCompletedPausePoints resets all changes to the "completed_pause_points" field.
func (m *LectureProgressMutation) ResetCompletedPausePoints() {
	m.completed_pause_points = nil
	m.appendcompleted_pause_points = nil
	delete(m.clearedFields, lectureprogress.FieldCompletedPausePoints)
}

// SetResponses sets the "responses" field.
func (m *LectureProgressMutation) SetResponses(mpr map[string]schema.PausePointResponse) {
	m.responses = &mpr
}

// Responses returns the value of the "responses" field in the mutation.
func (m *LectureProgressMutation) Responses() (r map[string]schema.PausePointResponse, exists bool) {
	v := m.responses
	if v == nil {
		return
	}
	return *v, true
}

// OldResponses returns the old "responses" field's value of the LectureProgress entity.
// If the LectureProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LectureProgressMutation) OldResponses(ctx context.Context) (v map[string]schema.PausePointResponse, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponses: %w", err)
	}
	return oldValue.Responses, nil
}

// ClearResponses clears the value of the "responses" field.
func (m *LectureProgressMutation) ClearResponses() {
	m.responses = nil
	m.clearedFields[lectureprogress.FieldResponses] = struct{}{}
}

// ResponsesCleared returns if the "responses" field was cleared in this mutation.
func (m *LectureProgressMutation) ResponsesCleared() bool {
	_, ok := m.clearedFields[lectureprogress.FieldResponses]
	return ok
}

// ResetResponses resets all changes to the "responses" field.
func (m *LectureProgressMutation) ResetResponses() {
	m.responses = nil
	delete(m.clearedFields, lectureprogress.FieldResponses)
}

// SetTotalPointsEarned sets the "total_points_earned" field.
func (m *LectureProgressMutation) SetTotalPointsEarned(i int) {
	m.total_points_earned = &i
	m.addtotal_points_earned = nil
}

// TotalPointsEarned returns the value of the "total_points_earned" field in the mutation.
func (m *LectureProgressMutation) TotalPointsEarned() (r int, exists bool) {
	v := m.total_points_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPointsEarned returns the old "total_points_earned" field's value of the LectureProgress entity.
// If the LectureProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LectureProgressMutation) OldTotalPointsEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPointsEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPointsEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPointsEarned: %w", err)
	}
	return oldValue.TotalPointsEarned, nil
}

// AddTotalPointsEarned adds i to the "total_points_earned" field.
func (m *LectureProgressMutation) AddTotalPointsEarned(i int) {
	if m.addtotal_points_earned != nil {
		*m.addtotal_points_earned += i
	} else {
		m.addtotal_points_earned = &i
	}
}

// AddedTotalPointsEarned returns the value that was added to the "total_points_earned" field in this mutation.
func (m *LectureProgressMutation) AddedTotalPointsEarned() (r int, exists bool) {
	v := m.addtotal_points_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPointsEarned resets all changes to the "total_points_earned" field.
func (m *LectureProgressMutation) ResetTotalPointsEarned() {
	m.total_points_earned = nil
	m.addtotal_points_earned = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *LectureProgressMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LectureProgressMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the LectureProgress entity.
// If the LectureProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LectureProgressMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *LectureProgressMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[lectureprogress.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *LectureProgressMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[lectureprogress.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LectureProgressMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, lectureprogress.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LectureProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LectureProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LectureProgress entity.
// If the LectureProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LectureProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LectureProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LectureProgressMutation builder.
func (m *LectureProgressMutation) Where(ps ...predicate.LectureProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LectureProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LectureProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LectureProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LectureProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LectureProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LectureProgress).
func (m *LectureProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LectureProgressMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.learner_id != nil {
		fields = append(fields, lectureprogress.FieldLearnerID)
	}
	if m.lecture_id != nil {
		fields = append(fields, lectureprogress.FieldLectureID)
	}
	if m.video_position != nil {
		fields = append(fields, lectureprogress.FieldVideoPosition)
	}
	if m.completed_pause_points != nil {
		fields = append(fields, lectureprogress.FieldCompletedPausePoints)
	}
	if m.responses != nil {
		fields = append(fields, lectureprogress.FieldResponses)
	}
	if m.total_points_earned != nil {
		fields = append(fields, lectureprogress.FieldTotalPointsEarned)
	}
	if m.completed_at != nil {
		fields = append(fields, lectureprogress.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lectureprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LectureProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lectureprogress.FieldLearnerID:
		return m.LearnerID()
	case lectureprogress.FieldLectureID:
		return m.LectureID()
	case lectureprogress.FieldVideoPosition:
		return m.VideoPosition()
	case lectureprogress.FieldCompletedPausePoints:
		return m.CompletedPausePoints()
	case lectureprogress.FieldResponses:
		return m.Responses()
	case lectureprogress.FieldTotalPointsEarned:
		return m.TotalPointsEarned()
	case lectureprogress.FieldCompletedAt:
		return m.CompletedAt()
	case lectureprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LectureProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lectureprogress.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case lectureprogress.FieldLectureID:
		return m.OldLectureID(ctx)
	case lectureprogress.FieldVideoPosition:
		return m.OldVideoPosition(ctx)
	case lectureprogress.FieldCompletedPausePoints:
		return m.OldCompletedPausePoints(ctx)
	case lectureprogress.FieldResponses:
		return m.OldResponses(ctx)
	case lectureprogress.FieldTotalPointsEarned:
		return m.OldTotalPointsEarned(ctx)
	case lectureprogress.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case lectureprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LectureProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LectureProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lectureprogress.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case lectureprogress.FieldLectureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLectureID(v)
		return nil
	case lectureprogress.FieldVideoPosition:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoPosition(v)
		return nil
	case lectureprogress.FieldCompletedPausePoints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedPausePoints(v)
		return nil
	case lectureprogress.FieldResponses:
		v, ok := value.(map[string]schema.PausePointResponse)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponses(v)
		return nil
	case lectureprogress.FieldTotalPointsEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPointsEarned(v)
		return nil
	case lectureprogress.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case lectureprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LectureProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LectureProgressMutation) AddedFields() []string {
	var fields []string
	if m.addvideo_position != nil {
		fields = append(fields, lectureprogress.FieldVideoPosition)
	}
	if m.addtotal_points_earned != nil {
		fields = append(fields, lectureprogress.FieldTotalPointsEarned)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LectureProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lectureprogress.FieldVideoPosition:
		return m.AddedVideoPosition()
	case lectureprogress.FieldTotalPointsEarned:
		return m.AddedTotalPointsEarned()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LectureProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lectureprogress.FieldVideoPosition:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVideoPosition(v)
		return nil
	case lectureprogress.FieldTotalPointsEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPointsEarned(v)
		return nil
	}
	return fmt.Errorf("unknown LectureProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LectureProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lectureprogress.FieldCompletedPausePoints) {
		fields = append(fields, lectureprogress.FieldCompletedPausePoints)
	}
	if m.FieldCleared(lectureprogress.FieldResponses) {
		fields = append(fields, lectureprogress.FieldResponses)
	}
	if m.FieldCleared(lectureprogress.FieldCompletedAt) {
		fields = append(fields, lectureprogress.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LectureProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LectureProgressMutation) ClearField(name string) error {
	switch name {
	case lectureprogress.FieldCompletedPausePoints:
		m.ClearCompletedPausePoints()
		return nil
	case lectureprogress.FieldResponses:
		m.ClearResponses()
		return nil
	case lectureprogress.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LectureProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LectureProgressMutation) ResetField(name string) error {
	switch name {
	case lectureprogress.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case lectureprogress.FieldLectureID:
		m.ResetLectureID()
		return nil
	case lectureprogress.FieldVideoPosition:
		m.ResetVideoPosition()
		return nil
	case lectureprogress.FieldCompletedPausePoints:
		m.ResetCompletedPausePoints()
		return nil
	case lectureprogress.FieldResponses:
		m.ResetResponses()
		return nil
	case lectureprogress.FieldTotalPointsEarned:
		m.ResetTotalPointsEarned()
		return nil
	case lectureprogress.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case lectureprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LectureProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LectureProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LectureProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LectureProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LectureProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LectureProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LectureProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LectureProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LectureProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LectureProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LectureProgress edge %s", name)
}

// PlaybackEventMutation represents an operation that mutates the PlaybackEvent nodes in the graph.
type PlaybackEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	sequence             *int64
	addsequence          *int64
	timestamp            *time.Time
	session_id           *string
	learner_id           *string
	lecture_id           *string
	kind                 *string
	from_seconds         *float64
	addfrom_seconds      *float64
	to_seconds           *float64
	addto_seconds        *float64
	requested_seconds    *float64
	addrequested_seconds *float64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*PlaybackEvent, error)
	predicates           []predicate.PlaybackEvent
}

var _ ent.Mutation = (*PlaybackEventMutation)(nil)

// playbackeventOption allows management of the mutation configuration using functional options.
type playbackeventOption func(*PlaybackEventMutation)

// newPlaybackEventMutation creates new mutation for the PlaybackEvent entity.
func newPlaybackEventMutation(c config, op Op, opts ...playbackeventOption) *PlaybackEventMutation {
	m := &PlaybackEventMutation{
		config:        c,
		op:            op,
		typ:           TypePlaybackEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlaybackEventID sets the ID field of the mutation.
func withPlaybackEventID(id int) playbackeventOption {
	return func(m *PlaybackEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PlaybackEvent
		)
		m.oldValue = func(ctx context.Context) (*PlaybackEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlaybackEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlaybackEvent sets the old PlaybackEvent of the mutation.
func withPlaybackEvent(node *PlaybackEvent) playbackeventOption {
	return func(m *PlaybackEventMutation) {
		m.oldValue = func(context.Context) (*PlaybackEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlaybackEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlaybackEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlaybackEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlaybackEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlaybackEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *PlaybackEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *PlaybackEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the PlaybackEvent entity.
// If the PlaybackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybackEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *PlaybackEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *PlaybackEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *PlaybackEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PlaybackEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PlaybackEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PlaybackEvent entity.
// If the PlaybackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybackEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PlaybackEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *PlaybackEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PlaybackEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PlaybackEvent entity.
// If the PlaybackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybackEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PlaybackEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *PlaybackEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *PlaybackEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the PlaybackEvent entity.
// If the PlaybackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybackEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *PlaybackEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLectureID sets the "lecture_id" field.
func (m *PlaybackEventMutation) SetLectureID(s string) {
	m.lecture_id = &s
}

// LectureID returns the value of the "lecture_id" field in the mutation.
func (m *PlaybackEventMutation) LectureID() (r string, exists bool) {
	v := m.lecture_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLectureID returns the old "lecture_id" field's value of the PlaybackEvent entity.
// If the PlaybackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybackEventMutation) OldLectureID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLectureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLectureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLectureID: %w", err)
	}
	return oldValue.LectureID, nil
}

// ResetLectureID resets all changes to the "lecture_id" field.
func (m *PlaybackEventMutation) ResetLectureID() {
	m.lecture_id = nil
}

// SetKind sets the "kind" field.
func (m *PlaybackEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *PlaybackEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the PlaybackEvent entity.
// If the PlaybackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybackEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *PlaybackEventMutation) ResetKind() {
	m.kind = nil
}

// SetFromSeconds sets the "from_seconds" field.
func (m *PlaybackEventMutation) SetFromSeconds(f float64) {
	m.from_seconds = &f
	m.addfrom_seconds = nil
}

// FromSeconds returns the value of the "from_seconds" field in the mutation.
func (m *PlaybackEventMutation) FromSeconds() (r float64, exists bool) {
	v := m.from_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldFromSeconds returns the old "from_seconds" field's value of the PlaybackEvent entity.
// If the PlaybackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybackEventMutation) OldFromSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromSeconds: %w", err)
	}
	return oldValue.FromSeconds, nil
}

// AddFromSeconds adds f to the "from_seconds" field.
func (m *PlaybackEventMutation) AddFromSeconds(f float64) {
	if m.addfrom_seconds != nil {
		*m.addfrom_seconds += f
	} else {
		m.addfrom_seconds = &f
	}
}

// AddedFromSeconds returns the value that was added to the "from_seconds" field in this mutation.
func (m *PlaybackEventMutation) AddedFromSeconds() (r float64, exists bool) {
	v := m.addfrom_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetFromSeconds resets all changes to the "from_seconds" field.
func (m *PlaybackEventMutation) ResetFromSeconds() {
	m.from_seconds = nil
	m.addfrom_seconds = nil
}

// SetToSeconds sets the "to_seconds" field.
func (m *PlaybackEventMutation) SetToSeconds(f float64) {
	m.to_seconds = &f
	m.addto_seconds = nil
}

// ToSeconds returns the value of the "to_seconds" field in the mutation.
func (m *PlaybackEventMutation) ToSeconds() (r float64, exists bool) {
	v := m.to_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldToSeconds returns the old "to_seconds" field's value of the PlaybackEvent entity.
// If the PlaybackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybackEventMutation) OldToSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToSeconds: %w", err)
	}
	return oldValue.ToSeconds, nil
}

// AddToSeconds adds f to the "to_seconds" field.
func (m *PlaybackEventMutation) AddToSeconds(f float64) {
	if m.addto_seconds != nil {
		*m.addto_seconds += f
	} else {
		m.addto_seconds = &f
	}
}

// AddedToSeconds returns the value that was added to the "to_seconds" field in this mutation.
func (m *PlaybackEventMutation) AddedToSeconds() (r float64, exists bool) {
	v := m.addto_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetToSeconds resets all changes to the "to_seconds" field.
func (m *PlaybackEventMutation) ResetToSeconds() {
	m.to_seconds = nil
	m.addto_seconds = nil
}

// SetRequestedSeconds sets the "requested_seconds" field.
func (m *PlaybackEventMutation) SetRequestedSeconds(f float64) {
	m.requested_seconds = &f
	m.addrequested_seconds = nil
}

// RequestedSeconds returns the value of the "requested_seconds" field in the mutation.
func (m *PlaybackEventMutation) RequestedSeconds() (r float64, exists bool) {
	v := m.requested_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedSeconds returns the old "requested_seconds" field's value of the PlaybackEvent entity.
// If the PlaybackEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybackEventMutation) OldRequestedSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedSeconds: %w", err)
	}
	return oldValue.RequestedSeconds, nil
}

// AddRequestedSeconds adds f to the "requested_seconds" field.
func (m *PlaybackEventMutation) AddRequestedSeconds(f float64) {
	if m.addrequested_seconds != nil {
		*m.addrequested_seconds += f
	} else {
		m.addrequested_seconds = &f
	}
}

// AddedRequestedSeconds returns the value that was added to the "requested_seconds" field in this mutation.
func (m *PlaybackEventMutation) AddedRequestedSeconds() (r float64, exists bool) {
	v := m.addrequested_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestedSeconds resets all changes to the "requested_seconds" field.
func (m *PlaybackEventMutation) ResetRequestedSeconds() {
	m.requested_seconds = nil
	m.addrequested_seconds = nil
}

// Where appends a list predicates to the PlaybackEventMutation builder.
func (m *PlaybackEventMutation) Where(ps ...predicate.PlaybackEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlaybackEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlaybackEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlaybackEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlaybackEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlaybackEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlaybackEvent).
func (m *PlaybackEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlaybackEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, playbackevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, playbackevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, playbackevent.FieldSessionID)
	}
	if m.learner_id != nil {
		fields = append(fields, playbackevent.FieldLearnerID)
	}
	if m.lecture_id != nil {
		fields = append(fields, playbackevent.FieldLectureID)
	}
	if m.kind != nil {
		fields = append(fields, playbackevent.FieldKind)
	}
	if m.from_seconds != nil {
		fields = append(fields, playbackevent.FieldFromSeconds)
	}
	if m.to_seconds != nil {
		fields = append(fields, playbackevent.FieldToSeconds)
	}
	if m.requested_seconds != nil {
		fields = append(fields, playbackevent.FieldRequestedSeconds)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlaybackEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case playbackevent.FieldSequence:
		return m.Sequence()
	case playbackevent.FieldTimestamp:
		return m.Timestamp()
	case playbackevent.FieldSessionID:
		return m.SessionID()
	case playbackevent.FieldLearnerID:
		return m.LearnerID()
	case playbackevent.FieldLectureID:
		return m.LectureID()
	case playbackevent.FieldKind:
		return m.Kind()
	case playbackevent.FieldFromSeconds:
		return m.FromSeconds()
	case playbackevent.FieldToSeconds:
		return m.ToSeconds()
	case playbackevent.FieldRequestedSeconds:
		return m.RequestedSeconds()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlaybackEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case playbackevent.FieldSequence:
		return m.OldSequence(ctx)
	case playbackevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case playbackevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case playbackevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case playbackevent.FieldLectureID:
		return m.OldLectureID(ctx)
	case playbackevent.FieldKind:
		return m.OldKind(ctx)
	case playbackevent.FieldFromSeconds:
		return m.OldFromSeconds(ctx)
	case playbackevent.FieldToSeconds:
		return m.OldToSeconds(ctx)
	case playbackevent.FieldRequestedSeconds:
		return m.OldRequestedSeconds(ctx)
	}
	return nil, fmt.Errorf("unknown PlaybackEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlaybackEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case playbackevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case playbackevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case playbackevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case playbackevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case playbackevent.FieldLectureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLectureID(v)
		return nil
	case playbackevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case playbackevent.FieldFromSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromSeconds(v)
		return nil
	case playbackevent.FieldToSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToSeconds(v)
		return nil
	case playbackevent.FieldRequestedSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown PlaybackEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlaybackEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, playbackevent.FieldSequence)
	}
	if m.addfrom_seconds != nil {
		fields = append(fields, playbackevent.FieldFromSeconds)
	}
	if m.addto_seconds != nil {
		fields = append(fields, playbackevent.FieldToSeconds)
	}
	if m.addrequested_seconds != nil {
		fields = append(fields, playbackevent.FieldRequestedSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlaybackEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case playbackevent.FieldSequence:
		return m.AddedSequence()
	case playbackevent.FieldFromSeconds:
		return m.AddedFromSeconds()
	case playbackevent.FieldToSeconds:
		return m.AddedToSeconds()
	case playbackevent.FieldRequestedSeconds:
		return m.AddedRequestedSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlaybackEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case playbackevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case playbackevent.FieldFromSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFromSeconds(v)
		return nil
	case playbackevent.FieldToSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddToSeconds(v)
		return nil
	case playbackevent.FieldRequestedSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestedSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown PlaybackEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlaybackEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlaybackEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlaybackEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PlaybackEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlaybackEventMutation) ResetField(name string) error {
	switch name {
	case playbackevent.FieldSequence:
		m.ResetSequence()
		return nil
	case playbackevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case playbackevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case playbackevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case playbackevent.FieldLectureID:
		m.ResetLectureID()
		return nil
	case playbackevent.FieldKind:
		m.ResetKind()
		return nil
	case playbackevent.FieldFromSeconds:
		m.ResetFromSeconds()
		return nil
	case playbackevent.FieldToSeconds:
		m.ResetToSeconds()
		return nil
	case playbackevent.FieldRequestedSeconds:
		m.ResetRequestedSeconds()
		return nil
	}
	return fmt.Errorf("unknown PlaybackEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlaybackEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlaybackEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlaybackEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlaybackEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlaybackEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlaybackEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlaybackEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlaybackEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlaybackEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlaybackEvent edge %s", name)
}

// RemediationRecordMutation represents an operation that mutates the RemediationRecord nodes in the graph.
type RemediationRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	learner_id         *string
	lecture_id         *string
	pause_point_id     *string
	misconception      *string
	missing_concept    *string
	root_cause         *string
	jump_to_seconds    *float64
	addjump_to_seconds *float64
	end_seconds        *float64
	addend_seconds     *float64
	explanation        *string
	follow_up_question *string
	follow_up_answer   *string
	follow_up_answered *bool
	follow_up_correct  *bool
	resolved           *bool
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*RemediationRecord, error)
	predicates         []predicate.RemediationRecord
}

var _ ent.Mutation = (*RemediationRecordMutation)(nil)

// remediationrecordOption allows management of the mutation configuration using functional options.
type remediationrecordOption func(*RemediationRecordMutation)

// newRemediationRecordMutation creates new mutation for the RemediationRecord entity.
func newRemediationRecordMutation(c config, op Op, opts ...remediationrecordOption) *RemediationRecordMutation {
	m := &RemediationRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeRemediationRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRemediationRecordID sets the ID field of the mutation.
func withRemediationRecordID(id int) remediationrecordOption {
	return func(m *RemediationRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *RemediationRecord
		)
		m.oldValue = func(ctx context.Context) (*RemediationRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RemediationRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRemediationRecord sets the old RemediationRecord of the mutation.
func withRemediationRecord(node *RemediationRecord) remediationrecordOption {
	return func(m *RemediationRecordMutation) {
		m.oldValue = func(context.Context) (*RemediationRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RemediationRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RemediationRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RemediationRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RemediationRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RemediationRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *RemediationRecordMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RemediationRecordMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RemediationRecordMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RemediationRecordMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RemediationRecordMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *RemediationRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *RemediationRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *RemediationRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *RemediationRecordMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *RemediationRecordMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *RemediationRecordMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLectureID sets the "lecture_id" field.
func (m *RemediationRecordMutation) SetLectureID(s string) {
	m.lecture_id = &s
}

// LectureID returns the value of the "lecture_id" field in the mutation.
func (m *RemediationRecordMutation) LectureID() (r string, exists bool) {
	v := m.lecture_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLectureID returns the old "lecture_id" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldLectureID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLectureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLectureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLectureID: %w", err)
	}
	return oldValue.LectureID, nil
}

// ResetLectureID resets all changes to the "lecture_id" field.
func (m *RemediationRecordMutation) ResetLectureID() {
	m.lecture_id = nil
}

// SetPausePointID sets the "pause_point_id" field.
func (m *RemediationRecordMutation) SetPausePointID(s string) {
	m.pause_point_id = &s
}

// PausePointID returns the value of the "pause_point_id" field in the mutation.
func (m *RemediationRecordMutation) PausePointID() (r string, exists bool) {
	v := m.pause_point_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPausePointID returns the old "pause_point_id" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldPausePointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPausePointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPausePointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPausePointID: %w", err)
	}
	return oldValue.PausePointID, nil
}

// ResetPausePointID resets all changes to the "pause_point_id" field.
func (m *RemediationRecordMutation) ResetPausePointID() {
	m.pause_point_id = nil
}

// SetMisconception sets the "misconception" field.
func (m *RemediationRecordMutation) SetMisconception(s string) {
	m.misconception = &s
}

// Misconception returns the value of the "misconception" field in the mutation.
func (m *RemediationRecordMutation) Misconception() (r string, exists bool) {
	v := m.misconception
	if v == nil {
		return
	}
	return *v, true
}

// OldMisconception returns the old "misconception" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldMisconception(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMisconception is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMisconception requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMisconception: %w", err)
	}
	return oldValue.Misconception, nil
}

// ResetMisconception resets all changes to the "misconception" field.
func (m *RemediationRecordMutation) ResetMisconception() {
	m.misconception = nil
}

// SetMissingConcept sets the "missing_concept" field.
func (m *RemediationRecordMutation) SetMissingConcept(s string) {
	m.missing_concept = &s
}

// MissingConcept returns the value of the "missing_concept" field in the mutation.
func (m *RemediationRecordMutation) MissingConcept() (r string, exists bool) {
	v := m.missing_concept
	if v == nil {
		return
	}
	return *v, true
}

// OldMissingConcept returns the old "missing_concept" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldMissingConcept(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMissingConcept is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMissingConcept requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMissingConcept: %w", err)
	}
	return oldValue.MissingConcept, nil
}

// ResetMissingConcept resets all changes to the "missing_concept" field.
func (m *RemediationRecordMutation) ResetMissingConcept() {
	m.missing_concept = nil
}

// SetRootCause sets the "root_cause" field.
func (m *RemediationRecordMutation) SetRootCause(s string) {
	m.root_cause = &s
}

// RootCause returns the value of the "root_cause" field in the mutation.
func (m *RemediationRecordMutation) RootCause() (r string, exists bool) {
	v := m.root_cause
	if v == nil {
		return
	}
	return *v, true
}

// OldRootCause returns the old "root_cause" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldRootCause(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootCause is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootCause requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootCause: %w", err)
	}
	return oldValue.RootCause, nil
}

// ResetRootCause resets all changes to the "root_cause" field.
func (m *RemediationRecordMutation) ResetRootCause() {
	m.root_cause = nil
}

// SetJumpToSeconds sets the "jump_to_seconds" field.
func (m *RemediationRecordMutation) SetJumpToSeconds(f float64) {
	m.jump_to_seconds = &f
	m.addjump_to_seconds = nil
}

// JumpToSeconds returns the value of the "jump_to_seconds" field in the mutation.
func (m *RemediationRecordMutation) JumpToSeconds() (r float64, exists bool) {
	v := m.jump_to_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldJumpToSeconds returns the old "jump_to_seconds" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldJumpToSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJumpToSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJumpToSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJumpToSeconds: %w", err)
	}
	return oldValue.JumpToSeconds, nil
}

// AddJumpToSeconds adds f to the "jump_to_seconds" field.
func (m *RemediationRecordMutation) AddJumpToSeconds(f float64) {
	if m.addjump_to_seconds != nil {
		*m.addjump_to_seconds += f
	} else {
		m.addjump_to_seconds = &f
	}
}

// AddedJumpToSeconds returns the value that was added to the "jump_to_seconds" field in this mutation.
func (m *RemediationRecordMutation) AddedJumpToSeconds() (r float64, exists bool) {
	v := m.addjump_to_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetJumpToSeconds resets all changes to the "jump_to_seconds" field.
func (m *RemediationRecordMutation) ResetJumpToSeconds() {
	m.jump_to_seconds = nil
	m.addjump_to_seconds = nil
}

// SetEndSeconds sets the "end_seconds" field.
func (m *RemediationRecordMutation) SetEndSeconds(f float64) {
	m.end_seconds = &f
	m.addend_seconds = nil
}

// EndSeconds returns the value of the "end_seconds" field in the mutation.
func (m *RemediationRecordMutation) EndSeconds() (r float64, exists bool) {
	v := m.end_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldEndSeconds returns the old "end_seconds" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldEndSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndSeconds: %w", err)
	}
	return oldValue.EndSeconds, nil
}

// AddEndSeconds adds f to the "end_seconds" field.
func (m *RemediationRecordMutation) AddEndSeconds(f float64) {
	if m.addend_seconds != nil {
		*m.addend_seconds += f
	} else {
		m.addend_seconds = &f
	}
}

// AddedEndSeconds returns the value that was added to the "end_seconds" field in this mutation.
func (m *RemediationRecordMutation) AddedEndSeconds() (r float64, exists bool) {
	v := m.addend_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndSeconds resets all changes to the "end_seconds" field.
func (m *RemediationRecordMutation) ResetEndSeconds() {
	m.end_seconds = nil
	m.addend_seconds = nil
}

// SetExplanation sets the "explanation" field.
func (m *RemediationRecordMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *RemediationRecordMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *RemediationRecordMutation) ResetExplanation() {
	m.explanation = nil
}

// SetFollowUpQuestion sets the "follow_up_question" field.
func (m *RemediationRecordMutation) SetFollowUpQuestion(s string) {
	m.follow_up_question = &s
}

// FollowUpQuestion returns the value of the "follow_up_question" field in the mutation.
func (m *RemediationRecordMutation) FollowUpQuestion() (r string, exists bool) {
	v := m.follow_up_question
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpQuestion returns the old "follow_up_question" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldFollowUpQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpQuestion: %w", err)
	}
	return oldValue.FollowUpQuestion, nil
}

// ResetFollowUpQuestion resets all changes to the "follow_up_question" field.
func (m *RemediationRecordMutation) ResetFollowUpQuestion() {
	m.follow_up_question = nil
}

// SetFollowUpAnswer sets the "follow_up_answer" field.
func (m *RemediationRecordMutation) SetFollowUpAnswer(s string) {
	m.follow_up_answer = &s
}

// FollowUpAnswer returns the value of the "follow_up_answer" field in the mutation.
func (m *RemediationRecordMutation) FollowUpAnswer() (r string, exists bool) {
	v := m.follow_up_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpAnswer returns the old "follow_up_answer" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldFollowUpAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpAnswer: %w", err)
	}
	return oldValue.FollowUpAnswer, nil
}

// ResetFollowUpAnswer resets all changes to the "follow_up_answer" field.
func (m *RemediationRecordMutation) ResetFollowUpAnswer() {
	m.follow_up_answer = nil
}

// SetFollowUpAnswered sets the "follow_up_answered" field.
func (m *RemediationRecordMutation) SetFollowUpAnswered(b bool) {
	m.follow_up_answered = &b
}

// FollowUpAnswered returns the value of the "follow_up_answered" field in the mutation.
func (m *RemediationRecordMutation) FollowUpAnswered() (r bool, exists bool) {
	v := m.follow_up_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpAnswered returns the old "follow_up_answered" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldFollowUpAnswered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpAnswered: %w", err)
	}
	return oldValue.FollowUpAnswered, nil
}

// ResetFollowUpAnswered resets all changes to the "follow_up_answered" field.
func (m *RemediationRecordMutation) ResetFollowUpAnswered() {
	m.follow_up_answered = nil
}

// SetFollowUpCorrect sets the "follow_up_correct" field.
func (m *RemediationRecordMutation) SetFollowUpCorrect(b bool) {
	m.follow_up_correct = &b
}

// FollowUpCorrect returns the value of the "follow_up_correct" field in the mutation.
func (m *RemediationRecordMutation) FollowUpCorrect() (r bool, exists bool) {
	v := m.follow_up_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowUpCorrect returns the old "follow_up_correct" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldFollowUpCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowUpCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowUpCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowUpCorrect: %w", err)
	}
	return oldValue.FollowUpCorrect, nil
}

// ResetFollowUpCorrect resets all changes to the "follow_up_correct" field.
func (m *RemediationRecordMutation) ResetFollowUpCorrect() {
	m.follow_up_correct = nil
}

// SetResolved sets the "resolved" field.
func (m *RemediationRecordMutation) SetResolved(b bool) {
	m.resolved = &b
}

// Resolved returns the value of the "resolved" field in the mutation.
func (m *RemediationRecordMutation) Resolved() (r bool, exists bool) {
	v := m.resolved
	if v == nil {
		return
	}
	return *v, true
}

// OldResolved returns the old "resolved" field's value of the RemediationRecord entity.
// If the RemediationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemediationRecordMutation) OldResolved(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolved: %w", err)
	}
	return oldValue.Resolved, nil
}

// ResetResolved resets all changes to the "resolved" field.
func (m *RemediationRecordMutation) ResetResolved() {
	m.resolved = nil
}

// Where appends a list predicates to the RemediationRecordMutation builder.
func (m *RemediationRecordMutation) Where(ps ...predicate.RemediationRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RemediationRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RemediationRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RemediationRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RemediationRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RemediationRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RemediationRecord).
func (m *RemediationRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RemediationRecordMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.sequence != nil {
		fields = append(fields, remediationrecord.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, remediationrecord.FieldTimestamp)
	}
	if m.learner_id != nil {
		fields = append(fields, remediationrecord.FieldLearnerID)
	}
	if m.lecture_id != nil {
		fields = append(fields, remediationrecord.FieldLectureID)
	}
	if m.pause_point_id != nil {
		fields = append(fields, remediationrecord.FieldPausePointID)
	}
	if m.misconception != nil {
		fields = append(fields, remediationrecord.FieldMisconception)
	}
	if m.missing_concept != nil {
		fields = append(fields, remediationrecord.FieldMissingConcept)
	}
	if m.root_cause != nil {
		fields = append(fields, remediationrecord.FieldRootCause)
	}
	if m.jump_to_seconds != nil {
		fields = append(fields, remediationrecord.FieldJumpToSeconds)
	}
	if m.end_seconds != nil {
		fields = append(fields, remediationrecord.FieldEndSeconds)
	}
	if m.explanation != nil {
		fields = append(fields, remediationrecord.FieldExplanation)
	}
	if m.follow_up_question != nil {
		fields = append(fields, remediationrecord.FieldFollowUpQuestion)
	}
	if m.follow_up_answer != nil {
		fields = append(fields, remediationrecord.FieldFollowUpAnswer)
	}
	if m.follow_up_answered != nil {
		fields = append(fields, remediationrecord.FieldFollowUpAnswered)
	}
	if m.follow_up_correct != nil {
		fields = append(fields, remediationrecord.FieldFollowUpCorrect)
	}
	if m.resolved != nil {
		fields = append(fields, remediationrecord.FieldResolved)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RemediationRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case remediationrecord.FieldSequence:
		return m.Sequence()
	case remediationrecord.FieldTimestamp:
		return m.Timestamp()
	case remediationrecord.FieldLearnerID:
		return m.LearnerID()
	case remediationrecord.FieldLectureID:
		return m.LectureID()
	case remediationrecord.FieldPausePointID:
		return m.PausePointID()
	case remediationrecord.FieldMisconception:
		return m.Misconception()
	case remediationrecord.FieldMissingConcept:
		return m.MissingConcept()
	case remediationrecord.FieldRootCause:
		return m.RootCause()
	case remediationrecord.FieldJumpToSeconds:
		return m.JumpToSeconds()
	case remediationrecord.FieldEndSeconds:
		return m.EndSeconds()
	case remediationrecord.FieldExplanation:
		return m.Explanation()
	case remediationrecord.FieldFollowUpQuestion:
		return m.FollowUpQuestion()
	case remediationrecord.FieldFollowUpAnswer:
		return m.FollowUpAnswer()
	case remediationrecord.FieldFollowUpAnswered:
		return m.FollowUpAnswered()
	case remediationrecord.FieldFollowUpCorrect:
		return m.FollowUpCorrect()
	case remediationrecord.FieldResolved:
		return m.Resolved()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RemediationRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case remediationrecord.FieldSequence:
		return m.OldSequence(ctx)
	case remediationrecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case remediationrecord.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case remediationrecord.FieldLectureID:
		return m.OldLectureID(ctx)
	case remediationrecord.FieldPausePointID:
		return m.OldPausePointID(ctx)
	case remediationrecord.FieldMisconception:
		return m.OldMisconception(ctx)
	case remediationrecord.FieldMissingConcept:
		return m.OldMissingConcept(ctx)
	case remediationrecord.FieldRootCause:
		return m.OldRootCause(ctx)
	case remediationrecord.FieldJumpToSeconds:
		return m.OldJumpToSeconds(ctx)
	case remediationrecord.FieldEndSeconds:
		return m.OldEndSeconds(ctx)
	case remediationrecord.FieldExplanation:
		return m.OldExplanation(ctx)
	case remediationrecord.FieldFollowUpQuestion:
		return m.OldFollowUpQuestion(ctx)
	case remediationrecord.FieldFollowUpAnswer:
		return m.OldFollowUpAnswer(ctx)
	case remediationrecord.FieldFollowUpAnswered:
		return m.OldFollowUpAnswered(ctx)
	case remediationrecord.FieldFollowUpCorrect:
		return m.OldFollowUpCorrect(ctx)
	case remediationrecord.FieldResolved:
		return m.OldResolved(ctx)
	}
	return nil, fmt.Errorf("unknown RemediationRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RemediationRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case remediationrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case remediationrecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case remediationrecord.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case remediationrecord.FieldLectureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLectureID(v)
		return nil
	case remediationrecord.FieldPausePointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPausePointID(v)
		return nil
	case remediationrecord.FieldMisconception:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMisconception(v)
		return nil
	case remediationrecord.FieldMissingConcept:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMissingConcept(v)
		return nil
	case remediationrecord.FieldRootCause:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootCause(v)
		return nil
	case remediationrecord.FieldJumpToSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJumpToSeconds(v)
		return nil
	case remediationrecord.FieldEndSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndSeconds(v)
		return nil
	case remediationrecord.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case remediationrecord.FieldFollowUpQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpQuestion(v)
		return nil
	case remediationrecord.FieldFollowUpAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpAnswer(v)
		return nil
	case remediationrecord.FieldFollowUpAnswered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpAnswered(v)
		return nil
	case remediationrecord.FieldFollowUpCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowUpCorrect(v)
		return nil
	case remediationrecord.FieldResolved:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolved(v)
		return nil
	}
	return fmt.Errorf("unknown RemediationRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RemediationRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, remediationrecord.FieldSequence)
	}
	if m.addjump_to_seconds != nil {
		fields = append(fields, remediationrecord.FieldJumpToSeconds)
	}
	if m.addend_seconds != nil {
		fields = append(fields, remediationrecord.FieldEndSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RemediationRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case remediationrecord.FieldSequence:
		return m.AddedSequence()
	case remediationrecord.FieldJumpToSeconds:
		return m.AddedJumpToSeconds()
	case remediationrecord.FieldEndSeconds:
		return m.AddedEndSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RemediationRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case remediationrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case remediationrecord.FieldJumpToSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJumpToSeconds(v)
		return nil
	case remediationrecord.FieldEndSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown RemediationRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RemediationRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RemediationRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RemediationRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RemediationRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RemediationRecordMutation) ResetField(name string) error {
	switch name {
	case remediationrecord.FieldSequence:
		m.ResetSequence()
		return nil
	case remediationrecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case remediationrecord.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case remediationrecord.FieldLectureID:
		m.ResetLectureID()
		return nil
	case remediationrecord.FieldPausePointID:
		m.ResetPausePointID()
		return nil
	case remediationrecord.FieldMisconception:
		m.ResetMisconception()
		return nil
	case remediationrecord.FieldMissingConcept:
		m.ResetMissingConcept()
		return nil
	case remediationrecord.FieldRootCause:
		m.ResetRootCause()
		return nil
	case remediationrecord.FieldJumpToSeconds:
		m.ResetJumpToSeconds()
		return nil
	case remediationrecord.FieldEndSeconds:
		m.ResetEndSeconds()
		return nil
	case remediationrecord.FieldExplanation:
		m.ResetExplanation()
		return nil
	case remediationrecord.FieldFollowUpQuestion:
		m.ResetFollowUpQuestion()
		return nil
	case remediationrecord.FieldFollowUpAnswer:
		m.ResetFollowUpAnswer()
		return nil
	case remediationrecord.FieldFollowUpAnswered:
		m.ResetFollowUpAnswered()
		return nil
	case remediationrecord.FieldFollowUpCorrect:
		m.ResetFollowUpCorrect()
		return nil
	case remediationrecord.FieldResolved:
		m.ResetResolved()
		return nil
	}
	return fmt.Errorf("unknown RemediationRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RemediationRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RemediationRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RemediationRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RemediationRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RemediationRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RemediationRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RemediationRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RemediationRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RemediationRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RemediationRecord edge %s", name)
}

// ReviewRecordMutation represents an operation that mutates the ReviewRecord nodes in the graph.
type ReviewRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	learner_id           *string
	item_id              *string
	interval_days        *int
	addinterval_days     *int
	ease_factor          *float64
	addease_factor       *float64
	next_review_date     *time.Time
	last_reviewed_date   *time.Time
	repetition_number    *int
	addrepetition_number *int
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ReviewRecord, error)
	predicates           []predicate.ReviewRecord
}

var _ ent.Mutation = (*ReviewRecordMutation)(nil)

// reviewrecordOption allows management of the mutation configuration using functional options.
type reviewrecordOption func(*ReviewRecordMutation)

// newReviewRecordMutation creates new mutation for the ReviewRecord entity.
func newReviewRecordMutation(c config, op Op, opts ...reviewrecordOption) *ReviewRecordMutation {
	m := &ReviewRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewRecordID sets the ID field of the mutation.
func withReviewRecordID(id int) reviewrecordOption {
	return func(m *ReviewRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewRecord
		)
		m.oldValue = func(ctx context.Context) (*ReviewRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewRecord sets the old ReviewRecord of the mutation.
func withReviewRecord(node *ReviewRecord) reviewrecordOption {
	return func(m *ReviewRecordMutation) {
		m.oldValue = func(context.Context) (*ReviewRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *ReviewRecordMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *ReviewRecordMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *ReviewRecordMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetItemID sets the "item_id" field.
func (m *ReviewRecordMutation) SetItemID(s string) {
	m.item_id = &s
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *ReviewRecordMutation) ItemID() (r string, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldItemID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *ReviewRecordMutation) ResetItemID() {
	m.item_id = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewRecordMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewRecordMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewRecordMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewRecordMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewRecordMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetEaseFactor sets the "ease_factor" field.
func (m *ReviewRecordMutation) SetEaseFactor(f float64) {
	m.ease_factor = &f
	m.addease_factor = nil
}

// EaseFactor returns the value of the "ease_factor" field in the mutation.
func (m *ReviewRecordMutation) EaseFactor() (r float64, exists bool) {
	v := m.ease_factor
	if v == nil {
		return
	}
	return *v, true
}

// OldEaseFactor returns the old "ease_factor" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldEaseFactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEaseFactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEaseFactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEaseFactor: %w", err)
	}
	return oldValue.EaseFactor, nil
}

// AddEaseFactor adds f to the "ease_factor" field.
func (m *ReviewRecordMutation) AddEaseFactor(f float64) {
	if m.addease_factor != nil {
		*m.addease_factor += f
	} else {
		m.addease_factor = &f
	}
}

// AddedEaseFactor returns the value that was added to the "ease_factor" field in this mutation.
func (m *ReviewRecordMutation) AddedEaseFactor() (r float64, exists bool) {
	v := m.addease_factor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEaseFactor resets all changes to the "ease_factor" field.
func (m *ReviewRecordMutation) ResetEaseFactor() {
	m.ease_factor = nil
	m.addease_factor = nil
}

// SetNextReviewDate sets the "next_review_date" field.
func (m *ReviewRecordMutation) SetNextReviewDate(t time.Time) {
	m.next_review_date = &t
}

// NextReviewDate returns the value of the "next_review_date" field in the mutation.
func (m *ReviewRecordMutation) NextReviewDate() (r time.Time, exists bool) {
	v := m.next_review_date
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewDate returns the old "next_review_date" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldNextReviewDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewDate: %w", err)
	}
	return oldValue.NextReviewDate, nil
}

// ResetNextReviewDate resets all changes to the "next_review_date" field.
func (m *ReviewRecordMutation) ResetNextReviewDate() {
	m.next_review_date = nil
}

// SetLastReviewedDate sets the "last_reviewed_date" field.
func (m *ReviewRecordMutation) SetLastReviewedDate(t time.Time) {
	m.last_reviewed_date = &t
}

// LastReviewedDate returns the value of the "last_reviewed_date" field in the mutation.
func (m *ReviewRecordMutation) LastReviewedDate() (r time.Time, exists bool) {
	v := m.last_reviewed_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedDate returns the old "last_reviewed_date" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldLastReviewedDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedDate: %w", err)
	}
	return oldValue.LastReviewedDate, nil
}

// ResetLastReviewedDate resets all changes to the "last_reviewed_date" field.
func (m *ReviewRecordMutation) ResetLastReviewedDate() {
	m.last_reviewed_date = nil
}

// SetRepetitionNumber sets the "repetition_number" field.
func (m *ReviewRecordMutation) SetRepetitionNumber(i int) {
	m.repetition_number = &i
	m.addrepetition_number = nil
}

// RepetitionNumber returns the value of the "repetition_number" field in the mutation.
func (m *ReviewRecordMutation) RepetitionNumber() (r int, exists bool) {
	v := m.repetition_number
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitionNumber returns the old "repetition_number" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldRepetitionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitionNumber: %w", err)
	}
	return oldValue.RepetitionNumber, nil
}

// AddRepetitionNumber adds i to the "repetition_number" field.
func (m *ReviewRecordMutation) AddRepetitionNumber(i int) {
	if m.addrepetition_number != nil {
		*m.addrepetition_number += i
	} else {
		m.addrepetition_number = &i
	}
}

// AddedRepetitionNumber returns the value that was added to the "repetition_number" field in this mutation.
func (m *ReviewRecordMutation) AddedRepetitionNumber() (r int, exists bool) {
	v := m.addrepetition_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitionNumber resets all changes to the "repetition_number" field.
func (m *ReviewRecordMutation) ResetRepetitionNumber() {
	m.repetition_number = nil
	m.addrepetition_number = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReviewRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReviewRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReviewRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ReviewRecordMutation builder.
func (m *ReviewRecordMutation) Where(ps ...predicate.ReviewRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewRecord).
func (m *ReviewRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.learner_id != nil {
		fields = append(fields, reviewrecord.FieldLearnerID)
	}
	if m.item_id != nil {
		fields = append(fields, reviewrecord.FieldItemID)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewrecord.FieldIntervalDays)
	}
	if m.ease_factor != nil {
		fields = append(fields, reviewrecord.FieldEaseFactor)
	}
	if m.next_review_date != nil {
		fields = append(fields, reviewrecord.FieldNextReviewDate)
	}
	if m.last_reviewed_date != nil {
		fields = append(fields, reviewrecord.FieldLastReviewedDate)
	}
	if m.repetition_number != nil {
		fields = append(fields, reviewrecord.FieldRepetitionNumber)
	}
	if m.updated_at != nil {
		fields = append(fields, reviewrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewrecord.FieldLearnerID:
		return m.LearnerID()
	case reviewrecord.FieldItemID:
		return m.ItemID()
	case reviewrecord.FieldIntervalDays:
		return m.IntervalDays()
	case reviewrecord.FieldEaseFactor:
		return m.EaseFactor()
	case reviewrecord.FieldNextReviewDate:
		return m.NextReviewDate()
	case reviewrecord.FieldLastReviewedDate:
		return m.LastReviewedDate()
	case reviewrecord.FieldRepetitionNumber:
		return m.RepetitionNumber()
	case reviewrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewrecord.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case reviewrecord.FieldItemID:
		return m.OldItemID(ctx)
	case reviewrecord.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewrecord.FieldEaseFactor:
		return m.OldEaseFactor(ctx)
	case reviewrecord.FieldNextReviewDate:
		return m.OldNextReviewDate(ctx)
	case reviewrecord.FieldLastReviewedDate:
		return m.OldLastReviewedDate(ctx)
	case reviewrecord.FieldRepetitionNumber:
		return m.OldRepetitionNumber(ctx)
	case reviewrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewrecord.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case reviewrecord.FieldItemID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case reviewrecord.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewrecord.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEaseFactor(v)
		return nil
	case reviewrecord.FieldNextReviewDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewDate(v)
		return nil
	case reviewrecord.FieldLastReviewedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedDate(v)
		return nil
	case reviewrecord.FieldRepetitionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitionNumber(v)
		return nil
	case reviewrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewRecordMutation) AddedFields() []string {
	var fields []string
	if m.addinterval_days != nil {
		fields = append(fields, reviewrecord.FieldIntervalDays)
	}
	if m.addease_factor != nil {
		fields = append(fields, reviewrecord.FieldEaseFactor)
	}
	if m.addrepetition_number != nil {
		fields = append(fields, reviewrecord.FieldRepetitionNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewrecord.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewrecord.FieldEaseFactor:
		return m.AddedEaseFactor()
	case reviewrecord.FieldRepetitionNumber:
		return m.AddedRepetitionNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewrecord.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewrecord.FieldEaseFactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEaseFactor(v)
		return nil
	case reviewrecord.FieldRepetitionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitionNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewRecordMutation) ResetField(name string) error {
	switch name {
	case reviewrecord.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case reviewrecord.FieldItemID:
		m.ResetItemID()
		return nil
	case reviewrecord.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewrecord.FieldEaseFactor:
		m.ResetEaseFactor()
		return nil
	case reviewrecord.FieldNextReviewDate:
		m.ResetNextReviewDate()
		return nil
	case reviewrecord.FieldLastReviewedDate:
		m.ResetLastReviewedDate()
		return nil
	case reviewrecord.FieldRepetitionNumber:
		m.ResetRepetitionNumber()
		return nil
	case reviewrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewRecord edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	session_id            *string
	learner_id            *string
	lecture_id            *string
	action                *string
	questions_answered    *int
	addquestions_answered *int
	correct_answers       *int
	addcorrect_answers    *int
	points_earned         *int
	addpoints_earned      *int
	duration_secs         *int
	addduration_secs      *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*SessionEvent, error)
	predicates            []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *SessionEventMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *SessionEventMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *SessionEventMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetLectureID sets the "lecture_id" field.
func (m *SessionEventMutation) SetLectureID(s string) {
	m.lecture_id = &s
}

// LectureID returns the value of the "lecture_id" field in the mutation.
func (m *SessionEventMutation) LectureID() (r string, exists bool) {
	v := m.lecture_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLectureID returns the old "lecture_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldLectureID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLectureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLectureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLectureID: %w", err)
	}
	return oldValue.LectureID, nil
}

// ResetLectureID resets all changes to the "lecture_id" field.
func (m *SessionEventMutation) ResetLectureID() {
	m.lecture_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (m *SessionEventMutation) SetQuestionsAnswered(i int) {
	m.questions_answered = &i
	m.addquestions_answered = nil
}

// QuestionsAnswered returns the value of the "questions_answered" field in the mutation.
func (m *SessionEventMutation) QuestionsAnswered() (r int, exists bool) {
	v := m.questions_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAnswered returns the old "questions_answered" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldQuestionsAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAnswered: %w", err)
	}
	return oldValue.QuestionsAnswered, nil
}

// AddQuestionsAnswered adds i to the "questions_answered" field.
func (m *SessionEventMutation) AddQuestionsAnswered(i int) {
	if m.addquestions_answered != nil {
		*m.addquestions_answered += i
	} else {
		m.addquestions_answered = &i
	}
}

// AddedQuestionsAnswered returns the value that was added to the "questions_answered" field in this mutation.
func (m *SessionEventMutation) AddedQuestionsAnswered() (r int, exists bool) {
	v := m.addquestions_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAnswered resets all changes to the "questions_answered" field.
func (m *SessionEventMutation) ResetQuestionsAnswered() {
	m.questions_answered = nil
	m.addquestions_answered = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *SessionEventMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *SessionEventMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *SessionEventMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *SessionEventMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *SessionEventMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetPointsEarned sets the "points_earned" field.
func (m *SessionEventMutation) SetPointsEarned(i int) {
	m.points_earned = &i
	m.addpoints_earned = nil
}

// PointsEarned returns the value of the "points_earned" field in the mutation.
func (m *SessionEventMutation) PointsEarned() (r int, exists bool) {
	v := m.points_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldPointsEarned returns the old "points_earned" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPointsEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPointsEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPointsEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPointsEarned: %w", err)
	}
	return oldValue.PointsEarned, nil
}

// AddPointsEarned adds i to the "points_earned" field.
func (m *SessionEventMutation) AddPointsEarned(i int) {
	if m.addpoints_earned != nil {
		*m.addpoints_earned += i
	} else {
		m.addpoints_earned = &i
	}
}

// AddedPointsEarned returns the value that was added to the "points_earned" field in this mutation.
func (m *SessionEventMutation) AddedPointsEarned() (r int, exists bool) {
	v := m.addpoints_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetPointsEarned resets all changes to the "points_earned" field.
func (m *SessionEventMutation) ResetPointsEarned() {
	m.points_earned = nil
	m.addpoints_earned = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *SessionEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *SessionEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *SessionEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *SessionEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *SessionEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.learner_id != nil {
		fields = append(fields, sessionevent.FieldLearnerID)
	}
	if m.lecture_id != nil {
		fields = append(fields, sessionevent.FieldLectureID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.questions_answered != nil {
		fields = append(fields, sessionevent.FieldQuestionsAnswered)
	}
	if m.correct_answers != nil {
		fields = append(fields, sessionevent.FieldCorrectAnswers)
	}
	if m.points_earned != nil {
		fields = append(fields, sessionevent.FieldPointsEarned)
	}
	if m.duration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldLearnerID:
		return m.LearnerID()
	case sessionevent.FieldLectureID:
		return m.LectureID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldQuestionsAnswered:
		return m.QuestionsAnswered()
	case sessionevent.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case sessionevent.FieldPointsEarned:
		return m.PointsEarned()
	case sessionevent.FieldDurationSecs:
		return m.DurationSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case sessionevent.FieldLectureID:
		return m.OldLectureID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldQuestionsAnswered:
		return m.OldQuestionsAnswered(ctx)
	case sessionevent.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case sessionevent.FieldPointsEarned:
		return m.OldPointsEarned(ctx)
	case sessionevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case sessionevent.FieldLectureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLectureID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAnswered(v)
		return nil
	case sessionevent.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case sessionevent.FieldPointsEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPointsEarned(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addquestions_answered != nil {
		fields = append(fields, sessionevent.FieldQuestionsAnswered)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, sessionevent.FieldCorrectAnswers)
	}
	if m.addpoints_earned != nil {
		fields = append(fields, sessionevent.FieldPointsEarned)
	}
	if m.addduration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldQuestionsAnswered:
		return m.AddedQuestionsAnswered()
	case sessionevent.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case sessionevent.FieldPointsEarned:
		return m.AddedPointsEarned()
	case sessionevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAnswered(v)
		return nil
	case sessionevent.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case sessionevent.FieldPointsEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPointsEarned(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case sessionevent.FieldLectureID:
		m.ResetLectureID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldQuestionsAnswered:
		m.ResetQuestionsAnswered()
		return nil
	case sessionevent.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case sessionevent.FieldPointsEarned:
		m.ResetPointsEarned()
		return nil
	case sessionevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}
