// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/remediationrecord"
)

// RemediationRecord is the model entity for the RemediationRecord schema.
type RemediationRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// LectureID holds the value of the "lecture_id" field.
	LectureID string `json:"lecture_id,omitempty"`
	// PausePointID holds the value of the "pause_point_id" field.
	PausePointID string `json:"pause_point_id,omitempty"`
	// Detected misconception text
	Misconception string `json:"misconception,omitempty"`
	// MissingConcept holds the value of the "missing_concept" field.
	MissingConcept string `json:"missing_concept,omitempty"`
	// RootCause holds the value of the "root_cause" field.
	RootCause string `json:"root_cause,omitempty"`
	// Start of the remediation timestamp range
	JumpToSeconds float64 `json:"jump_to_seconds,omitempty"`
	// End of the range; boundary watcher pauses here
	EndSeconds float64 `json:"end_seconds,omitempty"`
	// Generated explanation shown to the learner
	Explanation string `json:"explanation,omitempty"`
	// Empty when no follow-up was generated
	FollowUpQuestion string `json:"follow_up_question,omitempty"`
	// FollowUpAnswer holds the value of the "follow_up_answer" field.
	FollowUpAnswer string `json:"follow_up_answer,omitempty"`
	// FollowUpAnswered holds the value of the "follow_up_answered" field.
	FollowUpAnswered bool `json:"follow_up_answered,omitempty"`
	// FollowUpCorrect holds the value of the "follow_up_correct" field.
	FollowUpCorrect bool `json:"follow_up_correct,omitempty"`
	// Resolved holds the value of the "resolved" field.
	Resolved     bool `json:"resolved,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RemediationRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case remediationrecord.FieldFollowUpAnswered, remediationrecord.FieldFollowUpCorrect, remediationrecord.FieldResolved:
			values[i] = new(sql.NullBool)
		case remediationrecord.FieldJumpToSeconds, remediationrecord.FieldEndSeconds:
			values[i] = new(sql.NullFloat64)
		case remediationrecord.FieldID, remediationrecord.FieldSequence:
			values[i] = new(sql.NullInt64)
		case remediationrecord.FieldLearnerID, remediationrecord.FieldLectureID, remediationrecord.FieldPausePointID, remediationrecord.FieldMisconception, remediationrecord.FieldMissingConcept, remediationrecord.FieldRootCause, remediationrecord.FieldExplanation, remediationrecord.FieldFollowUpQuestion, remediationrecord.FieldFollowUpAnswer:
			values[i] = new(sql.NullString)
		case remediationrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RemediationRecord fields.
func (_m *RemediationRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case remediationrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case remediationrecord.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case remediationrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case remediationrecord.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case remediationrecord.FieldLectureID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lecture_id", values[i])
			} else if value.Valid {
				_m.LectureID = value.String
			}
		case remediationrecord.FieldPausePointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pause_point_id", values[i])
			} else if value.Valid {
				_m.PausePointID = value.String
			}
		case remediationrecord.FieldMisconception:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field misconception", values[i])
			} else if value.Valid {
				_m.Misconception = value.String
			}
		case remediationrecord.FieldMissingConcept:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field missing_concept", values[i])
			} else if value.Valid {
				_m.MissingConcept = value.String
			}
		case remediationrecord.FieldRootCause:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root_cause", values[i])
			} else if value.Valid {
				_m.RootCause = value.String
			}
		case remediationrecord.FieldJumpToSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field jump_to_seconds", values[i])
			} else if value.Valid {
				_m.JumpToSeconds = value.Float64
			}
		case remediationrecord.FieldEndSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field end_seconds", values[i])
			} else if value.Valid {
				_m.EndSeconds = value.Float64
			}
		case remediationrecord.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case remediationrecord.FieldFollowUpQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_question", values[i])
			} else if value.Valid {
				_m.FollowUpQuestion = value.String
			}
		case remediationrecord.FieldFollowUpAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_answer", values[i])
			} else if value.Valid {
				_m.FollowUpAnswer = value.String
			}
		case remediationrecord.FieldFollowUpAnswered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_answered", values[i])
			} else if value.Valid {
				_m.FollowUpAnswered = value.Bool
			}
		case remediationrecord.FieldFollowUpCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up_correct", values[i])
			} else if value.Valid {
				_m.FollowUpCorrect = value.Bool
			}
		case remediationrecord.FieldResolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field resolved", values[i])
			} else if value.Valid {
				_m.Resolved = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RemediationRecord.
// This includes values selected through modifiers, order, etc.
func (_m *RemediationRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RemediationRecord.
// Note that you need to call RemediationRecord.Unwrap() before calling this method if this RemediationRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RemediationRecord) Update() *RemediationRecordUpdateOne {
	return NewRemediationRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RemediationRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RemediationRecord) Unwrap() *RemediationRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RemediationRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RemediationRecord) String() string {
	var builder strings.Builder
	builder.WriteString("RemediationRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("lecture_id=")
	builder.WriteString(_m.LectureID)
	builder.WriteString(", ")
	builder.WriteString("pause_point_id=")
	builder.WriteString(_m.PausePointID)
	builder.WriteString(", ")
	builder.WriteString("misconception=")
	builder.WriteString(_m.Misconception)
	builder.WriteString(", ")
	builder.WriteString("missing_concept=")
	builder.WriteString(_m.MissingConcept)
	builder.WriteString(", ")
	builder.WriteString("root_cause=")
	builder.WriteString(_m.RootCause)
	builder.WriteString(", ")
	builder.WriteString("jump_to_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.JumpToSeconds))
	builder.WriteString(", ")
	builder.WriteString("end_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndSeconds))
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("follow_up_question=")
	builder.WriteString(_m.FollowUpQuestion)
	builder.WriteString(", ")
	builder.WriteString("follow_up_answer=")
	builder.WriteString(_m.FollowUpAnswer)
	builder.WriteString(", ")
	builder.WriteString("follow_up_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowUpAnswered))
	builder.WriteString(", ")
	builder.WriteString("follow_up_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowUpCorrect))
	builder.WriteString(", ")
	builder.WriteString("resolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolved))
	builder.WriteByte(')')
	return builder.String()
}

// RemediationRecords is a parsable slice of RemediationRecord.
type RemediationRecords []*RemediationRecord
