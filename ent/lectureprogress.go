// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lectio/ent/lectureprogress"
	"github.com/abhisek/lectio/ent/schema"
)

// LectureProgress is the model entity for the LectureProgress schema.
type LectureProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// LectureID holds the value of the "lecture_id" field.
	LectureID string `json:"lecture_id,omitempty"`
	// Max seconds watched; monotonic except privileged jumps
	VideoPosition float64 `json:"video_position,omitempty"`
	// Pause point IDs already answered; never re-trigger
	CompletedPausePoints []string `json:"completed_pause_points,omitempty"`
	// Pause point ID -> recorded outcome
	Responses map[string]schema.PausePointResponse `json:"responses,omitempty"`
	// Floored at 0 when reported; deltas may be negative
	TotalPointsEarned int `json:"total_points_earned,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LectureProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lectureprogress.FieldCompletedPausePoints, lectureprogress.FieldResponses:
			values[i] = new([]byte)
		case lectureprogress.FieldVideoPosition:
			values[i] = new(sql.NullFloat64)
		case lectureprogress.FieldID, lectureprogress.FieldTotalPointsEarned:
			values[i] = new(sql.NullInt64)
		case lectureprogress.FieldLearnerID, lectureprogress.FieldLectureID:
			values[i] = new(sql.NullString)
		case lectureprogress.FieldCompletedAt, lectureprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LectureProgress fields.
func (_m *LectureProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lectureprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lectureprogress.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case lectureprogress.FieldLectureID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lecture_id", values[i])
			} else if value.Valid {
				_m.LectureID = value.String
			}
		case lectureprogress.FieldVideoPosition:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field video_position", values[i])
			} else if value.Valid {
				_m.VideoPosition = value.Float64
			}
		case lectureprogress.FieldCompletedPausePoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_pause_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedPausePoints); err != nil {
					return fmt.Errorf("unmarshal field completed_pause_points: %w", err)
				}
			}
		case lectureprogress.FieldResponses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field responses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Responses); err != nil {
					return fmt.Errorf("unmarshal field responses: %w", err)
				}
			}
		case lectureprogress.FieldTotalPointsEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_points_earned", values[i])
			} else if value.Valid {
				_m.TotalPointsEarned = int(value.Int64)
			}
		case lectureprogress.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case lectureprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LectureProgress.
// This includes values selected through modifiers, order, etc.
func (_m *LectureProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LectureProgress.
// Note that you need to call LectureProgress.Unwrap() before calling this method if this LectureProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LectureProgress) Update() *LectureProgressUpdateOne {
	return NewLectureProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LectureProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LectureProgress) Unwrap() *LectureProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LectureProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LectureProgress) String() string {
	var builder strings.Builder
	builder.WriteString("LectureProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("lecture_id=")
	builder.WriteString(_m.LectureID)
	builder.WriteString(", ")
	builder.WriteString("video_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.VideoPosition))
	builder.WriteString(", ")
	builder.WriteString("completed_pause_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedPausePoints))
	builder.WriteString(", ")
	builder.WriteString("responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Responses))
	builder.WriteString(", ")
	builder.WriteString("total_points_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPointsEarned))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LectureProgresses is a parsable slice of LectureProgress.
type LectureProgresses []*LectureProgress
