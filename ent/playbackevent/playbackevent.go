// Code generated by ent, DO NOT EDIT.

package playbackevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the playbackevent type in the database.
	Label = "playback_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldLectureID holds the string denoting the lecture_id field in the database.
	FieldLectureID = "lecture_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldFromSeconds holds the string denoting the from_seconds field in the database.
	FieldFromSeconds = "from_seconds"
	// FieldToSeconds holds the string denoting the to_seconds field in the database.
	FieldToSeconds = "to_seconds"
	// FieldRequestedSeconds holds the string denoting the requested_seconds field in the database.
	FieldRequestedSeconds = "requested_seconds"
	// Table holds the table name of the playbackevent in the database.
	Table = "playback_events"
)

// Columns holds all SQL columns for playbackevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLearnerID,
	FieldLectureID,
	FieldKind,
	FieldFromSeconds,
	FieldToSeconds,
	FieldRequestedSeconds,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	LectureIDValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
)

// OrderOption defines the ordering options for the PlaybackEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByLectureID orders the results by the lecture_id field.
func ByLectureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLectureID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByFromSeconds orders the results by the from_seconds field.
func ByFromSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromSeconds, opts...).ToFunc()
}

// ByToSeconds orders the results by the to_seconds field.
func ByToSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToSeconds, opts...).ToFunc()
}

// ByRequestedSeconds orders the results by the requested_seconds field.
func ByRequestedSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedSeconds, opts...).ToFunc()
}
