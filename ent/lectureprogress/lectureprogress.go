// Code generated by ent, DO NOT EDIT.

package lectureprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lectureprogress type in the database.
	Label = "lecture_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldLectureID holds the string denoting the lecture_id field in the database.
	FieldLectureID = "lecture_id"
	// FieldVideoPosition holds the string denoting the video_position field in the database.
	FieldVideoPosition = "video_position"
	// FieldCompletedPausePoints holds the string denoting the completed_pause_points field in the database.
	FieldCompletedPausePoints = "completed_pause_points"
	// FieldResponses holds the string denoting the responses field in the database.
	FieldResponses = "responses"
	// FieldTotalPointsEarned holds the string denoting the total_points_earned field in the database.
	FieldTotalPointsEarned = "total_points_earned"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the lectureprogress in the database.
	Table = "lecture_progresses"
)

// Columns holds all SQL columns for lectureprogress fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldLectureID,
	FieldVideoPosition,
	FieldCompletedPausePoints,
	FieldResponses,
	FieldTotalPointsEarned,
	FieldCompletedAt,
	FieldUpdatedAt,
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
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	LectureIDValidator func(string) error
	// DefaultVideoPosition holds the default value on creation for the "video_position" field.
	DefaultVideoPosition float64
	// DefaultTotalPointsEarned holds the default value on creation for the "total_points_earned" field.
	DefaultTotalPointsEarned int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LectureProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByLectureID orders the results by the lecture_id field.
func ByLectureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLectureID, opts...).ToFunc()
}

// ByVideoPosition orders the results by the video_position field.
func ByVideoPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoPosition, opts...).ToFunc()
}

// ByTotalPointsEarned orders the results by the total_points_earned field.
func ByTotalPointsEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPointsEarned, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
