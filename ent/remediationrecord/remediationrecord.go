// Code generated by ent, DO NOT EDIT.

package remediationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the remediationrecord type in the database.
	Label = "remediation_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldLectureID holds the string denoting the lecture_id field in the database.
	FieldLectureID = "lecture_id"
	// FieldPausePointID holds the string denoting the pause_point_id field in the database.
	FieldPausePointID = "pause_point_id"
	// FieldMisconception holds the string denoting the misconception field in the database.
	FieldMisconception = "misconception"
	// FieldMissingConcept holds the string denoting the missing_concept field in the database.
	FieldMissingConcept = "missing_concept"
	// FieldRootCause holds the string denoting the root_cause field in the database.
	FieldRootCause = "root_cause"
	// FieldJumpToSeconds holds the string denoting the jump_to_seconds field in the database.
	FieldJumpToSeconds = "jump_to_seconds"
	// FieldEndSeconds holds the string denoting the end_seconds field in the database.
	FieldEndSeconds = "end_seconds"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldFollowUpQuestion holds the string denoting the follow_up_question field in the database.
	FieldFollowUpQuestion = "follow_up_question"
	// FieldFollowUpAnswer holds the string denoting the follow_up_answer field in the database.
	FieldFollowUpAnswer = "follow_up_answer"
	// FieldFollowUpAnswered holds the string denoting the follow_up_answered field in the database.
	FieldFollowUpAnswered = "follow_up_answered"
	// FieldFollowUpCorrect holds the string denoting the follow_up_correct field in the database.
	FieldFollowUpCorrect = "follow_up_correct"
	// FieldResolved holds the string denoting the resolved field in the database.
	FieldResolved = "resolved"
	// Table holds the table name of the remediationrecord in the database.
	Table = "remediation_records"
)

// Columns holds all SQL columns for remediationrecord fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLearnerID,
	FieldLectureID,
	FieldPausePointID,
	FieldMisconception,
	FieldMissingConcept,
	FieldRootCause,
	FieldJumpToSeconds,
	FieldEndSeconds,
	FieldExplanation,
	FieldFollowUpQuestion,
	FieldFollowUpAnswer,
	FieldFollowUpAnswered,
	FieldFollowUpCorrect,
	FieldResolved,
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
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// LectureIDValidator is a validator for the "lecture_id" field. It is called by the builders before save.
	LectureIDValidator func(string) error
	// PausePointIDValidator is a validator for the "pause_point_id" field. It is called by the builders before save.
	PausePointIDValidator func(string) error
	// DefaultRootCause holds the default value on creation for the "root_cause" field.
	DefaultRootCause string
	// DefaultFollowUpQuestion holds the default value on creation for the "follow_up_question" field.
	DefaultFollowUpQuestion string
	// DefaultFollowUpAnswer holds the default value on creation for the "follow_up_answer" field.
	DefaultFollowUpAnswer string
	// DefaultFollowUpAnswered holds the default value on creation for the "follow_up_answered" field.
	DefaultFollowUpAnswered bool
	// DefaultFollowUpCorrect holds the default value on creation for the "follow_up_correct" field.
	DefaultFollowUpCorrect bool
	// DefaultResolved holds the default value on creation for the "resolved" field.
	DefaultResolved bool
)

// OrderOption defines the ordering options for the RemediationRecord queries.
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

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByLectureID orders the results by the lecture_id field.
func ByLectureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLectureID, opts...).ToFunc()
}

// ByPausePointID orders the results by the pause_point_id field.
func ByPausePointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPausePointID, opts...).ToFunc()
}

// ByMisconception orders the results by the misconception field.
func ByMisconception(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMisconception, opts...).ToFunc()
}

// ByMissingConcept orders the results by the missing_concept field.
func ByMissingConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMissingConcept, opts...).ToFunc()
}

// ByRootCause orders the results by the root_cause field.
func ByRootCause(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRootCause, opts...).ToFunc()
}

// ByJumpToSeconds orders the results by the jump_to_seconds field.
func ByJumpToSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJumpToSeconds, opts...).ToFunc()
}

// ByEndSeconds orders the results by the end_seconds field.
func ByEndSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndSeconds, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByFollowUpQuestion orders the results by the follow_up_question field.
func ByFollowUpQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpQuestion, opts...).ToFunc()
}

// ByFollowUpAnswer orders the results by the follow_up_answer field.
func ByFollowUpAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpAnswer, opts...).ToFunc()
}

// ByFollowUpAnswered orders the results by the follow_up_answered field.
func ByFollowUpAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpAnswered, opts...).ToFunc()
}

// ByFollowUpCorrect orders the results by the follow_up_correct field.
func ByFollowUpCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowUpCorrect, opts...).ToFunc()
}

// ByResolved orders the results by the resolved field.
func ByResolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolved, opts...).ToFunc()
}
