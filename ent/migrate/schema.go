// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "lecture_id", Type: field.TypeString, Default: ""},
		{Name: "pause_point_id", Type: field.TypeString, Default: ""},
		{Name: "answer", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "grade", Type: field.TypeInt, Nullable: true},
		{Name: "points", Type: field.TypeInt},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_learner_id_item_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4], AttemptEventsColumns[5]},
			},
			{
				Name:    "attemptevent_lecture_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[6]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[10]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LectureProgressesColumns holds the columns for the "lecture_progresses" table.
	LectureProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lecture_id", Type: field.TypeString},
		{Name: "video_position", Type: field.TypeFloat64, Default: 0},
		{Name: "completed_pause_points", Type: field.TypeJSON, Nullable: true},
		{Name: "responses", Type: field.TypeJSON, Nullable: true},
		{Name: "total_points_earned", Type: field.TypeInt, Default: 0},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LectureProgressesTable holds the schema information for the "lecture_progresses" table.
	LectureProgressesTable = &schema.Table{
		Name:       "lecture_progresses",
		Columns:    LectureProgressesColumns,
		PrimaryKey: []*schema.Column{LectureProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lectureprogress_learner_id_lecture_id",
				Unique:  true,
				Columns: []*schema.Column{LectureProgressesColumns[1], LectureProgressesColumns[2]},
			},
		},
	}
	// PlaybackEventsColumns holds the columns for the "playback_events" table.
	PlaybackEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lecture_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "from_seconds", Type: field.TypeFloat64},
		{Name: "to_seconds", Type: field.TypeFloat64},
		{Name: "requested_seconds", Type: field.TypeFloat64},
	}
	// PlaybackEventsTable holds the schema information for the "playback_events" table.
	PlaybackEventsTable = &schema.Table{
		Name:       "playback_events",
		Columns:    PlaybackEventsColumns,
		PrimaryKey: []*schema.Column{PlaybackEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "playbackevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlaybackEventsColumns[1]},
			},
			{
				Name:    "playbackevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlaybackEventsColumns[2]},
			},
			{
				Name:    "playbackevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PlaybackEventsColumns[3]},
			},
			{
				Name:    "playbackevent_lecture_id",
				Unique:  false,
				Columns: []*schema.Column{PlaybackEventsColumns[5]},
			},
			{
				Name:    "playbackevent_kind",
				Unique:  false,
				Columns: []*schema.Column{PlaybackEventsColumns[6]},
			},
		},
	}
	// RemediationRecordsColumns holds the columns for the "remediation_records" table.
	RemediationRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lecture_id", Type: field.TypeString},
		{Name: "pause_point_id", Type: field.TypeString},
		{Name: "misconception", Type: field.TypeString},
		{Name: "missing_concept", Type: field.TypeString},
		{Name: "root_cause", Type: field.TypeString, Default: ""},
		{Name: "jump_to_seconds", Type: field.TypeFloat64},
		{Name: "end_seconds", Type: field.TypeFloat64},
		{Name: "explanation", Type: field.TypeString},
		{Name: "follow_up_question", Type: field.TypeString, Default: ""},
		{Name: "follow_up_answer", Type: field.TypeString, Default: ""},
		{Name: "follow_up_answered", Type: field.TypeBool, Default: false},
		{Name: "follow_up_correct", Type: field.TypeBool, Default: false},
		{Name: "resolved", Type: field.TypeBool, Default: false},
	}
	// RemediationRecordsTable holds the schema information for the "remediation_records" table.
	RemediationRecordsTable = &schema.Table{
		Name:       "remediation_records",
		Columns:    RemediationRecordsColumns,
		PrimaryKey: []*schema.Column{RemediationRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "remediationrecord_sequence",
				Unique:  false,
				Columns: []*schema.Column{RemediationRecordsColumns[1]},
			},
			{
				Name:    "remediationrecord_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RemediationRecordsColumns[2]},
			},
			{
				Name:    "remediationrecord_learner_id_lecture_id",
				Unique:  false,
				Columns: []*schema.Column{RemediationRecordsColumns[3], RemediationRecordsColumns[4]},
			},
			{
				Name:    "remediationrecord_pause_point_id",
				Unique:  false,
				Columns: []*schema.Column{RemediationRecordsColumns[5]},
			},
			{
				Name:    "remediationrecord_resolved",
				Unique:  false,
				Columns: []*schema.Column{RemediationRecordsColumns[16]},
			},
		},
	}
	// ReviewRecordsColumns holds the columns for the "review_records" table.
	ReviewRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "next_review_date", Type: field.TypeTime},
		{Name: "last_reviewed_date", Type: field.TypeTime},
		{Name: "repetition_number", Type: field.TypeInt, Default: 1},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReviewRecordsTable holds the schema information for the "review_records" table.
	ReviewRecordsTable = &schema.Table{
		Name:       "review_records",
		Columns:    ReviewRecordsColumns,
		PrimaryKey: []*schema.Column{ReviewRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewrecord_learner_id_item_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewRecordsColumns[1], ReviewRecordsColumns[2]},
			},
			{
				Name:    "reviewrecord_learner_id_next_review_date",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[1], ReviewRecordsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lecture_id", Type: field.TypeString, Default: ""},
		{Name: "action", Type: field.TypeString},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "points_earned", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		LlmRequestEventsTable,
		LectureProgressesTable,
		PlaybackEventsTable,
		RemediationRecordsTable,
		ReviewRecordsTable,
		SessionEventsTable,
	}
)

func init() {
}
