// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LectureProgress is the predicate function for lectureprogress builders.
type LectureProgress func(*sql.Selector)

// PlaybackEvent is the predicate function for playbackevent builders.
type PlaybackEvent func(*sql.Selector)

// RemediationRecord is the predicate function for remediationrecord builders.
type RemediationRecord func(*sql.Selector)

// ReviewRecord is the predicate function for reviewrecord builders.
type ReviewRecord func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
