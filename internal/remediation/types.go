// Package remediation runs the detect-explain-retest loop after an
// incorrect answer: identify the misconception, generate a targeted
// explanation with a video segment to rewatch, and optionally a
// follow-up question to retest the concept.
package remediation

// Detection is the misconception-detection output for one wrong answer.
type Detection struct {
	Misconception  string
	MissingConcept string
	RootCause      string

	// JumpToSeconds and EndSeconds bound the lecture segment to rewatch.
	JumpToSeconds float64
	EndSeconds    float64
}

// FollowUp is an exact-match retest question generated alongside the
// explanation.
type FollowUp struct {
	Question string
	Answer   string
}

// Plan is the full remediation handed to the state machine: the detection,
// the generated explanation, and an optional follow-up. ID references the
// persisted record.
type Plan struct {
	ID          int
	Detection   Detection
	Explanation string
	FollowUp    *FollowUp
}

// Request describes the wrong answer to remediate.
type Request struct {
	LearnerID     string
	LectureID     string
	PausePointID  string
	QuestionText  string
	CorrectAnswer string
	StudentAnswer string
	QuestionType  string

	// Transcript is the lecture transcript with timestamps, used by the
	// detector to pick the segment to rewatch.
	Transcript string

	// DurationSeconds bounds the recommended segment.
	DurationSeconds float64
}
