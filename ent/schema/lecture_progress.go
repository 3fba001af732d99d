package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LectureProgress is the per-(learner, lecture) playback record. Unlike the
// event tables it is mutable: the heartbeat and pause-point resolutions
// upsert it with last-write-wins semantics.
type LectureProgress struct {
	ent.Schema
}

// PausePointResponse is the serialized per-pause-point outcome stored in
// the responses JSON column.
type PausePointResponse struct {
	Answer     string    `json:"answer"`
	Correct    bool      `json:"correct"`
	Grade      *int      `json:"grade,omitempty"`
	Confidence string    `json:"confidence"`
	Points     int       `json:"points"`
	AnsweredAt time.Time `json:"answered_at"`
}

func (LectureProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("lecture_id").
			NotEmpty(),
		field.Float("video_position").
			Default(0).
			Comment("Max seconds watched; monotonic except privileged jumps"),
		field.Strings("completed_pause_points").
			Optional().
			Comment("Pause point IDs already answered; never re-trigger"),
		field.JSON("responses", map[string]PausePointResponse{}).
			Optional().
			Comment("Pause point ID -> recorded outcome"),
		field.Int("total_points_earned").
			Default(0).
			Comment("Floored at 0 when reported; deltas may be negative"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LectureProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "lecture_id").
			Unique(),
	}
}
