package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single graded answer, either at a pause point
// or during a standalone review session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a playback or review session"),
		field.String("learner_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty().
			Comment("PracticeItem this attempt was for"),
		field.String("lecture_id").
			Default("").
			Comment("Lecture, when the attempt happened at a pause point"),
		field.String("pause_point_id").
			Default("").
			Comment("Pause point, when applicable"),
		field.String("answer").
			NotEmpty().
			Comment("What the learner submitted"),
		field.String("confidence").
			NotEmpty().
			Comment("not_sure, maybe, pretty_sure, absolutely_sure"),
		field.Bool("correct"),
		field.Int("grade").
			Optional().
			Nillable().
			Comment("0-100, present only for collaborator-graded short answers"),
		field.Int("points").
			Comment("Signed point delta from the scoring engine"),
		field.Int("time_ms").
			Comment("Milliseconds from question shown to submission"),
		field.Bool("needs_review").
			Default(false).
			Comment("Set when grading fell back after a collaborator failure"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id", "item_id"),
		index.Fields("lecture_id"),
		index.Fields("correct"),
	}
}
