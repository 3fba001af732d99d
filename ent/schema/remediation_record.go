package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RemediationRecord stores one detect-explain-retest cycle triggered by an
// incorrect pause-point answer. Persisted before anything is shown to the
// learner; resolution flags are updated as the learner works through it.
type RemediationRecord struct {
	ent.Schema
}

func (RemediationRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RemediationRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("lecture_id").
			NotEmpty(),
		field.String("pause_point_id").
			NotEmpty(),
		field.String("misconception").
			Comment("Detected misconception text"),
		field.String("missing_concept"),
		field.String("root_cause").
			Default(""),
		field.Float("jump_to_seconds").
			Comment("Start of the remediation timestamp range"),
		field.Float("end_seconds").
			Comment("End of the range; boundary watcher pauses here"),
		field.String("explanation").
			Comment("Generated explanation shown to the learner"),
		field.String("follow_up_question").
			Default("").
			Comment("Empty when no follow-up was generated"),
		field.String("follow_up_answer").
			Default(""),
		field.Bool("follow_up_answered").
			Default(false),
		field.Bool("follow_up_correct").
			Default(false),
		field.Bool("resolved").
			Default(false),
	}
}

func (RemediationRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "lecture_id"),
		index.Fields("pause_point_id"),
		index.Fields("resolved"),
	}
}
