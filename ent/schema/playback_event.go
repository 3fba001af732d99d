package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlaybackEvent records notable playback incidents: blocked forward skips
// and privileged remediation jumps.
type PlaybackEvent struct {
	ent.Schema
}

func (PlaybackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlaybackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("learner_id").
			NotEmpty(),
		field.String("lecture_id").
			NotEmpty(),
		field.String("kind").
			NotEmpty().
			Comment("blocked_skip or remediation_jump"),
		field.Float("from_seconds"),
		field.Float("to_seconds").
			Comment("Where playback actually ended up after the event"),
		field.Float("requested_seconds").
			Comment("Where the seek asked to go"),
	}
}

func (PlaybackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lecture_id"),
		index.Fields("kind"),
	}
}
