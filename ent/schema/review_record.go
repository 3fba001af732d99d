package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewRecord is the per-(learner, item) spaced repetition state.
// Created on the first attempt of an item, mutated on every subsequent
// attempt, never deleted.
type ReviewRecord struct {
	ent.Schema
}

func (ReviewRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty(),
		field.Int("interval_days").
			Default(1).
			Min(1),
		field.Float("ease_factor").
			Default(2.5).
			Comment("Floored at 1.3 by the scheduler"),
		field.Time("next_review_date"),
		field.Time("last_reviewed_date"),
		field.Int("repetition_number").
			Default(1).
			Min(1),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ReviewRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "item_id").
			Unique(),
		index.Fields("learner_id", "next_review_date"),
	}
}
