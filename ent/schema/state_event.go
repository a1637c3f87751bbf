package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StateEvent records a cognitive state change together with the signals that
// produced it, for history display and threshold tuning.
type StateEvent struct {
	ent.Schema
}

func (StateEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StateEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Optional().
			Comment("Tutoring session the state belongs to"),
		field.String("state").
			NotEmpty().
			Comment("focused, confused, or frustrated"),
		field.Int("score").
			Comment("Accumulated rule score (0 when a hard override fired)"),
		field.String("facial").
			Optional().
			Comment("Facial-expression label at classification time"),
		field.String("vocal").
			Optional().
			Comment("Vocal-state label at classification time"),
		field.Int("rephrase_count"),
		field.Int("backspace_count"),
	}
}

func (StateEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("state"),
	}
}
