package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded quiz answer and the mastery movement
// the estimator derived from it.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner who answered"),
		field.String("competency_id").
			NotEmpty().
			Comment("Competency this question assessed"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds spent on the question"),
		field.Float("mastery_before").
			Comment("Estimate going into the update"),
		field.Float("mastery_after").
			Comment("Estimate after observation + learning step"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("competency_id"),
		index.Fields("correct"),
	}
}
