package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/smehra/sayright/internal/scorer"
)

// AttemptEvent is the immutable record of a single pronunciation attempt.
// Attempts are only ever appended; progress and mastery state are folds
// over this log.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("unit_id").NotEmpty(),
		field.Int("attempt_number").Positive(),
		field.Float("overall_score"),
		field.Float("fluency_score").Optional().Nillable(),
		field.Bool("passed"),
		field.Float("threshold"),
		field.JSON("word_scores", []scorer.WordScore{}).Optional(),
		field.JSON("weak_letters", []string{}).Optional(),
		field.JSON("weak_phonemes", []string{}).Optional(),
		field.String("idempotency_key").Optional().Unique(),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "unit_id"),
		index.Fields("learner_id", "timestamp"),
	}
}
