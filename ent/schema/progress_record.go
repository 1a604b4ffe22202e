package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord holds the cumulative pronunciation progress for one
// (learner, target unit) pair. It is upserted on every attempt; the
// version field guards the read-modify-write cycle against concurrent
// submissions for the same pair.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("unit_id").NotEmpty(),
		field.Int64("version").Default(1).
			Comment("Optimistic concurrency token, bumped on every write"),
		field.Int("attempts").Default(0),
		field.Float("best_score").Default(0),
		field.Float("last_score").Default(0),
		field.Float("avg_score").Default(0).
			Comment("Incremental running mean of all attempt scores"),
		field.JSON("weak_letters", []string{}).Optional(),
		field.JSON("weak_phonemes", []string{}).Optional(),
		field.Bool("passed").Default(false),
		field.Time("passed_at").Optional().Nillable(),
		field.Time("last_attempt_at").Optional().Nillable(),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "unit_id").Unique(),
		index.Fields("learner_id"),
	}
}
