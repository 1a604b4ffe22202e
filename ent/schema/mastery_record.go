package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/smehra/sayright/internal/mastery"
)

// MasteryRecord tracks mastery of a single word for a learner. It is wider
// than pronunciation: any drill type that scores the word folds into it.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("word").NotEmpty(),
		field.Int64("version").Default(1).
			Comment("Optimistic concurrency token, bumped on every write"),
		field.Int("observations").Default(0),
		field.Int("successes").Default(0),
		field.Float("avg_score").Default(0),
		field.Float("difficulty").Default(0),
		field.Float("initial_difficulty").Default(0).
			Comment("Captured on first observation, never recomputed"),
		field.Float("improvement_rate").Default(0),
		field.String("level").Default(string(mastery.LevelStruggling)),
		field.JSON("score_history", []mastery.Observation{}).Optional(),
		field.Time("mastered_at").Optional().Nillable().
			Comment("Set when the word first reaches mastered, never cleared"),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "word").Unique(),
		index.Fields("learner_id"),
	}
}
