package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/smehra/sayright/internal/confidence"
)

// ConfidenceRecord stores the latest confidence snapshot per learner along
// with the capped score history used for trend classification.
type ConfidenceRecord struct {
	ent.Schema
}

func (ConfidenceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty().Unique(),
		field.Int("score"),
		field.Float("pronunciation"),
		field.Float("completion_rate"),
		field.String("label"),
		field.String("trend"),
		field.JSON("history", []confidence.Entry{}).Optional(),
		field.Time("computed_at").Default(time.Now),
	}
}

func (ConfidenceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("computed_at"),
	}
}
