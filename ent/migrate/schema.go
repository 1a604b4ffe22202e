// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "overall_score", Type: field.TypeFloat64},
		{Name: "fluency_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "passed", Type: field.TypeBool},
		{Name: "threshold", Type: field.TypeFloat64},
		{Name: "word_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "weak_letters", Type: field.TypeJSON, Nullable: true},
		{Name: "weak_phonemes", Type: field.TypeJSON, Nullable: true},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true, Nullable: true},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner_id_unit_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_learner_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[2]},
			},
		},
	}
	// ConfidenceRecordsColumns holds the columns for the "confidence_records" table.
	ConfidenceRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "score", Type: field.TypeInt},
		{Name: "pronunciation", Type: field.TypeFloat64},
		{Name: "completion_rate", Type: field.TypeFloat64},
		{Name: "label", Type: field.TypeString},
		{Name: "trend", Type: field.TypeString},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "computed_at", Type: field.TypeTime},
	}
	// ConfidenceRecordsTable holds the schema information for the "confidence_records" table.
	ConfidenceRecordsTable = &schema.Table{
		Name:       "confidence_records",
		Columns:    ConfidenceRecordsColumns,
		PrimaryKey: []*schema.Column{ConfidenceRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "confidencerecord_computed_at",
				Unique:  false,
				Columns: []*schema.Column{ConfidenceRecordsColumns[8]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "word", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "observations", Type: field.TypeInt, Default: 0},
		{Name: "successes", Type: field.TypeInt, Default: 0},
		{Name: "avg_score", Type: field.TypeFloat64, Default: 0},
		{Name: "difficulty", Type: field.TypeFloat64, Default: 0},
		{Name: "initial_difficulty", Type: field.TypeFloat64, Default: 0},
		{Name: "improvement_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "level", Type: field.TypeString, Default: "struggling"},
		{Name: "score_history", Type: field.TypeJSON, Nullable: true},
		{Name: "mastered_at", Type: field.TypeTime, Nullable: true},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_learner_id_word",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
			{
				Name:    "masteryrecord_learner_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "unit_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "best_score", Type: field.TypeFloat64, Default: 0},
		{Name: "last_score", Type: field.TypeFloat64, Default: 0},
		{Name: "avg_score", Type: field.TypeFloat64, Default: 0},
		{Name: "weak_letters", Type: field.TypeJSON, Nullable: true},
		{Name: "weak_phonemes", Type: field.TypeJSON, Nullable: true},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "passed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_attempt_at", Type: field.TypeTime, Nullable: true},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_learner_id_unit_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2]},
			},
			{
				Name:    "progressrecord_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		ConfidenceRecordsTable,
		MasteryRecordsTable,
		ProgressRecordsTable,
	}
)

func init() {
}
