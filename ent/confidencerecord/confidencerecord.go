// Code generated by ent, DO NOT EDIT.

package confidencerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the confidencerecord type in the database.
	Label = "confidence_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldPronunciation holds the string denoting the pronunciation field in the database.
	FieldPronunciation = "pronunciation"
	// FieldCompletionRate holds the string denoting the completion_rate field in the database.
	FieldCompletionRate = "completion_rate"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldTrend holds the string denoting the trend field in the database.
	FieldTrend = "trend"
	// FieldHistory holds the string denoting the history field in the database.
	FieldHistory = "history"
	// FieldComputedAt holds the string denoting the computed_at field in the database.
	FieldComputedAt = "computed_at"
	// Table holds the table name of the confidencerecord in the database.
	Table = "confidence_records"
)

// Columns holds all SQL columns for confidencerecord fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldScore,
	FieldPronunciation,
	FieldCompletionRate,
	FieldLabel,
	FieldTrend,
	FieldHistory,
	FieldComputedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultComputedAt holds the default value on creation for the "computed_at" field.
	DefaultComputedAt func() time.Time
)

// OrderOption defines the ordering options for the ConfidenceRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByPronunciation orders the results by the pronunciation field.
func ByPronunciation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPronunciation, opts...).ToFunc()
}

// ByCompletionRate orders the results by the completion_rate field.
func ByCompletionRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionRate, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByTrend orders the results by the trend field.
func ByTrend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrend, opts...).ToFunc()
}

// ByComputedAt orders the results by the computed_at field.
func ByComputedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComputedAt, opts...).ToFunc()
}
