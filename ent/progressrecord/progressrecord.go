// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressrecord type in the database.
	Label = "progress_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldBestScore holds the string denoting the best_score field in the database.
	FieldBestScore = "best_score"
	// FieldLastScore holds the string denoting the last_score field in the database.
	FieldLastScore = "last_score"
	// FieldAvgScore holds the string denoting the avg_score field in the database.
	FieldAvgScore = "avg_score"
	// FieldWeakLetters holds the string denoting the weak_letters field in the database.
	FieldWeakLetters = "weak_letters"
	// FieldWeakPhonemes holds the string denoting the weak_phonemes field in the database.
	FieldWeakPhonemes = "weak_phonemes"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldPassedAt holds the string denoting the passed_at field in the database.
	FieldPassedAt = "passed_at"
	// FieldLastAttemptAt holds the string denoting the last_attempt_at field in the database.
	FieldLastAttemptAt = "last_attempt_at"
	// Table holds the table name of the progressrecord in the database.
	Table = "progress_records"
)

// Columns holds all SQL columns for progressrecord fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldUnitID,
	FieldVersion,
	FieldAttempts,
	FieldBestScore,
	FieldLastScore,
	FieldAvgScore,
	FieldWeakLetters,
	FieldWeakPhonemes,
	FieldPassed,
	FieldPassedAt,
	FieldLastAttemptAt,
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
	// UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	UnitIDValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultBestScore holds the default value on creation for the "best_score" field.
	DefaultBestScore float64
	// DefaultLastScore holds the default value on creation for the "last_score" field.
	DefaultLastScore float64
	// DefaultAvgScore holds the default value on creation for the "avg_score" field.
	DefaultAvgScore float64
	// DefaultPassed holds the default value on creation for the "passed" field.
	DefaultPassed bool
)

// OrderOption defines the ordering options for the ProgressRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByBestScore orders the results by the best_score field.
func ByBestScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestScore, opts...).ToFunc()
}

// ByLastScore orders the results by the last_score field.
func ByLastScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScore, opts...).ToFunc()
}

// ByAvgScore orders the results by the avg_score field.
func ByAvgScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgScore, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByPassedAt orders the results by the passed_at field.
func ByPassedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassedAt, opts...).ToFunc()
}

// ByLastAttemptAt orders the results by the last_attempt_at field.
func ByLastAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptAt, opts...).ToFunc()
}
