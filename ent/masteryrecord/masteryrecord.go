// Code generated by ent, DO NOT EDIT.

package masteryrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the masteryrecord type in the database.
	Label = "mastery_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldWord holds the string denoting the word field in the database.
	FieldWord = "word"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldObservations holds the string denoting the observations field in the database.
	FieldObservations = "observations"
	// FieldSuccesses holds the string denoting the successes field in the database.
	FieldSuccesses = "successes"
	// FieldAvgScore holds the string denoting the avg_score field in the database.
	FieldAvgScore = "avg_score"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldInitialDifficulty holds the string denoting the initial_difficulty field in the database.
	FieldInitialDifficulty = "initial_difficulty"
	// FieldImprovementRate holds the string denoting the improvement_rate field in the database.
	FieldImprovementRate = "improvement_rate"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldScoreHistory holds the string denoting the score_history field in the database.
	FieldScoreHistory = "score_history"
	// FieldMasteredAt holds the string denoting the mastered_at field in the database.
	FieldMasteredAt = "mastered_at"
	// Table holds the table name of the masteryrecord in the database.
	Table = "mastery_records"
)

// Columns holds all SQL columns for masteryrecord fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldWord,
	FieldVersion,
	FieldObservations,
	FieldSuccesses,
	FieldAvgScore,
	FieldDifficulty,
	FieldInitialDifficulty,
	FieldImprovementRate,
	FieldLevel,
	FieldScoreHistory,
	FieldMasteredAt,
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
	// WordValidator is a validator for the "word" field. It is called by the builders before save.
	WordValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultObservations holds the default value on creation for the "observations" field.
	DefaultObservations int
	// DefaultSuccesses holds the default value on creation for the "successes" field.
	DefaultSuccesses int
	// DefaultAvgScore holds the default value on creation for the "avg_score" field.
	DefaultAvgScore float64
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty float64
	// DefaultInitialDifficulty holds the default value on creation for the "initial_difficulty" field.
	DefaultInitialDifficulty float64
	// DefaultImprovementRate holds the default value on creation for the "improvement_rate" field.
	DefaultImprovementRate float64
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel string
)

// OrderOption defines the ordering options for the MasteryRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByWord orders the results by the word field.
func ByWord(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWord, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByObservations orders the results by the observations field.
func ByObservations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservations, opts...).ToFunc()
}

// BySuccesses orders the results by the successes field.
func BySuccesses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccesses, opts...).ToFunc()
}

// ByAvgScore orders the results by the avg_score field.
func ByAvgScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgScore, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByInitialDifficulty orders the results by the initial_difficulty field.
func ByInitialDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialDifficulty, opts...).ToFunc()
}

// ByImprovementRate orders the results by the improvement_rate field.
func ByImprovementRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovementRate, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByMasteredAt orders the results by the mastered_at field.
func ByMasteredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteredAt, opts...).ToFunc()
}
