// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/smehra/sayright/ent/masteryrecord"
	"github.com/smehra/sayright/internal/mastery"
)

// MasteryRecord is the model entity for the MasteryRecord schema.
type MasteryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Word holds the value of the "word" field.
	Word string `json:"word,omitempty"`
	// Optimistic concurrency token, bumped on every write
	Version int64 `json:"version,omitempty"`
	// Observations holds the value of the "observations" field.
	Observations int `json:"observations,omitempty"`
	// Successes holds the value of the "successes" field.
	Successes int `json:"successes,omitempty"`
	// AvgScore holds the value of the "avg_score" field.
	AvgScore float64 `json:"avg_score,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty float64 `json:"difficulty,omitempty"`
	// Captured on first observation, never recomputed
	InitialDifficulty float64 `json:"initial_difficulty,omitempty"`
	// ImprovementRate holds the value of the "improvement_rate" field.
	ImprovementRate float64 `json:"improvement_rate,omitempty"`
	// Level holds the value of the "level" field.
	Level string `json:"level,omitempty"`
	// ScoreHistory holds the value of the "score_history" field.
	ScoreHistory []mastery.Observation `json:"score_history,omitempty"`
	// Set when the word first reaches mastered, never cleared
	MasteredAt   *time.Time `json:"mastered_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MasteryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case masteryrecord.FieldScoreHistory:
			values[i] = new([]byte)
		case masteryrecord.FieldAvgScore, masteryrecord.FieldDifficulty, masteryrecord.FieldInitialDifficulty, masteryrecord.FieldImprovementRate:
			values[i] = new(sql.NullFloat64)
		case masteryrecord.FieldID, masteryrecord.FieldVersion, masteryrecord.FieldObservations, masteryrecord.FieldSuccesses:
			values[i] = new(sql.NullInt64)
		case masteryrecord.FieldLearnerID, masteryrecord.FieldWord, masteryrecord.FieldLevel:
			values[i] = new(sql.NullString)
		case masteryrecord.FieldMasteredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MasteryRecord fields.
func (_m *MasteryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case masteryrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case masteryrecord.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case masteryrecord.FieldWord:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word", values[i])
			} else if value.Valid {
				_m.Word = value.String
			}
		case masteryrecord.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case masteryrecord.FieldObservations:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field observations", values[i])
			} else if value.Valid {
				_m.Observations = int(value.Int64)
			}
		case masteryrecord.FieldSuccesses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successes", values[i])
			} else if value.Valid {
				_m.Successes = int(value.Int64)
			}
		case masteryrecord.FieldAvgScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_score", values[i])
			} else if value.Valid {
				_m.AvgScore = value.Float64
			}
		case masteryrecord.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case masteryrecord.FieldInitialDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field initial_difficulty", values[i])
			} else if value.Valid {
				_m.InitialDifficulty = value.Float64
			}
		case masteryrecord.FieldImprovementRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_rate", values[i])
			} else if value.Valid {
				_m.ImprovementRate = value.Float64
			}
		case masteryrecord.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case masteryrecord.FieldScoreHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field score_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ScoreHistory); err != nil {
					return fmt.Errorf("unmarshal field score_history: %w", err)
				}
			}
		case masteryrecord.FieldMasteredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field mastered_at", values[i])
			} else if value.Valid {
				_m.MasteredAt = new(time.Time)
				*_m.MasteredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MasteryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MasteryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MasteryRecord.
// Note that you need to call MasteryRecord.Unwrap() before calling this method if this MasteryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MasteryRecord) Update() *MasteryRecordUpdateOne {
	return NewMasteryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MasteryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MasteryRecord) Unwrap() *MasteryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MasteryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MasteryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MasteryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("word=")
	builder.WriteString(_m.Word)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("observations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Observations))
	builder.WriteString(", ")
	builder.WriteString("successes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Successes))
	builder.WriteString(", ")
	builder.WriteString("avg_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgScore))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("initial_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.InitialDifficulty))
	builder.WriteString(", ")
	builder.WriteString("improvement_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImprovementRate))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("score_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreHistory))
	builder.WriteString(", ")
	if v := _m.MasteredAt; v != nil {
		builder.WriteString("mastered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MasteryRecords is a parsable slice of MasteryRecord.
type MasteryRecords []*MasteryRecord
