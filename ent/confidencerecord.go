// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/smehra/sayright/ent/confidencerecord"
	"github.com/smehra/sayright/internal/confidence"
)

// ConfidenceRecord is the model entity for the ConfidenceRecord schema.
type ConfidenceRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// Pronunciation holds the value of the "pronunciation" field.
	Pronunciation float64 `json:"pronunciation,omitempty"`
	// CompletionRate holds the value of the "completion_rate" field.
	CompletionRate float64 `json:"completion_rate,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// Trend holds the value of the "trend" field.
	Trend string `json:"trend,omitempty"`
	// History holds the value of the "history" field.
	History []confidence.Entry `json:"history,omitempty"`
	// ComputedAt holds the value of the "computed_at" field.
	ComputedAt   time.Time `json:"computed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConfidenceRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case confidencerecord.FieldHistory:
			values[i] = new([]byte)
		case confidencerecord.FieldPronunciation, confidencerecord.FieldCompletionRate:
			values[i] = new(sql.NullFloat64)
		case confidencerecord.FieldID, confidencerecord.FieldScore:
			values[i] = new(sql.NullInt64)
		case confidencerecord.FieldLearnerID, confidencerecord.FieldLabel, confidencerecord.FieldTrend:
			values[i] = new(sql.NullString)
		case confidencerecord.FieldComputedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConfidenceRecord fields.
func (_m *ConfidenceRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case confidencerecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case confidencerecord.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case confidencerecord.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case confidencerecord.FieldPronunciation:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pronunciation", values[i])
			} else if value.Valid {
				_m.Pronunciation = value.Float64
			}
		case confidencerecord.FieldCompletionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_rate", values[i])
			} else if value.Valid {
				_m.CompletionRate = value.Float64
			}
		case confidencerecord.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case confidencerecord.FieldTrend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trend", values[i])
			} else if value.Valid {
				_m.Trend = value.String
			}
		case confidencerecord.FieldHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.History); err != nil {
					return fmt.Errorf("unmarshal field history: %w", err)
				}
			}
		case confidencerecord.FieldComputedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field computed_at", values[i])
			} else if value.Valid {
				_m.ComputedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConfidenceRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ConfidenceRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConfidenceRecord.
// Note that you need to call ConfidenceRecord.Unwrap() before calling this method if this ConfidenceRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConfidenceRecord) Update() *ConfidenceRecordUpdateOne {
	return NewConfidenceRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConfidenceRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConfidenceRecord) Unwrap() *ConfidenceRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConfidenceRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConfidenceRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ConfidenceRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("pronunciation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pronunciation))
	builder.WriteString(", ")
	builder.WriteString("completion_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionRate))
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("trend=")
	builder.WriteString(_m.Trend)
	builder.WriteString(", ")
	builder.WriteString("history=")
	builder.WriteString(fmt.Sprintf("%v", _m.History))
	builder.WriteString(", ")
	builder.WriteString("computed_at=")
	builder.WriteString(_m.ComputedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConfidenceRecords is a parsable slice of ConfidenceRecord.
type ConfidenceRecords []*ConfidenceRecord
