// Code generated by ent, DO NOT EDIT.

package confidencerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/smehra/sayright/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldLearnerID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldScore, v))
}

// Pronunciation applies equality check predicate on the "pronunciation" field. It's identical to PronunciationEQ.
func Pronunciation(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldPronunciation, v))
}

// CompletionRate applies equality check predicate on the "completion_rate" field. It's identical to CompletionRateEQ.
func CompletionRate(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldCompletionRate, v))
}

// Trend applies equality check predicate on the "trend" field. It's identical to TrendEQ.
func Trend(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldTrend, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldComputedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldContainsFold(FieldLearnerID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLTE(FieldScore, v))
}

// PronunciationEQ applies the EQ predicate on the "pronunciation" field.
func PronunciationEQ(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldPronunciation, v))
}

// PronunciationNEQ applies the NEQ predicate on the "pronunciation" field.
func PronunciationNEQ(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNEQ(FieldPronunciation, v))
}

// PronunciationIn applies the In predicate on the "pronunciation" field.
func PronunciationIn(vs ...float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldIn(FieldPronunciation, vs...))
}

// PronunciationNotIn applies the NotIn predicate on the "pronunciation" field.
func PronunciationNotIn(vs ...float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNotIn(FieldPronunciation, vs...))
}

// PronunciationGT applies the GT predicate on the "pronunciation" field.
func PronunciationGT(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGT(FieldPronunciation, v))
}

// PronunciationGTE applies the GTE predicate on the "pronunciation" field.
func PronunciationGTE(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGTE(FieldPronunciation, v))
}

// PronunciationLT applies the LT predicate on the "pronunciation" field.
func PronunciationLT(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLT(FieldPronunciation, v))
}

// PronunciationLTE applies the LTE predicate on the "pronunciation" field.
func PronunciationLTE(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLTE(FieldPronunciation, v))
}

// CompletionRateEQ applies the EQ predicate on the "completion_rate" field.
func CompletionRateEQ(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldCompletionRate, v))
}

// CompletionRateNEQ applies the NEQ predicate on the "completion_rate" field.
func CompletionRateNEQ(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNEQ(FieldCompletionRate, v))
}

// CompletionRateIn applies the In predicate on the "completion_rate" field.
func CompletionRateIn(vs ...float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldIn(FieldCompletionRate, vs...))
}

// CompletionRateNotIn applies the NotIn predicate on the "completion_rate" field.
func CompletionRateNotIn(vs ...float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNotIn(FieldCompletionRate, vs...))
}

// CompletionRateGT applies the GT predicate on the "completion_rate" field.
func CompletionRateGT(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGT(FieldCompletionRate, v))
}

// CompletionRateGTE applies the GTE predicate on the "completion_rate" field.
func CompletionRateGTE(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGTE(FieldCompletionRate, v))
}

// CompletionRateLT applies the LT predicate on the "completion_rate" field.
func CompletionRateLT(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLT(FieldCompletionRate, v))
}

// CompletionRateLTE applies the LTE predicate on the "completion_rate" field.
func CompletionRateLTE(v float64) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLTE(FieldCompletionRate, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldContainsFold(FieldLabel, v))
}

// TrendEQ applies the EQ predicate on the "trend" field.
func TrendEQ(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldTrend, v))
}

// TrendNEQ applies the NEQ predicate on the "trend" field.
func TrendNEQ(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNEQ(FieldTrend, v))
}

// TrendIn applies the In predicate on the "trend" field.
func TrendIn(vs ...string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldIn(FieldTrend, vs...))
}

// TrendNotIn applies the NotIn predicate on the "trend" field.
func TrendNotIn(vs ...string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNotIn(FieldTrend, vs...))
}

// TrendGT applies the GT predicate on the "trend" field.
func TrendGT(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGT(FieldTrend, v))
}

// TrendGTE applies the GTE predicate on the "trend" field.
func TrendGTE(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGTE(FieldTrend, v))
}

// TrendLT applies the LT predicate on the "trend" field.
func TrendLT(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLT(FieldTrend, v))
}

// TrendLTE applies the LTE predicate on the "trend" field.
func TrendLTE(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLTE(FieldTrend, v))
}

// TrendContains applies the Contains predicate on the "trend" field.
func TrendContains(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldContains(FieldTrend, v))
}

// TrendHasPrefix applies the HasPrefix predicate on the "trend" field.
func TrendHasPrefix(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldHasPrefix(FieldTrend, v))
}

// TrendHasSuffix applies the HasSuffix predicate on the "trend" field.
func TrendHasSuffix(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldHasSuffix(FieldTrend, v))
}

// TrendEqualFold applies the EqualFold predicate on the "trend" field.
func TrendEqualFold(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEqualFold(FieldTrend, v))
}

// TrendContainsFold applies the ContainsFold predicate on the "trend" field.
func TrendContainsFold(v string) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldContainsFold(FieldTrend, v))
}

// HistoryIsNil applies the IsNil predicate on the "history" field.
func HistoryIsNil() predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldIsNull(FieldHistory))
}

// HistoryNotNil applies the NotNil predicate on the "history" field.
func HistoryNotNil() predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNotNull(FieldHistory))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.FieldLTE(FieldComputedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConfidenceRecord) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConfidenceRecord) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConfidenceRecord) predicate.ConfidenceRecord {
	return predicate.ConfidenceRecord(sql.NotPredicates(p))
}
