// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/smehra/sayright/ent/confidencerecord"
	"github.com/smehra/sayright/ent/predicate"
	"github.com/smehra/sayright/internal/confidence"
)

// ConfidenceRecordUpdate is the builder for updating ConfidenceRecord entities.
type ConfidenceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ConfidenceRecordMutation
}

// Where appends a list predicates to the ConfidenceRecordUpdate builder.
func (_u *ConfidenceRecordUpdate) Where(ps ...predicate.ConfidenceRecord) *ConfidenceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ConfidenceRecordUpdate) SetLearnerID(v string) *ConfidenceRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ConfidenceRecordUpdate) SetNillableLearnerID(v *string) *ConfidenceRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ConfidenceRecordUpdate) SetScore(v int) *ConfidenceRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ConfidenceRecordUpdate) SetNillableScore(v *int) *ConfidenceRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ConfidenceRecordUpdate) AddScore(v int) *ConfidenceRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPronunciation sets the "pronunciation" field.
func (_u *ConfidenceRecordUpdate) SetPronunciation(v float64) *ConfidenceRecordUpdate {
	_u.mutation.ResetPronunciation()
	_u.mutation.SetPronunciation(v)
	return _u
}

// SetNillablePronunciation sets the "pronunciation" field if the given value is not nil.
func (_u *ConfidenceRecordUpdate) SetNillablePronunciation(v *float64) *ConfidenceRecordUpdate {
	if v != nil {
		_u.SetPronunciation(*v)
	}
	return _u
}

// AddPronunciation adds value to the "pronunciation" field.
func (_u *ConfidenceRecordUpdate) AddPronunciation(v float64) *ConfidenceRecordUpdate {
	_u.mutation.AddPronunciation(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *ConfidenceRecordUpdate) SetCompletionRate(v float64) *ConfidenceRecordUpdate {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *ConfidenceRecordUpdate) SetNillableCompletionRate(v *float64) *ConfidenceRecordUpdate {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *ConfidenceRecordUpdate) AddCompletionRate(v float64) *ConfidenceRecordUpdate {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *ConfidenceRecordUpdate) SetLabel(v string) *ConfidenceRecordUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ConfidenceRecordUpdate) SetNillableLabel(v *string) *ConfidenceRecordUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetTrend sets the "trend" field.
func (_u *ConfidenceRecordUpdate) SetTrend(v string) *ConfidenceRecordUpdate {
	_u.mutation.SetTrend(v)
	return _u
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (_u *ConfidenceRecordUpdate) SetNillableTrend(v *string) *ConfidenceRecordUpdate {
	if v != nil {
		_u.SetTrend(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *ConfidenceRecordUpdate) SetHistory(v []confidence.Entry) *ConfidenceRecordUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ConfidenceRecordUpdate) AppendHistory(v []confidence.Entry) *ConfidenceRecordUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ConfidenceRecordUpdate) ClearHistory() *ConfidenceRecordUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *ConfidenceRecordUpdate) SetComputedAt(v time.Time) *ConfidenceRecordUpdate {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *ConfidenceRecordUpdate) SetNillableComputedAt(v *time.Time) *ConfidenceRecordUpdate {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// Mutation returns the ConfidenceRecordMutation object of the builder.
func (_u *ConfidenceRecordUpdate) Mutation() *ConfidenceRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfidenceRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfidenceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfidenceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfidenceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfidenceRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := confidencerecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ConfidenceRecord.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ConfidenceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(confidencerecord.Table, confidencerecord.Columns, sqlgraph.NewFieldSpec(confidencerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(confidencerecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(confidencerecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(confidencerecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Pronunciation(); ok {
		_spec.SetField(confidencerecord.FieldPronunciation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPronunciation(); ok {
		_spec.AddField(confidencerecord.FieldPronunciation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(confidencerecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(confidencerecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(confidencerecord.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trend(); ok {
		_spec.SetField(confidencerecord.FieldTrend, field.TypeString, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(confidencerecord.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, confidencerecord.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(confidencerecord.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(confidencerecord.FieldComputedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{confidencerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfidenceRecordUpdateOne is the builder for updating a single ConfidenceRecord entity.
type ConfidenceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfidenceRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ConfidenceRecordUpdateOne) SetLearnerID(v string) *ConfidenceRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ConfidenceRecordUpdateOne) SetNillableLearnerID(v *string) *ConfidenceRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ConfidenceRecordUpdateOne) SetScore(v int) *ConfidenceRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ConfidenceRecordUpdateOne) SetNillableScore(v *int) *ConfidenceRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ConfidenceRecordUpdateOne) AddScore(v int) *ConfidenceRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPronunciation sets the "pronunciation" field.
func (_u *ConfidenceRecordUpdateOne) SetPronunciation(v float64) *ConfidenceRecordUpdateOne {
	_u.mutation.ResetPronunciation()
	_u.mutation.SetPronunciation(v)
	return _u
}

// SetNillablePronunciation sets the "pronunciation" field if the given value is not nil.
func (_u *ConfidenceRecordUpdateOne) SetNillablePronunciation(v *float64) *ConfidenceRecordUpdateOne {
	if v != nil {
		_u.SetPronunciation(*v)
	}
	return _u
}

// AddPronunciation adds value to the "pronunciation" field.
func (_u *ConfidenceRecordUpdateOne) AddPronunciation(v float64) *ConfidenceRecordUpdateOne {
	_u.mutation.AddPronunciation(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *ConfidenceRecordUpdateOne) SetCompletionRate(v float64) *ConfidenceRecordUpdateOne {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *ConfidenceRecordUpdateOne) SetNillableCompletionRate(v *float64) *ConfidenceRecordUpdateOne {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *ConfidenceRecordUpdateOne) AddCompletionRate(v float64) *ConfidenceRecordUpdateOne {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *ConfidenceRecordUpdateOne) SetLabel(v string) *ConfidenceRecordUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *ConfidenceRecordUpdateOne) SetNillableLabel(v *string) *ConfidenceRecordUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetTrend sets the "trend" field.
func (_u *ConfidenceRecordUpdateOne) SetTrend(v string) *ConfidenceRecordUpdateOne {
	_u.mutation.SetTrend(v)
	return _u
}

// SetNillableTrend sets the "trend" field if the given value is not nil.
func (_u *ConfidenceRecordUpdateOne) SetNillableTrend(v *string) *ConfidenceRecordUpdateOne {
	if v != nil {
		_u.SetTrend(*v)
	}
	return _u
}

// SetHistory sets the "history" field.
func (_u *ConfidenceRecordUpdateOne) SetHistory(v []confidence.Entry) *ConfidenceRecordUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ConfidenceRecordUpdateOne) AppendHistory(v []confidence.Entry) *ConfidenceRecordUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ConfidenceRecordUpdateOne) ClearHistory() *ConfidenceRecordUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *ConfidenceRecordUpdateOne) SetComputedAt(v time.Time) *ConfidenceRecordUpdateOne {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *ConfidenceRecordUpdateOne) SetNillableComputedAt(v *time.Time) *ConfidenceRecordUpdateOne {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// Mutation returns the ConfidenceRecordMutation object of the builder.
func (_u *ConfidenceRecordUpdateOne) Mutation() *ConfidenceRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConfidenceRecordUpdate builder.
func (_u *ConfidenceRecordUpdateOne) Where(ps ...predicate.ConfidenceRecord) *ConfidenceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfidenceRecordUpdateOne) Select(field string, fields ...string) *ConfidenceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConfidenceRecord entity.
func (_u *ConfidenceRecordUpdateOne) Save(ctx context.Context) (*ConfidenceRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfidenceRecordUpdateOne) SaveX(ctx context.Context) *ConfidenceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfidenceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfidenceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfidenceRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := confidencerecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ConfidenceRecord.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ConfidenceRecordUpdateOne) sqlSave(ctx context.Context) (_node *ConfidenceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(confidencerecord.Table, confidencerecord.Columns, sqlgraph.NewFieldSpec(confidencerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfidenceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, confidencerecord.FieldID)
		for _, f := range fields {
			if !confidencerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != confidencerecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(confidencerecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(confidencerecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(confidencerecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Pronunciation(); ok {
		_spec.SetField(confidencerecord.FieldPronunciation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPronunciation(); ok {
		_spec.AddField(confidencerecord.FieldPronunciation, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(confidencerecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(confidencerecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(confidencerecord.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trend(); ok {
		_spec.SetField(confidencerecord.FieldTrend, field.TypeString, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(confidencerecord.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, confidencerecord.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(confidencerecord.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(confidencerecord.FieldComputedAt, field.TypeTime, value)
	}
	_node = &ConfidenceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{confidencerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
