// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/smehra/sayright/ent/attemptevent"
	"github.com/smehra/sayright/ent/predicate"
	"github.com/smehra/sayright/internal/scorer"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AttemptEventUpdate) SetLearnerID(v string) *AttemptEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLearnerID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *AttemptEventUpdate) SetUnitID(v string) *AttemptEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUnitID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *AttemptEventUpdate) SetAttemptNumber(v int) *AttemptEventUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptNumber(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *AttemptEventUpdate) AddAttemptNumber(v int) *AttemptEventUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *AttemptEventUpdate) SetOverallScore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableOverallScore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *AttemptEventUpdate) AddOverallScore(v float64) *AttemptEventUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetFluencyScore sets the "fluency_score" field.
func (_u *AttemptEventUpdate) SetFluencyScore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetFluencyScore()
	_u.mutation.SetFluencyScore(v)
	return _u
}

// SetNillableFluencyScore sets the "fluency_score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableFluencyScore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetFluencyScore(*v)
	}
	return _u
}

// AddFluencyScore adds value to the "fluency_score" field.
func (_u *AttemptEventUpdate) AddFluencyScore(v float64) *AttemptEventUpdate {
	_u.mutation.AddFluencyScore(v)
	return _u
}

// ClearFluencyScore clears the value of the "fluency_score" field.
func (_u *AttemptEventUpdate) ClearFluencyScore() *AttemptEventUpdate {
	_u.mutation.ClearFluencyScore()
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AttemptEventUpdate) SetPassed(v bool) *AttemptEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePassed(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *AttemptEventUpdate) SetThreshold(v float64) *AttemptEventUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableThreshold(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *AttemptEventUpdate) AddThreshold(v float64) *AttemptEventUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetWordScores sets the "word_scores" field.
func (_u *AttemptEventUpdate) SetWordScores(v []scorer.WordScore) *AttemptEventUpdate {
	_u.mutation.SetWordScores(v)
	return _u
}

// AppendWordScores appends value to the "word_scores" field.
func (_u *AttemptEventUpdate) AppendWordScores(v []scorer.WordScore) *AttemptEventUpdate {
	_u.mutation.AppendWordScores(v)
	return _u
}

// ClearWordScores clears the value of the "word_scores" field.
func (_u *AttemptEventUpdate) ClearWordScores() *AttemptEventUpdate {
	_u.mutation.ClearWordScores()
	return _u
}

// SetWeakLetters sets the "weak_letters" field.
func (_u *AttemptEventUpdate) SetWeakLetters(v []string) *AttemptEventUpdate {
	_u.mutation.SetWeakLetters(v)
	return _u
}

// AppendWeakLetters appends value to the "weak_letters" field.
func (_u *AttemptEventUpdate) AppendWeakLetters(v []string) *AttemptEventUpdate {
	_u.mutation.AppendWeakLetters(v)
	return _u
}

// ClearWeakLetters clears the value of the "weak_letters" field.
func (_u *AttemptEventUpdate) ClearWeakLetters() *AttemptEventUpdate {
	_u.mutation.ClearWeakLetters()
	return _u
}

// SetWeakPhonemes sets the "weak_phonemes" field.
func (_u *AttemptEventUpdate) SetWeakPhonemes(v []string) *AttemptEventUpdate {
	_u.mutation.SetWeakPhonemes(v)
	return _u
}

// AppendWeakPhonemes appends value to the "weak_phonemes" field.
func (_u *AttemptEventUpdate) AppendWeakPhonemes(v []string) *AttemptEventUpdate {
	_u.mutation.AppendWeakPhonemes(v)
	return _u
}

// ClearWeakPhonemes clears the value of the "weak_phonemes" field.
func (_u *AttemptEventUpdate) ClearWeakPhonemes() *AttemptEventUpdate {
	_u.mutation.ClearWeakPhonemes()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *AttemptEventUpdate) SetIdempotencyKey(v string) *AttemptEventUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableIdempotencyKey(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *AttemptEventUpdate) ClearIdempotencyKey() *AttemptEventUpdate {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := attemptevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := attemptevent.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_number": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(attemptevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(attemptevent.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(attemptevent.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FluencyScore(); ok {
		_spec.SetField(attemptevent.FieldFluencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFluencyScore(); ok {
		_spec.AddField(attemptevent.FieldFluencyScore, field.TypeFloat64, value)
	}
	if _u.mutation.FluencyScoreCleared() {
		_spec.ClearField(attemptevent.FieldFluencyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(attemptevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(attemptevent.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(attemptevent.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WordScores(); ok {
		_spec.SetField(attemptevent.FieldWordScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWordScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldWordScores, value)
		})
	}
	if _u.mutation.WordScoresCleared() {
		_spec.ClearField(attemptevent.FieldWordScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeakLetters(); ok {
		_spec.SetField(attemptevent.FieldWeakLetters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakLetters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldWeakLetters, value)
		})
	}
	if _u.mutation.WeakLettersCleared() {
		_spec.ClearField(attemptevent.FieldWeakLetters, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeakPhonemes(); ok {
		_spec.SetField(attemptevent.FieldWeakPhonemes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakPhonemes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldWeakPhonemes, value)
		})
	}
	if _u.mutation.WeakPhonemesCleared() {
		_spec.ClearField(attemptevent.FieldWeakPhonemes, field.TypeJSON)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(attemptevent.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(attemptevent.FieldIdempotencyKey, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *AttemptEventUpdateOne) SetLearnerID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLearnerID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *AttemptEventUpdateOne) SetUnitID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUnitID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *AttemptEventUpdateOne) SetAttemptNumber(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptNumber(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *AttemptEventUpdateOne) AddAttemptNumber(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *AttemptEventUpdateOne) SetOverallScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableOverallScore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *AttemptEventUpdateOne) AddOverallScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetFluencyScore sets the "fluency_score" field.
func (_u *AttemptEventUpdateOne) SetFluencyScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetFluencyScore()
	_u.mutation.SetFluencyScore(v)
	return _u
}

// SetNillableFluencyScore sets the "fluency_score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableFluencyScore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetFluencyScore(*v)
	}
	return _u
}

// AddFluencyScore adds value to the "fluency_score" field.
func (_u *AttemptEventUpdateOne) AddFluencyScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddFluencyScore(v)
	return _u
}

// ClearFluencyScore clears the value of the "fluency_score" field.
func (_u *AttemptEventUpdateOne) ClearFluencyScore() *AttemptEventUpdateOne {
	_u.mutation.ClearFluencyScore()
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AttemptEventUpdateOne) SetPassed(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePassed(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *AttemptEventUpdateOne) SetThreshold(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableThreshold(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *AttemptEventUpdateOne) AddThreshold(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// SetWordScores sets the "word_scores" field.
func (_u *AttemptEventUpdateOne) SetWordScores(v []scorer.WordScore) *AttemptEventUpdateOne {
	_u.mutation.SetWordScores(v)
	return _u
}

// AppendWordScores appends value to the "word_scores" field.
func (_u *AttemptEventUpdateOne) AppendWordScores(v []scorer.WordScore) *AttemptEventUpdateOne {
	_u.mutation.AppendWordScores(v)
	return _u
}

// ClearWordScores clears the value of the "word_scores" field.
func (_u *AttemptEventUpdateOne) ClearWordScores() *AttemptEventUpdateOne {
	_u.mutation.ClearWordScores()
	return _u
}

// SetWeakLetters sets the "weak_letters" field.
func (_u *AttemptEventUpdateOne) SetWeakLetters(v []string) *AttemptEventUpdateOne {
	_u.mutation.SetWeakLetters(v)
	return _u
}

// AppendWeakLetters appends value to the "weak_letters" field.
func (_u *AttemptEventUpdateOne) AppendWeakLetters(v []string) *AttemptEventUpdateOne {
	_u.mutation.AppendWeakLetters(v)
	return _u
}

// ClearWeakLetters clears the value of the "weak_letters" field.
func (_u *AttemptEventUpdateOne) ClearWeakLetters() *AttemptEventUpdateOne {
	_u.mutation.ClearWeakLetters()
	return _u
}

// SetWeakPhonemes sets the "weak_phonemes" field.
func (_u *AttemptEventUpdateOne) SetWeakPhonemes(v []string) *AttemptEventUpdateOne {
	_u.mutation.SetWeakPhonemes(v)
	return _u
}

// AppendWeakPhonemes appends value to the "weak_phonemes" field.
func (_u *AttemptEventUpdateOne) AppendWeakPhonemes(v []string) *AttemptEventUpdateOne {
	_u.mutation.AppendWeakPhonemes(v)
	return _u
}

// ClearWeakPhonemes clears the value of the "weak_phonemes" field.
func (_u *AttemptEventUpdateOne) ClearWeakPhonemes() *AttemptEventUpdateOne {
	_u.mutation.ClearWeakPhonemes()
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *AttemptEventUpdateOne) SetIdempotencyKey(v string) *AttemptEventUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableIdempotencyKey(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// ClearIdempotencyKey clears the value of the "idempotency_key" field.
func (_u *AttemptEventUpdateOne) ClearIdempotencyKey() *AttemptEventUpdateOne {
	_u.mutation.ClearIdempotencyKey()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := attemptevent.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := attemptevent.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_number": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(attemptevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(attemptevent.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(attemptevent.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(attemptevent.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FluencyScore(); ok {
		_spec.SetField(attemptevent.FieldFluencyScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFluencyScore(); ok {
		_spec.AddField(attemptevent.FieldFluencyScore, field.TypeFloat64, value)
	}
	if _u.mutation.FluencyScoreCleared() {
		_spec.ClearField(attemptevent.FieldFluencyScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(attemptevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(attemptevent.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(attemptevent.FieldThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WordScores(); ok {
		_spec.SetField(attemptevent.FieldWordScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWordScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldWordScores, value)
		})
	}
	if _u.mutation.WordScoresCleared() {
		_spec.ClearField(attemptevent.FieldWordScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeakLetters(); ok {
		_spec.SetField(attemptevent.FieldWeakLetters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakLetters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldWeakLetters, value)
		})
	}
	if _u.mutation.WeakLettersCleared() {
		_spec.ClearField(attemptevent.FieldWeakLetters, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeakPhonemes(); ok {
		_spec.SetField(attemptevent.FieldWeakPhonemes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakPhonemes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldWeakPhonemes, value)
		})
	}
	if _u.mutation.WeakPhonemesCleared() {
		_spec.ClearField(attemptevent.FieldWeakPhonemes, field.TypeJSON)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(attemptevent.FieldIdempotencyKey, field.TypeString, value)
	}
	if _u.mutation.IdempotencyKeyCleared() {
		_spec.ClearField(attemptevent.FieldIdempotencyKey, field.TypeString)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
