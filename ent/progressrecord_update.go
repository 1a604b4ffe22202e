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
	"github.com/smehra/sayright/ent/predicate"
	"github.com/smehra/sayright/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProgressRecordUpdate) SetLearnerID(v string) *ProgressRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLearnerID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *ProgressRecordUpdate) SetUnitID(v string) *ProgressRecordUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableUnitID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProgressRecordUpdate) SetVersion(v int64) *ProgressRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableVersion(v *int64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProgressRecordUpdate) AddVersion(v int64) *ProgressRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ProgressRecordUpdate) SetAttempts(v int) *ProgressRecordUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableAttempts(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ProgressRecordUpdate) AddAttempts(v int) *ProgressRecordUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *ProgressRecordUpdate) SetBestScore(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableBestScore(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *ProgressRecordUpdate) AddBestScore(v float64) *ProgressRecordUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *ProgressRecordUpdate) SetLastScore(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastScore(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *ProgressRecordUpdate) AddLastScore(v float64) *ProgressRecordUpdate {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetAvgScore sets the "avg_score" field.
func (_u *ProgressRecordUpdate) SetAvgScore(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetAvgScore()
	_u.mutation.SetAvgScore(v)
	return _u
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableAvgScore(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetAvgScore(*v)
	}
	return _u
}

// AddAvgScore adds value to the "avg_score" field.
func (_u *ProgressRecordUpdate) AddAvgScore(v float64) *ProgressRecordUpdate {
	_u.mutation.AddAvgScore(v)
	return _u
}

// SetWeakLetters sets the "weak_letters" field.
func (_u *ProgressRecordUpdate) SetWeakLetters(v []string) *ProgressRecordUpdate {
	_u.mutation.SetWeakLetters(v)
	return _u
}

// AppendWeakLetters appends value to the "weak_letters" field.
func (_u *ProgressRecordUpdate) AppendWeakLetters(v []string) *ProgressRecordUpdate {
	_u.mutation.AppendWeakLetters(v)
	return _u
}

// ClearWeakLetters clears the value of the "weak_letters" field.
func (_u *ProgressRecordUpdate) ClearWeakLetters() *ProgressRecordUpdate {
	_u.mutation.ClearWeakLetters()
	return _u
}

// SetWeakPhonemes sets the "weak_phonemes" field.
func (_u *ProgressRecordUpdate) SetWeakPhonemes(v []string) *ProgressRecordUpdate {
	_u.mutation.SetWeakPhonemes(v)
	return _u
}

// AppendWeakPhonemes appends value to the "weak_phonemes" field.
func (_u *ProgressRecordUpdate) AppendWeakPhonemes(v []string) *ProgressRecordUpdate {
	_u.mutation.AppendWeakPhonemes(v)
	return _u
}

// ClearWeakPhonemes clears the value of the "weak_phonemes" field.
func (_u *ProgressRecordUpdate) ClearWeakPhonemes() *ProgressRecordUpdate {
	_u.mutation.ClearWeakPhonemes()
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ProgressRecordUpdate) SetPassed(v bool) *ProgressRecordUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillablePassed(v *bool) *ProgressRecordUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetPassedAt sets the "passed_at" field.
func (_u *ProgressRecordUpdate) SetPassedAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetPassedAt(v)
	return _u
}

// SetNillablePassedAt sets the "passed_at" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillablePassedAt(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetPassedAt(*v)
	}
	return _u
}

// ClearPassedAt clears the value of the "passed_at" field.
func (_u *ProgressRecordUpdate) ClearPassedAt() *ProgressRecordUpdate {
	_u.mutation.ClearPassedAt()
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *ProgressRecordUpdate) SetLastAttemptAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastAttemptAt(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *ProgressRecordUpdate) ClearLastAttemptAt() *ProgressRecordUpdate {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := progressrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := progressrecord.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.unit_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(progressrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(progressrecord.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(progressrecord.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(progressrecord.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgScore(); ok {
		_spec.SetField(progressrecord.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgScore(); ok {
		_spec.AddField(progressrecord.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeakLetters(); ok {
		_spec.SetField(progressrecord.FieldWeakLetters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakLetters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldWeakLetters, value)
		})
	}
	if _u.mutation.WeakLettersCleared() {
		_spec.ClearField(progressrecord.FieldWeakLetters, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeakPhonemes(); ok {
		_spec.SetField(progressrecord.FieldWeakPhonemes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakPhonemes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldWeakPhonemes, value)
		})
	}
	if _u.mutation.WeakPhonemesCleared() {
		_spec.ClearField(progressrecord.FieldWeakPhonemes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(progressrecord.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PassedAt(); ok {
		_spec.SetField(progressrecord.FieldPassedAt, field.TypeTime, value)
	}
	if _u.mutation.PassedAtCleared() {
		_spec.ClearField(progressrecord.FieldPassedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(progressrecord.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(progressrecord.FieldLastAttemptAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *ProgressRecordUpdateOne) SetLearnerID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLearnerID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *ProgressRecordUpdateOne) SetUnitID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableUnitID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProgressRecordUpdateOne) SetVersion(v int64) *ProgressRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableVersion(v *int64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProgressRecordUpdateOne) AddVersion(v int64) *ProgressRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ProgressRecordUpdateOne) SetAttempts(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableAttempts(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ProgressRecordUpdateOne) AddAttempts(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *ProgressRecordUpdateOne) SetBestScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableBestScore(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *ProgressRecordUpdateOne) AddBestScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *ProgressRecordUpdateOne) SetLastScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastScore(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *ProgressRecordUpdateOne) AddLastScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetAvgScore sets the "avg_score" field.
func (_u *ProgressRecordUpdateOne) SetAvgScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetAvgScore()
	_u.mutation.SetAvgScore(v)
	return _u
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableAvgScore(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetAvgScore(*v)
	}
	return _u
}

// AddAvgScore adds value to the "avg_score" field.
func (_u *ProgressRecordUpdateOne) AddAvgScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddAvgScore(v)
	return _u
}

// SetWeakLetters sets the "weak_letters" field.
func (_u *ProgressRecordUpdateOne) SetWeakLetters(v []string) *ProgressRecordUpdateOne {
	_u.mutation.SetWeakLetters(v)
	return _u
}

// AppendWeakLetters appends value to the "weak_letters" field.
func (_u *ProgressRecordUpdateOne) AppendWeakLetters(v []string) *ProgressRecordUpdateOne {
	_u.mutation.AppendWeakLetters(v)
	return _u
}

// ClearWeakLetters clears the value of the "weak_letters" field.
func (_u *ProgressRecordUpdateOne) ClearWeakLetters() *ProgressRecordUpdateOne {
	_u.mutation.ClearWeakLetters()
	return _u
}

// SetWeakPhonemes sets the "weak_phonemes" field.
func (_u *ProgressRecordUpdateOne) SetWeakPhonemes(v []string) *ProgressRecordUpdateOne {
	_u.mutation.SetWeakPhonemes(v)
	return _u
}

// AppendWeakPhonemes appends value to the "weak_phonemes" field.
func (_u *ProgressRecordUpdateOne) AppendWeakPhonemes(v []string) *ProgressRecordUpdateOne {
	_u.mutation.AppendWeakPhonemes(v)
	return _u
}

// ClearWeakPhonemes clears the value of the "weak_phonemes" field.
func (_u *ProgressRecordUpdateOne) ClearWeakPhonemes() *ProgressRecordUpdateOne {
	_u.mutation.ClearWeakPhonemes()
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ProgressRecordUpdateOne) SetPassed(v bool) *ProgressRecordUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillablePassed(v *bool) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetPassedAt sets the "passed_at" field.
func (_u *ProgressRecordUpdateOne) SetPassedAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetPassedAt(v)
	return _u
}

// SetNillablePassedAt sets the "passed_at" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillablePassedAt(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetPassedAt(*v)
	}
	return _u
}

// ClearPassedAt clears the value of the "passed_at" field.
func (_u *ProgressRecordUpdateOne) ClearPassedAt() *ProgressRecordUpdateOne {
	_u.mutation.ClearPassedAt()
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *ProgressRecordUpdateOne) SetLastAttemptAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastAttemptAt(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *ProgressRecordUpdateOne) ClearLastAttemptAt() *ProgressRecordUpdateOne {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := progressrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := progressrecord.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.unit_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
		_spec.SetField(progressrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(progressrecord.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(progressrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(progressrecord.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(progressrecord.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(progressrecord.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgScore(); ok {
		_spec.SetField(progressrecord.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgScore(); ok {
		_spec.AddField(progressrecord.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeakLetters(); ok {
		_spec.SetField(progressrecord.FieldWeakLetters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakLetters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldWeakLetters, value)
		})
	}
	if _u.mutation.WeakLettersCleared() {
		_spec.ClearField(progressrecord.FieldWeakLetters, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeakPhonemes(); ok {
		_spec.SetField(progressrecord.FieldWeakPhonemes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakPhonemes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldWeakPhonemes, value)
		})
	}
	if _u.mutation.WeakPhonemesCleared() {
		_spec.ClearField(progressrecord.FieldWeakPhonemes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(progressrecord.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PassedAt(); ok {
		_spec.SetField(progressrecord.FieldPassedAt, field.TypeTime, value)
	}
	if _u.mutation.PassedAtCleared() {
		_spec.ClearField(progressrecord.FieldPassedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(progressrecord.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(progressrecord.FieldLastAttemptAt, field.TypeTime)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
