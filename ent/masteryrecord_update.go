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
	"github.com/smehra/sayright/ent/masteryrecord"
	"github.com/smehra/sayright/ent/predicate"
	"github.com/smehra/sayright/internal/mastery"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryRecordUpdate) SetLearnerID(v string) *MasteryRecordUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLearnerID(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetWord sets the "word" field.
func (_u *MasteryRecordUpdate) SetWord(v string) *MasteryRecordUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableWord(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *MasteryRecordUpdate) SetVersion(v int64) *MasteryRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableVersion(v *int64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MasteryRecordUpdate) AddVersion(v int64) *MasteryRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetObservations sets the "observations" field.
func (_u *MasteryRecordUpdate) SetObservations(v int) *MasteryRecordUpdate {
	_u.mutation.ResetObservations()
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableObservations(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// AddObservations adds value to the "observations" field.
func (_u *MasteryRecordUpdate) AddObservations(v int) *MasteryRecordUpdate {
	_u.mutation.AddObservations(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *MasteryRecordUpdate) SetSuccesses(v int) *MasteryRecordUpdate {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableSuccesses(v *int) *MasteryRecordUpdate {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *MasteryRecordUpdate) AddSuccesses(v int) *MasteryRecordUpdate {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetAvgScore sets the "avg_score" field.
func (_u *MasteryRecordUpdate) SetAvgScore(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetAvgScore()
	_u.mutation.SetAvgScore(v)
	return _u
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableAvgScore(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetAvgScore(*v)
	}
	return _u
}

// AddAvgScore adds value to the "avg_score" field.
func (_u *MasteryRecordUpdate) AddAvgScore(v float64) *MasteryRecordUpdate {
	_u.mutation.AddAvgScore(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *MasteryRecordUpdate) SetDifficulty(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableDifficulty(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *MasteryRecordUpdate) AddDifficulty(v float64) *MasteryRecordUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetInitialDifficulty sets the "initial_difficulty" field.
func (_u *MasteryRecordUpdate) SetInitialDifficulty(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetInitialDifficulty()
	_u.mutation.SetInitialDifficulty(v)
	return _u
}

// SetNillableInitialDifficulty sets the "initial_difficulty" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableInitialDifficulty(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetInitialDifficulty(*v)
	}
	return _u
}

// AddInitialDifficulty adds value to the "initial_difficulty" field.
func (_u *MasteryRecordUpdate) AddInitialDifficulty(v float64) *MasteryRecordUpdate {
	_u.mutation.AddInitialDifficulty(v)
	return _u
}

// SetImprovementRate sets the "improvement_rate" field.
func (_u *MasteryRecordUpdate) SetImprovementRate(v float64) *MasteryRecordUpdate {
	_u.mutation.ResetImprovementRate()
	_u.mutation.SetImprovementRate(v)
	return _u
}

// SetNillableImprovementRate sets the "improvement_rate" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableImprovementRate(v *float64) *MasteryRecordUpdate {
	if v != nil {
		_u.SetImprovementRate(*v)
	}
	return _u
}

// AddImprovementRate adds value to the "improvement_rate" field.
func (_u *MasteryRecordUpdate) AddImprovementRate(v float64) *MasteryRecordUpdate {
	_u.mutation.AddImprovementRate(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdate) SetLevel(v string) *MasteryRecordUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableLevel(v *string) *MasteryRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetScoreHistory sets the "score_history" field.
func (_u *MasteryRecordUpdate) SetScoreHistory(v []mastery.Observation) *MasteryRecordUpdate {
	_u.mutation.SetScoreHistory(v)
	return _u
}

// AppendScoreHistory appends value to the "score_history" field.
func (_u *MasteryRecordUpdate) AppendScoreHistory(v []mastery.Observation) *MasteryRecordUpdate {
	_u.mutation.AppendScoreHistory(v)
	return _u
}

// ClearScoreHistory clears the value of the "score_history" field.
func (_u *MasteryRecordUpdate) ClearScoreHistory() *MasteryRecordUpdate {
	_u.mutation.ClearScoreHistory()
	return _u
}

// SetMasteredAt sets the "mastered_at" field.
func (_u *MasteryRecordUpdate) SetMasteredAt(v time.Time) *MasteryRecordUpdate {
	_u.mutation.SetMasteredAt(v)
	return _u
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_u *MasteryRecordUpdate) SetNillableMasteredAt(v *time.Time) *MasteryRecordUpdate {
	if v != nil {
		_u.SetMasteredAt(*v)
	}
	return _u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (_u *MasteryRecordUpdate) ClearMasteredAt() *MasteryRecordUpdate {
	_u.mutation.ClearMasteredAt()
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Word(); ok {
		if err := masteryrecord.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.word": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(masteryrecord.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(masteryrecord.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObservations(); ok {
		_spec.AddField(masteryrecord.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(masteryrecord.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(masteryrecord.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgScore(); ok {
		_spec.SetField(masteryrecord.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgScore(); ok {
		_spec.AddField(masteryrecord.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(masteryrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(masteryrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InitialDifficulty(); ok {
		_spec.SetField(masteryrecord.FieldInitialDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInitialDifficulty(); ok {
		_spec.AddField(masteryrecord.FieldInitialDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ImprovementRate(); ok {
		_spec.SetField(masteryrecord.FieldImprovementRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImprovementRate(); ok {
		_spec.AddField(masteryrecord.FieldImprovementRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreHistory(); ok {
		_spec.SetField(masteryrecord.FieldScoreHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScoreHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, masteryrecord.FieldScoreHistory, value)
		})
	}
	if _u.mutation.ScoreHistoryCleared() {
		_spec.ClearField(masteryrecord.FieldScoreHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.MasteredAt(); ok {
		_spec.SetField(masteryrecord.FieldMasteredAt, field.TypeTime, value)
	}
	if _u.mutation.MasteredAtCleared() {
		_spec.ClearField(masteryrecord.FieldMasteredAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *MasteryRecordUpdateOne) SetLearnerID(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLearnerID(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetWord sets the "word" field.
func (_u *MasteryRecordUpdateOne) SetWord(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableWord(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *MasteryRecordUpdateOne) SetVersion(v int64) *MasteryRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableVersion(v *int64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *MasteryRecordUpdateOne) AddVersion(v int64) *MasteryRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetObservations sets the "observations" field.
func (_u *MasteryRecordUpdateOne) SetObservations(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetObservations()
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableObservations(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// AddObservations adds value to the "observations" field.
func (_u *MasteryRecordUpdateOne) AddObservations(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddObservations(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *MasteryRecordUpdateOne) SetSuccesses(v int) *MasteryRecordUpdateOne {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableSuccesses(v *int) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *MasteryRecordUpdateOne) AddSuccesses(v int) *MasteryRecordUpdateOne {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetAvgScore sets the "avg_score" field.
func (_u *MasteryRecordUpdateOne) SetAvgScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetAvgScore()
	_u.mutation.SetAvgScore(v)
	return _u
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableAvgScore(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetAvgScore(*v)
	}
	return _u
}

// AddAvgScore adds value to the "avg_score" field.
func (_u *MasteryRecordUpdateOne) AddAvgScore(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddAvgScore(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *MasteryRecordUpdateOne) SetDifficulty(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableDifficulty(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *MasteryRecordUpdateOne) AddDifficulty(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetInitialDifficulty sets the "initial_difficulty" field.
func (_u *MasteryRecordUpdateOne) SetInitialDifficulty(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetInitialDifficulty()
	_u.mutation.SetInitialDifficulty(v)
	return _u
}

// SetNillableInitialDifficulty sets the "initial_difficulty" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableInitialDifficulty(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetInitialDifficulty(*v)
	}
	return _u
}

// AddInitialDifficulty adds value to the "initial_difficulty" field.
func (_u *MasteryRecordUpdateOne) AddInitialDifficulty(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddInitialDifficulty(v)
	return _u
}

// SetImprovementRate sets the "improvement_rate" field.
func (_u *MasteryRecordUpdateOne) SetImprovementRate(v float64) *MasteryRecordUpdateOne {
	_u.mutation.ResetImprovementRate()
	_u.mutation.SetImprovementRate(v)
	return _u
}

// SetNillableImprovementRate sets the "improvement_rate" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableImprovementRate(v *float64) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetImprovementRate(*v)
	}
	return _u
}

// AddImprovementRate adds value to the "improvement_rate" field.
func (_u *MasteryRecordUpdateOne) AddImprovementRate(v float64) *MasteryRecordUpdateOne {
	_u.mutation.AddImprovementRate(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MasteryRecordUpdateOne) SetLevel(v string) *MasteryRecordUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableLevel(v *string) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetScoreHistory sets the "score_history" field.
func (_u *MasteryRecordUpdateOne) SetScoreHistory(v []mastery.Observation) *MasteryRecordUpdateOne {
	_u.mutation.SetScoreHistory(v)
	return _u
}

// AppendScoreHistory appends value to the "score_history" field.
func (_u *MasteryRecordUpdateOne) AppendScoreHistory(v []mastery.Observation) *MasteryRecordUpdateOne {
	_u.mutation.AppendScoreHistory(v)
	return _u
}

// ClearScoreHistory clears the value of the "score_history" field.
func (_u *MasteryRecordUpdateOne) ClearScoreHistory() *MasteryRecordUpdateOne {
	_u.mutation.ClearScoreHistory()
	return _u
}

// SetMasteredAt sets the "mastered_at" field.
func (_u *MasteryRecordUpdateOne) SetMasteredAt(v time.Time) *MasteryRecordUpdateOne {
	_u.mutation.SetMasteredAt(v)
	return _u
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_u *MasteryRecordUpdateOne) SetNillableMasteredAt(v *time.Time) *MasteryRecordUpdateOne {
	if v != nil {
		_u.SetMasteredAt(*v)
	}
	return _u
}

// ClearMasteredAt clears the value of the "mastered_at" field.
func (_u *MasteryRecordUpdateOne) ClearMasteredAt() *MasteryRecordUpdateOne {
	_u.mutation.ClearMasteredAt()
	return _u
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_u *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (_u *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MasteryRecord entity.
func (_u *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MasteryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Word(); ok {
		if err := masteryrecord.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.word": %w`, err)}
		}
	}
	return nil
}

func (_u *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
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
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(masteryrecord.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(masteryrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(masteryrecord.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObservations(); ok {
		_spec.AddField(masteryrecord.FieldObservations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(masteryrecord.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(masteryrecord.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgScore(); ok {
		_spec.SetField(masteryrecord.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgScore(); ok {
		_spec.AddField(masteryrecord.FieldAvgScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(masteryrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(masteryrecord.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InitialDifficulty(); ok {
		_spec.SetField(masteryrecord.FieldInitialDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedInitialDifficulty(); ok {
		_spec.AddField(masteryrecord.FieldInitialDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ImprovementRate(); ok {
		_spec.SetField(masteryrecord.FieldImprovementRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImprovementRate(); ok {
		_spec.AddField(masteryrecord.FieldImprovementRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreHistory(); ok {
		_spec.SetField(masteryrecord.FieldScoreHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScoreHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, masteryrecord.FieldScoreHistory, value)
		})
	}
	if _u.mutation.ScoreHistoryCleared() {
		_spec.ClearField(masteryrecord.FieldScoreHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.MasteredAt(); ok {
		_spec.SetField(masteryrecord.FieldMasteredAt, field.TypeTime, value)
	}
	if _u.mutation.MasteredAtCleared() {
		_spec.ClearField(masteryrecord.FieldMasteredAt, field.TypeTime)
	}
	_node = &MasteryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
