// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/sayright/ent/masteryrecord"
	"github.com/smehra/sayright/internal/mastery"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *MasteryRecordCreate) SetLearnerID(v string) *MasteryRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetWord sets the "word" field.
func (_c *MasteryRecordCreate) SetWord(v string) *MasteryRecordCreate {
	_c.mutation.SetWord(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *MasteryRecordCreate) SetVersion(v int64) *MasteryRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableVersion(v *int64) *MasteryRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetObservations sets the "observations" field.
func (_c *MasteryRecordCreate) SetObservations(v int) *MasteryRecordCreate {
	_c.mutation.SetObservations(v)
	return _c
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableObservations(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetObservations(*v)
	}
	return _c
}

// SetSuccesses sets the "successes" field.
func (_c *MasteryRecordCreate) SetSuccesses(v int) *MasteryRecordCreate {
	_c.mutation.SetSuccesses(v)
	return _c
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableSuccesses(v *int) *MasteryRecordCreate {
	if v != nil {
		_c.SetSuccesses(*v)
	}
	return _c
}

// SetAvgScore sets the "avg_score" field.
func (_c *MasteryRecordCreate) SetAvgScore(v float64) *MasteryRecordCreate {
	_c.mutation.SetAvgScore(v)
	return _c
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableAvgScore(v *float64) *MasteryRecordCreate {
	if v != nil {
		_c.SetAvgScore(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *MasteryRecordCreate) SetDifficulty(v float64) *MasteryRecordCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableDifficulty(v *float64) *MasteryRecordCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetInitialDifficulty sets the "initial_difficulty" field.
func (_c *MasteryRecordCreate) SetInitialDifficulty(v float64) *MasteryRecordCreate {
	_c.mutation.SetInitialDifficulty(v)
	return _c
}

// SetNillableInitialDifficulty sets the "initial_difficulty" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableInitialDifficulty(v *float64) *MasteryRecordCreate {
	if v != nil {
		_c.SetInitialDifficulty(*v)
	}
	return _c
}

// SetImprovementRate sets the "improvement_rate" field.
func (_c *MasteryRecordCreate) SetImprovementRate(v float64) *MasteryRecordCreate {
	_c.mutation.SetImprovementRate(v)
	return _c
}

// SetNillableImprovementRate sets the "improvement_rate" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableImprovementRate(v *float64) *MasteryRecordCreate {
	if v != nil {
		_c.SetImprovementRate(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *MasteryRecordCreate) SetLevel(v string) *MasteryRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableLevel(v *string) *MasteryRecordCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetScoreHistory sets the "score_history" field.
func (_c *MasteryRecordCreate) SetScoreHistory(v []mastery.Observation) *MasteryRecordCreate {
	_c.mutation.SetScoreHistory(v)
	return _c
}

// SetMasteredAt sets the "mastered_at" field.
func (_c *MasteryRecordCreate) SetMasteredAt(v time.Time) *MasteryRecordCreate {
	_c.mutation.SetMasteredAt(v)
	return _c
}

// SetNillableMasteredAt sets the "mastered_at" field if the given value is not nil.
func (_c *MasteryRecordCreate) SetNillableMasteredAt(v *time.Time) *MasteryRecordCreate {
	if v != nil {
		_c.SetMasteredAt(*v)
	}
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MasteryRecordCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := masteryrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Observations(); !ok {
		v := masteryrecord.DefaultObservations
		_c.mutation.SetObservations(v)
	}
	if _, ok := _c.mutation.Successes(); !ok {
		v := masteryrecord.DefaultSuccesses
		_c.mutation.SetSuccesses(v)
	}
	if _, ok := _c.mutation.AvgScore(); !ok {
		v := masteryrecord.DefaultAvgScore
		_c.mutation.SetAvgScore(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := masteryrecord.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.InitialDifficulty(); !ok {
		v := masteryrecord.DefaultInitialDifficulty
		_c.mutation.SetInitialDifficulty(v)
	}
	if _, ok := _c.mutation.ImprovementRate(); !ok {
		v := masteryrecord.DefaultImprovementRate
		_c.mutation.SetImprovementRate(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := masteryrecord.DefaultLevel
		_c.mutation.SetLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MasteryRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := masteryrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Word(); !ok {
		return &ValidationError{Name: "word", err: errors.New(`ent: missing required field "MasteryRecord.word"`)}
	}
	if v, ok := _c.mutation.Word(); ok {
		if err := masteryrecord.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.word": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "MasteryRecord.version"`)}
	}
	if _, ok := _c.mutation.Observations(); !ok {
		return &ValidationError{Name: "observations", err: errors.New(`ent: missing required field "MasteryRecord.observations"`)}
	}
	if _, ok := _c.mutation.Successes(); !ok {
		return &ValidationError{Name: "successes", err: errors.New(`ent: missing required field "MasteryRecord.successes"`)}
	}
	if _, ok := _c.mutation.AvgScore(); !ok {
		return &ValidationError{Name: "avg_score", err: errors.New(`ent: missing required field "MasteryRecord.avg_score"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "MasteryRecord.difficulty"`)}
	}
	if _, ok := _c.mutation.InitialDifficulty(); !ok {
		return &ValidationError{Name: "initial_difficulty", err: errors.New(`ent: missing required field "MasteryRecord.initial_difficulty"`)}
	}
	if _, ok := _c.mutation.ImprovementRate(); !ok {
		return &ValidationError{Name: "improvement_rate", err: errors.New(`ent: missing required field "MasteryRecord.improvement_rate"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "MasteryRecord.level"`)}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(masteryrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Word(); ok {
		_spec.SetField(masteryrecord.FieldWord, field.TypeString, value)
		_node.Word = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(masteryrecord.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Observations(); ok {
		_spec.SetField(masteryrecord.FieldObservations, field.TypeInt, value)
		_node.Observations = value
	}
	if value, ok := _c.mutation.Successes(); ok {
		_spec.SetField(masteryrecord.FieldSuccesses, field.TypeInt, value)
		_node.Successes = value
	}
	if value, ok := _c.mutation.AvgScore(); ok {
		_spec.SetField(masteryrecord.FieldAvgScore, field.TypeFloat64, value)
		_node.AvgScore = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(masteryrecord.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.InitialDifficulty(); ok {
		_spec.SetField(masteryrecord.FieldInitialDifficulty, field.TypeFloat64, value)
		_node.InitialDifficulty = value
	}
	if value, ok := _c.mutation.ImprovementRate(); ok {
		_spec.SetField(masteryrecord.FieldImprovementRate, field.TypeFloat64, value)
		_node.ImprovementRate = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(masteryrecord.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.ScoreHistory(); ok {
		_spec.SetField(masteryrecord.FieldScoreHistory, field.TypeJSON, value)
		_node.ScoreHistory = value
	}
	if value, ok := _c.mutation.MasteredAt(); ok {
		_spec.SetField(masteryrecord.FieldMasteredAt, field.TypeTime, value)
		_node.MasteredAt = &value
	}
	return _node, _spec
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
