// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/sayright/ent/progressrecord"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ProgressRecordCreate) SetLearnerID(v string) *ProgressRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *ProgressRecordCreate) SetUnitID(v string) *ProgressRecordCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProgressRecordCreate) SetVersion(v int64) *ProgressRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableVersion(v *int64) *ProgressRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ProgressRecordCreate) SetAttempts(v int) *ProgressRecordCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableAttempts(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetBestScore sets the "best_score" field.
func (_c *ProgressRecordCreate) SetBestScore(v float64) *ProgressRecordCreate {
	_c.mutation.SetBestScore(v)
	return _c
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableBestScore(v *float64) *ProgressRecordCreate {
	if v != nil {
		_c.SetBestScore(*v)
	}
	return _c
}

// SetLastScore sets the "last_score" field.
func (_c *ProgressRecordCreate) SetLastScore(v float64) *ProgressRecordCreate {
	_c.mutation.SetLastScore(v)
	return _c
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableLastScore(v *float64) *ProgressRecordCreate {
	if v != nil {
		_c.SetLastScore(*v)
	}
	return _c
}

// SetAvgScore sets the "avg_score" field.
func (_c *ProgressRecordCreate) SetAvgScore(v float64) *ProgressRecordCreate {
	_c.mutation.SetAvgScore(v)
	return _c
}

// SetNillableAvgScore sets the "avg_score" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableAvgScore(v *float64) *ProgressRecordCreate {
	if v != nil {
		_c.SetAvgScore(*v)
	}
	return _c
}

// SetWeakLetters sets the "weak_letters" field.
func (_c *ProgressRecordCreate) SetWeakLetters(v []string) *ProgressRecordCreate {
	_c.mutation.SetWeakLetters(v)
	return _c
}

// SetWeakPhonemes sets the "weak_phonemes" field.
func (_c *ProgressRecordCreate) SetWeakPhonemes(v []string) *ProgressRecordCreate {
	_c.mutation.SetWeakPhonemes(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *ProgressRecordCreate) SetPassed(v bool) *ProgressRecordCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillablePassed(v *bool) *ProgressRecordCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetPassedAt sets the "passed_at" field.
func (_c *ProgressRecordCreate) SetPassedAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetPassedAt(v)
	return _c
}

// SetNillablePassedAt sets the "passed_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillablePassedAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetPassedAt(*v)
	}
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *ProgressRecordCreate) SetLastAttemptAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableLastAttemptAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetLastAttemptAt(*v)
	}
	return _c
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_c *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return _c.mutation
}

// Save creates the ProgressRecord in the database.
func (_c *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressRecordCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := progressrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := progressrecord.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		v := progressrecord.DefaultBestScore
		_c.mutation.SetBestScore(v)
	}
	if _, ok := _c.mutation.LastScore(); !ok {
		v := progressrecord.DefaultLastScore
		_c.mutation.SetLastScore(v)
	}
	if _, ok := _c.mutation.AvgScore(); !ok {
		v := progressrecord.DefaultAvgScore
		_c.mutation.SetAvgScore(v)
	}
	if _, ok := _c.mutation.Passed(); !ok {
		v := progressrecord.DefaultPassed
		_c.mutation.SetPassed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ProgressRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := progressrecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "ProgressRecord.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := progressrecord.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProgressRecord.version"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ProgressRecord.attempts"`)}
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		return &ValidationError{Name: "best_score", err: errors.New(`ent: missing required field "ProgressRecord.best_score"`)}
	}
	if _, ok := _c.mutation.LastScore(); !ok {
		return &ValidationError{Name: "last_score", err: errors.New(`ent: missing required field "ProgressRecord.last_score"`)}
	}
	if _, ok := _c.mutation.AvgScore(); !ok {
		return &ValidationError{Name: "avg_score", err: errors.New(`ent: missing required field "ProgressRecord.avg_score"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "ProgressRecord.passed"`)}
	}
	return nil
}

func (_c *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
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

func (_c *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(progressrecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(progressrecord.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(progressrecord.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.BestScore(); ok {
		_spec.SetField(progressrecord.FieldBestScore, field.TypeFloat64, value)
		_node.BestScore = value
	}
	if value, ok := _c.mutation.LastScore(); ok {
		_spec.SetField(progressrecord.FieldLastScore, field.TypeFloat64, value)
		_node.LastScore = value
	}
	if value, ok := _c.mutation.AvgScore(); ok {
		_spec.SetField(progressrecord.FieldAvgScore, field.TypeFloat64, value)
		_node.AvgScore = value
	}
	if value, ok := _c.mutation.WeakLetters(); ok {
		_spec.SetField(progressrecord.FieldWeakLetters, field.TypeJSON, value)
		_node.WeakLetters = value
	}
	if value, ok := _c.mutation.WeakPhonemes(); ok {
		_spec.SetField(progressrecord.FieldWeakPhonemes, field.TypeJSON, value)
		_node.WeakPhonemes = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(progressrecord.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.PassedAt(); ok {
		_spec.SetField(progressrecord.FieldPassedAt, field.TypeTime, value)
		_node.PassedAt = &value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(progressrecord.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = &value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (_c *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
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
func (_c *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
