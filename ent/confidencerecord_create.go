// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smehra/sayright/ent/confidencerecord"
	"github.com/smehra/sayright/internal/confidence"
)

// ConfidenceRecordCreate is the builder for creating a ConfidenceRecord entity.
type ConfidenceRecordCreate struct {
	config
	mutation *ConfidenceRecordMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ConfidenceRecordCreate) SetLearnerID(v string) *ConfidenceRecordCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *ConfidenceRecordCreate) SetScore(v int) *ConfidenceRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetPronunciation sets the "pronunciation" field.
func (_c *ConfidenceRecordCreate) SetPronunciation(v float64) *ConfidenceRecordCreate {
	_c.mutation.SetPronunciation(v)
	return _c
}

// SetCompletionRate sets the "completion_rate" field.
func (_c *ConfidenceRecordCreate) SetCompletionRate(v float64) *ConfidenceRecordCreate {
	_c.mutation.SetCompletionRate(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *ConfidenceRecordCreate) SetLabel(v string) *ConfidenceRecordCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetTrend sets the "trend" field.
func (_c *ConfidenceRecordCreate) SetTrend(v string) *ConfidenceRecordCreate {
	_c.mutation.SetTrend(v)
	return _c
}

// SetHistory sets the "history" field.
func (_c *ConfidenceRecordCreate) SetHistory(v []confidence.Entry) *ConfidenceRecordCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *ConfidenceRecordCreate) SetComputedAt(v time.Time) *ConfidenceRecordCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_c *ConfidenceRecordCreate) SetNillableComputedAt(v *time.Time) *ConfidenceRecordCreate {
	if v != nil {
		_c.SetComputedAt(*v)
	}
	return _c
}

// Mutation returns the ConfidenceRecordMutation object of the builder.
func (_c *ConfidenceRecordCreate) Mutation() *ConfidenceRecordMutation {
	return _c.mutation
}

// Save creates the ConfidenceRecord in the database.
func (_c *ConfidenceRecordCreate) Save(ctx context.Context) (*ConfidenceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConfidenceRecordCreate) SaveX(ctx context.Context) *ConfidenceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfidenceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfidenceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConfidenceRecordCreate) defaults() {
	if _, ok := _c.mutation.ComputedAt(); !ok {
		v := confidencerecord.DefaultComputedAt()
		_c.mutation.SetComputedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConfidenceRecordCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ConfidenceRecord.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := confidencerecord.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ConfidenceRecord.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "ConfidenceRecord.score"`)}
	}
	if _, ok := _c.mutation.Pronunciation(); !ok {
		return &ValidationError{Name: "pronunciation", err: errors.New(`ent: missing required field "ConfidenceRecord.pronunciation"`)}
	}
	if _, ok := _c.mutation.CompletionRate(); !ok {
		return &ValidationError{Name: "completion_rate", err: errors.New(`ent: missing required field "ConfidenceRecord.completion_rate"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "ConfidenceRecord.label"`)}
	}
	if _, ok := _c.mutation.Trend(); !ok {
		return &ValidationError{Name: "trend", err: errors.New(`ent: missing required field "ConfidenceRecord.trend"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "ConfidenceRecord.computed_at"`)}
	}
	return nil
}

func (_c *ConfidenceRecordCreate) sqlSave(ctx context.Context) (*ConfidenceRecord, error) {
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

func (_c *ConfidenceRecordCreate) createSpec() (*ConfidenceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ConfidenceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(confidencerecord.Table, sqlgraph.NewFieldSpec(confidencerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(confidencerecord.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(confidencerecord.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Pronunciation(); ok {
		_spec.SetField(confidencerecord.FieldPronunciation, field.TypeFloat64, value)
		_node.Pronunciation = value
	}
	if value, ok := _c.mutation.CompletionRate(); ok {
		_spec.SetField(confidencerecord.FieldCompletionRate, field.TypeFloat64, value)
		_node.CompletionRate = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(confidencerecord.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Trend(); ok {
		_spec.SetField(confidencerecord.FieldTrend, field.TypeString, value)
		_node.Trend = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(confidencerecord.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(confidencerecord.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	return _node, _spec
}

// ConfidenceRecordCreateBulk is the builder for creating many ConfidenceRecord entities in bulk.
type ConfidenceRecordCreateBulk struct {
	config
	err      error
	builders []*ConfidenceRecordCreate
}

// Save creates the ConfidenceRecord entities in the database.
func (_c *ConfidenceRecordCreateBulk) Save(ctx context.Context) ([]*ConfidenceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConfidenceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConfidenceRecordMutation)
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
func (_c *ConfidenceRecordCreateBulk) SaveX(ctx context.Context) []*ConfidenceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfidenceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfidenceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
