// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyali/arithma/ent/insightevent"
)

// InsightEventCreate is the builder for creating a InsightEvent entity.
type InsightEventCreate struct {
	config
	mutation *InsightEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InsightEventCreate) SetSequence(v int64) *InsightEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InsightEventCreate) SetTimestamp(v time.Time) *InsightEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InsightEventCreate) SetNillableTimestamp(v *time.Time) *InsightEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *InsightEventCreate) SetRunID(v string) *InsightEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *InsightEventCreate) SetSkillID(v string) *InsightEventCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetPKnown sets the "p_known" field.
func (_c *InsightEventCreate) SetPKnown(v float64) *InsightEventCreate {
	_c.mutation.SetPKnown(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *InsightEventCreate) SetConfidence(v float64) *InsightEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetClassification sets the "classification" field.
func (_c *InsightEventCreate) SetClassification(v string) *InsightEventCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetOpportunities sets the "opportunities" field.
func (_c *InsightEventCreate) SetOpportunities(v int) *InsightEventCreate {
	_c.mutation.SetOpportunities(v)
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *InsightEventCreate) SetSuccessCount(v int) *InsightEventCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// Mutation returns the InsightEventMutation object of the builder.
func (_c *InsightEventCreate) Mutation() *InsightEventMutation {
	return _c.mutation
}

// Save creates the InsightEvent in the database.
func (_c *InsightEventCreate) Save(ctx context.Context) (*InsightEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightEventCreate) SaveX(ctx context.Context) *InsightEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := insightevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InsightEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InsightEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "InsightEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := insightevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "InsightEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "InsightEvent.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := insightevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "InsightEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PKnown(); !ok {
		return &ValidationError{Name: "p_known", err: errors.New(`ent: missing required field "InsightEvent.p_known"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "InsightEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "InsightEvent.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := insightevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "InsightEvent.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Opportunities(); !ok {
		return &ValidationError{Name: "opportunities", err: errors.New(`ent: missing required field "InsightEvent.opportunities"`)}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "InsightEvent.success_count"`)}
	}
	return nil
}

func (_c *InsightEventCreate) sqlSave(ctx context.Context) (*InsightEvent, error) {
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

func (_c *InsightEventCreate) createSpec() (*InsightEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InsightEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insightevent.Table, sqlgraph.NewFieldSpec(insightevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(insightevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(insightevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(insightevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(insightevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.PKnown(); ok {
		_spec.SetField(insightevent.FieldPKnown, field.TypeFloat64, value)
		_node.PKnown = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(insightevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(insightevent.FieldClassification, field.TypeString, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.Opportunities(); ok {
		_spec.SetField(insightevent.FieldOpportunities, field.TypeInt, value)
		_node.Opportunities = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(insightevent.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	return _node, _spec
}

// InsightEventCreateBulk is the builder for creating many InsightEvent entities in bulk.
type InsightEventCreateBulk struct {
	config
	err      error
	builders []*InsightEventCreate
}

// Save creates the InsightEvent entities in the database.
func (_c *InsightEventCreateBulk) Save(ctx context.Context) ([]*InsightEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InsightEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightEventMutation)
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
func (_c *InsightEventCreateBulk) SaveX(ctx context.Context) []*InsightEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
