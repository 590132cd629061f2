// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyali/arithma/ent/insightevent"
	"github.com/priyali/arithma/ent/predicate"
)

// InsightEventUpdate is the builder for updating InsightEvent entities.
type InsightEventUpdate struct {
	config
	hooks    []Hook
	mutation *InsightEventMutation
}

// Where appends a list predicates to the InsightEventUpdate builder.
func (_u *InsightEventUpdate) Where(ps ...predicate.InsightEvent) *InsightEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *InsightEventUpdate) SetRunID(v string) *InsightEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *InsightEventUpdate) SetNillableRunID(v *string) *InsightEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *InsightEventUpdate) SetSkillID(v string) *InsightEventUpdate {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *InsightEventUpdate) SetNillableSkillID(v *string) *InsightEventUpdate {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetPKnown sets the "p_known" field.
func (_u *InsightEventUpdate) SetPKnown(v float64) *InsightEventUpdate {
	_u.mutation.ResetPKnown()
	_u.mutation.SetPKnown(v)
	return _u
}

// SetNillablePKnown sets the "p_known" field if the given value is not nil.
func (_u *InsightEventUpdate) SetNillablePKnown(v *float64) *InsightEventUpdate {
	if v != nil {
		_u.SetPKnown(*v)
	}
	return _u
}

// AddPKnown adds value to the "p_known" field.
func (_u *InsightEventUpdate) AddPKnown(v float64) *InsightEventUpdate {
	_u.mutation.AddPKnown(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InsightEventUpdate) SetConfidence(v float64) *InsightEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InsightEventUpdate) SetNillableConfidence(v *float64) *InsightEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InsightEventUpdate) AddConfidence(v float64) *InsightEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *InsightEventUpdate) SetClassification(v string) *InsightEventUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *InsightEventUpdate) SetNillableClassification(v *string) *InsightEventUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetOpportunities sets the "opportunities" field.
func (_u *InsightEventUpdate) SetOpportunities(v int) *InsightEventUpdate {
	_u.mutation.ResetOpportunities()
	_u.mutation.SetOpportunities(v)
	return _u
}

// SetNillableOpportunities sets the "opportunities" field if the given value is not nil.
func (_u *InsightEventUpdate) SetNillableOpportunities(v *int) *InsightEventUpdate {
	if v != nil {
		_u.SetOpportunities(*v)
	}
	return _u
}

// AddOpportunities adds value to the "opportunities" field.
func (_u *InsightEventUpdate) AddOpportunities(v int) *InsightEventUpdate {
	_u.mutation.AddOpportunities(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *InsightEventUpdate) SetSuccessCount(v int) *InsightEventUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *InsightEventUpdate) SetNillableSuccessCount(v *int) *InsightEventUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *InsightEventUpdate) AddSuccessCount(v int) *InsightEventUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// Mutation returns the InsightEventMutation object of the builder.
func (_u *InsightEventUpdate) Mutation() *InsightEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := insightevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "InsightEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := insightevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "InsightEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := insightevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "InsightEvent.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insightevent.Table, insightevent.Columns, sqlgraph.NewFieldSpec(insightevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(insightevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(insightevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PKnown(); ok {
		_spec.SetField(insightevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPKnown(); ok {
		_spec.AddField(insightevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(insightevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(insightevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(insightevent.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Opportunities(); ok {
		_spec.SetField(insightevent.FieldOpportunities, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpportunities(); ok {
		_spec.AddField(insightevent.FieldOpportunities, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(insightevent.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(insightevent.FieldSuccessCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insightevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightEventUpdateOne is the builder for updating a single InsightEvent entity.
type InsightEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *InsightEventUpdateOne) SetRunID(v string) *InsightEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *InsightEventUpdateOne) SetNillableRunID(v *string) *InsightEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSkillID sets the "skill_id" field.
func (_u *InsightEventUpdateOne) SetSkillID(v string) *InsightEventUpdateOne {
	_u.mutation.SetSkillID(v)
	return _u
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (_u *InsightEventUpdateOne) SetNillableSkillID(v *string) *InsightEventUpdateOne {
	if v != nil {
		_u.SetSkillID(*v)
	}
	return _u
}

// SetPKnown sets the "p_known" field.
func (_u *InsightEventUpdateOne) SetPKnown(v float64) *InsightEventUpdateOne {
	_u.mutation.ResetPKnown()
	_u.mutation.SetPKnown(v)
	return _u
}

// SetNillablePKnown sets the "p_known" field if the given value is not nil.
func (_u *InsightEventUpdateOne) SetNillablePKnown(v *float64) *InsightEventUpdateOne {
	if v != nil {
		_u.SetPKnown(*v)
	}
	return _u
}

// AddPKnown adds value to the "p_known" field.
func (_u *InsightEventUpdateOne) AddPKnown(v float64) *InsightEventUpdateOne {
	_u.mutation.AddPKnown(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InsightEventUpdateOne) SetConfidence(v float64) *InsightEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InsightEventUpdateOne) SetNillableConfidence(v *float64) *InsightEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *InsightEventUpdateOne) AddConfidence(v float64) *InsightEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *InsightEventUpdateOne) SetClassification(v string) *InsightEventUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *InsightEventUpdateOne) SetNillableClassification(v *string) *InsightEventUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetOpportunities sets the "opportunities" field.
func (_u *InsightEventUpdateOne) SetOpportunities(v int) *InsightEventUpdateOne {
	_u.mutation.ResetOpportunities()
	_u.mutation.SetOpportunities(v)
	return _u
}

// SetNillableOpportunities sets the "opportunities" field if the given value is not nil.
func (_u *InsightEventUpdateOne) SetNillableOpportunities(v *int) *InsightEventUpdateOne {
	if v != nil {
		_u.SetOpportunities(*v)
	}
	return _u
}

// AddOpportunities adds value to the "opportunities" field.
func (_u *InsightEventUpdateOne) AddOpportunities(v int) *InsightEventUpdateOne {
	_u.mutation.AddOpportunities(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *InsightEventUpdateOne) SetSuccessCount(v int) *InsightEventUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *InsightEventUpdateOne) SetNillableSuccessCount(v *int) *InsightEventUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *InsightEventUpdateOne) AddSuccessCount(v int) *InsightEventUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// Mutation returns the InsightEventMutation object of the builder.
func (_u *InsightEventUpdateOne) Mutation() *InsightEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InsightEventUpdate builder.
func (_u *InsightEventUpdateOne) Where(ps ...predicate.InsightEvent) *InsightEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightEventUpdateOne) Select(field string, fields ...string) *InsightEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InsightEvent entity.
func (_u *InsightEventUpdateOne) Save(ctx context.Context) (*InsightEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightEventUpdateOne) SaveX(ctx context.Context) *InsightEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := insightevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "InsightEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillID(); ok {
		if err := insightevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "InsightEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := insightevent.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "InsightEvent.classification": %w`, err)}
		}
	}
	return nil
}

func (_u *InsightEventUpdateOne) sqlSave(ctx context.Context) (_node *InsightEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insightevent.Table, insightevent.Columns, sqlgraph.NewFieldSpec(insightevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InsightEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insightevent.FieldID)
		for _, f := range fields {
			if !insightevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insightevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(insightevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillID(); ok {
		_spec.SetField(insightevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PKnown(); ok {
		_spec.SetField(insightevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPKnown(); ok {
		_spec.AddField(insightevent.FieldPKnown, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(insightevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(insightevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(insightevent.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Opportunities(); ok {
		_spec.SetField(insightevent.FieldOpportunities, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOpportunities(); ok {
		_spec.AddField(insightevent.FieldOpportunities, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(insightevent.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(insightevent.FieldSuccessCount, field.TypeInt, value)
	}
	_node = &InsightEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insightevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
