// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/unimind/unimind/ent/assessment"
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssessmentCreate) SetSequence(v int64) *AssessmentCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssessmentCreate) SetTimestamp(v time.Time) *AssessmentCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableTimestamp(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAssessmentID sets the "assessment_id" field.
func (_c *AssessmentCreate) SetAssessmentID(v string) *AssessmentCreate {
	_c.mutation.SetAssessmentID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AssessmentCreate) SetUserID(v string) *AssessmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFormData sets the "form_data" field.
func (_c *AssessmentCreate) SetFormData(v map[string]float64) *AssessmentCreate {
	_c.mutation.SetFormData(v)
	return _c
}

// SetPrediction sets the "prediction" field.
func (_c *AssessmentCreate) SetPrediction(v int) *AssessmentCreate {
	_c.mutation.SetPrediction(v)
	return _c
}

// SetProbabilityPositive sets the "probability_positive" field.
func (_c *AssessmentCreate) SetProbabilityPositive(v float64) *AssessmentCreate {
	_c.mutation.SetProbabilityPositive(v)
	return _c
}

// SetProbabilityNegative sets the "probability_negative" field.
func (_c *AssessmentCreate) SetProbabilityNegative(v float64) *AssessmentCreate {
	_c.mutation.SetProbabilityNegative(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *AssessmentCreate) SetRiskLevel(v string) *AssessmentCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// Mutation returns the AssessmentMutation object of the builder.
func (_c *AssessmentCreate) Mutation() *AssessmentMutation {
	return _c.mutation
}

// Save creates the Assessment in the database.
func (_c *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assessment.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "Assessment.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Assessment.timestamp"`)}
	}
	if _, ok := _c.mutation.AssessmentID(); !ok {
		return &ValidationError{Name: "assessment_id", err: errors.New(`ent: missing required field "Assessment.assessment_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Assessment.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := assessment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FormData(); !ok {
		return &ValidationError{Name: "form_data", err: errors.New(`ent: missing required field "Assessment.form_data"`)}
	}
	if _, ok := _c.mutation.Prediction(); !ok {
		return &ValidationError{Name: "prediction", err: errors.New(`ent: missing required field "Assessment.prediction"`)}
	}
	if _, ok := _c.mutation.ProbabilityPositive(); !ok {
		return &ValidationError{Name: "probability_positive", err: errors.New(`ent: missing required field "Assessment.probability_positive"`)}
	}
	if _, ok := _c.mutation.ProbabilityNegative(); !ok {
		return &ValidationError{Name: "probability_negative", err: errors.New(`ent: missing required field "Assessment.probability_negative"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "Assessment.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := assessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Assessment.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_c *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
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

func (_c *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assessment.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assessment.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AssessmentID(); ok {
		_spec.SetField(assessment.FieldAssessmentID, field.TypeString, value)
		_node.AssessmentID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(assessment.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FormData(); ok {
		_spec.SetField(assessment.FieldFormData, field.TypeJSON, value)
		_node.FormData = value
	}
	if value, ok := _c.mutation.Prediction(); ok {
		_spec.SetField(assessment.FieldPrediction, field.TypeInt, value)
		_node.Prediction = value
	}
	if value, ok := _c.mutation.ProbabilityPositive(); ok {
		_spec.SetField(assessment.FieldProbabilityPositive, field.TypeFloat64, value)
		_node.ProbabilityPositive = value
	}
	if value, ok := _c.mutation.ProbabilityNegative(); ok {
		_spec.SetField(assessment.FieldProbabilityNegative, field.TypeFloat64, value)
		_node.ProbabilityNegative = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(assessment.FieldRiskLevel, field.TypeString, value)
		_node.RiskLevel = value
	}
	return _node, _spec
}

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
}

// Save creates the Assessment entities in the database.
func (_c *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
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
func (_c *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
