// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/unimind/unimind/ent/assessment"
	"github.com/unimind/unimind/ent/predicate"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFormData sets the "form_data" field.
func (_u *AssessmentUpdate) SetFormData(v map[string]float64) *AssessmentUpdate {
	_u.mutation.SetFormData(v)
	return _u
}

// SetPrediction sets the "prediction" field.
func (_u *AssessmentUpdate) SetPrediction(v int) *AssessmentUpdate {
	_u.mutation.ResetPrediction()
	_u.mutation.SetPrediction(v)
	return _u
}

// SetNillablePrediction sets the "prediction" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillablePrediction(v *int) *AssessmentUpdate {
	if v != nil {
		_u.SetPrediction(*v)
	}
	return _u
}

// AddPrediction adds value to the "prediction" field.
func (_u *AssessmentUpdate) AddPrediction(v int) *AssessmentUpdate {
	_u.mutation.AddPrediction(v)
	return _u
}

// SetProbabilityPositive sets the "probability_positive" field.
func (_u *AssessmentUpdate) SetProbabilityPositive(v float64) *AssessmentUpdate {
	_u.mutation.ResetProbabilityPositive()
	_u.mutation.SetProbabilityPositive(v)
	return _u
}

// SetNillableProbabilityPositive sets the "probability_positive" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableProbabilityPositive(v *float64) *AssessmentUpdate {
	if v != nil {
		_u.SetProbabilityPositive(*v)
	}
	return _u
}

// AddProbabilityPositive adds value to the "probability_positive" field.
func (_u *AssessmentUpdate) AddProbabilityPositive(v float64) *AssessmentUpdate {
	_u.mutation.AddProbabilityPositive(v)
	return _u
}

// SetProbabilityNegative sets the "probability_negative" field.
func (_u *AssessmentUpdate) SetProbabilityNegative(v float64) *AssessmentUpdate {
	_u.mutation.ResetProbabilityNegative()
	_u.mutation.SetProbabilityNegative(v)
	return _u
}

// SetNillableProbabilityNegative sets the "probability_negative" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableProbabilityNegative(v *float64) *AssessmentUpdate {
	if v != nil {
		_u.SetProbabilityNegative(*v)
	}
	return _u
}

// AddProbabilityNegative adds value to the "probability_negative" field.
func (_u *AssessmentUpdate) AddProbabilityNegative(v float64) *AssessmentUpdate {
	_u.mutation.AddProbabilityNegative(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AssessmentUpdate) SetRiskLevel(v string) *AssessmentUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableRiskLevel(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := assessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Assessment.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FormData(); ok {
		_spec.SetField(assessment.FieldFormData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Prediction(); ok {
		_spec.SetField(assessment.FieldPrediction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrediction(); ok {
		_spec.AddField(assessment.FieldPrediction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProbabilityPositive(); ok {
		_spec.SetField(assessment.FieldProbabilityPositive, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbabilityPositive(); ok {
		_spec.AddField(assessment.FieldProbabilityPositive, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProbabilityNegative(); ok {
		_spec.SetField(assessment.FieldProbabilityNegative, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbabilityNegative(); ok {
		_spec.AddField(assessment.FieldProbabilityNegative, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(assessment.FieldRiskLevel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetFormData sets the "form_data" field.
func (_u *AssessmentUpdateOne) SetFormData(v map[string]float64) *AssessmentUpdateOne {
	_u.mutation.SetFormData(v)
	return _u
}

// SetPrediction sets the "prediction" field.
func (_u *AssessmentUpdateOne) SetPrediction(v int) *AssessmentUpdateOne {
	_u.mutation.ResetPrediction()
	_u.mutation.SetPrediction(v)
	return _u
}

// SetNillablePrediction sets the "prediction" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillablePrediction(v *int) *AssessmentUpdateOne {
	if v != nil {
		_u.SetPrediction(*v)
	}
	return _u
}

// AddPrediction adds value to the "prediction" field.
func (_u *AssessmentUpdateOne) AddPrediction(v int) *AssessmentUpdateOne {
	_u.mutation.AddPrediction(v)
	return _u
}

// SetProbabilityPositive sets the "probability_positive" field.
func (_u *AssessmentUpdateOne) SetProbabilityPositive(v float64) *AssessmentUpdateOne {
	_u.mutation.ResetProbabilityPositive()
	_u.mutation.SetProbabilityPositive(v)
	return _u
}

// SetNillableProbabilityPositive sets the "probability_positive" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableProbabilityPositive(v *float64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetProbabilityPositive(*v)
	}
	return _u
}

// AddProbabilityPositive adds value to the "probability_positive" field.
func (_u *AssessmentUpdateOne) AddProbabilityPositive(v float64) *AssessmentUpdateOne {
	_u.mutation.AddProbabilityPositive(v)
	return _u
}

// SetProbabilityNegative sets the "probability_negative" field.
func (_u *AssessmentUpdateOne) SetProbabilityNegative(v float64) *AssessmentUpdateOne {
	_u.mutation.ResetProbabilityNegative()
	_u.mutation.SetProbabilityNegative(v)
	return _u
}

// SetNillableProbabilityNegative sets the "probability_negative" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableProbabilityNegative(v *float64) *AssessmentUpdateOne {
	if v != nil {
		_u.SetProbabilityNegative(*v)
	}
	return _u
}

// AddProbabilityNegative adds value to the "probability_negative" field.
func (_u *AssessmentUpdateOne) AddProbabilityNegative(v float64) *AssessmentUpdateOne {
	_u.mutation.AddProbabilityNegative(v)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *AssessmentUpdateOne) SetRiskLevel(v string) *AssessmentUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableRiskLevel(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := assessment.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Assessment.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
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
	if value, ok := _u.mutation.FormData(); ok {
		_spec.SetField(assessment.FieldFormData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Prediction(); ok {
		_spec.SetField(assessment.FieldPrediction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrediction(); ok {
		_spec.AddField(assessment.FieldPrediction, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProbabilityPositive(); ok {
		_spec.SetField(assessment.FieldProbabilityPositive, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbabilityPositive(); ok {
		_spec.AddField(assessment.FieldProbabilityPositive, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProbabilityNegative(); ok {
		_spec.SetField(assessment.FieldProbabilityNegative, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbabilityNegative(); ok {
		_spec.AddField(assessment.FieldProbabilityNegative, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(assessment.FieldRiskLevel, field.TypeString, value)
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
