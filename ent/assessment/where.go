// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/unimind/unimind/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTimestamp, v))
}

// AssessmentID applies equality check predicate on the "assessment_id" field. It's identical to AssessmentIDEQ.
func AssessmentID(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAssessmentID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldUserID, v))
}

// Prediction applies equality check predicate on the "prediction" field. It's identical to PredictionEQ.
func Prediction(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldPrediction, v))
}

// ProbabilityPositive applies equality check predicate on the "probability_positive" field. It's identical to ProbabilityPositiveEQ.
func ProbabilityPositive(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldProbabilityPositive, v))
}

// ProbabilityNegative applies equality check predicate on the "probability_negative" field. It's identical to ProbabilityNegativeEQ.
func ProbabilityNegative(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldProbabilityNegative, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldRiskLevel, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldTimestamp, v))
}

// AssessmentIDEQ applies the EQ predicate on the "assessment_id" field.
func AssessmentIDEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldAssessmentID, v))
}

// AssessmentIDNEQ applies the NEQ predicate on the "assessment_id" field.
func AssessmentIDNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldAssessmentID, v))
}

// AssessmentIDIn applies the In predicate on the "assessment_id" field.
func AssessmentIDIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldAssessmentID, vs...))
}

// AssessmentIDNotIn applies the NotIn predicate on the "assessment_id" field.
func AssessmentIDNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldAssessmentID, vs...))
}

// AssessmentIDGT applies the GT predicate on the "assessment_id" field.
func AssessmentIDGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldAssessmentID, v))
}

// AssessmentIDGTE applies the GTE predicate on the "assessment_id" field.
func AssessmentIDGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldAssessmentID, v))
}

// AssessmentIDLT applies the LT predicate on the "assessment_id" field.
func AssessmentIDLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldAssessmentID, v))
}

// AssessmentIDLTE applies the LTE predicate on the "assessment_id" field.
func AssessmentIDLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldAssessmentID, v))
}

// AssessmentIDContains applies the Contains predicate on the "assessment_id" field.
func AssessmentIDContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldAssessmentID, v))
}

// AssessmentIDHasPrefix applies the HasPrefix predicate on the "assessment_id" field.
func AssessmentIDHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldAssessmentID, v))
}

// AssessmentIDHasSuffix applies the HasSuffix predicate on the "assessment_id" field.
func AssessmentIDHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldAssessmentID, v))
}

// AssessmentIDEqualFold applies the EqualFold predicate on the "assessment_id" field.
func AssessmentIDEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldAssessmentID, v))
}

// AssessmentIDContainsFold applies the ContainsFold predicate on the "assessment_id" field.
func AssessmentIDContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldAssessmentID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldUserID, v))
}

// PredictionEQ applies the EQ predicate on the "prediction" field.
func PredictionEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldPrediction, v))
}

// PredictionNEQ applies the NEQ predicate on the "prediction" field.
func PredictionNEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldPrediction, v))
}

// PredictionIn applies the In predicate on the "prediction" field.
func PredictionIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldPrediction, vs...))
}

// PredictionNotIn applies the NotIn predicate on the "prediction" field.
func PredictionNotIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldPrediction, vs...))
}

// PredictionGT applies the GT predicate on the "prediction" field.
func PredictionGT(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldPrediction, v))
}

// PredictionGTE applies the GTE predicate on the "prediction" field.
func PredictionGTE(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldPrediction, v))
}

// PredictionLT applies the LT predicate on the "prediction" field.
func PredictionLT(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldPrediction, v))
}

// PredictionLTE applies the LTE predicate on the "prediction" field.
func PredictionLTE(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldPrediction, v))
}

// ProbabilityPositiveEQ applies the EQ predicate on the "probability_positive" field.
func ProbabilityPositiveEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldProbabilityPositive, v))
}

// ProbabilityPositiveNEQ applies the NEQ predicate on the "probability_positive" field.
func ProbabilityPositiveNEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldProbabilityPositive, v))
}

// ProbabilityPositiveIn applies the In predicate on the "probability_positive" field.
func ProbabilityPositiveIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldProbabilityPositive, vs...))
}

// ProbabilityPositiveNotIn applies the NotIn predicate on the "probability_positive" field.
func ProbabilityPositiveNotIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldProbabilityPositive, vs...))
}

// ProbabilityPositiveGT applies the GT predicate on the "probability_positive" field.
func ProbabilityPositiveGT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldProbabilityPositive, v))
}

// ProbabilityPositiveGTE applies the GTE predicate on the "probability_positive" field.
func ProbabilityPositiveGTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldProbabilityPositive, v))
}

// ProbabilityPositiveLT applies the LT predicate on the "probability_positive" field.
func ProbabilityPositiveLT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldProbabilityPositive, v))
}

// ProbabilityPositiveLTE applies the LTE predicate on the "probability_positive" field.
func ProbabilityPositiveLTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldProbabilityPositive, v))
}

// ProbabilityNegativeEQ applies the EQ predicate on the "probability_negative" field.
func ProbabilityNegativeEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldProbabilityNegative, v))
}

// ProbabilityNegativeNEQ applies the NEQ predicate on the "probability_negative" field.
func ProbabilityNegativeNEQ(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldProbabilityNegative, v))
}

// ProbabilityNegativeIn applies the In predicate on the "probability_negative" field.
func ProbabilityNegativeIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldProbabilityNegative, vs...))
}

// ProbabilityNegativeNotIn applies the NotIn predicate on the "probability_negative" field.
func ProbabilityNegativeNotIn(vs ...float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldProbabilityNegative, vs...))
}

// ProbabilityNegativeGT applies the GT predicate on the "probability_negative" field.
func ProbabilityNegativeGT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldProbabilityNegative, v))
}

// ProbabilityNegativeGTE applies the GTE predicate on the "probability_negative" field.
func ProbabilityNegativeGTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldProbabilityNegative, v))
}

// ProbabilityNegativeLT applies the LT predicate on the "probability_negative" field.
func ProbabilityNegativeLT(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldProbabilityNegative, v))
}

// ProbabilityNegativeLTE applies the LTE predicate on the "probability_negative" field.
func ProbabilityNegativeLTE(v float64) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldProbabilityNegative, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldRiskLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.NotPredicates(p))
}
