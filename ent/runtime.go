// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/unimind/unimind/ent/assessment"
	"github.com/unimind/unimind/ent/predictionevent"
	"github.com/unimind/unimind/ent/schema"
	"github.com/unimind/unimind/ent/session"
	"github.com/unimind/unimind/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentMixin := schema.Assessment{}.Mixin()
	assessmentMixinFields0 := assessmentMixin[0].Fields()
	_ = assessmentMixinFields0
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescTimestamp is the schema descriptor for timestamp field.
	assessmentDescTimestamp := assessmentMixinFields0[1].Descriptor()
	// assessment.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessment.DefaultTimestamp = assessmentDescTimestamp.Default.(func() time.Time)
	// assessmentDescUserID is the schema descriptor for user_id field.
	assessmentDescUserID := assessmentFields[1].Descriptor()
	// assessment.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assessment.UserIDValidator = assessmentDescUserID.Validators[0].(func(string) error)
	// assessmentDescRiskLevel is the schema descriptor for risk_level field.
	assessmentDescRiskLevel := assessmentFields[6].Descriptor()
	// assessment.RiskLevelValidator is a validator for the "risk_level" field. It is called by the builders before save.
	assessment.RiskLevelValidator = assessmentDescRiskLevel.Validators[0].(func(string) error)
	predictioneventMixin := schema.PredictionEvent{}.Mixin()
	predictioneventMixinFields0 := predictioneventMixin[0].Fields()
	_ = predictioneventMixinFields0
	predictioneventFields := schema.PredictionEvent{}.Fields()
	_ = predictioneventFields
	// predictioneventDescTimestamp is the schema descriptor for timestamp field.
	predictioneventDescTimestamp := predictioneventMixinFields0[1].Descriptor()
	// predictionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	predictionevent.DefaultTimestamp = predictioneventDescTimestamp.Default.(func() time.Time)
	// predictioneventDescEndpoint is the schema descriptor for endpoint field.
	predictioneventDescEndpoint := predictioneventFields[0].Descriptor()
	// predictionevent.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	predictionevent.EndpointValidator = predictioneventDescEndpoint.Validators[0].(func(string) error)
	// predictioneventDescLatencyMs is the schema descriptor for latency_ms field.
	predictioneventDescLatencyMs := predictioneventFields[1].Descriptor()
	// predictionevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	predictionevent.DefaultLatencyMs = predictioneventDescLatencyMs.Default.(int64)
	// predictioneventDescSuccess is the schema descriptor for success field.
	predictioneventDescSuccess := predictioneventFields[2].Descriptor()
	// predictionevent.DefaultSuccess holds the default value on creation for the success field.
	predictionevent.DefaultSuccess = predictioneventDescSuccess.Default.(bool)
	// predictioneventDescRiskLevel is the schema descriptor for risk_level field.
	predictioneventDescRiskLevel := predictioneventFields[3].Descriptor()
	// predictionevent.DefaultRiskLevel holds the default value on creation for the risk_level field.
	predictionevent.DefaultRiskLevel = predictioneventDescRiskLevel.Default.(string)
	// predictioneventDescErrorMessage is the schema descriptor for error_message field.
	predictioneventDescErrorMessage := predictioneventFields[4].Descriptor()
	// predictionevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	predictionevent.DefaultErrorMessage = predictioneventDescErrorMessage.Default.(string)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescUserID is the schema descriptor for user_id field.
	sessionDescUserID := sessionFields[0].Descriptor()
	// session.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	session.UserIDValidator = sessionDescUserID.Validators[0].(func(string) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[1].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.DefaultName holds the default value on creation for the name field.
	user.DefaultName = userDescName.Default.(string)
	// userDescStudentID is the schema descriptor for student_id field.
	userDescStudentID := userFields[3].Descriptor()
	// user.DefaultStudentID holds the default value on creation for the student_id field.
	user.DefaultStudentID = userDescStudentID.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
