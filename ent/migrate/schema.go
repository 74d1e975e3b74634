// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "form_data", Type: field.TypeJSON},
		{Name: "prediction", Type: field.TypeInt},
		{Name: "probability_positive", Type: field.TypeFloat64},
		{Name: "probability_negative", Type: field.TypeFloat64},
		{Name: "risk_level", Type: field.TypeString},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[1]},
			},
			{
				Name:    "assessment_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[2]},
			},
			{
				Name:    "assessment_user_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[4]},
			},
			{
				Name:    "assessment_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[4], AssessmentsColumns[2]},
			},
		},
	}
	// PredictionEventsColumns holds the columns for the "prediction_events" table.
	PredictionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: false},
		{Name: "risk_level", Type: field.TypeString, Default: ""},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// PredictionEventsTable holds the schema information for the "prediction_events" table.
	PredictionEventsTable = &schema.Table{
		Name:       "prediction_events",
		Columns:    PredictionEventsColumns,
		PrimaryKey: []*schema.Column{PredictionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "predictionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[1]},
			},
			{
				Name:    "predictionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[2]},
			},
			{
				Name:    "predictionevent_success",
				Unique:  false,
				Columns: []*schema.Column{PredictionEventsColumns[5]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "student_id", Type: field.TypeString, Default: ""},
		{Name: "password_hash", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "last_assessment", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentsTable,
		PredictionEventsTable,
		SessionsTable,
		UsersTable,
	}
)

func init() {
}
