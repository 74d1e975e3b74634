package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is an authenticated account. One row per sign-up.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID assigned at sign-up"),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("name").
			Default(""),
		field.String("student_id").
			Default("").
			Comment("Optional university student ID"),
		field.Bytes("password_hash").
			Sensitive().
			Comment("bcrypt hash of the account password"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("last_assessment").
			Optional().
			Nillable().
			Comment("Timestamp of the most recent completed assessment"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
