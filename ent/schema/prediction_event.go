package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PredictionEvent records a single call to the prediction service,
// successful or not.
type PredictionEvent struct {
	ent.Schema
}

func (PredictionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{AppendMixin{}}
}

func (PredictionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("endpoint").
			NotEmpty().
			Comment("Request URL without query"),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(false),
		field.String("risk_level").
			Default("").
			Comment("Derived level on success, empty on failure"),
		field.String("error_message").
			Default(""),
	}
}

func (PredictionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("success"),
	}
}
