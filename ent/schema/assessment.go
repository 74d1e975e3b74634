package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment is one completed survey plus its prediction outcome.
// Rows are immutable once created and append-only per user.
type Assessment struct {
	ent.Schema
}

func (Assessment) Mixin() []ent.Mixin {
	return []ent.Mixin{AppendMixin{}}
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			Unique().
			Immutable().
			Comment("UUID of this assessment"),
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Owning user"),
		field.JSON("form_data", map[string]float64{}).
			Comment("Answers keyed by internal field ID"),
		field.Int("prediction").
			Comment("Binary label returned by the scorer"),
		field.Float("probability_positive"),
		field.Float("probability_negative"),
		field.String("risk_level").
			NotEmpty().
			Comment("Display name of the derived risk level"),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "timestamp"),
	}
}
