package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InsightEvent records one skill's estimate from a computation run, so past
// classifications remain auditable after priors or options change.
type InsightEvent struct {
	ent.Schema
}

func (InsightEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (InsightEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Groups the skills of one computation run"),
		field.String("skill_id").
			NotEmpty(),
		field.Float("p_known").
			Comment("Final mastery estimate; NaN is stored as -1 (sqlite has no NaN)"),
		field.Float("confidence"),
		field.String("classification").
			NotEmpty().
			Comment("strong, developing, or weak"),
		field.Int("opportunities"),
		field.Int("success_count"),
	}
}

func (InsightEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("skill_id"),
	}
}
