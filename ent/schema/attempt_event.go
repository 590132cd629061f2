package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one practice attempt: the raw observation stream the
// tracing engine replays.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Groups attempts recorded in one sitting"),
		field.JSON("skills", []string{}).
			Comment("Skill IDs the problem exercised; conjunctive problems carry several"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("help_level").
			Default(0).
			Comment("Assistance given: 0 none, 1 hint, 2 decomposition, 3 full solution"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
