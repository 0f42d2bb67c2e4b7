package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records an XP award, a streak change, or a freeze
// consumption, with the running totals after the change.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").NotEmpty().
			Comment("xp, streak, or freeze"),
		field.Int("amount").
			Comment("XP delta, streak delta, or freezes consumed"),
		field.Int("xp_total"),
		field.Int("streak"),
		field.String("reason").Optional(),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
