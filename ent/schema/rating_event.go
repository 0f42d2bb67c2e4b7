package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RatingEvent records one Elo update for a learning unit.
type RatingEvent struct {
	ent.Schema
}

func (RatingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RatingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_id").NotEmpty(),
		field.Int("old_rating"),
		field.Int("new_rating"),
		field.Float("expected").
			Comment("Expected success probability before the attempt"),
		field.Float("observed").
			Comment("Observed outcome score: 0, 0.5, or 1"),
	}
}

func (RatingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id"),
	}
}
