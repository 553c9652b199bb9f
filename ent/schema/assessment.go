package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment records a completed assessment session and its final result.
type Assessment struct {
	ent.Schema
}

func (Assessment) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID of the assessment session"),
		field.String("career_id").
			NotEmpty().
			Comment("Career profile the user was assessed against"),
		field.String("mode").
			Comment("fixed or adaptive"),
		field.String("source").
			Comment("ai or standard"),
		field.Int("overall_score").
			Default(0).
			Comment("0-100 readiness score"),
		field.String("readiness_level").
			Comment("High, Medium or Low"),
		field.Int("question_count").
			Default(0).
			Comment("Questions answered before the session completed"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock duration of the session"),
		field.JSON("result", map[string]any{}).
			Comment("Full assessment result as JSON"),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("career_id"),
	}
}
