package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillGap stores one row per skill of a completed assessment so gaps can
// be aggregated across sessions.
type SkillGap struct {
	ent.Schema
}

func (SkillGap) Mixin() []ent.Mixin {
	return []ent.Mixin{RecordMixin{}}
}

func (SkillGap) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("career_id").
			NotEmpty(),
		field.String("skill").
			NotEmpty(),
		field.Int("current_level"),
		field.Int("required_level"),
		field.Int("gap").
			Comment("max(0, required_level - current_level)"),
		field.String("priority").
			Comment("high, medium or low"),
	}
}

func (SkillGap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("career_id", "skill"),
	}
}
