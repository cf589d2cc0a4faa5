package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is a persisted generated exercise. Immutable after creation
// except for deletion.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("title").NotEmpty(),
		field.String("description"),
		field.String("kind").NotEmpty(),
		// Tagged content envelope, JSON-encoded.
		field.Text("content").NotEmpty(),
		field.String("cover_image_url").Optional(),
		// Grounding references, JSON-encoded; empty when none returned.
		field.Text("grounding").Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("created_at"),
	}
}
