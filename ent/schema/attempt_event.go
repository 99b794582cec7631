package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed exam run in the append-only log.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("Attempt UUID assigned by the progress tracker"),
		field.String("exam_title").
			NotEmpty().
			Comment("Course name entered at setup"),
		field.String("category").
			NotEmpty().
			Comment("Category of the attempted questions"),
		field.String("subcategory").
			Optional().
			Comment("Subcategory, when the run came from the bundled bank"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, hard, or mixed"),
		field.Int("total_questions").
			Comment("Questions in the run"),
		field.Int("correct_answers").
			Comment("Correctly answered questions"),
		field.Float("score").
			Comment("Percentage score 0-100"),
		field.Int("time_spent").
			Comment("Seconds from start to completion"),
		field.String("source").
			NotEmpty().
			Comment("upload or sample"),
		field.String("file_name").
			Optional().
			Comment("Uploaded file the questions came from"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("category"),
	}
}
