package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-ingestor/constants"
	"github.com/joseph-ayodele/doc-ingestor/db/ent/schema/utils"
)

// Document is the classified result of processing one DocumentFile: the
// content label plus where the extraction artifact landed.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("file_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.Formats...)),
		field.String("label").NotEmpty().
			Validate(utils.EnumValidator(constants.ContentLabels...)),
		field.Int("page_count").NonNegative(),
		field.String("artifact_path").NotEmpty(),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY documents -> ONE profile (FK: documents.profile_id)
		edge.From("profile", Profile.Type).
			Ref("documents").
			Field("profile_id").
			Required().
			Unique(),
		// ONE document -> MANY jobs
		edge.To("jobs", ParseJob.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		// one classified document per source file
		index.Fields("file_id").Unique(),
		index.Fields("profile_id", "created_at"),
		index.Fields("profile_id", "label"),
	}
}
