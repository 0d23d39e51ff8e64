// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "label", Type: field.TypeString},
		{Name: "page_count", Type: field.TypeInt},
		{Name: "artifact_path", Type: field.TypeString},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_profiles_documents",
				Columns:    []*schema.Column{DocumentsColumns[10]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_file_id",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_profile_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[8]},
			},
			{
				Name:    "document_profile_id_label",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[10], DocumentsColumns[4]},
			},
		},
	}
	// DocumentFilesColumns holds the columns for the "document_files" table.
	DocumentFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// DocumentFilesTable holds the schema information for the "document_files" table.
	DocumentFilesTable = &schema.Table{
		Name:       "document_files",
		Columns:    DocumentFilesColumns,
		PrimaryKey: []*schema.Column{DocumentFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_files_profiles_files",
				Columns:    []*schema.Column{DocumentFilesColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentfile_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentFilesColumns[7], DocumentFilesColumns[2]},
			},
			{
				Name:    "documentfile_profile_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentFilesColumns[7], DocumentFilesColumns[6]},
			},
		},
	}
	// ParseJobColumns holds the columns for the "parse_job" table.
	ParseJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "label", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "sampled_pages", Type: field.TypeJSON, Nullable: true},
		{Name: "text_pages", Type: field.TypeInt, Nullable: true},
		{Name: "image_pages", Type: field.TypeInt, Nullable: true},
		{Name: "artifact_path", Type: field.TypeString, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ParseJobTable holds the schema information for the "parse_job" table.
	ParseJobTable = &schema.Table{
		Name:       "parse_job",
		Columns:    ParseJobColumns,
		PrimaryKey: []*schema.Column{ParseJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_job_documents_jobs",
				Columns:    []*schema.Column{ParseJobColumns[14]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "parse_job_document_files_jobs",
				Columns:    []*schema.Column{ParseJobColumns[15]},
				RefColumns: []*schema.Column{DocumentFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "parse_job_profiles_jobs",
				Columns:    []*schema.Column{ParseJobColumns[16]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_profile_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[16], ParseJobColumns[4], ParseJobColumns[2]},
			},
			{
				Name:    "parsejob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[15]},
			},
			{
				Name:    "parsejob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[14]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		DocumentFilesTable,
		ParseJobTable,
		ProfilesTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = ProfilesTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentFilesTable.ForeignKeys[0].RefTable = ProfilesTable
	DocumentFilesTable.Annotation = &entsql.Annotation{
		Table: "document_files",
	}
	ParseJobTable.ForeignKeys[0].RefTable = DocumentsTable
	ParseJobTable.ForeignKeys[1].RefTable = DocumentFilesTable
	ParseJobTable.ForeignKeys[2].RefTable = ProfilesTable
	ParseJobTable.Annotation = &entsql.Annotation{
		Table: "parse_job",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
}
