package file

import (
	"devdash/internal/domain/listing"

	"github.com/danielgtaylor/huma/v2"
)

type Type string

const (
	TypeMarkdown Type = "markdown"
	TypeSQL      Type = "sql"
	TypeImage    Type = "image"
	TypeArchive  Type = "archive"
	TypeText     Type = "text"
)

func (Type) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: huma.TypeString,
		Enum: []any{
			string(TypeMarkdown),
			string(TypeSQL),
			string(TypeImage),
			string(TypeArchive),
			string(TypeText),
		},
		Description: "Тип файла проекта",
	}
}

// File - файл проекта. Content пуст для бинарных файлов.
type File struct {
	ID           string `json:"id,omitempty" yaml:"id"`
	Name         string `json:"name" yaml:"name" validate:"required" minLength:"1"`
	Type         Type   `json:"type" yaml:"type" validate:"required,oneof=markdown sql image archive text"`
	Size         string `json:"size,omitempty" yaml:"size"`
	LastModified string `json:"last_modified,omitempty" yaml:"last_modified"`
	Content      string `json:"content,omitempty" yaml:"content"`
	ProjectID    string `json:"project_id,omitempty" yaml:"project_id"`
}

var Kind = &listing.Kind[File]{
	Name: "files",
	Noun: "file",
	ID:   func(f File) string { return f.ID },
	WithID: func(f File, id string) File {
		f.ID = id
		return f
	},
	Label: func(f File) string { return f.Name },
	Searchable: func(f File) []string {
		return []string{f.Name}
	},
	Dimensions: []listing.Dimension[File]{
		{
			Name:  "type",
			Value: func(f File) string { return string(f.Type) },
			Tones: map[string]listing.Tone{
				string(TypeMarkdown): listing.ToneInfo,
				string(TypeSQL):      listing.ToneAccent,
				string(TypeImage):    listing.ToneSuccess,
			},
		},
		{Name: "project", Value: func(f File) string { return f.ProjectID }},
	},
	Fields: func(f File) []listing.Field {
		return []listing.Field{
			{Name: "size", Value: f.Size},
			{Name: "last_modified", Value: f.LastModified},
		}
	},
	// Просматривать можно только файлы с текстовым содержимым
	Capabilities: func(f File) listing.Capabilities {
		return listing.Capabilities{View: f.Content != "", Edit: true, Remove: true}
	},
}
