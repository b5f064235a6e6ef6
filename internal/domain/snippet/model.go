package snippet

import (
	"strings"

	"devdash/internal/domain/listing"
)

type Snippet struct {
	ID          string   `json:"id,omitempty" yaml:"id"`
	Title       string   `json:"title" yaml:"title" validate:"required" minLength:"1"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Language    string   `json:"language" yaml:"language" validate:"required" doc:"typescript, javascript, go, sql..."`
	Tags        []string `json:"tags,omitempty" yaml:"tags" validate:"dive,required"`
	Code        string   `json:"code" yaml:"code" validate:"required"`
	CreatedAt   string   `json:"created_at,omitempty" yaml:"created_at"`
	UpdatedAt   string   `json:"updated_at,omitempty" yaml:"updated_at"`
	ProjectID   string   `json:"project_id,omitempty" yaml:"project_id"`
}

var Kind = &listing.Kind[Snippet]{
	Name: "snippets",
	Noun: "snippet",
	ID:   func(s Snippet) string { return s.ID },
	WithID: func(s Snippet, id string) Snippet {
		s.ID = id
		return s
	},
	Label:       func(s Snippet) string { return s.Title },
	Description: func(s Snippet) string { return s.Description },
	Searchable: func(s Snippet) []string {
		return append([]string{s.Title, s.Description}, s.Tags...)
	},
	Dimensions: []listing.Dimension[Snippet]{
		{
			Name:  "language",
			Value: func(s Snippet) string { return s.Language },
			Tones: map[string]listing.Tone{
				"typescript": listing.ToneInfo,
				"javascript": listing.ToneAccent,
				"go":         listing.ToneSuccess,
			},
		},
		{Name: "project", Value: func(s Snippet) string { return s.ProjectID }},
	},
	Fields: func(s Snippet) []listing.Field {
		return []listing.Field{
			{Name: "tags", Value: strings.Join(s.Tags, ", ")},
			{Name: "created_at", Value: s.CreatedAt},
			{Name: "updated_at", Value: s.UpdatedAt},
			{Name: "code", Value: s.Code},
		}
	},
	Capabilities: func(Snippet) listing.Capabilities {
		return listing.Capabilities{View: true, Copy: true, Edit: true, Remove: true}
	},
}
