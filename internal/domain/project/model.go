package project

import (
	"strconv"

	"devdash/internal/domain/listing"

	"github.com/danielgtaylor/huma/v2"
)

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (Status) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        []any{string(StatusOngoing), string(StatusCompleted), string(StatusCancelled)},
		Description: "Статус проекта",
		Examples:    []any{string(StatusOngoing)},
	}
}

type Project struct {
	ID          string `json:"id,omitempty" yaml:"id" doc:"Идентификатор, генерируется при создании"`
	Name        string `json:"name" yaml:"name" validate:"required" minLength:"1"`
	Description string `json:"description,omitempty" yaml:"description"`
	Status      Status `json:"status" yaml:"status" validate:"required,oneof=ongoing completed cancelled"`
	CreatedAt   string `json:"created_at,omitempty" yaml:"created_at"`
	LastUpdated string `json:"last_updated,omitempty" yaml:"last_updated"`
	Snippets    int    `json:"snippets" yaml:"snippets" required:"false" validate:"gte=0"`
	Files       int    `json:"files" yaml:"files" required:"false" validate:"gte=0"`
	Team        int    `json:"team" yaml:"team" required:"false" validate:"gte=0"`
	Readme      string `json:"readme,omitempty" yaml:"readme"`
}

var Kind = &listing.Kind[Project]{
	Name: "projects",
	Noun: "project",
	ID:   func(p Project) string { return p.ID },
	WithID: func(p Project, id string) Project {
		p.ID = id
		return p
	},
	Label:       func(p Project) string { return p.Name },
	Description: func(p Project) string { return p.Description },
	Searchable: func(p Project) []string {
		return []string{p.Name, p.Description}
	},
	Dimensions: []listing.Dimension[Project]{
		{
			Name:  "status",
			Value: func(p Project) string { return string(p.Status) },
			Tones: map[string]listing.Tone{
				string(StatusOngoing):   listing.ToneInfo,
				string(StatusCompleted): listing.ToneSuccess,
				string(StatusCancelled): listing.ToneDanger,
			},
		},
	},
	Fields: func(p Project) []listing.Field {
		return []listing.Field{
			{Name: "last_updated", Value: p.LastUpdated},
			{Name: "snippets", Value: strconv.Itoa(p.Snippets)},
			{Name: "files", Value: strconv.Itoa(p.Files)},
			{Name: "team", Value: strconv.Itoa(p.Team)},
		}
	},
}

// WithReadme возвращает копию проекта с новым README
func WithReadme(p Project, readme string) Project {
	p.Readme = readme
	return p
}
