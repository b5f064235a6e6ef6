package secret

import (
	"devdash/internal/domain/listing"

	"github.com/danielgtaylor/huma/v2"
)

type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

func (Environment) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        []any{string(EnvDevelopment), string(EnvStaging), string(EnvProduction)},
		Description: "Окружение, к которому относится переменная",
	}
}

// Secret - переменная окружения проекта. Value маскируется, пока не раскрыто.
type Secret struct {
	ID          string      `json:"id,omitempty" yaml:"id"`
	Key         string      `json:"key" yaml:"key" validate:"required" minLength:"1"`
	Value       string      `json:"value" yaml:"value" validate:"required"`
	Description string      `json:"description,omitempty" yaml:"description"`
	Environment Environment `json:"environment" yaml:"environment" validate:"required,oneof=development staging production"`
	ProjectID   string      `json:"project_id,omitempty" yaml:"project_id"`
	LastUpdated string      `json:"last_updated,omitempty" yaml:"last_updated"`
	CreatedBy   string      `json:"created_by,omitempty" yaml:"created_by"`
}

var Kind = &listing.Kind[Secret]{
	Name: "secrets",
	Noun: "secret",
	ID:   func(s Secret) string { return s.ID },
	WithID: func(s Secret, id string) Secret {
		s.ID = id
		return s
	},
	Label:       func(s Secret) string { return s.Key },
	Description: func(s Secret) string { return s.Description },
	Searchable: func(s Secret) []string {
		return []string{s.Key, s.Description}
	},
	Dimensions: []listing.Dimension[Secret]{
		{
			Name:  "environment",
			Value: func(s Secret) string { return string(s.Environment) },
			Tones: map[string]listing.Tone{
				string(EnvDevelopment): listing.ToneInfo,
				string(EnvStaging):     listing.ToneAccent,
				string(EnvProduction):  listing.ToneDanger,
			},
		},
		{Name: "project", Value: func(s Secret) string { return s.ProjectID }},
	},
	Fields: func(s Secret) []listing.Field {
		return []listing.Field{
			{Name: "value", Value: s.Value, Sensitive: true},
			{Name: "last_updated", Value: s.LastUpdated},
			{Name: "created_by", Value: s.CreatedBy},
		}
	},
	Capabilities: func(Secret) listing.Capabilities {
		return listing.Capabilities{View: true, Copy: true, Edit: true, Remove: true}
	},
	Mask: func(s Secret) Secret {
		s.Value = listing.Mask(s.Value)
		return s
	},
}
