package archive

import (
	"strconv"

	"devdash/internal/domain/listing"

	"github.com/danielgtaylor/huma/v2"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

func (Status) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        []any{string(StatusCompleted), string(StatusArchived)},
		Description: "Статус архива",
	}
}

type Archive struct {
	ID          string `json:"id,omitempty" yaml:"id"`
	Name        string `json:"name" yaml:"name" validate:"required" minLength:"1"`
	Description string `json:"description,omitempty" yaml:"description"`
	Size        string `json:"size,omitempty" yaml:"size"`
	CreatedAt   string `json:"created_at,omitempty" yaml:"created_at"`
	Status      Status `json:"status" yaml:"status" validate:"required,oneof=completed archived"`
	Downloads   int    `json:"downloads" yaml:"downloads" required:"false" validate:"gte=0"`
}

var Kind = &listing.Kind[Archive]{
	Name: "archives",
	Noun: "archive",
	ID:   func(a Archive) string { return a.ID },
	WithID: func(a Archive, id string) Archive {
		a.ID = id
		return a
	},
	Label:       func(a Archive) string { return a.Name },
	Description: func(a Archive) string { return a.Description },
	Searchable: func(a Archive) []string {
		return []string{a.Name, a.Description}
	},
	Dimensions: []listing.Dimension[Archive]{
		{
			Name:  "status",
			Value: func(a Archive) string { return string(a.Status) },
			Tones: map[string]listing.Tone{
				string(StatusCompleted): listing.ToneSuccess,
			},
		},
	},
	Fields: func(a Archive) []listing.Field {
		return []listing.Field{
			{Name: "size", Value: a.Size},
			{Name: "created_at", Value: a.CreatedAt},
			{Name: "downloads", Value: strconv.Itoa(a.Downloads)},
		}
	},
	Capabilities: func(Archive) listing.Capabilities {
		return listing.Capabilities{View: true, Remove: true}
	},
}
