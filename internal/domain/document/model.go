package document

import "devdash/internal/domain/listing"

// Document - документация проекта, Content хранится в markdown
type Document struct {
	ID          string `json:"id,omitempty" yaml:"id"`
	Title       string `json:"title" yaml:"title" validate:"required" minLength:"1"`
	Description string `json:"description,omitempty" yaml:"description"`
	Project     string `json:"project" yaml:"project" validate:"required"`
	LastUpdated string `json:"last_updated,omitempty" yaml:"last_updated"`
	Author      string `json:"author,omitempty" yaml:"author"`
	Content     string `json:"content,omitempty" yaml:"content"`
}

var Kind = &listing.Kind[Document]{
	Name: "docs",
	Noun: "document",
	ID:   func(d Document) string { return d.ID },
	WithID: func(d Document, id string) Document {
		d.ID = id
		return d
	},
	Label:       func(d Document) string { return d.Title },
	Description: func(d Document) string { return d.Description },
	Searchable: func(d Document) []string {
		return []string{d.Title, d.Description}
	},
	Dimensions: []listing.Dimension[Document]{
		{Name: "project", Value: func(d Document) string { return d.Project }},
	},
	Fields: func(d Document) []listing.Field {
		return []listing.Field{
			{Name: "last_updated", Value: d.LastUpdated},
			{Name: "author", Value: d.Author},
		}
	},
}
