package team

import (
	"strconv"

	"devdash/internal/domain/listing"
)

type Member struct {
	ID            string `json:"id,omitempty" yaml:"id"`
	Name          string `json:"name" yaml:"name" validate:"required" minLength:"1"`
	Email         string `json:"email" yaml:"email" validate:"required,email" format:"email"`
	Role          Role   `json:"role" yaml:"role" validate:"required"`
	Avatar        string `json:"avatar,omitempty" yaml:"avatar"`
	JoinedAt      string `json:"joined_at,omitempty" yaml:"joined_at"`
	LastActive    string `json:"last_active,omitempty" yaml:"last_active"`
	Contributions int    `json:"contributions" yaml:"contributions" required:"false" validate:"gte=0"`
	ProjectID     string `json:"project_id,omitempty" yaml:"project_id"`
}

var Kind = &listing.Kind[Member]{
	Name: "team",
	Noun: "team member",
	ID:   func(m Member) string { return m.ID },
	WithID: func(m Member, id string) Member {
		m.ID = id
		return m
	},
	Label:       func(m Member) string { return m.Name },
	Description: func(m Member) string { return m.Email },
	Searchable: func(m Member) []string {
		return []string{m.Name, m.Email}
	},
	Dimensions: []listing.Dimension[Member]{
		{
			Name:  "role",
			Value: func(m Member) string { return string(m.Role) },
			Tones: map[string]listing.Tone{
				string(RoleOwner):  listing.ToneAccent,
				string(RoleAdmin):  listing.ToneInfo,
				string(RoleMember): listing.ToneSuccess,
			},
		},
		{Name: "project", Value: func(m Member) string { return m.ProjectID }},
	},
	Fields: func(m Member) []listing.Field {
		return []listing.Field{
			{Name: "joined_at", Value: m.JoinedAt},
			{Name: "last_active", Value: m.LastActive},
			{Name: "contributions", Value: strconv.Itoa(m.Contributions)},
		}
	},
	Capabilities: func(m Member) listing.Capabilities {
		return m.Role.Capabilities()
	},
}
