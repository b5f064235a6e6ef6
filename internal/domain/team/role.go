package team

import (
	"devdash/internal/domain/listing"

	"github.com/danielgtaylor/huma/v2"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (Role) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:        huma.TypeString,
		Enum:        []any{string(RoleOwner), string(RoleAdmin), string(RoleMember)},
		Description: "Роль участника в проекте",
	}
}

// capabilities - таблица прав по ролям. Владельца удалить нельзя.
var capabilities = map[Role]listing.Capabilities{
	RoleOwner:  {View: true, Copy: true, Edit: true, Remove: false},
	RoleAdmin:  {View: true, Copy: true, Edit: true, Remove: true},
	RoleMember: {View: true, Copy: true, Edit: true, Remove: true},
}

// Capabilities возвращает права роли; неизвестная роль получает права участника
func (r Role) Capabilities() listing.Capabilities {
	if c, ok := capabilities[r]; ok {
		return c
	}
	return capabilities[RoleMember]
}

// Removable - может ли участник с этой ролью быть исключен из проекта
func (r Role) Removable() bool {
	return r.Capabilities().Remove
}
