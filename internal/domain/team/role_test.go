package team_test

import (
	"testing"

	"devdash/internal/domain/listing"
	"devdash/internal/domain/team"
	"devdash/internal/infrastructure/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Capabilities(t *testing.T) {
	tests := []struct {
		role      team.Role
		removable bool
	}{
		{role: team.RoleOwner, removable: false},
		{role: team.RoleAdmin, removable: true},
		{role: team.RoleMember, removable: true},
		{role: team.Role("guest"), removable: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.removable, tt.role.Removable())
			assert.True(t, tt.role.Capabilities().Edit)
		})
	}
}

func TestRender_OwnerHasNoDelete(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	cards := listing.Render(team.Kind, ds.Team, nil)

	require.Len(t, cards, len(ds.Team))
	for i, card := range cards {
		isOwner := ds.Team[i].Role == team.RoleOwner
		assert.Equal(t, !isOwner, card.HasAction(listing.ActionDelete), card.Label)
	}
}
