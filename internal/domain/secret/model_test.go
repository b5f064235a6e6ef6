package secret_test

import (
	"testing"

	"devdash/internal/domain/listing"
	"devdash/internal/domain/secret"
	"devdash/internal/infrastructure/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(cards []listing.Card) map[string]listing.CardField {
	out := make(map[string]listing.CardField, len(cards))
	for _, c := range cards {
		out[c.ID] = c.Fields[0]
	}
	return out
}

func TestRender_ToggleRevealsOneSecret(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)
	raw := make(map[string]string, len(ds.Secrets))
	for _, s := range ds.Secrets {
		raw[s.ID] = s.Value
	}
	visible := listing.NewVisibilitySet()

	// Arrange: все значения скрыты
	before := values(listing.Render(secret.Kind, ds.Secrets, visible))
	for id, f := range before {
		require.True(t, f.Masked, id)
		require.Equal(t, listing.Mask(raw[id]), f.Value)
	}

	// Act: раскрываем 2
	visible.Toggle("2")
	shown := values(listing.Render(secret.Kind, ds.Secrets, visible))

	// Assert: только 2 раскрыто
	for id, f := range shown {
		if id == "2" {
			assert.Equal(t, raw["2"], f.Value)
			assert.False(t, f.Masked)
			continue
		}
		assert.Equal(t, before[id], f)
	}

	// повторное переключение возвращает маску
	visible.Toggle("2")
	assert.Equal(t, before, values(listing.Render(secret.Kind, ds.Secrets, visible)))
}

func TestKind_MaskSingleRecord(t *testing.T) {
	s := secret.Secret{ID: "1", Key: "API_KEY", Value: "sk_live_123"}

	masked := secret.Kind.Mask(s)

	assert.Equal(t, listing.Mask("sk_live_123"), masked.Value)
	assert.Equal(t, "sk_live_123", s.Value)
}

func TestApply_Environment(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	got := listing.Apply(secret.Kind, ds.Secrets, listing.FilterState{
		Categories: map[string]string{"environment": string(secret.EnvDevelopment)},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}
