package view

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"devdash/internal/domain/listing"
	"devdash/internal/domain/secret"
	"devdash/internal/domain/view"
	"devdash/internal/infrastructure/seed"
	"devdash/internal/utils/logger"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) humatest.TestAPI {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)

	secrets := listing.NewService(secret.Kind, listing.NewMemoryStore(secret.Kind.ID, ds.Secrets), listing.ModeStub, logger.Discard())
	svc := view.NewService([]listing.Viewer{secrets}, time.Minute, logger.Discard())

	_, api := humatest.New(t)
	NewHandler(svc, logger.Discard(), huma.Middlewares{}).SetupRoutes(api)
	return api
}

func openView(t *testing.T, api humatest.TestAPI, kind string) string {
	t.Helper()
	resp := api.Post("/api/v1/views", map[string]any{"kind": kind})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var r openResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &r))
	require.NotEmpty(t, r.ID)
	return r.ID
}

func page(t *testing.T, body []byte) listing.Page {
	t.Helper()
	var p listing.Page
	require.NoError(t, json.Unmarshal(body, &p))
	return p
}

func TestHandler_ViewLifecycle(t *testing.T) {
	api := setup(t)
	id := openView(t, api, "secrets")

	// Arrange: все значения скрыты
	p := page(t, api.Get("/api/v1/views/"+id).Body.Bytes())
	require.Len(t, p.Items, 4)
	for _, card := range p.Items {
		assert.True(t, card.Fields[0].Masked)
	}

	// Act: раскрываем запись 2
	resp := api.Post("/api/v1/views/" + id + "/visibility/2")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var tr toggleResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tr))
	assert.True(t, tr.Visible)

	// Assert: раскрыта только запись 2
	p = page(t, api.Get("/api/v1/views/"+id).Body.Bytes())
	assert.Equal(t, []string{"2"}, p.Revealed)
	for _, card := range p.Items {
		assert.Equal(t, card.ID != "2", card.Fields[0].Masked, card.ID)
	}

	// фильтр сохраняется в представлении и не сбрасывает видимость
	resp = api.Put("/api/v1/views/"+id+"/filter", map[string]any{"text": "stripe"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	p = page(t, api.Get("/api/v1/views/"+id).Body.Bytes())
	require.Len(t, p.Items, 1)
	assert.False(t, p.Items[0].Fields[0].Masked)

	// повторное переключение снова скрывает
	resp = api.Post("/api/v1/views/" + id + "/visibility/2")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tr))
	assert.False(t, tr.Visible)

	resp = api.Delete("/api/v1/views/" + id)
	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/api/v1/views/"+id).Code)
}

func TestHandler_Errors(t *testing.T) {
	api := setup(t)

	t.Run("unknown kind", func(t *testing.T) {
		resp := api.Post("/api/v1/views", map[string]any{"kind": "widgets"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("unknown view", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, api.Get("/api/v1/views/nope").Code)
		assert.Equal(t, http.StatusNotFound, api.Delete("/api/v1/views/nope").Code)
	})

	t.Run("toggle unknown record", func(t *testing.T) {
		id := openView(t, api, "secrets")
		resp := api.Post("/api/v1/views/" + id + "/visibility/99")
		assert.Equal(t, http.StatusNotFound, resp.Code)

		p := page(t, api.Get("/api/v1/views/"+id).Body.Bytes())
		assert.Empty(t, p.Revealed)
	})

	t.Run("bad filter is not stored", func(t *testing.T) {
		id := openView(t, api, "secrets")
		resp := api.Put("/api/v1/views/"+id+"/filter", map[string]any{"categories": map[string]string{"color": "red"}})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

		resp = api.Get("/api/v1/views/" + id)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, page(t, resp.Body.Bytes()).Items, 4)
	})
}
