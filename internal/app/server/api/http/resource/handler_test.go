package resource

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"devdash/internal/domain/listing"
	"devdash/internal/domain/project"
	"devdash/internal/domain/secret"
	"devdash/internal/domain/snippet"
	"devdash/internal/domain/team"
	"devdash/internal/infrastructure/seed"
	"devdash/internal/utils/logger"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObserver struct {
	kinds   []string
	matched []int
	empty   []string
}

func (f *fakeObserver) ObservePage(kind string, matched int, empty string) {
	f.kinds = append(f.kinds, kind)
	f.matched = append(f.matched, matched)
	f.empty = append(f.empty, empty)
}

func dataset(t *testing.T) *seed.Dataset {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	return ds
}

func setup[T any](t *testing.T, kind *listing.Kind[T], recs []T, mode listing.Mode, obs PageObserver) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	store := listing.NewMemoryStore(kind.ID, recs)
	svc := listing.NewService(kind, store, mode, logger.Discard())
	NewHandler[T](svc, obs, logger.Discard(), huma.Middlewares{}).SetupRoutes(api)
	return api
}

func decodePage(t *testing.T, body string) listing.Page {
	t.Helper()
	var page listing.Page
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	return page
}

func ids(cards []listing.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestHandler_ListProjects(t *testing.T) {
	obs := &fakeObserver{}
	api := setup(t, project.Kind, dataset(t).Projects, listing.ModeStub, obs)

	tests := []struct {
		name    string
		url     string
		status  int
		ids     []string
		empty   listing.EmptyState
		matched int
	}{
		{name: "no filter", url: "/api/v1/projects", status: http.StatusOK, ids: []string{"1", "2", "3", "4", "5", "6"}, matched: 6},
		{name: "status ongoing keeps order", url: "/api/v1/projects?filter=status:ongoing", status: http.StatusOK, ids: []string{"1", "3", "5"}, matched: 3},
		{name: "all disables dimension", url: "/api/v1/projects?filter=status:all", status: http.StatusOK, ids: []string{"1", "2", "3", "4", "5", "6"}, matched: 6},
		{name: "text and status", url: "/api/v1/projects?q=DASHBOARD&filter=status:ongoing", status: http.StatusOK, ids: []string{"3"}, matched: 1},
		{name: "no match", url: "/api/v1/projects?q=zzz", status: http.StatusOK, ids: []string{}, empty: listing.EmptyNoMatch},
		{name: "unknown dimension", url: "/api/v1/projects?filter=color:red", status: http.StatusUnprocessableEntity},
		{name: "malformed filter", url: "/api/v1/projects?filter=status", status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Get(tt.url)
			require.Equal(t, tt.status, resp.Code, resp.Body.String())
			if tt.status != http.StatusOK {
				return
			}

			page := decodePage(t, resp.Body.String())
			assert.Equal(t, 6, page.Total)
			assert.Equal(t, tt.ids, ids(page.Items))
			if tt.empty != "" {
				require.NotNil(t, page.Empty)
				assert.Equal(t, tt.empty, page.Empty.State)
			} else {
				assert.Nil(t, page.Empty)
			}
		})
	}

	require.NotEmpty(t, obs.kinds)
	assert.Equal(t, "projects", obs.kinds[0])
	assert.Equal(t, 6, obs.matched[0])
	assert.Contains(t, obs.empty, string(listing.EmptyNoMatch))
}

func TestHandler_ListSnippets_TagSearch(t *testing.T) {
	api := setup(t, snippet.Kind, dataset(t).Snippets, listing.ModeStub, nil)

	resp := api.Get("/api/v1/snippets?q=auth")

	require.Equal(t, http.StatusOK, resp.Code)
	page := decodePage(t, resp.Body.String())
	assert.Equal(t, []string{"1"}, ids(page.Items))
	assert.True(t, page.Items[0].HasAction(listing.ActionCopy))
}

func TestHandler_ListTeam_OwnerCannotBeRemoved(t *testing.T) {
	api := setup(t, team.Kind, dataset(t).Team, listing.ModeStub, nil)

	resp := api.Get("/api/v1/team?filter=role:owner")
	require.Equal(t, http.StatusOK, resp.Code)
	page := decodePage(t, resp.Body.String())
	require.Len(t, page.Items, 1)
	assert.False(t, page.Items[0].HasAction(listing.ActionDelete))

	resp = api.Delete("/api/v1/team/1")
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = api.Delete("/api/v1/team/3")
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHandler_Secrets_Masking(t *testing.T) {
	api := setup(t, secret.Kind, dataset(t).Secrets, listing.ModeStub, nil)

	t.Run("list masks until revealed", func(t *testing.T) {
		resp := api.Get("/api/v1/secrets?reveal=2,unknown")
		require.Equal(t, http.StatusOK, resp.Code)
		page := decodePage(t, resp.Body.String())

		assert.Equal(t, []string{"2"}, page.Revealed)
		for _, card := range page.Items {
			value := card.Fields[0]
			require.Equal(t, "value", value.Name)
			if card.ID == "2" {
				assert.Equal(t, "sk_test_51234567890abcdef", value.Value)
				assert.False(t, value.Masked)
				continue
			}
			assert.True(t, value.Masked)
			assert.NotContains(t, value.Value, ":")
		}
	})

	t.Run("find masks by default", func(t *testing.T) {
		resp := api.Get("/api/v1/secrets/2")
		require.Equal(t, http.StatusOK, resp.Code)

		var s secret.Secret
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &s))
		assert.Equal(t, strings.Repeat(listing.MaskRune, listing.MaxMaskWidth), s.Value)
	})

	t.Run("find reveal", func(t *testing.T) {
		resp := api.Get("/api/v1/secrets/2?reveal=true")
		require.Equal(t, http.StatusOK, resp.Code)

		var s secret.Secret
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &s))
		assert.Equal(t, "sk_test_51234567890abcdef", s.Value)
	})

	t.Run("find missing", func(t *testing.T) {
		resp := api.Get("/api/v1/secrets/404")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHandler_Mutations(t *testing.T) {
	body := map[string]any{"name": "Billing Service", "status": "ongoing"}

	t.Run("stub mode acknowledges without writing", func(t *testing.T) {
		api := setup(t, project.Kind, dataset(t).Projects, listing.ModeStub, nil)

		resp := api.Post("/api/v1/projects", body)
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

		var r mutationResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &r))
		assert.NotEmpty(t, r.ID)
		assert.False(t, r.Persisted)

		page := decodePage(t, api.Get("/api/v1/projects").Body.String())
		assert.Equal(t, 6, page.Total)
	})

	t.Run("persist mode writes", func(t *testing.T) {
		api := setup(t, project.Kind, dataset(t).Projects, listing.ModePersist, nil)

		resp := api.Post("/api/v1/projects", body)
		require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
		var created mutationResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
		assert.True(t, created.Persisted)

		page := decodePage(t, api.Get("/api/v1/projects").Body.String())
		assert.Equal(t, 7, page.Total)
		assert.Equal(t, created.ID, page.Items[6].ID)

		resp = api.Put("/api/v1/projects/"+created.ID, map[string]any{"name": "Billing", "status": "completed"})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

		page = decodePage(t, api.Get("/api/v1/projects?filter=status:completed").Body.String())
		assert.Equal(t, []string{"2", "6", created.ID}, ids(page.Items))

		resp = api.Delete("/api/v1/projects/" + created.ID)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, http.StatusNotFound, api.Get("/api/v1/projects/"+created.ID).Code)
	})

	t.Run("duplicate id", func(t *testing.T) {
		api := setup(t, project.Kind, dataset(t).Projects, listing.ModeStub, nil)

		resp := api.Post("/api/v1/projects", map[string]any{"id": "1", "name": "Copy", "status": "ongoing"})
		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		api := setup(t, project.Kind, dataset(t).Projects, listing.ModeStub, nil)

		resp := api.Post("/api/v1/projects", map[string]any{"name": "No status"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("update missing", func(t *testing.T) {
		api := setup(t, project.Kind, dataset(t).Projects, listing.ModeStub, nil)

		resp := api.Put("/api/v1/projects/99", body)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
