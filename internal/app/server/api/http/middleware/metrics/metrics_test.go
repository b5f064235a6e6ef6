package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingOutput struct {
	Body string
}

func TestMiddleware_CountsRequests(t *testing.T) {
	m := New()
	_, api := humatest.New(t)

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{m.Middleware()},
	}, func(context.Context, *struct{}) (*pingOutput, error) {
		return &pingOutput{Body: "pong"}, nil
	})

	api.Get("/ping")
	api.Get("/ping")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("ping", http.MethodGet, "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestObservePage(t *testing.T) {
	m := New()

	m.ObservePage("projects", 6, "")
	m.ObservePage("projects", 0, "no_match")

	assert.Equal(t, 1, testutil.CollectAndCount(m.matched))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.empty.WithLabelValues("projects", "no_match")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	m := New()
	m.ObservePage("team", 4, "")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "devdash_list_matched_records"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
