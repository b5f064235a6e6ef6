package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type pingOutput struct {
	Body struct {
		OK bool `json:"ok"`
	}
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantLevel string
		status    float64
	}{
		{name: "ok", path: "/ping/ok?reveal=1", wantLevel: "INFO", status: 200},
		{name: "missing", path: "/ping/missing", wantLevel: "WARN", status: 404},
		{name: "broken", path: "/ping/broken", wantLevel: "ERROR", status: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))
			_, api := humatest.New(t)

			huma.Register(api, huma.Operation{
				OperationID: "ping",
				Method:      http.MethodGet,
				Path:        "/ping/{name}",
				Middlewares: huma.Middlewares{New(log).Middleware()},
			}, func(_ context.Context, in *struct {
				Name string `path:"name"`
			}) (*pingOutput, error) {
				switch in.Name {
				case "missing":
					return nil, huma.Error404NotFound("no such ping")
				case "broken":
					return nil, huma.Error500InternalServerError("boom")
				}
				return &pingOutput{}, nil
			})

			// Act
			api.Get(tt.path)

			// Assert
			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "ping", entry["operation"])
			assert.Equal(t, tt.status, entry["status"])
			assert.Equal(t, "http_logger", entry["component"])
			assert.NotContains(t, entry["path"], "reveal")
		})
	}
}
