package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	pinger     Pinger
	storage    string
	mode       string
	log        *slog.Logger
	middleware huma.Middlewares
}

// NewHandler принимает nil pinger для хранилища в памяти
func NewHandler(pinger Pinger, storage, mode string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		pinger:     pinger,
		storage:    storage,
		mode:       mode,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	if h.pinger != nil {
		if err := h.pinger.Ping(ctx); err != nil {
			h.log.Error("storage is unavailable", "storage", h.storage, "error", err)
			return nil, huma.Error503ServiceUnavailable("storage is unavailable")
		}
	}

	return &Output{
		Body: HealthResponse{
			Status:       "OK",
			Storage:      h.storage,
			MutationMode: h.mode,
		},
	}, nil
}
