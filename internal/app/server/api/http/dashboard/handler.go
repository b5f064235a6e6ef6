package dashboard

import (
	"context"

	"devdash/internal/app/server/api/http/httperr"
	"devdash/internal/domain/dashboard"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    dashboard.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service dashboard.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statsOp(), h.stats)
}

func (h *Handler) stats(ctx context.Context, _ *struct{}) (*statsOutput, error) {
	stats, err := h.service.Stats(ctx)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &statsOutput{Body: stats}, nil
}
