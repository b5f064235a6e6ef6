package view

import (
	"context"

	"devdash/internal/app/server/api/http/httperr"
	"devdash/internal/domain/view"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    view.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service view.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "view_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.openOp(), h.open)
	huma.Register(api, h.showOp(), h.show)
	huma.Register(api, h.filterOp(), h.filter)
	huma.Register(api, h.toggleOp(), h.toggle)
	huma.Register(api, h.closeOp(), h.close)
}

func (h *Handler) open(ctx context.Context, input *openInput) (*openOutput, error) {
	id, err := h.service.Open(ctx, input.Body.Kind)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &openOutput{Body: openResponse{ID: id, Kind: input.Body.Kind}}, nil
}

func (h *Handler) show(ctx context.Context, input *viewInput) (*pageOutput, error) {
	page, err := h.service.Show(ctx, input.ID)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &pageOutput{Body: page}, nil
}

func (h *Handler) filter(ctx context.Context, input *filterInput) (*pageOutput, error) {
	page, err := h.service.SetFilter(ctx, input.ID, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &pageOutput{Body: page}, nil
}

func (h *Handler) toggle(ctx context.Context, input *toggleInput) (*toggleOutput, error) {
	visible, err := h.service.Toggle(ctx, input.ID, input.RecordID)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &toggleOutput{Body: toggleResponse{RecordID: input.RecordID, Visible: visible}}, nil
}

func (h *Handler) close(ctx context.Context, input *viewInput) (*struct{}, error) {
	if err := h.service.Close(ctx, input.ID); err != nil {
		return nil, httperr.From(h.log, err)
	}

	return nil, nil
}
