package resource

import (
	"context"

	"devdash/internal/app/server/api/http/httperr"
	"devdash/internal/domain/listing"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Servicer - операции одного вида записей, которые нужны обработчику
type Servicer[T any] interface {
	Descriptor() *listing.Kind[T]
	Page(ctx context.Context, state listing.FilterState, visible *listing.VisibilitySet) (listing.Page, error)
	Visible(ctx context.Context, ids []string) (*listing.VisibilitySet, error)
	Get(ctx context.Context, id string, reveal bool) (T, error)
	Create(ctx context.Context, rec T) (listing.Result, error)
	Update(ctx context.Context, id string, rec T) (listing.Result, error)
	Remove(ctx context.Context, id string) (listing.Result, error)
}

// PageObserver получает размер каждой выданной страницы
type PageObserver interface {
	ObservePage(kind string, matched int, empty string)
}

// Handler обслуживает CRUD и список для одного вида записей по пути /api/v1/{kind}
type Handler[T any] struct {
	service    Servicer[T]
	observer   PageObserver
	kind       string
	noun       string
	base       string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler[T any](service Servicer[T], observer PageObserver, log *slog.Logger, mws huma.Middlewares) *Handler[T] {
	k := service.Descriptor()
	return &Handler[T]{
		service:    service,
		observer:   observer,
		kind:       k.Name,
		noun:       k.Noun,
		base:       "/api/v1/" + k.Name,
		log:        log.With("component", k.Name+"_handler"),
		middleware: mws,
	}
}

func (h *Handler[T]) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler[T]) list(ctx context.Context, input *listInput) (*listOutput, error) {
	categories, err := listing.ParseFilters(input.Filter)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	visible, err := h.service.Visible(ctx, input.Reveal)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	page, err := h.service.Page(ctx, listing.FilterState{Text: input.Query, Categories: categories}, visible)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	if h.observer != nil {
		empty := ""
		if page.Empty != nil {
			empty = string(page.Empty.State)
		}
		h.observer.ObservePage(h.kind, page.Matched, empty)
	}

	return &listOutput{Body: page}, nil
}

func (h *Handler[T]) find(ctx context.Context, input *findInput) (*findOutput[T], error) {
	rec, err := h.service.Get(ctx, input.ID, input.Reveal)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &findOutput[T]{Body: rec}, nil
}

func (h *Handler[T]) create(ctx context.Context, input *createInput[T]) (*output, error) {
	res, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return result(res), nil
}

func (h *Handler[T]) update(ctx context.Context, input *updateInput[T]) (*output, error) {
	res, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return result(res), nil
}

func (h *Handler[T]) delete(ctx context.Context, input *deleteInput) (*output, error) {
	res, err := h.service.Remove(ctx, input.ID)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return result(res), nil
}

func result(res listing.Result) *output {
	return &output{
		Body: mutationResponse{
			ID:        res.ID,
			Status:    "Ok",
			Persisted: res.Persisted,
		},
	}
}
