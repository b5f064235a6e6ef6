package content

import (
	"context"

	"devdash/internal/app/server/api/http/httperr"
	"devdash/internal/domain/document"
	"devdash/internal/domain/listing"
	"devdash/internal/domain/project"
	"devdash/internal/utils/markdown"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type ProjectServicer interface {
	Get(ctx context.Context, id string, reveal bool) (project.Project, error)
	Update(ctx context.Context, id string, rec project.Project) (listing.Result, error)
}

type DocumentServicer interface {
	Get(ctx context.Context, id string, reveal bool) (document.Document, error)
}

// Handler отдает markdown содержимое README проектов и документов
type Handler struct {
	projects   ProjectServicer
	docs       DocumentServicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(projects ProjectServicer, docs DocumentServicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		projects:   projects,
		docs:       docs,
		log:        log.With("component", "content_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.readmeOp(), h.readme)
	huma.Register(api, h.updateReadmeOp(), h.updateReadme)
	huma.Register(api, h.docContentOp(), h.docContent)
}

func (h *Handler) readme(ctx context.Context, input *readInput) (*readOutput, error) {
	p, err := h.projects.Get(ctx, input.ID, true)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return h.render(p.ID, p.Name, p.Readme, input.Format)
}

func (h *Handler) updateReadme(ctx context.Context, input *writeInput) (*writeOutput, error) {
	p, err := h.projects.Get(ctx, input.ID, true)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	res, err := h.projects.Update(ctx, input.ID, project.WithReadme(p, input.Body.Content))
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return &writeOutput{
		Body: writeResponse{ID: res.ID, Status: "Ok", Persisted: res.Persisted},
	}, nil
}

func (h *Handler) docContent(ctx context.Context, input *readInput) (*readOutput, error) {
	d, err := h.docs.Get(ctx, input.ID, true)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}

	return h.render(d.ID, d.Title, d.Content, input.Format)
}

func (h *Handler) render(id, title, src string, format markdown.Format) (*readOutput, error) {
	if format == "" {
		format = markdown.FormatMarkdown
	}

	out, err := markdown.Render(src, format)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	return &readOutput{
		Body: contentResponse{ID: id, Title: title, Format: format, Content: out},
	}, nil
}
