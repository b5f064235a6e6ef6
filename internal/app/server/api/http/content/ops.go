package content

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) readmeOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-readme",
		Method:      http.MethodGet,
		Path:        "/api/v1/projects/{id}/readme",
		Summary:     "README проекта",
		Tags:        []string{"projects"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateReadmeOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-readme-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/projects/{id}/readme",
		Summary:     "Изменить README проекта",
		Tags:        []string{"projects"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) docContentOp() huma.Operation {
	return huma.Operation{
		OperationID: "docs-content",
		Method:      http.MethodGet,
		Path:        "/api/v1/docs/{id}/content",
		Summary:     "Содержимое документа",
		Tags:        []string{"docs"},
		Middlewares: h.middleware,
	}
}
