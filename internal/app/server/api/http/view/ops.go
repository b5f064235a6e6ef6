package view

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) openOp() huma.Operation {
	return huma.Operation{
		OperationID:   "views-open",
		Method:        http.MethodPost,
		Path:          "/api/v1/views",
		Summary:       "Открыть представление списка",
		Description:   "Представление хранит фильтр и раскрытые записи до закрытия или истечения TTL.",
		Tags:          []string{"views"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) showOp() huma.Operation {
	return huma.Operation{
		OperationID: "views-show",
		Method:      http.MethodGet,
		Path:        "/api/v1/views/{id}",
		Summary:     "Текущая страница представления",
		Tags:        []string{"views"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) filterOp() huma.Operation {
	return huma.Operation{
		OperationID: "views-filter",
		Method:      http.MethodPut,
		Path:        "/api/v1/views/{id}/filter",
		Summary:     "Заменить фильтр представления",
		Tags:        []string{"views"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) toggleOp() huma.Operation {
	return huma.Operation{
		OperationID: "views-toggle",
		Method:      http.MethodPost,
		Path:        "/api/v1/views/{id}/visibility/{recordID}",
		Summary:     "Переключить видимость скрытых полей записи",
		Tags:        []string{"views"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) closeOp() huma.Operation {
	return huma.Operation{
		OperationID:   "views-close",
		Method:        http.MethodDelete,
		Path:          "/api/v1/views/{id}",
		Summary:       "Закрыть представление",
		Tags:          []string{"views"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
