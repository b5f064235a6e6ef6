package resource

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler[T]) listOp() huma.Operation {
	return huma.Operation{
		OperationID: h.kind + "-list",
		Method:      http.MethodGet,
		Path:        h.base,
		Summary:     "Список: " + h.kind,
		Description: "Фильтрует записи по тексту и категориям и возвращает карточки вместе с состоянием пустого списка.",
		Tags:        []string{h.kind},
		Middlewares: h.middleware,
	}
}

func (h *Handler[T]) findOp() huma.Operation {
	return huma.Operation{
		OperationID: h.kind + "-find",
		Method:      http.MethodGet,
		Path:        h.base + "/{id}",
		Summary:     "Получить " + h.noun,
		Tags:        []string{h.kind},
		Middlewares: h.middleware,
	}
}

func (h *Handler[T]) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   h.kind + "-create",
		Method:        http.MethodPost,
		Path:          h.base,
		Summary:       "Создать " + h.noun,
		Description:   "Идентификатор генерируется, если не передан.",
		Tags:          []string{h.kind},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler[T]) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: h.kind + "-update",
		Method:      http.MethodPut,
		Path:        h.base + "/{id}",
		Summary:     "Обновить " + h.noun,
		Tags:        []string{h.kind},
		Middlewares: h.middleware,
	}
}

func (h *Handler[T]) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: h.kind + "-delete",
		Method:      http.MethodDelete,
		Path:        h.base + "/{id}",
		Summary:     "Удалить " + h.noun,
		Description: "Защищенные записи (например, владелец проекта) не удаляются, ответ 409.",
		Tags:        []string{h.kind},
		Middlewares: h.middleware,
	}
}
