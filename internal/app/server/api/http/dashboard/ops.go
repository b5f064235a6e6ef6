package dashboard

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) statsOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard-stats",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard/stats",
		Summary:     "Сводка по проектам и архивам",
		Tags:        []string{"dashboard"},
		Middlewares: h.middleware,
	}
}
