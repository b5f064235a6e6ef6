package httperr

import (
	"errors"

	"devdash/internal/domain/listing"
	"devdash/internal/domain/view"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// From переводит доменную ошибку в ответ huma. Неизвестные ошибки логируются и
// отдаются как 500 без подробностей.
func From(log *slog.Logger, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, listing.ErrNotFound), errors.Is(err, view.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, listing.ErrInvalid),
		errors.Is(err, listing.ErrUnknownDimension),
		errors.Is(err, listing.ErrBadFilter),
		errors.Is(err, view.ErrUnknownKind):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, listing.ErrDuplicateID), errors.Is(err, listing.ErrProtected):
		return huma.Error409Conflict(err.Error())
	default:
		log.Error("request failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
