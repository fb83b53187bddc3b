package http

import (
	"errors"
	"net/http"

	"family-task-parser/internal/task"
	pkgErrors "family-task-parser/pkg/errors"
)

var (
	errTextRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	errTagRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "tagId is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTextTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, task.ErrInvalidSource):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTagNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrInvalidValue):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
