package http

import (
	"net/http"

	"personal-secretary/internal/task"
	pkgErrors "personal-secretary/pkg/errors"
)

var (
	errWrongBody  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong query")
	errWrongID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong task ID")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Task not found")
	case task.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Title must not be empty")
	case task.ErrInvalidRange:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid date range")
	case task.ErrMissingTarget:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No task specified")
	default:
		return err
	}
}
