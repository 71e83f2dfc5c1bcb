package http

import (
	"net/http"

	"personal-secretary/internal/command"
	pkgErrors "personal-secretary/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Wrong body")

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case command.ErrEmptyCommand:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Command cannot be empty")
	case command.ErrCommandTooLong:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Command is too long")
	default:
		return err
	}
}
