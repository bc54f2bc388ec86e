package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pkg/errs"
)

type errorResponse struct {
	Message string `json:"message"`
}

// writeError maps application errors onto the wire contract. Business rule
// violations and malformed input are 400; unknown errors are logged and
// reported as a bare 500.
func (s *Server) writeError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, commands.ErrCustomerHasOrders),
		errors.Is(err, commands.ErrCustomerInactive),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.As(err, &validationErrs):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	default:
		s.logger.Error("request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}
