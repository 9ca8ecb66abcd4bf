package presenter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gitjits/geodata/internal/domain"
)

type errorResponse struct {
	Error string `json:"Error"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

// Created wraps a successful creation response.
func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, payload)
}

// BadRequestMessage reports a request-shape problem detected before the
// core was reached.
func BadRequestMessage(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

// Error translates a core error kind into its status code with a JSON
// error body. No error is silently dropped.
func Error(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrAlreadyExists):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrReferenceNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrConnectionFailed):
		slog.ErrorContext(c.Request().Context(), "datastore unreachable",
			slog.String("error", err.Error()),
			slog.String("module", "rest"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(c.Request().Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("module", "rest"),
		)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
