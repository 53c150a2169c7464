package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func pathID(c echo.Context, l *slog.Logger, op, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		l.Warn(op+"_error", "status", http.StatusBadRequest, "reason", name+" is not a uuid", "error", err)
		return uuid.Nil, apiError(http.StatusBadRequest, titleMalformed, "Invalid UUID in path parameter '"+name+"'")
	}
	return id, nil
}

func bindValid(c echo.Context, l *slog.Logger, op string, req any) error {
	if err := c.Bind(req); err != nil {
		l.Warn(op+"_error", "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
		return apiError(http.StatusBadRequest, titleMalformed, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		msg := validationMessage(err)
		l.Warn(op+"_error", "status", http.StatusBadRequest, "reason", msg, "error", err)
		return apiError(http.StatusBadRequest, titleValidation, msg)
	}
	return nil
}

func created(c echo.Context, location string, body any) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, body)
}
