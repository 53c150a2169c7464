package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ecommerce_api/internal/service"
)

const (
	titleNotFound   = "Resource not found"
	titleBusiness   = "Business error"
	titleMalformed  = "Malformed JSON request"
	titleValidation = "Validation error"
	titleEmail      = "Email already exists"
	titleCPF        = "CPF already exists"
	titleInternal   = "Internal error"
)

type ErrorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

func apiError(status int, title, msg string) *echo.HTTPError {
	return echo.NewHTTPError(status, ErrorBody{Status: status, Error: title, Message: msg})
}

// serviceError logs a failed service call and turns it into the HTTP error
// the client sees.
func serviceError(l *slog.Logger, op string, err error) *echo.HTTPError {
	var (
		status int
		title  string
	)
	switch {
	case errors.Is(err, service.ErrNotFound):
		status, title = http.StatusNotFound, titleNotFound
	case errors.Is(err, service.ErrBusiness):
		status, title = http.StatusUnprocessableEntity, titleBusiness
	case errors.Is(err, service.ErrEmailExists):
		status, title = http.StatusConflict, titleEmail
	case errors.Is(err, service.ErrCPFExists):
		status, title = http.StatusConflict, titleCPF
	case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrInsufficientStock):
		status, title = http.StatusBadRequest, titleMalformed
	case errors.Is(err, service.ErrValidation):
		status, title = http.StatusBadRequest, titleValidation
	default:
		l.Error(op+"_error", "status", http.StatusInternalServerError, "reason", "internal error", "error", err)
		return apiError(http.StatusInternalServerError, titleInternal, "Unexpected internal error")
	}

	msg := service.Message(err)
	l.Warn(op+"_error", "status", status, "reason", msg, "error", err)
	return apiError(status, title, msg)
}

// HTTPErrorHandler renders every error as {timestamp, status, error, message}.
func HTTPErrorHandler(now func() time.Time) echo.HTTPErrorHandler {
	if now == nil {
		now = time.Now
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := ErrorBody{Status: http.StatusInternalServerError, Error: titleInternal, Message: "Unexpected internal error"}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if b, ok := he.Message.(ErrorBody); ok {
				body = b
			} else {
				body = ErrorBody{Error: http.StatusText(he.Code), Message: fmt.Sprint(he.Message)}
			}
			body.Status = he.Code
		}
		body.Timestamp = now().UTC().Format(time.RFC3339)

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(body.Status)
			return
		}
		_ = c.JSON(body.Status, body)
	}
}
