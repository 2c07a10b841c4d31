package echoServer

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"log/slog"

	"rentabook/util/apperr"
)

// ErrorView is the error body every failure renders to.
type ErrorView struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message any    `json:"message"`
	Path    string `json:"path"`
}

// ErrorHandler turns coded service errors, validation errors and echo
// HTTP errors into the ErrorView shape. Anything uncoded is a 500.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var message any = "internal error"

		var he *echo.HTTPError
		var ve validator.ValidationErrors
		switch {
		case errors.As(err, &ve):
			status = http.StatusBadRequest
			fields := make(map[string]string, len(ve))
			for _, fe := range ve {
				fields[fe.Field()] = fe.Tag()
			}
			message = fields
		case errors.As(err, &he):
			status = he.Code
			message = fmt.Sprintf("%v", he.Message)
		default:
			if code := apperr.Code(err); code != "" {
				status = apperr.Status(code)
				message = err.Error()
			}
		}

		if status >= 500 {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			log.Error("request failed",
				"err", err,
				"req_id", rid,
				"path", c.Path(),
				"method", c.Request().Method,
			)
		}

		view := ErrorView{
			Status:  status,
			Error:   errorName(status),
			Message: message,
			Path:    c.Request().URL.Path,
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, view)
	}
}

func errorName(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
