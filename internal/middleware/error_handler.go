package middleware

import (
	"net/http"

	"github.com/Rafiffarihan13/SaveFood/internal/dto"
	"github.com/Rafiffarihan13/SaveFood/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorHandler renders every error as {"message": ...} with the HTTP code
// the handler chose. Unexpected errors get a 500 and a log line; their
// details stay out of the response body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		logger.L().Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
