package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"fervo/internal/handler/httperr"
	"fervo/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 16

// ErrorHandler answers for handlers that recorded an error without writing a body.
// The latest public error wins; anything else becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ge := c.Errors[i]
			if !ge.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ge.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		slog.ErrorContext(c.Request.Context(), "unhandled request error",
			"path", c.FullPath(), "status", status, "errors", c.Errors.String())
		c.JSON(status, httperr.New(status, http.StatusText(status), nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			err, ok := rec.(error)
			if !ok {
				err = errs.New(fmt.Sprint(rec))
			}
			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				"error", err,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", errs.ExtractStackLines(errs.Wrap(err, "panic"), panicStackLines))

			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httperr.New(http.StatusInternalServerError, "Internal server error", nil))
		}()
		c.Next()
	}
}
