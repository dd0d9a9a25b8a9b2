package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/concily/reconciliation/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a
// stack trace, and converts them into a 500 response.
func PanicRecoveryMiddleware(log *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					log.WithFields(logrus.Fields{
						"method":     c.Request().Method,
						"path":       c.Request().URL.Path,
						"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
						"stack":      string(debug.Stack()),
					}).WithError(err).Error("panic recovered")

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, map[string]string{
							"error": "Internal server error",
						})
					}
				}
			}()

			return next(c)
		}
	}
}
