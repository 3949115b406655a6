package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/tradelayer/sessiongate/internal/apistatus"
)

// HTTPErrorHandler renders every error raised by middlewares and handlers as
// a JSON envelope. API failures are recorded in telemetry only when their
// status asks for it; unexpected errors are always recorded.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	switch err := err.(type) {
	case *apistatus.Error:
		if err.Status.Telemetry() {
			logrus.WithFields(logrus.Fields{
				"result": int16(err.Status),
				"path":   c.Path(),
			}).Info(err.Error())
		}
		_ = c.JSON(err.HTTPCode(), err.Envelope())
	case *echo.HTTPError:
		logrus.WithField("code", err.Code).Warnf("echo: %v", err.Message)
		_ = c.JSON(err.Code, echo.Map{
			"error": echo.Map{
				"message": err.Message,
			},
		})
	default:
		internal(err, c)
	}
}

func internal(err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	logrus.WithField("id", id).Error(err.Error())

	_ = c.JSON(http.StatusInternalServerError, echo.Map{
		"error": echo.Map{
			"message": fmt.Sprintf("Unexpected error (id: %s)", id),
		},
	})
}
