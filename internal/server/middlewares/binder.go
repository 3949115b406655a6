package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type binder struct {
	echo.DefaultBinder
}

// NewBinder returns a wrap of the default binder implementation that rejects
// empty bodies on methods that carry one.
func NewBinder() echo.Binder {
	return &binder{}
}

// Bind implements the echo.Binder interface.
func (b *binder) Bind(i interface{}, c echo.Context) error {
	switch c.Request().Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if c.Request().ContentLength == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Request body can't be empty")
		}
	}
	return b.DefaultBinder.Bind(i, c)
}
