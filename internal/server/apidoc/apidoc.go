// Package apidoc collects the response contracts advertised by the server so
// an external documentation generator can include them in generated clients.
package apidoc

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type (
	// A Response describes one response shape an endpoint can produce.
	Response struct {
		HTTPCode    int         `json:"http_code"`
		Description string      `json:"description"`
		Schema      interface{} `json:"schema,omitempty"`
	}

	// A Status describes one result code of the API taxonomy.
	Status struct {
		Code        int16  `json:"code"`
		Description string `json:"description"`
	}

	// A Registry holds the response contracts of the server. It is populated
	// at boot and read-only afterwards.
	Registry struct {
		global   []Response
		statuses []Status
	}
)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Global registers response contracts that apply to every protected route.
func (r *Registry) Global(responses ...Response) {
	r.global = append(r.global, responses...)
}

// GlobalResponses returns the contracts that apply to every protected route.
func (r *Registry) GlobalResponses() []Response {
	return r.global
}

// Status registers one result code of the API taxonomy.
func (r *Registry) Status(code int16, description string) {
	r.statuses = append(r.statuses, Status{Code: code, Description: description})
}

// Handler serves the registered contracts as JSON.
func (r *Registry) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"global":   r.global,
			"statuses": r.statuses,
		})
	}
}
