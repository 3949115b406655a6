package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/tradelayer/sessiongate/internal/apistatus"
	"github.com/tradelayer/sessiongate/internal/server/apidoc"
	"github.com/tradelayer/sessiongate/internal/server/middlewares"
	"github.com/tradelayer/sessiongate/internal/sessionstore"
)

// A Controller is an Inversion Of Control pattern used to init the server package.
type Controller struct {
	Version string
	Store   sessionstore.Client
}

// EchoEngine instantiates the web server. Session resolution runs globally
// as a filter; routes opt into enforcement with middlewares.RequireAuth or
// middlewares.RequireClaim.
func EchoEngine(ctrl Controller) *echo.Echo {
	engine := echo.New()
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.HTTPErrorHandler

	// Credential resolution for every route.
	engine.Use(middlewares.Auth(ctrl.Store))

	docs := apidoc.NewRegistry()
	docs.Global(middlewares.FailureContracts()...)
	for _, status := range apistatus.Statuses {
		docs.Status(int16(status), status.String())
	}

	////////////
	// Router //
	////////////

	engine.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version": ctrl.Version,
		})
	})
	engine.GET("/docs/errors", docs.Handler())

	//
	// session handlers
	//
	session := &sess{}
	restricted := engine.Group("", middlewares.RequireAuth())
	restricted.GET("/me", session.Me)

	return engine
}

// PrintRoutes prints the Echo engine exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%7s %s\n", route.Method, route.Path)
	}
}
