package http

import (
	"net/http"
	"slices"

	"workorders/internal/adapters/in/http/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// Register mounts the health check, the API docs UI and the order API on e.
// Order routes are validated against the OpenAPI document first and then
// require a session.
func Register(e *echo.Echo, server servers.ServerInterface) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}

	registerSwagger()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(guardedRouter{
		Echo:       e,
		middleware: []echo.MiddlewareFunc{validator, SessionMiddleware()},
	}, server)

	return nil
}

// guardedRouter attaches middleware to each route it registers. An echo.Group
// would also install catch-all not-found routes behind the same middleware.
type guardedRouter struct {
	*echo.Echo
	middleware []echo.MiddlewareFunc
}

func (r guardedRouter) GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.Echo.GET(path, h, slices.Concat(r.middleware, m)...)
}

func (r guardedRouter) POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.Echo.POST(path, h, slices.Concat(r.middleware, m)...)
}

func (r guardedRouter) PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return r.Echo.PUT(path, h, slices.Concat(r.middleware, m)...)
}

func registerSwagger() {
	if _, err := swag.ReadDoc(swag.Name); err == nil {
		return
	}

	swag.Register(swag.Name, &swag.Spec{
		InfoInstanceName: swag.Name,
		SwaggerTemplate:  string(servers.RawSpec()),
		LeftDelim:        "{{",
		RightDelim:       "}}",
	})
}
