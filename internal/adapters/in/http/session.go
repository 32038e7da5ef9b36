package http

import (
	"net/http"

	"workorders/internal/adapters/in/http/servers"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/session"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderActorID carries the acting user's identifier.
	HeaderActorID = "X-Actor-ID"
	// HeaderActorRole carries the acting user's role.
	HeaderActorRole = "X-Actor-Role"

	sessionKey = "session"
)

// SessionMiddleware builds the explicit session every handler works with from
// the actor headers. There is no authentication: the headers are trusted.
// Reserved roles are refused with 403 until their rules exist.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actorID, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderActorID))
			if err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid " + HeaderActorID + " header: " + err.Error(),
				})
			}

			role, err := session.ParseRole(c.Request().Header.Get(HeaderActorRole))
			if err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid " + HeaderActorRole + " header: " + err.Error(),
				})
			}
			if role.IsReserved() {
				return c.JSON(http.StatusForbidden, servers.Error{
					Code:    http.StatusForbidden,
					Message: "Role " + role.String() + " has no permissions yet",
				})
			}

			s, err := session.NewSession(actorID, role)
			if err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid session: " + err.Error(),
				})
			}

			c.Set(sessionKey, s)
			return next(c)
		}
	}
}

// SessionFrom returns the session stored by SessionMiddleware.
func SessionFrom(c echo.Context) (session.Session, bool) {
	s, ok := c.Get(sessionKey).(session.Session)
	return s, ok
}
