package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the authenticated user id injected by the Auth
// middleware. An empty id means the middleware did not run or the token
// carried no subject; such requests must not reach the policy engine.
func ctxActor(c echo.Context) (string, error) {
	actor, _ := c.Get("user_id").(string)
	if actor == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}
