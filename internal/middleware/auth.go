package middleware

import (
	"net/http"
	"strings"

	"fundflow/internal/service"

	"github.com/labstack/echo/v4"
)

// RequireAuth validates the bearer token (or token cookie) and stores the
// caller's identity on the context. Browser requests without a valid session
// are redirected to the home page; API clients get a plain 401.
func RequireAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return reject(c)
			}

			userID, email, err := authService.ParseToken(token)
			if err != nil {
				return reject(c)
			}

			c.Set("user_id", userID)
			c.Set("user_email", email)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

func reject(c echo.Context) error {
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML) {
		return c.Redirect(http.StatusFound, "/")
	}
	return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
}
