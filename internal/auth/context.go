package auth

import (
	"context"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const userIDKey ctxKey = iota

// Header carrying the authenticated caller id. Real authentication happens at the
// gateway; this service only consumes the identity it forwards.
const UserIDHeader = "X-User-Id"

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID returns the caller id placed on the context by Middleware, or "".
func GetUserID(ctx context.Context) string {
	if val, ok := ctx.Value(userIDKey).(string); ok {
		return val
	}
	return ""
}

// Middleware copies the forwarded identity header onto the request context so
// usecases can read it without knowing about HTTP.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID := c.Request().Header.Get(UserIDHeader); userID != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(WithUserID(req.Context(), userID)))
			}
			return next(c)
		}
	}
}
