package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/telkomportal/internal/config"
	"github.com/example/telkomportal/internal/session"
	"github.com/example/telkomportal/internal/utils"
)

const sessionContextKey = "currentSession"

// SessionContext is what protected handlers get out of the request context.
type SessionContext struct {
	ID    string
	Entry session.Entry
}

// SessionMiddleware validates bearer tokens and requires the referenced session
// to still be live in the registry. A valid token for a closed session is
// rejected, which is what makes logout effective.
func SessionMiddleware(cfg *config.Config, sessions *session.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
		}

		sessionID, err := utils.ParseToken(cfg.JWTSecret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		entry, ok := sessions.Get(sessionID)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "session expired")
		}

		c.Locals(sessionContextKey, SessionContext{ID: sessionID, Entry: entry})
		return c.Next()
	}
}

// GetCurrentSession extracts the live session from the request context.
func GetCurrentSession(c *fiber.Ctx) (SessionContext, bool) {
	value := c.Locals(sessionContextKey)
	if value == nil {
		return SessionContext{}, false
	}

	if sc, ok := value.(SessionContext); ok {
		return sc, true
	}

	return SessionContext{}, false
}
