package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/talentproph/talentpro/pkg/session"
)

// LocalActor is the fiber Locals key holding the session.Actor of the request.
const LocalActor = "actor"

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success it stores a session.Actor under LocalActor and in the user context.
// WebSocket upgrades cannot set headers from browsers, so the token may also
// come from the access_token query parameter.
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	verifier := NewVerifier(secret, expectedIssuer)
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c.Get("Authorization"))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(c.Query("access_token"))
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		actor, err := verifier.Actor(tokenStr)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
		}
		c.Locals(LocalActor, actor)
		c.SetUserContext(session.WithActor(c.UserContext(), actor))
		return c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(roles ...session.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := c.Locals(LocalActor).(session.Actor)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "not signed in"})
		}
		for _, r := range roles {
			if actor.Role == r {
				return c.Next()
			}
		}
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "not allowed for this account type"})
	}
}

// Support both "Bearer <token>" and "<token>" (no prefix).
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
