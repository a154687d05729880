package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/talentproph/talentpro/pkg/security/jwt"
	"github.com/talentproph/talentpro/pkg/session"
)

// RequestLogger writes one line per request. Server errors are logged at
// error level.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := statusOf(c, err)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}
		if actor, ok := c.Locals(jwt.LocalActor).(session.Actor); ok {
			fields = append(fields, zap.Stringer("user_id", actor.UserID))
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		lvl := zapcore.InfoLevel
		if status >= fiber.StatusInternalServerError {
			lvl = zapcore.ErrorLevel
		}
		log.Check(lvl, "http request").Write(fields...)
		return err
	}
}
