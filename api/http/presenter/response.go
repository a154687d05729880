package presenter

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/talentproph/talentpro/pkg/apperr"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// StatusOf maps an error kind onto the HTTP status it is rendered with.
func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict, apperr.KindLimit:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Fail renders a use-case error. Unclassified errors are logged here, once,
// and answered with a generic message.
func Fail(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		zap.L().Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return Error(c, StatusOf(kind), apperr.Message(err, "internal server error"))
}
