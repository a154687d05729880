package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/security/jwt"
	"github.com/talentproph/talentpro/pkg/session"
)

var (
	errInvalidJSON = apperr.Validation("invalid JSON payload")
	errNoSession   = apperr.New(apperr.KindUnauthorized, "not signed in")
)

// actorOf returns the caller stored by the auth middleware.
func actorOf(c *fiber.Ctx) (session.Actor, error) {
	actor, ok := c.Locals(jwt.LocalActor).(session.Actor)
	if !ok {
		return session.Actor{}, errNoSession
	}
	return actor, nil
}

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid " + name)
	}
	return id, nil
}

// optionalUUID parses s, treating an empty string as "not set".
func optionalUUID(s, field string) (uuid.NullUUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.NullUUID{}, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.NullUUID{}, apperr.Validation("invalid " + field)
	}
	return uuid.NullUUID{UUID: id, Valid: true}, nil
}

func bodyParse(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return errInvalidJSON
	}
	return nil
}

// csvQuery splits a comma separated query parameter, dropping blanks.
func csvQuery(c *fiber.Ctx, key string) []string {
	var out []string
	for _, part := range strings.Split(c.Query(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
