package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentproph/talentpro/pkg/auth"
	"github.com/talentproph/talentpro/pkg/session"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(NewAuthMiddleware("secret", "talentpro"))
	app.Get("/me", func(c *fiber.Ctx) error {
		actor, ok := session.FromContext(c.UserContext())
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.SendString(string(actor.Role) + ":" + actor.UserID.String())
	})
	app.Get("/employers", RequireRole(session.RoleEmployer), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	uid := uuid.New()
	seeker := auth.User{ID: uid, Role: session.RoleSeeker}
	valid, err := NewGenerator("secret", "talentpro", time.Hour).Generate(context.Background(), seeker)
	require.NoError(t, err)
	otherIssuer, err := NewGenerator("secret", "someone-else", time.Hour).Generate(context.Background(), seeker)
	require.NoError(t, err)
	expiredGen := NewGenerator("secret", "talentpro", time.Minute)
	expiredGen.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, err := expiredGen.Generate(context.Background(), seeker)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "bearer", path: "/me", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: "seeker:" + uid.String()},
		{name: "raw token", path: "/me", header: valid, wantStatus: http.StatusOK, wantBody: "seeker:" + uid.String()},
		{name: "query token", path: "/me?access_token=" + valid, wantStatus: http.StatusOK, wantBody: "seeker:" + uid.String()},
		{name: "missing", path: "/me", wantStatus: http.StatusUnauthorized},
		{name: "garbage", path: "/me", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", path: "/me", header: "Bearer " + otherIssuer, wantStatus: http.StatusUnauthorized},
		{name: "expired", path: "/me", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "role denied", path: "/employers", header: "Bearer " + valid, wantStatus: http.StatusForbidden},
	}
	app := newTestApp()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantBody != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tc.wantBody, string(body))
			}
		})
	}
}

func TestVerifier_Actor(t *testing.T) {
	employer := auth.User{ID: uuid.New(), Role: session.RoleEmployer}
	token, err := NewGenerator("secret", "talentpro", time.Hour).Generate(context.Background(), employer)
	require.NoError(t, err)
	noRole, err := NewGenerator("secret", "talentpro", time.Hour).Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	actor, err := NewVerifier("secret", "talentpro").Actor(token)
	require.NoError(t, err)
	assert.Equal(t, session.Actor{UserID: employer.ID, Role: session.RoleEmployer}, actor)

	_, err = NewVerifier("secret", "").Actor(token)
	assert.NoError(t, err)
	_, err = NewVerifier("other-secret", "talentpro").Actor(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = NewVerifier("secret", "hr-portal").Actor(token)
	assert.ErrorIs(t, err, ErrWrongIssuer)
	_, err = NewVerifier("secret", "talentpro").Actor(noRole)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}
