package presenter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentproph/talentpro/pkg/apperr"
)

func TestFail(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "validation", err: apperr.Validation("title is required"), wantStatus: http.StatusBadRequest, wantBody: `{"message":"title is required"}`},
		{name: "not found", err: apperr.NotFound("job not found"), wantStatus: http.StatusNotFound, wantBody: `{"message":"job not found"}`},
		{name: "forbidden", err: apperr.Forbidden("nope"), wantStatus: http.StatusForbidden, wantBody: `{"message":"nope"}`},
		{name: "conflict", err: apperr.New(apperr.KindConflict, "already reviewed"), wantStatus: http.StatusConflict, wantBody: `{"message":"already reviewed"}`},
		{name: "limit", err: apperr.New(apperr.KindLimit, "upgrade"), wantStatus: http.StatusConflict, wantBody: `{"message":"upgrade"}`},
		{name: "unauthorized", err: apperr.New(apperr.KindUnauthorized, "invalid credentials"), wantStatus: http.StatusUnauthorized, wantBody: `{"message":"invalid credentials"}`},
		{name: "wrapped kind survives", err: errors.Wrap(apperr.NotFound("gone"), "lookup"), wantStatus: http.StatusNotFound, wantBody: `{"message":"gone"}`},
		{name: "internal is hidden", err: errors.New("pq: connection reset"), wantStatus: http.StatusInternalServerError, wantBody: `{"message":"internal server error"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return Fail(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.JSONEq(t, tc.wantBody, string(body))
		})
	}
}
