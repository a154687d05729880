package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentproph/talentpro/api/http/handlers"
	"github.com/talentproph/talentpro/pkg/auth"
	"github.com/talentproph/talentpro/pkg/health"
	"github.com/talentproph/talentpro/pkg/job"
	"github.com/talentproph/talentpro/pkg/messaging"
	"github.com/talentproph/talentpro/pkg/security/jwt"
	"github.com/talentproph/talentpro/pkg/session"
)

// signedIn stands in for the auth middleware.
func signedIn(actor session.Actor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(jwt.LocalActor, actor)
		return c.Next()
	}
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

type fakeAuth struct {
	auth.AuthUseCase
	register func(in auth.RegisterInput) (auth.AuthResult, error)
}

func (f fakeAuth) Register(_ context.Context, in auth.RegisterInput) (auth.AuthResult, error) {
	return f.register(in)
}

func TestAuthHandler_Register(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		register   func(in auth.RegisterInput) (auth.AuthResult, error)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "created",
			body: `{"email":"ana@example.ph","password":"s3cretpass","role":"Employer","fullName":"Ana Cruz"}`,
			register: func(in auth.RegisterInput) (auth.AuthResult, error) {
				assert.Equal(t, session.RoleEmployer, in.Role)
				assert.Equal(t, "Ana Cruz", in.FullName)
				return auth.AuthResult{User: auth.User{ID: uuid.New(), Email: in.Email, Role: in.Role}, Token: "tok"}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing password",
			body:       `{"email":"ana@example.ph"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "email and password are required",
		},
		{
			name:       "broken json",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid JSON payload",
		},
		{
			name: "duplicate email",
			body: `{"email":"ana@example.ph","password":"s3cretpass","role":"seeker","fullName":"Ana"}`,
			register: func(auth.RegisterInput) (auth.AuthResult, error) {
				return auth.AuthResult{}, auth.ErrUserAlreadyExists
			},
			wantStatus: http.StatusConflict,
			wantMsg:    "user already exists",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/register", handlers.NewAuthHandler(fakeAuth{register: tc.register}).Register)

			status, body := do(t, app, http.MethodPost, "/register", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, body["message"])
			} else {
				assert.Equal(t, "tok", body["token"])
				assert.Equal(t, "employer", body["role"])
			}
		})
	}
}

type fakeJobs struct {
	job.UseCase
	create func(actor session.Actor, d job.Draft) (job.Post, error)
}

func (f fakeJobs) Create(_ context.Context, actor session.Actor, d job.Draft) (job.Post, error) {
	return f.create(actor, d)
}

func TestJobHandler_Create(t *testing.T) {
	employer := session.Actor{UserID: uuid.New(), Role: session.RoleEmployer}
	body := `{"title":"Virtual Assistant","description":"Calendar and inbox","salaryMin":25000,"salaryMax":35000,"skills":["Excel"]}`

	t.Run("created", func(t *testing.T) {
		app := fiber.New()
		app.Post("/jobs", signedIn(employer), handlers.NewJobHandler(fakeJobs{create: func(actor session.Actor, d job.Draft) (job.Post, error) {
			assert.Equal(t, employer, actor)
			assert.Equal(t, 25000, d.SalaryMin)
			return job.Post{ID: uuid.New(), EmployerID: actor.UserID, Title: d.Title, Status: job.StatusActive}, nil
		}}).Create)

		status, resp := do(t, app, http.MethodPost, "/jobs", body)
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Virtual Assistant", resp["title"])
		assert.Equal(t, []any{}, resp["skills"])
	})

	t.Run("plan limit reached", func(t *testing.T) {
		app := fiber.New()
		app.Post("/jobs", signedIn(employer), handlers.NewJobHandler(fakeJobs{create: func(session.Actor, job.Draft) (job.Post, error) {
			return job.Post{}, job.ErrSlotLimit
		}}).Create)

		status, resp := do(t, app, http.MethodPost, "/jobs", body)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, job.ErrSlotLimit.Msg, resp["message"])
	})

	t.Run("not signed in", func(t *testing.T) {
		app := fiber.New()
		app.Post("/jobs", handlers.NewJobHandler(fakeJobs{}).Create)

		status, _ := do(t, app, http.MethodPost, "/jobs", body)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

type fakeMessaging struct {
	messaging.UseCase
	send       func(convID uuid.UUID, content, clientID string) (messaging.Message, error)
	toggleFlag func(convID uuid.UUID, flag messaging.Flag) (bool, error)
	directory  func(tab messaging.Tab, openID uuid.UUID) (messaging.Directory, error)
}

func (f fakeMessaging) Send(_ context.Context, _ session.Actor, convID uuid.UUID, content, clientID string) (messaging.Message, error) {
	return f.send(convID, content, clientID)
}

func (f fakeMessaging) ToggleFlag(_ context.Context, _ session.Actor, convID uuid.UUID, flag messaging.Flag) (bool, error) {
	return f.toggleFlag(convID, flag)
}

func (f fakeMessaging) Directory(_ context.Context, _ session.Actor, tab messaging.Tab, openID uuid.UUID) (messaging.Directory, error) {
	return f.directory(tab, openID)
}

func conversationApp(uc messaging.UseCase) *fiber.App {
	seeker := session.Actor{UserID: uuid.New(), Role: session.RoleSeeker}
	h := handlers.NewConversationHandler(uc)
	app := fiber.New()
	app.Use(signedIn(seeker))
	app.Get("/conversations", h.Directory)
	app.Post("/conversations/:id/messages", h.Send)
	app.Post("/conversations/:id/flags/:flag", h.ToggleFlag)
	return app
}

func TestConversationHandler_Send(t *testing.T) {
	convID := uuid.New()
	app := conversationApp(fakeMessaging{send: func(id uuid.UUID, content, clientID string) (messaging.Message, error) {
		if strings.TrimSpace(content) == "" {
			return messaging.Message{}, messaging.ErrEmptyMessage
		}
		assert.Equal(t, convID, id)
		assert.Equal(t, "c-1", clientID)
		return messaging.Message{ID: uuid.New(), ConversationID: id, Content: content, ClientID: clientID, CreatedAt: time.Now()}, nil
	}})

	status, resp := do(t, app, http.MethodPost, "/conversations/"+convID.String()+"/messages", `{"content":"Kumusta po","clientId":"c-1"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Kumusta po", resp["content"])
	assert.Equal(t, convID.String(), resp["conversationId"])

	status, resp = do(t, app, http.MethodPost, "/conversations/"+convID.String()+"/messages", `{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, messaging.ErrEmptyMessage.Msg, resp["message"])

	status, _ = do(t, app, http.MethodPost, "/conversations/not-a-uuid/messages", `{"content":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestConversationHandler_ToggleFlag(t *testing.T) {
	convID := uuid.New()
	pinned := false
	app := conversationApp(fakeMessaging{toggleFlag: func(id uuid.UUID, flag messaging.Flag) (bool, error) {
		if !flag.Toggleable() {
			return false, messaging.ErrNotFound
		}
		pinned = !pinned
		return pinned, nil
	}})
	path := "/conversations/" + convID.String() + "/flags/pinned"

	_, resp := do(t, app, http.MethodPost, path, "")
	assert.Equal(t, true, resp["value"])
	_, resp = do(t, app, http.MethodPost, path, "")
	assert.Equal(t, false, resp["value"])
}

func TestConversationHandler_Directory(t *testing.T) {
	openID := uuid.New()
	app := conversationApp(fakeMessaging{directory: func(tab messaging.Tab, id uuid.UUID) (messaging.Directory, error) {
		assert.Equal(t, messaging.TabArchive, tab)
		assert.Equal(t, openID, id)
		v := messaging.View{ID: id, CounterpartName: "Maria Santos", Flags: messaging.Flags{Archived: true}}
		return messaging.Directory{
			Tab:    tab,
			Items:  []messaging.View{v},
			Counts: map[messaging.Tab]int{messaging.TabArchive: 1},
			Open:   &v,
		}, nil
	}})

	status, resp := do(t, app, http.MethodGet, "/conversations?tab=archive&open="+openID.String(), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "archive", resp["tab"])
	counts := resp["counts"].(map[string]any)
	assert.EqualValues(t, 1, counts["archive"])
	assert.EqualValues(t, 0, counts["inbox"])
	open := resp["open"].(map[string]any)
	assert.Equal(t, "Maria Santos", open["counterpartName"])
	assert.Equal(t, []any{}, open["labels"])

	status, _ = do(t, app, http.MethodGet, "/conversations?open=xyz", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestHealthHandler_Ready(t *testing.T) {
	testCases := []struct {
		name         string
		checkers     []health.Checker
		wantStatus   int
		wantFailures []any
	}{
		{
			name:       "all up",
			checkers:   []health.Checker{stubChecker{name: "postgres"}, stubChecker{name: "redis"}},
			wantStatus: http.StatusOK,
		},
		{
			name: "every failure listed",
			checkers: []health.Checker{
				stubChecker{name: "postgres", err: errors.New("connection refused")},
				stubChecker{name: "redis", err: errors.New("i/o timeout")},
			},
			wantStatus:   http.StatusServiceUnavailable,
			wantFailures: []any{"postgres: connection refused", "redis: i/o timeout"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/ready", handlers.NewHealthHandler(health.NewService(tc.checkers...)).Ready)

			status, body := do(t, app, http.MethodGet, "/ready", "")
			assert.Equal(t, tc.wantStatus, status)
			if tc.wantFailures == nil {
				assert.Equal(t, "ready", body["status"])
				assert.NotContains(t, body, "failures")
				return
			}
			assert.Equal(t, "not_ready", body["status"])
			assert.Equal(t, tc.wantFailures, body["failures"])
		})
	}
}
