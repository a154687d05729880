package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/talentproph/talentpro/api/http/handlers"
	"github.com/talentproph/talentpro/pkg/security/jwt"
	"github.com/talentproph/talentpro/pkg/session"
)

// Handlers groups the route handlers of the API.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Profile      *handlers.ProfileHandler
	Job          *handlers.JobHandler
	Application  *handlers.ApplicationHandler
	Interview    *handlers.InterviewHandler
	Review       *handlers.ReviewHandler
	Conversation *handlers.ConversationHandler
	Billing      *handlers.BillingHandler
	Support      *handlers.SupportHandler
	Admin        *handlers.AdminHandler
}

// Register wires all HTTP routes onto given Fiber app. Every path is
// registered once; static segments come before parameters.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)
	a.Put("/password", authMW, h.Auth.ChangePassword)

	// Public job board
	v1.Get("/jobs", h.Job.Search)
	v1.Get("/billing/plans", h.Billing.Plans)

	employer := jwt.RequireRole(session.RoleEmployer)
	admin := jwt.RequireRole(session.RoleAdmin)

	p := v1.Group("/profiles", authMW)
	p.Get("/me", h.Profile.Me)
	p.Patch("/me", h.Profile.UpdateMe)
	p.Post("/me/resume", h.Profile.UploadResume)
	p.Get("/:id", h.Profile.Get)
	p.Put("/:id/assessment", admin, h.Profile.SetAssessment)
	p.Get("/:id/reviews", h.Review.ListForSeeker)

	t := v1.Group("/talents", authMW)
	t.Get("/", h.Profile.SearchTalents)
	t.Get("/saved", employer, h.Profile.ListSaved)
	t.Post("/:id/save", employer, h.Profile.SaveTalent)
	t.Delete("/:id/save", employer, h.Profile.UnsaveTalent)

	j := v1.Group("/jobs", authMW)
	j.Post("/", employer, h.Job.Create)
	j.Get("/mine", employer, h.Job.ListMine)
	j.Get("/slots", employer, h.Job.SlotUsage)
	j.Get("/:id", h.Job.Get)
	j.Put("/:id", employer, h.Job.Update)
	j.Patch("/:id/status", employer, h.Job.SetStatus)
	j.Post("/:id/applications", h.Application.Apply)
	j.Get("/:id/applications", employer, h.Application.ListForJob)

	ap := v1.Group("/applications", authMW)
	ap.Get("/mine", h.Application.ListMine)
	ap.Get("/:id", h.Application.Get)
	ap.Patch("/:id/status", employer, h.Application.UpdateStatus)

	iv := v1.Group("/interviews", authMW)
	iv.Get("/", h.Interview.ListMine)
	iv.Post("/", employer, h.Interview.Schedule)
	iv.Post("/:id/cancel", employer, h.Interview.Cancel)

	v1.Post("/reviews", authMW, employer, h.Review.Create)

	c := v1.Group("/conversations", authMW)
	c.Get("/", h.Conversation.Directory)
	c.Post("/", h.Conversation.Start)
	c.Get("/:id/messages", h.Conversation.Messages)
	c.Post("/:id/messages", h.Conversation.Send)
	c.Get("/:id/stream", handlers.RequireUpgrade, websocket.New(h.Conversation.Stream))
	c.Post("/:id/flags/:flag", h.Conversation.ToggleFlag)
	c.Delete("/:id", h.Conversation.Delete)
	c.Post("/:id/labels/:labelId", employer, h.Conversation.ToggleLabel)

	l := v1.Group("/labels", authMW, employer)
	l.Get("/", h.Conversation.ListLabels)
	l.Post("/", h.Conversation.CreateLabel)
	l.Delete("/:id", h.Conversation.DeleteLabel)

	b := v1.Group("/billing", authMW)
	b.Get("/subscription", employer, h.Billing.Current)
	b.Post("/subscription", employer, h.Billing.Subscribe)
	b.Get("/payments", h.Billing.ListPayments)

	s := v1.Group("/support", authMW)
	s.Post("/tickets", h.Support.Create)
	s.Get("/tickets/mine", h.Support.ListMine)

	ad := v1.Group("/admin", authMW, admin)
	ad.Get("/overview", h.Admin.Overview)
	ad.Get("/tickets", h.Support.ListAll)
	ad.Patch("/tickets/:id/status", h.Support.UpdateStatus)
}
