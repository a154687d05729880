package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/health"
)

const readyTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct{ svc health.ReadinessUseCase }

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler { return &HealthHandler{svc: svc} }

type healthResponse struct {
	Status   string   `json:"status"`
	Failures []string `json:"failures,omitempty"`
}

// Health
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} healthResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, healthResponse{Status: "ok"})
}

// Ready pings every dependency. A 503 lists one "<checker>: <error>" entry per
// failing dependency, e.g. ["postgres: connection refused", "redis: i/o timeout"].
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()
	err := h.svc.Ready(ctx)
	if err == nil {
		return presenter.JSON(c, http.StatusOK, healthResponse{Status: "ready"})
	}
	failures := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		failures = joined.Unwrap()
	}
	return presenter.JSON(c, http.StatusServiceUnavailable, healthResponse{
		Status:   "not_ready",
		Failures: slice.Map(failures, func(_ int, e error) string { return e.Error() }),
	})
}
