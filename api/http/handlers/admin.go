package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/dashboard"
)

type AdminHandler struct {
	useCase dashboard.UseCase
}

func NewAdminHandler(useCase dashboard.UseCase) *AdminHandler {
	return &AdminHandler{useCase: useCase}
}

type overviewResponse struct {
	Profiles struct {
		Total  int            `json:"total"`
		ByRole map[string]int `json:"byRole"`
	} `json:"profiles"`
	OpenTickets  int   `json:"openTickets"`
	RevenueCents int64 `json:"revenueCents"`
	PaidPayments int   `json:"paidPayments"`
}

// Overview
// @Summary  Admin dashboard
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} overviewResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Router   /admin/overview [get]
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	o, err := h.useCase.Overview(c.UserContext(), actor)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var resp overviewResponse
	resp.Profiles.Total = o.Profiles.Total
	resp.Profiles.ByRole = make(map[string]int, len(o.Profiles.ByRole))
	for role, n := range o.Profiles.ByRole {
		resp.Profiles.ByRole[string(role)] = n
	}
	resp.OpenTickets = o.OpenTickets
	resp.RevenueCents = o.Revenue.TotalCents
	resp.PaidPayments = o.Revenue.Payments
	return presenter.JSON(c, http.StatusOK, resp)
}
