package handlers

import (
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/support"
)

type SupportHandler struct {
	useCase support.UseCase
}

func NewSupportHandler(useCase support.UseCase) *SupportHandler {
	return &SupportHandler{useCase: useCase}
}

type ticketRequest struct {
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	Priority string `json:"priority"`
}

type ticketResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTicketResponse(t support.Ticket) ticketResponse {
	return ticketResponse{
		ID:        t.ID.String(),
		UserID:    t.UserID.String(),
		Subject:   t.Subject,
		Body:      t.Body,
		Status:    string(t.Status),
		Priority:  string(t.Priority),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ticketResponses(items []support.Ticket) []ticketResponse {
	return slice.Map(items, func(_ int, t support.Ticket) ticketResponse { return newTicketResponse(t) })
}

// Create
// @Summary  Open a support ticket
// @Tags     support
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body ticketRequest true "ticket"
// @Success  201 {object} ticketResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /support/tickets [post]
func (h *SupportHandler) Create(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req ticketRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	t, err := h.useCase.Create(c.UserContext(), actor, support.CreateInput{
		Subject:  req.Subject,
		Body:     req.Body,
		Priority: support.Priority(req.Priority),
	})
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, newTicketResponse(t))
}

// ListMine
// @Summary  Own tickets
// @Tags     support
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} ticketResponse
// @Router   /support/tickets/mine [get]
func (h *SupportHandler) ListMine(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	items, err := h.useCase.ListMine(c.UserContext(), actor)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, ticketResponses(items))
}

// ListAll
// @Summary  All tickets
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Param    status query string false "open, in_progress or resolved"
// @Param    limit  query int    false "page size"
// @Param    offset query int    false "page offset"
// @Success  200 {array} ticketResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Router   /admin/tickets [get]
func (h *SupportHandler) ListAll(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	limit, offset := parseLimitOffset(c)
	items, err := h.useCase.ListAll(c.UserContext(), actor, support.Status(c.Query("status")), limit, offset)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, ticketResponses(items))
}

// UpdateStatus
// @Summary  Change ticket status
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id    path string        true "ticket id"
// @Param    input body statusRequest true "open, in_progress or resolved"
// @Success  200 {object} ticketResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /admin/tickets/{id}/status [patch]
func (h *SupportHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req statusRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	t, err := h.useCase.UpdateStatus(c.UserContext(), actor, id, support.Status(req.Status))
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newTicketResponse(t))
}
