package handlers

import (
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/interview"
)

type InterviewHandler struct {
	useCase interview.UseCase
}

func NewInterviewHandler(useCase interview.UseCase) *InterviewHandler {
	return &InterviewHandler{useCase: useCase}
}

type scheduleRequest struct {
	ApplicationID string    `json:"applicationId"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	LocationType  string    `json:"locationType"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
}

type interviewResponse struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"applicationId"`
	EmployerID    string    `json:"employerId"`
	SeekerID      string    `json:"seekerId"`
	JobID         string    `json:"jobId"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	LocationType  string    `json:"locationType"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	JobTitle      string    `json:"jobTitle"`
	SeekerName    string    `json:"seekerName"`
	Company       string    `json:"company"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newInterviewResponse(i interview.Interview) interviewResponse {
	return interviewResponse{
		ID:            i.ID.String(),
		ApplicationID: i.ApplicationID.String(),
		EmployerID:    i.EmployerID.String(),
		SeekerID:      i.SeekerID.String(),
		JobID:         i.JobID.String(),
		ScheduledAt:   i.ScheduledAt,
		LocationType:  string(i.LocationType),
		Location:      i.Location,
		Notes:         i.Notes,
		Status:        string(i.Status),
		JobTitle:      i.JobTitle,
		SeekerName:    i.SeekerName,
		Company:       i.Company,
		CreatedAt:     i.CreatedAt,
	}
}

// Schedule books an interview and moves the application to Interviewed.
// @Summary  Schedule an interview
// @Tags     interviews
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body scheduleRequest true "interview"
// @Success  201 {object} interviewResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse "an upcoming interview already exists"
// @Router   /interviews [post]
func (h *InterviewHandler) Schedule(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req scheduleRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	appID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return presenter.Fail(c, apperr.Validation("invalid applicationId"))
	}
	i, err := h.useCase.Schedule(c.UserContext(), actor, interview.ScheduleInput{
		ApplicationID: appID,
		At:            req.ScheduledAt,
		LocationType:  interview.LocationType(req.LocationType),
		Location:      req.Location,
		Notes:         req.Notes,
	})
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, newInterviewResponse(i))
}

// ListMine
// @Summary  Own interviews, upcoming first
// @Tags     interviews
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} interviewResponse
// @Router   /interviews [get]
func (h *InterviewHandler) ListMine(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	items, err := h.useCase.ListMine(c.UserContext(), actor)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, slice.Map(items, func(_ int, i interview.Interview) interviewResponse {
		return newInterviewResponse(i)
	}))
}

// Cancel
// @Summary  Cancel an interview
// @Tags     interviews
// @Security BearerAuth
// @Param    id path string true "interview id"
// @Success  204
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /interviews/{id}/cancel [post]
func (h *InterviewHandler) Cancel(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	if err := h.useCase.Cancel(c.UserContext(), actor, id); err != nil {
		return presenter.Fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
