package handlers

import (
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/review"
)

type ReviewHandler struct {
	useCase review.UseCase
}

func NewReviewHandler(useCase review.UseCase) *ReviewHandler {
	return &ReviewHandler{useCase: useCase}
}

type reviewRequest struct {
	SeekerID string `json:"seekerId"`
	JobID    string `json:"jobId"`
	Rating   int    `json:"rating"`
	Body     string `json:"body"`
}

type reviewResponse struct {
	ID           string    `json:"id"`
	EmployerID   string    `json:"employerId"`
	SeekerID     string    `json:"seekerId"`
	JobID        string    `json:"jobId"`
	Rating       int       `json:"rating"`
	Body         string    `json:"body"`
	EmployerName string    `json:"employerName"`
	JobTitle     string    `json:"jobTitle"`
	CreatedAt    time.Time `json:"createdAt"`
}

type reviewSummaryResponse struct {
	Reviews []reviewResponse `json:"reviews"`
	Count   int              `json:"count"`
	Average float64          `json:"average"`
}

func newReviewResponse(r review.Review) reviewResponse {
	return reviewResponse{
		ID:           r.ID.String(),
		EmployerID:   r.EmployerID.String(),
		SeekerID:     r.SeekerID.String(),
		JobID:        r.JobID.String(),
		Rating:       r.Rating,
		Body:         r.Body,
		EmployerName: r.EmployerName,
		JobTitle:     r.JobTitle,
		CreatedAt:    r.CreatedAt,
	}
}

// Create
// @Summary  Review a candidate
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body reviewRequest true "review"
// @Success  201 {object} reviewResponse
// @Failure  409 {object} presenter.ErrorResponse "already reviewed"
// @Router   /reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req reviewRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	seekerID, err := uuid.Parse(req.SeekerID)
	if err != nil {
		return presenter.Fail(c, apperr.Validation("invalid seekerId"))
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return presenter.Fail(c, apperr.Validation("invalid jobId"))
	}
	r, err := h.useCase.Create(c.UserContext(), actor, review.CreateInput{
		SeekerID: seekerID,
		JobID:    jobID,
		Rating:   req.Rating,
		Body:     req.Body,
	})
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, newReviewResponse(r))
}

// ListForSeeker
// @Summary  Reviews of a seeker
// @Tags     reviews
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "seeker id"
// @Success  200 {object} reviewSummaryResponse
// @Router   /profiles/{id}/reviews [get]
func (h *ReviewHandler) ListForSeeker(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	s, err := h.useCase.ListForSeeker(c.UserContext(), id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, reviewSummaryResponse{
		Reviews: slice.Map(s.Reviews, func(_ int, r review.Review) reviewResponse { return newReviewResponse(r) }),
		Count:   s.Count,
		Average: s.Average,
	})
}
