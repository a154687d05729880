package handlers

import (
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/application"
)

type ApplicationHandler struct {
	useCase application.UseCase
}

func NewApplicationHandler(useCase application.UseCase) *ApplicationHandler {
	return &ApplicationHandler{useCase: useCase}
}

type applicantResponse struct {
	FullName  string   `json:"fullName"`
	AvatarURL string   `json:"avatarUrl"`
	Headline  string   `json:"headline"`
	Location  string   `json:"location"`
	Skills    []string `json:"skills"`
}

type applicationResponse struct {
	ID             string            `json:"id"`
	JobID          string            `json:"jobId"`
	SeekerID       string            `json:"seekerId"`
	EmployerID     string            `json:"employerId"`
	Status         string            `json:"status"`
	CoverLetter    string            `json:"coverLetter"`
	ExpectedSalary int               `json:"expectedSalary"`
	MatchScore     float64           `json:"matchScore"`
	JobTitle       string            `json:"jobTitle"`
	CompanyName    string            `json:"companyName"`
	Applicant      applicantResponse `json:"applicant"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func newApplicationResponse(a application.Application) applicationResponse {
	skills := a.Applicant.Skills
	if skills == nil {
		skills = []string{}
	}
	return applicationResponse{
		ID:             a.ID.String(),
		JobID:          a.JobID.String(),
		SeekerID:       a.SeekerID.String(),
		EmployerID:     a.EmployerID.String(),
		Status:         string(a.Status),
		CoverLetter:    a.CoverLetter,
		ExpectedSalary: a.ExpectedSalary,
		MatchScore:     a.MatchScore,
		JobTitle:       a.JobTitle,
		CompanyName:    a.CompanyName,
		Applicant: applicantResponse{
			FullName:  a.Applicant.FullName,
			AvatarURL: a.Applicant.AvatarURL,
			Headline:  a.Applicant.Headline,
			Location:  a.Applicant.Location,
			Skills:    skills,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func applicationResponses(items []application.Application) []applicationResponse {
	return slice.Map(items, func(_ int, a application.Application) applicationResponse {
		return newApplicationResponse(a)
	})
}

type applyRequest struct {
	CoverLetter    string `json:"coverLetter"`
	ExpectedSalary int    `json:"expectedSalary"`
}

// Apply
// @Summary  Apply to a job
// @Tags     applications
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id    path string       true "job id"
// @Param    input body applyRequest true "application"
// @Success  201 {object} applicationResponse
// @Failure  409 {object} presenter.ErrorResponse "already applied or job closed"
// @Router   /jobs/{id}/applications [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req applyRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	a, err := h.useCase.Apply(c.UserContext(), actor, application.ApplyInput{
		JobID:          jobID,
		CoverLetter:    req.CoverLetter,
		ExpectedSalary: req.ExpectedSalary,
	})
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, newApplicationResponse(a))
}

// ListForJob
// @Summary  Applicants of a job
// @Tags     applications
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "job id"
// @Success  200 {array} applicationResponse
// @Router   /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	jobID, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	items, err := h.useCase.ListForJob(c.UserContext(), actor, jobID)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, applicationResponses(items))
}

// ListMine
// @Summary  Own applications
// @Tags     applications
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} applicationResponse
// @Router   /applications/mine [get]
func (h *ApplicationHandler) ListMine(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	items, err := h.useCase.ListMine(c.UserContext(), actor)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, applicationResponses(items))
}

// Get
// @Summary  Application by id
// @Tags     applications
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "application id"
// @Success  200 {object} applicationResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /applications/{id} [get]
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	a, err := h.useCase.Get(c.UserContext(), actor, id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newApplicationResponse(a))
}

// UpdateStatus moves an application along the hiring pipeline.
// @Summary  Change application status
// @Tags     applications
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id    path string        true "application id"
// @Param    input body statusRequest true "Shortlisted, Interviewed, Hired or Rejected"
// @Success  200 {object} applicationResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
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
	a, err := h.useCase.UpdateStatus(c.UserContext(), actor, id, application.Status(req.Status))
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newApplicationResponse(a))
}
