package handlers

import (
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/job"
)

type JobHandler struct {
	useCase job.UseCase
}

func NewJobHandler(useCase job.UseCase) *JobHandler {
	return &JobHandler{useCase: useCase}
}

type jobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employmentType"`
	SalaryMin      int      `json:"salaryMin"`
	SalaryMax      int      `json:"salaryMax"`
	Skills         []string `json:"skills"`
}

func (r jobRequest) draft() job.Draft {
	return job.Draft{
		Title:          r.Title,
		Description:    r.Description,
		Category:       r.Category,
		Location:       r.Location,
		EmploymentType: job.EmploymentType(r.EmploymentType),
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		Skills:         r.Skills,
	}
}

type jobResponse struct {
	ID             string    `json:"id"`
	EmployerID     string    `json:"employerId"`
	CompanyName    string    `json:"companyName"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employmentType"`
	SalaryMin      int       `json:"salaryMin"`
	SalaryMax      int       `json:"salaryMax"`
	Skills         []string  `json:"skills"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func newJobResponse(p job.Post) jobResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return jobResponse{
		ID:             p.ID.String(),
		EmployerID:     p.EmployerID.String(),
		CompanyName:    p.CompanyName,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		Location:       p.Location,
		EmploymentType: string(p.EmploymentType),
		SalaryMin:      p.SalaryMin,
		SalaryMax:      p.SalaryMax,
		Skills:         skills,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func jobResponses(items []job.Post) []jobResponse {
	return slice.Map(items, func(_ int, p job.Post) jobResponse { return newJobResponse(p) })
}

// Create
// @Summary  Post a job
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body jobRequest true "job post"
// @Success  201 {object} jobResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse "active job limit of the plan reached"
// @Router   /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req jobRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	p, err := h.useCase.Create(c.UserContext(), actor, req.draft())
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, newJobResponse(p))
}

// Update
// @Summary  Edit a job post
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id    path string     true "job id"
// @Param    input body jobRequest true "job post"
// @Success  200 {object} jobResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Router   /jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req jobRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	p, err := h.useCase.Update(c.UserContext(), actor, id, req.draft())
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newJobResponse(p))
}

type statusRequest struct {
	Status string `json:"status"`
}

// SetStatus activates, pauses or closes a post.
// @Summary  Change job status
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id    path string        true "job id"
// @Param    input body statusRequest true "active, paused or closed"
// @Success  200 {object} jobResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /jobs/{id}/status [patch]
func (h *JobHandler) SetStatus(c *fiber.Ctx) error {
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
	p, err := h.useCase.SetStatus(c.UserContext(), actor, id, job.Status(req.Status))
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newJobResponse(p))
}

// Get
// @Summary  Job post by id
// @Tags     jobs
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "job id"
// @Success  200 {object} jobResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /jobs/{id} [get]
func (h *JobHandler) Get(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	p, err := h.useCase.Get(c.UserContext(), actor, id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newJobResponse(p))
}

// ListMine
// @Summary  Own job posts
// @Tags     jobs
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} jobResponse
// @Router   /jobs/mine [get]
func (h *JobHandler) ListMine(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	items, err := h.useCase.ListMine(c.UserContext(), actor)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, jobResponses(items))
}

// Search
// @Summary  Job board
// @Tags     jobs
// @Produce  json
// @Param    q        query string false "title or description"
// @Param    category query string false "category"
// @Param    skills   query string false "comma separated skills, all required"
// @Param    limit    query int    false "page size"
// @Param    offset   query int    false "page offset"
// @Success  200 {array} jobResponse
// @Router   /jobs [get]
func (h *JobHandler) Search(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c)
	items, err := h.useCase.Search(c.UserContext(), job.SearchFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Skills:   csvQuery(c, "skills"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, jobResponses(items))
}

type slotUsageResponse struct {
	Plan string `json:"plan"`
	Used int    `json:"used"`
	Max  int    `json:"max"`
}

// SlotUsage
// @Summary  Active job slots
// @Tags     jobs
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} slotUsageResponse
// @Router   /jobs/slots [get]
func (h *JobHandler) SlotUsage(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	u, err := h.useCase.SlotUsage(c.UserContext(), actor)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, slotUsageResponse{Plan: u.Plan, Used: u.Used, Max: u.Max})
}
