package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/profile"
	"github.com/talentproph/talentpro/pkg/session"
)

type ProfileHandler struct {
	useCase profile.UseCase
}

func NewProfileHandler(useCase profile.UseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

type scoreResponse struct {
	IQ        float64 `json:"iq"`
	English   float64 `json:"english"`
	Technical float64 `json:"technical"`
	Overall   float64 `json:"overall"`
}

type profileResponse struct {
	ID             string         `json:"id"`
	Role           string         `json:"role"`
	FullName       string         `json:"fullName"`
	AvatarURL      string         `json:"avatarUrl"`
	Headline       string         `json:"headline"`
	Bio            string         `json:"bio"`
	Location       string         `json:"location"`
	Skills         []string       `json:"skills"`
	ExpectedSalary int            `json:"expectedSalary"`
	HasResume      bool           `json:"hasResume"`
	CompanyName    string         `json:"companyName,omitempty"`
	CompanyWebsite string         `json:"companyWebsite,omitempty"`
	IsVerified     bool           `json:"isVerified"`
	Score          *scoreResponse `json:"score,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func newProfileResponse(p profile.Profile) profileResponse {
	resp := profileResponse{
		ID:             p.ID.String(),
		Role:           string(p.Role),
		FullName:       p.FullName,
		AvatarURL:      p.AvatarURL,
		Headline:       p.Headline,
		Bio:            p.Bio,
		Location:       p.Location,
		Skills:         p.Skills,
		ExpectedSalary: p.ExpectedSalary,
		HasResume:      p.ResumeText != "",
		CompanyName:    p.CompanyName,
		CompanyWebsite: p.CompanyWebsite,
		IsVerified:     p.IsVerified,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if p.Role == session.RoleSeeker {
		s := profile.TalentScore(p.Assessment)
		resp.Score = &scoreResponse{IQ: s.IQ, English: s.English, Technical: s.Technical, Overall: s.Overall}
	}
	return resp
}

func talentResponses(items []profile.Talent) []profileResponse {
	return slice.Map(items, func(_ int, t profile.Talent) profileResponse {
		return newProfileResponse(t.Profile)
	})
}

// Me
// @Summary  Own profile
// @Tags     profiles
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} profileResponse
// @Router   /profiles/me [get]
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	p, err := h.useCase.Get(c.UserContext(), actor.UserID)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newProfileResponse(p))
}

// Get
// @Summary  Profile by id
// @Tags     profiles
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "profile id"
// @Success  200 {object} profileResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /profiles/{id} [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	p, err := h.useCase.Get(c.UserContext(), id)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newProfileResponse(p))
}

type updateProfileRequest struct {
	FullName       *string   `json:"fullName"`
	AvatarURL      *string   `json:"avatarUrl"`
	Headline       *string   `json:"headline"`
	Bio            *string   `json:"bio"`
	Location       *string   `json:"location"`
	Skills         *[]string `json:"skills"`
	ExpectedSalary *int      `json:"expectedSalary"`
	CompanyName    *string   `json:"companyName"`
	CompanyWebsite *string   `json:"companyWebsite"`
}

// UpdateMe applies a partial update; omitted fields stay unchanged.
// @Summary  Update own profile
// @Tags     profiles
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body updateProfileRequest true "fields to change"
// @Success  200 {object} profileResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /profiles/me [patch]
func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req updateProfileRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	p, err := h.useCase.UpdateMe(c.UserContext(), actor, profile.Patch{
		FullName:       req.FullName,
		AvatarURL:      req.AvatarURL,
		Headline:       req.Headline,
		Bio:            req.Bio,
		Location:       req.Location,
		Skills:         req.Skills,
		ExpectedSalary: req.ExpectedSalary,
		CompanyName:    req.CompanyName,
		CompanyWebsite: req.CompanyWebsite,
	})
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newProfileResponse(p))
}

type assessmentRequest struct {
	IQ        int `json:"iq"`
	English   int `json:"english"`
	Technical int `json:"technical"`
}

// SetAssessment
// @Summary  Record assessment results
// @Tags     profiles
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id    path string            true "seeker profile id"
// @Param    input body assessmentRequest true "raw scores"
// @Success  200 {object} profileResponse
// @Failure  403 {object} presenter.ErrorResponse
// @Router   /profiles/{id}/assessment [put]
func (h *ProfileHandler) SetAssessment(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req assessmentRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	p, err := h.useCase.SetAssessment(c.UserContext(), actor, id, profile.Assessment{
		IQ:        req.IQ,
		English:   req.English,
		Technical: req.Technical,
	})
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newProfileResponse(p))
}

// UploadResume extracts the text of a PDF or DOCX resume.
// @Summary  Upload resume
// @Tags     profiles
// @Accept   multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param    file formData file true "resume (.pdf or .docx, up to 5 MiB)"
// @Success  200 {object} profileResponse
// @Failure  400 {object} presenter.ErrorResponse
// @Router   /profiles/me/resume [post]
func (h *ProfileHandler) UploadResume(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return presenter.Fail(c, apperr.Validation("file is required"))
	}
	if fh.Size > profile.MaxResumeSize {
		return presenter.Fail(c, profile.ErrResumeTooLarge)
	}
	f, err := fh.Open()
	if err != nil {
		return presenter.Fail(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, profile.MaxResumeSize+1))
	if err != nil {
		return presenter.Fail(c, err)
	}

	p, err := h.useCase.UploadResume(c.UserContext(), actor, fh.Filename, data)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newProfileResponse(p))
}

// SearchTalents
// @Summary  Search job seekers
// @Tags     talents
// @Produce  json
// @Security BearerAuth
// @Param    q      query string false "name, headline or bio"
// @Param    skills query string false "comma separated skills, all required"
// @Param    limit  query int    false "page size"
// @Param    offset query int    false "page offset"
// @Success  200 {array} profileResponse
// @Router   /talents [get]
func (h *ProfileHandler) SearchTalents(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	limit, offset := parseLimitOffset(c)
	items, err := h.useCase.SearchTalents(c.UserContext(), actor, profile.TalentFilter{
		Query:  c.Query("q"),
		Skills: csvQuery(c, "skills"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, talentResponses(items))
}

// ListSaved
// @Summary  Saved talents
// @Tags     talents
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} profileResponse
// @Router   /talents/saved [get]
func (h *ProfileHandler) ListSaved(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	items, err := h.useCase.ListSaved(c.UserContext(), actor)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, talentResponses(items))
}

// SaveTalent
// @Summary  Save a talent
// @Tags     talents
// @Security BearerAuth
// @Param    id path string true "seeker id"
// @Success  204
// @Router   /talents/{id}/save [post]
func (h *ProfileHandler) SaveTalent(c *fiber.Ctx) error {
	return h.savedChange(c, h.useCase.SaveTalent)
}

// UnsaveTalent
// @Summary  Remove a saved talent
// @Tags     talents
// @Security BearerAuth
// @Param    id path string true "seeker id"
// @Success  204
// @Router   /talents/{id}/save [delete]
func (h *ProfileHandler) UnsaveTalent(c *fiber.Ctx) error {
	return h.savedChange(c, h.useCase.UnsaveTalent)
}

func (h *ProfileHandler) savedChange(c *fiber.Ctx, change func(ctx context.Context, actor session.Actor, id uuid.UUID) error) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return presenter.Fail(c, err)
	}
	if err := change(c.UserContext(), actor, id); err != nil {
		return presenter.Fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
