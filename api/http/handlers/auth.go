package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/talentproph/talentpro/api/http/presenter"
	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/auth"
	"github.com/talentproph/talentpro/pkg/session"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

type authResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	Token     string    `json:"token"`
}

func newAuthResponse(r auth.AuthResult) authResponse {
	return authResponse{
		ID:        r.User.ID.String(),
		Email:     r.User.Email,
		Role:      string(r.User.Role),
		CreatedAt: r.User.CreatedAt,
		Token:     r.Token,
	}
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Register(c.UserContext(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     session.Role(strings.ToLower(strings.TrimSpace(req.Role))),
		FullName: req.FullName,
	})
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, newAuthResponse(result))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "email and password are required")
	}

	result, err := h.useCase.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return presenter.Fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newAuthResponse(result))
}

type changePasswordRequest struct {
	Current string `json:"currentPassword"`
	New     string `json:"newPassword"`
}

// ChangePassword
// @Summary  Change own password
// @Tags     auth
// @Accept   json
// @Security BearerAuth
// @Param    input body changePasswordRequest true "current and new password"
// @Success  204
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /auth/password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	actor, err := actorOf(c)
	if err != nil {
		return presenter.Fail(c, err)
	}
	var req changePasswordRequest
	if err := bodyParse(c, &req); err != nil {
		return presenter.Fail(c, err)
	}
	if req.Current == "" {
		return presenter.Fail(c, apperr.Validation("current password is required"))
	}
	if err := h.useCase.ChangePassword(c.UserContext(), actor, req.Current, req.New); err != nil {
		return presenter.Fail(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
