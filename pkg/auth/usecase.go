package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/session"
)

const minPasswordLen = 8

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	ChangePassword(ctx context.Context, actor session.Actor, current, next string) error
}

type RegisterInput struct {
	Email    string
	Password string
	Role     session.Role
	FullName string
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenGenerator
	now    func() time.Time
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, now: time.Now}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return AuthResult{}, apperr.Validation("a valid email is required")
	}
	if len(in.Password) < minPasswordLen {
		return AuthResult{}, apperr.Validation("password must be at least 8 characters")
	}
	// admins are seeded, never self-registered
	if in.Role != session.RoleSeeker && in.Role != session.RoleEmployer {
		return AuthResult{}, apperr.Validation("role must be seeker or employer")
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return AuthResult{}, apperr.Validation("full name is required")
	}

	// If user exists, fail fast (best-effort check; the unique index decides)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         in.Role,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, user, fullName); err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) ChangePassword(ctx context.Context, actor session.Actor, current, next string) error {
	if len(next) < minPasswordLen {
		return apperr.Validation("password must be at least 8 characters")
	}
	user, err := s.repo.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, user.ID, string(hash))
}
