package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
)

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=authmocks UserRepository

// Common errors used by repository/use cases
var (
	ErrNotFound           = apperr.New(apperr.KindNotFound, "user not found")
	ErrUserAlreadyExists  = apperr.New(apperr.KindConflict, "user already exists")
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthorized, "invalid credentials")
)

// UserRepository abstracts persistence concerns from the domain layer.
type UserRepository interface {
	// Create stores the user together with an empty profile carrying fullName.
	Create(ctx context.Context, user User, fullName string) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
