package support

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
)

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=supportmocks Repository

var ErrNotFound = apperr.New(apperr.KindNotFound, "ticket not found")

type Repository interface {
	Create(ctx context.Context, t Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (Ticket, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Ticket, error)
	// List returns tickets newest first; an empty status means every status.
	List(ctx context.Context, status Status, limit, offset int) ([]Ticket, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, at time.Time) error
	CountByStatus(ctx context.Context, status Status) (int, error)
}
