package job

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
)

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=jobmocks Repository,SlotPolicy

var (
	ErrNotFound  = apperr.New(apperr.KindNotFound, "job not found")
	ErrSlotLimit = apperr.New(apperr.KindLimit, "you have reached the active job limit of your plan; upgrade to post more jobs")
)

type Repository interface {
	// CreateWithinLimit inserts p unless the employer already has maxActive
	// active posts. The count runs under a row lock on the employer's profile
	// so concurrent creates cannot overshoot; it returns ErrSlotLimit.
	CreateWithinLimit(ctx context.Context, p Post, maxActive int) error
	Update(ctx context.Context, p Post) error
	// SetStatus applies the same slot check as CreateWithinLimit when status is active.
	SetStatus(ctx context.Context, employerID, id uuid.UUID, status Status, maxActive int) error
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]Post, error)
	Search(ctx context.Context, f SearchFilter) ([]Post, error)
	CountActive(ctx context.Context, employerID uuid.UUID) (int, error)
}

// SlotPolicy tells how many active posts an employer's plan allows.
type SlotPolicy interface {
	MaxActiveJobs(ctx context.Context, employerID uuid.UUID) (int, error)
	// PlanAllowance returns the code of the employer's current plan with its
	// active post allowance.
	PlanAllowance(ctx context.Context, employerID uuid.UUID) (plan string, maxActive int, err error)
}
