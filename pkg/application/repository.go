package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/job"
	"github.com/talentproph/talentpro/pkg/profile"
)

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=applicationmocks Repository,JobReader,ProfileReader

var (
	ErrNotFound       = apperr.New(apperr.KindNotFound, "application not found")
	ErrAlreadyApplied = apperr.New(apperr.KindConflict, "you have already applied to this job")
	ErrStatusChanged  = apperr.New(apperr.KindConflict, "the application status changed in the meantime, reload and try again")
)

type Repository interface {
	// Create returns ErrAlreadyApplied when the seeker already applied to the job.
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	// UpdateStatus moves the application from one status to another. It returns
	// ErrStatusChanged when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status, at time.Time) error
}

type JobReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Post, error)
}

type ProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error)
}
