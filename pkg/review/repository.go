package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
)

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=reviewmocks Repository

var (
	ErrAlreadyReviewed = apperr.New(apperr.KindConflict, "you have already reviewed this candidate for this job")
	ErrNotApplicant    = apperr.New(apperr.KindForbidden, "you can only review candidates who applied to your job")
)

type Repository interface {
	// Create returns ErrAlreadyReviewed when the (seeker, job, employer) review exists.
	Create(ctx context.Context, r Review) error
	ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]Review, error)
	HasApplication(ctx context.Context, seekerID, employerID, jobID uuid.UUID) (bool, error)
}
