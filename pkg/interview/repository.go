package interview

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/application"
)

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=interviewmocks Repository,ApplicationReader

var (
	ErrNotFound         = apperr.New(apperr.KindNotFound, "interview not found")
	ErrAlreadyScheduled = apperr.New(apperr.KindConflict, "an upcoming interview is already scheduled for this application")
	ErrPipelineClosed   = apperr.New(apperr.KindConflict, "the applicant was hired or rejected in the meantime")
)

type Repository interface {
	// Schedule inserts iv and moves its application to Interviewed in one
	// transaction. It returns ErrAlreadyScheduled when the application already
	// has a scheduled interview later than now, and ErrPipelineClosed when the
	// locked application no longer accepts interviews.
	Schedule(ctx context.Context, iv Interview, now time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (Interview, error)
	// ListForUser returns interviews where userID is the employer or the seeker,
	// upcoming ones first.
	ListForUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]Interview, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type ApplicationReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
}
