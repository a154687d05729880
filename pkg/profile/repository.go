package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
)

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=profilemocks Repository

var ErrNotFound = apperr.New(apperr.KindNotFound, "profile not found")

// Repository is the persistence port for profiles and saved talents.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Profile, error)
	// Update writes the editable columns of p and bumps updated_at.
	Update(ctx context.Context, p Profile) error
	UpdateAssessment(ctx context.Context, id uuid.UUID, a Assessment) error
	SaveResume(ctx context.Context, id uuid.UUID, text string, skills []string) error
	SearchSeekers(ctx context.Context, f TalentFilter) ([]Profile, error)
	SaveTalent(ctx context.Context, employerID, seekerID uuid.UUID) error
	UnsaveTalent(ctx context.Context, employerID, seekerID uuid.UUID) error
	ListSaved(ctx context.Context, employerID uuid.UUID) ([]Profile, error)
	Stats(ctx context.Context) (Stats, error)
}
