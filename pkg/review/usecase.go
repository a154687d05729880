package review

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/session"
)

type CreateInput struct {
	SeekerID uuid.UUID
	JobID    uuid.UUID
	Rating   int
	Body     string
}

type UseCase interface {
	Create(ctx context.Context, actor session.Actor, in CreateInput) (Review, error)
	ListForSeeker(ctx context.Context, seekerID uuid.UUID) (Summary, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, actor session.Actor, in CreateInput) (Review, error) {
	if !actor.IsEmployer() {
		return Review{}, apperr.Forbidden("only employers can review candidates")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return Review{}, apperr.Validation("rating must be between 1 and 5")
	}
	ok, err := s.repo.HasApplication(ctx, in.SeekerID, actor.UserID, in.JobID)
	if err != nil {
		return Review{}, err
	}
	if !ok {
		return Review{}, ErrNotApplicant
	}
	r := Review{
		ID:         uuid.New(),
		EmployerID: actor.UserID,
		SeekerID:   in.SeekerID,
		JobID:      in.JobID,
		Rating:     in.Rating,
		Body:       strings.TrimSpace(in.Body),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Review{}, err
	}
	return r, nil
}

func (s *service) ListForSeeker(ctx context.Context, seekerID uuid.UUID) (Summary, error) {
	items, err := s.repo.ListBySeeker(ctx, seekerID)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{Reviews: items, Count: len(items)}
	if len(items) == 0 {
		return sum, nil
	}
	var total int
	for _, r := range items {
		total += r.Rating
	}
	sum.Average = math.Round(float64(total)/float64(len(items))*10) / 10
	return sum, nil
}
