package interview

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/session"
)

var (
	ErrNotOwner         = apperr.New(apperr.KindForbidden, "only the hiring employer can manage this interview")
	ErrPast             = apperr.New(apperr.KindValidation, "interview time must be in the future")
	ErrClosedPipeline   = apperr.New(apperr.KindValidation, "cannot schedule an interview for a hired or rejected applicant")
	ErrAlreadyCancelled = apperr.New(apperr.KindConflict, "interview is already cancelled")
)

type ScheduleInput struct {
	ApplicationID uuid.UUID
	At            time.Time
	LocationType  LocationType
	Location      string
	Notes         string
}

type UseCase interface {
	Schedule(ctx context.Context, actor session.Actor, in ScheduleInput) (Interview, error)
	ListMine(ctx context.Context, actor session.Actor) ([]Interview, error)
	Cancel(ctx context.Context, actor session.Actor, id uuid.UUID) error
}

type service struct {
	repo         Repository
	applications ApplicationReader
	now          func() time.Time
}

func NewService(repo Repository, applications ApplicationReader) UseCase {
	return &service{repo: repo, applications: applications, now: time.Now}
}

func (s *service) Schedule(ctx context.Context, actor session.Actor, in ScheduleInput) (Interview, error) {
	now := s.now().UTC()
	if !in.At.After(now) {
		return Interview{}, ErrPast
	}
	if !in.LocationType.Valid() {
		return Interview{}, apperr.Validation("location type must be online, onsite or phone")
	}
	location := strings.TrimSpace(in.Location)
	if in.LocationType != Phone && location == "" {
		return Interview{}, apperr.Validation("a meeting link or address is required")
	}
	app, err := s.applications.GetByID(ctx, in.ApplicationID)
	if err != nil {
		return Interview{}, err
	}
	if app.EmployerID != actor.UserID {
		return Interview{}, ErrNotOwner
	}
	if !app.Status.AcceptsInterview() {
		return Interview{}, ErrClosedPipeline
	}
	iv := Interview{
		ID:            uuid.New(),
		ApplicationID: app.ID,
		EmployerID:    app.EmployerID,
		SeekerID:      app.SeekerID,
		JobID:         app.JobID,
		ScheduledAt:   in.At.UTC(),
		LocationType:  in.LocationType,
		Location:      location,
		Notes:         strings.TrimSpace(in.Notes),
		Status:        StatusScheduled,
		CreatedAt:     now,
		JobTitle:      app.JobTitle,
		SeekerName:    app.Applicant.FullName,
		Company:       app.CompanyName,
	}
	if err := s.repo.Schedule(ctx, iv, now); err != nil {
		return Interview{}, err
	}
	return iv, nil
}

func (s *service) ListMine(ctx context.Context, actor session.Actor) ([]Interview, error) {
	return s.repo.ListForUser(ctx, actor.UserID, s.now().UTC())
}

func (s *service) Cancel(ctx context.Context, actor session.Actor, id uuid.UUID) error {
	iv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if iv.EmployerID != actor.UserID {
		return ErrNotOwner
	}
	if iv.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	return s.repo.Cancel(ctx, id)
}
