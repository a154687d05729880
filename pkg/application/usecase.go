package application

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/job"
	"github.com/talentproph/talentpro/pkg/nlp"
	"github.com/talentproph/talentpro/pkg/session"
)

const maxCoverLetter = 5000

var (
	ErrJobClosed  = apperr.New(apperr.KindConflict, "this job is no longer accepting applications")
	ErrSeekerOnly = apperr.New(apperr.KindForbidden, "only job seekers can apply")
	ErrNotOwner   = apperr.New(apperr.KindForbidden, "this application belongs to another employer's job")
)

type ApplyInput struct {
	JobID          uuid.UUID
	CoverLetter    string
	ExpectedSalary int
}

type UseCase interface {
	Apply(ctx context.Context, actor session.Actor, in ApplyInput) (Application, error)
	ListMine(ctx context.Context, actor session.Actor) ([]Application, error)
	ListForJob(ctx context.Context, actor session.Actor, jobID uuid.UUID) ([]Application, error)
	Get(ctx context.Context, actor session.Actor, id uuid.UUID) (Application, error)
	UpdateStatus(ctx context.Context, actor session.Actor, id uuid.UUID, status Status) (Application, error)
}

type service struct {
	repo     Repository
	jobs     JobReader
	profiles ProfileReader
	now      func() time.Time
}

func NewService(repo Repository, jobs JobReader, profiles ProfileReader) UseCase {
	return &service{repo: repo, jobs: jobs, profiles: profiles, now: time.Now}
}

// Apply files an application with a skills match score computed against the
// seeker's declared skills and resume text.
func (s *service) Apply(ctx context.Context, actor session.Actor, in ApplyInput) (Application, error) {
	if !actor.IsSeeker() {
		return Application{}, ErrSeekerOnly
	}
	letter := strings.TrimSpace(in.CoverLetter)
	if len(letter) > maxCoverLetter {
		return Application{}, apperr.Validation(fmt.Sprintf("cover letter must be at most %d characters", maxCoverLetter))
	}
	if in.ExpectedSalary < 0 {
		return Application{}, apperr.Validation("expected salary cannot be negative")
	}
	post, err := s.jobs.GetByID(ctx, in.JobID)
	if err != nil {
		return Application{}, err
	}
	if post.Status != job.StatusActive {
		return Application{}, ErrJobClosed
	}
	seeker, err := s.profiles.GetByID(ctx, actor.UserID)
	if err != nil {
		return Application{}, err
	}
	_, _, score := nlp.MatchSkills(post.Skills, seeker.Skills, seeker.ResumeText)

	salary := in.ExpectedSalary
	if salary == 0 {
		salary = seeker.ExpectedSalary
	}
	now := s.now().UTC()
	a := Application{
		ID:             uuid.New(),
		JobID:          post.ID,
		SeekerID:       actor.UserID,
		EmployerID:     post.EmployerID,
		Status:         StatusNew,
		CoverLetter:    letter,
		ExpectedSalary: salary,
		MatchScore:     math.Round(score*100) / 100,
		CreatedAt:      now,
		UpdatedAt:      now,
		JobTitle:       post.Title,
		CompanyName:    post.CompanyName,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *service) ListMine(ctx context.Context, actor session.Actor) ([]Application, error) {
	if !actor.IsSeeker() {
		return nil, ErrSeekerOnly
	}
	return s.repo.ListBySeeker(ctx, actor.UserID)
}

func (s *service) ListForJob(ctx context.Context, actor session.Actor, jobID uuid.UUID) ([]Application, error) {
	post, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if post.EmployerID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrNotOwner
	}
	return s.repo.ListByJob(ctx, jobID)
}

// Get returns the application to its seeker, the job's employer or an admin.
// Anyone else gets ErrNotFound.
func (s *service) Get(ctx context.Context, actor session.Actor, id uuid.UUID) (Application, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	if a.SeekerID != actor.UserID && a.EmployerID != actor.UserID && !actor.IsAdmin() {
		return Application{}, ErrNotFound
	}
	return a, nil
}

func (s *service) UpdateStatus(ctx context.Context, actor session.Actor, id uuid.UUID, status Status) (Application, error) {
	if !status.Valid() {
		return Application{}, apperr.Validation("unknown application status")
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	if a.EmployerID != actor.UserID {
		return Application{}, ErrNotOwner
	}
	if !a.Status.CanTransition(status) {
		return Application{}, apperr.Validation(fmt.Sprintf("cannot move an application from %s to %s", a.Status, status))
	}
	now := s.now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, a.Status, status, now); err != nil {
		return Application{}, err
	}
	a.Status = status
	a.UpdatedAt = now
	return a, nil
}
