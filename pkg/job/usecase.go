package job

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/nlp"
	"github.com/talentproph/talentpro/pkg/session"
)

var (
	ErrEmployerOnly = apperr.New(apperr.KindForbidden, "only employers can manage job posts")
	ErrNotOwner     = apperr.New(apperr.KindForbidden, "this job post belongs to another employer")
)

type UseCase interface {
	Create(ctx context.Context, actor session.Actor, d Draft) (Post, error)
	Update(ctx context.Context, actor session.Actor, id uuid.UUID, d Draft) (Post, error)
	SetStatus(ctx context.Context, actor session.Actor, id uuid.UUID, status Status) (Post, error)
	Get(ctx context.Context, actor session.Actor, id uuid.UUID) (Post, error)
	ListMine(ctx context.Context, actor session.Actor) ([]Post, error)
	Search(ctx context.Context, f SearchFilter) ([]Post, error)
	SlotUsage(ctx context.Context, actor session.Actor) (SlotUsage, error)
}

type service struct {
	repo   Repository
	policy SlotPolicy
	now    func() time.Time
}

func NewService(repo Repository, policy SlotPolicy) UseCase {
	return &service{repo: repo, policy: policy, now: time.Now}
}

func (s *service) Create(ctx context.Context, actor session.Actor, d Draft) (Post, error) {
	if !actor.IsEmployer() {
		return Post{}, ErrEmployerOnly
	}
	d, err := normalizeDraft(d)
	if err != nil {
		return Post{}, err
	}
	maxActive, err := s.policy.MaxActiveJobs(ctx, actor.UserID)
	if err != nil {
		return Post{}, err
	}
	now := s.now().UTC()
	p := Post{
		ID:         uuid.New(),
		EmployerID: actor.UserID,
		Status:     StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	p.applyDraft(d)
	if err := s.repo.CreateWithinLimit(ctx, p, maxActive); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, actor session.Actor, id uuid.UUID, d Draft) (Post, error) {
	p, err := s.owned(ctx, actor, id)
	if err != nil {
		return Post{}, err
	}
	d, err = normalizeDraft(d)
	if err != nil {
		return Post{}, err
	}
	p.applyDraft(d)
	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *service) SetStatus(ctx context.Context, actor session.Actor, id uuid.UUID, status Status) (Post, error) {
	if !status.Valid() {
		return Post{}, apperr.Validation("status must be active, paused or closed")
	}
	p, err := s.owned(ctx, actor, id)
	if err != nil {
		return Post{}, err
	}
	if p.Status == status {
		return p, nil
	}
	var maxActive int
	if status == StatusActive {
		if maxActive, err = s.policy.MaxActiveJobs(ctx, actor.UserID); err != nil {
			return Post{}, err
		}
	}
	if err := s.repo.SetStatus(ctx, actor.UserID, id, status, maxActive); err != nil {
		return Post{}, err
	}
	p.Status = status
	p.UpdatedAt = s.now().UTC()
	return p, nil
}

// Get hides inactive posts from everyone but their owner and admins.
func (s *service) Get(ctx context.Context, actor session.Actor, id uuid.UUID) (Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Post{}, err
	}
	if p.Status != StatusActive && p.EmployerID != actor.UserID && !actor.IsAdmin() {
		return Post{}, ErrNotFound
	}
	return p, nil
}

func (s *service) ListMine(ctx context.Context, actor session.Actor) ([]Post, error) {
	if !actor.IsEmployer() {
		return nil, ErrEmployerOnly
	}
	return s.repo.ListByEmployer(ctx, actor.UserID)
}

func (s *service) Search(ctx context.Context, f SearchFilter) ([]Post, error) {
	f.Query = strings.TrimSpace(f.Query)
	f.Category = strings.TrimSpace(f.Category)
	f.Skills = nlp.NormalizeSkills(f.Skills)
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.repo.Search(ctx, f)
}

func (s *service) SlotUsage(ctx context.Context, actor session.Actor) (SlotUsage, error) {
	if !actor.IsEmployer() {
		return SlotUsage{}, ErrEmployerOnly
	}
	used, err := s.repo.CountActive(ctx, actor.UserID)
	if err != nil {
		return SlotUsage{}, err
	}
	plan, maxActive, err := s.policy.PlanAllowance(ctx, actor.UserID)
	if err != nil {
		return SlotUsage{}, err
	}
	return SlotUsage{Plan: plan, Used: used, Max: maxActive}, nil
}

func (s *service) owned(ctx context.Context, actor session.Actor, id uuid.UUID) (Post, error) {
	if !actor.IsEmployer() {
		return Post{}, ErrEmployerOnly
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Post{}, err
	}
	if p.EmployerID != actor.UserID {
		return Post{}, ErrNotOwner
	}
	return p, nil
}

func normalizeDraft(d Draft) (Draft, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)
	d.Location = strings.TrimSpace(d.Location)
	if d.Title == "" {
		return Draft{}, apperr.Validation("job title is required")
	}
	if d.Description == "" {
		return Draft{}, apperr.Validation("job description is required")
	}
	if d.SalaryMin <= 0 || d.SalaryMax <= 0 {
		return Draft{}, apperr.Validation("salary range is required")
	}
	if d.SalaryMin > d.SalaryMax {
		return Draft{}, apperr.Validation("minimum salary cannot exceed maximum salary")
	}
	if d.EmploymentType == "" {
		d.EmploymentType = FullTime
	}
	if !d.EmploymentType.Valid() {
		return Draft{}, apperr.Validation("employment type must be full_time, part_time, contract or freelance")
	}
	d.Skills = nlp.NormalizeSkills(d.Skills)
	return d, nil
}

func (p *Post) applyDraft(d Draft) {
	p.Title = d.Title
	p.Description = d.Description
	p.Category = d.Category
	p.Location = d.Location
	p.EmploymentType = d.EmploymentType
	p.SalaryMin = d.SalaryMin
	p.SalaryMax = d.SalaryMax
	p.Skills = d.Skills
}
