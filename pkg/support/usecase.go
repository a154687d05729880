package support

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/session"
)

const (
	maxSubject = 200
	maxBody    = 5000
)

var ErrAdminOnly = apperr.New(apperr.KindForbidden, "only administrators can manage tickets")

type CreateInput struct {
	Subject  string
	Body     string
	Priority Priority
}

type UseCase interface {
	Create(ctx context.Context, actor session.Actor, in CreateInput) (Ticket, error)
	ListMine(ctx context.Context, actor session.Actor) ([]Ticket, error)
	ListAll(ctx context.Context, actor session.Actor, status Status, limit, offset int) ([]Ticket, error)
	UpdateStatus(ctx context.Context, actor session.Actor, id uuid.UUID, status Status) (Ticket, error)
	OpenCount(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, actor session.Actor, in CreateInput) (Ticket, error) {
	subject := strings.TrimSpace(in.Subject)
	body := strings.TrimSpace(in.Body)
	switch {
	case subject == "":
		return Ticket{}, apperr.Validation("subject is required")
	case body == "":
		return Ticket{}, apperr.Validation("message is required")
	case utf8.RuneCountInString(subject) > maxSubject:
		return Ticket{}, apperr.Validation(fmt.Sprintf("subject must be at most %d characters", maxSubject))
	case utf8.RuneCountInString(body) > maxBody:
		return Ticket{}, apperr.Validation(fmt.Sprintf("message must be at most %d characters", maxBody))
	}
	if in.Priority == "" {
		in.Priority = PriorityNormal
	}
	if !in.Priority.Valid() {
		return Ticket{}, apperr.Validation(fmt.Sprintf("unknown priority %q", in.Priority))
	}
	now := s.now().UTC()
	t := Ticket{
		ID:        uuid.New(),
		UserID:    actor.UserID,
		Subject:   subject,
		Body:      body,
		Status:    StatusOpen,
		Priority:  in.Priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Ticket{}, err
	}
	return t, nil
}

func (s *service) ListMine(ctx context.Context, actor session.Actor) ([]Ticket, error) {
	return s.repo.ListByUser(ctx, actor.UserID)
}

func (s *service) ListAll(ctx context.Context, actor session.Actor, status Status, limit, offset int) ([]Ticket, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if status != "" && !status.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("unknown status %q", status))
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, status, limit, offset)
}

func (s *service) UpdateStatus(ctx context.Context, actor session.Actor, id uuid.UUID, status Status) (Ticket, error) {
	if !actor.IsAdmin() {
		return Ticket{}, ErrAdminOnly
	}
	if !status.Valid() {
		return Ticket{}, apperr.Validation(fmt.Sprintf("unknown status %q", status))
	}
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Ticket{}, err
	}
	if !t.Status.CanTransition(status) {
		return Ticket{}, apperr.New(apperr.KindConflict, fmt.Sprintf("ticket cannot move from %s to %s", t.Status, status))
	}
	t.Status = status
	t.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateStatus(ctx, id, status, t.UpdatedAt); err != nil {
		return Ticket{}, err
	}
	return t, nil
}

// OpenCount counts tickets still waiting for a first response.
func (s *service) OpenCount(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, StatusOpen)
}
