package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/session"
)

var (
	ErrUnknownPlan  = apperr.New(apperr.KindValidation, "unknown plan")
	ErrEmployerOnly = apperr.New(apperr.KindForbidden, "only employers have a subscription")
)

const billingPeriod = 30 * 24 * time.Hour

type UseCase interface {
	Plans() []Plan
	Current(ctx context.Context, actor session.Actor) (Current, error)
	Subscribe(ctx context.Context, actor session.Actor, code PlanCode, card Card) (Receipt, error)
	ListPayments(ctx context.Context, actor session.Actor, limit, offset int) ([]Payment, error)
	Revenue(ctx context.Context) (Revenue, error)
	// MaxActiveJobs is the slot allowance of the employer's current plan.
	MaxActiveJobs(ctx context.Context, employerID uuid.UUID) (int, error)
	PlanAllowance(ctx context.Context, employerID uuid.UUID) (plan string, maxActive int, err error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Plans() []Plan { return Plans() }

func (s *service) Current(ctx context.Context, actor session.Actor) (Current, error) {
	if !actor.IsEmployer() {
		return Current{}, ErrEmployerOnly
	}
	return s.current(ctx, actor.UserID)
}

func (s *service) current(ctx context.Context, employerID uuid.UUID) (Current, error) {
	free, _ := LookupPlan(PlanFree)
	sub, err := s.repo.GetSubscription(ctx, employerID)
	if errors.Is(err, ErrNoSubscription) {
		return Current{Plan: free}, nil
	}
	if err != nil {
		return Current{}, err
	}
	plan, ok := LookupPlan(sub.Plan)
	if !ok || sub.Status != SubscriptionActive {
		return Current{Plan: free, Subscription: sub}, nil
	}
	return Current{Plan: plan, Subscription: sub}, nil
}

func (s *service) MaxActiveJobs(ctx context.Context, employerID uuid.UUID) (int, error) {
	cur, err := s.current(ctx, employerID)
	if err != nil {
		return 0, err
	}
	return cur.Plan.MaxActiveJobs, nil
}

func (s *service) PlanAllowance(ctx context.Context, employerID uuid.UUID) (string, int, error) {
	cur, err := s.current(ctx, employerID)
	if err != nil {
		return "", 0, err
	}
	return string(cur.Plan.Code), cur.Plan.MaxActiveJobs, nil
}

// Subscribe charges the card for a paid plan and switches the employer to it.
// Moving to the free plan needs no card.
func (s *service) Subscribe(ctx context.Context, actor session.Actor, code PlanCode, card Card) (Receipt, error) {
	if !actor.IsEmployer() {
		return Receipt{}, ErrEmployerOnly
	}
	plan, ok := LookupPlan(PlanCode(strings.ToLower(string(code))))
	if !ok {
		return Receipt{}, ErrUnknownPlan
	}
	now := s.now().UTC()
	checkout := Checkout{Subscription: Subscription{
		EmployerID: actor.UserID,
		Plan:       plan.Code,
		Status:     SubscriptionActive,
		StartedAt:  now,
		RenewsAt:   now.Add(billingPeriod),
	}}
	if plan.PriceCents > 0 {
		method, err := card.Validate(now)
		if err != nil {
			return Receipt{}, err
		}
		method.EmployerID = actor.UserID
		method.UpdatedAt = now
		checkout.Method = &method
		checkout.Payment = &Payment{
			ID:          uuid.New(),
			EmployerID:  actor.UserID,
			Plan:        plan.Code,
			AmountCents: plan.PriceCents,
			Currency:    Currency,
			Status:      PaymentPaid,
			Reference:   "TP-" + shortuuid.New(),
			CreatedAt:   now,
		}
	}
	if err := s.repo.Subscribe(ctx, checkout); err != nil {
		return Receipt{}, err
	}
	return Receipt{Subscription: checkout.Subscription, Payment: checkout.Payment}, nil
}

func (s *service) ListPayments(ctx context.Context, actor session.Actor, limit, offset int) ([]Payment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	switch {
	case actor.IsAdmin():
		return s.repo.ListAllPayments(ctx, limit, offset)
	case actor.IsEmployer():
		return s.repo.ListPayments(ctx, actor.UserID, limit, offset)
	default:
		return nil, ErrEmployerOnly
	}
}

func (s *service) Revenue(ctx context.Context) (Revenue, error) {
	return s.repo.Revenue(ctx)
}
