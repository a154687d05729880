package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
)

//go:generate mockgen -source=./repository.go -destination=./mocks/repository.mock.go -package=billingmocks Repository

var ErrNoSubscription = apperr.New(apperr.KindNotFound, "no subscription")

// Checkout is everything a paid plan change writes. Method and Payment are nil
// when moving to the free plan.
type Checkout struct {
	Subscription Subscription
	Method       *PaymentMethod
	Payment      *Payment
}

type Repository interface {
	GetSubscription(ctx context.Context, employerID uuid.UUID) (Subscription, error)
	// Subscribe upserts the payment method, inserts the payment and upserts the
	// subscription in a single transaction.
	Subscribe(ctx context.Context, c Checkout) error
	ListPayments(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]Payment, error)
	ListAllPayments(ctx context.Context, limit, offset int) ([]Payment, error)
	Revenue(ctx context.Context) (Revenue, error)
}
