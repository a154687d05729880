package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/talentproph/talentpro/pkg/billing"
	pgstore "github.com/talentproph/talentpro/pkg/storage/postgres"
)

const paymentColumns = `id, employer_id, plan, amount_cents, currency, status, reference, created_at`

// BillingRepository implements billing.Repository.
type BillingRepository struct {
	pool *pgxpool.Pool
}

func NewBillingRepository(pool *pgxpool.Pool) *BillingRepository {
	return &BillingRepository{pool: pool}
}

func (r *BillingRepository) GetSubscription(ctx context.Context, employerID uuid.UUID) (billing.Subscription, error) {
	var (
		s            billing.Subscription
		plan, status string
	)
	err := r.pool.QueryRow(ctx, `
SELECT employer_id, plan, status, started_at, renews_at
FROM subscriptions WHERE employer_id = $1
`, employerID).Scan(&s.EmployerID, &plan, &status, &s.StartedAt, &s.RenewsAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return billing.Subscription{}, billing.ErrNoSubscription
	}
	if err != nil {
		return billing.Subscription{}, errors.Wrap(err, "get subscription")
	}
	s.Plan = billing.PlanCode(plan)
	s.Status = billing.SubscriptionStatus(status)
	s.StartedAt = s.StartedAt.UTC()
	s.RenewsAt = s.RenewsAt.UTC()
	return s, nil
}

func (r *BillingRepository) Subscribe(ctx context.Context, c billing.Checkout) error {
	return pgstore.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if m := c.Method; m != nil {
			_, err := tx.Exec(ctx, `
INSERT INTO payment_methods (employer_id, brand, last4, exp_month, exp_year, holder, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (employer_id) DO UPDATE SET
	brand = EXCLUDED.brand, last4 = EXCLUDED.last4, exp_month = EXCLUDED.exp_month,
	exp_year = EXCLUDED.exp_year, holder = EXCLUDED.holder, updated_at = EXCLUDED.updated_at
`, m.EmployerID, m.Brand, m.Last4, m.ExpMonth, m.ExpYear, m.Holder, m.UpdatedAt)
			if err != nil {
				return errors.Wrap(err, "upsert payment method")
			}
		}
		if p := c.Payment; p != nil {
			_, err := tx.Exec(ctx, `
INSERT INTO payments (`+paymentColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, p.ID, p.EmployerID, string(p.Plan), p.AmountCents, p.Currency, string(p.Status), p.Reference, p.CreatedAt)
			if err != nil {
				return errors.Wrap(err, "insert payment")
			}
		}
		s := c.Subscription
		_, err := tx.Exec(ctx, `
INSERT INTO subscriptions (employer_id, plan, status, started_at, renews_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (employer_id) DO UPDATE SET
	plan = EXCLUDED.plan, status = EXCLUDED.status, started_at = EXCLUDED.started_at, renews_at = EXCLUDED.renews_at
`, s.EmployerID, string(s.Plan), string(s.Status), s.StartedAt, s.RenewsAt)
		return errors.Wrap(err, "upsert subscription")
	})
}

func scanPayment(row pgx.Row) (billing.Payment, error) {
	var (
		p            billing.Payment
		plan, status string
	)
	if err := row.Scan(&p.ID, &p.EmployerID, &plan, &p.AmountCents, &p.Currency, &status, &p.Reference, &p.CreatedAt); err != nil {
		return billing.Payment{}, errors.Wrap(err, "scan payment")
	}
	p.Plan = billing.PlanCode(plan)
	p.Status = billing.PaymentStatus(status)
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

func (r *BillingRepository) ListPayments(ctx context.Context, employerID uuid.UUID, limit, offset int) ([]billing.Payment, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+paymentColumns+` FROM payments
WHERE employer_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, employerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "list payments")
	}
	return collect(rows, scanPayment)
}

func (r *BillingRepository) ListAllPayments(ctx context.Context, limit, offset int) ([]billing.Payment, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+paymentColumns+` FROM payments
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "list all payments")
	}
	return collect(rows, scanPayment)
}

func (r *BillingRepository) Revenue(ctx context.Context) (billing.Revenue, error) {
	var rev billing.Revenue
	err := r.pool.QueryRow(ctx, `
SELECT COALESCE(SUM(amount_cents), 0)::bigint, count(*)
FROM payments WHERE status = 'paid'
`).Scan(&rev.TotalCents, &rev.Payments)
	return rev, errors.Wrap(err, "revenue")
}
