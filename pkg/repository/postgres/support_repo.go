package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/talentproph/talentpro/pkg/support"
)

const ticketColumns = `id, user_id, subject, body, status, priority, created_at, updated_at`

// SupportRepository implements support.Repository.
type SupportRepository struct {
	pool *pgxpool.Pool
}

func NewSupportRepository(pool *pgxpool.Pool) *SupportRepository {
	return &SupportRepository{pool: pool}
}

func scanTicket(row pgx.Row) (support.Ticket, error) {
	var (
		t                support.Ticket
		status, priority string
	)
	if err := row.Scan(&t.ID, &t.UserID, &t.Subject, &t.Body, &status, &priority, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return support.Ticket{}, support.ErrNotFound
		}
		return support.Ticket{}, errors.Wrap(err, "scan ticket")
	}
	t.Status = support.Status(status)
	t.Priority = support.Priority(priority)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func (r *SupportRepository) Create(ctx context.Context, t support.Ticket) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO support_tickets (`+ticketColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, t.ID, t.UserID, t.Subject, t.Body, string(t.Status), string(t.Priority), t.CreatedAt, t.UpdatedAt)
	return errors.Wrap(err, "insert ticket")
}

func (r *SupportRepository) GetByID(ctx context.Context, id uuid.UUID) (support.Ticket, error) {
	return scanTicket(r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM support_tickets WHERE id = $1`, id))
}

func (r *SupportRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]support.Ticket, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+ticketColumns+` FROM support_tickets
WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list user tickets")
	}
	return collect(rows, scanTicket)
}

func (r *SupportRepository) List(ctx context.Context, status support.Status, limit, offset int) ([]support.Ticket, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+ticketColumns+` FROM support_tickets
WHERE $1::text = '' OR status = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, string(status), limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "list tickets")
	}
	return collect(rows, scanTicket)
}

func (r *SupportRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status support.Status, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE support_tickets SET status = $2, updated_at = $3 WHERE id = $1`, id, string(status), at)
	return affectedOne(tag.RowsAffected(), err, "update ticket status", support.ErrNotFound)
}

func (r *SupportRepository) CountByStatus(ctx context.Context, status support.Status) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM support_tickets WHERE status = $1`, string(status)).Scan(&n)
	return n, errors.Wrap(err, "count tickets")
}
