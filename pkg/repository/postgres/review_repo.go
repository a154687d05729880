package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/talentproph/talentpro/pkg/review"
	pgstore "github.com/talentproph/talentpro/pkg/storage/postgres"
)

// ReviewRepository implements review.Repository.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, rv review.Review) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO reviews (id, employer_id, seeker_id, job_id, rating, body, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, rv.ID, rv.EmployerID, rv.SeekerID, rv.JobID, rv.Rating, rv.Body, rv.CreatedAt)
	if pgstore.IsUniqueViolation(err, "reviews_seeker_job_employer_key") {
		return review.ErrAlreadyReviewed
	}
	return errors.Wrap(err, "insert review")
}

func (r *ReviewRepository) ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]review.Review, error) {
	rows, err := r.pool.Query(ctx, `
SELECT rv.id, rv.employer_id, rv.seeker_id, rv.job_id, rv.rating, rv.body, rv.created_at,
	COALESCE(NULLIF(e.company_name, ''), e.full_name, ''), COALESCE(j.title, '')
FROM reviews rv
LEFT JOIN profiles e ON e.id = rv.employer_id
LEFT JOIN job_posts j ON j.id = rv.job_id
WHERE rv.seeker_id = $1
ORDER BY rv.created_at DESC
`, seekerID)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}
	return collect(rows, func(row pgx.Row) (review.Review, error) {
		var rv review.Review
		err := row.Scan(&rv.ID, &rv.EmployerID, &rv.SeekerID, &rv.JobID, &rv.Rating, &rv.Body, &rv.CreatedAt,
			&rv.EmployerName, &rv.JobTitle)
		rv.CreatedAt = rv.CreatedAt.UTC()
		return rv, errors.Wrap(err, "scan review")
	})
}

func (r *ReviewRepository) HasApplication(ctx context.Context, seekerID, employerID, jobID uuid.UUID) (bool, error) {
	var ok bool
	err := r.pool.QueryRow(ctx, `
SELECT EXISTS (
	SELECT 1 FROM job_applications
	WHERE seeker_id = $1 AND employer_id = $2 AND job_id = $3
)`, seekerID, employerID, jobID).Scan(&ok)
	return ok, errors.Wrap(err, "check application")
}
