package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/talentproph/talentpro/pkg/application"
	"github.com/talentproph/talentpro/pkg/interview"
	pgstore "github.com/talentproph/talentpro/pkg/storage/postgres"
)

const interviewSelect = `
SELECT i.id, i.application_id, i.employer_id, i.seeker_id, i.job_id, i.scheduled_at, i.location_type,
	i.location, i.notes, i.status, i.created_at,
	COALESCE(j.title, ''), COALESCE(s.full_name, ''), COALESCE(e.company_name, '')
FROM interviews i
LEFT JOIN job_posts j ON j.id = i.job_id
LEFT JOIN profiles s ON s.id = i.seeker_id
LEFT JOIN profiles e ON e.id = i.employer_id
`

// InterviewRepository implements interview.Repository.
type InterviewRepository struct {
	pool *pgxpool.Pool
}

func NewInterviewRepository(pool *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{pool: pool}
}

func scanInterview(row pgx.Row) (interview.Interview, error) {
	var (
		iv           interview.Interview
		locationType string
		status       string
	)
	err := row.Scan(&iv.ID, &iv.ApplicationID, &iv.EmployerID, &iv.SeekerID, &iv.JobID, &iv.ScheduledAt, &locationType,
		&iv.Location, &iv.Notes, &status, &iv.CreatedAt, &iv.JobTitle, &iv.SeekerName, &iv.Company)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return interview.Interview{}, interview.ErrNotFound
		}
		return interview.Interview{}, errors.Wrap(err, "scan interview")
	}
	iv.LocationType = interview.LocationType(locationType)
	iv.Status = interview.Status(status)
	iv.ScheduledAt = iv.ScheduledAt.UTC()
	iv.CreatedAt = iv.CreatedAt.UTC()
	return iv, nil
}

// Schedule locks the application row, so two concurrent bookings for the same
// application serialize on the upcoming-interview check.
func (r *InterviewRepository) Schedule(ctx context.Context, iv interview.Interview, now time.Time) error {
	return pgstore.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var status string
		err := tx.QueryRow(ctx, `SELECT status FROM job_applications WHERE id = $1 FOR UPDATE`, iv.ApplicationID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return application.ErrNotFound
		}
		if err != nil {
			return errors.Wrap(err, "lock application")
		}
		if !application.Status(status).AcceptsInterview() {
			return interview.ErrPipelineClosed
		}

		var exists bool
		err = tx.QueryRow(ctx, `
SELECT EXISTS (
	SELECT 1 FROM interviews
	WHERE application_id = $1 AND status = 'scheduled' AND scheduled_at > $2
)`, iv.ApplicationID, now).Scan(&exists)
		if err != nil {
			return errors.Wrap(err, "check scheduled interviews")
		}
		if exists {
			return interview.ErrAlreadyScheduled
		}

		_, err = tx.Exec(ctx, `
INSERT INTO interviews (id, application_id, employer_id, seeker_id, job_id, scheduled_at, location_type,
	location, notes, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, iv.ID, iv.ApplicationID, iv.EmployerID, iv.SeekerID, iv.JobID, iv.ScheduledAt, string(iv.LocationType),
			iv.Location, iv.Notes, string(iv.Status), iv.CreatedAt)
		if err != nil {
			return errors.Wrap(err, "insert interview")
		}
		_, err = tx.Exec(ctx, `UPDATE job_applications SET status = $2, updated_at = $3 WHERE id = $1`,
			iv.ApplicationID, string(application.StatusInterviewed), now)
		return errors.Wrap(err, "mark application interviewed")
	})
}

func (r *InterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (interview.Interview, error) {
	return scanInterview(r.pool.QueryRow(ctx, interviewSelect+`WHERE i.id = $1`, id))
}

func (r *InterviewRepository) ListForUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]interview.Interview, error) {
	rows, err := r.pool.Query(ctx, interviewSelect+`
WHERE i.employer_id = $1 OR i.seeker_id = $1
ORDER BY i.scheduled_at < $2,
	CASE WHEN i.scheduled_at >= $2 THEN i.scheduled_at END ASC,
	i.scheduled_at DESC
`, userID, now)
	if err != nil {
		return nil, errors.Wrap(err, "list interviews")
	}
	return collect(rows, scanInterview)
}

func (r *InterviewRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE interviews SET status = 'cancelled' WHERE id = $1`, id)
	return affectedOne(tag.RowsAffected(), err, "cancel interview", interview.ErrNotFound)
}
