package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/talentproph/talentpro/pkg/application"
	pgstore "github.com/talentproph/talentpro/pkg/storage/postgres"
)

const applicationSelect = `
SELECT a.id, a.job_id, a.seeker_id, a.employer_id, a.status, a.cover_letter, a.expected_salary, a.match_score,
	a.created_at, a.updated_at, COALESCE(j.title, ''), COALESCE(e.company_name, ''),
	COALESCE(s.full_name, ''), COALESCE(s.avatar_url, ''), COALESCE(s.headline, ''), COALESCE(s.location, ''),
	COALESCE(s.skills, '{}')
FROM job_applications a
LEFT JOIN job_posts j ON j.id = a.job_id
LEFT JOIN profiles e ON e.id = a.employer_id
LEFT JOIN profiles s ON s.id = a.seeker_id
`

// ApplicationRepository implements application.Repository.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var (
		a      application.Application
		status string
	)
	err := row.Scan(&a.ID, &a.JobID, &a.SeekerID, &a.EmployerID, &status, &a.CoverLetter, &a.ExpectedSalary, &a.MatchScore,
		&a.CreatedAt, &a.UpdatedAt, &a.JobTitle, &a.CompanyName,
		&a.Applicant.FullName, &a.Applicant.AvatarURL, &a.Applicant.Headline, &a.Applicant.Location,
		&a.Applicant.Skills)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, errors.Wrap(err, "scan application")
	}
	a.Status = application.Status(status)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO job_applications (id, job_id, seeker_id, employer_id, status, cover_letter, expected_salary,
	match_score, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, a.ID, a.JobID, a.SeekerID, a.EmployerID, string(a.Status), a.CoverLetter, a.ExpectedSalary,
		a.MatchScore, a.CreatedAt, a.UpdatedAt)
	if pgstore.IsUniqueViolation(err, "job_applications_job_seeker_key") {
		return application.ErrAlreadyApplied
	}
	return errors.Wrap(err, "insert application")
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	return scanApplication(r.pool.QueryRow(ctx, applicationSelect+`WHERE a.id = $1`, id))
}

func (r *ApplicationRepository) ListBySeeker(ctx context.Context, seekerID uuid.UUID) ([]application.Application, error) {
	rows, err := r.pool.Query(ctx, applicationSelect+`WHERE a.seeker_id = $1 ORDER BY a.created_at DESC`, seekerID)
	if err != nil {
		return nil, errors.Wrap(err, "list seeker applications")
	}
	return collect(rows, scanApplication)
}

// ListByJob puts the best skill matches first.
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	rows, err := r.pool.Query(ctx, applicationSelect+`WHERE a.job_id = $1 ORDER BY a.match_score DESC, a.created_at`, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "list job applications")
	}
	return collect(rows, scanApplication)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to application.Status, at time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE job_applications SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`,
		id, string(from), string(to), at)
	if err != nil {
		return errors.Wrap(err, "update application status")
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM job_applications WHERE id = $1)`, id).Scan(&exists); err != nil {
		return errors.Wrap(err, "check application")
	}
	if !exists {
		return application.ErrNotFound
	}
	return application.ErrStatusChanged
}
