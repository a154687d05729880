package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/talentproph/talentpro/pkg/job"
	pgstore "github.com/talentproph/talentpro/pkg/storage/postgres"
)

const jobColumns = `j.id, j.employer_id, COALESCE(e.company_name, ''), j.title, j.description, j.category,
	j.location, j.employment_type, j.salary_min, j.salary_max, j.skills, j.status, j.created_at, j.updated_at`

const jobFrom = `FROM job_posts j LEFT JOIN profiles e ON e.id = j.employer_id`

// JobRepository implements job.Repository.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

func scanJob(row pgx.Row) (job.Post, error) {
	var (
		p              job.Post
		employmentType string
		status         string
	)
	err := row.Scan(&p.ID, &p.EmployerID, &p.CompanyName, &p.Title, &p.Description, &p.Category,
		&p.Location, &employmentType, &p.SalaryMin, &p.SalaryMax, &p.Skills, &status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Post{}, job.ErrNotFound
		}
		return job.Post{}, errors.Wrap(err, "scan job post")
	}
	p.EmploymentType = job.EmploymentType(employmentType)
	p.Status = job.Status(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

// reserveSlot locks the employer's profile row for the rest of the transaction
// and fails with ErrSlotLimit when maxActive posts are already active.
func reserveSlot(ctx context.Context, q querier, employerID uuid.UUID, maxActive int) error {
	var locked uuid.UUID
	err := q.QueryRow(ctx, `SELECT id FROM profiles WHERE id = $1 FOR UPDATE`, employerID).Scan(&locked)
	if err != nil {
		return errors.Wrap(err, "lock employer")
	}
	n, err := countActive(ctx, q, employerID)
	if err != nil {
		return err
	}
	if n >= maxActive {
		return job.ErrSlotLimit
	}
	return nil
}

func countActive(ctx context.Context, q querier, employerID uuid.UUID) (int, error) {
	var n int
	err := q.QueryRow(ctx, `SELECT count(*) FROM job_posts WHERE employer_id = $1 AND status = 'active'`, employerID).Scan(&n)
	return n, errors.Wrap(err, "count active jobs")
}

func (r *JobRepository) CreateWithinLimit(ctx context.Context, p job.Post, maxActive int) error {
	return pgstore.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := reserveSlot(ctx, tx, p.EmployerID, maxActive); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
INSERT INTO job_posts (id, employer_id, title, description, category, location, employment_type,
	salary_min, salary_max, skills, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`, p.ID, p.EmployerID, p.Title, p.Description, p.Category, p.Location, string(p.EmploymentType),
			p.SalaryMin, p.SalaryMax, textArray(p.Skills), string(p.Status), p.CreatedAt, p.UpdatedAt)
		return errors.Wrap(err, "insert job post")
	})
}

func (r *JobRepository) Update(ctx context.Context, p job.Post) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE job_posts SET
	title = $3, description = $4, category = $5, location = $6, employment_type = $7,
	salary_min = $8, salary_max = $9, skills = $10, updated_at = $11
WHERE id = $1 AND employer_id = $2
`, p.ID, p.EmployerID, p.Title, p.Description, p.Category, p.Location, string(p.EmploymentType),
		p.SalaryMin, p.SalaryMax, textArray(p.Skills), p.UpdatedAt)
	return affectedOne(tag.RowsAffected(), err, "update job post", job.ErrNotFound)
}

func (r *JobRepository) SetStatus(ctx context.Context, employerID, id uuid.UUID, status job.Status, maxActive int) error {
	return pgstore.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if status == job.StatusActive {
			var current string
			err := tx.QueryRow(ctx, `SELECT status FROM job_posts WHERE id = $1 AND employer_id = $2`, id, employerID).Scan(&current)
			if errors.Is(err, pgx.ErrNoRows) {
				return job.ErrNotFound
			}
			if err != nil {
				return errors.Wrap(err, "read job status")
			}
			if job.Status(current) != job.StatusActive {
				if err := reserveSlot(ctx, tx, employerID, maxActive); err != nil {
					return err
				}
			}
		}
		tag, err := tx.Exec(ctx, `
UPDATE job_posts SET status = $3, updated_at = now()
WHERE id = $1 AND employer_id = $2
`, id, employerID, string(status))
		return affectedOne(tag.RowsAffected(), err, "set job status", job.ErrNotFound)
	})
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Post, error) {
	return scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` `+jobFrom+` WHERE j.id = $1`, id))
}

func (r *JobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID) ([]job.Post, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+jobColumns+` `+jobFrom+`
WHERE j.employer_id = $1
ORDER BY j.created_at DESC
`, employerID)
	if err != nil {
		return nil, errors.Wrap(err, "list employer jobs")
	}
	return collect(rows, scanJob)
}

// Search lists active posts only.
func (r *JobRepository) Search(ctx context.Context, f job.SearchFilter) ([]job.Post, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+jobColumns+` `+jobFrom+`
WHERE j.status = 'active'
	AND ($1::text = '' OR j.title ILIKE $1 OR j.description ILIKE $1 OR e.company_name ILIKE $1)
	AND ($2::text = '' OR lower(j.category) = lower($2))
	AND j.skills @> $3
ORDER BY j.created_at DESC, j.id
LIMIT $4 OFFSET $5
`, containsPattern(f.Query), f.Category, textArray(f.Skills), f.Limit, f.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "search jobs")
	}
	return collect(rows, scanJob)
}

func (r *JobRepository) CountActive(ctx context.Context, employerID uuid.UUID) (int, error) {
	return countActive(ctx, r.pool, employerID)
}
