package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/talentproph/talentpro/pkg/profile"
	"github.com/talentproph/talentpro/pkg/session"
)

const profileColumns = `p.id, p.role, p.full_name, p.avatar_url, p.headline, p.bio, p.location, p.skills,
	p.expected_salary, p.iq, p.english_score, p.technical_score, p.resume_text, p.company_name,
	p.company_website, p.is_verified, p.created_at, p.updated_at`

// ProfileRepository implements profile.Repository.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var (
		p    profile.Profile
		role string
	)
	err := row.Scan(&p.ID, &role, &p.FullName, &p.AvatarURL, &p.Headline, &p.Bio, &p.Location, &p.Skills,
		&p.ExpectedSalary, &p.Assessment.IQ, &p.Assessment.English, &p.Assessment.Technical, &p.ResumeText,
		&p.CompanyName, &p.CompanyWebsite, &p.IsVerified, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, errors.Wrap(err, "scan profile")
	}
	p.Role = session.Role(role)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
	return scanProfile(r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles p WHERE p.id = $1`, id))
}

func (r *ProfileRepository) Update(ctx context.Context, p profile.Profile) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE profiles SET
	full_name = $2, avatar_url = $3, headline = $4, bio = $5, location = $6, skills = $7,
	expected_salary = $8, company_name = $9, company_website = $10, updated_at = now()
WHERE id = $1
`, p.ID, p.FullName, p.AvatarURL, p.Headline, p.Bio, p.Location, textArray(p.Skills),
		p.ExpectedSalary, p.CompanyName, p.CompanyWebsite)
	return affectedOne(tag.RowsAffected(), err, "update profile", profile.ErrNotFound)
}

func (r *ProfileRepository) UpdateAssessment(ctx context.Context, id uuid.UUID, a profile.Assessment) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE profiles SET iq = $2, english_score = $3, technical_score = $4, updated_at = now()
WHERE id = $1
`, id, a.IQ, a.English, a.Technical)
	return affectedOne(tag.RowsAffected(), err, "update assessment", profile.ErrNotFound)
}

func (r *ProfileRepository) SaveResume(ctx context.Context, id uuid.UUID, text string, skills []string) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE profiles SET resume_text = $2, skills = $3, updated_at = now()
WHERE id = $1
`, id, text, textArray(skills))
	return affectedOne(tag.RowsAffected(), err, "save resume", profile.ErrNotFound)
}

func (r *ProfileRepository) SearchSeekers(ctx context.Context, f profile.TalentFilter) ([]profile.Profile, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+profileColumns+`
FROM profiles p
WHERE p.role = 'seeker'
	AND ($1::text = '' OR p.full_name ILIKE $1 OR p.headline ILIKE $1 OR p.bio ILIKE $1)
	AND p.skills @> $2
ORDER BY p.updated_at DESC, p.id
LIMIT $3 OFFSET $4
`, containsPattern(f.Query), textArray(f.Skills), f.Limit, f.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "search seekers")
	}
	return collect(rows, scanProfile)
}

func (r *ProfileRepository) SaveTalent(ctx context.Context, employerID, seekerID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO saved_talents (employer_id, seeker_id, created_at)
VALUES ($1, $2, now())
ON CONFLICT (employer_id, seeker_id) DO NOTHING
`, employerID, seekerID)
	return errors.Wrap(err, "save talent")
}

func (r *ProfileRepository) UnsaveTalent(ctx context.Context, employerID, seekerID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM saved_talents WHERE employer_id = $1 AND seeker_id = $2`, employerID, seekerID)
	return errors.Wrap(err, "unsave talent")
}

func (r *ProfileRepository) ListSaved(ctx context.Context, employerID uuid.UUID) ([]profile.Profile, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+profileColumns+`
FROM saved_talents s
JOIN profiles p ON p.id = s.seeker_id
WHERE s.employer_id = $1
ORDER BY s.created_at DESC
`, employerID)
	if err != nil {
		return nil, errors.Wrap(err, "list saved talents")
	}
	return collect(rows, scanProfile)
}

func (r *ProfileRepository) Stats(ctx context.Context) (profile.Stats, error) {
	rows, err := r.pool.Query(ctx, `SELECT role, count(*) FROM profiles GROUP BY role`)
	if err != nil {
		return profile.Stats{}, errors.Wrap(err, "profile stats")
	}
	defer rows.Close()

	st := profile.Stats{ByRole: make(map[session.Role]int)}
	for rows.Next() {
		var (
			role string
			n    int
		)
		if err := rows.Scan(&role, &n); err != nil {
			return profile.Stats{}, errors.Wrap(err, "scan profile stats")
		}
		st.ByRole[session.Role(role)] = n
		st.Total += n
	}
	return st, errors.Wrap(rows.Err(), "profile stats")
}

// affectedOne maps a single-row write result: err wrapped with op, or
// notFound when no row matched.
func affectedOne(n int64, err error, op string, notFound error) error {
	if err != nil {
		return errors.Wrap(err, op)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
