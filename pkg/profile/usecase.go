package profile

import (
	"context"
	"net/url"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/apperr"
	"github.com/talentproph/talentpro/pkg/nlp"
	"github.com/talentproph/talentpro/pkg/session"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

var (
	ErrNotSeeker    = apperr.New(apperr.KindValidation, "only seeker profiles can be saved")
	ErrEmployerOnly = apperr.New(apperr.KindForbidden, "only employers can do this")
)

// UseCase covers account settings, the talent directory and resume upload.
type UseCase interface {
	Get(ctx context.Context, id uuid.UUID) (Profile, error)
	UpdateMe(ctx context.Context, actor session.Actor, patch Patch) (Profile, error)
	SetAssessment(ctx context.Context, actor session.Actor, id uuid.UUID, a Assessment) (Profile, error)
	SearchTalents(ctx context.Context, actor session.Actor, f TalentFilter) ([]Talent, error)
	SaveTalent(ctx context.Context, actor session.Actor, seekerID uuid.UUID) error
	UnsaveTalent(ctx context.Context, actor session.Actor, seekerID uuid.UUID) error
	ListSaved(ctx context.Context, actor session.Actor) ([]Talent, error)
	UploadResume(ctx context.Context, actor session.Actor, filename string, data []byte) (Profile, error)
	Stats(ctx context.Context) (Stats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateMe(ctx context.Context, actor session.Actor, patch Patch) (Profile, error) {
	p, err := s.repo.GetByID(ctx, actor.UserID)
	if err != nil {
		return Profile{}, err
	}
	if err := apply(&p, patch); err != nil {
		return Profile{}, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return s.repo.GetByID(ctx, actor.UserID)
}

func apply(p *Profile, patch Patch) error {
	if patch.FullName != nil {
		name := strings.TrimSpace(*patch.FullName)
		if name == "" {
			return apperr.Validation("full name cannot be empty")
		}
		p.FullName = name
	}
	if patch.ExpectedSalary != nil {
		if *patch.ExpectedSalary < 0 {
			return apperr.Validation("expected salary cannot be negative")
		}
		p.ExpectedSalary = *patch.ExpectedSalary
	}
	if patch.CompanyWebsite != nil {
		site := strings.TrimSpace(*patch.CompanyWebsite)
		if site != "" {
			if u, err := url.Parse(site); err != nil || u.Scheme == "" || u.Host == "" {
				return apperr.Validation("company website must be an absolute URL")
			}
		}
		p.CompanyWebsite = site
	}
	setTrimmed(&p.AvatarURL, patch.AvatarURL)
	setTrimmed(&p.Headline, patch.Headline)
	setTrimmed(&p.Bio, patch.Bio)
	setTrimmed(&p.Location, patch.Location)
	setTrimmed(&p.CompanyName, patch.CompanyName)
	if patch.Skills != nil {
		p.Skills = nlp.NormalizeSkills(*patch.Skills)
	}
	return nil
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// SetAssessment records test results. Admin only.
func (s *service) SetAssessment(ctx context.Context, actor session.Actor, id uuid.UUID, a Assessment) (Profile, error) {
	if !actor.IsAdmin() {
		return Profile{}, apperr.Forbidden("only admins can record assessments")
	}
	if a.IQ < 0 || a.IQ > maxIQ {
		return Profile{}, apperr.Validation("iq must be between 0 and 200")
	}
	if a.English < 0 || a.English > maxSubscore || a.Technical < 0 || a.Technical > maxSubscore {
		return Profile{}, apperr.Validation("english and technical scores must be between 0 and 100")
	}
	if err := s.repo.UpdateAssessment(ctx, id, a); err != nil {
		return Profile{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) SearchTalents(ctx context.Context, actor session.Actor, f TalentFilter) ([]Talent, error) {
	if actor.IsSeeker() {
		return nil, ErrEmployerOnly
	}
	f.Query = strings.TrimSpace(f.Query)
	f.Skills = nlp.NormalizeSkills(f.Skills)
	if f.Limit <= 0 {
		f.Limit = defaultSearchLimit
	}
	if f.Limit > maxSearchLimit {
		f.Limit = maxSearchLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	items, err := s.repo.SearchSeekers(ctx, f)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, toTalent), nil
}

func (s *service) SaveTalent(ctx context.Context, actor session.Actor, seekerID uuid.UUID) error {
	if !actor.IsEmployer() {
		return ErrEmployerOnly
	}
	p, err := s.repo.GetByID(ctx, seekerID)
	if err != nil {
		return err
	}
	if p.Role != session.RoleSeeker {
		return ErrNotSeeker
	}
	return s.repo.SaveTalent(ctx, actor.UserID, seekerID)
}

func (s *service) UnsaveTalent(ctx context.Context, actor session.Actor, seekerID uuid.UUID) error {
	if !actor.IsEmployer() {
		return ErrEmployerOnly
	}
	return s.repo.UnsaveTalent(ctx, actor.UserID, seekerID)
}

func (s *service) ListSaved(ctx context.Context, actor session.Actor) ([]Talent, error) {
	if !actor.IsEmployer() {
		return nil, ErrEmployerOnly
	}
	items, err := s.repo.ListSaved(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, toTalent), nil
}

// UploadResume stores the extracted resume text and merges the skills found in
// it into the profile's skill list.
func (s *service) UploadResume(ctx context.Context, actor session.Actor, filename string, data []byte) (Profile, error) {
	if !actor.IsSeeker() {
		return Profile{}, apperr.Forbidden("only job seekers can upload a resume")
	}
	text, err := ExtractResumeText(filename, data)
	if err != nil {
		return Profile{}, err
	}
	p, err := s.repo.GetByID(ctx, actor.UserID)
	if err != nil {
		return Profile{}, err
	}
	skills := nlp.NormalizeSkills(append(append([]string{}, p.Skills...), nlp.DetectSkills(text)...))
	if err := s.repo.SaveResume(ctx, actor.UserID, text, skills); err != nil {
		return Profile{}, err
	}
	p.ResumeText = text
	p.Skills = skills
	return p, nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	st, err := s.repo.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}
	if st.ByRole == nil {
		st.ByRole = map[session.Role]int{}
	}
	return st, nil
}

func toTalent(_ int, p Profile) Talent {
	return Talent{Profile: p, Score: TalentScore(p.Assessment)}
}
