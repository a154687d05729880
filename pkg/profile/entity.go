package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/session"
)

// Profile is the public face of an account: a seeker's professional data or
// an employer's company data. It is created together with the user row and is
// never hard-deleted.
type Profile struct {
	ID             uuid.UUID
	Role           session.Role
	FullName       string
	AvatarURL      string
	Headline       string
	Bio            string
	Location       string
	Skills         []string
	ExpectedSalary int
	Assessment     Assessment
	ResumeText     string
	CompanyName    string
	CompanyWebsite string
	IsVerified     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Assessment holds raw test results. IQ is on a 0..200 scale, the others 0..100.
type Assessment struct {
	IQ        int
	English   int
	Technical int
}

// Patch carries the editable fields of UpdateMe. Nil fields are left unchanged.
type Patch struct {
	FullName       *string
	AvatarURL      *string
	Headline       *string
	Bio            *string
	Location       *string
	Skills         *[]string
	ExpectedSalary *int
	CompanyName    *string
	CompanyWebsite *string
}

// TalentFilter narrows SearchTalents. Query matches name, headline and bio;
// every listed skill must be present on the profile.
type TalentFilter struct {
	Query  string
	Skills []string
	Limit  int
	Offset int
}

// Talent is a seeker profile together with its derived score.
type Talent struct {
	Profile
	Score Score
}

// Stats is the profile population broken down by role.
type Stats struct {
	Total  int
	ByRole map[session.Role]int
}
