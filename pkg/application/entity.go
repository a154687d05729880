package application

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew         Status = "New"
	StatusShortlisted Status = "Shortlisted"
	StatusInterviewed Status = "Interviewed"
	StatusHired       Status = "Hired"
	StatusRejected    Status = "Rejected"
)

var transitions = map[Status][]Status{
	StatusNew:         {StatusShortlisted, StatusInterviewed, StatusHired, StatusRejected},
	StatusShortlisted: {StatusInterviewed, StatusHired, StatusRejected},
	StatusInterviewed: {StatusHired, StatusRejected},
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusShortlisted, StatusInterviewed, StatusHired, StatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether the pipeline allows moving from s to next.
// Hired and Rejected are terminal.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AcceptsInterview reports whether an interview can be booked at status s.
func (s Status) AcceptsInterview() bool {
	return s == StatusInterviewed || s.CanTransition(StatusInterviewed)
}

// Application is a seeker's application to a job post. JobTitle, CompanyName
// and Applicant are filled on reads.
type Application struct {
	ID             uuid.UUID
	JobID          uuid.UUID
	SeekerID       uuid.UUID
	EmployerID     uuid.UUID
	Status         Status
	CoverLetter    string
	ExpectedSalary int
	MatchScore     float64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	JobTitle    string
	CompanyName string
	Applicant   Applicant
}

// Applicant is the slice of the seeker's profile an employer sees in the pipeline.
type Applicant struct {
	FullName  string
	AvatarURL string
	Headline  string
	Location  string
	Skills    []string
}
