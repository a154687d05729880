package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is an employer's rating of a seeker for one job. A seeker can be
// reviewed once per job by the same employer.
type Review struct {
	ID         uuid.UUID
	EmployerID uuid.UUID
	SeekerID   uuid.UUID
	JobID      uuid.UUID
	Rating     int
	Body       string
	CreatedAt  time.Time

	EmployerName string
	JobTitle     string
}

type Summary struct {
	Reviews []Review
	Count   int
	Average float64
}
