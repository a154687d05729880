package interview

import (
	"time"

	"github.com/google/uuid"
)

type LocationType string

const (
	Online LocationType = "online"
	Onsite LocationType = "onsite"
	Phone  LocationType = "phone"
)

func (t LocationType) Valid() bool {
	return t == Online || t == Onsite || t == Phone
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

type Interview struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	EmployerID    uuid.UUID
	SeekerID      uuid.UUID
	JobID         uuid.UUID
	ScheduledAt   time.Time
	LocationType  LocationType
	Location      string
	Notes         string
	Status        Status
	CreatedAt     time.Time

	JobTitle   string
	SeekerName string
	Company    string
}
