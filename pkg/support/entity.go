package support

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// CanTransition allows open -> in_progress -> resolved, skipping straight to
// resolved, and reopening a resolved or in-progress ticket.
func (s Status) CanTransition(to Status) bool {
	if s == to || !to.Valid() {
		return false
	}
	switch s {
	case StatusOpen:
		return to == StatusInProgress || to == StatusResolved
	case StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityNormal || p == PriorityHigh
}

type Ticket struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Subject   string
	Body      string
	Status    Status
	Priority  Priority
	CreatedAt time.Time
	UpdatedAt time.Time
}
