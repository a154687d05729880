package job

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusClosed Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusClosed:
		return true
	}
	return false
}

type EmploymentType string

const (
	FullTime  EmploymentType = "full_time"
	PartTime  EmploymentType = "part_time"
	Contract  EmploymentType = "contract"
	Freelance EmploymentType = "freelance"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case FullTime, PartTime, Contract, Freelance:
		return true
	}
	return false
}

// Post is a job advertisement owned by an employer. Salaries are monthly PHP.
type Post struct {
	ID             uuid.UUID
	EmployerID     uuid.UUID
	CompanyName    string
	Title          string
	Description    string
	Category       string
	Location       string
	EmploymentType EmploymentType
	SalaryMin      int
	SalaryMax      int
	Skills         []string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Draft is the editable part of a post.
type Draft struct {
	Title          string
	Description    string
	Category       string
	Location       string
	EmploymentType EmploymentType
	SalaryMin      int
	SalaryMax      int
	Skills         []string
}

// SearchFilter narrows the public job board. Only active posts are returned.
type SearchFilter struct {
	Query    string
	Category string
	Skills   []string
	Limit    int
	Offset   int
}

// SlotUsage backs the "Pro, 2 of 3 active jobs" counter.
type SlotUsage struct {
	Plan string
	Used int
	Max  int
}
