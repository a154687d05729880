package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/session"
)

// User is an account that can sign in. Person and company details live on the
// profile created alongside it.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         session.Role
	CreatedAt    time.Time
}

func (u User) IsAdmin() bool { return u.Role == session.RoleAdmin }
