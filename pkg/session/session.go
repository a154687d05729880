// Package session carries the signed-in party explicitly through handlers and
// use cases instead of a process-wide "current user".
package session

import (
	"context"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSeeker   Role = "seeker"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

func (a Actor) IsAdmin() bool    { return a.Role == RoleAdmin }
func (a Actor) IsEmployer() bool { return a.Role == RoleEmployer }
func (a Actor) IsSeeker() bool   { return a.Role == RoleSeeker }

type ctxKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(Actor)
	return a, ok
}
