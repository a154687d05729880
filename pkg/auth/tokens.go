package auth

import "context"

//go:generate mockgen -source=./tokens.go -destination=./mocks/tokens.mock.go -package=authmocks TokenGenerator

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
