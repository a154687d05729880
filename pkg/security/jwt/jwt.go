package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/talentproph/talentpro/pkg/auth"
	"github.com/talentproph/talentpro/pkg/session"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrWrongIssuer   = errors.New("invalid token issuer")
	ErrInvalidClaims = errors.New("invalid token subject")
)

// Claims carries the registered claims plus the account role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Generator signs HS256 access tokens for auth.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

func (g *Generator) Generate(_ context.Context, user auth.User) (string, error) {
	now := g.now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Role: string(user.Role),
	})
	return token.SignedString(g.secret)
}

// Verifier turns tokens signed by a Generator with the same secret back into
// the caller's session.Actor.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier accepts tokens from any issuer when issuer is empty.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

func (v *Verifier) Actor(raw string) (session.Actor, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return session.Actor{}, ErrInvalidToken
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return session.Actor{}, ErrWrongIssuer
	}
	uid, err := uuid.Parse(claims.Subject)
	role := session.Role(claims.Role)
	if err != nil || !role.Valid() {
		return session.Actor{}, ErrInvalidClaims
	}
	return session.Actor{UserID: uid, Role: role}, nil
}
