// Package auth verifies bearer tokens minted by the identity provider.
// Token issuance, refresh and revocation all live with the provider; the
// portal only needs the verified email claim.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token cannot be parsed, is expired, or
// carries no email claim.
var ErrInvalidToken = errors.New("auth: invalid or expired token")

// Identity is the verified caller extracted from a token.
type Identity struct {
	Subject string
	Email   string
}

// TokenVerifier checks a raw bearer token and returns the caller identity.
// The HTTP middleware depends on this interface so tests can substitute a
// fake without minting real tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTVerifier validates HS256 tokens signed with the shared secret agreed
// with the identity provider.
type JWTVerifier struct {
	secret string
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: secret}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	c := &claims{}

	parsed, err := jwt.ParseWithClaims(token, c, func(_ *jwt.Token) (any, error) {
		return []byte(v.secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("auth.Verify: %w", ErrInvalidToken)
	}

	email := strings.ToLower(strings.TrimSpace(c.Email))
	if email == "" {
		return nil, fmt.Errorf("auth.Verify: token has no email claim: %w", ErrInvalidToken)
	}

	return &Identity{Subject: c.Subject, Email: email}, nil
}

// IssueToken signs a token carrying the email claim. Used by tests and by
// local development tooling; production tokens come from the identity
// provider.
func IssueToken(secret, subject, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "youth-portal",
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("auth.IssueToken: %w", err)
	}

	return signed, nil
}
