// Package jwtcodec implements the TokenCodec port with HS256-signed JWTs.
package jwtcodec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/blitzhq/taskboard/internal/domain/model"
	"github.com/blitzhq/taskboard/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TokenCodec = (*Codec)(nil)

// ErrInvalidToken is returned by Verify for any token that fails signature,
// structure, or expiry checks. Callers treat every verification failure the
// same way, so the cause is deliberately not distinguished.
var ErrInvalidToken = errors.New("invalid token")

// claims carries the caller identity inside the token payload.
type claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies bearer credentials. The signing secret and token
// lifetime are injected at construction, never read from process globals.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// New creates a Codec with the given signing secret and token lifetime.
func New(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// Issue produces a signed token embedding the user id, email, and role with
// an expiry of now + the configured lifetime.
func (c *Codec) Issue(userID, email string, role model.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: email,
		Role:  string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// A missing, malformed, expired, or foreign-key-signed token fails with
// ErrInvalidToken.
func (c *Codec) Verify(token string) (*model.Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	cl, ok := parsed.Claims.(*claims)
	if !ok || cl.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &model.Identity{
		UserID: cl.Subject,
		Email:  cl.Email,
		Role:   model.Role(cl.Role),
	}, nil
}
