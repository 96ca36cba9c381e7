// Package token issues and verifies the signed credentials attached to
// authenticated requests. Tokens are stateless: nothing is persisted, a token
// is valid iff its signature checks out and its expiry has not passed.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ribgsilva/notes-app/platform/fault"
)

// ErrInvalidToken is returned for every verification failure. The cause
// (bad signature, malformed payload, expired) is deliberately not exposed.
var ErrInvalidToken = fault.New(fault.Unauthenticated, "unauthorized")

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Manager signs and verifies tokens with a single HS256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue produces a signed token embedding the user id and an expiration.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})

	return t.SignedString(m.secret)
}

// Verify returns the user id embedded in the token, or ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidToken
	}
	if !t.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
