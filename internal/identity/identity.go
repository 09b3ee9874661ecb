// Package identity resolves the current user from session tokens. The user
// is consumed read-only by the metrics aggregator for department scoping.
package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"metreg/model"
)

// Claims are the session token claims the engine consumes.
type Claims struct {
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ParseToken verifies an HMAC-signed session token and extracts the user.
// An empty department claim marks a global/administrative role.
func ParseToken(secret []byte, token string) (*model.User, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("identity: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("identity: token invalid")
	}
	return &model.User{
		Username:   claims.Subject,
		Department: claims.Department,
		Role:       claims.Role,
	}, nil
}

// SignToken issues a session token for the given user. Used by tests and
// local tooling; production tokens come from the identity service.
func SignToken(secret []byte, user *model.User) (string, error) {
	claims := &Claims{
		Department: user.Department,
		Role:       user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.Username,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("identity: sign: %w", err)
	}
	return token, nil
}
