package model

import "context"

// User is the authenticated operator. Department scopes the archive-based
// failure count; an empty department marks a global/administrative role
// that sees all departments.
type User struct {
	Username   string `json:"username"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
}

type userKey struct{}

// WithUser attaches a User to the context.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFrom extracts the User from the context, or returns nil if absent.
func UserFrom(ctx context.Context) *User {
	u, _ := ctx.Value(userKey{}).(*User)
	return u
}
