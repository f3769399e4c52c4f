package core

import (
	"context"
	"time"
)

// User is a locally registered account. There is no password: identity is
// matched by email alone, which is all a single-device app needs.
type User struct {
	Email       string    `json:"email"`
	ProfileName string    `json:"profileName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthService registers and looks up local users and tracks the current
// session identity. The session is the sole source of the UserID fed into
// every scoped service.
type AuthService interface {
	// SignUp registers a new account and signs it in. Returns
	// ErrDuplicateUser when the email is already taken (case-insensitive,
	// trimmed comparison).
	SignUp(ctx context.Context, email, profileName string) (*User, error)

	// SignIn sets the session to the account matching email. Returns
	// ErrUserNotFound when no account matches.
	SignIn(ctx context.Context, email string) (*User, error)

	// SignOut clears the session pointer. The account list is retained.
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed-in user, or nil when signed out.
	CurrentUser(ctx context.Context) (*User, error)
}
