package core

import "errors"

// Domain errors callers are expected to branch on with errors.Is. These are
// the only failure modes surfaced to the UI as-is; storage corruption is
// recovered inside the storage layer and never reaches here.
var (
	// ErrDuplicateUser is returned by SignUp when the email is already
	// registered (case-insensitive, trimmed match).
	ErrDuplicateUser = errors.New("an account with this email already exists")

	// ErrUserNotFound is returned by SignIn when no account matches.
	ErrUserNotFound = errors.New("no account found with this email address")

	// ErrDuplicateProfileName is returned when creating a business profile
	// whose name exactly matches an existing one (case-sensitive).
	ErrDuplicateProfileName = errors.New("a business profile with this name already exists")

	// ErrNotSignedIn is returned by operations that require a session.
	ErrNotSignedIn = errors.New("not signed in")
)
