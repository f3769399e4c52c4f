package core

import (
	"fmt"
	"strings"
)

// Storage keys that are global to the whole storage area, independent of any
// user or profile scope.
const (
	usersKey         = "invoicecraft-local-users"
	sessionKey       = "invoicecraft-auth-user"
	profilesKey      = "invoiceease-business-profiles"
	activeProfileKey = "invoiceease-active-profile-id"
)

// Scope identifies whose data a service reads and writes: the signed-in
// user plus the active business profile. It is passed explicitly to every
// service constructor so namespace selection is a visible, testable input
// rather than ambient state. Collections under different scopes never
// intersect (up to the documented userKey normalization collisions).
type Scope struct {
	// UserID is the identity key of the signed-in user: the email when
	// present, otherwise the profile name, otherwise empty (anonymous).
	UserID string

	// ProfileID is the id of the active business profile, or empty when
	// none is selected.
	ProfileID string
}

// userKey returns the normalized user segment used in scoped keys:
// lowercase with all non-alphanumeric characters stripped, "anon" for the
// anonymous scope.
func (s Scope) userKey() string {
	if s.UserID == "" {
		return "anon"
	}
	var b strings.Builder
	for _, r := range strings.ToLower(s.UserID) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "anon"
	}
	return b.String()
}

// Prefix returns the key prefix isolating this scope's profile-level
// collections: "user-{userKey}-profile-{profileID}-", or
// "user-{userKey}-" when no profile is active.
func (s Scope) Prefix() string {
	if s.ProfileID == "" {
		return fmt.Sprintf("user-%s-", s.userKey())
	}
	return fmt.Sprintf("user-%s-profile-%s-", s.userKey(), s.ProfileID)
}

// clientsKey is the scoped slot holding the client list.
func (s Scope) clientsKey() string {
	return s.Prefix() + "invoicer-pro-clients"
}

// receiptsKey is the scoped slot holding the payment receipt list.
func (s Scope) receiptsKey() string {
	return s.Prefix() + "payment-receipts"
}

// documentsKey is the slot holding invoice/LPO documents. Legacy underscore
// form keyed by the raw user id, profile-independent.
func (s Scope) documentsKey() string {
	if s.UserID == "" {
		return "lpos_default"
	}
	return "lpos_" + s.UserID
}

// templatesKey is the slot holding custom document templates. Legacy
// underscore form keyed by the raw user id.
func (s Scope) templatesKey() string {
	userID := s.UserID
	if userID == "" {
		userID = "default"
	}
	return "customTemplates_" + userID
}

// notesKey is the slot holding the user's notes. User-scoped only: profile
// switches do not isolate notes.
func (s Scope) notesKey() string {
	return "invoiceease-user-notes-" + s.userKey()
}

// activityKey is the slot holding the user's activity feed. User-scoped
// only, same as notes.
func (s Scope) activityKey() string {
	return "invoiceease-activity-events-" + s.userKey()
}
