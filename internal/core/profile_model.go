package core

import (
	"context"
	"time"
)

// BusinessProfile is one issuing business: the letterhead identity invoices
// are generated under. The profile list and the active selection are global
// to the storage area, not per user.
type BusinessProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	LogoURL   string    `json:"logoUrl,omitempty"`
	TaxID     string    `json:"taxId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileInput holds the editable fields of a business profile. Zero-value
// fields are left untouched by Update; the id is immutable.
type ProfileInput struct {
	Name    string
	Email   string
	Address string
	Phone   string
	LogoURL string
	TaxID   string
}

// ProfileService manages business profiles and the active selection.
type ProfileService interface {
	// Create adds a profile and makes it active. Returns
	// ErrDuplicateProfileName when the name exactly matches an existing
	// profile (case-sensitive, unlike email matching — preserved behavior).
	Create(ctx context.Context, input ProfileInput) (*BusinessProfile, error)

	// Update merges the non-zero input fields into the profile. Unknown ids
	// are a silent no-op.
	Update(ctx context.Context, id string, input ProfileInput) error

	// Delete removes the profile. When the active profile is deleted, the
	// first remaining profile becomes active, or none if the list is empty.
	Delete(ctx context.Context, id string) error

	// List returns all profiles.
	List(ctx context.Context) ([]BusinessProfile, error)

	// SetActive persists id as the active profile.
	SetActive(ctx context.Context, id string) error

	// Active returns the active profile, or nil when none is selected.
	// There is no auto-selection: a fresh storage area has no active profile
	// until one is created or explicitly chosen.
	Active(ctx context.Context) (*BusinessProfile, error)
}
