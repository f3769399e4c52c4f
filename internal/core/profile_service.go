package core

import (
	"context"
	"fmt"
	"time"

	"invoiceease/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type profileService struct {
	profiles *storage.Collection[BusinessProfile]
	active   *storage.Slot[string]
}

// NewProfileService constructs a ProfileService over the given storage area.
func NewProfileService(store storage.Store, log zerolog.Logger) ProfileService {
	return &profileService{
		profiles: storage.NewCollection[BusinessProfile](store, profilesKey, log),
		active:   storage.NewSlot[string](store, activeProfileKey, log),
	}
}

func (s *profileService) Create(ctx context.Context, input ProfileInput) (*BusinessProfile, error) {
	profiles, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if p.Name == input.Name {
			return nil, ErrDuplicateProfileName
		}
	}

	profile := BusinessProfile{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Address:   input.Address,
		Phone:     input.Phone,
		LogoURL:   input.LogoURL,
		TaxID:     input.TaxID,
		CreatedAt: time.Now(),
	}
	if err := s.profiles.Save(ctx, append(profiles, profile)); err != nil {
		return nil, fmt.Errorf("persist profile list: %w", err)
	}
	if err := s.active.Save(ctx, profile.ID); err != nil {
		return nil, fmt.Errorf("persist active profile: %w", err)
	}
	return &profile, nil
}

func (s *profileService) Update(ctx context.Context, id string, input ProfileInput) error {
	profiles, err := s.profiles.Load(ctx)
	if err != nil {
		return err
	}
	for i := range profiles {
		if profiles[i].ID != id {
			continue
		}
		if input.Name != "" {
			profiles[i].Name = input.Name
		}
		if input.Email != "" {
			profiles[i].Email = input.Email
		}
		if input.Address != "" {
			profiles[i].Address = input.Address
		}
		if input.Phone != "" {
			profiles[i].Phone = input.Phone
		}
		if input.LogoURL != "" {
			profiles[i].LogoURL = input.LogoURL
		}
		if input.TaxID != "" {
			profiles[i].TaxID = input.TaxID
		}
		return s.profiles.Save(ctx, profiles)
	}
	// unknown id: silent no-op
	return nil
}

func (s *profileService) Delete(ctx context.Context, id string) error {
	profiles, err := s.profiles.Load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]BusinessProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if err := s.profiles.Save(ctx, remaining); err != nil {
		return fmt.Errorf("persist profile list: %w", err)
	}

	activeID, ok, err := s.active.Load(ctx)
	if err != nil {
		return err
	}
	if !ok || activeID != id {
		return nil
	}
	if len(remaining) == 0 {
		return s.active.Clear(ctx)
	}
	return s.active.Save(ctx, remaining[0].ID)
}

func (s *profileService) List(ctx context.Context) ([]BusinessProfile, error) {
	return s.profiles.Load(ctx)
}

func (s *profileService) SetActive(ctx context.Context, id string) error {
	return s.active.Save(ctx, id)
}

func (s *profileService) Active(ctx context.Context) (*BusinessProfile, error) {
	activeID, ok, err := s.active.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || activeID == "" {
		return nil, nil
	}
	profiles, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if p.ID == activeID {
			return &p, nil
		}
	}
	// dangling active id (profile removed out-of-band)
	return nil, nil
}
