package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"invoiceease/internal/storage"

	"github.com/rs/zerolog"
)

type authService struct {
	users   *storage.Collection[User]
	session *storage.Slot[User]
}

// NewAuthService constructs an AuthService over the given storage area.
func NewAuthService(store storage.Store, log zerolog.Logger) AuthService {
	return &authService{
		users:   storage.NewCollection[User](store, usersKey, log),
		session: storage.NewSlot[User](store, sessionKey, log),
	}
}

func (s *authService) SignUp(ctx context.Context, email, profileName string) (*User, error) {
	email = strings.TrimSpace(email)
	profileName = strings.TrimSpace(profileName)

	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(strings.TrimSpace(u.Email), email) {
			return nil, ErrDuplicateUser
		}
	}

	user := User{Email: email, ProfileName: profileName, CreatedAt: time.Now()}
	if err := s.users.Save(ctx, append(users, user)); err != nil {
		return nil, fmt.Errorf("persist user list: %w", err)
	}
	if err := s.session.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return &user, nil
}

func (s *authService) SignIn(ctx context.Context, email string) (*User, error) {
	email = strings.TrimSpace(email)

	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(strings.TrimSpace(u.Email), email) {
			if err := s.session.Save(ctx, u); err != nil {
				return nil, fmt.Errorf("persist session: %w", err)
			}
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *authService) SignOut(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *authService) CurrentUser(ctx context.Context) (*User, error) {
	user, ok, err := s.session.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// IdentityKey returns the namespace identity for a user: email when present,
// profile name as fallback, empty for a nil (anonymous) user.
func IdentityKey(u *User) string {
	if u == nil {
		return ""
	}
	if u.Email != "" {
		return u.Email
	}
	return u.ProfileName
}
