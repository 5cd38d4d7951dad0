package dblayer

import (
	"context"
	"fmt"

	"mypills/dbtypes"
	"mypills/storage"
)

// Users is the repository for the device's single user record and the
// onboarding flag.
type Users struct {
	store *storage.Store

	user                   *dbtypes.User
	hasCompletedOnboarding bool
}

func NewUsers(store *storage.Store) *Users {
	return &Users{store: store}
}

// LoadFromStorage refreshes the user record and onboarding flag from the
// store. A stored user that fails to decode is ignored.
func (u *Users) LoadFromStorage(ctx context.Context) {
	var user dbtypes.User
	loaded := false
	loadKey(ctx, u.store, storage.KeyUser, &user, func(cur dbtypes.User) bool {
		loaded = cur.ID != ""
		return loaded
	})
	if loaded {
		u.user = &user
	}

	loadKey(ctx, u.store, storage.KeyOnboardingCompleted, &u.hasCompletedOnboarding, nil)
}

// User returns the current user record, if one exists.
func (u *Users) User() (dbtypes.User, bool) {
	if u.user == nil {
		return dbtypes.User{}, false
	}
	return *u.user, true
}

func (u *Users) HasCompletedOnboarding() bool {
	return u.hasCompletedOnboarding
}

// SetUser records user as the device's user and persists it. Called once
// at login and again whenever the profile changes.
func (u *Users) SetUser(ctx context.Context, user dbtypes.User) error {
	u.user = &user
	if err := u.store.Set(ctx, storage.KeyUser, user); err != nil {
		return fmt.Errorf("while persisting user: %w", err)
	}
	return nil
}

// Logout clears the user record from memory and storage. The onboarding
// flag and all health data stay in place.
func (u *Users) Logout(ctx context.Context) error {
	u.user = nil
	if err := u.store.Remove(ctx, storage.KeyUser); err != nil {
		return fmt.Errorf("while removing user: %w", err)
	}
	return nil
}

// CompleteOnboarding marks onboarding as finished. One-way.
func (u *Users) CompleteOnboarding(ctx context.Context) error {
	u.hasCompletedOnboarding = true
	if err := u.store.Set(ctx, storage.KeyOnboardingCompleted, true); err != nil {
		return fmt.Errorf("while persisting onboarding flag: %w", err)
	}
	return nil
}

// SetPreferences replaces the user's preferences. A silent no-op when no
// user is logged in.
func (u *Users) SetPreferences(ctx context.Context, prefs dbtypes.UserPreferences) error {
	if u.user == nil {
		return nil
	}
	u.user.Preferences = prefs
	if err := u.store.Set(ctx, storage.KeyUser, *u.user); err != nil {
		return fmt.Errorf("while persisting user: %w", err)
	}
	return nil
}

// SetBiometricAuth flips the biometric-unlock preference. A silent no-op
// when no user is logged in.
func (u *Users) SetBiometricAuth(ctx context.Context, enabled bool) error {
	if u.user == nil {
		return nil
	}
	u.user.Preferences.BiometricAuth = enabled
	if err := u.store.Set(ctx, storage.KeyUser, *u.user); err != nil {
		return fmt.Errorf("while persisting user: %w", err)
	}
	return nil
}
