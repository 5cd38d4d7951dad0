package dblayer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"mypills/dbtypes"
	"mypills/storage"
)

func testUser() dbtypes.User {
	return dbtypes.User{
		ID:    dbtypes.NewID(),
		Name:  "Ana",
		Email: "ana@example.com",
		Preferences: dbtypes.UserPreferences{
			Theme:         dbtypes.ThemeAuto,
			Language:      "pt-BR",
			Notifications: true,
		},
	}
}

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewUsers(store)

	_, ok := repo.User()
	require.False(t, ok)

	user := testUser()
	require.NoError(t, repo.SetUser(ctx, user))

	reloaded := NewUsers(store)
	reloaded.LoadFromStorage(ctx)
	got, ok := reloaded.User()
	require.True(t, ok)
	require.Equal(t, user.ID, got.ID)
	require.Equal(t, "pt-BR", got.Preferences.Language)

	require.NoError(t, repo.Logout(ctx))
	_, ok = repo.User()
	require.False(t, ok)

	// Logout cleared storage too.
	fresh := NewUsers(store)
	fresh.LoadFromStorage(ctx)
	_, ok = fresh.User()
	require.False(t, ok)
}

func TestOnboardingFlag(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewUsers(store)

	require.False(t, repo.HasCompletedOnboarding())
	require.NoError(t, repo.CompleteOnboarding(ctx))
	require.True(t, repo.HasCompletedOnboarding())

	reloaded := NewUsers(store)
	reloaded.LoadFromStorage(ctx)
	require.True(t, reloaded.HasCompletedOnboarding())
}

func TestPreferenceUpdates(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewUsers(store)

	// Preference updates without a user are silent no-ops.
	require.NoError(t, repo.SetBiometricAuth(ctx, true))
	require.NoError(t, repo.SetPreferences(ctx, dbtypes.UserPreferences{Theme: dbtypes.ThemeDark}))

	require.NoError(t, repo.SetUser(ctx, testUser()))
	require.NoError(t, repo.SetBiometricAuth(ctx, true))

	got, ok := repo.User()
	require.True(t, ok)
	require.True(t, got.Preferences.BiometricAuth)

	prefs := got.Preferences
	prefs.Theme = dbtypes.ThemeDark
	prefs.DataBackup = true
	require.NoError(t, repo.SetPreferences(ctx, prefs))

	reloaded := NewUsers(store)
	reloaded.LoadFromStorage(ctx)
	got, ok = reloaded.User()
	require.True(t, ok)
	require.Equal(t, dbtypes.ThemeDark, got.Preferences.Theme)
	require.True(t, got.Preferences.DataBackup)
	require.True(t, got.Preferences.BiometricAuth)
}

func TestUserLoadIgnoresMalformedRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewUsers(store)

	user := testUser()
	require.NoError(t, repo.SetUser(ctx, user))

	// A stored record without an id is rejected on load.
	require.NoError(t, store.Set(ctx, storage.KeyUser, map[string]string{"name": "?"}))

	repo.LoadFromStorage(ctx)
	got, ok := repo.User()
	require.True(t, ok)
	require.Equal(t, user.ID, got.ID)
}
