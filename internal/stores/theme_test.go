package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempustours/tempus-backend/internal/services"
)

func newTestThemeStore(t *testing.T) *ThemeStore {
	t.Helper()

	snapshots, err := services.NewFileSnapshotStore(t.TempDir())
	require.NoError(t, err)

	store, err := NewThemeStore(snapshots)
	require.NoError(t, err)
	return store
}

func TestThemeDefaultFollowsSystem(t *testing.T) {
	store := newTestThemeStore(t)

	pref := store.Preference("user-1")
	assert.False(t, pref.IsDarkMode)
	assert.True(t, pref.FollowSystem)
}

func TestThemeExplicitModeStopsFollowingSystem(t *testing.T) {
	store := newTestThemeStore(t)

	dark := true
	pref := store.Update("user-1", &dark, nil)
	assert.True(t, pref.IsDarkMode)
	assert.False(t, pref.FollowSystem)

	pref = store.Preference("user-1")
	assert.True(t, pref.IsDarkMode)
	assert.False(t, pref.FollowSystem)
}

func TestThemeFollowSystemUpdate(t *testing.T) {
	store := newTestThemeStore(t)

	dark := true
	store.Update("user-1", &dark, nil)

	follow := true
	pref := store.Update("user-1", nil, &follow)
	assert.True(t, pref.FollowSystem)
	assert.True(t, pref.IsDarkMode)

	// Both fields in one update keep the explicit choices
	light := false
	pref = store.Update("user-1", &light, &follow)
	assert.False(t, pref.IsDarkMode)
	assert.True(t, pref.FollowSystem)
}

func TestThemeScopedPerUser(t *testing.T) {
	store := newTestThemeStore(t)

	dark := true
	store.Update("user-1", &dark, nil)

	pref := store.Preference("user-2")
	assert.False(t, pref.IsDarkMode)
	assert.True(t, pref.FollowSystem)
}
