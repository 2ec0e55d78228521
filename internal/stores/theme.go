package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/tempustours/tempus-backend/internal/models"
	"github.com/tempustours/tempus-backend/internal/services"
)

const themeSnapshotKey = "tempus-tours-theme"

type themeSnapshot struct {
	Preferences map[string]models.ThemePreference `json:"preferences"`
}

// ThemeStore keeps each user's appearance preference
type ThemeStore struct {
	mu          sync.RWMutex
	preferences map[string]models.ThemePreference
	writer      *services.SnapshotWriter
}

func NewThemeStore(snapshots services.SnapshotStore) (*ThemeStore, error) {
	s := &ThemeStore{
		preferences: make(map[string]models.ThemePreference),
		writer:      services.NewSnapshotWriter(snapshots, themeSnapshotKey),
	}

	data, err := snapshots.Load(context.Background(), themeSnapshotKey)
	if err == services.ErrSnapshotNotFound {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load theme preferences: %v", err)
	}

	var snap themeSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode theme snapshot: %v", err)
	}
	if snap.Preferences != nil {
		s.preferences = snap.Preferences
	}

	return s, nil
}

// Preference returns the user's theme preference, falling back to the
// default for users who have never chosen one.
func (s *ThemeStore) Preference(userID string) models.ThemePreference {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if pref, ok := s.preferences[userID]; ok {
		return pref
	}
	return models.DefaultThemePreference()
}

// Update applies the provided fields. Choosing an explicit mode stops
// following the system theme unless followSystem is set in the same
// update.
func (s *ThemeStore) Update(userID string, isDarkMode, followSystem *bool) models.ThemePreference {
	s.mu.Lock()
	defer s.mu.Unlock()

	pref, ok := s.preferences[userID]
	if !ok {
		pref = models.DefaultThemePreference()
	}

	if isDarkMode != nil {
		pref.IsDarkMode = *isDarkMode
		if followSystem == nil {
			pref.FollowSystem = false
		}
	}
	if followSystem != nil {
		pref.FollowSystem = *followSystem
	}

	s.preferences[userID] = pref
	s.persist()

	return pref
}

func (s *ThemeStore) persist() {
	snap := themeSnapshot{Preferences: s.preferences}
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Error marshaling theme snapshot: %v", err)
		return
	}

	s.writer.Write(data)
}
