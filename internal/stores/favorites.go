package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/tempustours/tempus-backend/internal/services"
)

const favoritesSnapshotKey = "tempus-tours-favorites"

type favoritesSnapshot struct {
	Favorites map[string][]string `json:"favorites"`
}

// FavoritesStore keeps each user's favorite tour ids
type FavoritesStore struct {
	mu        sync.RWMutex
	favorites map[string][]string
	writer    *services.SnapshotWriter
}

func NewFavoritesStore(snapshots services.SnapshotStore) (*FavoritesStore, error) {
	s := &FavoritesStore{
		favorites: make(map[string][]string),
		writer:    services.NewSnapshotWriter(snapshots, favoritesSnapshotKey),
	}

	data, err := snapshots.Load(context.Background(), favoritesSnapshotKey)
	if err == services.ErrSnapshotNotFound {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %v", err)
	}

	var snap favoritesSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode favorites snapshot: %v", err)
	}
	if snap.Favorites != nil {
		s.favorites = snap.Favorites
	}

	return s, nil
}

// Favorites returns the user's favorite tour ids
func (s *FavoritesStore) Favorites(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.favorites[userID]))
	copy(result, s.favorites[userID])
	return result
}

// IsFavorite reports whether the tour is in the user's favorites
func (s *FavoritesStore) IsFavorite(userID, tourID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.contains(userID, tourID)
}

// Add puts a tour into the user's favorites. Adding a tour that is
// already a favorite is a no-op.
func (s *FavoritesStore) Add(userID, tourID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.contains(userID, tourID) {
		return
	}

	current := s.favorites[userID]
	next := make([]string, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, tourID)
	s.favorites[userID] = next

	s.persist()
}

// Remove takes a tour out of the user's favorites
func (s *FavoritesStore) Remove(userID, tourID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.favorites[userID]
	next := make([]string, 0, len(current))
	for _, id := range current {
		if id != tourID {
			next = append(next, id)
		}
	}
	s.favorites[userID] = next

	s.persist()
}

// Toggle flips the favorite status of a tour and reports the new state
func (s *FavoritesStore) Toggle(userID, tourID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.favorites[userID]
	if s.contains(userID, tourID) {
		next := make([]string, 0, len(current))
		for _, id := range current {
			if id != tourID {
				next = append(next, id)
			}
		}
		s.favorites[userID] = next
		s.persist()
		return false
	}

	next := make([]string, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, tourID)
	s.favorites[userID] = next
	s.persist()
	return true
}

// Clear empties the user's favorites
func (s *FavoritesStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.favorites, userID)
	s.persist()
}

func (s *FavoritesStore) contains(userID, tourID string) bool {
	for _, id := range s.favorites[userID] {
		if id == tourID {
			return true
		}
	}
	return false
}

func (s *FavoritesStore) persist() {
	snap := favoritesSnapshot{Favorites: s.favorites}
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Error marshaling favorites snapshot: %v", err)
		return
	}

	s.writer.Write(data)
}
