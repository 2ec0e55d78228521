package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/tempustours/tempus-backend/internal/models"
	"github.com/tempustours/tempus-backend/internal/services"
)

const usersSnapshotKey = "tempus-tours-auth"

type usersSnapshot struct {
	Users []models.User `json:"users"`
}

// UserStore holds the application accounts. A fresh store is seeded
// with the demo users; registered users are persisted as a whole-blob
// snapshot.
type UserStore struct {
	mu     sync.RWMutex
	users  []models.User
	writer *services.SnapshotWriter
}

func NewUserStore(snapshots services.SnapshotStore) (*UserStore, error) {
	s := &UserStore{writer: services.NewSnapshotWriter(snapshots, usersSnapshotKey)}

	data, err := snapshots.Load(context.Background(), usersSnapshotKey)
	if err == services.ErrSnapshotNotFound {
		if err := s.seed(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %v", err)
	}

	var snap usersSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode users snapshot: %v", err)
	}
	s.users = snap.Users

	return s, nil
}

// seed creates the demo accounts used by a fresh installation
func (s *UserStore) seed() error {
	demo := []models.User{
		{ID: "1", Username: "marcus", Name: "Marcus Aurelius", Citizenship: "Roman"},
		{ID: "2", Username: "livia", Name: "Livia Drusilla", Citizenship: "Roman"},
	}

	for i := range demo {
		if err := demo[i].SetPassword("password123"); err != nil {
			return fmt.Errorf("failed to seed user %s: %v", demo[i].Username, err)
		}
	}

	s.users = demo
	return nil
}

// Authenticate checks a username/password pair and returns the account
func (s *UserStore) Authenticate(username, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			if err := user.CheckPassword(password); err != nil {
				return models.User{}, ErrInvalidCredentials
			}
			return user, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Register creates a new account and returns it
func (s *UserStore) Register(username, password, name, citizenship string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return models.User{}, ErrUsernameTaken
		}
	}

	user := models.User{
		ID:          uuid.NewString(),
		Username:    username,
		Name:        name,
		Citizenship: citizenship,
	}
	if err := user.SetPassword(password); err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %v", err)
	}

	next := make([]models.User, 0, len(s.users)+1)
	next = append(next, s.users...)
	next = append(next, user)
	s.users = next

	s.persist()

	return user, nil
}

// GuestUser returns the shared guest account. Guests are never
// persisted.
func (s *UserStore) GuestUser() models.User {
	return models.User{
		ID:          "guest",
		Username:    "guest",
		Name:        "Roman Traveler",
		Citizenship: "Roman",
		IsGuest:     true,
	}
}

// GetByID looks up an account by id
func (s *UserStore) GetByID(id string) (models.User, error) {
	if id == "guest" {
		return s.GuestUser(), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UpdateProfile applies the provided fields to an account. Nil fields
// are left unchanged.
func (s *UserStore) UpdateProfile(id string, name, citizenship, profileImage *string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, user := range s.users {
		if user.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.User{}, ErrUserNotFound
	}

	next := make([]models.User, len(s.users))
	copy(next, s.users)

	if name != nil {
		next[idx].Name = *name
	}
	if citizenship != nil {
		next[idx].Citizenship = *citizenship
	}
	if profileImage != nil {
		next[idx].ProfileImage = *profileImage
	}
	s.users = next

	s.persist()

	return s.users[idx], nil
}

func (s *UserStore) persist() {
	snap := usersSnapshot{Users: s.users}
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("Error marshaling users snapshot: %v", err)
		return
	}

	s.writer.Write(data)
}
