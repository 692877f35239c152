package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tracewell/covid-social-be/internal/models"
	"github.com/tracewell/covid-social-be/internal/storage"
)

// fakeStore is an in-memory UserStore for handler tests.
type fakeStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

var _ storage.UserStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[string]models.User)}
}

func (s *fakeStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	s.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (s *fakeStore) FindByID(_ context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return cloneUser(user), nil
}

func (s *fakeStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *fakeStore) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, cloneUser(user))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].LastName < users[j].LastName })
	return users, nil
}

func (s *fakeStore) ListByIDs(_ context.Context, ids []string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []models.User{}
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			users = append(users, cloneUser(user))
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].LastName < users[j].LastName })
	return users, nil
}

func (s *fakeStore) UpdateFriends(_ context.Context, id string, friends []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.Friends = append([]string{}, friends...)
	s.users[id] = user
	return nil
}

func (s *fakeStore) UpdateVaccination(_ context.Context, id string, vac *models.Vaccination) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.Vaccination = vac
	s.users[id] = user
	return nil
}

func (s *fakeStore) UpdateCovidStatus(_ context.Context, id string, hasCovid bool, lastExposed *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	user.HasCovid = hasCovid
	user.LastExposed = lastExposed
	s.users[id] = user
	return nil
}

func (s *fakeStore) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *fakeStore) friendsOf(id string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.users[id].Friends...)
}

func cloneUser(user models.User) models.User {
	user.Friends = append([]string{}, user.Friends...)
	if user.Vaccination != nil {
		vac := *user.Vaccination
		user.Vaccination = &vac
	}
	return user
}
