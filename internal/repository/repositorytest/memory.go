// Package repositorytest provides in-memory repositories that follow the same contracts
// as the Postgres implementations, for use in tests.
package repositorytest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/schedule-manager/internal/domain"
	"github.com/spec-kit/schedule-manager/internal/repository"
)

var (
	_ repository.UserRepository  = (*UserStore)(nil)
	_ repository.EventRepository = (*EventStore)(nil)
)

// UserStore is an in-memory credential store with a unique username index.
type UserStore struct {
	mu    sync.Mutex
	users map[string]domain.UserCredentials
}

// NewUserStore returns an empty store.
func NewUserStore() *UserStore {
	return &UserStore{users: map[string]domain.UserCredentials{}}
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	creds, ok := s.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	user := creds.User
	return &user, nil
}

func (s *UserStore) FindCredentialsByUsername(_ context.Context, username string) (*domain.UserCredentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	creds, ok := s.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &creds, nil
}

func (s *UserStore) Create(_ context.Context, newUser domain.NewUser) (*domain.User, error) {
	if strings.TrimSpace(newUser.Username) == "" || len(newUser.PasswordHash) < 8 {
		return nil, domain.NewDatabaseError(domain.DatabaseErrorValidation, "Validation failed: users check constraint", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[newUser.Username]; exists {
		return nil, domain.NewDatabaseError(domain.DatabaseErrorConflict, "User with this username already exists.", nil)
	}
	now := time.Now().UTC()
	creds := domain.UserCredentials{
		User:         domain.User{ID: uuid.NewString(), Username: newUser.Username, CreatedAt: now, UpdatedAt: now},
		PasswordHash: newUser.PasswordHash,
	}
	s.users[newUser.Username] = creds
	user := creds.User
	return &user, nil
}

// EventStore is an in-memory event repository reporting modified and deleted counts
// the way the Postgres implementation does.
type EventStore struct {
	mu     sync.Mutex
	events map[string]domain.Event
	seq    int
	order  map[string]int
}

// NewEventStore returns an empty store.
func NewEventStore() *EventStore {
	return &EventStore{events: map[string]domain.Event{}, order: map[string]int{}}
}

func (s *EventStore) FindAll(context.Context) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Event, 0, len(s.events))
	for _, event := range s.events {
		out = append(out, event)
	}
	sort.Slice(out, func(i, j int) bool { return s.order[out[i].ID] < s.order[out[j].ID] })
	return out, nil
}

func (s *EventStore) FindByID(_ context.Context, id string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &event, nil
}

func (s *EventStore) Create(_ context.Context, newEvent domain.NewEvent) (*domain.Event, error) {
	if strings.TrimSpace(newEvent.Title) == "" {
		return nil, domain.NewDatabaseError(domain.DatabaseErrorValidation, "Validation failed: events_title_check", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	event := domain.Event{
		ID:          uuid.NewString(),
		Title:       newEvent.Title,
		Description: newEvent.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.seq++
	s.order[event.ID] = s.seq
	s.events[event.ID] = event
	return &event, nil
}

func (s *EventStore) Update(_ context.Context, id string, patch domain.EventPatch) (bool, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return false, domain.NewDatabaseError(domain.DatabaseErrorValidation, "Validation failed: events_title_check", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return false, nil
	}

	modified := false
	if patch.Title != nil && *patch.Title != event.Title {
		event.Title = *patch.Title
		modified = true
	}
	if patch.Description != nil && *patch.Description != event.Description {
		event.Description = *patch.Description
		modified = true
	}
	if !modified {
		return false, nil
	}
	event.UpdatedAt = time.Now().UTC()
	s.events[id] = event
	return true, nil
}

func (s *EventStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return false, nil
	}
	delete(s.events, id)
	delete(s.order, id)
	return true, nil
}
