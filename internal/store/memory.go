package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory is an in-process store for tests and single-node deployments.
type Memory struct {
	mu      sync.RWMutex
	parses  map[string]*ParseResult
	users   map[uuid.UUID]*User
	byEmail map[string]uuid.UUID
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		parses:  make(map[string]*ParseResult),
		users:   make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
	}
}

// SaveParse implements ParseStore.
func (m *Memory) SaveParse(_ context.Context, result *ParseResult) error {
	if result.Fingerprint == "" {
		return fmt.Errorf("parse result has no fingerprint")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *result
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	m.parses[result.Fingerprint] = &stored
	return nil
}

// GetParse implements ParseStore.
func (m *Memory) GetParse(_ context.Context, fingerprint string) (*ParseResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result, ok := m.parses[fingerprint]
	if !ok {
		return nil, nil
	}
	copied := *result
	return &copied, nil
}

// CreateUser implements UserStore.
func (m *Memory) CreateUser(_ context.Context, name, email, passwordHash string) (*User, error) {
	key := strings.ToLower(email)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[key]; exists {
		return nil, fmt.Errorf("user already exists: %s", email)
	}
	user := &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	m.users[user.ID] = user
	m.byEmail[key] = user.ID
	copied := *user
	return &copied, nil
}

// GetUser implements UserStore.
func (m *Memory) GetUser(_ context.Context, id uuid.UUID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

// GetUserByEmail implements UserStore.
func (m *Memory) GetUserByEmail(_ context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	copied := *m.users[id]
	return &copied, nil
}
