// internal/domain/session/manager.go
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Manager serializes updates per session id. Each Update loads the
// session, applies the mutation and saves it while holding that id's lock,
// so concurrent requests from one browser never interleave.
type Manager struct {
	store  Store
	locks  *keyedMutex
	logger *logrus.Entry
}

// NewManager creates a session manager over a store
func NewManager(store Store, logger *logrus.Entry) *Manager {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Manager{
		store:  store,
		locks:  newKeyedMutex(),
		logger: logger.WithField("component", "session"),
	}
}

// Load returns the stored session, or a fresh unsaved one for an unknown id
func (m *Manager) Load(ctx context.Context, id string) (*Session, error) {
	s, err := m.store.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		return New(id), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return s, nil
}

// Update applies fn to the session and saves the result. When fn returns
// an error nothing is saved and the error is returned unchanged.
func (m *Manager) Update(ctx context.Context, id string, fn func(*Session) error) (*Session, error) {
	unlock := m.locks.lock(id)
	defer unlock()

	s, err := m.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(s); err != nil {
		return nil, err
	}

	s.UpdatedAt = time.Now().UTC()
	if err := m.store.Save(ctx, s); err != nil {
		m.logger.WithError(err).WithField("session_id", id).Error("Failed to save session")
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return s, nil
}

// Delete removes a session
func (m *Manager) Delete(ctx context.Context, id string) error {
	unlock := m.locks.lock(id)
	defer unlock()

	return m.store.Delete(ctx, id)
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

// keyedMutex hands out one mutex per key and forgets keys nobody holds
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedEntry)}
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &keyedEntry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
