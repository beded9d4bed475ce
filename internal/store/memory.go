// internal/store/memory.go
//
// In-memory registry of live game sessions.
// Games are deliberately not persisted: state is lost when the process
// restarts.
//
// Characteristics:
//   - Stores *session.Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Idle sessions are dropped by Sweep.
//   - ErrNotFound is returned for missing IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-clone/internal/session"
)

// ErrNotFound is returned when no session has the requested ID.
var ErrNotFound = errors.New("store: session not found")

// Store defines the registry interface for game sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *session.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*session.Session, error)

	// Delete removes a session; deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// Sweep removes sessions not seen since cutoff and returns how many.
	Sweep(ctx context.Context, cutoff time.Time) int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex                // guards sessions map
	sessions map[string]*session.Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*session.Session)}
}

func (m *memory) Save(ctx context.Context, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}
