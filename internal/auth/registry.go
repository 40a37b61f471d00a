package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/danaholt/giftwish/pkg/crypto"
	"github.com/danaholt/giftwish/pkg/metrics"
)

// Store abstracts the backing map so the registry could later be pointed at
// an external key-value store without touching the handlers.
type Store interface {
	Put(session Session)
	Get(id string) (Session, bool)
	Delete(id string)
}

// MemoryStore is the default in-process Store. Unlike the single-threaded
// runtime this design came from, Go serves requests concurrently, so the map
// is guarded by a mutex.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (s *MemoryStore) Put(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *MemoryStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// RegistryOption customises Registry behaviour.
type RegistryOption func(*Registry)

// WithTTL overrides the session lifetime.
func WithTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithClock injects a custom clock, primarily for tests.
func WithClock(clock func() time.Time) RegistryOption {
	return func(r *Registry) {
		if clock != nil {
			r.now = clock
		}
	}
}

// WithStore replaces the backing store.
func WithStore(store Store) RegistryOption {
	return func(r *Registry) {
		if store != nil {
			r.store = store
		}
	}
}

// Registry creates, resolves and expires sessions. Expiry is evaluated
// lazily on resolution; expired records are removed at that point.
type Registry struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// NewRegistry constructs a Registry backed by an in-memory store.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		store: NewMemoryStore(),
		ttl:   DefaultSessionTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TTL returns the configured session lifetime.
func (r *Registry) TTL() time.Duration {
	return r.ttl
}

// Create generates a crypto-random session bound to the event and role.
func (r *Registry) Create(eventID uint, role Role) (Session, error) {
	if role != RoleHost && role != RoleGuest {
		return Session{}, errors.New("session: unknown role")
	}

	id, err := crypto.GenerateSessionID()
	if err != nil {
		return Session{}, err
	}

	session := Session{
		ID:        id,
		EventID:   eventID,
		Role:      role,
		CreatedAt: r.now(),
	}
	r.store.Put(session)
	metrics.ActiveSessions.Inc()

	return session, nil
}

// Resolve looks up a session by identifier. A record older than the TTL is
// deleted and reported absent.
func (r *Registry) Resolve(id string) (Session, bool) {
	if id == "" {
		return Session{}, false
	}

	session, ok := r.store.Get(id)
	if !ok {
		return Session{}, false
	}

	if r.now().Sub(session.CreatedAt) >= r.ttl {
		r.store.Delete(id)
		metrics.ActiveSessions.Dec()
		return Session{}, false
	}

	return session, true
}

// Delete removes the session record if present.
func (r *Registry) Delete(id string) {
	if id == "" {
		return
	}
	if _, ok := r.store.Get(id); ok {
		r.store.Delete(id)
		metrics.ActiveSessions.Dec()
	}
}
