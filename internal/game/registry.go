package game

import "sync"

// Registry owns the authoritative set of active sessions. It is created at
// startup and passed to the engine explicitly; there is no ambient global
// session map. Operations on different sessions proceed in parallel; each
// session serializes its own mutations through its lock.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uint]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uint]*Session)}
}

// Create allocates a new waiting session under the given id. The id is
// assigned by the persistence collaborator.
func (r *Registry) Create(id uint, maxPlayers int) (*Session, error) {
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; exists {
		return nil, ErrDuplicateJoin
	}
	s := &Session{
		ID:         id,
		Status:     StatusWaiting,
		MaxPlayers: maxPlayers,
	}
	r.sessions[id] = s
	return s, nil
}

// Get resolves a session by id.
func (r *Registry) Get(id uint) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove destroys a session. Called when the last player leaves.
func (r *Registry) Remove(id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Len reports the number of active sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
