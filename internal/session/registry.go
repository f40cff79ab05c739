// Package session holds the ephemeral per-login state: the password-stripped
// user record and the session start time. Nothing here touches durable storage;
// a process restart signs everyone out, which is the intended lifetime.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/telkomportal/internal/models"
)

// Entry is one live session.
type Entry struct {
	User      models.User
	StartedAt time.Time
}

// Registry tracks live sessions by ID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]Entry)}
}

// Open starts a session for the user and returns its ID.
func (r *Registry) Open(user models.User) string {
	id := uuid.NewString()

	r.mu.Lock()
	r.sessions[id] = Entry{User: user, StartedAt: time.Now().UTC()}
	r.mu.Unlock()

	return id
}

// Get returns the session entry, if the session is still live.
func (r *Registry) Get(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.sessions[id]
	return entry, ok
}

// Update replaces the session's copy of the user. Profile edits land here and
// only here; the durable user store never sees them.
func (r *Registry) Update(id string, user models.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return false
	}
	entry.User = user
	r.sessions[id] = entry
	return true
}

// Close ends the session. Closing an unknown ID is a no-op.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
