package tui

import (
	"sort"
	"sync"
	"time"
)

// Connection describes one active ssh connection.
type Connection struct {
	ID        string
	User      string
	Remote    string
	StartedAt time.Time
}

// ConnectionRegistry tracks active connections.
// Thread-safe for concurrent access.
type ConnectionRegistry struct {
	mu    sync.RWMutex
	conns map[string]Connection
}

// NewConnectionRegistry creates an empty registry.
func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		conns: make(map[string]Connection),
	}
}

// Register adds a connection to the registry.
func (r *ConnectionRegistry) Register(c Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[c.ID] = c
}

// Unregister removes a connection and returns it.
func (r *ConnectionRegistry) Unregister(id string) (Connection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conns[id]
	delete(r.conns, id)
	return c, ok
}

// Get retrieves a connection by ID.
func (r *ConnectionRegistry) Get(id string) (Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.conns[id]
	return c, ok
}

// Count returns the number of active connections.
func (r *ConnectionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// List returns the active connections, oldest first.
func (r *ConnectionRegistry) List() []Connection {
	r.mu.RLock()
	out := make([]Connection, 0, len(r.conns))
	for _, c := range r.conns {
		out = append(out, c)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}
