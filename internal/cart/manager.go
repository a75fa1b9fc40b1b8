package cart

import (
	"sync"
)

// Manager hands out one Store per browsing session, keyed by the opaque
// session token the transport layer issues in a cookie. Carts are
// process-local and vanish with the process; there is no persistence
// across restarts.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Store
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Store)}
}

// Get returns the cart for a session, creating it on first use.
func (m *Manager) Get(session string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.carts[session]
	if !ok {
		store = NewStore()
		m.carts[session] = store
	}
	return store
}

// Drop discards a session's cart.
func (m *Manager) Drop(session string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, session)
}

// Sessions returns the number of live carts.
func (m *Manager) Sessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.carts)
}
