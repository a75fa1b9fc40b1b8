package cart

import (
	"sync"

	"caviste/internal/domain"

	"github.com/google/uuid"
)

// Snapshot is an immutable view of a cart handed to readers and
// subscribers. Count is the sum of all line quantities.
type Snapshot struct {
	Items []domain.CartItem `json:"items"`
	Count int               `json:"count"`
}

// Total returns the sum of all line subtotals.
func (s Snapshot) Total() int {
	total := 0
	for _, item := range s.Items {
		total += item.Subtotal()
	}
	return total
}

// Store holds the line items of one browsing session. Lines are unique
// per product ID and keep insertion order. All mutations notify
// subscribers with a fresh snapshot; the mutex makes the store safe for
// concurrent handlers.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem
	subs  []func(Snapshot)
}

// NewStore creates an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to be called with a snapshot after every
// mutation that changed the cart.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Add appends a line item, or accumulates the quantity onto an existing
// line with the same product ID.
func (s *Store) Add(item domain.CartItem) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += item.Quantity
			s.notifyLocked()
			return
		}
	}
	s.items = append(s.items, item)
	s.notifyLocked()
}

// Remove deletes the line with the given product ID; absent IDs are a
// no-op and subscribers are not notified.
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.notifyLocked()
			return
		}
	}
	s.mu.Unlock()
}

// SetQuantity replaces the stored quantity of a line. Quantities below 1
// are rejected outright rather than clamped, leaving the cart unchanged.
func (s *Store) SetQuantity(id uuid.UUID, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ProductID == id {
			s.items[i].Quantity = quantity
			s.notifyLocked()
			return
		}
	}
	s.mu.Unlock()
}

// Clear empties the cart entirely.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.notifyLocked()
}

// Snapshot returns a copy of the cart for rendering.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Count returns the sum of all line quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) snapshotLocked() Snapshot {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return Snapshot{Items: items, Count: count}
}

// notifyLocked snapshots under the lock, releases it, then runs the
// subscribers so they can call back into the store.
func (s *Store) notifyLocked() {
	snapshot := s.snapshotLocked()
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
