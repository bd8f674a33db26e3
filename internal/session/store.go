package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long an idle session survives before the next sweep
// drops it. Sessions are transient by design; there is no persistence.
const DefaultTTL = 30 * time.Minute

type entry struct {
	state     State
	expiresAt time.Time
}

// Store holds sessions in memory, keyed by ID. Updates replace the whole
// State under the lock, so concurrent readers never observe a partially
// computed result; re-triggering a computation simply stores over the
// previous one.
type Store struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		items: make(map[string]entry),
		ttl:   ttl,
	}
}

// Create registers a fresh session and returns it.
func (st *Store) Create() State {
	s := State{ID: uuid.NewString(), UpdatedAt: time.Now()}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.items[s.ID] = entry{state: s, expiresAt: time.Now().Add(st.ttl)}
	return s
}

// Get returns a copy of the session state.
func (st *Store) Get(id string) (State, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	e, ok := st.items[id]
	if !ok || time.Now().After(e.expiresAt) {
		return State{}, ErrNotFound
	}
	return e.state, nil
}

// Put swaps in a new state for its ID and refreshes the TTL.
func (st *Store) Put(s State) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.items[s.ID]; !ok {
		return ErrNotFound
	}
	st.items[s.ID] = entry{state: s, expiresAt: time.Now().Add(st.ttl)}
	return nil
}

// Sweep drops expired sessions and reports how many were removed.
func (st *Store) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, e := range st.items {
		if now.After(e.expiresAt) {
			delete(st.items, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.items)
}
