package order

import "sync"

// State identifies a step of the ordering conversation.
type State string

const (
	// StateInitial means no conversation is in progress; any text shows the menu.
	StateInitial State = "initial"
	// StateBrowsing expects an item id from the menu.
	StateBrowsing State = "browsing"
	// StateItemChosen expects one of the numbered post-selection options.
	StateItemChosen State = "item_chosen"
	// StateAwaitingAddress expects the delivery address text.
	StateAwaitingAddress State = "awaiting_address"
	// StateAwaitingPayment expects a payment method selection.
	StateAwaitingPayment State = "awaiting_payment"
	// StateAwaitingChange expects the cash change amount (or "não").
	StateAwaitingChange State = "awaiting_change"
)

// Session is the per-customer ordering progress. Access is serialized through
// the embedded mutex: the event loop locks a session for the duration of a
// step, so concurrent messages from the same customer apply in arrival order
// while distinct customers proceed independently.
type Session struct {
	mu sync.Mutex

	CustomerID int64
	State      State
	Cart       []Item
	Address    string
	Payment    string
	Change     string
}

// Lock acquires the per-session mutex.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the per-session mutex.
func (s *Session) Unlock() { s.mu.Unlock() }

// reset clears all order progress and returns the session to the initial state.
func (s *Session) reset() {
	s.State = StateInitial
	s.Cart = nil
	s.Address = ""
	s.Payment = ""
	s.Change = ""
}

// Store maps customer ids to their in-progress sessions. It is safe for
// concurrent use; sessions live for the process lifetime.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewStore constructs an empty in-memory session store.
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// GetOrCreate returns the session for a customer, creating an initial one if
// none exists. At most one session per customer is ever held.
func (st *Store) GetOrCreate(customerID int64) *Session {
	st.mu.RLock()
	s, ok := st.sessions[customerID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok = st.sessions[customerID]; ok {
		return s
	}
	s = &Session{CustomerID: customerID, State: StateInitial}
	st.sessions[customerID] = s
	return s
}

// Len reports the number of known sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
