package order

import (
	"sync"
	"testing"
)

func TestStoreGetOrCreate(t *testing.T) {
	st := NewStore()

	a := st.GetOrCreate(1)
	if a.State != StateInitial {
		t.Fatalf("new session state = %s, want %s", a.State, StateInitial)
	}
	if a.CustomerID != 1 {
		t.Fatalf("customer id = %d", a.CustomerID)
	}
	if again := st.GetOrCreate(1); again != a {
		t.Fatal("GetOrCreate must return the same session for the same customer")
	}
	if other := st.GetOrCreate(2); other == a {
		t.Fatal("distinct customers must get distinct sessions")
	}
	if st.Len() != 2 {
		t.Fatalf("store len = %d, want 2", st.Len())
	}
}

func TestStoreConcurrentGetOrCreate(t *testing.T) {
	st := NewStore()

	const workers = 32
	results := make([]*Session, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = st.GetOrCreate(99)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent GetOrCreate returned different sessions for one customer")
		}
	}
	if st.Len() != 1 {
		t.Fatalf("store len = %d, want 1", st.Len())
	}
}

func TestConcurrentStepsForOneCustomerSerialize(t *testing.T) {
	e := newTestEngine()
	st := NewStore()
	s := st.GetOrCreate(5)

	s.Lock()
	e.Step(s, "oi")
	s.Unlock()

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.Lock()
			defer s.Unlock()
			if s.State == StateBrowsing {
				e.Step(s, "1")
			} else {
				e.Step(s, "1") // "add more" from the options menu
			}
		}()
	}
	wg.Wait()

	// Every pair of steps adds exactly one item; n steps alternate between
	// selecting and re-opening the menu, so the cart holds n/2 lines.
	if len(s.Cart) != n/2 {
		t.Fatalf("cart has %d lines, want %d", len(s.Cart), n/2)
	}
}
