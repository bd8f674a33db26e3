package session

import (
	"errors"
	"testing"
	"time"
)

func TestStoreCreateGet(t *testing.T) {
	st := NewStore(time.Minute)

	s := st.Create()
	if s.ID == "" {
		t.Fatal("empty session ID")
	}

	got, err := st.Get(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != s.ID {
		t.Errorf("got ID %s, want %s", got.ID, s.ID)
	}

	if _, err := st.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown ID: err = %v, want ErrNotFound", err)
	}
}

func TestStorePut(t *testing.T) {
	st := NewStore(time.Minute)
	s := st.Create()

	s.Symbol = "AAPL"
	if err := st.Put(s); err != nil {
		t.Fatal(err)
	}

	got, err := st.Get(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Symbol != "AAPL" {
		t.Errorf("symbol %q after put, want AAPL", got.Symbol)
	}

	if err := st.Put(State{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("put unknown ID: err = %v, want ErrNotFound", err)
	}
}

func TestStoreExpiry(t *testing.T) {
	st := NewStore(10 * time.Millisecond)
	s := st.Create()

	time.Sleep(25 * time.Millisecond)

	if _, err := st.Get(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired session: err = %v, want ErrNotFound", err)
	}

	if removed := st.Sweep(); removed != 1 {
		t.Errorf("sweep removed %d, want 1", removed)
	}
	if st.Len() != 0 {
		t.Errorf("len %d after sweep, want 0", st.Len())
	}
}

func TestStoreDefaultTTL(t *testing.T) {
	st := NewStore(0)
	if st.ttl != DefaultTTL {
		t.Errorf("ttl %v, want %v", st.ttl, DefaultTTL)
	}
}
