package bus

import (
	"errors"
	"testing"

	"main/pkg/exception"
)

type record struct {
	key   string
	value int
}

func newTestService() *Service[string, record] {
	return New("test", func(r record) string { return r.key })
}

func TestGetMissingKey(t *testing.T) {
	s := newTestService()
	if _, err := s.Get("absent"); !errors.Is(err, exception.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestLastWriteWins(t *testing.T) {
	s := newTestService()
	if err := s.OnMessage(record{key: "a", value: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.OnMessage(record{key: "a", value: 2}); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if got.value != 2 {
		t.Fatalf("want latest value 2, got %d", got.value)
	}
	if s.Len() != 1 {
		t.Fatalf("want 1 key, got %d", s.Len())
	}
}

func TestFanOutOrder(t *testing.T) {
	s := newTestService()
	var calls []string
	for _, name := range []string{"L1", "L2", "L3"} {
		name := name
		s.AddListener(ListenerFunc[record](func(record) error {
			calls = append(calls, name)
			return nil
		}))
	}

	if err := s.OnMessage(record{key: "a", value: 1}); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 3 || calls[0] != "L1" || calls[1] != "L2" || calls[2] != "L3" {
		t.Fatalf("want [L1 L2 L3] each exactly once, got %v", calls)
	}
}

func TestListenerErrorAbortsFanOut(t *testing.T) {
	s := newTestService()
	boom := errors.New("boom")
	var after int
	s.AddListener(ListenerFunc[record](func(record) error { return boom }))
	s.AddListener(ListenerFunc[record](func(record) error {
		after++
		return nil
	}))

	err := s.OnMessage(record{key: "a", value: 1})
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped listener error, got %v", err)
	}
	if after != 0 {
		t.Fatalf("fan-out continued past failing listener")
	}
	// The value is stored before fan-out; the failed cascade does not
	// roll it back.
	if _, err := s.Get("a"); err != nil {
		t.Fatalf("value not stored: %v", err)
	}
}

func TestStoreSkipsListeners(t *testing.T) {
	s := newTestService()
	var calls int
	s.AddListener(ListenerFunc[record](func(record) error {
		calls++
		return nil
	}))

	s.Store(record{key: "seed", value: 7})
	if calls != 0 {
		t.Fatalf("Store must not fan out, got %d calls", calls)
	}
	if _, err := s.Get("seed"); err != nil {
		t.Fatal(err)
	}
}

func TestReentrantUpdate(t *testing.T) {
	// A listener that publishes a derived value back into the same
	// service must terminate: the cascade depth is bounded by the data,
	// mirroring the static acyclic service graph.
	s := newTestService()
	s.AddListener(ListenerFunc[record](func(r record) error {
		if r.value > 0 {
			return s.OnMessage(record{key: r.key + "x", value: r.value - 1})
		}
		return nil
	}))

	if err := s.OnMessage(record{key: "r", value: 3}); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 4 {
		t.Fatalf("want 4 cascaded keys, got %d", s.Len())
	}
}
