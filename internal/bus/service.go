package bus

import (
	"github.com/yanun0323/errors"

	"main/pkg/exception"
)

// Listener receives fan-out callbacks from a Service.
//
// A non-nil error aborts the triggering update: the owning Service stops
// invoking further listeners and returns the error to its caller.
type Listener[V any] interface {
	ProcessAdd(V) error
}

// ListenerFunc adapts a plain function into a Listener.
type ListenerFunc[V any] func(V) error

func (f ListenerFunc[V]) ProcessAdd(v V) error {
	return f(v)
}

// Connector is a one-way adapter between a Service and the outside world.
// Subscribe pulls a batch of external records, translates each into a
// domain value, and pushes it into the service one record at a time.
// Publish forwards a value to an external sink.
//
// Implementations carry only one direction; the other method is a no-op.
type Connector[V any] interface {
	Subscribe() error
	Publish(V) error
}

// Service is a keyed in-memory store with synchronous listener fan-out.
//
// The key of a value is derived by the keyOf function supplied at
// construction. A second write to the same key overwrites the previous
// value (last-write-wins, deliberately). All fan-out happens on the
// caller's stack in listener registration order; there are no queues,
// timers, or goroutines here. Only the owning component may publish into
// a service; listeners read published values and must not mutate them.
type Service[K comparable, V any] struct {
	name      string
	keyOf     func(V) K
	data      map[K]V
	listeners []Listener[V]
}

// New creates an empty service. The name shows up in error context only.
func New[K comparable, V any](name string, keyOf func(V) K) *Service[K, V] {
	return &Service[K, V]{
		name:  name,
		keyOf: keyOf,
		data:  make(map[K]V),
	}
}

// Get returns the latest value stored under key.
func (s *Service[K, V]) Get(key K) (V, error) {
	v, ok := s.data[key]
	if !ok {
		return v, errors.Wrapf(exception.ErrNotFound, "%s service", s.name).With("key", key)
	}
	return v, nil
}

// OnMessage stores v under its derived key and invokes ProcessAdd on every
// registered listener in registration order. The first listener error
// aborts the remaining fan-out and is returned to the caller.
func (s *Service[K, V]) OnMessage(v V) error {
	s.data[s.keyOf(v)] = v
	for _, l := range s.listeners {
		if err := l.ProcessAdd(v); err != nil {
			return errors.Wrapf(err, "%s service fan-out", s.name)
		}
	}
	return nil
}

// Store saves v under its derived key without notifying listeners.
// Used for seeding state before the listener graph is live.
func (s *Service[K, V]) Store(v V) {
	s.data[s.keyOf(v)] = v
}

// AddListener appends a listener. There is no de-duplication and no
// removal; the graph is wired once at composition time.
func (s *Service[K, V]) AddListener(l Listener[V]) {
	s.listeners = append(s.listeners, l)
}

// Listeners returns the registered listeners in registration order.
func (s *Service[K, V]) Listeners() []Listener[V] {
	return s.listeners
}

// Len returns the number of stored keys.
func (s *Service[K, V]) Len() int {
	return len(s.data)
}
