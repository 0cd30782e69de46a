package screenstate

import "sync"

// Holder is a single-slot latest-value broadcast of State transitions.
// A subscriber who attaches after a transition immediately receives the
// current state, not historical transitions; a slow subscriber is lapped and
// sees only the most recent value.
type Holder[T any] struct {
	mu      sync.Mutex
	current State[T]
	subs    map[int]chan State[T]
	nextID  int
}

// NewHolder constructs a Holder starting in Idle.
func NewHolder[T any]() *Holder[T] {
	return &Holder[T]{
		current: Idle[T](),
		subs:    make(map[int]chan State[T]),
	}
}

// Current returns the last published state.
func (h *Holder[T]) Current() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Set publishes a new state to every subscriber. No transition is rejected.
func (h *Holder[T]) Set(state State[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = state
	for _, ch := range h.subs {
		deliver(ch, state)
	}
}

// Subscribe returns a channel that yields the current state immediately and
// every subsequent transition, plus a cancel func that must be called to
// release the subscription.
func (h *Holder[T]) Subscribe() (<-chan State[T], func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan State[T], 1)
	ch <- h.current
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// deliver replaces any undelivered value so the channel always holds the
// latest state. Set is the only sender, so the post-drain send cannot block.
func deliver[T any](ch chan State[T], state State[T]) {
	select {
	case ch <- state:
	default:
		select {
		case <-ch:
		default:
		}
		ch <- state
	}
}
