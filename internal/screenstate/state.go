// Package screenstate models the lifecycle of one asynchronous operation as
// a small tagged union a view layer can render, plus a latest-value holder
// for delivering transitions to a subscriber.
package screenstate

// FallbackMessage is used when a failure carries no usable message text.
const FallbackMessage = "Network Error"

// Kind tags a State value.
type Kind int

const (
	KindIdle Kind = iota
	KindLoading
	KindSuccess
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindIdle:
		return "idle"
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is the tagged union Idle | Loading | Success(T) | Failure(message).
// The zero value is Idle.
type State[T any] struct {
	kind    Kind
	data    T
	message string
}

// Idle is the initial state before any operation starts.
func Idle[T any]() State[T] {
	return State[T]{kind: KindIdle}
}

// Loading marks an operation in flight. It carries no payload.
func Loading[T any]() State[T] {
	return State[T]{kind: KindLoading}
}

// Success carries the completed operation's payload.
func Success[T any](data T) State[T] {
	return State[T]{kind: KindSuccess, data: data}
}

// Failure carries a human-readable message. An empty message falls back to
// FallbackMessage so failures are never silent.
func Failure[T any](message string) State[T] {
	if message == "" {
		message = FallbackMessage
	}
	return State[T]{kind: KindFailure, message: message}
}

// Kind returns the state's tag.
func (s State[T]) Kind() Kind {
	return s.kind
}

// Data returns the payload when the state is Success.
func (s State[T]) Data() (T, bool) {
	if s.kind == KindSuccess {
		return s.data, true
	}
	var zero T
	return zero, false
}

// Err returns the failure message when the state is Failure.
func (s State[T]) Err() (string, bool) {
	if s.kind == KindFailure {
		return s.message, true
	}
	return "", false
}

// IsLoading reports whether an operation is in flight.
func (s State[T]) IsLoading() bool {
	return s.kind == KindLoading
}

// Equal compares by tag only: two Success states are equal regardless of
// payload, matching the view-diffing semantics consumers rely on.
func (s State[T]) Equal(other State[T]) bool {
	return s.kind == other.kind
}
