package loadable

import (
	"encoding/json"
	"fmt"
)

// State identifies which variant a Loadable currently holds.
type State int

const (
	// StateLoading marks a fetch that has not resolved yet.
	StateLoading State = iota
	// StateReady marks a fetch that resolved with a value.
	StateReady
	// StateErr marks a fetch that resolved with an error payload.
	StateErr
)

// Loadable is the tri-state outcome of an asynchronous fetch owned by an
// external layer: Loading, Ready with a value, or Err with an opaque
// upstream error payload. The zero value is Loading.
type Loadable[T any] struct {
	state State
	value T
	err   error
}

// Loading returns a Loadable in the Loading state.
func Loading[T any]() Loadable[T] {
	return Loadable[T]{state: StateLoading}
}

// Ready returns a Loadable holding a resolved value.
func Ready[T any](value T) Loadable[T] {
	return Loadable[T]{state: StateReady, value: value}
}

// Err returns a Loadable holding an upstream error payload. The payload is
// carried by reference and never inspected by this layer.
func Err[T any](err error) Loadable[T] {
	return Loadable[T]{state: StateErr, err: err}
}

// State reports the current variant.
func (l Loadable[T]) State() State {
	return l.state
}

// IsLoading reports whether the fetch has not resolved yet.
func (l Loadable[T]) IsLoading() bool {
	return l.state == StateLoading
}

// IsReady reports whether the fetch resolved with a value.
func (l Loadable[T]) IsReady() bool {
	return l.state == StateReady
}

// IsErr reports whether the fetch resolved with an error payload.
func (l Loadable[T]) IsErr() bool {
	return l.state == StateErr
}

// Value returns the resolved value and whether one is present.
func (l Loadable[T]) Value() (T, bool) {
	return l.value, l.state == StateReady
}

// Error returns the error payload for the Err state, nil otherwise.
func (l Loadable[T]) Error() error {
	if l.state != StateErr {
		return nil
	}
	return l.err
}

// Map converts a Loadable's value through fn, preserving Loading and Err
// states untouched.
func Map[T, U any](l Loadable[T], fn func(T) U) Loadable[U] {
	switch l.state {
	case StateReady:
		return Ready(fn(l.value))
	case StateErr:
		return Err[U](l.err)
	case StateLoading:
		return Loading[U]()
	default:
		panic(fmt.Sprintf("loadable: unknown state %d", l.state))
	}
}

// UnmarshalJSON decodes the tagged form produced by MarshalJSON. Error
// payloads are wrapped in a PayloadError so they pass through opaquely.
func (l *Loadable[T]) UnmarshalJSON(data []byte) error {
	var cell struct {
		Type    string          `json:"type"`
		Content json.RawMessage `json:"content"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &cell); err != nil {
		return err
	}
	switch cell.Type {
	case "", "Loading":
		*l = Loading[T]()
	case "Ready":
		var value T
		if len(cell.Content) > 0 {
			if err := json.Unmarshal(cell.Content, &value); err != nil {
				return err
			}
		}
		*l = Ready(value)
	case "Err":
		*l = Err[T](&PayloadError{Raw: cell.Error})
	default:
		return fmt.Errorf("loadable: unknown state %q", cell.Type)
	}
	return nil
}

// PayloadError carries an upstream error payload decoded from a snapshot.
// The raw form is preserved so the payload round-trips untouched.
type PayloadError struct {
	Raw json.RawMessage
}

func (e *PayloadError) Error() string {
	if len(e.Raw) == 0 {
		return "upstream error"
	}
	return string(e.Raw)
}

// MarshalJSON emits the payload exactly as it was received.
func (e *PayloadError) MarshalJSON() ([]byte, error) {
	if len(e.Raw) == 0 {
		return []byte("null"), nil
	}
	return e.Raw, nil
}

// MarshalJSON encodes the Loadable in the tagged form consumers expect:
// {"type":"Ready","content":…}, {"type":"Loading"} or
// {"type":"Err","error":…}.
func (l Loadable[T]) MarshalJSON() ([]byte, error) {
	switch l.state {
	case StateReady:
		return json.Marshal(struct {
			Type    string `json:"type"`
			Content T      `json:"content"`
		}{Type: "Ready", Content: l.value})
	case StateErr:
		return json.Marshal(struct {
			Type  string `json:"type"`
			Error error  `json:"error"`
		}{Type: "Err", Error: l.err})
	case StateLoading:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{Type: "Loading"})
	default:
		panic(fmt.Sprintf("loadable: unknown state %d", l.state))
	}
}
