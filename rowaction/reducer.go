// Package rowaction models which row of a list screen is selected for an
// add, edit or delete popup.
package rowaction

// Action tags a row-action state and the events that drive it.
type Action string

const (
	Edit   Action = "edit"
	Add    Action = "add"
	Delete Action = "delete"
	Close  Action = "close"
)

// State is the popup state of one list screen.
type State[T any] struct {
	Action  Action `json:"action"`
	Open    bool   `json:"open"`
	Payload T      `json:"payload,omitempty"`
}

// Event is dispatched into Reduce.
type Event[T any] struct {
	Type    Action `json:"type"`
	Payload T      `json:"payload,omitempty"`
}

// Merger is implemented by payloads that accumulate fields across edits.
type Merger[T any] interface {
	Merge(next T) T
}

// Initial returns the closed state every screen starts from.
func Initial[T any]() State[T] {
	return State[T]{Action: Close}
}

// Reduce returns the state that follows s after e. It is total: unknown
// event types leave s unchanged.
func Reduce[T any](s State[T], e Event[T]) State[T] {
	switch e.Type {
	case Edit, Delete:
		return State[T]{Action: e.Type, Open: true, Payload: mergePayload(s.Payload, e.Payload)}
	case Add:
		s.Action = Add
		s.Open = true
		return s
	case Close:
		return Initial[T]()
	}
	return s
}

func mergePayload[T any](prior, next T) T {
	if m, ok := any(prior).(Merger[T]); ok {
		return m.Merge(next)
	}
	return next
}

// Fields is a row payload keyed by column name. Merging keeps prior
// fields that the next payload does not set.
type Fields map[string]any

func (f Fields) Merge(next Fields) Fields {
	out := make(Fields, len(f)+len(next))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range next {
		out[k] = v
	}
	return out
}

// Machine holds the state of one screen. It is not safe for concurrent use;
// a screen owns its machine.
type Machine[T any] struct {
	state State[T]
}

// NewMachine resumes a screen from s, usually a stored state or Initial.
func NewMachine[T any](s State[T]) *Machine[T] {
	return &Machine[T]{state: s}
}

// Dispatch applies e and returns the new state.
func (m *Machine[T]) Dispatch(e Event[T]) State[T] {
	m.state = Reduce(m.state, e)
	return m.state
}

func (m *Machine[T]) State() State[T] { return m.state }
