// Package accordion implements single-open accordion state.
//
// The state is either closed or open on exactly one item. It is carried
// between requests as the id of the open item, so the zero value is closed.
package accordion

// State is the accordion state. The zero value is closed.
type State struct {
	open string
}

// Closed returns the initial state.
func Closed() State { return State{} }

// Open returns a state with id expanded. An empty id is closed.
func Open(id string) State { return State{open: id} }

// Parse returns the state for a requested id, keeping it only when it is one
// of the known ids. Anything else yields closed.
func Parse(raw string, known []string) State {
	for _, id := range known {
		if raw != "" && raw == id {
			return Open(id)
		}
	}
	return Closed()
}

// Select applies a selection: the open item closes when selected again,
// any other item replaces it.
func (s State) Select(id string) State {
	if id == "" || s.open == id {
		return Closed()
	}
	return Open(id)
}

// IsOpen reports whether id is the expanded item.
func (s State) IsOpen(id string) bool {
	return id != "" && s.open == id
}

// IsClosed reports whether no item is expanded.
func (s State) IsClosed() bool { return s.open == "" }

// OpenID returns the expanded item id, or "" when closed.
func (s State) OpenID() string { return s.open }
