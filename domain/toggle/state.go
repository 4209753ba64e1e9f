package toggle

import "labbot/domain/request"

// State is the last state the lab is known to be in. It is owned by the
// display loop; the request protocol itself is stateless between calls.
type State int

const (
	Closed State = iota
	Open
)

// Toggled returns the state after a successful toggle request.
func (s State) Toggled() State {
	if s == Closed {
		return Open
	}
	return Closed
}

// NextRequest returns the request kind that moves the lab out of this state.
func (s State) NextRequest() request.Kind {
	if s == Closed {
		return request.Open
	}
	return request.Close
}

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}
