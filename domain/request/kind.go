package request

// Kind identifies one of the three request types the controller understands.
type Kind int

const (
	Unknown Kind = iota
	// Open asks the controller to open the lab
	Open
	// Close asks the controller to close the lab
	Close
	// KeyRotation asks the controller for a fresh pre-shared key
	KeyRotation
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Close:
		return "close"
	case KeyRotation:
		return "keygen"
	default:
		return "unknown"
	}
}
