package application

// Transport provides a single and trivial API for the secure channel
type Transport interface {
	Write([]byte) (int, error)
	Read([]byte) (int, error)
	Close() error
}

// Connection establishes one secure channel per request exchange
type Connection interface {
	Establish() (Transport, error)
}
