package control

import "errors"

var (
	// ErrUnknownKind means the caller passed a request kind outside the
	// wire mapping. This is a programmer error, not a peer failure.
	ErrUnknownKind = errors.New("unknown request kind")
	// ErrBadStatus means an open/close response did not carry the
	// all-good sentinel.
	ErrBadStatus = errors.New("bad status in response")
	// ErrBadAck means a keygen response did not carry the keygen-ack
	// sentinel.
	ErrBadAck = errors.New("bad ack in keygen response")
	// ErrStaleResponse means a keygen response timestamp fell outside the
	// freshness window. Possible replay; the caller must not retry blindly.
	ErrStaleResponse = errors.New("stale keygen response")
)
