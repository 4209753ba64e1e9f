package control

import (
	"fmt"
	"io"
	"time"

	"github.com/benbjohnson/clock"

	"labbot/application"
	"labbot/domain/request"
	"labbot/infrastructure/cryptography/hmac"
	"labbot/infrastructure/session"
	"labbot/infrastructure/wire"
)

// Wire protocol constants. Flags, sentinels and widths are fixed for the
// whole protocol; the controller rejects anything else.
const (
	flagOpenRequest   byte = 0xFF
	flagCloseRequest  byte = 0x00
	flagKeygenRequest byte = 0xAA
	flagAllGood       byte = 0xFF
	flagKeygenAck     byte = 0x55

	timestampLength = 8
	macLength       = hmac.Size

	// RequestLength is flag || timestamp || mac.
	RequestLength = 1 + timestampLength + macLength

	// DefaultMaxAge is the response freshness window. The bound is
	// inclusive: a response exactly this old is still accepted.
	DefaultMaxAge = 10 * time.Second
)

// Outcome reports what a validated exchange achieved.
type Outcome int

const (
	// OutcomeToggled means an open/close request was acknowledged.
	OutcomeToggled Outcome = iota
	// OutcomeNewKey means a keygen exchange produced a validated key.
	OutcomeNewKey
)

// Result carries the outcome of one exchange. NewKey is set only for
// OutcomeNewKey and is already fully validated; persisting it is the
// caller's job.
type Result struct {
	Outcome Outcome
	NewKey  []byte
}

// Engine builds authenticated requests and validates controller responses.
// It holds no per-exchange state; each call runs one request/response
// round trip to completion. Key material is passed in per call so a
// rotation between calls never races an exchange in flight.
type Engine struct {
	macs   application.MACFactory
	clock  clock.Clock
	maxAge time.Duration
}

func NewEngine(macs application.MACFactory, clk clock.Clock) *Engine {
	return NewEngineWithMaxAge(macs, clk, DefaultMaxAge)
}

func NewEngineWithMaxAge(macs application.MACFactory, clk clock.Clock, maxAge time.Duration) *Engine {
	return &Engine{
		macs:   macs,
		clock:  clk,
		maxAge: maxAge,
	}
}

func flagFor(kind request.Kind) (byte, error) {
	switch kind {
	case request.Open:
		return flagOpenRequest, nil
	case request.Close:
		return flagCloseRequest, nil
	case request.KeyRotation:
		return flagKeygenRequest, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// BuildRequest produces the 41-byte authenticated request
// flag || timestamp || HMAC-SHA256(key, flag||timestamp).
// The MAC covers everything before it, so the controller can verify both
// the request type and the timestamp under the shared key. Deterministic
// for identical inputs.
func (e *Engine) BuildRequest(kind request.Kind, key []byte, now int64) ([]byte, error) {
	flag, err := flagFor(kind)
	if err != nil {
		return nil, err
	}

	timestamp, err := wire.EncodeSigned(now, timestampLength)
	if err != nil {
		return nil, fmt.Errorf("encode timestamp: %w", err)
	}

	message := make([]byte, 0, RequestLength)
	message = append(message, flag)
	message = append(message, timestamp...)

	mac, err := e.macs.FromKey(key).Generate(message)
	if err != nil {
		return nil, fmt.Errorf("compute request mac: %w", err)
	}

	return append(message, mac...), nil
}

// SendAndValidate runs one authenticated exchange over transport: build,
// one logical send, then a response read shaped by the request kind.
// It never retries and never reports success unless every validation step
// passed.
func (e *Engine) SendAndValidate(kind request.Kind, transport application.Transport, key []byte) (Result, error) {
	message, err := e.BuildRequest(kind, key, e.clock.Now().Unix())
	if err != nil {
		return Result{}, err
	}

	if _, err := transport.Write(message); err != nil {
		return Result{}, fmt.Errorf("send %s request: %w", kind, err)
	}

	if kind == request.KeyRotation {
		return e.readKeygenResponse(transport)
	}
	return e.readStatusResponse(transport)
}

func (e *Engine) readStatusResponse(transport application.Transport) (Result, error) {
	var status [1]byte
	if _, err := io.ReadFull(transport, status[:]); err != nil {
		return Result{}, fmt.Errorf("read status: %w", err)
	}
	if status[0] != flagAllGood {
		return Result{}, fmt.Errorf("%w: 0x%02X", ErrBadStatus, status[0])
	}
	return Result{Outcome: OutcomeToggled}, nil
}

func (e *Engine) readKeygenResponse(transport application.Transport) (Result, error) {
	var ack [1]byte
	if _, err := io.ReadFull(transport, ack[:]); err != nil {
		return Result{}, fmt.Errorf("read keygen ack: %w", err)
	}
	if ack[0] != flagKeygenAck {
		return Result{}, fmt.Errorf("%w: 0x%02X", ErrBadAck, ack[0])
	}

	timestamp := make([]byte, timestampLength)
	if _, err := io.ReadFull(transport, timestamp); err != nil {
		return Result{}, fmt.Errorf("read keygen timestamp: %w", err)
	}
	sentAt, err := wire.DecodeSigned(timestamp)
	if err != nil {
		return Result{}, fmt.Errorf("decode keygen timestamp: %w", err)
	}
	if age := e.clock.Now().Unix() - sentAt; age > int64(e.maxAge/time.Second) {
		return Result{}, fmt.Errorf("%w: %ds old, window %s", ErrStaleResponse, age, e.maxAge)
	}

	newKey := make([]byte, session.KeySize)
	if _, err := io.ReadFull(transport, newKey); err != nil {
		return Result{}, fmt.Errorf("read new key: %w", err)
	}

	return Result{Outcome: OutcomeNewKey, NewKey: newKey}, nil
}
