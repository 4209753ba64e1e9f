package control

import (
	"fmt"

	"labbot/application"
	"labbot/application/logging"
	"labbot/domain/request"
	"labbot/infrastructure/session"
)

// Client runs one authenticated exchange per call. It dials a fresh secure
// channel for every request, like the controller expects, and owns no
// retry policy: a failed exchange is reported, never repeated.
type Client struct {
	connection application.Connection
	engine     *Engine
	keys       *session.Holder
	logger     logging.Logger
}

func NewClient(
	connection application.Connection,
	engine *Engine,
	keys *session.Holder,
	logger logging.Logger,
) *Client {
	return &Client{
		connection: connection,
		engine:     engine,
		keys:       keys,
		logger:     logger,
	}
}

// Toggle sends an open or close request and reports whether the controller
// acknowledged it.
func (c *Client) Toggle(kind request.Kind) error {
	if kind != request.Open && kind != request.Close {
		return fmt.Errorf("%w: %s is not a toggle request", ErrUnknownKind, kind)
	}

	c.logger.Printf("client sent %s request", kind)
	if _, err := c.exchange(kind); err != nil {
		c.logger.Printf("%v during %s request", err, kind)
		return err
	}
	c.logger.Printf("%s request success", kind)
	return nil
}

// RotateKey runs one keygen exchange and, only after the response passed
// every validation step, persists and installs the new pre-shared key.
func (c *Client) RotateKey() error {
	kind := request.KeyRotation

	c.logger.Printf("client sent %s request", kind)
	result, err := c.exchange(kind)
	if err != nil {
		c.logger.Printf("%v during %s request", err, kind)
		return err
	}

	if err := c.keys.Rotate(result.NewKey); err != nil {
		c.logger.Printf("%v during %s request", err, kind)
		return fmt.Errorf("install new key: %w", err)
	}
	c.logger.Printf("%s request success", kind)
	return nil
}

func (c *Client) exchange(kind request.Kind) (Result, error) {
	transport, err := c.connection.Establish()
	if err != nil {
		return Result{}, fmt.Errorf("establish secure channel: %w", err)
	}
	defer func() {
		_ = transport.Close()
	}()

	return c.engine.SendAndValidate(kind, transport, c.keys.Key())
}
