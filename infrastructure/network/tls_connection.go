package network

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"

	"labbot/application"
	"labbot/infrastructure/settings"
)

type Dialer interface {
	Dial(network, address string) (net.Conn, error)
}

// TLSConnection dials the controller and wraps the stream in TLS. One
// Establish call per request exchange; the controller closes its side
// after each reply.
type TLSConnection struct {
	settings settings.Settings
	dialer   Dialer
}

func NewTLSConnection(s settings.Settings) application.Connection {
	return &TLSConnection{
		settings: s,
		dialer:   &net.Dialer{Timeout: s.DialTimeout()},
	}
}

func NewTLSConnectionWithDialer(s settings.Settings, dialer Dialer) application.Connection {
	return &TLSConnection{
		settings: s,
		dialer:   dialer,
	}
}

func (c *TLSConnection) Establish() (application.Transport, error) {
	config, configErr := tlsConfig(c.settings)
	if configErr != nil {
		return nil, configErr
	}

	conn, dialErr := c.dialer.Dial("tcp", c.settings.Address())
	if dialErr != nil {
		return nil, fmt.Errorf("dial %s: %w", c.settings.Address(), dialErr)
	}

	tlsConn := tls.Client(conn, config)
	if handshakeErr := tlsConn.Handshake(); handshakeErr != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake with %s: %w", c.settings.Address(), handshakeErr)
	}

	return NewFullWriteAdapter(tlsConn), nil
}

// tlsConfig builds the channel policy: TLS 1.2 minimum with an AEAD-only
// cipher list. Strict mode pins the CA file and verifies the hostname;
// insecure mode skips verification entirely and is only for loopback
// testing.
func tlsConfig(s settings.Settings) (*tls.Config, error) {
	config := &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: s.Host,
		CipherSuites: []uint16{
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305,
		},
	}

	if s.Insecure {
		config.InsecureSkipVerify = true
		return config, nil
	}

	pem, readErr := os.ReadFile(s.CAFilePath)
	if readErr != nil {
		return nil, fmt.Errorf("read pinned CA %s: %w", s.CAFilePath, readErr)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", s.CAFilePath)
	}
	config.RootCAs = pool
	return config, nil
}
