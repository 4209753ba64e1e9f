package settings

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	DefaultHost          = "127.0.0.1"
	DefaultPort          = 8080
	DefaultKeyFilePath   = "./psk.b64"
	DefaultLogFilePath   = "./client.log"
	DefaultCAFilePath    = "./pinned.pem"
	DefaultMaxAgeSeconds = 10
	DefaultDialTimeoutMs = 10_000
	DefaultMaxLogEntries = 1024
)

// Settings describes one controller endpoint and the client-side policy
// around it. Insecure disables certificate verification and is only meant
// for loopback testing; strict mode pins the CA in CAFilePath.
type Settings struct {
	Host          string `json:"Host"`
	Port          int    `json:"Port"`
	KeyFilePath   string `json:"KeyFilePath"`
	LogFilePath   string `json:"LogFilePath"`
	CAFilePath    string `json:"CAFilePath"`
	Insecure      bool   `json:"Insecure"`
	MaxAgeSeconds int    `json:"MaxAgeSeconds"`
	DialTimeoutMs int    `json:"DialTimeoutMs"`
	MaxLogEntries int    `json:"MaxLogEntries"`
}

// Default returns the out-of-the-box settings: loopback controller,
// certificate verification off (loopback is the debug case), and the
// standard freshness window.
func Default() Settings {
	s := Settings{
		Host:          DefaultHost,
		Port:          DefaultPort,
		KeyFilePath:   DefaultKeyFilePath,
		LogFilePath:   DefaultLogFilePath,
		CAFilePath:    DefaultCAFilePath,
		MaxAgeSeconds: DefaultMaxAgeSeconds,
		DialTimeoutMs: DefaultDialTimeoutMs,
		MaxLogEntries: DefaultMaxLogEntries,
	}
	s.Insecure = s.HostIsLoopback()
	return s
}

func (s Settings) Validate() error {
	if s.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("port %d out of range", s.Port)
	}
	if s.KeyFilePath == "" {
		return fmt.Errorf("key file path must not be empty")
	}
	if s.MaxAgeSeconds < 0 {
		return fmt.Errorf("max age must not be negative")
	}
	if !s.Insecure && s.CAFilePath == "" {
		return fmt.Errorf("CA file path required when certificate verification is on")
	}
	return nil
}

// Address returns the controller endpoint in host:port form.
func (s Settings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// MaxAge is the response freshness window.
func (s Settings) MaxAge() time.Duration {
	return time.Duration(s.MaxAgeSeconds) * time.Second
}

func (s Settings) DialTimeout() time.Duration {
	return time.Duration(s.DialTimeoutMs) * time.Millisecond
}

// HostIsLoopback reports whether the controller host resolves trivially to
// a loopback endpoint, which is the only case where Insecure makes sense.
func (s Settings) HostIsLoopback() bool {
	if s.Host == "localhost" {
		return true
	}
	ip := net.ParseIP(s.Host)
	return ip != nil && ip.IsLoopback()
}
