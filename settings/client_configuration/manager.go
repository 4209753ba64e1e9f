package client_configuration

import (
	"fmt"
	"os"
)

type ClientConfigurationManager interface {
	Configuration() (*Configuration, error)
}

type Manager struct {
	resolver resolver
}

func NewManager() ClientConfigurationManager {
	return &Manager{
		resolver: newClientResolver(),
	}
}

// Configuration reads the client configuration, creating it with defaults
// on first run so a fresh checkout works against a loopback controller.
func (m *Manager) Configuration() (*Configuration, error) {
	path, pathErr := m.resolver.resolve()
	if pathErr != nil {
		return nil, pathErr
	}

	if _, statErr := os.Stat(path); statErr != nil {
		if !os.IsNotExist(statErr) {
			return nil, statErr
		}
		configuration := defaultConfiguration()
		if writeErr := newWriter(path).write(configuration); writeErr != nil {
			return nil, writeErr
		}
		return &configuration, nil
	}

	configuration, readErr := newReader(path).read()
	if readErr != nil {
		return nil, readErr
	}
	if validateErr := configuration.Control.Validate(); validateErr != nil {
		return nil, fmt.Errorf("configuration file (%s): %w", path, validateErr)
	}
	return configuration, nil
}
