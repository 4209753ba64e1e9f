package presentation

import (
	"fmt"

	"github.com/benbjohnson/clock"

	"labbot/infrastructure/control"
	"labbot/infrastructure/cryptography/hmac"
	"labbot/infrastructure/keystore"
	"labbot/infrastructure/logging"
	"labbot/infrastructure/network"
	"labbot/infrastructure/session"
	"labbot/settings/client_configuration"
)

type ClientAppDependencies interface {
	Initialize() error
	Configuration() client_configuration.Configuration
	Client() *control.Client
	Teardown()
}

type ClientDependencies struct {
	cfgManager client_configuration.ClientConfigurationManager
	conf       client_configuration.Configuration
	client     *control.Client
	logger     *logging.FileLogger
}

func NewClientDependencies(cfgManager client_configuration.ClientConfigurationManager) ClientAppDependencies {
	return &ClientDependencies{cfgManager: cfgManager}
}

func (c *ClientDependencies) Initialize() error {
	conf, err := c.cfgManager.Configuration()
	if err != nil {
		return fmt.Errorf("failed to read client configuration: %w", err)
	}

	logger, err := logging.NewFileLogger(conf.Control.LogFilePath, conf.Control.MaxLogEntries)
	if err != nil {
		return fmt.Errorf("failed to open client log: %w", err)
	}

	keys, err := session.NewHolder(keystore.NewFileStore(conf.Control.KeyFilePath))
	if err != nil {
		_ = logger.Close()
		return fmt.Errorf("failed to load pre-shared key: %w", err)
	}

	engine := control.NewEngineWithMaxAge(hmac.NewFactory(), clock.New(), conf.Control.MaxAge())
	connection := network.NewTLSConnection(conf.Control)

	c.conf = *conf
	c.logger = logger
	c.client = control.NewClient(connection, engine, keys, logger)
	return nil
}

func (c *ClientDependencies) Configuration() client_configuration.Configuration {
	return c.conf
}

func (c *ClientDependencies) Client() *control.Client {
	return c.client
}

func (c *ClientDependencies) Teardown() {
	if c.logger != nil {
		_ = c.logger.Close()
	}
}
