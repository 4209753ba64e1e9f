package client_configuration

import (
	"os"
)

// EnvConfigPath overrides the configuration file location when set.
const EnvConfigPath = "LABBOT_CONFIG"

const defaultConfigPath = "./labbot_configuration.json"

type resolver interface {
	resolve() (string, error)
}

type clientResolver struct {
}

func newClientResolver() clientResolver {
	return clientResolver{}
}

func (r clientResolver) resolve() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	return defaultConfigPath, nil
}
