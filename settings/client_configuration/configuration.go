package client_configuration

import "labbot/infrastructure/settings"

type Configuration struct {
	Control settings.Settings `json:"Control"`
}

func defaultConfiguration() Configuration {
	return Configuration{
		Control: settings.Default(),
	}
}
