package client_configuration

import (
	"encoding/json"
	"fmt"
	"os"
)

type reader struct {
	path string
}

func newReader(path string) *reader {
	return &reader{
		path: path,
	}
}

func (r *reader) read() (*Configuration, error) {
	fileBytes, readFileErr := os.ReadFile(r.path)
	if readFileErr != nil {
		return nil, fmt.Errorf("configuration file (%s) is unreadable: %w", r.path, readFileErr)
	}

	var configuration Configuration
	deserializationErr := json.Unmarshal(fileBytes, &configuration)
	if deserializationErr != nil {
		return nil, fmt.Errorf("configuration file (%s) is invalid: %w", r.path, deserializationErr)
	}

	return &configuration, nil
}
