package client_configuration

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/natefinch/atomic"
)

type writer struct {
	path string
}

func newWriter(path string) *writer {
	return &writer{
		path: path,
	}
}

func (w *writer) write(configuration Configuration) error {
	serialized, serializationErr := json.MarshalIndent(configuration, "", "\t")
	if serializationErr != nil {
		return serializationErr
	}

	if writeErr := atomic.WriteFile(w.path, bytes.NewReader(serialized)); writeErr != nil {
		return fmt.Errorf("configuration file (%s) is unwritable: %w", w.path, writeErr)
	}
	return nil
}
