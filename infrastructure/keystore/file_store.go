package keystore

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"labbot/application"
)

// FileStore keeps the pre-shared key base64-encoded in a single file.
// Writes go through an atomic rename so a crash mid-save can never leave
// a torn key on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) application.KeyStore {
	return &FileStore{
		path: path,
	}
}

func (s *FileStore) Load() ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read key file %s: %w", s.path, err)
	}

	key, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(raw)))
	if err != nil {
		return nil, fmt.Errorf("decode key file %s: %w", s.path, err)
	}
	return key, nil
}

func (s *FileStore) Save(key []byte) error {
	encoded := base64.StdEncoding.EncodeToString(key)
	if err := atomic.WriteFile(s.path, bytes.NewReader([]byte(encoded))); err != nil {
		return fmt.Errorf("write key file %s: %w", s.path, err)
	}
	return nil
}
