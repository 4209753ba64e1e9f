package session

import (
	"fmt"
	"sync"

	"labbot/application"
)

// KeySize is the pre-shared key length after rotation.
const KeySize = 32

// Holder owns the in-memory pre-shared key. Reads may happen from any
// goroutine; Rotate is the single writer. The key is persisted before the
// in-memory swap, so a failed save leaves the old key fully intact and a
// rotation is never observable half-applied.
type Holder struct {
	mu    sync.RWMutex
	store application.KeyStore
	key   []byte
}

// NewHolder loads the current pre-shared key from store.
func NewHolder(store application.KeyStore) (*Holder, error) {
	key, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load pre-shared key: %w", err)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("key store returned an empty key")
	}
	return &Holder{
		store: store,
		key:   append([]byte(nil), key...),
	}, nil
}

// Key returns a copy of the current pre-shared key.
func (h *Holder) Key() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]byte(nil), h.key...)
}

// Rotate persists newKey and then swaps it in. newKey must be a fully
// validated keygen payload of exactly KeySize bytes.
func (h *Holder) Rotate(newKey []byte) error {
	if len(newKey) != KeySize {
		return fmt.Errorf("new key must be %d bytes, got %d", KeySize, len(newKey))
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Save(newKey); err != nil {
		return fmt.Errorf("persist new key: %w", err)
	}
	h.key = append([]byte(nil), newKey...)
	return nil
}
