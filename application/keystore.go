package application

// KeyStore persists the pre-shared key between runs.
type KeyStore interface {
	Load() ([]byte, error)
	Save(key []byte) error
}
