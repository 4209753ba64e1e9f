package application

type MAC interface {
	// Generate computes the authentication tag for data
	Generate(data []byte) ([]byte, error)
	// Verify checks that signature is the tag for data
	Verify(data, signature []byte) error
}

type MACFactory interface {
	FromKey(key []byte) MAC
}
