package hmac

import (
	"crypto/hmac"
	"crypto/sha256"

	"labbot/application"
)

// Size is the tag length produced by Generate.
const Size = sha256.Size

// CryptoHMAC - concurrently unsafe implementation of application.MAC based on crypto/sha256 and crypto/hmac.
type CryptoHMAC struct {
	secret []byte
	// ioBuf is reused between calls to avoid allocating a tag per request.
	// NOTE: each Generate or Verify call rewrites ioBuf
	ioBuf [sha256.Size]byte
}

func NewHMAC(secret []byte) application.MAC {
	return &CryptoHMAC{
		secret: secret,
	}
}

// Generate computes the HMAC-SHA256 tag for data.
// NOTE: the returned slice aliases internal state and is only valid until the next Generate or Verify call.
func (d *CryptoHMAC) Generate(data []byte) ([]byte, error) {
	mac := hmac.New(sha256.New, d.secret)
	mac.Write(data)
	return mac.Sum(d.ioBuf[:0]), nil
}

// Verify checks signature against the tag for data in constant time.
func (d *CryptoHMAC) Verify(data, signature []byte) error {
	mac := hmac.New(sha256.New, d.secret)
	mac.Write(data)
	expected := mac.Sum(d.ioBuf[:0])
	if !hmac.Equal(expected, signature) {
		return ErrUnexpectedSignature
	}

	return nil
}

// Factory builds one MAC per key so a key rotation never mutates a MAC
// already handed out.
type Factory struct {
}

func NewFactory() application.MACFactory {
	return &Factory{}
}

func (f *Factory) FromKey(key []byte) application.MAC {
	return NewHMAC(key)
}
