package imgproxy

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
)

// Signer computes and checks signatures over the unsigned part of a URL
// path (processing segments followed by the encoded source).
type Signer interface {
	// Sign returns the URL-safe base64 signature for path.
	Sign(path string) string

	// Verify checks that signature matches path. Returns nil on success
	// and ErrSignatureInvalid otherwise.
	Verify(path, signature string) error
}

type hmacSigner struct {
	key  []byte
	salt []byte
}

// NewHMACSigner creates a Signer using HMAC-SHA256 keyed with key. The salt
// and a '/' separator are written into the hash ahead of the path. Both key
// and salt must be non-empty.
func NewHMACSigner(key, salt []byte) (Signer, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}

	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: salt must not be empty", ErrInvalidKey)
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	saltCopy := make([]byte, len(salt), len(salt)+1)
	copy(saltCopy, salt)

	return &hmacSigner{key: keyCopy, salt: append(saltCopy, '/')}, nil
}

func (s *hmacSigner) digest(path string) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(s.salt)
	mac.Write([]byte(path))

	return mac.Sum(nil)
}

func (s *hmacSigner) Sign(path string) string {
	return EncodeSource(s.digest(path))
}

func (s *hmacSigner) Verify(path, signature string) error {
	if !hmac.Equal([]byte(s.Sign(path)), []byte(signature)) {
		return ErrSignatureInvalid
	}

	return nil
}
