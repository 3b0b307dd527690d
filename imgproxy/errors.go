package imgproxy

import "errors"

// Configuration errors.
var (
	// ErrNoHost is returned when Config.Host is empty.
	ErrNoHost = errors.New("imgproxy: host must not be empty")

	// ErrKeySaltMismatch is returned when only one of Config.Key and
	// Config.Salt is set. Signing requires both.
	ErrKeySaltMismatch = errors.New("imgproxy: key and salt must be set together")
)

// Signing errors.
var (
	// ErrInvalidKey is returned when the signing key or salt is empty.
	ErrInvalidKey = errors.New("imgproxy: invalid key material")

	// ErrSignatureInvalid is returned when a signature does not match the
	// signed path.
	ErrSignatureInvalid = errors.New("imgproxy: signature verification failed")
)

// Source set errors.
var (
	// ErrNoSourceSetSizes is returned when a source set is requested without
	// widths and the Config carries no default list.
	ErrNoSourceSetSizes = errors.New("imgproxy: no source set sizes defined")
)
