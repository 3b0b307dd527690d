package imgproxy

import "encoding/base64"

// EncodeSource returns the URL-safe, unpadded base64 form of b. It is used
// both for the source image reference and for the signature digest.
func EncodeSource(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}
