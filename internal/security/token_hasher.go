package security

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashToken computes the one-way SHA-256 digest of a raw refresh token,
// Base64-encoded. Refresh tokens are high-entropy random strings, so a fast
// digest is acceptable here; user-chosen credentials go through HashSecret's
// slow KDF instead.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return base64.StdEncoding.EncodeToString(sum[:])
}
