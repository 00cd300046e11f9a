package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16      // 128-bit salt
	keySize    = 32      // 256-bit derived key
	iterations = 100_000 // PBKDF2 iteration count
)

// HashSecret generates a fresh random salt and derives a PBKDF2-SHA256 hash
// from the given secret. Both values are returned Base64-encoded, ready to be
// persisted. The raw secret itself is never stored.
func HashSecret(secret string) (salt string, hash string, err error) {
	saltBytes := make([]byte, saltSize)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(secret), saltBytes, iterations, keySize, sha256.New)

	return base64.StdEncoding.EncodeToString(saltBytes),
		base64.StdEncoding.EncodeToString(key),
		nil
}

// VerifySecret recomputes the derived key from the candidate secret and the
// stored salt, and compares it to the stored hash in constant time so the
// comparison never short-circuits on the first mismatched byte.
func VerifySecret(secret, storedSalt, storedHash string) bool {
	saltBytes, err := base64.StdEncoding.DecodeString(storedSalt)
	if err != nil {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(storedHash)
	if err != nil {
		return false
	}

	actual := pbkdf2.Key([]byte(secret), saltBytes, iterations, keySize, sha256.New)

	return subtle.ConstantTimeCompare(expected, actual) == 1
}
