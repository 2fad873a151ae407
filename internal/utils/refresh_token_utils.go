package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashRefreshToken returns the SHA256 hash of a refresh token. Only the hash
// is stored server side.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareRefreshTokenHash compares a raw refresh token against its stored hash
// in constant time.
func CompareRefreshTokenHash(token string, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashRefreshToken(token)), []byte(storedHash)) == 1
}
