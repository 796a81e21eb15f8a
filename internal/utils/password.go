package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password for storage. New accounts always get bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a password against a stored hash. Documents written
// by the legacy tracker hold unsalted sha256 hex digests; those still verify
// so existing accounts keep working. Bcrypt hashes are recognized by prefix.
func VerifyPassword(stored string, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	digest := sha256.Sum256([]byte(password))
	legacy := hex.EncodeToString(digest[:])
	return subtle.ConstantTimeCompare([]byte(stored), []byte(legacy)) == 1
}
