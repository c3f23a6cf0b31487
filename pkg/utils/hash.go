package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))

	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint returns a short, case-insensitive hash of an email address,
// used to correlate log lines of the same sender
func Fingerprint(email string) string {
	if email == "" {
		return ""
	}
	return HashString(strings.ToLower(strings.TrimSpace(email)))[:12]
}
