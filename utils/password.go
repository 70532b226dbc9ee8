package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashPassword derives the stored verification value for a password:
// HMAC-SHA256 over the trimmed password, hex encoded. The digest is
// deterministic for a given secret, which is what lets login find a user
// by hash equality instead of a salted comparison.
func HashPassword(password string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(strings.TrimSpace(password)))
	return hex.EncodeToString(mac.Sum(nil))
}
