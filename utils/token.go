package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken returns a hex token of the given length, used as the
// OAuth state parameter on the Strava connect flow. The state is a CSRF
// defense, so it must be unpredictable: bytes come from crypto/rand.
func GenerateRandomToken(length int) string {
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)[:length]
}
