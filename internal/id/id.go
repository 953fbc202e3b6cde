package id

import "crypto/rand"

// GenerateID creates a 16-character lowercase alphanumeric ID. Used for
// question ids inside generated sessions; attempt records get UUIDs from
// the store instead.
func GenerateID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}
	return string(b)
}
