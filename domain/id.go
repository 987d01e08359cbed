package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID mints a random 32-bit identifier rendered as hex. Collisions are
// accepted at this scale; the value only has to be unique within one
// storage file's lifetime.
func NewID() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
