package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

var reID32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// NewID32 returns 16 random bytes as 32 lowercase hex characters.
// Used for settlement public ids and audit entry ids.
func NewID32() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("id: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}

// Valid reports whether s has the NewID32 shape.
func Valid(s string) bool { return reID32.MatchString(s) }
