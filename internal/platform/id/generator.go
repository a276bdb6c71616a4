// Package id mints and checks request identifiers.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const maxLength = 64

type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns 16 random bytes, hex encoded.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Valid accepts caller supplied IDs of up to 64 letters, digits, '-', '_'
// or '.'.
func Valid(raw string) bool {
	if raw == "" || len(raw) > maxLength {
		return false
	}
	for _, c := range raw {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
