package transfer

import (
	"crypto/rand"
	"fmt"
)

// CodePrefix keeps transfer codes recognizable when read out loud.
const CodePrefix = "TR-"

// codeAlphabet leaves out characters that are easy to confuse when a code
// is dictated over the phone (0/O, 1/I/L, 8/B).
const codeAlphabet = "ACDEFGHJKMNPQRSTUVWXYZ234679"

const codeLength = 8

// generateCode returns a fresh transfer code drawn from a space large enough
// (28^8, roughly 3.8e11) that collisions are practically impossible; the
// insert path still retries on a unique violation just in case.
func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}

	return CodePrefix + string(buf), nil
}
