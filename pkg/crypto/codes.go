package crypto

import (
	"crypto/rand"
	"fmt"
)

// Code alphabets. Session identifiers and host codes draw from the 64-symbol
// URL-safe alphabet; guest codes use the short uppercase alphabet so they can
// be read out loud or written on an invitation.
const (
	URLSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	GuestAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

const (
	sessionIDLength = 24
	hostCodeLength  = 32
	guestCodeLength = 6
)

// GenerateCode returns a fixed-length random string drawn from the given
// alphabet using crypto/rand.
func GenerateCode(alphabet string, length int) (string, error) {
	if len(alphabet) == 0 {
		return "", fmt.Errorf("crypto: alphabet must not be empty")
	}
	if length <= 0 {
		return "", fmt.Errorf("crypto: length must be positive")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("crypto: read random bytes: %w", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out), nil
}

// GenerateSessionID returns a 24-symbol opaque session identifier.
func GenerateSessionID() (string, error) {
	return GenerateCode(URLSafeAlphabet, sessionIDLength)
}

// GenerateHostCode returns the high-entropy 32-symbol host secret.
func GenerateHostCode() (string, error) {
	return GenerateCode(URLSafeAlphabet, hostCodeLength)
}

// GenerateGuestCode returns the shareable 6-symbol guest code. Low entropy is
// a deliberate trade-off: the code is meant to be passed around by hand.
func GenerateGuestCode() (string, error) {
	return GenerateCode(GuestAlphabet, guestCodeLength)
}
