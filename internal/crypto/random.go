package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for secrets and salts.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// NewSecret returns a fresh SecretSize-byte secret.
func NewSecret() []byte {
	return NewSecretFrom(nil)
}

// NewSalt returns a fresh SaltSize-byte salt.
func NewSalt() []byte {
	return NewSaltFrom(nil)
}

// NewSecretFrom is NewSecret reading from r. A nil r uses the package source.
func NewSecretFrom(r io.Reader) []byte {
	return mustRead(r, SecretSize)
}

// NewSaltFrom is NewSalt reading from r. A nil r uses the package source.
func NewSaltFrom(r io.Reader) []byte {
	return mustRead(r, SaltSize)
}

// mustRead fills n bytes from r. The platform RNG is assumed to always be
// available, so a short read is fatal rather than a recoverable error.
func mustRead(r io.Reader, n int) []byte {
	if r == nil {
		r = randReader
	}
	if r == nil {
		r = rand.Reader
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		panic(fmt.Sprintf("crypto: random source failed: %v", err))
	}
	return buf
}
