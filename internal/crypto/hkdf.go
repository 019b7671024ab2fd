package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey derives an AES-256 key from a secret and salt using HKDF-SHA-256.
//
// The derivation runs the extract step over (salt, secret) and expands the
// resulting pseudorandom key with an empty info string to AESKeySize bytes.
// The output is a deterministic function of its inputs.
func DeriveKey(secret, salt []byte) ([]byte, error) {
	if len(secret) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretSize, len(secret), AESKeySize)
	}

	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaltSize, len(salt), SaltSize)
	}

	return extractExpand(secret, salt, AESKeySize)
}

// extractExpand is HKDF-SHA-256 with an empty info string and no size checks.
func extractExpand(secret, salt []byte, n int) ([]byte, error) {
	prk := hkdf.Extract(sha256.New, secret, salt)
	// Guards the extract stage so both HKDF stages report ErrKeyDerivation.
	if len(prk) != sha256.Size {
		return nil, fmt.Errorf("%w: extract produced %d bytes", ErrKeyDerivation, len(prk))
	}

	reader := hkdf.Expand(sha256.New, prk, nil)
	key := make([]byte, n)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("%w: expand: %v", ErrKeyDerivation, err)
	}

	return key, nil
}
