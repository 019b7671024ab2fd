package crypto

import "errors"

var (
	// ErrInvalidSecretSize is returned when a secret does not match the cipher key size.
	ErrInvalidSecretSize = errors.New("invalid secret size")

	// ErrInvalidSaltSize is returned when a salt is not SaltSize bytes.
	ErrInvalidSaltSize = errors.New("invalid salt size")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrKeyDerivation is returned when the HKDF extract or expand stage fails.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrSeal is returned when AES-GCM sealing fails.
	ErrSeal = errors.New("seal failed")

	// ErrNonceExhausted is returned when a nonce sequence has used all
	// 2^32 counter values for its key.
	ErrNonceExhausted = errors.New("nonce sequence exhausted")

	// ErrDecryptionFailed is returned when decryption fails, including
	// authentication tag mismatches.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidHex is returned when a hex parameter cannot be decoded.
	ErrInvalidHex = errors.New("invalid hex parameter")

	// ErrDigestMismatch is returned when a content digest does not match
	// the content it describes.
	ErrDigestMismatch = errors.New("content digest mismatch")
)
