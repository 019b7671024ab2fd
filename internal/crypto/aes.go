package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// newGCM validates sizes and builds an AES-256-GCM AEAD.
func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), AESKeySize)
	}

	if len(nonce) != AESNonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), AESNonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}

// SealInPlace encrypts buffer with AES-256-GCM, overwriting the plaintext with
// ciphertext and appending the AESTagSize-byte tag.
// Returns: ciphertext || tag. The result shares buffer's backing array when it
// has room for the tag.
func SealInPlace(buffer, key, nonce, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeal, err)
	}

	return gcm.Seal(buffer[:0], nonce, buffer, aad), nil
}

// OpenInPlace authenticates and decrypts ciphertext || tag, writing the
// plaintext over the ciphertext.
func OpenInPlace(ciphertext, key, nonce, aad []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < AESTagSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryptionFailed)
	}

	plaintext, err := gcm.Open(ciphertext[:0], nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
