package crypto

import "fmt"

// Encrypt seals buffer in place for a remote attachment.
//
// The process:
//  1. HKDF-SHA-256 derives the AES key from secret and salt
//  2. The next nonce is taken from seq
//  3. AES-256-GCM seals buffer with AssociatedData
//
// Returns the sealed buffer (ciphertext || tag) and the nonce that was used.
// Each derived key is expected to pair with its own seq; callers that derive a
// fresh key per call pass NewNonceSequence().
func Encrypt(buffer, secret, salt []byte, seq *NonceSequence) ([]byte, []byte, error) {
	key, err := DeriveKey(secret, salt)
	if err != nil {
		return nil, nil, err
	}

	nonce, err := seq.Advance()
	if err != nil {
		return nil, nil, err
	}

	sealed, err := SealInPlace(buffer, key, nonce, []byte(AssociatedData))
	if err != nil {
		return nil, nil, err
	}

	return sealed, nonce, nil
}

// Decrypt reverses Encrypt. ciphertext is overwritten with the plaintext.
func Decrypt(ciphertext, secret, salt, nonce []byte) ([]byte, error) {
	key, err := DeriveKey(secret, salt)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	plaintext, err := OpenInPlace(ciphertext, key, nonce, []byte(AssociatedData))
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}

	return plaintext, nil
}
