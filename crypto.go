package catpls

import (
	"errors"
	"math"

	"github.com/catpls/client-go/internal/crypto"
)

// Sizes of the remote attachment key material, in bytes.
const (
	SecretSize = crypto.SecretSize
	SaltSize   = crypto.SaltSize
	KeySize    = crypto.AESKeySize
	NonceSize  = crypto.AESNonceSize
	TagSize    = crypto.AESTagSize
)

const maxNonceCounter = math.MaxUint32

// NonceSequence hands out the counter nonces for one key. See
// NewNonceSequence.
type NonceSequence = crypto.NonceSequence

// NewNonceSequence returns a nonce sequence starting at counter zero. A
// sequence must be owned by exactly one key and never shared between
// concurrent seals.
func NewNonceSequence() *NonceSequence {
	return crypto.NewNonceSequence()
}

// NewNonceSequenceAt resumes a nonce sequence at counter, for a key whose
// counter is persisted between seals.
func NewNonceSequenceAt(counter uint32) *NonceSequence {
	return crypto.NewNonceSequenceAt(counter)
}

// NewSecret returns a fresh 32-byte secret from crypto/rand.
func NewSecret() []byte {
	return crypto.NewSecret()
}

// NewSalt returns a fresh 16-byte salt from crypto/rand.
func NewSalt() []byte {
	return crypto.NewSalt()
}

// DeriveKey derives the AES-256 key for a secret and salt with HKDF-SHA-256.
// A secret that is not SecretSize bytes or a salt that is not SaltSize bytes
// yields a *PreconditionError.
func DeriveKey(secret, salt []byte) ([]byte, error) {
	key, err := crypto.DeriveKey(secret, salt)
	if err != nil {
		return nil, wrapError(err)
	}
	return key, nil
}

// Encrypt seals buffer in place with the key derived from secret and salt and
// the next nonce from seq. It returns ciphertext || tag and the nonce used.
// buffer's contents are overwritten.
//
// seq must belong to the key derived from (secret, salt): calling Encrypt
// twice with the same secret and salt requires the same seq both times.
func Encrypt(buffer, secret, salt []byte, seq *NonceSequence) ([]byte, []byte, error) {
	if seq == nil {
		return nil, nil, &PreconditionError{Parameter: "nonce sequence", Err: errors.New("nil sequence")}
	}

	counter := seq.Counter()
	sealed, nonce, err := crypto.Encrypt(buffer, secret, salt, seq)
	if errors.Is(err, crypto.ErrNonceExhausted) {
		return nil, nil, &NonceExhaustedError{Counter: counter}
	}
	if err != nil {
		return nil, nil, wrapError(err)
	}
	return sealed, nonce, nil
}

// Decrypt opens ciphertext || tag produced by Encrypt. ciphertext is
// overwritten with the plaintext.
func Decrypt(ciphertext, secret, salt, nonce []byte) ([]byte, error) {
	plaintext, err := crypto.Decrypt(ciphertext, secret, salt, nonce)
	if err != nil {
		return nil, wrapError(err)
	}
	return plaintext, nil
}
