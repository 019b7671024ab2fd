package crypto

const (
	// SecretSize is the size of a remote attachment secret in bytes.
	// It must equal AESKeySize.
	SecretSize = 32
	// SaltSize is the size of the HKDF salt in bytes.
	SaltSize = 16

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16

	// nonceCounterOffset is where the big-endian counter starts inside a nonce.
	// The leading bytes are always zero.
	nonceCounterOffset = AESNonceSize - 4
)

// AssociatedData is the fixed AEAD associated data bound to every remote
// attachment. Sender and receiver must agree on these exact bytes, so it is
// not configurable.
const AssociatedData = "~~ super secret cat pic ( 0 _ 0 ) ~~"

// HexPrefix prefixes every byte-valued envelope parameter.
const HexPrefix = "0x"
