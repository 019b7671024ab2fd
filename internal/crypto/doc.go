// Package crypto provides the cryptographic primitives behind remote
// attachments: random secrets and salts, HKDF key derivation, counter nonces
// and AES-256-GCM sealing.
//
// # Algorithm Suite
//
//   - HKDF-SHA-256 (RFC 5869): derives a 32-byte AES key from a 32-byte
//     random secret and a 16-byte random salt. The info string is empty.
//
//   - AES-256-GCM: authenticated encryption of the attachment bytes. The
//     associated data is the fixed [AssociatedData] constant.
//
//   - SHA-256: content digest of the sealed payload.
//
// # Nonces
//
// Nonces are eight zero bytes followed by a big-endian 32-bit counter, see
// [NonceSequence]. Every remote attachment derives a fresh key from a fresh
// secret and salt, so counter zero is used once per key.
//
// AES-GCM nonces MUST be unique for each encryption with the same key. Nonce
// reuse completely breaks the security of AES-GCM, allowing attackers to
// recover the authentication key and forge messages. Any caller that keeps a
// derived key across seals must keep one NonceSequence for that key's whole
// lifetime.
//
// # Encoding
//
// Byte-valued envelope parameters (secret, salt, nonce, digest) are lowercase
// hex with a 0x prefix, see [ToHex] and [FromHex].
//
// Secrets should never be logged or persisted by this package's callers
// beyond the envelope that carries them to the receiver.
package crypto
