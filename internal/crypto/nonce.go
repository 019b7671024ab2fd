package crypto

import (
	"encoding/binary"
	"math"
)

// NonceSequence produces strictly increasing AES-GCM nonces for a single key.
//
// Each nonce is eight zero bytes followed by a big-endian 32-bit counter. The
// counter starts at zero and advances by one per sealing operation. A
// (key, nonce) pair must never repeat, so a sequence belongs to exactly one key
// and must not be shared between concurrent sealing operations. Code that
// reuses a derived key across seals must keep the same *NonceSequence for the
// lifetime of that key.
type NonceSequence struct {
	counter   uint32
	exhausted bool
}

// NewNonceSequence returns a sequence starting at counter zero.
func NewNonceSequence() *NonceSequence {
	return &NonceSequence{}
}

// NewNonceSequenceAt returns a sequence resuming at counter. It is meant for
// keys that outlive a single seal and persist their counter between uses.
func NewNonceSequenceAt(counter uint32) *NonceSequence {
	return &NonceSequence{counter: counter}
}

// Counter returns the counter value the next nonce will carry.
func (s *NonceSequence) Counter() uint32 {
	return s.counter
}

// Next returns the nonce for the current counter without advancing.
func (s *NonceSequence) Next() ([]byte, error) {
	if s.exhausted {
		return nil, ErrNonceExhausted
	}
	return NonceForCounter(s.counter), nil
}

// Advance returns the nonce for the current counter and moves the counter
// forward by one. Once the nonce for math.MaxUint32 has been handed out every
// later call fails with ErrNonceExhausted.
func (s *NonceSequence) Advance() ([]byte, error) {
	nonce, err := s.Next()
	if err != nil {
		return nil, err
	}

	if s.counter == math.MaxUint32 {
		s.exhausted = true
	} else {
		s.counter++
	}

	return nonce, nil
}

// NonceForCounter builds the nonce for a counter value.
func NonceForCounter(counter uint32) []byte {
	nonce := make([]byte, AESNonceSize)
	binary.BigEndian.PutUint32(nonce[nonceCounterOffset:], counter)
	return nonce
}
