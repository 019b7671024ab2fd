package catpls

import (
	"errors"
	"fmt"

	"github.com/catpls/client-go/internal/compression"
	"github.com/catpls/client-go/internal/crypto"
	"github.com/catpls/client-go/internal/wire"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrKeyDerivation is returned when HKDF key derivation fails.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrSeal is returned when AES-GCM sealing fails.
	ErrSeal = errors.New("seal failed")

	// ErrPrecondition is returned when an input has the wrong size for the
	// cipher, e.g. a secret that is not 32 bytes.
	ErrPrecondition = errors.New("precondition failed")

	// ErrNonceExhausted is returned when a nonce sequence has no counter
	// values left for its key.
	ErrNonceExhausted = errors.New("nonce sequence exhausted")

	// ErrDecryptionFailed is returned when a remote attachment cannot be opened.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrDigestMismatch is returned when the contentDigest parameter does not
	// match the envelope content.
	ErrDigestMismatch = errors.New("content digest mismatch")

	// ErrInvalidContent is returned when an envelope is malformed or missing
	// required parameters.
	ErrInvalidContent = errors.New("invalid content")

	// ErrContentTypeMismatch is returned when an envelope has a different
	// content type than the operation expects.
	ErrContentTypeMismatch = errors.New("content type mismatch")

	// ErrCompression is returned when content compression or decompression fails.
	ErrCompression = errors.New("compression failed")
)

// CatplsError is implemented by all typed SDK errors.
type CatplsError interface {
	error
	CatplsError() // marker method
}

// KeyDerivationError represents a failure in the HKDF extract or expand stage.
type KeyDerivationError struct {
	Err error
}

func (e *KeyDerivationError) Error() string {
	return fmt.Sprintf("key derivation failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyDerivationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyDerivationError) Is(target error) bool {
	return target == ErrKeyDerivation
}

// CatplsError implements the CatplsError interface.
func (e *KeyDerivationError) CatplsError() {}

// SealError represents an AES-GCM sealing failure. No envelope is produced
// when sealing fails.
type SealError struct {
	Err error
}

func (e *SealError) Error() string {
	return fmt.Sprintf("seal failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SealError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SealError) Is(target error) bool {
	return target == ErrSeal
}

// CatplsError implements the CatplsError interface.
func (e *SealError) CatplsError() {}

// PreconditionError reports an input whose size does not match what the
// cipher requires.
type PreconditionError struct {
	Parameter string // "secret", "salt"
	Err       error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed for %s: %v", e.Parameter, e.Err)
}

// Unwrap returns the underlying error.
func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// CatplsError implements the CatplsError interface.
func (e *PreconditionError) CatplsError() {}

// NonceExhaustedError is returned when a nonce sequence would overflow.
type NonceExhaustedError struct {
	Counter uint32
}

func (e *NonceExhaustedError) Error() string {
	return fmt.Sprintf("nonce sequence exhausted at counter %d", e.Counter)
}

// Is implements errors.Is for sentinel error matching.
func (e *NonceExhaustedError) Is(target error) bool {
	return target == ErrNonceExhausted
}

// CatplsError implements the CatplsError interface.
func (e *NonceExhaustedError) CatplsError() {}

// DecryptionError represents a failure to open a remote attachment.
type DecryptionError struct {
	Stage string // "digest", "hkdf", "aes"
	Err   error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("decryption failed at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	if target == ErrDecryptionFailed {
		return true
	}
	return target == ErrDigestMismatch && e.Stage == "digest"
}

// CatplsError implements the CatplsError interface.
func (e *DecryptionError) CatplsError() {}

// ValidationError contains every problem found in an encoder configuration.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid encoder configuration: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CatplsError implements the CatplsError interface.
func (e *ValidationError) CatplsError() {}

// wrapError converts internal errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrInvalidSecretSize):
		return &PreconditionError{Parameter: "secret", Err: err}
	case errors.Is(err, crypto.ErrInvalidSaltSize):
		return &PreconditionError{Parameter: "salt", Err: err}
	case errors.Is(err, crypto.ErrInvalidNonceSize):
		return &PreconditionError{Parameter: "nonce", Err: err}
	case errors.Is(err, crypto.ErrKeyDerivation):
		return &KeyDerivationError{Err: err}
	case errors.Is(err, crypto.ErrSeal):
		return &SealError{Err: err}
	case errors.Is(err, crypto.ErrNonceExhausted):
		return &NonceExhaustedError{Counter: maxNonceCounter}
	case errors.Is(err, crypto.ErrDigestMismatch):
		return &DecryptionError{Stage: "digest", Err: err}
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return &DecryptionError{Stage: "aes", Err: err}
	case errors.Is(err, crypto.ErrInvalidHex), errors.Is(err, wire.ErrMalformed):
		return fmt.Errorf("%w: %w", ErrInvalidContent, err)
	case errors.Is(err, compression.ErrUnsupported), errors.Is(err, compression.ErrTooLarge):
		return fmt.Errorf("%w: %w", ErrCompression, err)
	}

	return err
}
