package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
)

// ContentDigest returns the SHA-256 digest of content in envelope hex form.
func ContentDigest(content []byte) string {
	sum := sha256.Sum256(content)
	return ToHex(sum[:])
}

// VerifyContentDigest checks digest against content. The digest may be given
// with or without the 0x prefix.
func VerifyContentDigest(digest string, content []byte) error {
	want, err := FromHexSize(digest, sha256.Size)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDigestMismatch, err)
	}

	got := sha256.Sum256(content)
	if subtle.ConstantTimeCompare(got[:], want) != 1 {
		return ErrDigestMismatch
	}

	return nil
}
