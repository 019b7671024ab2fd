package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewSecretAndSalt_Sizes(t *testing.T) {
	if got := len(NewSecret()); got != SecretSize {
		t.Errorf("secret length = %d, want %d", got, SecretSize)
	}
	if got := len(NewSalt()); got != SaltSize {
		t.Errorf("salt length = %d, want %d", got, SaltSize)
	}
}

func TestNewSecret_Uniqueness(t *testing.T) {
	if bytes.Equal(NewSecret(), NewSecret()) {
		t.Error("two secrets are identical")
	}
	if bytes.Equal(NewSalt(), NewSalt()) {
		t.Error("two salts are identical")
	}
}

func TestSetRandReaderForTesting(t *testing.T) {
	restore := SetRandReaderForTesting(bytes.NewReader(bytes.Repeat([]byte{0x42}, SecretSize+SaltSize)))
	defer restore()

	if secret := NewSecret(); !bytes.Equal(secret, bytes.Repeat([]byte{0x42}, SecretSize)) {
		t.Errorf("secret = %x", secret)
	}
	if salt := NewSalt(); !bytes.Equal(salt, bytes.Repeat([]byte{0x42}, SaltSize)) {
		t.Errorf("salt = %x", salt)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func TestNewSecretFrom_SourceFailurePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSecretFrom did not panic on a failing source")
		}
	}()
	NewSecretFrom(failingReader{})
}
