package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncrypt_Decrypt(t *testing.T) {
	message := []byte("this should be secret")
	preserved := append([]byte(nil), message...)
	secret := NewSecret()
	salt := NewSalt()

	sealed, nonce, err := Encrypt(message, secret, salt, NewNonceSequence())
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if len(sealed) != len(preserved)+AESTagSize {
		t.Errorf("sealed length = %d, want %d", len(sealed), len(preserved)+AESTagSize)
	}
	if bytes.Equal(sealed[:len(preserved)], preserved) {
		t.Error("sealed prefix equals the plaintext")
	}
	if !bytes.Equal(nonce, NonceForCounter(0)) {
		t.Errorf("nonce = %x, want counter 0", nonce)
	}

	opened, err := Decrypt(sealed, secret, salt, nonce)
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if !bytes.Equal(opened, preserved) {
		t.Errorf("opened = %q, want %q", opened, preserved)
	}
}

func TestEncrypt_KnownAnswer(t *testing.T) {
	secret := mustDecodeHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	salt := mustDecodeHex(t, "404142434445464748494a4b4c4d4e4f")

	tests := []struct {
		counter uint32
		want    string
	}{
		{0, "4575c6abd89bb7ae4328fc049fd883945a0c85ab18ed90"},
		{1, "08ecbf0e132147bfbf7a58ac4e443a3ced43bb2a9a6108"},
	}

	for _, tt := range tests {
		sealed, nonce, err := Encrypt([]byte("cat pic"), secret, salt, NewNonceSequenceAt(tt.counter))
		if err != nil {
			t.Fatalf("Encrypt() error = %v", err)
		}
		if !bytes.Equal(nonce, NonceForCounter(tt.counter)) {
			t.Errorf("nonce = %x, want counter %d", nonce, tt.counter)
		}
		if want := mustDecodeHex(t, tt.want); !bytes.Equal(sealed, want) {
			t.Errorf("counter %d: sealed = %x, want %x", tt.counter, sealed, want)
		}

		opened, err := Decrypt(sealed, secret, salt, nonce)
		if err != nil {
			t.Fatalf("Decrypt() error = %v", err)
		}
		if string(opened) != "cat pic" {
			t.Errorf("opened = %q", opened)
		}
	}
}

func TestEncrypt_AdvancesSequence(t *testing.T) {
	secret := NewSecret()
	salt := NewSalt()
	seq := NewNonceSequence()

	first, nonce0, err := Encrypt([]byte("cat"), secret, salt, seq)
	if err != nil {
		t.Fatal(err)
	}
	second, nonce1, err := Encrypt([]byte("cat"), secret, salt, seq)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(nonce0, nonce1) {
		t.Error("shared sequence reused a nonce")
	}
	if bytes.Equal(first, second) {
		t.Error("identical ciphertexts under distinct nonces")
	}
}

func TestEncrypt_InvalidSecret(t *testing.T) {
	_, _, err := Encrypt([]byte("cat"), make([]byte, 16), NewSalt(), NewNonceSequence())
	if !errors.Is(err, ErrInvalidSecretSize) {
		t.Errorf("Encrypt() error = %v, want ErrInvalidSecretSize", err)
	}
}

func TestDecrypt_WrongSalt(t *testing.T) {
	secret := NewSecret()
	sealed, nonce, err := Encrypt([]byte("cat"), secret, NewSalt(), NewNonceSequence())
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decrypt(sealed, secret, NewSalt(), nonce)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("Decrypt() error = %v, want ErrDecryptionFailed", err)
	}
}
