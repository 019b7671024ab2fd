package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"testing"
)

func randomKey(t testing.TB) []byte {
	t.Helper()
	key := make([]byte, AESKeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	return key
}

// AES-256 vectors from the GCM specification, test cases 13 and 14.
func TestSealInPlace_GCMVectors(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
		want      string
	}{
		{"empty", nil, "530f8afbc74536b9a963b4f1c4cb738b"},
		{"one block", make([]byte, 16), "cea7403d4d606b6e074ec5d3baf39d18d0d1c8a799996bf0265b98b5d48ab919"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := SealInPlace(tt.plaintext, make([]byte, AESKeySize), make([]byte, AESNonceSize), nil)
			if err != nil {
				t.Fatal(err)
			}
			if got := fmt.Sprintf("%x", sealed); got != tt.want {
				t.Errorf("sealed = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSealInPlace_OpenInPlace_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello world")},
		{"json", []byte(`{"foo": "bar", "num": 123}`)},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"large", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := randomKey(t)
			nonce := NonceForCounter(0)
			aad := []byte(AssociatedData)

			buffer := append([]byte(nil), tt.plaintext...)
			sealed, err := SealInPlace(buffer, key, nonce, aad)
			if err != nil {
				t.Fatalf("SealInPlace() error = %v", err)
			}

			expectedLen := len(tt.plaintext) + AESTagSize
			if len(sealed) != expectedLen {
				t.Errorf("sealed length = %d, want %d", len(sealed), expectedLen)
			}

			opened, err := OpenInPlace(sealed, key, nonce, aad)
			if err != nil {
				t.Fatalf("OpenInPlace() error = %v", err)
			}

			if !bytes.Equal(opened, tt.plaintext) {
				t.Errorf("opened = %x, want %x", opened, tt.plaintext)
			}
		})
	}
}

func TestSealInPlace_OverwritesBuffer(t *testing.T) {
	key := randomKey(t)
	plaintext := []byte("this should be secret")

	buffer := make([]byte, len(plaintext), len(plaintext)+AESTagSize)
	copy(buffer, plaintext)

	sealed, err := SealInPlace(buffer, key, NonceForCounter(0), []byte(AssociatedData))
	if err != nil {
		t.Fatal(err)
	}

	if &sealed[0] != &buffer[0] {
		t.Error("sealed output does not reuse the buffer's storage")
	}
	if bytes.Equal(buffer, plaintext) {
		t.Error("buffer still holds the plaintext")
	}
	if !bytes.Equal(sealed[:len(plaintext)], buffer) {
		t.Error("sealed prefix differs from the overwritten buffer")
	}
}

func TestSealInPlace_DistinctNonces(t *testing.T) {
	key := randomKey(t)
	plaintext := []byte("same plaintext, two nonces")
	aad := []byte(AssociatedData)

	first, err := SealInPlace(append([]byte(nil), plaintext...), key, NonceForCounter(0), aad)
	if err != nil {
		t.Fatal(err)
	}
	second, err := SealInPlace(append([]byte(nil), plaintext...), key, NonceForCounter(1), aad)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(first, second) {
		t.Error("sealing under counters 0 and 1 produced identical ciphertexts")
	}
}

func TestSealInPlace_InvalidKeySize(t *testing.T) {
	tests := []struct {
		name    string
		keySize int
	}{
		{"empty", 0},
		{"too short", 16},
		{"too long", 64},
	}

	nonce := make([]byte, AESNonceSize)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := make([]byte, tt.keySize)
			_, err := SealInPlace([]byte("test"), key, nonce, nil)
			if !errors.Is(err, ErrInvalidKeySize) {
				t.Errorf("expected ErrInvalidKeySize, got %v", err)
			}
			if !errors.Is(err, ErrSeal) {
				t.Errorf("expected ErrSeal, got %v", err)
			}
		})
	}
}

func TestSealInPlace_InvalidNonceSize(t *testing.T) {
	tests := []struct {
		name      string
		nonceSize int
	}{
		{"empty", 0},
		{"too short", 8},
		{"too long", 16},
	}

	key := make([]byte, AESKeySize)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nonce := make([]byte, tt.nonceSize)
			_, err := SealInPlace([]byte("test"), key, nonce, nil)
			if !errors.Is(err, ErrInvalidNonceSize) {
				t.Errorf("expected ErrInvalidNonceSize, got %v", err)
			}
		})
	}
}

func TestOpenInPlace_CiphertextTooShort(t *testing.T) {
	key := make([]byte, AESKeySize)
	_, err := OpenInPlace(make([]byte, AESTagSize-1), key, NonceForCounter(0), nil)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestOpenInPlace_Tampering(t *testing.T) {
	aad := []byte(AssociatedData)
	nonce := NonceForCounter(0)

	tests := []struct {
		name   string
		mutate func(sealed, key, aad []byte) ([]byte, []byte, []byte)
	}{
		{"flipped ciphertext byte", func(sealed, key, aad []byte) ([]byte, []byte, []byte) {
			sealed[0] ^= 0xff
			return sealed, key, aad
		}},
		{"flipped tag byte", func(sealed, key, aad []byte) ([]byte, []byte, []byte) {
			sealed[len(sealed)-1] ^= 0x01
			return sealed, key, aad
		}},
		{"wrong associated data", func(sealed, key, _ []byte) ([]byte, []byte, []byte) {
			return sealed, key, []byte("~~ some other cat pic ~~")
		}},
		{"wrong key", func(sealed, _, aad []byte) ([]byte, []byte, []byte) {
			return sealed, make([]byte, AESKeySize), aad
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := randomKey(t)
			sealed, err := SealInPlace([]byte("sensitive data"), key, nonce, aad)
			if err != nil {
				t.Fatal(err)
			}

			sealed, openKey, openAAD := tt.mutate(sealed, key, aad)
			plaintext, err := OpenInPlace(sealed, openKey, nonce, openAAD)
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("expected ErrDecryptionFailed, got %v", err)
			}
			if plaintext != nil {
				t.Errorf("plaintext = %q, want nil", plaintext)
			}
		})
	}
}

func BenchmarkSealInPlace(b *testing.B) {
	key := randomKey(b)
	nonce := NonceForCounter(0)
	aad := []byte(AssociatedData)
	buffer := make([]byte, 1000, 1000+AESTagSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = SealInPlace(buffer[:1000], key, nonce, aad)
	}
}

// Example_sealOpen demonstrates sealing and opening a buffer in place.
func Example_sealOpen() {
	// Generate a random 256-bit key.
	key := make([]byte, AESKeySize)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}

	// IMPORTANT: Never reuse a nonce with the same key.
	seq := NewNonceSequence()
	nonce, err := seq.Advance()
	if err != nil {
		panic(err)
	}

	sealed, err := SealInPlace([]byte("Hello, World!"), key, nonce, []byte(AssociatedData))
	if err != nil {
		panic(err)
	}

	opened, err := OpenInPlace(sealed, key, nonce, []byte(AssociatedData))
	if err != nil {
		panic(err)
	}

	fmt.Println(string(opened))
	// Output: Hello, World!
}
