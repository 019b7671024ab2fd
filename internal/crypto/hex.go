package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ToHex encodes bytes as lowercase hex with the 0x prefix used by envelope
// parameters.
func ToHex(data []byte) string {
	return HexPrefix + hex.EncodeToString(data)
}

// FromHex decodes an envelope hex parameter. The 0x prefix is optional.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, HexPrefix)
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return data, nil
}

// FromHexSize decodes an envelope hex parameter and checks its decoded length.
func FromHexSize(s string, size int) ([]byte, error) {
	data, err := FromHex(s)
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: decoded %d bytes, want %d", ErrInvalidHex, len(data), size)
	}
	return data, nil
}
