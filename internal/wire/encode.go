package wire

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrMalformed is returned when envelope bytes cannot be decoded.
var ErrMalformed = errors.New("malformed envelope")

const (
	fieldType        protowire.Number = 1
	fieldParameters  protowire.Number = 2
	fieldFallback    protowire.Number = 3
	fieldContent     protowire.Number = 4
	fieldCompression protowire.Number = 5

	fieldAuthorityID  protowire.Number = 1
	fieldTypeID       protowire.Number = 2
	fieldVersionMajor protowire.Number = 3
	fieldVersionMinor protowire.Number = 4

	fieldMapKey   protowire.Number = 1
	fieldMapValue protowire.Number = 2
)

// Marshal encodes c in the EncodedContent protobuf layout.
func (c *EncodedContent) Marshal() []byte {
	var b []byte

	if c.Type != nil {
		b = protowire.AppendTag(b, fieldType, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalContentTypeID(c.Type))
	}

	keys := make([]string, 0, len(c.Parameters))
	for k := range c.Parameters {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		var entry []byte
		entry = appendString(entry, fieldMapKey, k)
		entry = appendString(entry, fieldMapValue, c.Parameters[k])

		b = protowire.AppendTag(b, fieldParameters, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}

	if c.Fallback != nil {
		b = protowire.AppendTag(b, fieldFallback, protowire.BytesType)
		b = protowire.AppendString(b, *c.Fallback)
	}

	if len(c.Content) > 0 {
		b = protowire.AppendTag(b, fieldContent, protowire.BytesType)
		b = protowire.AppendBytes(b, c.Content)
	}

	if c.Compression != nil {
		b = protowire.AppendTag(b, fieldCompression, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(*c.Compression)))
	}

	return b
}

func marshalContentTypeID(id *ContentTypeID) []byte {
	var b []byte
	b = appendString(b, fieldAuthorityID, id.AuthorityID)
	b = appendString(b, fieldTypeID, id.TypeID)
	if id.VersionMajor != 0 {
		b = protowire.AppendTag(b, fieldVersionMajor, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(id.VersionMajor))
	}
	if id.VersionMinor != 0 {
		b = protowire.AppendTag(b, fieldVersionMinor, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(id.VersionMinor))
	}
	return b
}

// appendString writes a proto3 string field, omitting the default value.
func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// Unmarshal decodes an EncodedContent from its protobuf encoding.
func Unmarshal(b []byte) (*EncodedContent, error) {
	c := &EncodedContent{Parameters: make(map[string]string)}

	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldType && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			id, err := unmarshalContentTypeID(v)
			if err != nil {
				return 0, err
			}
			c.Type = id
			return n, nil

		case num == fieldParameters && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			k, val, err := unmarshalMapEntry(v)
			if err != nil {
				return 0, err
			}
			c.Parameters[k] = val
			return n, nil

		case num == fieldFallback && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return n, nil
			}
			c.Fallback = &v
			return n, nil

		case num == fieldContent && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			c.Content = append([]byte(nil), v...)
			return n, nil

		case num == fieldCompression && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return n, nil
			}
			// Enums are int32 on the wire; negative values arrive sign-extended.
			if int64(v) < math.MinInt32 || int64(v) > math.MaxInt32 {
				return 0, fmt.Errorf("%w: compression %d out of range", ErrMalformed, int64(v))
			}
			compression := Compression(int32(v))
			c.Compression = &compression
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

func unmarshalContentTypeID(b []byte) (*ContentTypeID, error) {
	id := &ContentTypeID{}

	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldAuthorityID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			id.AuthorityID = v
			return n, nil
		case num == fieldTypeID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			id.TypeID = v
			return n, nil
		case num == fieldVersionMajor && typ == protowire.VarintType:
			v, n, err := consumeUint32(b)
			id.VersionMajor = v
			return n, err
		case num == fieldVersionMinor && typ == protowire.VarintType:
			v, n, err := consumeUint32(b)
			id.VersionMinor = v
			return n, err
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	if err != nil {
		return nil, fmt.Errorf("content type: %w", err)
	}

	return id, nil
}

func unmarshalMapEntry(b []byte) (string, string, error) {
	var key, value string

	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldMapKey && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			key = v
			return n, nil
		case num == fieldMapValue && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			value = v
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
	if err != nil {
		return "", "", fmt.Errorf("parameter: %w", err)
	}

	return key, value, nil
}

// consumeUint32 reads a varint that must fit in 32 bits.
func consumeUint32(b []byte) (uint32, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, n, nil
	}
	if v > math.MaxUint32 {
		return 0, 0, fmt.Errorf("%w: varint %d overflows uint32", ErrMalformed, v)
	}
	return uint32(v), n, nil
}

// consumeFields walks the fields of one message. field returns the number
// of value bytes it consumed, or a negative protowire error code.
func consumeFields(b []byte, field func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]

		m, err := field(num, typ, b)
		if err != nil {
			return err
		}
		if m < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrMalformed, num, protowire.ParseError(m))
		}
		b = b[m:]
	}
	return nil
}
