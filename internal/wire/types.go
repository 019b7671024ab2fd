package wire

import (
	"fmt"
	"maps"
)

// Compression identifies how an envelope's content bytes are compressed.
// Values are protocol constants.
type Compression int32

const (
	// CompressionDeflate marks raw DEFLATE (RFC 1951) content.
	CompressionDeflate Compression = 0
	// CompressionGzip marks gzip (RFC 1952) content.
	CompressionGzip Compression = 1
)

// String returns the human-readable name of a compression value.
func (c Compression) String() string {
	switch c {
	case CompressionDeflate:
		return "deflate"
	case CompressionGzip:
		return "gzip"
	default:
		return fmt.Sprintf("unknown(%d)", int32(c))
	}
}

// ContentTypeID identifies the schema of an envelope's content.
type ContentTypeID struct {
	// AuthorityID is the naming authority, e.g. "xmtp.org".
	AuthorityID string
	// TypeID is the content type name within the authority.
	TypeID string
	// VersionMajor is the major schema version.
	VersionMajor uint32
	// VersionMinor is the minor schema version.
	VersionMinor uint32
}

// String formats the id as authority/type:major.minor.
func (id ContentTypeID) String() string {
	return fmt.Sprintf("%s/%s:%d.%d", id.AuthorityID, id.TypeID, id.VersionMajor, id.VersionMinor)
}

// SameType reports whether id and other name the same authority and type,
// ignoring the minor version.
func (id ContentTypeID) SameType(other ContentTypeID) bool {
	return id.AuthorityID == other.AuthorityID &&
		id.TypeID == other.TypeID &&
		id.VersionMajor == other.VersionMajor
}

// EncodedContent is one unit of message content and the metadata needed to
// interpret it.
type EncodedContent struct {
	// Type identifies the content schema. Nil when absent on the wire.
	Type *ContentTypeID
	// Parameters carries string metadata. Keys are unique; order is irrelevant.
	Parameters map[string]string
	// Fallback is shown by clients that do not understand Type.
	Fallback *string
	// Compression is set when Content is compressed.
	Compression *Compression
	// Content is the payload.
	Content []byte
}

// Clone returns a deep copy of c.
func (c *EncodedContent) Clone() *EncodedContent {
	if c == nil {
		return nil
	}

	clone := &EncodedContent{
		Parameters: maps.Clone(c.Parameters),
		Content:    append([]byte(nil), c.Content...),
	}
	if c.Type != nil {
		id := *c.Type
		clone.Type = &id
	}
	if c.Fallback != nil {
		fallback := *c.Fallback
		clone.Fallback = &fallback
	}
	if c.Compression != nil {
		compression := *c.Compression
		clone.Compression = &compression
	}
	return clone
}
