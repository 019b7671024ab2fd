package catpls

import "github.com/catpls/client-go/internal/wire"

// EncodedContent is a content envelope: type id, parameters, fallback text,
// optional compression marker and content bytes.
type EncodedContent = wire.EncodedContent

// ContentTypeID identifies the schema of an envelope's content.
type ContentTypeID = wire.ContentTypeID

// Compression identifies how envelope content is compressed.
type Compression = wire.Compression

// Compression constants.
const (
	// CompressionDeflate compresses content with raw DEFLATE.
	CompressionDeflate = wire.CompressionDeflate
	// CompressionGzip compresses content with gzip.
	CompressionGzip = wire.CompressionGzip
)

// AuthorityXMTP is the naming authority of the attachment content types.
const AuthorityXMTP = "xmtp.org"

var (
	// ContentTypeAttachment identifies an inline plaintext attachment.
	ContentTypeAttachment = ContentTypeID{
		AuthorityID:  AuthorityXMTP,
		TypeID:       "attachment",
		VersionMajor: 1,
		VersionMinor: 0,
	}

	// ContentTypeRemoteStaticContent identifies an encrypted remote attachment.
	ContentTypeRemoteStaticContent = ContentTypeID{
		AuthorityID:  AuthorityXMTP,
		TypeID:       "remoteStaticContent",
		VersionMajor: 1,
		VersionMinor: 0,
	}
)

// Envelope parameter keys.
const (
	ParamMimeType      = "mimeType"
	ParamFilename      = "filename"
	ParamContentDigest = "contentDigest"
	ParamSecret        = "secret"
	ParamSalt          = "salt"
	ParamNonce         = "nonce"
	ParamScheme        = "scheme"
)

// SchemeHTTPS is the scheme parameter of every remote attachment.
const SchemeHTTPS = "https://"

// Marshal encodes an envelope in its protobuf wire format.
func Marshal(content *EncodedContent) []byte {
	return content.Marshal()
}

// Unmarshal decodes an envelope from its protobuf wire format.
func Unmarshal(data []byte) (*EncodedContent, error) {
	content, err := wire.Unmarshal(data)
	if err != nil {
		return nil, wrapError(err)
	}
	return content, nil
}
