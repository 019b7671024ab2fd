// Package wire defines the content envelope exchanged over the messaging
// network and its protobuf encoding.
//
// The layout matches the xmtp EncodedContent message:
//
//	EncodedContent {
//	  1: type        ContentTypeId
//	  2: parameters  map<string, string>
//	  3: fallback    optional string
//	  4: content     bytes
//	  5: compression optional Compression
//	}
//
//	ContentTypeId {
//	  1: authority_id  string
//	  2: type_id       string
//	  3: version_major uint32
//	  4: version_minor uint32
//	}
//
// Fields are written with google.golang.org/protobuf/encoding/protowire, so no
// generated code is needed. Parameters are emitted in sorted key order to keep
// the encoding deterministic. Unknown fields are skipped when decoding.
package wire
