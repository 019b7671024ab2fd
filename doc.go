// Package catpls encodes binary attachments as content envelopes for a
// messaging network.
//
// Two content types are supported:
//
//   - xmtp.org/attachment:1.0 carries the bytes as-is, annotated with a MIME
//     type and filename.
//
//   - xmtp.org/remoteStaticContent:1.0 carries the bytes sealed with
//     AES-256-GCM. The key is derived with HKDF-SHA-256 from a random 32-byte
//     secret and 16-byte salt, and the secret, salt and nonce travel as
//     0x-hex envelope parameters so the receiver can decrypt out of band.
//
// Basic usage:
//
//	envelope, err := catpls.NewAttachment(data, "image/jpeg", "cat.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	wireBytes := envelope.Marshal()
//
//	// Encrypt instead. data is overwritten with ciphertext.
//	remote, err := catpls.NewRemoteAttachment(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Receiver side.
//	plaintext, err := catpls.OpenRemoteAttachment(remote)
//
// Use New with options such as WithCompression or WithFallback to customize
// envelopes. All operations are synchronous and an Encoder may be shared
// between goroutines.
package catpls
