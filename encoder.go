package catpls

import (
	"fmt"
	"unicode/utf8"

	"github.com/catpls/client-go/internal/compression"
	"github.com/catpls/client-go/internal/crypto"
)

// Encoder builds attachment envelopes. An Encoder holds only immutable
// configuration and is safe for concurrent use.
type Encoder struct {
	cfg encoderConfig
}

// New creates an Encoder with the given options.
func New(opts ...Option) (*Encoder, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	return &Encoder{cfg: *cfg}, nil
}

// defaultEncoder backs the package-level helpers.
var defaultEncoder = &Encoder{cfg: *defaultConfig()}

// NewAttachment builds a plaintext attachment envelope with the default
// configuration. See Encoder.NewAttachment.
func NewAttachment(data []byte, mimeType, filename string) (*EncodedContent, error) {
	return defaultEncoder.NewAttachment(data, mimeType, filename)
}

// NewRemoteAttachment encrypts data into a remote attachment envelope with the
// default configuration. See Encoder.NewRemoteAttachment.
func NewRemoteAttachment(data []byte) (*EncodedContent, error) {
	return defaultEncoder.NewRemoteAttachment(data)
}

// OpenRemoteAttachment decrypts a remote attachment envelope with the default
// configuration. See Encoder.OpenRemoteAttachment.
func OpenRemoteAttachment(content *EncodedContent) ([]byte, error) {
	return defaultEncoder.OpenRemoteAttachment(content)
}

// NewAttachment builds an inline attachment envelope annotated with its MIME
// type and filename. The content is a copy of data, compressed when the
// Encoder is configured with a compression.
func (e *Encoder) NewAttachment(data []byte, mimeType, filename string) (*EncodedContent, error) {
	if !utf8.ValidString(mimeType) || !utf8.ValidString(filename) {
		return nil, fmt.Errorf("%w: mime type and filename must be valid UTF-8", ErrInvalidContent)
	}

	id := ContentTypeAttachment
	content := &EncodedContent{
		Type: &id,
		Parameters: map[string]string{
			ParamMimeType: mimeType,
			ParamFilename: filename,
		},
		Fallback: e.fallback(),
		Content:  append([]byte(nil), data...),
	}

	if err := e.compress(content); err != nil {
		return nil, err
	}

	return content, nil
}

// NewRemoteAttachment encrypts data into a remote attachment envelope.
//
// The process:
//  1. A fresh secret and salt are drawn from the random source
//  2. HKDF-SHA-256 derives the AES-256 key
//  3. data is sealed in place with AES-256-GCM under nonce counter zero
//  4. secret, salt and nonce are written as 0x-hex parameters
//
// data's contents are overwritten with ciphertext and the envelope content may
// share its storage. The content is len(data)+16 bytes unless compression is
// configured. Either a complete envelope or an error is returned; plaintext is
// never returned labeled as encrypted.
func (e *Encoder) NewRemoteAttachment(data []byte) (*EncodedContent, error) {
	secret := crypto.NewSecretFrom(e.cfg.randReader)
	salt := crypto.NewSaltFrom(e.cfg.randReader)

	// Every call derives a fresh key, so a fresh sequence at zero never
	// repeats a (key, nonce) pair.
	sealed, nonce, err := Encrypt(data, secret, salt, NewNonceSequence())
	if err != nil {
		return nil, err
	}

	id := ContentTypeRemoteStaticContent
	content := &EncodedContent{
		Type: &id,
		Parameters: map[string]string{
			ParamSecret: crypto.ToHex(secret),
			ParamSalt:   crypto.ToHex(salt),
			ParamNonce:  crypto.ToHex(nonce),
			ParamScheme: SchemeHTTPS,
		},
		Fallback: e.fallback(),
		Content:  sealed,
	}

	if err := e.compress(content); err != nil {
		return nil, err
	}

	content.Parameters[ParamContentDigest] = ""
	if e.cfg.contentDigest {
		content.Parameters[ParamContentDigest] = crypto.ContentDigest(content.Content)
	}

	return content, nil
}

// OpenRemoteAttachment verifies and decrypts a remote attachment envelope and
// returns the plaintext. content is not modified.
func (e *Encoder) OpenRemoteAttachment(content *EncodedContent) ([]byte, error) {
	params, err := ParseRemoteParameters(content)
	if err != nil {
		return nil, err
	}

	if e.cfg.contentDigest {
		if err := crypto.VerifyContentDigest(params.ContentDigest, content.Content); err != nil {
			return nil, wrapError(err)
		}
	}

	ciphertext, err := e.DecodeContent(content)
	if err != nil {
		return nil, err
	}
	if content.Compression == nil {
		// DecodeContent returned the envelope's own slice; opening in place
		// must not touch it.
		ciphertext = append([]byte(nil), ciphertext...)
	}

	plaintext, err := crypto.Decrypt(ciphertext, params.Secret, params.Salt, params.Nonce)
	if err != nil {
		return nil, wrapError(err)
	}

	return plaintext, nil
}

// RemoteParameters are the decoded parameters of a remote attachment.
type RemoteParameters struct {
	ContentDigest string
	Secret        []byte
	Salt          []byte
	Nonce         []byte
	Scheme        string
}

// ParseRemoteParameters checks that content is a remote attachment and decodes
// its key material parameters.
func ParseRemoteParameters(content *EncodedContent) (*RemoteParameters, error) {
	if err := checkType(content, ContentTypeRemoteStaticContent); err != nil {
		return nil, err
	}

	secret, err := requireHex(content, ParamSecret, SecretSize)
	if err != nil {
		return nil, err
	}
	salt, err := requireHex(content, ParamSalt, SaltSize)
	if err != nil {
		return nil, err
	}
	nonce, err := requireHex(content, ParamNonce, NonceSize)
	if err != nil {
		return nil, err
	}

	return &RemoteParameters{
		ContentDigest: content.Parameters[ParamContentDigest],
		Secret:        secret,
		Salt:          salt,
		Nonce:         nonce,
		Scheme:        content.Parameters[ParamScheme],
	}, nil
}

// DecodeContent removes compression with the default configuration. See
// Encoder.DecodeContent.
func DecodeContent(content *EncodedContent) ([]byte, error) {
	return defaultEncoder.DecodeContent(content)
}

// DecodeContent returns the envelope content with any compression removed.
// Uncompressed content is returned without copying. Content that
// decompresses past the configured maximum size fails with ErrCompression.
func (e *Encoder) DecodeContent(content *EncodedContent) ([]byte, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrInvalidContent)
	}
	if content.Compression == nil {
		return content.Content, nil
	}

	data, err := compression.Decompress(*content.Compression, content.Content, e.cfg.maxContentSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompression, err)
	}
	return data, nil
}

func (e *Encoder) fallback() *string {
	fallback := e.cfg.fallback
	return &fallback
}

func (e *Encoder) compress(content *EncodedContent) error {
	if e.cfg.compression == nil {
		return nil
	}

	compressed, err := compression.Compress(*e.cfg.compression, content.Content)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCompression, err)
	}

	c := *e.cfg.compression
	content.Content = compressed
	content.Compression = &c
	return nil
}

func checkType(content *EncodedContent, want ContentTypeID) error {
	if content == nil {
		return fmt.Errorf("%w: nil envelope", ErrInvalidContent)
	}
	if content.Type == nil {
		return fmt.Errorf("%w: missing content type", ErrInvalidContent)
	}
	if !content.Type.SameType(want) {
		return fmt.Errorf("%w: got %s, want %s", ErrContentTypeMismatch, content.Type, want)
	}
	return nil
}

func requireHex(content *EncodedContent, key string, size int) ([]byte, error) {
	value, ok := content.Parameters[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s parameter", ErrInvalidContent, key)
	}

	data, err := crypto.FromHexSize(value, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidContent, key, err)
	}
	return data, nil
}
