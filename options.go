package catpls

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// DefaultFallback is the fallback text written to every envelope unless
// WithFallback overrides it.
const DefaultFallback = "must say please."

// DefaultMaxContentSize bounds how large compressed envelope content may grow
// when it is decoded, unless WithMaxContentSize overrides it.
const DefaultMaxContentSize = 64 << 20

// encoderConfig holds configuration for an Encoder.
type encoderConfig struct {
	fallback       string
	compression    *Compression
	randReader     io.Reader
	randReaderSet  bool
	contentDigest  bool
	maxContentSize int64
}

// Option configures an Encoder.
type Option func(*encoderConfig)

func defaultConfig() *encoderConfig {
	return &encoderConfig{
		fallback:       DefaultFallback,
		contentDigest:  true,
		maxContentSize: DefaultMaxContentSize,
	}
}

// WithFallback sets the fallback text shown by clients that cannot render
// the content type.
func WithFallback(text string) Option {
	return func(c *encoderConfig) {
		c.fallback = text
	}
}

// WithCompression compresses envelope content and sets the envelope's
// compression marker.
// Default: no compression
func WithCompression(compression Compression) Option {
	return func(c *encoderConfig) {
		c.compression = &compression
	}
}

// WithRandReader sets the source for secrets and salts.
// Default: crypto/rand
func WithRandReader(r io.Reader) Option {
	return func(c *encoderConfig) {
		c.randReader = r
		c.randReaderSet = true
	}
}

// WithContentDigest controls whether remote attachments carry a SHA-256
// content digest. When disabled the contentDigest parameter is empty and
// OpenRemoteAttachment ignores whatever digest an envelope carries, including
// placeholders written by clients that never compute one.
// Default: true
func WithContentDigest(enabled bool) Option {
	return func(c *encoderConfig) {
		c.contentDigest = enabled
	}
}

// WithMaxContentSize caps the size of decompressed envelope content.
// Default: DefaultMaxContentSize
func WithMaxContentSize(n int64) Option {
	return func(c *encoderConfig) {
		c.maxContentSize = n
	}
}

// validate reports every configuration problem at once.
func (c *encoderConfig) validate() error {
	var result *multierror.Error

	if !utf8.ValidString(c.fallback) {
		result = multierror.Append(result, errors.New("fallback must be valid UTF-8"))
	}

	if c.compression != nil {
		switch *c.compression {
		case CompressionDeflate, CompressionGzip:
		default:
			result = multierror.Append(result, fmt.Errorf("unsupported compression %s", *c.compression))
		}
	}

	if c.maxContentSize <= 0 {
		result = multierror.Append(result, fmt.Errorf("max content size must be positive, got %d", c.maxContentSize))
	}

	if c.randReaderSet && c.randReader == nil {
		result = multierror.Append(result, errors.New("rand reader cannot be nil"))
	}

	return result.ErrorOrNil()
}
