// Package compression compresses and decompresses envelope content for the
// algorithms the envelope compression marker can name.
package compression

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"

	"github.com/catpls/client-go/internal/wire"
)

var (
	// ErrUnsupported is returned for compression values this package does not implement.
	ErrUnsupported = errors.New("unsupported compression")

	// ErrTooLarge is returned when content decompresses past the caller's limit.
	ErrTooLarge = errors.New("decompressed content too large")
)

// Compress compresses data with the given algorithm at the default level.
func Compress(c wire.Compression, data []byte) ([]byte, error) {
	var buf bytes.Buffer

	var w io.WriteCloser
	switch c {
	case wire.CompressionDeflate:
		fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			return nil, fmt.Errorf("creating deflate writer: %w", err)
		}
		w = fw
	case wire.CompressionGzip:
		w = gzip.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, c)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("compressing with %s: %w", c, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finishing %s stream: %w", c, err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress. Output longer than limit bytes fails with
// ErrTooLarge before more than limit+1 bytes are buffered.
func Decompress(c wire.Compression, data []byte, limit int64) ([]byte, error) {
	var r io.ReadCloser
	switch c {
	case wire.CompressionDeflate:
		r = flate.NewReader(bytes.NewReader(data))
	case wire.CompressionGzip:
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		r = gr
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, c)
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", c, err)
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: %s content exceeds %d bytes", ErrTooLarge, c, limit)
	}

	return out, nil
}
