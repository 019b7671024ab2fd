//go:build integration

package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/maxatome/go-testdeep/td"

	catpls "github.com/catpls/client-go"
)

var fixturesDir string

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	fixturesDir = os.Getenv("CATPLS_FIXTURES_DIR")
	if fixturesDir == "" {
		os.Stderr.WriteString("Skipping integration tests: CATPLS_FIXTURES_DIR not set\n")
		os.Exit(0)
	}

	os.Stderr.WriteString("Running integration tests...\n")
	os.Stderr.WriteString("Fixtures: " + fixturesDir + "\n")

	os.Exit(m.Run())
}

// fixtures returns every regular file in the fixtures directory.
func fixtures(t *testing.T) map[string][]byte {
	t.Helper()

	entries, err := os.ReadDir(fixturesDir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	files := map[string][]byte{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(fixturesDir, entry.Name()))
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		files[entry.Name()] = data
	}
	if len(files) == 0 {
		t.Skip("no fixture files")
	}
	return files
}

func encoders(t *testing.T) map[string]*catpls.Encoder {
	t.Helper()

	configs := map[string][]catpls.Option{
		"plain":   nil,
		"deflate": {catpls.WithCompression(catpls.CompressionDeflate)},
		"gzip":    {catpls.WithCompression(catpls.CompressionGzip)},
	}

	out := map[string]*catpls.Encoder{}
	for name, opts := range configs {
		enc, err := catpls.New(opts...)
		if err != nil {
			t.Fatalf("New(%s) error = %v", name, err)
		}
		out[name] = enc
	}
	return out
}

func TestIntegration_RemoteAttachmentRoundTrip(t *testing.T) {
	for name, data := range fixtures(t) {
		for encName, enc := range encoders(t) {
			t.Run(name+"/"+encName, func(t *testing.T) {
				content, err := enc.NewRemoteAttachment(bytes.Clone(data))
				if err != nil {
					t.Fatalf("NewRemoteAttachment() error = %v", err)
				}

				envelope := catpls.Marshal(content)
				t.Logf("%d bytes sealed into a %d byte envelope", len(data), len(envelope))

				decoded, err := catpls.Unmarshal(envelope)
				if err != nil {
					t.Fatalf("Unmarshal() error = %v", err)
				}
				td.Cmp(t, decoded, content)

				plaintext, err := enc.OpenRemoteAttachment(decoded)
				if err != nil {
					t.Fatalf("OpenRemoteAttachment() error = %v", err)
				}
				if !bytes.Equal(plaintext, data) {
					t.Error("opened plaintext differs from the fixture")
				}
			})
		}
	}
}

func TestIntegration_AttachmentRoundTrip(t *testing.T) {
	for name, data := range fixtures(t) {
		for encName, enc := range encoders(t) {
			t.Run(name+"/"+encName, func(t *testing.T) {
				content, err := enc.NewAttachment(data, "application/octet-stream", name)
				if err != nil {
					t.Fatalf("NewAttachment() error = %v", err)
				}

				decoded, err := catpls.Unmarshal(catpls.Marshal(content))
				if err != nil {
					t.Fatalf("Unmarshal() error = %v", err)
				}

				got, err := catpls.DecodeContent(decoded)
				if err != nil {
					t.Fatalf("DecodeContent() error = %v", err)
				}
				if !bytes.Equal(got, data) {
					t.Error("decoded content differs from the fixture")
				}
				td.Cmp(t, decoded.Parameters[catpls.ParamFilename], name)
			})
		}
	}
}
