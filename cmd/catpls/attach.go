package main

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	catpls "github.com/catpls/client-go"
)

func newAttachCmd(a *app) *cobra.Command {
	var (
		mimeType string
		filename string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "attach FILE",
		Short: "Build a plain attachment envelope",
		Long: `Build an attachment envelope carrying FILE unencrypted.

The MIME type is taken from the file extension, or sniffed from the content
when the extension is unknown. Use - to read the file from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := a.readInput(path)
			if err != nil {
				return err
			}

			if filename == "" && path != stdio {
				filename = filepath.Base(path)
			}
			if mimeType == "" {
				mimeType = guessContentType(filename, data)
			}

			size := len(data)
			content, err := a.encoder.NewAttachment(data, mimeType, filename)
			if err != nil {
				return err
			}
			envelope := catpls.Marshal(content)

			a.log.WithFields(logrus.Fields{
				"mimeType":     mimeType,
				"filename":     filename,
				"size":         size,
				"envelopeSize": len(envelope),
			}).Info("Built attachment")

			return a.writeOutput(output, envelope)
		},
	}

	cmd.Flags().StringVar(&mimeType, "mime-type", "", "MIME type of the file. Detected when empty.")
	cmd.Flags().StringVar(&filename, "filename", "", "File name recorded in the envelope. Defaults to the base name of FILE.")
	cmd.Flags().StringVarP(&output, "output", "o", stdio, "Where to write the envelope.")

	return cmd
}

// guessContentType infers a MIME type from the file extension, then from
// the leading bytes of data.
func guessContentType(filename string, data []byte) string {
	if extension := strings.ToLower(filepath.Ext(filename)); extension != "" {
		if mimeType := mime.TypeByExtension(extension); mimeType != "" {
			return mimeType
		}
	}
	return http.DetectContentType(data)
}
