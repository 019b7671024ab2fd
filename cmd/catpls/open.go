package main

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	catpls "github.com/catpls/client-go"
)

func newOpenCmd(a *app) *cobra.Command {
	var (
		output       string
		verifyDigest bool
	)

	cmd := &cobra.Command{
		Use:   "open ENVELOPE",
		Short: "Extract the file carried by an envelope",
		Long: `Extract the file carried by ENVELOPE. Remote attachments are verified
against their content digest and decrypted; plain attachments are
decompressed when needed. Use --verify-digest=false for envelopes from
clients that write a placeholder digest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envelope, err := a.readInput(args[0])
			if err != nil {
				return err
			}

			content, err := catpls.Unmarshal(envelope)
			if err != nil {
				return err
			}

			encoder := a.encoder
			if !verifyDigest {
				encoder, err = catpls.New(append(slices.Clip(a.encoderOpts), catpls.WithContentDigest(false))...)
				if err != nil {
					return err
				}
			}

			data, err := open(encoder, content)
			if err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"type": typeString(content),
				"size": len(data),
			}).Info("Opened envelope")

			return a.writeOutput(output, data)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", stdio, "Where to write the file.")
	cmd.Flags().BoolVar(&verifyDigest, "verify-digest", true, "Check the contentDigest of remote attachments. Disable for clients that write a placeholder.")

	return cmd
}

func open(encoder *catpls.Encoder, content *catpls.EncodedContent) ([]byte, error) {
	switch {
	case content.Type != nil && content.Type.SameType(catpls.ContentTypeRemoteStaticContent):
		return encoder.OpenRemoteAttachment(content)
	case content.Type != nil && content.Type.SameType(catpls.ContentTypeAttachment):
		return encoder.DecodeContent(content)
	}
	return nil, fmt.Errorf("%w: cannot open content of type %q", catpls.ErrContentTypeMismatch, typeString(content))
}

func typeString(content *catpls.EncodedContent) string {
	if content.Type == nil {
		return ""
	}
	return content.Type.String()
}
