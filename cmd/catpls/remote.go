package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	catpls "github.com/catpls/client-go"
)

func newRemoteCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "remote FILE",
		Short: "Build an encrypted remote attachment envelope",
		Long: `Seal FILE with a fresh secret and salt and build a remote attachment
envelope. The envelope carries the key material, so anyone holding it can
open the file with "catpls open".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readInput(args[0])
			if err != nil {
				return err
			}

			size := len(data)
			content, err := a.encoder.NewRemoteAttachment(data)
			if err != nil {
				return err
			}
			envelope := catpls.Marshal(content)

			a.log.WithFields(logrus.Fields{
				"size":          size,
				"sealedSize":    len(content.Content),
				"envelopeSize":  len(envelope),
				"contentDigest": content.Parameters[catpls.ParamContentDigest],
			}).Info("Built remote attachment")

			return a.writeOutput(output, envelope)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", stdio, "Where to write the envelope.")

	return cmd
}
