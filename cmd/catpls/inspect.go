package main

import (
	"encoding/json"
	"maps"

	"github.com/spf13/cobra"

	catpls "github.com/catpls/client-go"
)

// redacted replaces the secret parameter in inspect output.
const redacted = "<redacted>"

// InspectOutput is the JSON summary printed by the inspect command.
type InspectOutput struct {
	Type        string            `json:"type"`
	Parameters  map[string]string `json:"parameters"`
	Fallback    *string           `json:"fallback,omitempty"`
	Compression string            `json:"compression,omitempty"`
	ContentSize int               `json:"contentSize"`
}

func newInspectCmd(a *app) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "inspect ENVELOPE",
		Short: "Describe an envelope as JSON",
		Long: `Print the content type, parameters, fallback, compression and content
size of ENVELOPE as JSON. The secret of a remote attachment is masked
unless --reveal is given.`,
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

			enc := json.NewEncoder(a.cfg.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(describe(content, reveal))
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the secret instead of masking it.")

	return cmd
}

func describe(content *catpls.EncodedContent, reveal bool) InspectOutput {
	params := maps.Clone(content.Parameters)
	if params == nil {
		params = map[string]string{}
	}
	if _, ok := params[catpls.ParamSecret]; ok && !reveal {
		params[catpls.ParamSecret] = redacted
	}

	out := InspectOutput{
		Type:        typeString(content),
		Parameters:  params,
		Fallback:    content.Fallback,
		ContentSize: len(content.Content),
	}
	if content.Compression != nil {
		out.Compression = content.Compression.String()
	}
	return out
}
