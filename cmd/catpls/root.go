package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	catpls "github.com/catpls/client-go"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	envFile     string
	fallback    string
	compression string
	logLevel    string
	logFormat   string
	maxSize     int64
}

// app is the state a subcommand runs with once the root has processed the
// persistent flags.
type app struct {
	cfg     *Config
	opts    globalOptions
	log     *logrus.Entry
	encoder *catpls.Encoder

	// encoderOpts are the options encoder was built with. Subcommands extend
	// them when a flag of their own changes the configuration.
	encoderOpts []catpls.Option
}

func run(args []string, cfg *Config) error {
	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd(cfg *Config) *cobra.Command {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:   "catpls",
		Short: "Encode and encrypt cat picture attachments",
		Long: `catpls builds attachment envelopes for a messaging protocol.

A plain attachment carries the file bytes with their MIME type and file
name. A remote attachment carries the file sealed with AES-256-GCM, along
with everything a recipient needs to open it.

Every flag may also be set through a CATPLS_ environment variable, for
example CATPLS_COMPRESSION=gzip. Variables are read from a .env file when
one is present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.SetIn(cfg.Stdin)
	rootCmd.SetOut(cfg.Stdout)
	rootCmd.SetErr(cfg.Stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.opts.envFile, "env-file", ".env", "File of environment variables to load, ignored when missing.")
	flags.StringVar(&a.opts.fallback, "fallback", catpls.DefaultFallback, "Fallback text for clients that cannot render attachments.")
	flags.StringVar(&a.opts.compression, "compression", "none", "Content compression: none, deflate or gzip.")
	flags.StringVar(&a.opts.logLevel, "log-level", "info", "Log level: panic, fatal, error, warn, info, debug or trace.")
	flags.StringVar(&a.opts.logFormat, "log-format", "text", "Log format: text or json.")
	flags.Int64Var(&a.opts.maxSize, "max-content-size", catpls.DefaultMaxContentSize, "Largest content, in bytes, a compressed envelope may decode to.")

	rootCmd.AddCommand(
		newAttachCmd(a),
		newRemoteCmd(a),
		newOpenCmd(a),
		newInspectCmd(a),
	)

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	// The env file location may itself come from the environment, so it is
	// resolved before the file is loaded.
	flags := cmd.Flags()
	if f := flags.Lookup("env-file"); f != nil && !f.Changed {
		if v, ok := os.LookupEnv(envName(envPrefix, f.Name)); ok {
			a.opts.envFile = v
		}
	}
	if err := loadEnvFile(a.opts.envFile); err != nil {
		return err
	}
	if err := setFlagsFromEnv(envPrefix, flags); err != nil {
		return err
	}

	log, err := newLogger(a.cfg.Stderr, a.opts.logLevel, a.opts.logFormat)
	if err != nil {
		return err
	}
	a.log = log.WithField("command", cmd.Name())

	opts := []catpls.Option{
		catpls.WithFallback(a.opts.fallback),
		catpls.WithMaxContentSize(a.opts.maxSize),
	}
	compression, ok, err := parseCompression(a.opts.compression)
	if err != nil {
		return err
	}
	if ok {
		opts = append(opts, catpls.WithCompression(compression))
	}

	encoder, err := catpls.New(opts...)
	if err != nil {
		return err
	}
	a.encoder = encoder
	a.encoderOpts = opts

	return nil
}

// parseCompression maps a --compression value onto a compression mode. ok is
// false for "none".
func parseCompression(s string) (c catpls.Compression, ok bool, err error) {
	switch strings.ToLower(s) {
	case "", "none":
		return 0, false, nil
	case "deflate":
		return catpls.CompressionDeflate, true, nil
	case "gzip":
		return catpls.CompressionGzip, true, nil
	}
	return 0, false, fmt.Errorf("unknown compression %q, want none, deflate or gzip", s)
}
