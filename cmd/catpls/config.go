package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// envPrefix prefixes the environment variables that may supply any flag.
const envPrefix = "CATPLS_"

// Config holds the process streams the commands read from and write to.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config wired to the process's standard streams.
func DefaultConfig() *Config {
	return &Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// loadEnvFile loads path into the environment. A missing file is not an
// error. Variables already set in the environment win.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// setFlagsFromEnv sets every flag not given on the command line from the
// matching PREFIX_FLAG_NAME environment variable.
func setFlagsFromEnv(prefix string, flags *pflag.FlagSet) error {
	set := map[string]bool{}
	flags.Visit(func(f *pflag.Flag) {
		set[f.Name] = true
	})

	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		// ignore flags set from the commandline
		if set[f.Name] || err != nil {
			return
		}
		name := envName(prefix, f.Name)
		if e, ok := os.LookupEnv(name); ok {
			if setErr := flags.Set(f.Name, e); setErr != nil {
				err = fmt.Errorf("%s: %w", name, setErr)
			}
		}
	})
	return err
}

// envName maps a flag name onto its environment variable, e.g. log-level
// becomes CATPLS_LOG_LEVEL. The prefix may be given with or without its
// trailing underscore.
func envName(prefix, flag string) string {
	cleanPrefix := strings.TrimSuffix(prefix, "_")
	return fmt.Sprintf("%s_%s", cleanPrefix, strings.ReplaceAll(strings.ToUpper(flag), "-", "_"))
}
