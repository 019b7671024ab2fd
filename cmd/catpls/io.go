package main

import (
	"fmt"
	"io"
	"os"
)

// stdio names standard input or output in place of a file path.
const stdio = "-"

func (a *app) readInput(path string) ([]byte, error) {
	if path == stdio {
		data, err := io.ReadAll(a.cfg.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func (a *app) writeOutput(path string, data []byte) error {
	if path == "" || path == stdio {
		if _, err := a.cfg.Stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
