//go:build !testcoverage

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], DefaultConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "catpls: %v\n", err)
		os.Exit(1)
	}
}
