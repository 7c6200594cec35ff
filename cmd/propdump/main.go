// Package main provides propdump, a CLI that prints the properties resolved from its own command line, environment, and an optional YAML file.
package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/cliprops/cli"
	"os"
)

func main() {
	set := newCommandSet(os.Stdout, os.Stderr, os.Environ())
	if err := run(set, os.Args[1:]); err != nil {
		// Usage errors were already reported along with usage information.
		if !errors.Is(err, &cli.UsageError{}) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
