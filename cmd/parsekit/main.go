// Package main is the entry point for the parsekit CLI.
package main

import (
	"os"

	"github.com/griffithind/parsekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
