// Package main is the entry point for the cubetimer CLI/TUI.
package main

import (
	"os"

	"github.com/watchfire-io/cubetimer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
