// Package main is the entry point for the csvgen CLI.
//
// csvgen asks for a set of input and output columns, then writes a CSV
// file with one row per combination of input variants.
//
// Commands: init, generate, preview, version, completion.
//
// For detailed usage information, run:
//
//	csvgen --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/csvgen/cmd/csvgen/commands"
	"github.com/imamik/csvgen/cmd/csvgen/handlers"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := handlers.Hint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}
