// Package main is the entry point for the dispatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/bstc-oman/dispatch/internal/app"
	"github.com/bstc-oman/dispatch/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// The container is built by the root command once --config-dir and --log-level are parsed
	rootCmd := cli.NewRootCommand(app.New, version)
	return rootCmd.Execute()
}
