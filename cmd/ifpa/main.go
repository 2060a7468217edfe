package main

import (
	"os"

	"github.com/fivetwenty-io/ifpa-client/cmd/ifpa/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := commands.NewRootCommand(commands.NewApp(), version, commit, date)

	if err := rootCmd.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
