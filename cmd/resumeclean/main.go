// Package main is the entry point for the resumeclean CLI.
package main

import (
	"os"

	"github.com/jmylchreest/resumeclean/cmd/resumeclean/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
