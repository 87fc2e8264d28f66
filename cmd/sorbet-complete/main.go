// Package main provides the entry point for the sorbet-complete CLI.
package main

import (
	"os"

	"github.com/udn/sorbet/cmd/sorbet-complete/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
