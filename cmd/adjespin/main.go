// Package main is the entry point for the adjespin CLI.
package main

import (
	"os"

	"github.com/f3rmion/adjespin/cmd/adjespin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
