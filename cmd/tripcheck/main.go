/*
Package main provides the CLI entry point for Tripcheck.
*/
package main

import (
	"os"

	"github.com/tripcheck/tripcheck/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
