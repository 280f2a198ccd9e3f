package main

import (
	"os"

	"github.com/stackforge/forgectl/internal/cli"
	"github.com/stackforge/forgectl/internal/logging"
)

// main is the entry point for the forgectl CLI binary.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
