package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/seabed-labs/shrimpsay/internal/logger"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion(version),
		fang.WithoutManpage(),
		fang.WithoutCompletions(),
	)
	if err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}
