package main

import (
	"context"
	"errors"
	"os"

	"github.com/Shi-553/music-assistant-nicovideo-fixtures/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "nicofix",
		Usage:    "Generate Niconico API fixtures for provider tests",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrMissingSession) {
			logger.Error("NICONICO_SESSION environment variable is required")
			logger.Error("Set it before running generation:")
			logger.Error("  export NICONICO_SESSION='your_session_token'")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
