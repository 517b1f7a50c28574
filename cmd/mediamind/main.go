package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/mediamind/internal/cli"
	"github.com/nguyentantai21042004/mediamind/internal/config"
	"github.com/nguyentantai21042004/mediamind/internal/logger"
	"github.com/nguyentantai21042004/mediamind/pkg/executor"
)

func main() {
	// API keys may live in a local .env file; a missing file is fine.
	_ = godotenv.Load()

	configPath := os.Getenv("MEDIAMIND_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	deps := &cli.Dependencies{
		Config:   cfg,
		Logger:   logger.New(cfg.Logging.Level),
		Executor: executor.New(),
	}

	if err := cli.NewRootCmd(deps).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
