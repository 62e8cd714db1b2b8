package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fleetdata/truck-tyre-scraper/runner"
	"github.com/fleetdata/truck-tyre-scraper/runner/directoryrunner"
	"github.com/fleetdata/truck-tyre-scraper/runner/harvestrunner"
	"github.com/fleetdata/truck-tyre-scraper/runner/mergerunner"
)

func main() {
	if _, err := os.Stat("/.dockerenv"); os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: Error loading .env file: %v (continuing without it)", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	runner.Banner()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan

		log.Println("Received signal, shutting down...")

		cancel()
	}()

	cfg := runner.ParseConfig()

	runnerInstance, err := runnerFactory(cfg)
	if err != nil {
		cancel()
		os.Stderr.WriteString(err.Error() + "\n")

		os.Exit(1)
	}

	if err := runnerInstance.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		os.Stderr.WriteString(err.Error() + "\n")

		_ = runnerInstance.Close(ctx)

		cancel()

		os.Exit(1)
	}

	_ = runnerInstance.Close(ctx)

	cancel()

	os.Exit(0)
}

func runnerFactory(cfg *runner.Config) (runner.Runner, error) {
	switch cfg.RunMode {
	case runner.RunModeHarvest:
		return harvestrunner.New(cfg)
	case runner.RunModeDirectory:
		return directoryrunner.New(cfg)
	case runner.RunModeMerge:
		return mergerunner.New(cfg)
	default:
		return nil, fmt.Errorf("%w: %d", runner.ErrInvalidRunMode, cfg.RunMode)
	}
}
