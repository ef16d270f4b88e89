package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration")
	interactive := flag.Bool("interactive", true, "read commands (set X Y, pause, start, step, reset, resize W H, quit) from stdin")
	flag.Parse()

	logger := utils.NewLogger(os.Stderr)

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		logger.Warn(fmt.Sprintf("using default configuration: %v", err))
		config = utils.DefaultConfig()
	}

	view := newTerminalView(model.NewTerminalRenderer(os.Stdout), config)
	runner, err := game.NewRunner(config, game.WithRenderer(view), game.WithLogger(logger))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start: %+v", err))
		os.Exit(1)
	}
	displayGameInfo(config, runner)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var commands io.Reader
	if *interactive {
		commands = os.Stdin
	}
	if err = runner.Run(ctx, commands); err != nil {
		logger.Error(fmt.Sprintf("run failed: %+v", err))
		os.Exit(1)
	}
	displayFinalStats(view.lastStats, runner.Generation())
}
