package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/Gurpartap/numprompt/internal/cli"
	"github.com/Gurpartap/numprompt/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	logger := newLogger(os.Stderr, cfg.SlogLevel(), color.NoColor)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = cli.Execute(ctx, os.Args[1:], cli.Options{
		Config: cfg,
		In:     os.Stdin,
		Out:    color.Output,
		Err:    color.Error,
		Logger: logger,
	})
	if err != nil {
		logger.Debug("command failed", "error", err)
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
