package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/roomlog/roomlog/cmd"
	"github.com/roomlog/roomlog/internal/logger"
)

func main() {
	// Route all diagnostic output to stderr so stdout stays clean
	// for JSON and table output.
	logger.InitPterm()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
