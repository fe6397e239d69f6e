package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gitlab-api/internal/app"
	"gitlab-api/internal/logging"
)

// main is the entry point of the application.
// Ctrl-C cancels an in-flight request; the cancellation surfaces as a network error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	runner := app.NewAppRunner()
	code := runner.Main(ctx, os.Args[1:]) // Pass args excluding the program name
	stop()

	if code == 0 {
		logging.Logf(logging.Debug, "Application completed successfully.")
	}
	os.Exit(code)
}
