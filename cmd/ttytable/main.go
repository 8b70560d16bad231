package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bjaus/table/internal/cli"
)

// Version is set via ldflags during build.
var Version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	app := cli.NewApp()
	app.Version = Version
	if err := app.Execute(ctx, os.Args[1:]); err != nil {
		cancel()
		os.Exit(cli.ExitCode(err))
	}
}
