package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Werneck0live/gestao-terceirizados/internal/cli"
	"github.com/Werneck0live/gestao-terceirizados/internal/config"
)

func main() {
	config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
