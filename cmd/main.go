package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/app"
)

const appName = "vedic_chart"

func main() {
	cfg, err := app.NewEnvConfig(appName)
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := app.New(appName, cfg)

	err1 := app.Run(ctx)
	if err1 != nil {
		panic(err1)
	}
}
