package main

import (
	"classbook/config"
	"classbook/di"
	"classbook/shared/logger"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeNotifier()
	consumer.Run(ctx)
}
