package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/goliatone/go-mathsheet/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.execute(ctx, os.Args[1:]); err != nil {
		log := a.logger()
		log.Error("mathsheet failed", logger.Error(err))
		_ = log.Sync()
		stop()
		os.Exit(1)
	}
	_ = a.logger().Sync()
}
