package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/u1and0/DiskUsageMonitor"
)

func main() {
	mon, err := diskmon.Conf("../../data/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mon.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("monitor exited: %v", err)
	}
}
