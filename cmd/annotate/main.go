package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Version is set at build time.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf := &config{}
	cmd := newCommand(conf)
	if err := cmd.Run(ctx, os.Args); err != nil {
		report(os.Stderr, conf, err)
		stop()
		os.Exit(1)
	}

	if conf.status != nil {
		stop()
		conf.status.Exit()
	}
}
