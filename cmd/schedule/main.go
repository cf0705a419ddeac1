// Package main validates a yoga studio event document.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/yogastudio/internal/platform/cmd"
	"github.com/louisbranch/yogastudio/internal/platform/config"
	"github.com/louisbranch/yogastudio/internal/tools/schedulecheck"
)

func main() {
	cfg, err := schedulecheck.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSchedule, func(ctx context.Context) error {
		return schedulecheck.Run(ctx, cfg, os.Stdin, os.Stdout)
	})
	switch {
	case err == nil:
	case errors.Is(err, schedulecheck.ErrInvalidEvents):
		log.Printf("%s: %v", platformcmd.ServiceSchedule, err)
		stop()
		os.Exit(1)
	default:
		stop()
		config.Exitf("%s: %v", platformcmd.ServiceSchedule, err)
	}
}
