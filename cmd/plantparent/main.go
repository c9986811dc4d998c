package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/dmitrijs2005/plantparent/internal/buildinfo"
	"github.com/dmitrijs2005/plantparent/internal/cli"
	"github.com/dmitrijs2005/plantparent/internal/config"
	"github.com/dmitrijs2005/plantparent/internal/logging"
	"github.com/dmitrijs2005/plantparent/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reporter, err := telemetry.New(telemetry.Options{DSN: cfg.SentryDSN, Release: buildinfo.Version()}, log)
	if err != nil {
		log.Warn(ctx, "telemetry disabled", "error", err)
		reporter, _ = telemetry.New(telemetry.Options{}, log)
	}
	defer reporter.Flush(2 * time.Second)
	defer reporter.Recover()

	app, err := cli.NewApp(ctx, cfg, log, reporter)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		reporter.CaptureError(ctx, err, "startup")
		return 1
	}
	defer app.Close()

	app.Run(ctx)
	return 0
}
