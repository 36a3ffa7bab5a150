package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/coachdesk/coachdesk/internal/buildinfo"
	"github.com/coachdesk/coachdesk/internal/client/cli"
	"github.com/coachdesk/coachdesk/internal/client/config"
	"github.com/coachdesk/coachdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.Load()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
