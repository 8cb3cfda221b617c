package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/zarlcorp/core/pkg/zapp"

	"github.com/zarlcorp/zpersona/internal/cli"
	"github.com/zarlcorp/zpersona/internal/config"
	"github.com/zarlcorp/zpersona/internal/fakegen"
	"github.com/zarlcorp/zpersona/internal/geoip"
	"github.com/zarlcorp/zpersona/internal/identity"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zpersona"))

	ctx, cancel := zapp.SignalContext(context.Background())

	code := run(ctx, os.Args[1:])
	cancel()

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		code = 1
	}
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	src, err := fakegen.New(cfg.Backend)
	if err != nil {
		logger.Error("select fake-data backend", "backend", cfg.Backend, "err", err)
		return 1
	}

	geo := geoip.NewResolver(cfg.Geo, geoip.WithLogger(logger))
	svc := identity.NewService(src,
		identity.WithLocator(geo),
		identity.WithLogger(logger),
	)

	c := cli.New(svc,
		cli.WithDefaultLocale(cfg.Locale),
		cli.WithVersion(version),
	)
	if err := c.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "zpersona: %v\n", err)
		return 1
	}
	return 0
}
