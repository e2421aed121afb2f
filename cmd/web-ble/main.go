package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/web-ble/internal/config"
	"github.com/zestagio/web-ble/internal/logger"
	serverdebug "github.com/zestagio/web-ble/internal/server-debug"
)

var configPath = flag.String("config", "configs/config.toml", "Path to config file")

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	if err := logger.Init(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}
	defer logger.Sync()

	lg := zap.L().Named("main")

	srvWeb, err := initServerWeb(
		cfg.Global.IsProduction(),
		cfg.Servers.Web.Addr,
		cfg.Servers.Web.Root,
	)
	if err != nil {
		return fmt.Errorf("init web server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return srvWeb.Run(ctx) })

	if addr := cfg.Servers.Debug.Addr; addr != "" {
		srvDebug, err := serverdebug.New(serverdebug.NewOptions(addr))
		if err != nil {
			return fmt.Errorf("init debug server: %v", err)
		}
		eg.Go(func() error { return srvDebug.Run(ctx) })
	} else {
		lg.Debug("debug server disabled")
	}

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
