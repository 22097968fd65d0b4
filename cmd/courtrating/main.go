package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goserg/courtrating/internal/cache/mem"
	"github.com/goserg/courtrating/internal/config"
	"github.com/goserg/courtrating/internal/logger"
	"github.com/goserg/courtrating/internal/publish"
	"github.com/goserg/courtrating/internal/service"
	"github.com/goserg/courtrating/internal/storage/csvfile"
	"github.com/goserg/courtrating/internal/storage/sqlite"
	"github.com/goserg/courtrating/internal/web"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath string
		serve      bool
	)
	flag.StringVar(&configPath, "config", "configs/rating.toml", "path to the TOML configuration")
	flag.BoolVar(&serve, "serve", false, "serve the latest stored snapshot over HTTP instead of rating")
	flag.Parse()

	cfg, err := config.New(configPath)
	if err != nil {
		return err
	}
	l := logger.New(cfg.Log.Level, cfg.Log.JSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serve {
		return runServer(ctx, cfg, l)
	}
	return runRating(ctx, cfg, l)
}

func runRating(ctx context.Context, cfg config.Config, l *logrus.Logger) error {
	sinks := service.Sinks{
		Tables: csvfile.New(l, cfg.Output.Dir, cfg.Output.WriteUpdates),
	}
	if cfg.Storage.SqliteFile != "" {
		snapshots, err := sqlite.New(l, cfg.Storage)
		if err != nil {
			return err
		}
		defer snapshots.Close()
		sinks.Snapshots = snapshots
	}
	if cfg.Publish.RedisURL != "" {
		client, err := publish.Dial(ctx, cfg.Publish.RedisURL)
		if err != nil {
			return err
		}
		publisher := publish.NewRedisStreamPublisher(client, cfg.Publish.Stream, l)
		defer publisher.Close()
		sinks.Publisher = publisher
	}

	ratingService, err := service.New(cfg, sinks, l)
	if err != nil {
		return err
	}
	_, err = ratingService.Run(ctx)
	return err
}

func runServer(ctx context.Context, cfg config.Config, l *logrus.Logger) error {
	if cfg.Storage.SqliteFile == "" {
		return errors.New("serve mode needs storage.sqlite_file")
	}
	snapshots, err := sqlite.New(l, cfg.Storage)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	snapshot, err := snapshots.LatestSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load latest snapshot: %w", err)
	}
	cache := mem.New()
	cache.Update(snapshot)

	server := web.New(cache, snapshots, cfg.Server, l)
	go func() {
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			l.WithError(err).Error("server shutdown")
		}
	}()
	return server.Serve()
}
