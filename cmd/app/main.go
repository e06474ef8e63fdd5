package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"servicerequest/api"
	"servicerequest/cmd"
	httpadapter "servicerequest/internal/adapters/in/http"
	"servicerequest/internal/adapters/out/notify"
	"servicerequest/internal/adapters/out/notify/kafka"
	notifyredis "servicerequest/internal/adapters/out/notify/redis"
	"servicerequest/internal/adapters/out/postgres/migrations"
	"servicerequest/internal/core/ports"
	"servicerequest/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	level, _ := configs.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		logger.Error("service stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := openDatabase(ctx, configs, logger)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	publisher, closePublishers, err := newPublisher(ctx, configs, m, logger)
	if err != nil {
		return err
	}
	defer closePublishers()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, m, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	doc, err := api.Load(ctx)
	if err != nil {
		return err
	}

	e, err := httpadapter.NewRouter(httpadapter.RouterConfig{
		Server:   app.CreateHTTPServer(),
		Document: doc,
		Gatherer: registry,
		Health: func(ctx context.Context) error {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	e.Logger.SetLevel(configs.EchoLogLevel())

	return startWebServer(ctx, e, configs, logger)
}

func openDatabase(ctx context.Context, configs cmd.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	version, err := migrations.Up(ctx, sqlDB)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "database migrated", "version", version)

	return gormDB, nil
}

// newPublisher builds the event sink chain: the log sink always, Kafka and
// Redis when configured, all counted by the metrics decorator.
func newPublisher(
	ctx context.Context,
	configs cmd.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) (ports.EventPublisher, func(), error) {
	sinks := notify.Multi{notify.NewLog(logger)}
	var closers []func()
	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if len(configs.KafkaBrokers) > 0 {
		producer, err := kafka.New(ctx, configs.KafkaBrokers, configs.KafkaTopic)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, producer)
		closers = append(closers, producer.Close)
		logger.InfoContext(ctx, "publishing events to kafka", "topic", configs.KafkaTopic)
	}

	if configs.RedisURL != "" {
		client, err := notifyredis.Dial(ctx, configs.RedisURL)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		sinks = append(sinks, notifyredis.NewPublisher(client, configs.RedisChannel))
		closers = append(closers, func() { _ = client.Close() })
		logger.InfoContext(ctx, "publishing events to redis", "channel", configs.RedisChannel)
	}

	return notify.NewMetered(sinks, m), closeAll, nil
}

func startWebServer(ctx context.Context, e *echo.Echo, configs cmd.Config, logger *slog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(ctx, "http server listening", "addr", configs.HTTPAddr())
		if err := e.Start(configs.HTTPAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
		defer cancel()
		logger.InfoContext(shutdownCtx, "shutting down http server")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
