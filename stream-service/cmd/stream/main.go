package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"log-router/pkg/kafka"
	"log-router/pkg/logging"
	"log-router/pkg/router"
	"log-router/pkg/sink"
	"log-router/stream-service/internal/config"
	"log-router/stream-service/internal/handler"
)

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("stream router stopped")
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.Init("log-router-stream", cfg.LogLevel, os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stackdriver, err := sink.NewStackdriver(ctx, cfg.GCPProject)
	if err != nil {
		return err
	}
	defer stackdriver.Close()

	client := sink.NewHTTPClient()
	r := router.New(
		[]router.TraceCollector{
			sink.NewCollector("jaeger", cfg.TraceCollectorURL, client),
			sink.NewCollector("stackdriver", cfg.LogAggregatorURL, client),
		},
		stackdriver,
		cfg.Location(),
		router.WithLogger(logger),
	)

	consumer := kafka.NewBatchConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.GroupID,
		cfg.BatchSize,
		cfg.BatchTimeout,
		handler.NewBatchHandler(r, logger),
	)
	defer consumer.Close()

	logger.WithFields(log.Fields{
		"broker": cfg.KafkaBroker,
		"topic":  cfg.KafkaTopic,
		"group":  cfg.GroupID,
	}).Info("stream router started")

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("stream router shut down")
	return nil
}
