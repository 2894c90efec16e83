package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"

	"log-router/pkg/logging"
	"log-router/pkg/router"
	"log-router/pkg/sink"
	"log-router/router-service/internal/config"
	"log-router/router-service/internal/handler"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load config")
	}

	logger, err := logging.Init("router", cfg.LogLevel, os.Stdout)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize logging")
	}

	// Created once per process and reused by every invocation.
	stackdriver, err := sink.NewStackdriver(context.Background(), cfg.GCPProject)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create Stackdriver client")
	}

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

	lambda.Start(handler.New(r).HandleKinesis)
}
