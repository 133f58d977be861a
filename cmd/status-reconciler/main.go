package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zoff-tech/status-reconciler/pkg/config"
	"github.com/zoff-tech/status-reconciler/pkg/lookup"
	"github.com/zoff-tech/status-reconciler/pkg/processor"
	"github.com/zoff-tech/status-reconciler/pkg/sink"
	"github.com/zoff-tech/status-reconciler/pkg/source"
	"github.com/zoff-tech/status-reconciler/pkg/telemetry"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration from file or environment
	cfg, err := config.LoadFromFile("./cmd/status-reconciler")
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	// Validate the configuration
	err = cfg.Validate()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize telemetry (tracing)
	shutdownTelemetry, err := telemetry.Init(cfg.Observability)
	if err != nil {
		log.Fatal("Failed to initialize telemetry: ", err)
	}
	defer shutdownTelemetry() // Ensure telemetry is properly shut down on exit

	// One SQS client serves both polled sources
	sqsClient, err := source.NewSQSClient(ctx, cfg.Queues.Region)
	if err != nil {
		log.Fatal("Failed to initialize SQS client: ", err)
	}
	primary := source.NewSQSSource(sqsClient, source.Primary, cfg.Queues.StatusQueueURL,
		cfg.MaxMessages, cfg.WaitSeconds, cfg.VisibilityTimeout)
	deadLetter := source.NewSQSSource(sqsClient, source.DeadLetter, cfg.Queues.DLQURL,
		cfg.MaxMessages, cfg.WaitSeconds, cfg.VisibilityTimeout)

	// Initialize the original-request lookup backend
	requests, err := lookup.NewLookup(ctx, cfg.Lookup)
	if err != nil {
		log.Fatal("Failed to initialize lookup: ", err)
	}
	defer requests.Close()

	// Outbound transports: retry intake and forward sink
	retrySink, err := sink.NewSink(ctx, &cfg.Sink, cfg.Queues.PushQueueURL)
	if err != nil {
		log.Fatal("Failed to initialize retry sink: ", err)
	}
	defer retrySink.Close()

	forwardSink, err := sink.NewSink(ctx, &cfg.Sink, cfg.Queues.EventQueueURL)
	if err != nil {
		log.Fatal("Failed to initialize forward sink: ", err)
	}
	defer forwardSink.Close()

	// Stop after in-flight cycles on SIGTERM/SIGINT
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigCh
		log.Printf("Received signal %v, stopping after in-flight cycles", s)
		cancel()
	}()

	proc := processor.NewStatusProcessor(
		requests,
		processor.NewRetryDispatcher(retrySink),
		processor.NewEventForwarder(forwardSink),
		cfg,
	)

	log.Printf("Status reconciler started, polling %s and %s", source.Primary, source.DeadLetter)
	proc.Run(ctx, primary, deadLetter)
	log.Println("Status reconciler stopped")
}
