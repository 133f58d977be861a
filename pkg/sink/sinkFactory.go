package sink

import (
	"context"
	"fmt"

	"github.com/zoff-tech/status-reconciler/pkg/config"
)

// NewSink creates the outbound transport for one destination. For SQS the
// destination is the queue URL, for RabbitMQ the routing key on the
// configured exchange, for Pub/Sub the topic name.
func NewSink(ctx context.Context, cfg *config.SinkSettings, destination string) (MessageSink, error) {
	switch cfg.Type {
	case "sqs":
		return NewSQSSink(ctx, cfg.Region, destination)
	case "rabbitmq":
		return NewRabbitMqSink(ctx, cfg, destination)
	case "pubsub":
		return NewPubSubSink(ctx, cfg, destination)
	default:
		return nil, fmt.Errorf("unsupported sink type: %s", cfg.Type)
	}
}
