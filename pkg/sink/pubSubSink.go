package sink

import (
	"context"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/zoff-tech/status-reconciler/pkg/config"
)

// PubSubSinkCreator defines a function type for creating Pub/Sub sinks.
type PubSubSinkCreator func(ctx context.Context, settings *config.SinkSettings, topic string, opts ...option.ClientOption) (MessageSink, error)

// NewPubSubSink is the default implementation of PubSubSinkCreator.
var NewPubSubSink PubSubSinkCreator = func(ctx context.Context, settings *config.SinkSettings, topic string, opts ...option.ClientOption) (MessageSink, error) {
	client, err := pubsub.NewClient(ctx, settings.ProjectID, opts...)
	if err != nil {
		return nil, err
	}
	return &pubSubSink{client: client, topic: topic}, nil
}

type pubSubSink struct {
	client *pubsub.Client
	topic  string
}

func (p *pubSubSink) Send(ctx context.Context, body []byte) (string, error) {
	tracer := otel.Tracer("status-reconciler")
	ctx, span := tracer.Start(ctx, "Send",
		trace.WithAttributes(
			semconv.MessagingSystemKey.String("pubsub"),
			semconv.MessagingDestinationKindKey.String("topic"),
			semconv.MessagingDestinationKey.String(p.topic),
		),
	)
	defer span.End()

	res := p.client.Topic(p.topic).Publish(ctx, &pubsub.Message{Data: body})
	id, err := res.Get(ctx) // wait for server ack
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	span.SetAttributes(
		attribute.Int("messaging.message_payload_size_bytes", len(body)),
	)

	return id, nil
}

func (p *pubSubSink) Close() error {
	return p.client.Close()
}
