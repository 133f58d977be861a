package sink

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.10.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/zoff-tech/status-reconciler/pkg/config"
)

// RabbitMqSinkCreator defines a function type for creating RabbitMQ sinks.
type RabbitMqSinkCreator func(ctx context.Context, settings *config.SinkSettings, routingKey string) (MessageSink, error)

// NewRabbitMqSink is the default implementation of RabbitMqSinkCreator.
var NewRabbitMqSink RabbitMqSinkCreator = func(ctx context.Context, settings *config.SinkSettings, routingKey string) (MessageSink, error) {
	conn, err := amqp.Dial(settings.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	// ExchangeDeclare is idempotent and has no effect if the exchange is already in place
	err = ch.ExchangeDeclare(
		settings.Exchange, // name
		"topic",           // type
		true,              // durable
		false,             // auto-deleted
		false,             // internal
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return &rabbitMqSink{
		connection: conn,
		channel:    ch,
		exchange:   settings.Exchange,
		routingKey: routingKey,
	}, nil
}

type rabbitMqSink struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
}

func (r *rabbitMqSink) Send(ctx context.Context, body []byte) (string, error) {
	tracer := otel.Tracer("status-reconciler")
	_, span := tracer.Start(ctx, "Send",
		trace.WithAttributes(
			semconv.MessagingSystemKey.String("rabbitmq"),
			semconv.MessagingDestinationKey.String(r.exchange),
			semconv.MessagingRabbitmqRoutingKeyKey.String(r.routingKey),
		),
	)
	defer span.End()

	messageID := uuid.NewString()
	err := r.channel.Publish(
		r.exchange, r.routingKey, false, false,
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   messageID,
			Body:        body,
		},
	)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	span.SetAttributes(
		attribute.Int("messaging.message_payload_size_bytes", len(body)),
	)

	return messageID, nil
}

func (r *rabbitMqSink) Close() error {
	if err := r.channel.Close(); err != nil {
		return err
	}
	return r.connection.Close()
}
