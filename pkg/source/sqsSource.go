package source

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// sqsAPI is the subset of the SQS client the source needs.
type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// SQSClientCreator defines a function type for creating SQS clients.
type SQSClientCreator func(ctx context.Context, region string) (*sqs.Client, error)

// NewSQSClient is the default implementation of SQSClientCreator.
var NewSQSClient SQSClientCreator = func(ctx context.Context, region string) (*sqs.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sqs.NewFromConfig(cfg), nil
}

// SQSSource reads one SQS queue with long polling. Received messages stay
// invisible to other pollers for the visibility timeout; Delete before the
// timeout expires removes them permanently.
type SQSSource struct {
	client            sqsAPI
	name              Name
	queueURL          string
	maxMessages       int
	waitSeconds       int
	visibilityTimeout int
}

func NewSQSSource(client sqsAPI, name Name, queueURL string, maxMessages, waitSeconds, visibilityTimeout int) *SQSSource {
	return &SQSSource{
		client:            client,
		name:              name,
		queueURL:          queueURL,
		maxMessages:       maxMessages,
		waitSeconds:       waitSeconds,
		visibilityTimeout: visibilityTimeout,
	}
}

func (s *SQSSource) Name() Name {
	return s.name
}

func (s *SQSSource) Receive(ctx context.Context) ([]Message, error) {
	out, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(s.queueURL),
		MaxNumberOfMessages: int32(s.maxMessages),
		WaitTimeSeconds:     int32(s.waitSeconds),
		VisibilityTimeout:   int32(s.visibilityTimeout),
	})
	if err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(out.Messages))
	for _, m := range out.Messages {
		messages = append(messages, Message{
			MessageID:     aws.ToString(m.MessageId),
			Body:          aws.ToString(m.Body),
			ReceiptHandle: aws.ToString(m.ReceiptHandle),
		})
	}
	return messages, nil
}

// Delete removes one message by receipt handle. A stale or already-consumed
// handle is logged and swallowed so acknowledgment stays idempotent.
func (s *SQSSource) Delete(ctx context.Context, receiptHandle string) error {
	_, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(s.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		log.Printf("Failed to delete message from %s: %v", s.name, err)
	}
	return nil
}
