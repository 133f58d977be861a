package sink

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type sqsSendAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSSinkCreator defines a function type for creating SQS sinks.
type SQSSinkCreator func(ctx context.Context, region, queueURL string) (MessageSink, error)

// NewSQSSink is the default implementation of SQSSinkCreator.
var NewSQSSink SQSSinkCreator = func(ctx context.Context, region, queueURL string) (MessageSink, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &sqsSink{client: sqs.NewFromConfig(cfg), queueURL: queueURL}, nil
}

type sqsSink struct {
	client   sqsSendAPI
	queueURL string
}

func (s *sqsSink) Send(ctx context.Context, body []byte) (string, error) {
	out, err := s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}

func (s *sqsSink) Close() error {
	return nil
}
