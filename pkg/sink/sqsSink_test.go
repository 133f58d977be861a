package sink

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
)

type fakeSendAPI struct {
	input   *sqs.SendMessageInput
	sendErr error
}

func (f *fakeSendAPI) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("sqs-msg-1")}, nil
}

func TestSQSSink_Send(t *testing.T) {
	api := &fakeSendAPI{}
	s := &sqsSink{client: api, queueURL: "https://sqs/push"}

	id, err := s.Send(context.Background(), []byte(`{"retry_cnt":2}`))
	assert.NoError(t, err)
	assert.Equal(t, "sqs-msg-1", id)
	assert.Equal(t, "https://sqs/push", aws.ToString(api.input.QueueUrl))
	assert.Equal(t, `{"retry_cnt":2}`, aws.ToString(api.input.MessageBody))
}

func TestSQSSink_SendError(t *testing.T) {
	api := &fakeSendAPI{sendErr: errors.New("throttled")}
	s := &sqsSink{client: api, queueURL: "https://sqs/push"}

	id, err := s.Send(context.Background(), []byte("{}"))
	assert.Error(t, err)
	assert.Empty(t, id)
}
