package processor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryDispatcher_SubmitBody(t *testing.T) {
	s := &fakeSink{}
	d := NewRetryDispatcher(s)

	err := d.Submit(context.Background(), originalRequest("t1", 1), 2)
	assert.NoError(t, err)
	assert.Len(t, s.sent, 1)

	body := decode(t, s.sent[0])
	assert.Equal(t, "ap-9", body["apid"])
	assert.Equal(t, "t1", body["transaction_id"])
	assert.Equal(t, "tok", body["token"])
	assert.Equal(t, map[string]any{"title": "hello"}, body["payload"])
	assert.Equal(t, float64(2), body["retry_cnt"])
}

func TestRetryDispatcher_SinkFailureIsReturned(t *testing.T) {
	s := &fakeSink{failAll: true}
	d := NewRetryDispatcher(s)

	err := d.Submit(context.Background(), originalRequest("t1", 0), 1)
	assert.Error(t, err)
}
