package processor

import (
	"context"
	"encoding/json"
	"log"

	"github.com/zoff-tech/status-reconciler/pkg/event"
	"github.com/zoff-tech/status-reconciler/pkg/sink"
)

// RetryDispatcher re-submits an original request to the push intake with an
// incremented attempt counter. Submission failure is observational only; the
// status report that triggered the retry is still reconciled and forwarded.
type RetryDispatcher struct {
	sink sink.MessageSink
}

func NewRetryDispatcher(s sink.MessageSink) *RetryDispatcher {
	return &RetryDispatcher{sink: s}
}

func (d *RetryDispatcher) Submit(ctx context.Context, original *event.OriginalRequest, retryCount int) error {
	body, err := json.Marshal(event.NewRetryRequest(original, retryCount))
	if err != nil {
		return err
	}

	messageID, err := d.sink.Send(ctx, body)
	if err != nil {
		return err
	}

	log.Printf("Submitted retry for transaction %s, attempt %d, message id %s",
		original.TransactionID, retryCount, messageID)
	return nil
}
