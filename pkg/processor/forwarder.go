package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/zoff-tech/status-reconciler/pkg/event"
	"github.com/zoff-tech/status-reconciler/pkg/sink"
)

// EventForwarder submits reconciled events to the downstream event queue.
// Events go out one at a time but the batch has a single outcome: the first
// send failure fails the whole batch, so the caller's acknowledgment rule
// stays well-defined.
type EventForwarder struct {
	sink sink.MessageSink
}

func NewEventForwarder(s sink.MessageSink) *EventForwarder {
	return &EventForwarder{sink: s}
}

func (f *EventForwarder) Submit(ctx context.Context, events []*event.ReconciledEvent) error {
	for _, ev := range events {
		body, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("failed to marshal event for transaction %s: %w", ev.TransactionID, err)
		}

		messageID, err := f.sink.Send(ctx, body)
		if err != nil {
			return fmt.Errorf("failed to forward event for transaction %s: %w", ev.TransactionID, err)
		}
		log.Printf("Forwarded event for transaction %s, message id %s", ev.TransactionID, messageID)
	}
	return nil
}
