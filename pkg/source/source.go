package source

import "context"

// Name identifies which queue a batch came from. The dead-letter source is
// treated as an unconditional retry candidate by the processor.
type Name string

const (
	Primary    Name = "StatusUpdateQueue"
	DeadLetter Name = "DLQ"
)

// Message is one leased message received from a source queue. ReceiptHandle
// is the claim on the message: deleting by handle acknowledges it, letting
// the lease lapse makes it redeliverable.
type Message struct {
	MessageID     string
	Body          string
	ReceiptHandle string
}

// Source is a pollable queue of raw status reports.
type Source interface {
	// Name reports which source this is, for retry decisions and logging.
	Name() Name
	// Receive fetches a bounded batch, blocking up to the configured
	// long-poll interval. An empty batch is not an error.
	Receive(ctx context.Context) ([]Message, error)
	// Delete acknowledges one message by its receipt handle. Deleting an
	// already-removed or expired handle is a no-op.
	Delete(ctx context.Context, receiptHandle string) error
}
