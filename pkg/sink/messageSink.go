package sink

import "context"

// MessageSink defines the operations to submit a message body to one
// outbound destination (retry intake or forward sink).
type MessageSink interface {
	// Send submits the JSON body and returns the transport's message id.
	Send(ctx context.Context, body []byte) (string, error)
	// Close cleans up any resources (connections).
	Close() error
}
