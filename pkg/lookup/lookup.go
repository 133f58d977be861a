package lookup

import (
	"context"
	"errors"

	"github.com/zoff-tech/status-reconciler/pkg/event"
)

// ErrNotFound reports that no original request exists for a correlation id.
// Backends collapse every failure shape (absent record, malformed response,
// unreachable service) into this error; the caller reacts the same way to
// all of them, by leaving the status report leased for redelivery.
var ErrNotFound = errors.New("original request not found")

// RequestLookup fetches the original push request for a status report's
// sns_id.
type RequestLookup interface {
	Lookup(ctx context.Context, snsID string) (*event.OriginalRequest, error)
	// Close cleans up any resources (connections).
	Close() error
}
