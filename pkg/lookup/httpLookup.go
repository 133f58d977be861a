package lookup

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/zoff-tech/status-reconciler/pkg/event"
)

const defaultLookupTimeout = 10 * time.Second

// lookupEnvelope is the response shape of the query API. The first element
// of data is taken as the original request; any other shape is a miss.
type lookupEnvelope struct {
	Success bool                    `json:"success"`
	Data    []event.OriginalRequest `json:"data"`
}

// HTTPLookup queries the external lookup API by appending the sns_id to the
// configured base URL.
type HTTPLookup struct {
	client  *http.Client
	baseURL string
}

func NewHTTPLookup(baseURL string, timeout time.Duration) *HTTPLookup {
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	return &HTTPLookup{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

func (h *HTTPLookup) Lookup(ctx context.Context, snsID string) (*event.OriginalRequest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+snsID, nil)
	if err != nil {
		return nil, ErrNotFound
	}

	resp, err := h.client.Do(req)
	if err != nil {
		log.Printf("Lookup request failed for sns_id %s: %v", snsID, err)
		return nil, ErrNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Lookup returned status %d for sns_id %s", resp.StatusCode, snsID)
		return nil, ErrNotFound
	}

	var envelope lookupEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.Printf("Lookup returned malformed response for sns_id %s: %v", snsID, err)
		return nil, ErrNotFound
	}

	if !envelope.Success || len(envelope.Data) == 0 {
		log.Printf("Lookup returned no data for sns_id %s", snsID)
		return nil, ErrNotFound
	}

	original := envelope.Data[0]
	return &original, nil
}

func (h *HTTPLookup) Close() error {
	return nil
}
