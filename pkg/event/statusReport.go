package event

import (
	"encoding/json"
	"fmt"
)

// DeliveryStatus values reported by the push provider. Anything other than
// StatusSuccess is carried through verbatim; only StatusFailure triggers a
// retry on the primary source.
const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

// StatusReport is one delivery-status notification as it arrives on a source
// queue.
type StatusReport struct {
	SnsID            string `json:"sns_id"`
	DeliveryStatus   string `json:"delivery_status"`
	ProviderResponse string `json:"provider_response"`
	Timestamp        int64  `json:"timestamp"`
}

// requiredReportFields must all be present in the message body. A report
// missing any of them can never be repaired by redelivery.
var requiredReportFields = []string{"sns_id", "delivery_status", "provider_response", "timestamp"}

// ParseStatusReport decodes a raw queue message body into a StatusReport.
// It returns an error for unparsable JSON or a missing required field; such
// reports are drained by the caller rather than retried.
func ParseStatusReport(body []byte) (*StatusReport, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unparsable status report: %w", err)
	}

	for _, field := range requiredReportFields {
		if _, ok := raw[field]; !ok {
			return nil, fmt.Errorf("status report missing required field %q", field)
		}
	}

	var report StatusReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("malformed status report: %w", err)
	}
	return &report, nil
}
