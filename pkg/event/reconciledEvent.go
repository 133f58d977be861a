package event

import "time"

// ReconciledEvent is the merge of an OriginalRequest with the outcome carried
// by its StatusReport, forwarded to the event queue. It has no lifecycle of
// its own; it is built and discarded within one cycle.
type ReconciledEvent struct {
	TransactionID string         `json:"transaction_id"`
	ApID          string         `json:"ap_id"`
	Apid          string         `json:"apid"`
	Token         string         `json:"token"`
	Platform      string         `json:"platform,omitempty"`
	Payload       map[string]any `json:"payload"`
	RetryCount    int            `json:"retry_cnt"`
	SnsID         string         `json:"sns_id"`
	Status        string         `json:"status"`
	DeliveredTS   int64          `json:"delivered_ts"`
	CreatedAt     int64          `json:"created_at"`
}

// NewReconciledEvent merges the original request with the report's delivery
// status. Both timestamps are stamped from now in unix milliseconds, matching
// what downstream consumers expect.
func NewReconciledEvent(original *OriginalRequest, report *StatusReport, now time.Time) *ReconciledEvent {
	ms := now.UnixMilli()
	return &ReconciledEvent{
		TransactionID: original.TransactionID,
		ApID:          original.ApID,
		Apid:          original.ApID,
		Token:         original.Token,
		Platform:      original.Platform,
		Payload:       original.Payload,
		RetryCount:    original.RetryCount,
		SnsID:         report.SnsID,
		Status:        report.DeliveryStatus,
		DeliveredTS:   ms,
		CreatedAt:     ms,
	}
}
