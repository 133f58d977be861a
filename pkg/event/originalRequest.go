package event

// OriginalRequest is the push request that produced a StatusReport, fetched
// from the lookup backend by sns_id. The reconciler holds a read-only copy
// for the duration of one cycle; the record itself is owned by the lookup
// service.
type OriginalRequest struct {
	TransactionID string         `json:"transaction_id"`
	ApID          string         `json:"ap_id"`
	Token         string         `json:"token"`
	Platform      string         `json:"platform"`
	Payload       map[string]any `json:"payload"`
	RetryCount    int            `json:"retry_cnt"`
}
