package schema

// DeliveryEvent is the reconciled push-delivery record the reconciler
// forwards to the event queue. Downstream consumers import this module to
// decode it; duplicates are possible and must be deduplicated by sns_id.
type DeliveryEvent struct {
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
