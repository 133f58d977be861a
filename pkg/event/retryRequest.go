package event

// RetryRequest is the body submitted to the push intake queue when a delivery
// is retried.
type RetryRequest struct {
	Apid          string         `json:"apid"`
	TransactionID string         `json:"transaction_id"`
	Token         string         `json:"token"`
	Payload       map[string]any `json:"payload"`
	RetryCount    int            `json:"retry_cnt"`
}

// NewRetryRequest builds the retry submission for original with the
// incremented attempt counter.
func NewRetryRequest(original *OriginalRequest, retryCount int) *RetryRequest {
	return &RetryRequest{
		Apid:          original.ApID,
		TransactionID: original.TransactionID,
		Token:         original.Token,
		Payload:       original.Payload,
		RetryCount:    retryCount,
	}
}
