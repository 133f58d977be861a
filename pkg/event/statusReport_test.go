package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatusReport_Valid(t *testing.T) {
	body := `{"sns_id":"c1","delivery_status":"FAILURE","provider_response":"","timestamp":1000}`

	report, err := ParseStatusReport([]byte(body))
	assert.NoError(t, err)
	assert.Equal(t, "c1", report.SnsID)
	assert.Equal(t, StatusFailure, report.DeliveryStatus)
	assert.Equal(t, "", report.ProviderResponse)
	assert.Equal(t, int64(1000), report.Timestamp)
}

func TestParseStatusReport_EmptyProviderResponseIsValid(t *testing.T) {
	// The key must be present; an empty value is fine.
	body := `{"sns_id":"c1","delivery_status":"SUCCESS","provider_response":"","timestamp":42}`

	report, err := ParseStatusReport([]byte(body))
	assert.NoError(t, err)
	assert.Equal(t, StatusSuccess, report.DeliveryStatus)
}

func TestParseStatusReport_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing sns_id",
			body: `{"delivery_status":"FAILURE","provider_response":"x","timestamp":1}`,
		},
		{
			name: "missing delivery_status",
			body: `{"sns_id":"c1","provider_response":"x","timestamp":1}`,
		},
		{
			name: "missing provider_response",
			body: `{"sns_id":"c1","delivery_status":"FAILURE","timestamp":1}`,
		},
		{
			name: "missing timestamp",
			body: `{"sns_id":"c1","delivery_status":"FAILURE","provider_response":"x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := ParseStatusReport([]byte(tt.body))
			assert.Error(t, err)
			assert.Nil(t, report)
		})
	}
}

func TestParseStatusReport_UnparsableBody(t *testing.T) {
	report, err := ParseStatusReport([]byte("not json at all"))
	assert.Error(t, err)
	assert.Nil(t, report)
}
