package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHTTPLookup_FirstDataElementWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/requests/c1", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":[
			{"transaction_id":"t1","ap_id":"ap-9","token":"tok","retry_cnt":1,"payload":{"k":"v"}},
			{"transaction_id":"t2","ap_id":"ap-9","token":"tok2","retry_cnt":0}
		]}`))
	}))
	defer server.Close()

	lk := NewHTTPLookup(server.URL+"/requests/", 0)
	original, err := lk.Lookup(context.Background(), "c1")
	assert.NoError(t, err)
	assert.Equal(t, "t1", original.TransactionID)
	assert.Equal(t, "ap-9", original.ApID)
	assert.Equal(t, "tok", original.Token)
	assert.Equal(t, 1, original.RetryCount)
	assert.Equal(t, map[string]any{"k": "v"}, original.Payload)
}

func TestHTTPLookup_EverythingElseIsNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "success false",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":false,"data":[]}`))
			},
		},
		{
			name: "empty data",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":true,"data":[]}`))
			},
		},
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			lk := NewHTTPLookup(server.URL+"/requests/", 0)
			original, err := lk.Lookup(context.Background(), "c1")
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Nil(t, original)
		})
	}
}

func TestHTTPLookup_UnreachableServiceIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut it down before the call

	lk := NewHTTPLookup(server.URL+"/requests/", 100*time.Millisecond)
	original, err := lk.Lookup(context.Background(), "c1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, original)
}
