package signalrest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid",
			config: Config{BaseURL: "http://localhost:8080", Number: "+4915112345678"},
		},
		{
			name:    "missing base url",
			config:  Config{Number: "+4915112345678"},
			wantErr: true,
		},
		{
			name:    "missing number",
			config:  Config{BaseURL: "http://localhost:8080"},
			wantErr: true,
		},
		{
			name:    "not a url",
			config:  Config{BaseURL: "localhost without scheme", Number: "+4915112345678"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(&tt.config)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, client)
			assert.NotNil(t, client.httpClient)
			assert.NotNil(t, client.logger)
			assert.NotNil(t, client.fs)
			assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
		})
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	client, err := New(&Config{
		BaseURL: "http://localhost:8080/",
		Number:  "+4915112345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
}

func TestUpdateContact_WireRename(t *testing.T) {
	var body map[string]any
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/v1/contacts/+4915112345678", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	err := client.UpdateContact(context.Background(), UpdateContactRequest{
		Contact: "+4915187654321",
		Name:    "Bob",
	})
	require.NoError(t, err)

	assert.Equal(t, "+4915187654321", body["recipient"])
	_, hasContact := body["contact"]
	assert.False(t, hasContact)
}

func TestTrustIdentity_NumberInPathNotBody(t *testing.T) {
	var path string
	var body map[string]any
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	err := client.TrustIdentity(context.Background(), TrustIdentityRequest{
		Number:               "+4915187654321",
		VerifiedSafetyNumber: "0123456789",
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/identities/+4915112345678/trust/+4915187654321", path)
	assert.Equal(t, "0123456789", body["verified_safety_number"])
	_, hasNumber := body["number"]
	assert.False(t, hasNumber)
}
