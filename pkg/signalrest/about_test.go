package signalrest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client, err := New(&Config{
		BaseURL: serverURL,
		Number:  "+4915112345678",
	})
	require.NoError(t, err)
	return client
}

func TestAbout(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v1/about", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"versions": []string{"v1", "v2"},
			"build":    2,
			"mode":     "normal",
			"capabilities": map[string][]string{
				"v2/send": {"mentions", "quotes"},
			},
		})
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	about, err := client.About(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"v1", "v2"}, about.Versions)
	assert.Equal(t, 2, about.Build)
	assert.Equal(t, "normal", about.Mode)
	assert.True(t, about.SupportsVersion("v2"))
	assert.True(t, about.HasCapability("v2/send", "mentions"))
	assert.False(t, about.HasCapability("v2/send", "stickers"))
	assert.False(t, about.HasCapability("v1/send", "mentions"), "missing endpoint key means no capability, not an error")
}

func TestAbout_DefaultsForAbsentFields(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"versions":["v1"]}`))
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	about, err := client.About(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, about.Build, "build defaults to 1 when absent")
	assert.Equal(t, "unknown", about.Mode, "mode defaults to unknown when absent")
	assert.NotNil(t, about.Capabilities)
}

func TestAbout_LegacyBackend(t *testing.T) {
	// A gateway without /v1/about answers 404. That is version information,
	// not an error.
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	about, err := client.About(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"v1"}, about.Versions)
	assert.Equal(t, 1, about.Build)
	assert.Equal(t, "unknown", about.Mode)
	assert.False(t, about.SupportsVersion("v2"))
}

func TestAbout_ConnectionFailure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	mockServer.Close() // nothing is listening anymore

	client := newTestClient(t, mockServer.URL)

	about, err := client.About(context.Background())
	require.Error(t, err)
	assert.Nil(t, about)

	var unreachable *UnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, "about", unreachable.Op)
	assert.Error(t, unreachable.Err, "underlying cause must be preserved")
}

func TestAbout_ServerError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	_, err := client.About(context.Background())
	var unreachable *UnreachableError
	require.ErrorAs(t, err, &unreachable)
}

func TestAbout_UnparsableBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	_, err := client.About(context.Background())
	var unreachable *UnreachableError
	require.ErrorAs(t, err, &unreachable)
}

func TestMode(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"versions":["v1","v2"],"mode":"json-rpc"}`))
	}))
	defer mockServer.Close()

	client := newTestClient(t, mockServer.URL)

	mode, err := client.Mode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "json-rpc", mode)
}
