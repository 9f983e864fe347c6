package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalops/signalrest/pkg/signalrest"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signalrest.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromFile(t *testing.T) {
	path := writeConfig(t, `
base_url = "http://localhost:8080"
number   = "+4915112345678"

basic_auth_user     = "admin"
basic_auth_password = "hunter2"

tls_verify = false
timeout    = "10s"
`)

	cfg, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "+4915112345678", cfg.Number)
	require.NotNil(t, cfg.TLSVerify)
	assert.False(t, *cfg.TLSVerify)

	clientConfig, err := cfg.ClientConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, clientConfig.Timeout)
	assert.Equal(t, signalrest.BasicAuth{Username: "admin", Password: "hunter2"}, clientConfig.Auth)
}

func TestFromFile_Minimal(t *testing.T) {
	path := writeConfig(t, `
base_url = "http://localhost:8080"
number   = "+4915112345678"
`)

	cfg, err := FromFile(path)
	require.NoError(t, err)

	clientConfig, err := cfg.ClientConfig()
	require.NoError(t, err)
	assert.Nil(t, clientConfig.Auth)
	require.NotNil(t, clientConfig.TLSVerify)
	assert.True(t, *clientConfig.TLSVerify, "TLS verification defaults on")
}

func TestFromFile_InvalidTimeout(t *testing.T) {
	path := writeConfig(t, `
base_url = "http://localhost:8080"
number   = "+4915112345678"
timeout  = "soonish"
`)

	cfg, err := FromFile(path)
	require.NoError(t, err)

	_, err = cfg.ClientConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soonish")
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}
