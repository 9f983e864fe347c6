package signalrest

import (
	"crypto/tls"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Config contains configuration for the gateway client.
type Config struct {
	// BaseURL is the base URL of the signal-cli-rest-api instance.
	// Example: "http://localhost:8080"
	BaseURL string

	// Number is the registered account phone number in international
	// format (e.g. "+4915112345678"). It is embedded in most request
	// paths and payloads.
	Number string

	// Auth supplies credentials for every request. Nil means
	// unauthenticated access.
	Auth Auth

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool

	// Timeout for gateway requests.
	// Default: 30 seconds
	Timeout time.Duration

	// HTTPClient overrides the client built from TLSVerify and Timeout.
	// Mostly useful for tests.
	HTTPClient *http.Client

	// Logger is used for structured logging. If nil, logging is disabled.
	Logger hclog.Logger

	// Fs is the filesystem used to read attachment and avatar files.
	// If nil, the OS filesystem is used.
	Fs afero.Fs
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify: &tlsVerify,
		Timeout:   30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.RequestURL),
		validation.Field(&c.Number, validation.Required),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// newHTTPClient creates a configured HTTP client for the gateway.
func (c *Config) newHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
