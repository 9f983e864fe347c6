package signalrest

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Client talks to one signal-cli-rest-api instance on behalf of one
// registered account. All fields are set at construction and never mutated,
// so a Client may be shared across goroutines.
type Client struct {
	baseURL    string
	number     string
	auth       Auth
	httpClient *http.Client
	logger     hclog.Logger
	fs         afero.Fs
}

// New creates a gateway client from the given configuration.
func New(cfg *Config) (*Client, error) {
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = DefaultConfig().TLSVerify
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid signalrest config: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = cfg.newHTTPClient()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		number:     cfg.Number,
		auth:       cfg.Auth,
		httpClient: httpClient,
		logger:     logger,
		fs:         fs,
	}, nil
}

// Number returns the account phone number the client operates as.
func (c *Client) Number() string {
	return c.number
}

// CloseIdleConnections closes idle connections in the underlying transport's
// pool. Useful after a network disruption to avoid reusing a dead connection.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}
