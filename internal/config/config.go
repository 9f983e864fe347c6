// Package config loads the CLI configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/signalops/signalrest/pkg/signalrest"
)

// DefaultPath is where the CLI looks for its configuration when neither the
// -config flag nor SIGNALREST_CONFIG is set.
const DefaultPath = "signalrest.hcl"

// EnvPath names the environment variable overriding the config file path.
const EnvPath = "SIGNALREST_CONFIG"

// Config is the CLI configuration file.
//
// Example (HCL):
//
//	base_url = "http://localhost:8080"
//	number   = "+4915112345678"
//
//	basic_auth_user     = "admin"
//	basic_auth_password = "hunter2"
//
//	tls_verify = true
//	timeout    = "30s"
type Config struct {
	// BaseURL is the base URL of the signal-cli-rest-api instance.
	BaseURL string `hcl:"base_url"`

	// Number is the registered account phone number.
	Number string `hcl:"number"`

	// BasicAuthUser and BasicAuthPassword enable HTTP basic
	// authentication when both are set.
	BasicAuthUser     string `hcl:"basic_auth_user,optional"`
	BasicAuthPassword string `hcl:"basic_auth_password,optional"`

	// TLSVerify controls TLS certificate verification.
	TLSVerify *bool `hcl:"tls_verify,optional"`

	// Timeout for gateway requests, as a Go duration string.
	Timeout string `hcl:"timeout,optional"`
}

// FromFile loads and parses the configuration file at path. When path is
// empty, SIGNALREST_CONFIG and then DefaultPath are tried.
func FromFile(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}
	return &cfg, nil
}

// ClientConfig translates the file configuration into a client Config.
func (c *Config) ClientConfig() (*signalrest.Config, error) {
	clientConfig := signalrest.DefaultConfig()
	clientConfig.BaseURL = c.BaseURL
	clientConfig.Number = c.Number

	if c.TLSVerify != nil {
		clientConfig.TLSVerify = c.TLSVerify
	}
	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
		}
		clientConfig.Timeout = timeout
	}
	if c.BasicAuthUser != "" || c.BasicAuthPassword != "" {
		clientConfig.Auth = signalrest.BasicAuth{
			Username: c.BasicAuthUser,
			Password: c.BasicAuthPassword,
		}
	}
	return clientConfig, nil
}
