package signalrest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// About describes one gateway instance: the API versions it speaks, its
// build number, operating mode, and the optional features it advertises per
// endpoint. It is fetched fresh for every version-sensitive call and never
// cached, so a gateway upgrade takes effect immediately.
type About struct {
	Versions     []string            `json:"versions"`
	Build        int                 `json:"build"`
	Mode         string              `json:"mode"`
	Capabilities map[string][]string `json:"capabilities"`
}

// SupportsVersion reports whether the gateway advertises the given API
// version tag (e.g. "v2").
func (a *About) SupportsVersion(tag string) bool {
	for _, v := range a.Versions {
		if v == tag {
			return true
		}
	}
	return false
}

// HasCapability reports whether the gateway advertises the named feature for
// the given endpoint. An endpoint the gateway does not list has no
// capabilities; that is not an error.
func (a *About) HasCapability(endpoint, feature string) bool {
	for _, f := range a.Capabilities[endpoint] {
		if f == feature {
			return true
		}
	}
	return false
}

// legacyAbout is the descriptor synthesized for gateways that predate the
// /v1/about endpoint. They speak only the v1 wire format and advertise no
// optional features.
func legacyAbout() *About {
	return &About{
		Versions:     []string{"v1"},
		Build:        1,
		Mode:         "unknown",
		Capabilities: map[string][]string{},
	}
}

// About queries the gateway's introspection endpoint. A 404 means the
// gateway predates /v1/about; that is meaningful version information, not an
// error, and yields the legacy descriptor. Any other failure (non-200
// status, connection failure, unparsable body) is an *UnreachableError with
// the cause preserved.
func (c *Client) About(ctx context.Context) (*About, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/about", nil)
	if err != nil {
		return nil, &UnreachableError{Op: "about", Err: err}
	}
	request.Header.Set("Accept", "application/json")
	if c.auth != nil {
		c.auth.Apply(request)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &UnreachableError{Op: "about", Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		c.logger.Debug("gateway has no /v1/about endpoint, assuming legacy v1 backend")
		return legacyAbout(), nil
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &UnreachableError{Op: "about", Err: err}
	}

	if response.StatusCode != http.StatusOK {
		return nil, &UnreachableError{
			Op:  "about",
			Err: fmt.Errorf("introspection returned status %d: %s", response.StatusCode, string(body)),
		}
	}

	var about About
	if err := json.Unmarshal(body, &about); err != nil {
		return nil, &UnreachableError{Op: "about", Err: fmt.Errorf("parsing introspection response: %w", err)}
	}
	if about.Build == 0 {
		about.Build = 1
	}
	if about.Mode == "" {
		about.Mode = "unknown"
	}
	if about.Capabilities == nil {
		about.Capabilities = map[string][]string{}
	}
	return &about, nil
}

// Mode returns the gateway's operating mode ("normal", "json-rpc", or
// "unknown" when the gateway does not report one).
func (c *Client) Mode(ctx context.Context) (string, error) {
	about, err := c.About(ctx)
	if err != nil {
		return "", err
	}
	return about.Mode, nil
}
