package signalrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Identity is one known identity key with its trust status.
type Identity struct {
	Number       string `json:"number"`
	UUID         string `json:"uuid"`
	Fingerprint  string `json:"fingerprint"`
	SafetyNumber string `json:"safety_number"`
	Status       string `json:"status"`
	Added        string `json:"added"`
}

// TrustIdentityRequest marks an identity as trusted. The subject Number is
// embedded in the URL path, never in the request body.
type TrustIdentityRequest struct {
	// Number is the phone number whose identity to trust.
	Number string

	// VerifiedSafetyNumber is the safety number verified out of band.
	// Required unless TrustAllKnownKeys is set.
	VerifiedSafetyNumber string

	// TrustAllKnownKeys trusts all of the contact's known keys.
	TrustAllKnownKeys *bool
}

// ListIdentities returns all identities known to the account.
func (c *Client) ListIdentities(ctx context.Context) ([]Identity, error) {
	body, err := c.do(ctx, operationRequest{
		method:   http.MethodGet,
		path:     "/v1/identities/" + c.number,
		expect:   []int{http.StatusOK},
		fallback: "unknown error while listing identities",
	})
	if err != nil {
		return nil, err
	}

	var identities []Identity
	if err := json.Unmarshal(body, &identities); err != nil {
		return nil, &UnreachableError{Op: "list identities", Err: fmt.Errorf("parsing identity list: %w", err)}
	}
	return identities, nil
}

// TrustIdentity marks the identity of the given number as trusted.
func (c *Client) TrustIdentity(ctx context.Context, req TrustIdentityRequest) error {
	if req.Number == "" {
		return usageErrorf("trust identity: number is required")
	}
	if req.VerifiedSafetyNumber == "" && req.TrustAllKnownKeys == nil {
		return usageErrorf("trust identity: supply a verified safety number or set trust_all_known_keys")
	}

	raw := map[string]any{
		"number": req.Number,
	}
	if req.VerifiedSafetyNumber != "" {
		raw["verified_safety_number"] = req.VerifiedSafetyNumber
	}
	if req.TrustAllKnownKeys != nil {
		raw["trust_all_known_keys"] = *req.TrustAllKnownKeys
	}
	wire, err := c.formatParams(raw, contextTrustIdentity, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, operationRequest{
		method:   http.MethodPut,
		path:     "/v1/identities/" + c.number + "/trust/" + req.Number,
		body:     wire,
		expect:   []int{http.StatusOK, http.StatusNoContent},
		fallback: "unknown error while trusting identity",
	})
	return err
}
