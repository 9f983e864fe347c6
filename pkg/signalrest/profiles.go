package signalrest

import (
	"context"
	"net/http"
)

// UpdateProfileRequest carries the account profile fields to change.
type UpdateProfileRequest struct {
	// Name is the profile display name.
	Name string

	// Avatar replaces the profile avatar. Supplying both a file path and
	// raw bytes on the same Attachment is a usage error.
	Avatar *Attachment
}

// UpdateProfile sets the account's display name and optionally its avatar.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	if req.Name == "" && req.Avatar == nil {
		return usageErrorf("update profile: nothing to update")
	}

	raw := map[string]any{}
	if req.Name != "" {
		raw["name"] = req.Name
	}
	if req.Avatar != nil {
		raw["avatar"] = *req.Avatar
	}
	wire, err := c.formatParams(raw, contextUpdateProfile, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, operationRequest{
		method:   http.MethodPut,
		path:     "/v1/profiles/" + c.number,
		body:     wire,
		expect:   []int{http.StatusNoContent},
		fallback: "unknown error while updating profile",
	})
	return err
}
