package signalrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Contact is one entry from the account's contact list.
type Contact struct {
	Number            string `json:"number"`
	UUID              string `json:"uuid"`
	Name              string `json:"name"`
	ProfileName       string `json:"profile_name"`
	Username          string `json:"username"`
	Blocked           bool   `json:"blocked"`
	MessageExpiration string `json:"message_expiration"`
}

// UpdateContactRequest changes the local name or expiration settings for a
// contact. Contact is the caller-facing field; on the wire it is sent as
// "recipient".
type UpdateContactRequest struct {
	// Contact is the phone number of the contact to update.
	Contact string

	// Name is the local contact name.
	Name string

	// ExpirationInSeconds sets disappearing-message expiration. Zero
	// leaves it unchanged.
	ExpirationInSeconds int
}

// Validate checks the request before any network call.
func (r UpdateContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Contact, validation.Required),
	)
}

// ListContacts returns the account's contact list.
func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	body, err := c.do(ctx, operationRequest{
		method:   http.MethodGet,
		path:     "/v1/contacts/" + c.number,
		expect:   []int{http.StatusOK},
		fallback: "unknown error while listing contacts",
	})
	if err != nil {
		return nil, err
	}

	var contacts []Contact
	if err := json.Unmarshal(body, &contacts); err != nil {
		return nil, &UnreachableError{Op: "list contacts", Err: fmt.Errorf("parsing contact list: %w", err)}
	}
	return contacts, nil
}

// UpdateContact updates the local name or expiration for a contact.
func (c *Client) UpdateContact(ctx context.Context, req UpdateContactRequest) error {
	if err := req.Validate(); err != nil {
		return &UsageError{Reason: "update contact", Err: err}
	}

	raw := map[string]any{
		"contact": req.Contact,
	}
	if req.Name != "" {
		raw["name"] = req.Name
	}
	if req.ExpirationInSeconds > 0 {
		raw["expiration_in_seconds"] = req.ExpirationInSeconds
	}
	wire, err := c.formatParams(raw, contextUpdateContact, nil)
	if err != nil {
		return err
	}

	_, err = c.do(ctx, operationRequest{
		method:   http.MethodPut,
		path:     "/v1/contacts/" + c.number,
		body:     wire,
		expect:   []int{http.StatusOK, http.StatusNoContent},
		fallback: "unknown error while updating contact",
	})
	return err
}

// SyncContacts pushes the account's contact list to all linked devices.
func (c *Client) SyncContacts(ctx context.Context) error {
	_, err := c.do(ctx, operationRequest{
		method:   http.MethodPost,
		path:     "/v1/contacts/" + c.number + "/sync",
		expect:   []int{http.StatusOK, http.StatusNoContent},
		fallback: "unknown error while syncing contacts",
	})
	return err
}
