package signalrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListAccounts returns the phone numbers of all accounts registered on the
// gateway.
func (c *Client) ListAccounts(ctx context.Context) ([]string, error) {
	body, err := c.do(ctx, operationRequest{
		method:   http.MethodGet,
		path:     "/v1/accounts",
		expect:   []int{http.StatusOK},
		fallback: "unknown error while listing accounts",
	})
	if err != nil {
		return nil, err
	}

	var accounts []string
	if err := json.Unmarshal(body, &accounts); err != nil {
		return nil, &UnreachableError{Op: "list accounts", Err: fmt.Errorf("parsing account list: %w", err)}
	}
	return accounts, nil
}

// SetPin sets the account's registration lock pin.
func (c *Client) SetPin(ctx context.Context, pin string) error {
	if pin == "" {
		return usageErrorf("set pin: pin is required")
	}
	_, err := c.do(ctx, operationRequest{
		method:   http.MethodPost,
		path:     "/v1/accounts/" + c.number + "/pin",
		body:     map[string]any{"pin": pin},
		expect:   []int{http.StatusCreated, http.StatusNoContent},
		fallback: "unknown error while setting pin",
	})
	return err
}

// RemovePin removes the account's registration lock pin.
func (c *Client) RemovePin(ctx context.Context) error {
	_, err := c.do(ctx, operationRequest{
		method:   http.MethodDelete,
		path:     "/v1/accounts/" + c.number + "/pin",
		expect:   []int{http.StatusOK, http.StatusNoContent},
		fallback: "unknown error while removing pin",
	})
	return err
}

// QRCodeLink returns a PNG image encoding a device-link QR code for the
// given device name.
func (c *Client) QRCodeLink(ctx context.Context, deviceName string) ([]byte, error) {
	if deviceName == "" {
		return nil, usageErrorf("qr code link: device name is required")
	}
	return c.do(ctx, operationRequest{
		method:   http.MethodGet,
		path:     "/v1/qrcodelink",
		query:    map[string]any{"device_name": deviceName},
		expect:   []int{http.StatusOK},
		fallback: "unknown error while generating device link QR code",
	})
}
