package signalrest

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Receipt type values accepted by the gateway.
const (
	ReceiptRead   = "read"
	ReceiptViewed = "viewed"
)

// ReceiptRequest acknowledges a received message.
type ReceiptRequest struct {
	// Recipient is the phone number of the message's sender.
	Recipient string

	// ReceiptType is ReceiptRead or ReceiptViewed.
	ReceiptType string

	// Timestamp identifies the message being acknowledged.
	Timestamp int64
}

// Validate checks the request before any network call.
func (r ReceiptRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Recipient, validation.Required),
		validation.Field(&r.ReceiptType, validation.Required, validation.In(ReceiptRead, ReceiptViewed)),
		validation.Field(&r.Timestamp, validation.Required),
	)
}

// SendReceipt sends a read or viewed receipt for a message.
func (c *Client) SendReceipt(ctx context.Context, req ReceiptRequest) error {
	if err := req.Validate(); err != nil {
		return &UsageError{Reason: "send receipt", Err: err}
	}
	_, err := c.do(ctx, operationRequest{
		method: http.MethodPost,
		path:   "/v1/receipts/" + c.number,
		body: map[string]any{
			"recipient":    req.Recipient,
			"receipt_type": req.ReceiptType,
			"timestamp":    req.Timestamp,
		},
		expect:   []int{http.StatusOK, http.StatusNoContent},
		fallback: "unknown error while sending receipt",
	})
	return err
}
