package signalrest

import (
	"context"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ReactionRequest identifies the message to react to and the reaction
// emoji. Timestamp and TargetAuthor locate the target message.
type ReactionRequest struct {
	// Recipient is the conversation the target message lives in: a phone
	// number or a group id.
	Recipient string

	// Reaction is the emoji.
	Reaction string

	// TargetAuthor is the phone number of the target message's author.
	TargetAuthor string

	// Timestamp is the target message's timestamp.
	Timestamp int64
}

// Validate checks the request before any network call.
func (r ReactionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Recipient, validation.Required),
		validation.Field(&r.Reaction, validation.Required),
		validation.Field(&r.TargetAuthor, validation.Required),
		validation.Field(&r.Timestamp, validation.Required),
	)
}

func (r ReactionRequest) wire() map[string]any {
	return map[string]any{
		"recipient":     r.Recipient,
		"reaction":      r.Reaction,
		"target_author": r.TargetAuthor,
		"timestamp":     r.Timestamp,
	}
}

// SendReaction reacts to a message.
func (c *Client) SendReaction(ctx context.Context, req ReactionRequest) error {
	if err := req.Validate(); err != nil {
		return &UsageError{Reason: "send reaction", Err: err}
	}
	_, err := c.do(ctx, operationRequest{
		method:   http.MethodPost,
		path:     "/v1/reactions/" + c.number,
		body:     req.wire(),
		expect:   []int{http.StatusCreated, http.StatusNoContent},
		fallback: "unknown error while sending reaction",
	})
	return err
}

// RemoveReaction removes a previously sent reaction.
func (c *Client) RemoveReaction(ctx context.Context, req ReactionRequest) error {
	if err := req.Validate(); err != nil {
		return &UsageError{Reason: "remove reaction", Err: err}
	}
	_, err := c.do(ctx, operationRequest{
		method:   http.MethodDelete,
		path:     "/v1/reactions/" + c.number,
		body:     req.wire(),
		expect:   []int{http.StatusOK, http.StatusNoContent},
		fallback: "unknown error while removing reaction",
	})
	return err
}
