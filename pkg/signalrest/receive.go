package signalrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
)

// ReceiveOptions tune the receive long-poll. Zero/nil fields are omitted
// from the request entirely; the gateway then applies its own defaults.
type ReceiveOptions struct {
	// Timeout is how long the gateway should long-poll for new messages,
	// in seconds.
	Timeout int

	// IgnoreAttachments skips downloading attachments on the gateway side.
	IgnoreAttachments *bool

	// IgnoreStories skips story messages.
	IgnoreStories *bool

	// SendReadReceipts marks received messages as read.
	SendReadReceipts *bool
}

// ReceivedMessage is one entry from the gateway's receive endpoint.
type ReceivedMessage struct {
	Account  string   `mapstructure:"account"`
	Envelope Envelope `mapstructure:"envelope"`
}

// Envelope is the transport wrapper around one incoming event.
type Envelope struct {
	Source       string       `mapstructure:"source"`
	SourceNumber string       `mapstructure:"sourceNumber"`
	SourceName   string       `mapstructure:"sourceName"`
	SourceUUID   string       `mapstructure:"sourceUuid"`
	Timestamp    int64        `mapstructure:"timestamp"`
	DataMessage  *DataMessage `mapstructure:"dataMessage"`
}

// DataMessage is the user-visible content of an incoming message.
type DataMessage struct {
	Message          string     `mapstructure:"message"`
	Timestamp        int64      `mapstructure:"timestamp"`
	ExpiresInSeconds int        `mapstructure:"expiresInSeconds"`
	ViewOnce         bool       `mapstructure:"viewOnce"`
	GroupInfo        *GroupInfo `mapstructure:"groupInfo"`
}

// GroupInfo identifies the group an incoming message belongs to.
type GroupInfo struct {
	GroupID string `mapstructure:"groupId"`
	Type    string `mapstructure:"type"`
}

// Receive fetches pending messages for the account. Boolean options are
// rendered as the literal strings "true"/"false" in the query — the
// gateway's query parsing does not accept native booleans.
//
// Older gateway builds return each entry as a JSON-encoded string, newer
// ones as an object; both shapes are handled.
func (c *Client) Receive(ctx context.Context, opts ReceiveOptions) ([]ReceivedMessage, error) {
	raw := map[string]any{}
	if opts.Timeout > 0 {
		raw["timeout"] = opts.Timeout
	}
	if opts.IgnoreAttachments != nil {
		raw["ignore_attachments"] = *opts.IgnoreAttachments
	}
	if opts.IgnoreStories != nil {
		raw["ignore_stories"] = *opts.IgnoreStories
	}
	if opts.SendReadReceipts != nil {
		raw["send_read_receipts"] = *opts.SendReadReceipts
	}

	wire, err := c.formatParams(raw, contextReceive, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, operationRequest{
		method:   http.MethodGet,
		path:     "/v1/receive/" + c.number,
		query:    wire,
		expect:   []int{http.StatusOK},
		fallback: "unknown error while receiving messages",
	})
	if err != nil {
		return nil, err
	}

	var entries []any
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &UnreachableError{Op: "receive", Err: fmt.Errorf("parsing receive response: %w", err)}
	}

	messages := make([]ReceivedMessage, 0, len(entries))
	for _, entry := range entries {
		message, err := decodeReceiveEntry(entry)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// decodeReceiveEntry handles both entry shapes the gateway has used over
// time: a JSON-encoded string (older builds) or an object (newer builds).
func decodeReceiveEntry(entry any) (ReceivedMessage, error) {
	var message ReceivedMessage

	if encoded, ok := entry.(string); ok {
		var decoded map[string]any
		if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
			return message, &UnreachableError{Op: "receive", Err: fmt.Errorf("parsing receive entry: %w", err)}
		}
		entry = decoded
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &message,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return message, &UnreachableError{Op: "receive", Err: err}
	}
	if err := decoder.Decode(entry); err != nil {
		return message, &UnreachableError{Op: "receive", Err: fmt.Errorf("decoding receive entry: %w", err)}
	}
	return message, nil
}
