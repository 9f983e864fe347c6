package signalrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListAttachments returns the ids of all attachments the gateway has
// downloaded and kept on disk.
func (c *Client) ListAttachments(ctx context.Context) ([]string, error) {
	body, err := c.do(ctx, operationRequest{
		method:   http.MethodGet,
		path:     "/v1/attachments",
		expect:   []int{http.StatusOK},
		fallback: "unknown error while listing attachments",
	})
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, &UnreachableError{Op: "list attachments", Err: fmt.Errorf("parsing attachment list: %w", err)}
	}
	return ids, nil
}

// GetAttachment downloads an attachment's raw content.
func (c *Client) GetAttachment(ctx context.Context, attachmentID string) ([]byte, error) {
	if attachmentID == "" {
		return nil, usageErrorf("get attachment: attachment id is required")
	}
	return c.do(ctx, operationRequest{
		method:   http.MethodGet,
		path:     "/v1/attachments/" + attachmentID,
		expect:   []int{http.StatusOK},
		fallback: "unknown error while fetching attachment",
	})
}

// DeleteAttachment removes an attachment from the gateway's disk.
func (c *Client) DeleteAttachment(ctx context.Context, attachmentID string) error {
	if attachmentID == "" {
		return usageErrorf("delete attachment: attachment id is required")
	}
	_, err := c.do(ctx, operationRequest{
		method:   http.MethodDelete,
		path:     "/v1/attachments/" + attachmentID,
		expect:   []int{http.StatusNoContent},
		fallback: "unknown error while deleting attachment",
	})
	return err
}
