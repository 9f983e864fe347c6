package signalrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SearchResult reports whether one phone number is registered with the
// Signal service.
type SearchResult struct {
	Number     string `json:"number"`
	Registered bool   `json:"registered"`
}

// SearchNumbers checks which of the given phone numbers are registered with
// the Signal service.
func (c *Client) SearchNumbers(ctx context.Context, numbers []string) ([]SearchResult, error) {
	if len(numbers) == 0 {
		return nil, usageErrorf("search: no numbers supplied")
	}

	body, err := c.do(ctx, operationRequest{
		method: http.MethodGet,
		path:   "/v1/search",
		query: map[string]any{
			"number":  c.number,
			"numbers": numbers,
		},
		expect:   []int{http.StatusOK},
		fallback: "unknown error while searching numbers",
	})
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, &UnreachableError{Op: "search", Err: fmt.Errorf("parsing search results: %w", err)}
	}
	return results, nil
}
