package signalrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// operationRequest describes one gateway round-trip: how to place the
// formatted parameters (query string for reads, JSON body for writes), which
// status codes count as success, and what to report when the gateway gives
// no error message of its own.
type operationRequest struct {
	method string
	path   string
	body   map[string]any
	query  map[string]any // placed in the query string; values stringified
	expect []int          // accepted status codes (some operations accept several, e.g. 200 and 201)
	// fallback describes the operation in error messages when the gateway
	// response carries no "error" field.
	fallback string
}

// do executes one operation against the gateway and returns the raw response
// body on success. The caller decodes it — some operations want JSON, others
// raw bytes (attachment download, QR code image).
//
// A status outside op.expect yields a *StatusError carrying the gateway's
// "error" message when the body has one, else op.fallback. Transport-level
// failures yield *UnreachableError with the cause preserved.
func (c *Client) do(ctx context.Context, op operationRequest) ([]byte, error) {
	requestURL := c.baseURL + op.path
	if len(op.query) > 0 {
		requestURL += "?" + encodeQuery(op.query)
	}

	var bodyReader io.Reader
	if op.body != nil {
		encoded, err := json.Marshal(op.body)
		if err != nil {
			return nil, &UnreachableError{Op: op.fallback, Err: fmt.Errorf("encoding request body: %w", err)}
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, op.method, requestURL, bodyReader)
	if err != nil {
		return nil, &UnreachableError{Op: op.fallback, Err: err}
	}

	requestID := uuid.NewString()
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-Id", requestID)
	if op.body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.auth != nil {
		c.auth.Apply(request)
	}

	c.logger.Debug("gateway request",
		"method", op.method,
		"path", op.path,
		"request_id", requestID,
	)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &UnreachableError{Op: op.fallback, Err: err}
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &UnreachableError{Op: op.fallback, Err: fmt.Errorf("reading response body: %w", err)}
	}

	c.logger.Debug("gateway response",
		"status", response.StatusCode,
		"request_id", requestID,
	)

	for _, status := range op.expect {
		if response.StatusCode == status {
			return responseBody, nil
		}
	}

	// The gateway reports failures as {"error": "..."} when it can.
	var gatewayError struct {
		Error string `json:"error"`
	}
	message := op.fallback
	if err := json.Unmarshal(responseBody, &gatewayError); err == nil && gatewayError.Error != "" {
		message = gatewayError.Error
	}
	return nil, &StatusError{StatusCode: response.StatusCode, Message: message}
}

// encodeQuery renders formatted parameters as a query string. Slices become
// repeated keys; everything else is stringified. Booleans never reach this
// point as native values — the receive formatting context has already turned
// them into "true"/"false".
func encodeQuery(params map[string]any) string {
	values := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				values.Add(key, item)
			}
		case string:
			values.Set(key, v)
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values.Encode()
}
