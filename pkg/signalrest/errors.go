package signalrest

import (
	"fmt"
)

// UnreachableError indicates the gateway could not be reached or its answer
// could not be read: connection failures, timeouts, malformed bodies. The
// underlying cause is always preserved.
type UnreachableError struct {
	Op  string // operation that failed (e.g. "about", "send message")
	Err error  // underlying transport or parse error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("signal gateway unreachable (%s): %v", e.Op, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}

// StatusError indicates the gateway replied with a status code outside the
// operation's expected set. Message carries the gateway-supplied "error"
// field when the response body contained one, otherwise a per-operation
// fallback description.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("signal gateway returned status %d: %s", e.StatusCode, e.Message)
}

// UnsupportedFeatureError indicates the addressed gateway version cannot
// perform the requested action. Required names what the gateway would need
// to advertise for the call to succeed.
type UnsupportedFeatureError struct {
	Feature  string // e.g. "multiple attachments", "mentions"
	Required string // e.g. "v2", `"quotes" capability on v2/send`
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("signal gateway does not support %s (requires %s); upgrade your signal-cli-rest-api instance",
		e.Feature, e.Required)
}

// UsageError indicates the caller supplied a contradictory or incomplete
// argument combination. It is always raised before any network call.
type UsageError struct {
	Reason string
	Err    error // optional underlying validation error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid usage: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid usage: %s", e.Reason)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{Reason: fmt.Sprintf(format, args...)}
}
