// Package signalrest is a client for the signal-cli-rest-api gateway.
//
// The gateway's REST surface has evolved across versions: newer builds expose
// a /v2/send endpoint with multi-attachment support and advertise optional
// features (mentions, quotes) per endpoint through the /v1/about
// introspection response. Older builds predate /v1/about entirely and only
// understand the v1 wire format.
//
// The client presents one stable method per logical action and adapts each
// call to whatever the addressed gateway supports:
//
//   - About queries /v1/about and synthesizes a legacy descriptor when the
//     endpoint is missing (404), so version probing never fails against an
//     old gateway.
//   - Version-sensitive operations (SendMessage) re-query the descriptor on
//     every call and pick the endpoint and payload shape to match. Nothing
//     is cached, so a gateway upgrade is picked up on the next call.
//   - Requested features the gateway cannot perform fail fast with
//     *UnsupportedFeatureError before any file is read or request sent.
//
// # Errors
//
// All failures are typed: *UsageError for contradictory arguments (detected
// before any network I/O), *UnsupportedFeatureError for capability gaps,
// *StatusError when the gateway answers with an unexpected status (carrying
// the gateway-supplied error message when present), and *UnreachableError
// for transport-level failures. Nothing is retried.
//
// # Usage
//
//	client, err := signalrest.New(&signalrest.Config{
//		BaseURL: "http://localhost:8080",
//		Number:  "+4915112345678",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_, err = client.SendMessage(ctx, signalrest.SendMessageRequest{
//		Message:    "hello",
//		Recipients: []string{"+4915187654321"},
//	})
//
// The client is safe for concurrent use: all fields are set at construction
// and never mutated, and the underlying *http.Client pools connections.
package signalrest
