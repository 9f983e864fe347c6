package signalrest

import "net/http"

// Auth supplies credentials for gateway requests. Implementations attach
// their scheme's transport-level value to each outgoing request. A nil Auth
// on the Config means unauthenticated access.
type Auth interface {
	// Apply attaches credentials to the request.
	Apply(req *http.Request)
}

// BasicAuth authenticates with HTTP basic credentials.
type BasicAuth struct {
	Username string
	Password string
}

// Apply sets the Authorization header with the basic credentials.
func (a BasicAuth) Apply(req *http.Request) {
	req.SetBasicAuth(a.Username, a.Password)
}
