// Package apiclient is the HTTP layer every domain API wrapper goes through.
// It turns a Request into one call against a configured base origin,
// injecting the current bearer token and normalizing all failures into a
// uniform *APIError envelope.
//
// The token comes from a swappable TokenProvider: the session manager
// installs a new provider whenever the token changes, and the swap takes
// effect for the next call without affecting calls already in flight.
//
// The client deliberately has no retry, queue or cache logic. Retry policy
// belongs to callers (see the retry package); this layer makes exactly one
// attempt per call.
//
// # Usage
//
//	client, err := apiclient.New("https://support.example.com/api")
//	if err != nil {
//	    // handle error
//	}
//	client.SetTokenProvider(func() (string, bool) { return token, token != "" })
//
//	ticket, err := apiclient.Call[Ticket](ctx, client, apiclient.Request{
//	    Path:   "/tickets/42",
//	    Params: map[string]any{"includeEscalated": true},
//	})
package apiclient
