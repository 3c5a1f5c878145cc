package contracts

import "context"

// BackendOptions tweak a single upstream call. The zero value means a JSON
// request with no bearer token, tracked by the in-flight counter.
type BackendOptions struct {
	Token       string
	ContentType string
	SkipTracker bool
}

// BackendClient talks to the Doorspital backend. Do returns the decoded JSON
// payload of a 2xx response, with an empty body decoded as an empty object,
// and rejects non-2xx responses with the backend's own message.
type BackendClient interface {
	Do(ctx context.Context, method, path string, body interface{}, opts *BackendOptions) (interface{}, error)
}
