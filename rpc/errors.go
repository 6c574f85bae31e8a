package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidEndpoint means the client was constructed without a usable
	// endpoint URL.
	ErrInvalidEndpoint = errors.New("rpc endpoint is empty")

	// ErrMalformedResponse means the node answered 200 with a body that is
	// not valid JSON-RPC.
	ErrMalformedResponse = errors.New("rpc response is not valid json")

	// ErrRateLimited means the client-side limiter refused the call before
	// any network I/O. Purely local; the caller decides when to try again.
	ErrRateLimited = errors.New("rpc call rate limited")
)

// HTTPError is a non-200 answer from the endpoint.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("rpc http status %d", e.Status)
}

// PayloadError is a well-formed JSON-RPC response whose error field is set.
// The payload is kept verbatim so callers can classify program-level failures.
type PayloadError struct {
	Payload json.RawMessage
}

func (e *PayloadError) Error() string {
	return "rpc error payload: " + string(e.Payload)
}

// NetworkError is a transport failure: connection refused, DNS, timeout.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return "rpc network failure: " + e.Cause.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}
