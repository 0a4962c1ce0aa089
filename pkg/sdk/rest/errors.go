package rest

import (
	"fmt"
)

// TransportError means the request never produced an HTTP response:
// DNS failure, connection refused, timeout or context cancellation.
// Whether to retry is the caller's decision.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// APIError is a non-2xx HTTP response. Message carries the server-provided
// message when the body contained one, otherwise the raw status text.
type APIError struct {
	StatusCode int
	Message    string
	Path       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s: status %d: %s", e.Path, e.StatusCode, e.Message)
}

// SchemaError means a 2xx response body did not match the expected shape:
// unparseable JSON, a wrong primitive kind, a missing required field or an
// unrecognized enum value. It signals upstream API drift and is never
// coerced away.
type SchemaError struct {
	// Field names the offending JSON field when known.
	Field  string
	Reason string
	Cause  error
}

func (e *SchemaError) Error() string {
	msg := "schema"
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}
