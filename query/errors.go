package query

import (
	"fmt"
)

// FetchErrorKind classifies a failed fetch
type FetchErrorKind int

const (
	// FetchErrorTransport means the request never produced a response
	FetchErrorTransport FetchErrorKind = iota + 1
	// FetchErrorRequestFailed means the endpoint answered with a failure status
	FetchErrorRequestFailed
	// FetchErrorDecode means the response envelope could not be decoded
	FetchErrorDecode
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchErrorTransport:
		return "transport"
	case FetchErrorRequestFailed:
		return "request failed"
	case FetchErrorDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError is returned when a position query fails as a whole. Problems with
// single items of a successful response never produce a FetchError.
type FetchError struct {
	Kind  FetchErrorKind
	Query QueryKind
	// Status is the HTTP status, ABCI code or gRPC code, depending on transport
	Status int
	Err    error
}

// NewTransportError wraps err as a transport failure
func NewTransportError(kind QueryKind, err error) *FetchError {
	return &FetchError{Kind: FetchErrorTransport, Query: kind, Err: err}
}

// NewRequestFailedError reports a failure status returned by the endpoint
func NewRequestFailedError(kind QueryKind, status int, err error) *FetchError {
	return &FetchError{Kind: FetchErrorRequestFailed, Query: kind, Status: status, Err: err}
}

// NewDecodeError wraps err as a response decoding failure
func NewDecodeError(kind QueryKind, err error) *FetchError {
	return &FetchError{Kind: FetchErrorDecode, Query: kind, Err: err}
}

func (e *FetchError) Error() string {
	if e.Kind == FetchErrorRequestFailed {
		return fmt.Sprintf("%s query failed with status %d: %s", e.Query, e.Status, e.Err)
	}
	return fmt.Sprintf("%s query failed (%s): %s", e.Query, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
