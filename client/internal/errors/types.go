// Package errors provides the error taxonomy for the storefront client SDK.
// Every failure leaving the dispatch layer is an *Error with an explicit Kind,
// so callers branch on the kind instead of searching the message text.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies what went wrong with a request.
type Kind int

const (
	// KindUnknown is never produced by the dispatcher; it is the zero value
	// reported by KindOf for foreign errors.
	KindUnknown Kind = iota
	// KindTimeout means the per-request deadline elapsed and the in-flight
	// request was cancelled.
	KindTimeout
	// KindAuthenticationRequired is a 401 from the API.
	KindAuthenticationRequired
	// KindAccessForbidden is a 403 from the API.
	KindAccessForbidden
	// KindUnexpectedResponseFormat means the response was not JSON.
	KindUnexpectedResponseFormat
	// KindAPI is a JSON response with a non-2xx status.
	KindAPI
	// KindNetwork covers transport failures other than the timeout.
	KindNetwork
	// KindMalformedResponse means the JSON did not have the expected envelope.
	KindMalformedResponse
	// KindInvalidInput is returned before any request is sent.
	KindInvalidInput
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "Timeout"
	case KindAuthenticationRequired:
		return "AuthenticationRequired"
	case KindAccessForbidden:
		return "AccessForbidden"
	case KindUnexpectedResponseFormat:
		return "UnexpectedResponseFormat"
	case KindAPI:
		return "ApiError"
	case KindNetwork:
		return "NetworkError"
	case KindMalformedResponse:
		return "MalformedResponse"
	case KindInvalidInput:
		return "InvalidInput"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is the single error value returned by every client operation.
type Error struct {
	Kind       Kind
	Op         string // user-facing operation prefix, e.g. "Login"; empty for plain calls
	StatusCode int    // HTTP status code (0 when no response was received)
	Message    string // human-readable message, without the Op prefix
	Body       string // raw response text for UnexpectedResponseFormat
	Err        error  // underlying cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, which lets callers
// write errors.Is(err, &Error{Kind: KindTimeout}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Op == ""
}

// New creates an *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithOp returns a copy of err whose message is prefixed with "<op> failed: ".
// The kind and status survive, so the prefix never hides the cause from code.
// Non-*Error values are wrapped as KindUnknown.
func WithOp(err error, op string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if stderrors.As(err, &e) {
		cp := *e
		if cp.Op != "" {
			cp.Message = cp.Error()
		}
		cp.Op = op
		return &cp
	}
	return &Error{Kind: KindUnknown, Op: op, Message: err.Error(), Err: err}
}

// KindOf returns the kind of err, or KindUnknown for errors not produced by the SDK.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool { return err != nil && KindOf(err) == k }
