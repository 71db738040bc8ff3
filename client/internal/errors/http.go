package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Messages shown to users. They match what the storefront UI has always
// displayed, so existing copy keeps working.
const (
	msgTimeout      = "Request timeout. Please try again."
	msgAuthRequired = "Authentication required"
	msgForbidden    = "Access forbidden"
)

// NewTimeoutError reports a request cancelled by its deadline.
func NewTimeoutError(err error) *Error {
	return &Error{Kind: KindTimeout, Message: msgTimeout, Err: err}
}

// NewNetworkError creates an error for transport-level failures.
func NewNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: fmt.Sprintf("Network error: %v", err), Err: err}
}

// NewHTTPError classifies a response by status code. It covers the status-only
// outcomes (401 and 403); everything else needs the body and is built by the
// caller with NewAPIError or NewFormatError.
func NewHTTPError(statusCode int) *Error {
	switch statusCode {
	case http.StatusUnauthorized:
		return &Error{Kind: KindAuthenticationRequired, StatusCode: statusCode, Message: msgAuthRequired}
	case http.StatusForbidden:
		return &Error{Kind: KindAccessForbidden, StatusCode: statusCode, Message: msgForbidden}
	default:
		return NewAPIError(statusCode, "")
	}
}

// NewAPIError builds the error for a JSON response with a non-2xx status.
// serverMsg is the envelope's "error" field; when empty a generic message with
// the status code is used.
func NewAPIError(statusCode int, serverMsg string) *Error {
	msg := serverMsg
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status %d", statusCode)
	}
	return &Error{Kind: KindAPI, StatusCode: statusCode, Message: msg}
}

// NewFormatError reports a response whose body was not JSON. body is kept verbatim.
func NewFormatError(statusCode int, body string) *Error {
	return &Error{
		Kind:       KindUnexpectedResponseFormat,
		StatusCode: statusCode,
		Message:    "Unexpected response format: " + body,
		Body:       body,
	}
}

// NewMalformedError reports JSON that could not be decoded into the expected envelope.
func NewMalformedError(statusCode int, detail string, err error) *Error {
	return &Error{
		Kind:       KindMalformedResponse,
		StatusCode: statusCode,
		Message:    "Malformed response: " + detail,
		Err:        err,
	}
}

// NewInvalidInputError reports a request rejected before it was sent.
func NewInvalidInputError(err error) *Error {
	return &Error{Kind: KindInvalidInput, Message: err.Error(), Err: err}
}

// IsRecoverable reports whether retrying the same request may succeed:
// timeouts, network failures, 408, 429 and 5xx answers. Everything else
// (4xx, auth, format problems) fails the same way on every attempt.
func IsRecoverable(err error) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindTimeout, KindNetwork:
		return true
	case KindAPI:
		switch {
		case e.StatusCode == http.StatusRequestTimeout, e.StatusCode == http.StatusTooManyRequests:
			return true
		case e.StatusCode >= 500 && e.StatusCode < 600:
			return true
		}
	}
	return false
}
