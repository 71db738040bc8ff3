package client

import sferrors "github.com/mzansi-thrift/storefront/client/internal/errors"

// Error is the single error type returned by every operation.
type Error = sferrors.Error

// Kind classifies an Error.
type Kind = sferrors.Kind

// Re-exported kinds so callers compare against client.Kind* only.
const (
	KindUnknown                  = sferrors.KindUnknown
	KindTimeout                  = sferrors.KindTimeout
	KindAuthenticationRequired   = sferrors.KindAuthenticationRequired
	KindAccessForbidden          = sferrors.KindAccessForbidden
	KindUnexpectedResponseFormat = sferrors.KindUnexpectedResponseFormat
	KindAPI                      = sferrors.KindAPI
	KindNetwork                  = sferrors.KindNetwork
	KindMalformedResponse        = sferrors.KindMalformedResponse
	KindInvalidInput             = sferrors.KindInvalidInput
)

// KindOf returns the Kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind { return sferrors.KindOf(err) }

// IsKind reports whether err carries kind k.
func IsKind(err error, k Kind) bool { return sferrors.IsKind(err, k) }

// IsRecoverable reports whether retrying the same call may succeed.
func IsRecoverable(err error) bool { return sferrors.IsRecoverable(err) }
