package redcap

import (
	"errors"

	"github.com/redcap-tools/redcap-go/internal/rcrequest"
	"github.com/redcap-tools/redcap-go/internal/types"
)

// Error types re-exported so callers compare against a single symbol set.
type (
	// ServerError is the uniform transport error: the server answered,
	// and the answer was a rejection.
	ServerError = rcrequest.ServerError
	// DecodeError means the body did not parse under the requested format.
	DecodeError = rcrequest.DecodeError
	// ValidationError means the call was structurally invalid and no
	// network request was made.
	ValidationError = types.ValidationError
)

// IsServerError reports whether err is a server-side rejection.
func IsServerError(err error) bool {
	var e *ServerError
	return errors.As(err, &e)
}

// IsDecodeError reports whether err is a response-parsing failure.
func IsDecodeError(err error) bool {
	var e *DecodeError
	return errors.As(err, &e)
}

// IsValidationError reports whether err was raised locally before any
// network call.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
