package errcodes

import (
	"errors"
	"ghrest/pkg/endpoint"
)

var (
	ErrMissingEndpoint       = errors.New("endpoint name is missing")
	ErrUnknownEndpoint       = errors.New("endpoint is unknown")
	ErrNoMatchingEndpoint    = errors.New("no endpoint matches the path")
	ErrTooManyParams         = errors.New("too many path parameters")
	ErrMissingParam          = errors.New("path parameter is missing")
	ErrQueryMustBeKeyValue   = errors.New("query must be in the form of 'key=value'")
	ErrMustSpecifyMethodPath = errors.New("must specify both method and path")
	ErrNothingSelected       = errors.New("nothing was selected")
	ErrConflictingOutput     = errors.New("only one of --typed, --diff or --select can be used")
)

// Usage lists the errors caused by how the command was invoked.
var Usage = []error{
	ErrMissingEndpoint,
	ErrUnknownEndpoint,
	ErrNoMatchingEndpoint,
	ErrTooManyParams,
	ErrMissingParam,
	ErrQueryMustBeKeyValue,
	ErrMustSpecifyMethodPath,
	ErrConflictingOutput,
	endpoint.ErrUnknownMethod,
	endpoint.ErrParamCount,
}
