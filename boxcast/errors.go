package boxcast

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport reports a network or connectivity failure.
	ErrTransport = errors.New("boxcast: transport failure")
	// ErrDecode reports a missing, malformed or unexpected response body.
	ErrDecode = errors.New("boxcast: decode failure")
	// ErrStatus reports a non-2xx HTTP status from the API.
	ErrStatus = errors.New("boxcast: unexpected status")
	// ErrInvalidArgument reports a request rejected before it was sent.
	ErrInvalidArgument = errors.New("boxcast: invalid argument")
)

// Error wraps one of the sentinel errors with the operation that failed.
type Error struct {
	Op     string
	Kind   error
	Status int
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Is matches the error's kind so callers can use errors.Is with the sentinels.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool { return errors.Is(err, ErrTransport) }

// IsDecode reports whether err is a decoding failure.
func IsDecode(err error) bool { return errors.Is(err, ErrDecode) }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

func newError(op string, kind error, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}
