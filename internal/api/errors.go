package api

import (
	"errors"
	"fmt"
)

var (
	ErrServerRequired = errors.New("server URL must be specified via --server flag or ROOMLOG_SERVER")
	ErrItemNotFound   = errors.New("item not found")
)

// TransportError wraps a network-level failure (unreachable host, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response carrying the backend's error message.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError

	return errors.As(err, &te)
}

// IsServer reports whether err is (or wraps) a ServerError.
func IsServer(err error) bool {
	var se *ServerError

	return errors.As(err, &se)
}
