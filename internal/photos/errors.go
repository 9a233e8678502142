package photos

import (
	"errors"
	"fmt"
)

// TransportError reports a request that never produced a usable response:
// connection refused, DNS failure, TLS failure or a timeout.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("execute request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError reports a response that arrived but could not be used: a
// non-2xx status or a body that does not decode into a list of photos.
type ProtocolError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *ProtocolError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("api %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("decode response from %s: %v", e.URL, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// IsProtocol checks if an error is a ProtocolError
func IsProtocol(err error) bool {
	var protocolErr *ProtocolError
	return errors.As(err, &protocolErr)
}

// Kind labels err for logging: "transport", "protocol" or "other".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsTransport(err):
		return "transport"
	case IsProtocol(err):
		return "protocol"
	default:
		return "other"
	}
}
