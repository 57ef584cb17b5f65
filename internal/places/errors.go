package places

import "fmt"

// TransportError represents an HTTP-level failure against the places API.
type TransportError struct {
	Message    string
	StatusCode int
	Body       string
	Cause      error
}

func (e *TransportError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("places search failed: %s: %v", e.Message, e.Cause)
	case e.Body != "":
		return fmt.Sprintf("places search failed: %s: %s", e.Message, e.Body)
	default:
		return fmt.Sprintf("places search failed: %s", e.Message)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// DecodeError represents a malformed response from the places API.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("places decode failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("places decode failed: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
