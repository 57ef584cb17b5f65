package llm

import "fmt"

// APICallError represents a transport-level failure talking to a chat API.
// StatusCode and Body are populated when an HTTP response was received.
type APICallError struct {
	Message    string
	StatusCode int
	Body       string
	Cause      error
}

func (e *APICallError) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	case e.Body != "":
		return fmt.Sprintf("API call failed: %s: %s", e.Message, e.Body)
	default:
		return fmt.Sprintf("API call failed: %s", e.Message)
	}
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a failure to decode a model response as JSON.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
