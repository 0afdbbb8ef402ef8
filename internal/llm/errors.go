package llm

import "fmt"

// ConfigError means the client cannot be used at all (missing credential).
// It is fatal and never retried.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "llm config error: " + e.Message
}

// TransportError wraps a network-level failure reaching the upstream.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("llm request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError means the upstream answered, but not usefully: a non-2xx
// status, or a well-formed response with no generated text. StatusCode and
// Body are kept verbatim for diagnosis.
type ProtocolError struct {
	StatusCode int
	Body       string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
