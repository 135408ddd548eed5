package types

import "fmt"

// AuthError indicates an authentication failure against one of the external
// services. It is fatal for the run.
type AuthError struct {
	Service string
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: authentication failed: %v", e.Service, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// RateLimitError indicates the telemetry provider refused further requests.
// It halts fetching but preserves partial results.
type RateLimitError struct {
	Service string
	Err     error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: rate limited: %v", e.Service, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// ValidationError indicates malformed input data or a payload rejected by the
// destination. It is never retried and aborts only the unit that produced it.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// TransientError indicates a network failure or a 5xx response from the
// destination. Callers may retry a bounded number of times.
type TransientError struct {
	Service string
	Err     error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: transient failure: %v", e.Service, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }
