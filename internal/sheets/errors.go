package sheets

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no script URL has been supplied. It is a
// configuration problem and retrying will not help.
var ErrNotConfigured = errors.New("google script URL is not configured")

// FetchError reports a transport-level failure: network, timeout, non-2xx
// status or an undecodable body.
type FetchError struct {
	Status int // HTTP status, zero when no response was received
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("request to Google Script failed with status %d", e.Status)
	}
	return fmt.Sprintf("request to Google Script failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// UpstreamError reports that the script answered but with a non-success status.
type UpstreamError struct {
	Status  string
	Message string
}

const defaultUpstreamMessage = "an error occurred in the Google Script"

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return defaultUpstreamMessage
}

// Retryable reports whether a batch failure should be retried on the next tick.
func Retryable(err error) bool {
	return err != nil && !errors.Is(err, ErrNotConfigured)
}
