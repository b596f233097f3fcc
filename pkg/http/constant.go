package http

import "time"

const (
	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the default number of retries on transport errors and 5xx.
	DefaultRetries = 2
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 500 * time.Millisecond

	// maxBodyBytes caps a single response body.
	maxBodyBytes = 8 << 20
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
