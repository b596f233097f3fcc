package http

import "context"

// IClient defines the interface for HTTP client with retry and timeout.
// Implementations are safe for concurrent use.
type IClient interface {
	// Get performs a GET request and returns the body and status code.
	// Non-2xx statuses are not errors; callers decide.
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	return &clientImpl{
		client: defaultHTTPClient(cfg.Timeout),
		config: cfg,
	}
}
