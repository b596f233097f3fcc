// Package telemetry wires Sentry error reporting. Every helper is a no-op until
// InitSentry has been called with a non-empty DSN.
package telemetry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config configures Sentry for the service.
type Config struct {
	DSN         string
	Environment string
	Release     string
	ServiceName string
}

// InitSentry initializes the Sentry SDK. An empty DSN disables reporting and is not an error.
func InitSentry(cfg Config) (bool, error) {
	if cfg.DSN == "" {
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		AttachStacktrace: true,
		Tags: map[string]string{
			"service": cfg.ServiceName,
		},
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return scrubRequest(event)
		},
	})
	if err != nil {
		return false, fmt.Errorf("sentry.Init: %w", err)
	}
	return true, nil
}

// CaptureError sends err to Sentry with optional tags.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// Flush waits for buffered events. Call with defer in main.
func Flush() {
	sentry.Flush(2 * time.Second)
}

func scrubRequest(event *sentry.Event) *sentry.Event {
	if event == nil {
		return nil
	}
	event.User.IPAddress = ""
	if event.Request != nil {
		for k := range event.Request.Headers {
			switch k {
			case "Authorization", "Cookie":
				event.Request.Headers[k] = "[redacted]"
			}
		}
	}
	return event
}
