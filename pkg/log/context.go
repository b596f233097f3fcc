package log

import "context"

type requestIDKey struct{}

// SetRequestIDToContext stores the request id so every log line of the request carries it.
func SetRequestIDToContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestIDFromContext returns the request id, if any.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
