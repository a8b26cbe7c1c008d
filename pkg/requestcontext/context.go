// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets the values; handlers and services read them for logging.
// Keeping this package free of net/http lets services depend on it directly.
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithRequestID(ctx, requestID)
//	ctx = requestcontext.WithClientMetadata(ctx, clientIP, client)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithRequestID(context.Background(), "req-1")
package requestcontext

import "context"

// Context key types (unexported for encapsulation).
type (
	clientIPKey  struct{}
	clientKey    struct{}
	requestIDKey struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyClientIP  = clientIPKey{}
	ContextKeyClient    = clientKey{}
	ContextKeyRequestID = requestIDKey{}
)

// -----------------------------------------------------------------------------
// Client metadata (IP, client summary)
// -----------------------------------------------------------------------------

// ClientIP retrieves the client IP address from the context.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

// Client retrieves the parsed User-Agent summary ("Firefox 121.0 on Linux").
func Client(ctx context.Context) string {
	if c, ok := ctx.Value(ContextKeyClient).(string); ok {
		return c
	}
	return ""
}

// WithClientMetadata injects client IP and client summary into a context.
// Useful for handler tests that don't run the full HTTP middleware chain.
func WithClientMetadata(ctx context.Context, clientIP, client string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyClientIP, clientIP)
	ctx = context.WithValue(ctx, ContextKeyClient, client)
	return ctx
}

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}
