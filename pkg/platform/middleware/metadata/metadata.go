package metadata

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"natid/pkg/requestcontext"
)

// ClientMetadata extracts the client IP address and a parsed User-Agent
// summary from the request and adds them to the context for request logging.
// This middleware should be applied early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIPFromRequest(r)
		client := DescribeUserAgent(r.Header.Get("User-Agent"))
		ctx := requestcontext.WithClientMetadata(r.Context(), ip, client)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DescribeUserAgent condenses a User-Agent header into "Browser Version on OS".
// Non-browser clients (curl, SDKs) are reported by product name.
func DescribeUserAgent(header string) string {
	if strings.TrimSpace(header) == "" {
		return "unknown"
	}
	ua := useragent.New(header)
	name, version := ua.Browser()
	if name == "" {
		name = "unknown"
	}
	if version != "" {
		name = fmt.Sprintf("%s %s", name, version)
	}
	if os := ua.OS(); os != "" {
		return fmt.Sprintf("%s on %s", name, os)
	}
	return name
}

// ClientIPFromRequest extracts the real client IP from the request, handling proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// Check X-Forwarded-For header first (standard for proxied requests)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...)
		// Take the first IP which is the original client
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port", or "[::1]:port" for IPv6
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return strings.Trim(addr[:idx], "[]")
		}
		return addr
	}

	return "unknown"
}
