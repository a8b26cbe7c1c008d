// Package requestid assigns every request an identifier for log correlation.
package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"natid/pkg/requestcontext"
)

// Header carries the request ID in both directions.
const Header = "X-Request-ID"

// validIncoming bounds caller-supplied IDs so they are safe to log.
var validIncoming = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// Middleware reuses a well-formed incoming X-Request-ID or mints a UUIDv4,
// stores it in the context and echoes it in the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !validIncoming.MatchString(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
