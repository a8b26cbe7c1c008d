package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"natid/pkg/requestcontext"
)

func serve(t *testing.T, incoming string) (string, string) {
	t.Helper()
	var seen string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.RequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(Header, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return seen, rec.Header().Get(Header)
}

func TestMiddleware(t *testing.T) {
	t.Run("mints uuid when absent", func(t *testing.T) {
		seen, echoed := serve(t, "")
		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, echoed)
	})

	t.Run("reuses well-formed incoming id", func(t *testing.T) {
		seen, echoed := serve(t, "trace-abc.123")
		assert.Equal(t, "trace-abc.123", seen)
		assert.Equal(t, "trace-abc.123", echoed)
	})

	t.Run("replaces unsafe incoming id", func(t *testing.T) {
		seen, _ := serve(t, "bad id\nwith newline")
		assert.NotEqual(t, "bad id\nwith newline", seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}
